package application

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jenkinslint/jenkinslint/internal/domain"
)

// LintService orchestrates a lint run: per file it applies skip patterns,
// reads content, and delegates to the remote linter or the local syntax
// check depending on whether credentials carry a server URL.
type LintService struct {
	remote  domain.RemoteLinter
	markers []string
}

// NewLintService creates a LintService. markers configures the local
// fallback check; nil selects the defaults.
func NewLintService(remote domain.RemoteLinter, markers []string) *LintService {
	if len(markers) == 0 {
		markers = domain.DefaultMarkers
	}
	return &LintService{remote: remote, markers: markers}
}

// Run lints files sequentially and returns the ordered summary. Each file's
// result is independent: no outcome aborts evaluation of later files.
func (s *LintService) Run(ctx context.Context, files []string, creds domain.Credentials, skipPatterns []string) *domain.RunSummary {
	summary := &domain.RunSummary{Timestamp: time.Now()}
	for _, path := range files {
		summary.Add(path, s.lintFile(ctx, path, creds, skipPatterns))
	}
	return summary
}

func (s *LintService) lintFile(ctx context.Context, path string, creds domain.Credentials, skipPatterns []string) domain.Outcome {
	// Skip decision comes first: matched files are never read.
	if len(skipPatterns) > 0 && domain.MatchAny(path, skipPatterns) {
		return domain.SkippedOutcome()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.ErrorOutcome(fmt.Sprintf("cannot read file: %v", err))
	}
	target := domain.Target{Path: path, Content: string(data)}

	if creds.HasURL() {
		return s.remote.Lint(ctx, target, creds)
	}
	return domain.CheckSyntax(target, s.markers)
}
