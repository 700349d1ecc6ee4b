package domain

import "context"

// RemoteLinter submits a target to a remote validation service and maps the
// response to an outcome. Implementations never return an error: transport
// failures become error outcomes so one bad file cannot abort a run.
type RemoteLinter interface {
	Lint(ctx context.Context, target Target, creds Credentials) Outcome
}

// ConfigLoader loads project configuration from a directory.
type ConfigLoader interface {
	Load(dir string) (Config, error)
}

// GitInfo provides repository metadata and changed-file discovery.
type GitInfo interface {
	IsGitRepo(dir string) bool
	CommitHash(dir string) (string, error)
	ChangedPipelineFiles(dir string) ([]string, error)
}
