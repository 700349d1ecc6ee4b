package domain

import (
	"fmt"
	"net/url"
	"time"
)

// Target is a single pipeline file queued for validation: its path and the
// raw text read from disk. Immutable once constructed.
type Target struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// Credentials holds the optional Jenkins server coordinates. An empty URL
// forces local-check mode regardless of username/token. Empty username or
// token with a URL set means anonymous access.
type Credentials struct {
	URL      string `json:"url,omitempty"`
	Username string `json:"username,omitempty"`
	Token    string `json:"-"`
}

// HasURL reports whether remote validation is configured.
func (c Credentials) HasURL() bool { return c.URL != "" }

// Anonymous reports whether the remote call should skip authentication.
func (c Credentials) Anonymous() bool { return c.Username == "" || c.Token == "" }

// Validate rejects a malformed Jenkins URL before any per-file work starts.
// An unset URL is valid and selects local-check mode.
func (c Credentials) Validate() error {
	if c.URL == "" {
		return nil
	}
	u, err := url.Parse(c.URL)
	if err != nil {
		return fmt.Errorf("invalid jenkins url %q: %w", c.URL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid jenkins url %q: scheme must be http or https", c.URL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid jenkins url %q: missing host", c.URL)
	}
	return nil
}

// Outcome is the per-file validation verdict.
type Outcome struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

const (
	StatusSkipped = "skipped"
	StatusValid   = "valid"
	StatusInvalid = "invalid"
	StatusError   = "error"
)

func SkippedOutcome() Outcome { return Outcome{Status: StatusSkipped} }

func ValidOutcome() Outcome { return Outcome{Status: StatusValid} }

func InvalidOutcome(msg string) Outcome { return Outcome{Status: StatusInvalid, Message: msg} }

func ErrorOutcome(msg string) Outcome { return Outcome{Status: StatusError, Message: msg} }

// OK reports whether the outcome counts toward overall success.
func (o Outcome) OK() bool { return o.Status == StatusSkipped || o.Status == StatusValid }

// FileResult pairs an input path with its outcome.
type FileResult struct {
	Path    string  `json:"path"`
	Outcome Outcome `json:"outcome"`
}

// RunSummary is the ordered record of a lint run. Every input path appears
// exactly once, in input order.
type RunSummary struct {
	Results    []FileResult `json:"results"`
	Timestamp  time.Time    `json:"timestamp"`
	CommitHash string       `json:"commit_hash,omitempty"`
}

// Add appends a result, preserving input order.
func (s *RunSummary) Add(path string, outcome Outcome) {
	s.Results = append(s.Results, FileResult{Path: path, Outcome: outcome})
}

// Success is true iff every outcome is skipped or valid.
func (s *RunSummary) Success() bool {
	for _, r := range s.Results {
		if !r.Outcome.OK() {
			return false
		}
	}
	return true
}

// Failed counts outcomes that are invalid or errored.
func (s *RunSummary) Failed() int {
	n := 0
	for _, r := range s.Results {
		if !r.Outcome.OK() {
			n++
		}
	}
	return n
}

// Counts returns the number of results per status.
func (s *RunSummary) Counts() map[string]int {
	counts := make(map[string]int, 4)
	for _, r := range s.Results {
		counts[r.Outcome.Status]++
	}
	return counts
}
