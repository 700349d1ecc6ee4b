package domain

import (
	"fmt"
	"time"
)

// DefaultTimeoutSeconds bounds how long a single remote validation call may
// block before it is treated as a transport failure.
const DefaultTimeoutSeconds = 30

// DefaultMarkers are the declaration keywords the local syntax check accepts
// at statement-start position.
var DefaultMarkers = []string{"pipeline", "node", "stage"}

// Config holds project-level configuration loaded from .jenkinslint.yaml.
// CLI flags and environment variables override it at startup; core logic
// never reads ambient state.
type Config struct {
	JenkinsURL     string   `yaml:"jenkins_url"     json:"jenkins_url,omitempty"`
	Username       string   `yaml:"username"        json:"username,omitempty"`
	Token          string   `yaml:"token"           json:"-"`
	Skip           []string `yaml:"skip"            json:"skip,omitempty"`
	TimeoutSeconds int      `yaml:"timeout_seconds" json:"timeout_seconds,omitempty"`
	Markers        []string `yaml:"markers"         json:"markers,omitempty"`
}

// DefaultConfig returns the configuration used when no .jenkinslint.yaml
// exists.
func DefaultConfig() Config {
	return Config{
		TimeoutSeconds: DefaultTimeoutSeconds,
		Markers:        append([]string(nil), DefaultMarkers...),
	}
}

// Validate catches configuration errors before any per-file evaluation.
func (c Config) Validate() error {
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout_seconds must be positive, got %d", c.TimeoutSeconds)
	}
	if len(c.Markers) == 0 {
		return fmt.Errorf("markers must not be empty")
	}
	creds := Credentials{URL: c.JenkinsURL}
	return creds.Validate()
}

// Timeout returns the remote-call timeout as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Credentials assembles the credential triple from the config.
func (c Config) Credentials() Credentials {
	return Credentials{URL: c.JenkinsURL, Username: c.Username, Token: c.Token}
}
