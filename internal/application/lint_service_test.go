package application_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jenkinslint/jenkinslint/internal/application"
	"github.com/jenkinslint/jenkinslint/internal/domain"
)

// stubRemote records which targets were submitted and returns a canned outcome.
type stubRemote struct {
	outcome domain.Outcome
	targets []domain.Target
}

func (s *stubRemote) Lint(_ context.Context, target domain.Target, _ domain.Credentials) domain.Outcome {
	s.targets = append(s.targets, target)
	return s.outcome
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRun_LocalMode(t *testing.T) {
	dir := t.TempDir()
	valid := writeFile(t, dir, "Jenkinsfile", "pipeline { agent any }")
	empty := writeFile(t, dir, "empty.groovy", "")

	remote := &stubRemote{outcome: domain.ValidOutcome()}
	svc := application.NewLintService(remote, nil)

	summary := svc.Run(context.Background(), []string{valid, empty}, domain.Credentials{}, nil)

	require.Len(t, summary.Results, 2)
	assert.Equal(t, domain.StatusValid, summary.Results[0].Outcome.Status)
	assert.Equal(t, domain.StatusInvalid, summary.Results[1].Outcome.Status)
	assert.Equal(t, "empty file", summary.Results[1].Outcome.Message)
	assert.False(t, summary.Success())

	// No URL configured: the remote linter must never be consulted.
	assert.Empty(t, remote.targets)
}

func TestRun_RemoteModeUsesRemoteLinter(t *testing.T) {
	dir := t.TempDir()
	// Content the local check would reject; remote mode must not care.
	file := writeFile(t, dir, "Jenkinsfile", "anything at all")

	remote := &stubRemote{outcome: domain.ValidOutcome()}
	svc := application.NewLintService(remote, nil)
	creds := domain.Credentials{URL: "http://jenkins.example.com"}

	summary := svc.Run(context.Background(), []string{file}, creds, nil)

	require.Len(t, summary.Results, 1)
	assert.Equal(t, domain.StatusValid, summary.Results[0].Outcome.Status)
	require.Len(t, remote.targets, 1)
	assert.Equal(t, "anything at all", remote.targets[0].Content)
}

func TestRun_SkipPatternWinsOverEverything(t *testing.T) {
	remote := &stubRemote{outcome: domain.ValidOutcome()}
	svc := application.NewLintService(remote, nil)
	creds := domain.Credentials{URL: "http://jenkins.example.com"}

	// The path does not even exist: skipped files are never read.
	summary := svc.Run(context.Background(), []string{"vars/x.groovy"}, creds, []string{"vars/*.groovy"})

	require.Len(t, summary.Results, 1)
	assert.Equal(t, domain.StatusSkipped, summary.Results[0].Outcome.Status)
	assert.True(t, summary.Success())
	assert.Empty(t, remote.targets)
}

func TestRun_UnreadableFile(t *testing.T) {
	remote := &stubRemote{outcome: domain.ValidOutcome()}
	svc := application.NewLintService(remote, nil)

	summary := svc.Run(context.Background(), []string{"does/not/exist/Jenkinsfile"}, domain.Credentials{}, nil)

	require.Len(t, summary.Results, 1)
	assert.Equal(t, domain.StatusError, summary.Results[0].Outcome.Status)
	assert.Contains(t, summary.Results[0].Outcome.Message, "cannot read file")
	assert.False(t, summary.Success())
}

func TestRun_BadFileDoesNotAbortLaterFiles(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "Jenkinsfile", "node { checkout scm }")

	svc := application.NewLintService(&stubRemote{}, nil)
	files := []string{"missing.groovy", good}

	summary := svc.Run(context.Background(), files, domain.Credentials{}, nil)

	require.Len(t, summary.Results, 2)
	assert.Equal(t, "missing.groovy", summary.Results[0].Path)
	assert.Equal(t, domain.StatusError, summary.Results[0].Outcome.Status)
	assert.Equal(t, good, summary.Results[1].Path)
	assert.Equal(t, domain.StatusValid, summary.Results[1].Outcome.Status)
}

func TestRun_SummaryPreservesInputOrder(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		writeFile(t, dir, "c.groovy", "pipeline {}"),
		writeFile(t, dir, "a.groovy", "pipeline {}"),
		writeFile(t, dir, "b.groovy", "pipeline {}"),
	}

	svc := application.NewLintService(&stubRemote{}, nil)
	summary := svc.Run(context.Background(), files, domain.Credentials{}, nil)

	require.Len(t, summary.Results, len(files))
	for i, f := range files {
		assert.Equal(t, f, summary.Results[i].Path)
	}
}

func TestRun_CustomMarkers(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "lib.groovy", "@Library('shared') _\n")

	svc := application.NewLintService(&stubRemote{}, []string{"@Library"})
	summary := svc.Run(context.Background(), []string{file}, domain.Credentials{}, nil)

	require.Len(t, summary.Results, 1)
	assert.Equal(t, domain.StatusValid, summary.Results[0].Outcome.Status)
}
