package gitinfo

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
)

// GitInfoAdapter implements domain.GitInfo using go-git.
type GitInfoAdapter struct{}

func New() *GitInfoAdapter {
	return &GitInfoAdapter{}
}

func (g *GitInfoAdapter) IsGitRepo(dir string) bool {
	_, err := git.PlainOpen(dir)
	return err == nil
}

func (g *GitInfoAdapter) CommitHash(dir string) (string, error) {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		return "", fmt.Errorf("opening git repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD: %w", err)
	}

	return head.Hash().String(), nil
}

// ChangedPipelineFiles lists pipeline files that are modified or staged in
// the worktree, relative to dir. This backs the pre-commit mode where no
// file arguments are given.
func (g *GitInfoAdapter) ChangedPipelineFiles(dir string) ([]string, error) {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		return nil, fmt.Errorf("opening git repo: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("opening worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("reading worktree status: %w", err)
	}

	var files []string
	for path, st := range status {
		if st.Worktree == git.Unmodified && st.Staging == git.Unmodified {
			continue
		}
		if st.Worktree == git.Deleted || st.Staging == git.Deleted {
			continue
		}
		if looksLikePipelineFile(path) {
			files = append(files, path)
		}
	}
	sort.Strings(files)
	return files, nil
}

func looksLikePipelineFile(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, "Jenkinsfile") {
		return true
	}
	switch strings.ToLower(filepath.Ext(base)) {
	case ".jenkinsfile", ".groovy":
		return true
	}
	return false
}
