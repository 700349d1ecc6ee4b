package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	configAdapter "github.com/jenkinslint/jenkinslint/internal/adapters/outbound/config"
	"github.com/jenkinslint/jenkinslint/internal/adapters/outbound/gitinfo"
	"github.com/jenkinslint/jenkinslint/internal/adapters/outbound/jenkins"
	"github.com/jenkinslint/jenkinslint/internal/adapters/outbound/tui"
	"github.com/jenkinslint/jenkinslint/internal/application"
	"github.com/jenkinslint/jenkinslint/internal/domain"
)

func newLintCmd() *cobra.Command {
	var (
		jenkinsURL     string
		username       string
		token          string
		skip           []string
		timeoutSeconds int
		configDir      string
		jsonOut        bool
		changed        bool
	)

	cmd := &cobra.Command{
		Use:   "lint [file1] [file2] ...",
		Short: "Validate one or more Jenkinsfiles",
		Long:  "Validate Jenkinsfiles via the Jenkins pipeline-model-converter endpoint when a server URL is configured, or a local syntax check otherwise. With --changed and no file arguments, lints the pipeline files modified in the git worktree.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var loader domain.ConfigLoader = configAdapter.New()
			cfg, err := loader.Load(configDir)
			if err != nil {
				return err
			}

			// Precedence: flags > environment > .jenkinslint.yaml.
			cfg.JenkinsURL = firstNonEmpty(jenkinsURL, os.Getenv("JENKINS_URL"), cfg.JenkinsURL)
			cfg.Username = firstNonEmpty(username, os.Getenv("JENKINS_USER"), cfg.Username)
			cfg.Token = firstNonEmpty(token, os.Getenv("JENKINS_TOKEN"), cfg.Token)
			if cmd.Flags().Changed("timeout") {
				cfg.TimeoutSeconds = timeoutSeconds
			}
			cfg.Skip = append(cfg.Skip, skip...)

			if err := cfg.Validate(); err != nil {
				return err
			}

			var gi domain.GitInfo = gitinfo.New()
			files := args
			if len(files) == 0 {
				if !changed {
					return fmt.Errorf("no files given: pass paths or use --changed")
				}
				files, err = gi.ChangedPipelineFiles(configDir)
				if err != nil {
					return fmt.Errorf("discovering changed files: %w", err)
				}
				// Status paths are relative to the repository root.
				for i, f := range files {
					files[i] = filepath.Join(configDir, f)
				}
				if len(files) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "no changed pipeline files")
					return nil
				}
			}

			svc := application.NewLintService(jenkins.New(cfg.Timeout()), cfg.Markers)
			summary := svc.Run(cmd.Context(), files, cfg.Credentials(), cfg.Skip)

			if gi.IsGitRepo(configDir) {
				if hash, err := gi.CommitHash(configDir); err == nil {
					summary.CommitHash = hash
				}
			}

			if jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(summary); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderSummary(summary))
			}

			if !summary.Success() {
				return fmt.Errorf("%d of %d file(s) failed validation", summary.Failed(), len(summary.Results))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&jenkinsURL, "jenkins-url", "", "Jenkins server URL (env: JENKINS_URL)")
	cmd.Flags().StringVar(&username, "username", "", "Jenkins username (env: JENKINS_USER)")
	cmd.Flags().StringVar(&token, "token", "", "Jenkins API token (env: JENKINS_TOKEN)")
	cmd.Flags().StringArrayVar(&skip, "skip", nil, "Glob pattern for files to skip (repeatable)")
	cmd.Flags().IntVar(&timeoutSeconds, "timeout", 30, "Remote validation timeout in seconds")
	cmd.Flags().StringVar(&configDir, "config", ".", "Directory containing .jenkinslint.yaml")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output the run summary as JSON")
	cmd.Flags().BoolVar(&changed, "changed", false, "Lint pipeline files changed in the git worktree")

	return cmd
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
