package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	configAdapter "github.com/jenkinslint/jenkinslint/internal/adapters/outbound/config"
	"github.com/jenkinslint/jenkinslint/internal/adapters/outbound/gitinfo"
	"github.com/jenkinslint/jenkinslint/internal/adapters/outbound/jenkins"
	"github.com/jenkinslint/jenkinslint/internal/application"
	"github.com/jenkinslint/jenkinslint/internal/domain"
)

// registerTools registers all jenkinslint MCP tools on the given server.
func registerTools(s *server.MCPServer, configDir string) {
	// 1. jenkinslint_lint_file
	s.AddTool(
		mcplib.NewTool("jenkinslint_lint_file",
			mcplib.WithDescription("Validate a Jenkinsfile on disk. Uses the configured Jenkins server when available, a local syntax check otherwise."),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("Path to the Jenkinsfile to validate"),
			),
		),
		handleLintFile(configDir),
	)

	// 2. jenkinslint_lint_content
	s.AddTool(
		mcplib.NewTool("jenkinslint_lint_content",
			mcplib.WithDescription("Validate raw Jenkinsfile content without touching disk"),
			mcplib.WithString("content",
				mcplib.Required(),
				mcplib.Description("Pipeline definition text to validate"),
			),
		),
		handleLintContent(configDir),
	)

	// 3. jenkinslint_changed_files
	s.AddTool(
		mcplib.NewTool("jenkinslint_changed_files",
			mcplib.WithDescription("List pipeline files modified or staged in the git worktree"),
		),
		handleChangedFiles(configDir),
	)
}

// newService builds the lint service from the directory's configuration.
func newService(configDir string) (*application.LintService, domain.Config, error) {
	var loader domain.ConfigLoader = configAdapter.New()
	cfg, err := loader.Load(configDir)
	if err != nil {
		return nil, domain.Config{}, err
	}
	svc := application.NewLintService(jenkins.New(cfg.Timeout()), cfg.Markers)
	return svc, cfg, nil
}

func handleLintFile(configDir string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		path, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		svc, cfg, err := newService(configDir)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config: %v", err)), nil
		}

		summary := svc.Run(ctx, []string{path}, cfg.Credentials(), cfg.Skip)
		return jsonResult(summary)
	}
}

func handleLintContent(configDir string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		content, err := request.RequireString("content")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		_, cfg, err := newService(configDir)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config: %v", err)), nil
		}

		target := domain.Target{Path: "Jenkinsfile", Content: content}
		var outcome domain.Outcome
		if creds := cfg.Credentials(); creds.HasURL() {
			outcome = jenkins.New(cfg.Timeout()).Lint(ctx, target, creds)
		} else {
			outcome = domain.CheckSyntax(target, cfg.Markers)
		}
		return jsonResult(outcome)
	}
}

func handleChangedFiles(configDir string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		files, err := gitinfo.New().ChangedPipelineFiles(configDir)
		if err != nil {
			return errorResult(fmt.Sprintf("discovering changed files: %v", err)), nil
		}
		if files == nil {
			files = []string{}
		}
		return jsonResult(files)
	}
}

// jsonResult marshals v as indented JSON text content.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
