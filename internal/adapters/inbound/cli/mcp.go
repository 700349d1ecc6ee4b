package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/jenkinslint/jenkinslint/internal/adapters/inbound/mcp"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the jenkinslint MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var configDir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start jenkinslint MCP server (stdio)",
		Long:  "Start the jenkinslint MCP server using stdio transport. This lets AI coding assistants validate Jenkinsfiles and query lint configuration.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configDir == "" {
				configDir = "."
			}
			s := mcpadapter.NewJenkinsLintMCPServer(configDir)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&configDir, "config", "", "Directory containing .jenkinslint.yaml (defaults to current working directory)")

	return cmd
}
