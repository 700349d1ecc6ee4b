package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewJenkinsLintMCPServer creates a new MCP server with all jenkinslint
// tools and resources registered. configDir is the directory containing
// .jenkinslint.yaml (usually the repository root).
func NewJenkinsLintMCPServer(configDir string) *server.MCPServer {
	s := server.NewMCPServer(
		"jenkinslint",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, configDir)
	registerResources(s, configDir)

	return s
}
