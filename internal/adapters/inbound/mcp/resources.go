package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	configAdapter "github.com/jenkinslint/jenkinslint/internal/adapters/outbound/config"
)

// registerResources registers all jenkinslint MCP resources on the given server.
func registerResources(s *server.MCPServer, configDir string) {
	// jenkinslint://config - effective lint configuration
	s.AddResource(
		mcplib.NewResource(
			"jenkinslint://config",
			"Lint Configuration",
			mcplib.WithResourceDescription("Effective jenkinslint configuration (defaults merged with .jenkinslint.yaml); the API token is never included"),
			mcplib.WithMIMEType("application/json"),
		),
		handleConfigResource(configDir),
	)
}

func handleConfigResource(configDir string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		cfg, err := configAdapter.New().Load(configDir)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}

		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling config: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "jenkinslint://config",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
