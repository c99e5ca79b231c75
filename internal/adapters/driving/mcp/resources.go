package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for Massbar resources.
	uriScheme = "massbar://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "settings",
		Name:        "settings",
		Description: "Current launcher settings",
		MIMEType:    "application/json",
	}, s.handleSettingsResource)
}

// handleSettingsResource returns the current launcher settings.
func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Settings == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "{}",
			}},
		}, nil
	}

	settings := s.ports.Settings.Get()

	// Build a stable projection; runes serialise as strings.
	type settingsInfo struct {
		BaseURL          string `json:"base_url"`
		Action           string `json:"action"`
		ExcludeFavorites bool   `json:"exclude_favorites"`
		TitlePrefix      string `json:"title_prefix"`
		TextPrefix       string `json:"text_prefix"`
		FolderPrefix     string `json:"folder_prefix"`
		TagPrefix        string `json:"tag_prefix"`
	}

	info := settingsInfo{
		BaseURL:          settings.BaseURL,
		Action:           settings.Action.String(),
		ExcludeFavorites: settings.ExcludeFavorites,
		TitlePrefix:      string(settings.Prefixes.Title),
		TextPrefix:       string(settings.Prefixes.Text),
		FolderPrefix:     string(settings.Prefixes.Folder),
		TagPrefix:        string(settings.Prefixes.Tag),
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling settings: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
