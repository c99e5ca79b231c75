package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/massbar-labs/massbar-cli/internal/core/domain"
)

// Defaults for created fragments, matching the launcher's create action.
const (
	defaultFragmentLabel    = "Fragment1"
	defaultFragmentLanguage = "plain_text"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"the search string; terms may carry scope prefixes (default ! title, # text, % folder, | tag)"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

// SearchResultOutput represents a single search result.
type SearchResultOutput struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Kind     string `json:"kind"`
}

// CreateInput is the input schema for the create tool.
type CreateInput struct {
	Name     string `json:"name" jsonschema:"the name of the snippet to create"`
	Content  string `json:"content" jsonschema:"the fragment text"`
	Label    string `json:"label,omitempty" jsonschema:"fragment label (default Fragment1)"`
	Language string `json:"language,omitempty" jsonschema:"fragment language (default plain_text)"`
}

// CreateOutput is the output schema for the create tool.
type CreateOutput struct {
	SnippetID int `json:"snippet_id"`
	ContentID int `json:"content_id"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_snippets",
		Description: "Search the massCode snippet library",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_snippet",
		Description: "Create a new massCode snippet with one fragment",
	}, s.handleCreate)
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	items := s.ports.Query.Query(ctx, input.Query)

	output := SearchOutput{
		Results: make([]SearchResultOutput, len(items)),
		Count:   len(items),
	}

	for i := range items {
		output.Results[i] = SearchResultOutput{
			Title:    items[i].Title,
			Subtitle: items[i].Subtitle,
			Kind:     string(items[i].Kind),
		}
	}

	return nil, output, nil
}

// handleCreate handles the create tool invocation. It creates the snippet
// first, then attaches the fragment, matching the massCode API's two-call
// sequence.
func (s *Server) handleCreate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CreateInput,
) (*mcp.CallToolResult, CreateOutput, error) {
	if s.ports.Snippets == nil {
		return nil, CreateOutput{}, errors.New("snippet creation not available")
	}
	if input.Name == "" {
		return nil, CreateOutput{}, errors.New("name is required")
	}

	label := input.Label
	if label == "" {
		label = defaultFragmentLabel
	}
	language := input.Language
	if language == "" {
		language = defaultFragmentLanguage
	}

	snippetID, err := s.ports.Snippets.CreateSnippet(ctx, input.Name, nil)
	if err != nil {
		return nil, CreateOutput{}, err
	}
	if snippetID <= 0 {
		return nil, CreateOutput{}, domain.ErrNoSnippetID
	}

	contentID, err := s.ports.Snippets.CreateContent(ctx, snippetID, label, language, input.Content)
	if err != nil {
		return nil, CreateOutput{}, err
	}

	return nil, CreateOutput{SnippetID: snippetID, ContentID: contentID}, nil
}
