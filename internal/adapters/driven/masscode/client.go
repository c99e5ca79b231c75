package masscode

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/massbar-labs/massbar-cli/internal/core/domain"
	"github.com/massbar-labs/massbar-cli/internal/core/ports/driven"
)

const (
	// DefaultTimeout is the per-request HTTP timeout.
	DefaultTimeout = 30 * time.Second

	// maxBodyPreview bounds how much of an error response body is kept.
	maxBodyPreview = 1024

	userAgent = "Massbar/1.0"
)

// Ensure Client implements the interface.
var _ driven.SnippetAPI = (*Client)(nil)

// Client is a stateless wrapper over the massCode local HTTP API. It owns
// one connection pool; switching base URL means constructing a new Client.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the given base URL. A blank or
// unparseable URL falls back to the default localhost endpoint.
func NewClient(baseURL string) *Client {
	if !validURL(baseURL) {
		baseURL = domain.DefaultBaseURL
	}

	// Fresh transport per client so each base URL gets its own pool.
	// The massCode app speaks HTTP/1.1; do not negotiate h2.
	transport := &http.Transport{
		ForceAttemptHTTP2:   false,
		MaxIdleConnsPerHost: 4,
		IdleConnTimeout:     5 * time.Minute,
		Proxy:               nil,
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Transport: transport,
			Timeout:   DefaultTimeout,
		},
	}
}

// BaseURL returns the effective base URL the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListSnippets fetches the server's undeleted snippets. Favourite
// exclusion happens here, client-side: the remote favourite filter is not
// reliable.
func (c *Client) ListSnippets(ctx context.Context, excludeFavorites bool) ([]domain.Snippet, error) {
	const op = "GET /snippets"

	body, err := c.do(ctx, op, http.MethodGet, "/snippets?isDeleted=0", nil)
	if err != nil {
		return nil, err
	}

	var dtos []snippetDTO
	if err := json.Unmarshal(body, &dtos); err != nil {
		return nil, &DecodeError{Op: op, Err: err}
	}

	snippets := make([]domain.Snippet, 0, len(dtos))
	for _, dto := range dtos {
		if excludeFavorites && bool(dto.IsFavorites) {
			continue
		}
		snippets = append(snippets, dto.toDomain())
	}
	return snippets, nil
}

// CreateSnippet creates an empty snippet and returns its id, or 0 when the
// response carries no usable id.
func (c *Client) CreateSnippet(ctx context.Context, name string, folderID *int) (int, error) {
	const op = "POST /snippets"
	return c.create(ctx, op, "/snippets", createSnippetRequest{Name: name, FolderID: folderID})
}

// CreateContent adds a content fragment to an existing snippet.
func (c *Client) CreateContent(ctx context.Context, snippetID int, label, language, value string) (int, error) {
	op := fmt.Sprintf("POST /snippets/%d/contents", snippetID)
	path := fmt.Sprintf("/snippets/%d/contents", snippetID)
	return c.create(ctx, op, path, createContentRequest{Label: label, Value: value, Language: language})
}

// create POSTs a JSON body and decodes the created id.
func (c *Client) create(ctx context.Context, op, path string, payload any) (int, error) {
	body, err := c.do(ctx, op, http.MethodPost, path, payload)
	if err != nil {
		return 0, err
	}

	var resp createResponse
	if len(body) > 0 {
		if err := json.Unmarshal(body, &resp); err != nil {
			return 0, &DecodeError{Op: op, Err: err}
		}
	}
	return resp.ID, nil
}

// do issues one request and returns the response body of a 2xx response.
// Non-2xx responses become a ProtocolError with a bounded body preview;
// network failures become a TransportError.
func (c *Client) do(ctx context.Context, op, method, path string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("masscode: %s: encode request: %w", op, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("masscode: %s: build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ProtocolError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       preview(resp.Body),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	return body, nil
}

// preview reads at most maxBodyPreview bytes of an error response body,
// marking truncation with an ellipsis.
func preview(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, maxBodyPreview+1))
	if err != nil {
		return ""
	}
	if len(data) > maxBodyPreview {
		return string(data[:maxBodyPreview]) + "…"
	}
	return string(data)
}

func validURL(raw string) bool {
	if strings.TrimSpace(raw) == "" {
		return false
	}
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}
