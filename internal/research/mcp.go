// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package research

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/pdiddy/auto-blogger/pkg/types"
)

// clientInfo identifies this client during the MCP handshake.
var clientInfo = &mcp.Implementation{Name: "auto-blogger", Version: "0.1.0"}

// searchToolHints orders the tool-name substrings tried when picking a tool,
// most specific first.
var searchToolHints = []string{"search", "query", "lookup"}

// MCPBackend queries one MCP server over streamable HTTP: it connects, lists
// the server's tools, calls the most search-like one with the topic, and
// converts returned text content into snippets.
type MCPBackend struct {
	// URL is the server endpoint.
	URL string

	// Client optionally overrides the HTTP client used by the transport.
	Client *http.Client
}

// Name returns the server URL; it identifies the backend in warnings and in
// snippet sources.
func (b *MCPBackend) Name() string { return b.URL }

// Gather runs one query session against the server.
func (b *MCPBackend) Gather(ctx context.Context, topic string) ([]types.ResearchSnippet, error) {
	transport := &mcp.StreamableClientTransport{Endpoint: b.URL}
	if b.Client != nil {
		transport.HTTPClient = b.Client
	}

	client := mcp.NewClient(clientInfo, nil)
	session, err := client.Connect(ctx, transport, nil)
	if err != nil {
		return nil, fmt.Errorf("connecting: %w", err)
	}
	defer session.Close()

	tool, err := pickTool(ctx, session)
	if err != nil {
		return nil, err
	}

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      tool,
		Arguments: map[string]any{"query": topic},
	})
	if err != nil {
		return nil, fmt.Errorf("calling tool %s: %w", tool, err)
	}
	if result.IsError {
		return nil, fmt.Errorf("tool %s reported an error", tool)
	}

	return snippetsFromContent(b.URL, result.Content), nil
}

// pickTool lists the server's tools (walking pagination cursors) and picks
// the most search-like name, falling back to the first tool.
func pickTool(ctx context.Context, session *mcp.ClientSession) (string, error) {
	var names []string
	var cursor *string
	for {
		var params *mcp.ListToolsParams
		if cursor != nil {
			params = &mcp.ListToolsParams{Cursor: *cursor}
		}
		result, err := session.ListTools(ctx, params)
		if err != nil {
			return "", fmt.Errorf("listing tools: %w", err)
		}
		for _, t := range result.Tools {
			names = append(names, t.Name)
		}
		if result.NextCursor == "" {
			break
		}
		cursor = &result.NextCursor
	}

	if len(names) == 0 {
		return "", fmt.Errorf("server exposes no tools")
	}
	for _, hint := range searchToolHints {
		for _, name := range names {
			if strings.Contains(strings.ToLower(name), hint) {
				return name, nil
			}
		}
	}
	return names[0], nil
}

// snippetsFromContent converts text content blocks into snippets, one per
// block, preserving response order. Non-text content is skipped.
func snippetsFromContent(source string, contents []mcp.Content) []types.ResearchSnippet {
	var snippets []types.ResearchSnippet
	for _, c := range contents {
		text, ok := c.(*mcp.TextContent)
		if !ok {
			continue
		}
		excerpt := strings.TrimSpace(text.Text)
		if excerpt == "" {
			continue
		}
		snippets = append(snippets, types.ResearchSnippet{
			Title:   snippetTitle(excerpt),
			Source:  source,
			Excerpt: excerpt,
		})
	}
	return snippets
}

// snippetTitle derives a label from the excerpt: the first Markdown heading
// if present, otherwise the first line truncated to 80 runes.
func snippetTitle(excerpt string) string {
	for _, line := range strings.Split(excerpt, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") {
			return strings.TrimSpace(strings.TrimLeft(trimmed, "#"))
		}
	}

	first := excerpt
	if idx := strings.IndexByte(first, '\n'); idx >= 0 {
		first = first[:idx]
	}
	first = strings.TrimSpace(first)
	runes := []rune(first)
	if len(runes) > 80 {
		return string(runes[:77]) + "..."
	}
	return first
}
