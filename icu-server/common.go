package main

import (
	"context"
	"errors"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"intervals-mcp/internal/config"
	"intervals-mcp/internal/icu"
	"intervals-mcp/internal/observability"
)

type toolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// server carries the shared state every tool handler needs.
type server struct {
	client   *icu.Client
	cfg      config.Config
	log      zerolog.Logger
	registry []toolInfo
}

// addTool registers a text tool and mirrors it into the /tools registry.
// Handlers return plain text; API failures come back as "Error ..." strings
// rather than protocol errors so the model can read them.
func addTool[T any](m *mcp.Server, s *server, tool *mcp.Tool, handler func(context.Context, T) string) {
	s.registry = append(s.registry, toolInfo{Name: tool.Name, Description: tool.Description})
	mcp.AddTool(m, tool, func(ctx context.Context, req *mcp.CallToolRequest, args T) (*mcp.CallToolResult, any, error) {
		observability.ObserveToolCall(tool.Name)
		return textResult(handler(ctx, args)), nil, nil
	})
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

// apiMessage extracts the upstream error message for tool-facing text.
func apiMessage(err error) string {
	var apiErr *icu.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}

func (s *server) resolveAthleteID(explicit string) (string, string) {
	return config.ResolveAthleteID(explicit, s.cfg.AthleteID)
}

// resolveDateRange fills in the default window: 30 days ago through today.
func resolveDateRange(start, end string) (string, string) {
	if start == "" {
		start = daysAgo(30)
	}
	if end == "" {
		end = time.Now().Format("2006-01-02")
	}
	return start, end
}

func daysAgo(n int) string {
	return time.Now().AddDate(0, 0, -n).Format("2006-01-02")
}

func daysAhead(n int) string {
	return time.Now().AddDate(0, 0, n).Format("2006-01-02")
}

// emptyResult reports whether a decoded API response carries no data.
func emptyResult(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	}
	return false
}
