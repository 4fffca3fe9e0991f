package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/playbook"
	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/templates"
)

// PlaybookTool handles the edna_playbook MCP tool.
type PlaybookTool struct {
	store    ProfileStore
	renderer templates.Renderer
}

// NewPlaybookTool creates a PlaybookTool. store may be nil.
func NewPlaybookTool(store ProfileStore, renderer templates.Renderer) *PlaybookTool {
	return &PlaybookTool{store: store, renderer: renderer}
}

// Definition returns the MCP tool definition for edna_playbook.
func (t *PlaybookTool) Definition() mcp.Tool {
	return mcp.NewTool("edna_playbook", append([]mcp.ToolOption{
		mcp.WithDescription(
			"Generate the personalised E-DNA playbook: strengths, blindspots, learning advice, " +
				"belief coaching and a 90-day plan.",
		),
	}, withProfileSource()...)...)
}

// Handle processes the edna_playbook tool call.
func (t *PlaybookTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	c, err := resolveComposite(t.store, req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	md, err := playbook.Markdown(t.renderer, playbook.Generate(c))
	if err != nil {
		return nil, fmt.Errorf("rendering playbook: %w", err)
	}
	return mcp.NewToolResultText(md), nil
}
