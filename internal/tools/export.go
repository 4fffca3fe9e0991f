package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/export"
	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/templates"
)

// Export formats accepted by edna_export.
const (
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// ExportTool handles the edna_export MCP tool.
type ExportTool struct {
	store    ProfileStore
	renderer templates.Renderer
}

// NewExportTool creates an ExportTool. store may be nil.
func NewExportTool(store ProfileStore, renderer templates.Renderer) *ExportTool {
	return &ExportTool{store: store, renderer: renderer}
}

// Definition returns the MCP tool definition for edna_export.
func (t *ExportTool) Definition() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(
			"Export an E-DNA profile as a Markdown report or a JSON document. " +
				"Name a stored profile with profile_id or pass raw answers.",
		),
		mcp.WithString("format",
			mcp.Description("Output format"),
			mcp.Enum(FormatMarkdown, FormatJSON),
		),
	}
	return mcp.NewTool("edna_export", append(opts, withProfileSource()...)...)
}

// Handle processes the edna_export tool call.
func (t *ExportTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	format := req.GetString("format", FormatMarkdown)
	if format != FormatMarkdown && format != FormatJSON {
		return mcp.NewToolResultError(fmt.Sprintf("unknown format %q (use %s or %s)", format, FormatMarkdown, FormatJSON)), nil
	}

	c, err := resolveComposite(t.store, req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if format == FormatJSON {
		data, err := export.JSON(c)
		if err != nil {
			return nil, err
		}
		return mcp.NewToolResultText(string(data)), nil
	}

	md, err := export.Markdown(t.renderer, c)
	if err != nil {
		return nil, fmt.Errorf("rendering profile: %w", err)
	}
	return mcp.NewToolResultText(md), nil
}
