package tools

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/report"
)

// RecommendationsTool handles the edna_recommendations MCP tool.
type RecommendationsTool struct {
	store ProfileStore
}

// NewRecommendationsTool creates a RecommendationsTool. store may be nil.
func NewRecommendationsTool(store ProfileStore) *RecommendationsTool {
	return &RecommendationsTool{store: store}
}

// Definition returns the MCP tool definition for edna_recommendations.
func (t *RecommendationsTool) Definition() mcp.Tool {
	return mcp.NewTool("edna_recommendations", append([]mcp.ToolOption{
		mcp.WithDescription(
			"List learning, development and tool recommendations for an E-DNA profile.",
		),
	}, withProfileSource()...)...)
}

// Handle processes the edna_recommendations tool call.
func (t *RecommendationsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	c, err := resolveComposite(t.store, req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	recs := report.Recommend(c)
	var sb strings.Builder
	writeList(&sb, "Learning", recs.Learning)
	writeList(&sb, "Development", recs.Development)
	writeList(&sb, "Tools", recs.Tools)
	return mcp.NewToolResultText(sb.String()), nil
}

func writeList(sb *strings.Builder, heading string, items []string) {
	sb.WriteString("## " + heading + "\n\n")
	if len(items) == 0 {
		sb.WriteString("_None._\n\n")
		return
	}
	for _, it := range items {
		sb.WriteString("- " + it + "\n")
	}
	sb.WriteString("\n")
}
