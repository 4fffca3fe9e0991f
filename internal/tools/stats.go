package tools

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// StatsTool handles the edna_stats MCP tool.
type StatsTool struct {
	store ProfileStore
}

// NewStatsTool creates a StatsTool with the given profile store.
func NewStatsTool(store ProfileStore) *StatsTool {
	return &StatsTool{store: store}
}

// Definition returns the MCP tool definition for edna_stats.
func (t *StatsTool) Definition() mcp.Tool {
	return mcp.NewTool("edna_stats",
		mcp.WithDescription(
			"Show profile store statistics: total profiles, respondents and the core type distribution.",
		),
	)
}

// Handle processes the edna_stats tool call.
func (t *StatsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if t.store == nil {
		return mcp.NewToolResultError(errStoreDisabled.Error()), nil
	}

	stats, err := t.store.Stats()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get stats: %v", err)), nil
	}

	var sb strings.Builder
	sb.WriteString("## Profile Statistics\n\n")
	sb.WriteString(fmt.Sprintf("- **Profiles**: %d\n", stats.TotalProfiles))
	sb.WriteString(fmt.Sprintf("- **Respondents**: %d\n", stats.Respondents))
	if stats.LastCompleted != "" {
		sb.WriteString(fmt.Sprintf("- **Last completed**: %s\n", stats.LastCompleted))
	}

	if len(stats.ByCoreType) == 0 {
		sb.WriteString("- **Core types**: none\n")
		return mcp.NewToolResultText(sb.String()), nil
	}
	cores := make([]string, 0, len(stats.ByCoreType))
	for core := range stats.ByCoreType {
		cores = append(cores, core)
	}
	sort.Strings(cores)
	parts := make([]string, 0, len(cores))
	for _, core := range cores {
		parts = append(parts, fmt.Sprintf("%s %d", core, stats.ByCoreType[core]))
	}
	sb.WriteString("- **Core types**: " + strings.Join(parts, ", ") + "\n")

	return mcp.NewToolResultText(sb.String()), nil
}
