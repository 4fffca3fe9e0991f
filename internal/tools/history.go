package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// HistoryTool handles the edna_history MCP tool.
type HistoryTool struct {
	store        ProfileStore
	defaultLimit int
}

// NewHistoryTool creates a HistoryTool listing up to defaultLimit profiles
// when the caller gives no limit.
func NewHistoryTool(store ProfileStore, defaultLimit int) *HistoryTool {
	return &HistoryTool{store: store, defaultLimit: defaultLimit}
}

// Definition returns the MCP tool definition for edna_history.
func (t *HistoryTool) Definition() mcp.Tool {
	return mcp.NewTool("edna_history",
		mcp.WithDescription("List stored E-DNA profiles, newest first."),
		mcp.WithString("respondent",
			mcp.Description("Only list profiles of this respondent"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of profiles to list"),
		),
	)
}

// Handle processes the edna_history tool call.
func (t *HistoryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if t.store == nil {
		return mcp.NewToolResultError(errStoreDisabled.Error()), nil
	}

	respondent := req.GetString("respondent", "")
	entries, err := t.store.Recent(respondent, intArg(req, "limit", t.defaultLimit))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list profiles: %v", err)), nil
	}
	if len(entries) == 0 {
		return mcp.NewToolResultText("No stored profiles."), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Stored Profiles (%d)\n\n", len(entries)))
	for _, e := range entries {
		who := e.Respondent
		if who == "" {
			who = "anonymous"
		}
		sb.WriteString(fmt.Sprintf("- `%s` %s: %s, %s (%s)\n", e.ID, who, e.CoreType, e.Subtype, e.CompletedAt))
	}
	return mcp.NewToolResultText(sb.String()), nil
}
