package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"
)

// DeleteTool handles the edna_delete MCP tool.
type DeleteTool struct {
	store  ProfileStore
	logger *zap.Logger
}

// NewDeleteTool creates a DeleteTool with the given profile store.
func NewDeleteTool(store ProfileStore, logger *zap.Logger) *DeleteTool {
	return &DeleteTool{store: store, logger: logger}
}

// Definition returns the MCP tool definition for edna_delete.
func (t *DeleteTool) Definition() mcp.Tool {
	return mcp.NewTool("edna_delete",
		mcp.WithDescription("Permanently delete a stored E-DNA profile."),
		mcp.WithString("profile_id",
			mcp.Required(),
			mcp.Description("ID of the profile to delete"),
		),
	)
}

// Handle processes the edna_delete tool call.
func (t *DeleteTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if t.store == nil {
		return mcp.NewToolResultError(errStoreDisabled.Error()), nil
	}
	id := req.GetString("profile_id", "")
	if id == "" {
		return mcp.NewToolResultError("'profile_id' is required"), nil
	}

	if err := t.store.Delete(id); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to delete profile: %v", err)), nil
	}
	t.logger.Info("profile deleted", zap.String("id", id))
	return mcp.NewToolResultText(fmt.Sprintf("Profile %s deleted", id)), nil
}
