// Package resources implements the MCP resources of the E-DNA server.
//
// Resources provide read-only data that the host can consume for context.
// They use URI-based addressing (edna://...) following MCP conventions.
package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/results"
)

// Resource URIs.
const (
	RecentURI = "edna://profiles/recent"
	StatsURI  = "edna://profiles/stats"
)

// Store is the read side of the profile store used by the resources.
type Store interface {
	Recent(respondent string, limit int) ([]results.Entry, error)
	Stats() (*results.Stats, error)
}

// Handler manages E-DNA resource endpoints.
type Handler struct {
	store Store
	limit int
}

// NewHandler creates a resource Handler listing at most limit recent
// profiles.
func NewHandler(store Store, limit int) *Handler {
	return &Handler{store: store, limit: limit}
}

// RecentResource returns the MCP resource definition for recent profiles.
func (h *Handler) RecentResource() mcp.Resource {
	return mcp.NewResource(
		RecentURI,
		"Recent E-DNA Profiles",
		mcp.WithResourceDescription("The most recently stored profiles, newest first"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleRecent returns the recent profiles as JSON.
func (h *Handler) HandleRecent(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	entries, err := h.store.Recent("", h.limit)
	if err != nil {
		return errorResource(req.Params.URI, err.Error()), nil
	}
	return jsonResource(req.Params.URI, entries)
}

// StatsResource returns the MCP resource definition for store statistics.
func (h *Handler) StatsResource() mcp.Resource {
	return mcp.NewResource(
		StatsURI,
		"E-DNA Profile Statistics",
		mcp.WithResourceDescription("Profile counts and the core type distribution"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleStats returns the store statistics as JSON.
func (h *Handler) HandleStats(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	stats, err := h.store.Stats()
	if err != nil {
		return errorResource(req.Params.URI, err.Error()), nil
	}
	return jsonResource(req.Params.URI, stats)
}

func jsonResource(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// errorResource returns a resource with an error message.
func errorResource(uri, message string) []mcp.ResourceContents {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/plain",
			Text:     fmt.Sprintf("Error: %s", message),
		},
	}
}
