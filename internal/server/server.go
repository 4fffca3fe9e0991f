// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it creates concrete implementations and
// injects them into the tools, prompts and resources that depend on
// abstractions. No business logic lives here.
package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/config"
	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/prompts"
	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/resources"
	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/results"
	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/templates"
	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/tools"
)

// Version is set at build time via ldflags.
var Version = "dev"

// toolHandler is the shape every tool in internal/tools shares.
type toolHandler interface {
	Definition() mcp.Tool
	Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// New creates and configures the MCP server with all tools, prompts,
// and resources registered. This is the single place where all
// dependencies are resolved.
//
// The returned cleanup function closes the profile store and must be
// called on shutdown. It is always non-nil and safe to call even if the
// store is disabled.
func New(cfg *config.Config, logger *zap.Logger) (*server.MCPServer, func(), error) {
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, noop, err
	}

	s := server.NewMCPServer(
		"edna",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// The store is an optional subsystem: if it cannot open, scoring and
	// export still work on ad-hoc answers.
	cleanup := noop
	store := openStore(cfg, logger)
	var profiles tools.ProfileStore
	if store != nil {
		profiles = store
		cleanup = func() {
			if err := store.Close(); err != nil {
				logger.Warn("profile store close", zap.Error(err))
			}
		}
	}

	for _, t := range buildTools(profiles, renderer, cfg.HistoryLimit, logger) {
		s.AddTool(t.Definition(), t.Handle)
	}

	startPrompt := prompts.NewStartPrompt()
	s.AddPrompt(startPrompt.Definition(), startPrompt.Handle)

	interpretPrompt := prompts.NewInterpretPrompt()
	s.AddPrompt(interpretPrompt.Definition(), interpretPrompt.Handle)

	if store != nil {
		resourceHandler := resources.NewHandler(store, cfg.HistoryLimit)
		s.AddResource(resourceHandler.RecentResource(), resourceHandler.HandleRecent)
		s.AddResource(resourceHandler.StatsResource(), resourceHandler.HandleStats)
	}

	logger.Info("mcp server ready",
		zap.String("version", Version),
		zap.Bool("store", store != nil),
	)
	return s, cleanup, nil
}

// openStore returns nil when the store is disabled or fails to open.
func openStore(cfg *config.Config, logger *zap.Logger) *results.Store {
	if !cfg.StoreEnabled {
		logger.Info("profile store disabled by configuration")
		return nil
	}
	store, err := results.New(results.Config{DataDir: cfg.DataDir, HistoryLimit: cfg.HistoryLimit})
	if err != nil {
		logger.Warn("profile store disabled", zap.Error(err))
		return nil
	}
	return store
}

// buildTools lists the tools to register. Tools that only make sense
// with stored profiles are left out when store is nil.
func buildTools(store tools.ProfileStore, renderer templates.Renderer, historyLimit int, logger *zap.Logger) []toolHandler {
	list := []toolHandler{
		tools.NewScoreTool(store, logger),
		tools.NewExportTool(store, renderer),
		tools.NewPlaybookTool(store, renderer),
		tools.NewRecommendationsTool(store),
	}
	if store == nil {
		return list
	}
	return append(list,
		tools.NewHistoryTool(store, historyLimit),
		tools.NewStatsTool(store),
		tools.NewDeleteTool(store, logger),
	)
}

func noop() {}

// serverInstructions returns the system instructions that tell the AI
// how to use the E-DNA tools.
func serverInstructions() string {
	return `You have access to the E-DNA assessment server. It scores a completed
E-DNA quiz across seven layers: core type, subtype, mirror pair awareness,
learning style, neurodiversity screening, mindset and personality, and
meta-beliefs.

## Scoring

Call edna_score with the full answer list as a JSON array. Each answer has
question_id, selected and layer (1-7). Layer 1 answers carry archetype tags,
Layer 2 answers a subtype, and layers 4, 6 and 7 a dimension. Scoring is
deterministic: the same answers always give the same profile.

## After scoring

- edna_export returns the Markdown report or the JSON document
- edna_playbook returns the personalised playbook and 90-day plan
- edna_recommendations lists learning, development and tool suggestions
- edna_history, edna_stats and edna_delete manage stored profiles

Pass profile_id to reuse a stored profile, or answers to work on the fly.

## Screening

Layer 5 results are screening indicators only. Never present them as a
diagnosis, and always relay the disclaimer.`
}
