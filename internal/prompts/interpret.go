package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// InterpretPrompt handles the edna-interpret MCP prompt.
// It asks the assistant to explain a stored profile in plain language.
type InterpretPrompt struct{}

// NewInterpretPrompt creates an InterpretPrompt.
func NewInterpretPrompt() *InterpretPrompt {
	return &InterpretPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *InterpretPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("edna-interpret",
		mcp.WithPromptDescription(
			"Explain a stored E-DNA profile: what each layer means, where beliefs conflict, "+
				"and what to work on first.",
		),
		mcp.WithArgument("profile_id",
			mcp.ArgumentDescription("ID of the stored profile"),
			mcp.RequiredArgument(),
		),
	)
}

// Handle processes the edna-interpret prompt request.
func (p *InterpretPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	id := req.Params.Arguments["profile_id"]
	if id == "" {
		return nil, fmt.Errorf("profile_id is required")
	}

	return &mcp.GetPromptResult{
		Description: "Interpret E-DNA profile " + id,
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"Please run `edna_export` with profile_id %q and format markdown.\n\n"+
						"Then:\n"+
						"1. Summarise the core type and subtype in two sentences\n"+
						"2. Explain any dominant beliefs, belief conflicts and misalignment patterns\n"+
						"3. Relate the learning style and personality to how I should plan my week\n"+
						"4. Run `edna_recommendations` for the same profile and pick the one change to start with",
					id,
				)),
			},
		},
	}, nil
}
