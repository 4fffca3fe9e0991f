// Package prompts provides the MCP prompts of the E-DNA server.
//
// Prompts are conversation starters: they tell the assistant which
// tools to call and how to present the results.
package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// StartPrompt handles the edna-start MCP prompt.
// It walks the assistant through collecting answers and scoring them.
type StartPrompt struct{}

// NewStartPrompt creates a StartPrompt.
func NewStartPrompt() *StartPrompt {
	return &StartPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *StartPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("edna-start",
		mcp.WithPromptDescription(
			"Score a completed E-DNA quiz and walk the respondent through their profile.",
		),
		mcp.WithArgument("respondent",
			mcp.ArgumentDescription("Name of the person who took the quiz"),
		),
	)
}

// Handle processes the edna-start prompt request.
func (p *StartPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	who := "the respondent"
	if name, ok := req.Params.Arguments["respondent"]; ok && name != "" {
		who = name
	}

	return &mcp.GetPromptResult{
		Description: "Score an E-DNA quiz",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"I have the completed E-DNA quiz answers for %s.\n\n"+
						"1. Collect the answers as a JSON array (question_id, selected, layer, plus tags, dimension or subtype where the question has them)\n"+
						"2. Call `edna_score` with the answers and respondent set to %q\n"+
						"3. Explain the core type and subtype first, then mirror awareness, learning style, personality and beliefs\n"+
						"4. Present any screening flags gently and repeat that they are not a diagnosis\n"+
						"5. Offer `edna_playbook` with the returned profile ID as the next step",
					who, who,
				)),
			},
		},
	}, nil
}
