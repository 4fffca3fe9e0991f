package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/answers"
	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/report"
	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/scoring"
)

// ScoreTool handles the edna_score MCP tool.
type ScoreTool struct {
	store  ProfileStore
	logger *zap.Logger
}

// NewScoreTool creates a ScoreTool. store may be nil.
func NewScoreTool(store ProfileStore, logger *zap.Logger) *ScoreTool {
	return &ScoreTool{store: store, logger: logger}
}

// Definition returns the MCP tool definition for edna_score.
func (t *ScoreTool) Definition() mcp.Tool {
	return mcp.NewTool("edna_score",
		mcp.WithDescription(
			"Score a completed E-DNA quiz. Takes the full answer list and returns the "+
				"seven-layer profile summary. The profile is saved unless save=false.",
		),
		mcp.WithString("answers",
			mcp.Required(),
			mcp.Description(`JSON array of answers: [{"question_id":"q1","selected":"a","layer":1,"tags":["architect"]}, ...]`),
		),
		mcp.WithString("respondent",
			mcp.Description("Name or id of the person who took the quiz, used to group history"),
		),
		mcp.WithBoolean("save",
			mcp.Description("Persist the profile (default true when storage is enabled)"),
		),
	)
}

// Handle processes the edna_score tool call.
func (t *ScoreTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw := req.GetString("answers", "")
	if raw == "" {
		return mcp.NewToolResultError("'answers' is required"), nil
	}

	c, all, err := scoreJSON(raw)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scoring failed: %v", err)), nil
	}
	t.logger.Info("profile scored",
		zap.String("core_type", string(c.Layer1.CoreType)),
		zap.String("subtype", c.Layer2.PrimarySubtype),
		zap.Int("total_questions", c.TotalQuestions),
	)

	var sb strings.Builder
	writeSummary(&sb, c)
	writeCoverage(&sb, answers.Coverage(all))

	if t.store != nil && boolArg(req, "save", true) {
		rec, err := t.store.Save(req.GetString("respondent", ""), c, all)
		if err != nil {
			t.logger.Warn("profile not saved", zap.Error(err))
			sb.WriteString("\n_Profile could not be saved: " + err.Error() + "_\n")
		} else {
			sb.WriteString(fmt.Sprintf("\n**Profile ID**: `%s`\n", rec.ID))
		}
	}

	return mcp.NewToolResultText(sb.String()), nil
}

// writeSummary renders the report summary as compact Markdown.
func writeSummary(sb *strings.Builder, c *scoring.Composite) {
	s := report.Summarize(c)

	sb.WriteString("## " + s.Headline + "\n\n")
	sb.WriteString(s.CoreDescription + "\n\n")
	if s.SubtypeDescription != "" {
		sb.WriteString(s.SubtypeDescription + "\n\n")
	}
	if len(s.Strengths) > 0 {
		sb.WriteString("- **Strengths**: " + strings.Join(s.Strengths, ", ") + "\n")
	}
	if len(s.Blindspots) > 0 {
		sb.WriteString("- **Blindspots**: " + strings.Join(s.Blindspots, ", ") + "\n")
	}
	sb.WriteString("- **Mirror awareness**: " + s.MirrorAwareness + "\n")
	sb.WriteString("- **Learning style**: " + s.LearningStyle + "\n")
	sb.WriteString("- **Personality**: " + s.Personality + "\n")
	sb.WriteString("- **Beliefs**: " + s.Beliefs + "\n")
	sb.WriteString("- **Screening**: " + s.Screening + "\n")
}

// writeCoverage notes layers that scored on defaults because they had no
// answers.
func writeCoverage(sb *strings.Builder, cov answers.CoverageReport) {
	if cov.Complete() {
		return
	}
	names := make([]string, 0, len(cov.Missing))
	for _, l := range cov.Layers {
		if !l.Covered() {
			names = append(names, fmt.Sprintf("%d (%s)", l.Layer, l.Name))
		}
	}
	sb.WriteString(fmt.Sprintf("- **Coverage**: %d/100, no answers for layer %s\n", cov.Score, strings.Join(names, ", ")))
}
