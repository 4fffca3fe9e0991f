package export

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/scoring"
	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/scoring/scoringtest"
	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/templates"
)

func scoreComplete(t *testing.T) *scoring.Composite {
	t.Helper()
	c, err := scoring.Score(scoringtest.Complete())
	require.NoError(t, err)
	c.CompletedAt = time.Date(2026, 3, 14, 8, 30, 0, 123456789, time.UTC)
	return c
}

func renderMarkdown(t *testing.T, c *scoring.Composite) string {
	t.Helper()
	r, err := templates.NewRenderer()
	require.NoError(t, err)
	out, err := Markdown(r, c)
	require.NoError(t, err)
	return out
}

// --- Markdown ---

func TestMarkdown_SectionOrder(t *testing.T) {
	out := renderMarkdown(t, scoreComplete(t))

	last := -1
	for _, h := range []string{
		"## Layer 1: Core Type",
		"## Layer 2: Subtype",
		"## Layer 3: Mirror Pair Awareness",
		"## Layer 4: Learning Style",
		"## Layer 5: Neurodiversity Screening",
		"## Layer 6: Mindset & Personality",
		"## Layer 7: Meta-Beliefs & Values",
	} {
		idx := strings.Index(out, h)
		require.GreaterOrEqual(t, idx, 0, "missing %q", h)
		assert.Greater(t, idx, last, "%q out of order", h)
		last = idx
	}
}

func TestMarkdown_Fields(t *testing.T) {
	out := renderMarkdown(t, scoreComplete(t))

	for _, line := range []string{
		"- Assessment version: 1.0.0",
		"- Completed at: 2026-03-14T08:30:00Z",
		"- Total questions: 58",
		"- Core type: Architect",
		"- Mastery: 63/100",
		"- Alchemist: 38/100",
		"- Subtype: Master Strategist (60%)",
		"- Secondary subtype: none",
		"- Mixed: no",
		"- Mirror answers recognised: 4 of 6",
		"- Awareness score: 66/100",
		"- Modality: visual",
		"- Pace: versatile",
		"- ADHD: 60/100",
		"- Dyslexia: 20/100",
		"- Mindset delta: 50",
		"- Adaptability: 1",
		"- Growth Philosophy: 71/100",
		"- Resource Worldview: 15/100",
		"- bold scaling: 60% (dominant)",
		"- purpose driven: 50%",
		"### Belief Conflicts",
		"- Probable ADHD traits — recommend referral to specialist.",
		"_" + scoring.ScreeningDisclaimer + "_",
	} {
		assert.Contains(t, out, line+"\n")
	}
}

func TestMarkdown_Reproducible(t *testing.T) {
	c := scoreComplete(t)
	assert.Equal(t, renderMarkdown(t, c), renderMarkdown(t, c))
}

type failingRenderer struct{}

func (failingRenderer) Render(string, any) (string, error) {
	return "", assert.AnError
}

func TestMarkdown_RendererError(t *testing.T) {
	_, err := Markdown(failingRenderer{}, scoreComplete(t))
	require.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "rendering profile")
}

// --- JSON ---

func TestJSON_RoundTrip(t *testing.T) {
	c := scoreComplete(t)

	data, err := JSON(c)
	require.NoError(t, err)

	p, err := ParseProfile(data)
	require.NoError(t, err)

	if diff := cmp.Diff(c, p.Composite(), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("round trip lost data (-want +got):\n%s", diff)
	}
	assert.Equal(t, "Architect: Master Strategist (60%)", p.Summary.Headline)
	assert.Len(t, p.Recommendations.Tools, 5)
}

func TestJSON_FieldNames(t *testing.T) {
	data, err := JSON(scoreComplete(t))
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, "1.0.0", doc["assessment_version"])
	assert.Equal(t, "2026-03-14T08:30:00.123456789Z", doc["completed_at"])
	assert.EqualValues(t, 58, doc["total_questions"])

	layer1 := doc["layer1"].(map[string]any)
	assert.Equal(t, "architect", layer1["core_type"])
	assert.EqualValues(t, 63, layer1["mastery"])

	layer5 := doc["layer5"].(map[string]any)
	assert.Equal(t, scoring.ScreeningDisclaimer, layer5["disclaimer"])

	layer7 := doc["layer7"].(map[string]any)
	conflict := layer7["conflicted_beliefs"].([]any)[0].(map[string]any)
	for _, key := range []string{"dimension", "belief1", "belief1_norm", "belief2", "belief2_norm", "conflict_type", "coaching_prompt"} {
		assert.Contains(t, conflict, key)
	}
	assert.Equal(t, "cognitive_dissonance", conflict["conflict_type"])

	dominant := layer7["dominant_beliefs"].([]any)[0].(map[string]any)
	for _, key := range []string{"category", "normalized_score", "is_dominant"} {
		assert.Contains(t, dominant, key)
	}
}

func TestParseProfile_Errors(t *testing.T) {
	_, err := ParseProfile([]byte(`{"layer1":`))
	assert.ErrorContains(t, err, "decoding profile")

	_, err = ParseProfile([]byte(`{"total_questions": 3}`))
	assert.ErrorContains(t, err, "missing assessment_version")
}

// --- Terminal ---

func TestRenderTerminal_Plain(t *testing.T) {
	md := renderMarkdown(t, scoreComplete(t))
	out, err := RenderTerminal(md, 0, true)
	require.NoError(t, err)
	assert.Contains(t, out, "Layer 1: Core Type")
	assert.Contains(t, out, "Master Strategist")
}
