package playbook

import (
	"strings"
	"testing"

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
	return c
}

func headings(p *Playbook) []string {
	var out []string
	for _, s := range p.Sections {
		out = append(out, s.Heading)
	}
	return out
}

func TestGenerate_CompleteProfile(t *testing.T) {
	p := Generate(scoreComplete(t))

	assert.Equal(t, "The Master Strategist Playbook", p.Title)
	assert.Equal(t, "A personalised plan for an E-DNA Architect, Master Strategist (60%).", p.Subtitle)
	assert.Equal(t, scoring.ScreeningDisclaimer, p.Disclaimer)
	assert.Equal(t, []string{
		HeadingIdentity,
		HeadingStrengths,
		HeadingBlindspots,
		HeadingLearning,
		HeadingDecisions,
		HeadingBeliefs,
		HeadingMirror,
		HeadingSupport,
		HeadingNinetyDayPlan,
		HeadingTools,
	}, headings(p))
}

func TestGenerate_BeliefItems(t *testing.T) {
	p := Generate(scoreComplete(t))
	s, ok := p.Section(HeadingBeliefs)
	require.True(t, ok)

	require.Len(t, s.Items, 6)
	assert.Equal(t, "Lead with bold scaling (60%).", s.Items[0])
	assert.Equal(t, "Lead with rapid growth (100%).", s.Items[1])
	assert.Equal(t, "Lead with scarcity (100%).", s.Items[2])
	assert.Contains(t, s.Items[3], "scale boldly")
	assert.Contains(t, s.Items[4], "mission and margin")
	assert.True(t, strings.HasPrefix(s.Items[5], "Speed + Scarcity: "))
}

func TestGenerate_NinetyDayPlanFollowsDevelopmentOrder(t *testing.T) {
	p := Generate(scoreComplete(t))
	s, ok := p.Section(HeadingNinetyDayPlan)
	require.True(t, ok)
	require.Len(t, s.Items, 3)
	assert.Equal(t, "Days 1-30: Ship smaller experiments earlier and let results refine the plan.", s.Items[0])
	assert.True(t, strings.HasPrefix(s.Items[1], "Days 31-60: "))
	assert.True(t, strings.HasPrefix(s.Items[2], "Days 61-90: "))
}

func TestGenerate_SupportOnlyWhenTraitsDetected(t *testing.T) {
	c := scoreComplete(t)
	s, ok := Generate(c).Section(HeadingSupport)
	require.True(t, ok)
	assert.Equal(t, []string{"ADHD: " + accommodations["adhd"]}, s.Items)

	c.Layer5 = scoring.CalculateLayer5(nil)
	_, ok = Generate(c).Section(HeadingSupport)
	assert.False(t, ok)
}

func TestGenerate_MixedSubtypeMentionsSecondary(t *testing.T) {
	c := scoreComplete(t)
	secondary := "systemised_builder"
	c.Layer2.SecondarySubtype = &secondary
	c.Layer2.IsMixed = true

	s, ok := Generate(c).Section(HeadingIdentity)
	require.True(t, ok)
	assert.Contains(t, s.Items, "Your profile is mixed: you are moving toward Systemised Builder.")
}

func TestMarkdown_RendersEverySection(t *testing.T) {
	r, err := templates.NewRenderer()
	require.NoError(t, err)

	p := Generate(scoreComplete(t))
	out, err := Markdown(r, p)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "# The Master Strategist Playbook\n"))
	for _, h := range headings(p) {
		assert.Contains(t, out, "\n## "+h+"\n")
	}
	assert.True(t, strings.HasSuffix(out, scoring.ScreeningDisclaimer+"\n"))

	again, err := Markdown(r, Generate(scoreComplete(t)))
	require.NoError(t, err)
	assert.Equal(t, out, again, "output must be reproducible")
}

func TestFormatShare(t *testing.T) {
	assert.Equal(t, "60%", formatShare(60))
	assert.Equal(t, "37.5%", formatShare(37.5))
	assert.Equal(t, "33.3%", formatShare(100.0/3))
}
