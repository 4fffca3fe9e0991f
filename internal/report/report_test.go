package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/beliefs"
	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/scoring"
	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/scoring/scoringtest"
	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/taxonomy"
)

func scoreComplete(t *testing.T) *scoring.Composite {
	t.Helper()
	c, err := scoring.Score(scoringtest.Complete())
	require.NoError(t, err)
	return c
}

// --- Summarize ---

func TestSummarize_CompleteProfile(t *testing.T) {
	s := Summarize(scoreComplete(t))

	assert.Equal(t, "Architect: Master Strategist (60%)", s.Headline)
	assert.Equal(t, "Architect", s.CoreType)
	assert.Equal(t, taxonomy.Architect.Description(), s.CoreDescription)
	assert.Equal(t, "Master Strategist", s.Subtype)
	assert.Contains(t, s.Strengths, "Long-range planning")
	assert.Contains(t, s.Blindspots, "Over-planning before testing")
	assert.Equal(t,
		"Mirror awareness is moderate (66/100): you recognised Alchemist traits in 4 of 6 mirror questions.",
		s.MirrorAwareness)
	assert.Equal(t, "Screening indicators: ADHD (probable). "+scoring.ScreeningDisclaimer, s.Screening)
}

func TestSummarize_UnknownSubtypeHasEmptyLists(t *testing.T) {
	c := scoreComplete(t)
	c.Layer2.PrimarySubtype = "cartographer"
	s := Summarize(c)
	assert.Equal(t, "Cartographer", s.Subtype)
	assert.NotNil(t, s.Strengths)
	assert.Empty(t, s.Strengths)
	assert.Empty(t, s.SubtypeDescription)
}

func TestSummarize_ScreeningAlwaysCarriesDisclaimer(t *testing.T) {
	c := scoreComplete(t)
	c.Layer5 = scoring.CalculateLayer5(nil)
	s := Summarize(c)
	assert.Contains(t, s.Screening, "No neurodiversity indicators")
	assert.Contains(t, s.Screening, scoring.ScreeningDisclaimer)
}

func TestSummarize_BlurredMirrorNamesBothPoles(t *testing.T) {
	c := scoreComplete(t)
	c.Layer1.CoreType = taxonomy.Blurred
	assert.Contains(t, Summarize(c).MirrorAwareness, "Architect or Alchemist traits")
}

func TestSummarize_IsReproducible(t *testing.T) {
	c := scoreComplete(t)
	assert.Equal(t, Summarize(c), Summarize(c))
}

// --- Recommend ---

func TestRecommend_CompleteProfile(t *testing.T) {
	r := Recommend(scoreComplete(t))

	assert.Equal(t, []string{
		learningTips[taxonomy.AxisModality]["visual"],
		learningTips[taxonomy.AxisApproach]["structured"],
		learningTips[taxonomy.AxisConceptProcessing]["flexible"],
	}, r.Learning)

	assert.Equal(t, []string{
		"Ship smaller experiments earlier and let results refine the plan.",
		"Fund one growth bet fully for 90 days instead of starving several.",
		mindsetTips["growth"],
	}, r.Development)

	assert.Equal(t, []string{
		traitTools[taxonomy.TraitADHD],
		"Decision matrix template",
		"Quarterly planning board",
		"Whiteboard or mind-mapping app",
		"Weekly energy planner",
	}, r.Tools)
}

func TestRecommend_CapsEveryList(t *testing.T) {
	c := scoreComplete(t)
	c.Layer5.TraitsDetected = []taxonomy.Trait{taxonomy.TraitADHD, taxonomy.TraitDyslexia, taxonomy.TraitAutism}
	c.Layer3.MirrorAwarenessLevel = scoring.MirrorLow

	r := Recommend(c)
	assert.Len(t, r.Learning, MaxLearning)
	assert.Len(t, r.Development, MaxDevelopment)
	assert.Len(t, r.Tools, MaxTools)
	assert.Equal(t, traitTools[taxonomy.TraitDyslexia], r.Tools[1])
	assert.Equal(t, "Partner with an Alchemist on your next project and study how they decide.", r.Development[1])
}

func TestRecommend_ShortListsAreNotPadded(t *testing.T) {
	c := &scoring.Composite{
		Layer1: scoring.Layer1Result{CoreType: taxonomy.Blurred},
		Layer2: scoring.Layer2Result{PrimarySubtype: "unknown"},
		Layer3: scoring.Layer3Result{MirrorAwarenessLevel: scoring.MirrorHigh},
		Layer4: scoring.Layer4Result{Modality: "telepathy"},
		Layer6: scoring.Layer6Result{Mindset: "unknown", RiskTolerance: "unknown"},
		Layer7: scoring.Layer7Result{ConflictedBeliefs: []beliefs.ConflictedBelief{{CoachingPrompt: "Which wins?"}}},
	}
	r := Recommend(c)
	assert.Empty(t, r.Learning)
	assert.NotNil(t, r.Learning)
	assert.Equal(t, []string{"Which wins?"}, r.Development)
	assert.Equal(t, coreTypeTools[taxonomy.Blurred], r.Tools)
}
