package beliefs

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/answers"
	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/taxonomy"
)

// beliefAnswers builds n Layer 7 answers on one dimension per (value, n) pair.
func beliefAnswers(dimension string, counts ...any) []answers.Answer {
	var out []answers.Answer
	for i := 0; i < len(counts); i += 2 {
		value := counts[i].(string)
		n := counts[i+1].(int)
		for j := 0; j < n; j++ {
			out = append(out, answers.Answer{
				QuestionID: fmt.Sprintf("%s-%s-%d", dimension, value, j),
				Selected:   value,
				Layer:      7,
				Dimension:  dimension,
			})
		}
	}
	return out
}

// --- Axis scoring ---

func TestScoreAxes_DefaultsTo50(t *testing.T) {
	scores := ScoreAxes(nil)
	require.Len(t, scores, len(taxonomy.BeliefAxes))
	for _, axis := range taxonomy.BeliefAxes {
		assert.Equal(t, DefaultAxisScore, scores[axis], "axis %s", axis)
	}
}

func TestScoreAxes_WeightedAverage(t *testing.T) {
	// 2 high (85) + 1 balanced (50) + 1 low (15) = 235 / 4 = 58.75 → 59.
	in := beliefAnswers("growth_belief", "bold_scaling", 2, "steady_growth", 1, "quality_first", 1)
	scores := ScoreAxes(in)
	assert.Equal(t, 59, scores[taxonomy.GrowthPhilosophy])
	assert.Equal(t, 50, scores[taxonomy.ResourceWorldview])
}

func TestScoreAxes_AllHighPole(t *testing.T) {
	in := beliefAnswers("money_belief", "abundance", 3)
	assert.Equal(t, 85, ScoreAxes(in)[taxonomy.ResourceWorldview])
}

func TestScoreAxes_IgnoresUnknownDimensions(t *testing.T) {
	in := beliefAnswers("favourite_food", "pizza", 4)
	for _, axis := range taxonomy.BeliefAxes {
		assert.Equal(t, DefaultAxisScore, ScoreAxes(in)[axis])
	}
}

// --- Dominance ---

func TestDetectDominant_ExactThresholdIsDominant(t *testing.T) {
	// 10/25 = 40%, 7/25 = 28%: gap exactly 12.
	in := beliefAnswers("growth_belief", "bold_scaling", 10, "quality_first", 7, "steady", 4, "measured", 4)
	got := DetectDominant(in)
	require.Len(t, got, 1)
	assert.Equal(t, "bold_scaling", got[0].Category)
	assert.Equal(t, 40.0, got[0].NormalizedScore)
	assert.True(t, got[0].IsDominant)
}

func TestDetectDominant_GapOfElevenIsNotDominant(t *testing.T) {
	// 40/100 vs 29/100: gap 11.
	in := beliefAnswers("growth_belief", "bold_scaling", 40, "quality_first", 29, "steady", 16, "measured", 15)
	got := DetectDominant(in)
	require.Len(t, got, 1)
	assert.Equal(t, "bold_scaling", got[0].Category)
	assert.False(t, got[0].IsDominant, "top value is still reported, but not dominant")
}

func TestDetectDominant_BelowFloor(t *testing.T) {
	in := beliefAnswers("purpose_belief", "purpose_driven", 3, "profit_first", 1, "a", 1, "b", 1, "c", 1, "d", 1)
	got := DetectDominant(in)
	require.Len(t, got, 1)
	assert.InDelta(t, 37.5, got[0].NormalizedScore, 1e-9)
	assert.False(t, got[0].IsDominant)
}

func TestDetectDominant_OnePerDimensionInFirstSeenOrder(t *testing.T) {
	in := append(beliefAnswers("social_belief", "collaborative", 2),
		beliefAnswers("change_belief", "embrace_change", 1, "stability_first", 1)...)
	got := DetectDominant(in)
	require.Len(t, got, 2)
	assert.Equal(t, "social_belief", got[0].Dimension)
	assert.True(t, got[0].IsDominant)
	assert.Equal(t, "change_belief", got[1].Dimension)
	assert.Equal(t, "embrace_change", got[1].Category, "ties keep first-seen order")
	assert.False(t, got[1].IsDominant)

	assert.Len(t, Dominant(got), 1)
}

// --- Conflicts ---

func TestDetectConflicts_BothAboveThirty(t *testing.T) {
	in := beliefAnswers("growth_belief", "bold_scaling", 7, "quality_first", 7, "steady", 6)
	got := DetectConflicts(in)
	require.Len(t, got, 1)
	c := got[0]
	assert.Equal(t, "growth_belief", c.Dimension)
	assert.Equal(t, "bold_scaling", c.Belief1)
	assert.Equal(t, 35.0, c.Belief1Norm)
	assert.Equal(t, "quality_first", c.Belief2)
	assert.Equal(t, 35.0, c.Belief2Norm)
	assert.Equal(t, ConflictTypeDissonance, c.ConflictType)
	assert.NotEmpty(t, c.CoachingPrompt)
}

func TestDetectConflicts_ReportedAlongsideDominance(t *testing.T) {
	// bold_scaling 50% is dominant (gap 20) and still conflicts with quality_first 30%.
	in := beliefAnswers("growth_belief", "bold_scaling", 5, "quality_first", 3, "steady", 2)
	dominant := DetectDominant(in)
	require.Len(t, dominant, 1)
	assert.True(t, dominant[0].IsDominant)

	conflicts := DetectConflicts(in)
	require.Len(t, conflicts, 1)
	assert.Equal(t, 30.0, conflicts[0].Belief2Norm)
}

func TestDetectConflicts_OneSideBelowThreshold(t *testing.T) {
	in := beliefAnswers("growth_belief", "bold_scaling", 8, "quality_first", 2)
	assert.Empty(t, DetectConflicts(in))
}

func TestDetectConflicts_UnpairedValuesNeverConflict(t *testing.T) {
	in := beliefAnswers("growth_belief", "steady", 5, "measured", 5)
	assert.Empty(t, DetectConflicts(in))
}

func TestCoachingPrompt_FallbackIsGeneric(t *testing.T) {
	assert.Contains(t, CoachingPrompt("growth_belief", "quality_first", "bold_scaling"), "scale boldly")
	assert.Contains(t, CoachingPrompt("odd_belief", "x", "y"), `"x"`)
}

// --- Misalignment ---

func TestDetectMisalignments_SpeedAndScarcity(t *testing.T) {
	scores := AxisScores{
		taxonomy.GrowthPhilosophy:  85,
		taxonomy.ResourceWorldview: 15,
	}
	got := DetectMisalignments(scores)
	require.Len(t, got, 1)
	assert.Equal(t, "Speed + Scarcity", got[0].Type)
	assert.NotEmpty(t, got[0].Remedy)
}

func TestDetectMisalignments_BoundariesAreStrict(t *testing.T) {
	scores := AxisScores{
		taxonomy.GrowthPhilosophy:  70,
		taxonomy.ResourceWorldview: 30,
	}
	assert.Empty(t, DetectMisalignments(scores))
}

func TestDetectMisalignments_SeveralCanFire(t *testing.T) {
	scores := AxisScores{
		taxonomy.GrowthPhilosophy:   85,
		taxonomy.ResourceWorldview:  15,
		taxonomy.ChangeAppetite:     85,
		taxonomy.SocialWorldview:    15,
		taxonomy.PurposeFilter:      50,
		taxonomy.MetricsOrientation: 50,
	}
	got := DetectMisalignments(scores)
	require.Len(t, got, 2)
	assert.Equal(t, "Speed + Scarcity", got[0].Type)
	assert.Equal(t, "Lone Disruptor", got[1].Type)
}

func TestDetectMisalignments_NeutralScores(t *testing.T) {
	assert.Empty(t, DetectMisalignments(ScoreAxes(nil)))
}
