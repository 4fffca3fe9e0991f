package scoring

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/scoring/scoringtest"
	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/taxonomy"
)

func stubNow(t *testing.T, at time.Time) {
	t.Helper()
	orig := timeNow
	timeNow = func() time.Time { return at }
	t.Cleanup(func() { timeNow = orig })
}

func TestScore_CompleteSubmission(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 30, 0, 0, time.FixedZone("CET", 3600))
	stubNow(t, at)

	c, err := Score(scoringtest.Complete())
	require.NoError(t, err)

	assert.Equal(t, AssessmentVersion, c.AssessmentVersion)
	assert.Equal(t, "1.0.0", c.AssessmentVersion)
	assert.Equal(t, 58, c.TotalQuestions)
	assert.True(t, c.CompletedAt.Equal(at))
	assert.Equal(t, time.UTC, c.CompletedAt.Location())

	assert.Equal(t, taxonomy.Architect, c.Layer1.CoreType)
	assert.Equal(t, 63, c.Layer1.Mastery)
	assert.Equal(t, "Master Strategist (60%)", c.Layer2.DisplayLabel)
	assert.Equal(t, MirrorModerate, c.Layer3.MirrorAwarenessLevel)
	assert.Equal(t, 4, c.Layer3.CorrectMirrorCount)
	assert.Equal(t, "visual", c.Layer4.Modality)
	assert.Equal(t, []taxonomy.Trait{taxonomy.TraitADHD}, c.Layer5.TraitsDetected)
	assert.Equal(t, "growth", c.Layer6.Mindset)
	assert.Equal(t, "Speed + Scarcity", c.Layer7.Misalignments[0].Type)
}

func TestScore_Layer3UsesLayer1CoreType(t *testing.T) {
	in := scoringtest.Join(
		scoringtest.Tagged(1, 8, "alchemist"),
		scoringtest.Subtyped("visionary_oracle", 2),
		scoringtest.Tagged(3, 3, "architect"),
		scoringtest.Tagged(3, 3, "alchemist"),
		scoringtest.Valued(6, "mindset", "growth", 1),
		scoringtest.Valued(7, "growth_belief", "bold_scaling", 1),
	)
	c, err := Score(in)
	require.NoError(t, err)
	assert.Equal(t, taxonomy.Alchemist, c.Layer1.CoreType)
	assert.Equal(t, 3, c.Layer3.CorrectMirrorCount, "alchemists recognise architect tags")
}

func TestScore_Deterministic(t *testing.T) {
	in := scoringtest.Complete()

	first, err := Score(in)
	require.NoError(t, err)
	second, err := Score(in)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second, cmpopts.IgnoreFields(Composite{}, "CompletedAt")); diff != "" {
		t.Errorf("Score() not deterministic (-first +second):\n%s", diff)
	}
}

func TestScore_PropagatesEmptyLayerErrors(t *testing.T) {
	full := scoringtest.Complete()

	cases := map[int]bool{1: true, 2: true, 6: true, 7: true, 3: false, 4: false, 5: false}
	for layer, fails := range cases {
		var in = full[:0:0]
		for _, a := range full {
			if a.Layer != layer {
				in = append(in, a)
			}
		}

		c, err := Score(in)
		if !fails {
			require.NoError(t, err, "layer %d", layer)
			assert.Equal(t, len(in), c.TotalQuestions)
			continue
		}
		require.Error(t, err, "layer %d", layer)
		assert.Nil(t, c)
		var empty *EmptyLayerError
		require.True(t, errors.As(err, &empty))
		assert.Equal(t, layer, empty.Layer)
	}
}

func TestScore_MissingLayer5KeepsDisclaimer(t *testing.T) {
	var in = scoringtest.Complete()[:0:0]
	for _, a := range scoringtest.Complete() {
		if a.Layer != 5 {
			in = append(in, a)
		}
	}
	c, err := Score(in)
	require.NoError(t, err)
	assert.Equal(t, ScreeningDisclaimer, c.Layer5.Disclaimer)
	assert.Empty(t, c.Layer5.Flags)
}

func TestScore_ConcurrentCallsShareNothing(t *testing.T) {
	defer goleak.VerifyNone(t)

	want, err := Score(scoringtest.Complete())
	require.NoError(t, err)

	const workers = 16
	results := make([]*Composite, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = Score(scoringtest.Complete())
		}(i)
	}
	wg.Wait()

	for i := range results {
		require.NoError(t, errs[i])
		if diff := cmp.Diff(want, results[i], cmpopts.IgnoreFields(Composite{}, "CompletedAt")); diff != "" {
			t.Errorf("worker %d diverged (-want +got):\n%s", i, diff)
		}
	}
}

func TestComposite_JSONFieldNames(t *testing.T) {
	c, err := Score(scoringtest.Complete())
	require.NoError(t, err)

	data, err := json.Marshal(c)
	require.NoError(t, err)

	var generic map[string]any
	require.NoError(t, json.Unmarshal(data, &generic))
	for _, key := range []string{
		"layer1", "layer2", "layer3", "layer4", "layer5", "layer6", "layer7",
		"assessment_version", "completed_at", "total_questions",
	} {
		assert.Contains(t, generic, key)
	}

	layer2 := generic["layer2"].(map[string]any)
	assert.Contains(t, layer2, "secondary_subtype")
	assert.Nil(t, layer2["secondary_subtype"])

	layer6 := generic["layer6"].(map[string]any)
	assert.Contains(t, layer6["mindset_details"], "growth_norm")
}

func TestEmptyLayerError_Message(t *testing.T) {
	err := error(&EmptyLayerError{Layer: 7})
	assert.EqualError(t, err, "layer 7: no answers supplied")
	assert.ErrorIs(t, err, ErrEmptyLayer)
}
