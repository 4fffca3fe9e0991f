package scoring

import (
	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/answers"
	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/taxonomy"
)

// Mirror awareness bands.
const (
	MirrorLow      = "low"
	MirrorModerate = "moderate"
	MirrorHigh     = "high"
)

// Layer3Result is the mirror pair awareness band.
type Layer3Result struct {
	MirrorAwarenessLevel string `json:"mirror_awareness_level"`
	MirrorAwarenessScore int    `json:"mirror_awareness_score"`
	CorrectMirrorCount   int    `json:"correct_mirror_count"`
	TotalMirrorQuestions int    `json:"total_mirror_questions"`
}

// CalculateLayer3 counts Layer 3 answers that recognise the archetype
// opposite to core. A Blurred respondent may recognise either pole; each
// answer counts at most once. An empty layer scores in the low band.
func CalculateLayer3(all []answers.Answer, core taxonomy.CoreType) Layer3Result {
	layer := answers.ForLayer(all, 3)

	count := 0
	for _, a := range layer {
		if recognisesMirror(a, core) {
			count++
		}
	}

	level, score := mirrorBand(count)
	return Layer3Result{
		MirrorAwarenessLevel: level,
		MirrorAwarenessScore: score,
		CorrectMirrorCount:   count,
		TotalMirrorQuestions: len(layer),
	}
}

func recognisesMirror(a answers.Answer, core taxonomy.CoreType) bool {
	if core == taxonomy.Blurred {
		return a.HasTag(string(taxonomy.Architect)) || a.HasTag(string(taxonomy.Alchemist))
	}
	return a.HasTag(string(core.Mirror()))
}

// mirrorBand maps a count to 0-2 low/33, 3-4 moderate/66, 5+ high/99.
func mirrorBand(count int) (string, int) {
	switch {
	case count >= 5:
		return MirrorHigh, 99
	case count >= 3:
		return MirrorModerate, 66
	default:
		return MirrorLow, 33
	}
}
