// Package scoring implements the seven E-DNA layer calculators and the
// orchestrator that assembles them into a Composite profile.
//
// Every calculator is a pure function of the answer list. Layer 3 also
// takes the core type produced by Layer 1. Nothing here validates answer
// counts: a layer with too few or too many answers scores against its
// actual size.
package scoring

import (
	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/answers"
	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/taxonomy"
)

// Layer 1 decision thresholds, in normalized points.
const (
	CoreConfidentMinNorm = 50.0
	CoreConfidentMinGap  = 15.0
)

// tagPoints is the raw score one tag awards to its archetype.
var tagPoints = map[taxonomy.CoreType]float64{
	taxonomy.Architect: 1,
	taxonomy.Alchemist: 1,
	taxonomy.Blurred:   0.5,
}

// Layer1Result is the core type classification.
type Layer1Result struct {
	CoreType         taxonomy.CoreType             `json:"core_type"`
	Mastery          int                           `json:"mastery"`
	NormalizedScores map[taxonomy.CoreType]int     `json:"normalized_scores"`
	RawScores        map[taxonomy.CoreType]float64 `json:"raw_scores"`
}

// CalculateLayer1 classifies the respondent's core type from the Layer 1
// answers in all.
//
// A type wins outright with at least 50 points and a 15 point lead. An
// Architect/Alchemist pair closer than that is Blurred. Anything else
// falls back to the leader.
func CalculateLayer1(all []answers.Answer) (Layer1Result, error) {
	layer := answers.ForLayer(all, 1)
	if len(layer) == 0 {
		return Layer1Result{}, &EmptyLayerError{Layer: 1}
	}

	raw := make(map[taxonomy.CoreType]float64, len(taxonomy.CoreTypes))
	for _, c := range taxonomy.CoreTypes {
		raw[c] = 0
	}
	for _, a := range layer {
		for _, c := range taxonomy.CoreTypes {
			if a.HasTag(string(c)) {
				raw[c] += tagPoints[c]
			}
		}
	}

	norms := make(map[taxonomy.CoreType]float64, len(raw))
	rounded := make(map[taxonomy.CoreType]int, len(raw))
	for c, r := range raw {
		norms[c] = percent(r, len(layer))
		rounded[c] = round(norms[c])
	}

	top, second := topTwo(rankDesc(taxonomy.CoreTypes, norms))
	gap := top.norm - second.norm

	core := top.key
	confident := top.norm >= CoreConfidentMinNorm && gap >= CoreConfidentMinGap
	if !confident && gap < CoreConfidentMinGap && isOpposingPair(top.key, second.key) {
		core = taxonomy.Blurred
	}

	return Layer1Result{
		CoreType:         core,
		Mastery:          round(top.norm),
		NormalizedScores: rounded,
		RawScores:        raw,
	}, nil
}

func isOpposingPair(a, b taxonomy.CoreType) bool {
	return (a == taxonomy.Architect && b == taxonomy.Alchemist) ||
		(a == taxonomy.Alchemist && b == taxonomy.Architect)
}
