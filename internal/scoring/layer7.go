package scoring

import (
	"fmt"
	"strings"

	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/answers"
	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/beliefs"
	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/taxonomy"
)

// maxSummaryValues caps the dominant values named in the Layer 7 summary.
const maxSummaryValues = 3

// Layer7Result is the meta-beliefs analysis.
type Layer7Result struct {
	AxisScores        beliefs.AxisScores            `json:"axis_scores"`
	DominantBeliefs   []beliefs.BeliefCategory      `json:"dominant_beliefs"`
	ConflictedBeliefs []beliefs.ConflictedBelief    `json:"conflicted_beliefs"`
	Misalignments     []beliefs.MisalignmentPattern `json:"misalignments"`
	Summary           string                        `json:"summary"`
}

// CalculateLayer7 runs the belief analysis over the Layer 7 answers.
// DominantBeliefs holds the top value of every dimension; only entries
// with IsDominant set are named in the summary.
func CalculateLayer7(all []answers.Answer) (Layer7Result, error) {
	layer := answers.ForLayer(all, 7)
	if len(layer) == 0 {
		return Layer7Result{}, &EmptyLayerError{Layer: 7}
	}

	res := Layer7Result{
		AxisScores:        beliefs.ScoreAxes(layer),
		DominantBeliefs:   nonNil(beliefs.DetectDominant(layer)),
		ConflictedBeliefs: nonNil(beliefs.DetectConflicts(layer)),
	}
	res.Misalignments = nonNil(beliefs.DetectMisalignments(res.AxisScores))
	res.Summary = beliefSummary(res)
	return res, nil
}

// beliefSummary names up to three dominant values, then the conflict
// count, then the first misalignment, each only when present.
func beliefSummary(r Layer7Result) string {
	var parts []string

	var values []string
	for _, c := range beliefs.Dominant(r.DominantBeliefs) {
		if len(values) == maxSummaryValues {
			break
		}
		values = append(values, taxonomy.DisplayValue(c.Category))
	}
	if len(values) > 0 {
		parts = append(parts, fmt.Sprintf("Your dominant values are %s.", strings.Join(values, ", ")))
	}

	switch n := len(r.ConflictedBeliefs); n {
	case 0:
	case 1:
		parts = append(parts, "1 belief conflict is pulling you in two directions.")
	default:
		parts = append(parts, fmt.Sprintf("%d belief conflicts are pulling you in two directions.", n))
	}

	if len(r.Misalignments) > 0 {
		parts = append(parts, fmt.Sprintf("Watch for the %q pattern.", r.Misalignments[0].Type))
	}

	if len(parts) == 0 {
		return "Your beliefs are balanced with no single value dominating."
	}
	return strings.Join(parts, " ")
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
