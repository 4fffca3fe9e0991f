// Package beliefs analyses Layer 7 value/belief answers.
//
// It produces four independent views over the same answer slice:
//   - six bipolar axis scores (0-100),
//   - the top value per question dimension, flagged when dominant,
//   - conflicted beliefs (opposing values both strongly endorsed),
//   - misalignment patterns matched against the axis scores.
//
// All functions are pure; lookup tables are read-only package state.
package beliefs

import (
	"math"
	"strings"

	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/answers"
	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/taxonomy"
)

// Pole weights for axis scoring.
const (
	highPoleScore     = 85
	balancedPoleScore = 50
	lowPoleScore      = 15

	// DefaultAxisScore is used for an axis no answer maps to.
	DefaultAxisScore = 50
)

// AxisScores holds the six axis scores keyed by axis.
type AxisScores map[taxonomy.BeliefAxis]int

// Get returns the score of an axis, falling back to DefaultAxisScore.
func (s AxisScores) Get(axis taxonomy.BeliefAxis) int {
	if v, ok := s[axis]; ok {
		return v
	}
	return DefaultAxisScore
}

// ScoreAxes classifies every answer into its axis's high, low or balanced
// bucket and returns the weighted average per axis.
func ScoreAxes(layer7 []answers.Answer) AxisScores {
	type buckets struct{ high, low, balanced int }
	tally := make(map[taxonomy.BeliefAxis]*buckets)

	for _, a := range layer7 {
		axis, ok := taxonomy.BeliefAxisFor(a.Dimension)
		if !ok {
			continue
		}
		b := tally[axis]
		if b == nil {
			b = &buckets{}
			tally[axis] = b
		}
		switch taxonomy.BeliefPole(axis, a.Selected) {
		case taxonomy.PoleHigh:
			b.high++
		case taxonomy.PoleLow:
			b.low++
		default:
			b.balanced++
		}
	}

	scores := make(AxisScores, len(taxonomy.BeliefAxes))
	for _, axis := range taxonomy.BeliefAxes {
		b := tally[axis]
		if b == nil {
			scores[axis] = DefaultAxisScore
			continue
		}
		total := b.high + b.low + b.balanced
		weighted := b.high*highPoleScore + b.balanced*balancedPoleScore + b.low*lowPoleScore
		scores[axis] = int(math.Round(float64(weighted) / float64(total)))
	}
	return scores
}

// dimensionShares is the percentage share of each selected value within
// one raw question dimension.
type dimensionShares struct {
	dimension string
	values    []string // first-seen order
	shares    map[string]float64
}

// shareByDimension groups answers by raw dimension. Dimensions keep
// first-seen order.
func shareByDimension(layer7 []answers.Answer) []dimensionShares {
	index := make(map[string]int)
	var dims []dimensionShares
	counts := make(map[string]map[string]int)
	totals := make(map[string]int)

	for _, a := range layer7 {
		dim := normalize(a.Dimension)
		if dim == "" {
			continue
		}
		if _, seen := index[dim]; !seen {
			index[dim] = len(dims)
			dims = append(dims, dimensionShares{dimension: dim, shares: map[string]float64{}})
			counts[dim] = map[string]int{}
		}
		v := normalize(a.Selected)
		if _, seen := counts[dim][v]; !seen {
			d := &dims[index[dim]]
			d.values = append(d.values, v)
		}
		counts[dim][v]++
		totals[dim]++
	}

	for i := range dims {
		d := &dims[i]
		for _, v := range d.values {
			d.shares[v] = percent(counts[d.dimension][v], totals[d.dimension])
		}
	}
	return dims
}

// percent multiplies before dividing so integer shares stay exact.
func percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) * 100 / float64(total)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
