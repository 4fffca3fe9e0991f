package beliefs

import (
	"fmt"
	"sort"

	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/answers"
)

// Dominance thresholds, in percentage points.
const (
	DominantMinShare = 40.0
	DominantMinGap   = 12.0
	ConflictMinShare = 30.0
)

// BeliefCategory is the top value of one question dimension.
type BeliefCategory struct {
	Dimension       string  `json:"dimension"`
	Category        string  `json:"category"`
	NormalizedScore float64 `json:"normalized_score"`
	IsDominant      bool    `json:"is_dominant"`
}

// ConflictedBelief records two opposing values that both cleared the
// conflict threshold within one dimension.
type ConflictedBelief struct {
	Dimension      string  `json:"dimension"`
	Belief1        string  `json:"belief1"`
	Belief1Norm    float64 `json:"belief1_norm"`
	Belief2        string  `json:"belief2"`
	Belief2Norm    float64 `json:"belief2_norm"`
	ConflictType   string  `json:"conflict_type"`
	CoachingPrompt string  `json:"coaching_prompt"`
}

// ConflictTypeDissonance is the only conflict type the engine emits.
const ConflictTypeDissonance = "cognitive_dissonance"

// DetectDominant reports the top value of every dimension seen in the
// answers. A value is dominant when its share is at least
// DominantMinShare and leads the runner-up by at least DominantMinGap.
func DetectDominant(layer7 []answers.Answer) []BeliefCategory {
	var out []BeliefCategory
	for _, d := range shareByDimension(layer7) {
		ranked := rankValues(d)
		top := ranked[0]
		topShare := d.shares[top]
		var secondShare float64
		if len(ranked) > 1 {
			secondShare = d.shares[ranked[1]]
		}
		out = append(out, BeliefCategory{
			Dimension:       d.dimension,
			Category:        top,
			NormalizedScore: topShare,
			IsDominant:      topShare >= DominantMinShare && topShare-secondShare >= DominantMinGap,
		})
	}
	return out
}

// Dominant filters categories down to the dominant ones.
func Dominant(categories []BeliefCategory) []BeliefCategory {
	var out []BeliefCategory
	for _, c := range categories {
		if c.IsDominant {
			out = append(out, c)
		}
	}
	return out
}

// rankValues orders a dimension's values by share, descending; equal
// shares keep first-seen order.
func rankValues(d dimensionShares) []string {
	ranked := append([]string(nil), d.values...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return d.shares[ranked[i]] > d.shares[ranked[j]]
	})
	return ranked
}

// opposingPair is a pair of values that contradict each other within a
// dimension, with the coaching prompt shown when both are endorsed.
type opposingPair struct {
	a, b   string
	prompt string
}

var opposingPairs = map[string][]opposingPair{
	"growth_belief": {
		{"bold_scaling", "quality_first", "You want to scale boldly and protect quality first. Which one gets the final say when a launch date collides with a quality bar?"},
		{"bold_scaling", "quality_concern", "Part of you pushes for scale while another part worries quality will slip. What minimum standard would let you scale without that worry?"},
	},
	"purpose_belief": {
		{"purpose_driven", "profit_first", "You value mission and margin equally. Write down the one offer you would turn down on principle, and the one you would take for the money."},
	},
	"change_belief": {
		{"embrace_change", "stability_first", "You seek change and crave stability. Which parts of your business are the stable base that lets you experiment everywhere else?"},
	},
	"metrics_belief": {
		{"data_driven", "intuition_led", "You trust numbers and your gut. Decide which decisions need data and which you will make on instinct, then stop re-litigating them."},
	},
	"social_belief": {
		{"collaborative", "competitive", "You want to build with others and beat them. Where does collaboration create more value than competition for you right now?"},
	},
	"resource_belief": {
		{"abundance", "scarcity", "You believe resources are plentiful and scarce at the same time. Look at your last three spending decisions: which belief actually drove them?"},
	},
}

// DetectConflicts flags every known opposing pair whose two values both
// reach ConflictMinShare within their dimension. Dominance does not
// suppress a conflict.
func DetectConflicts(layer7 []answers.Answer) []ConflictedBelief {
	var out []ConflictedBelief
	for _, d := range shareByDimension(layer7) {
		for _, pair := range opposingPairs[d.dimension] {
			s1, s2 := d.shares[pair.a], d.shares[pair.b]
			if s1 < ConflictMinShare || s2 < ConflictMinShare {
				continue
			}
			out = append(out, ConflictedBelief{
				Dimension:      d.dimension,
				Belief1:        pair.a,
				Belief1Norm:    s1,
				Belief2:        pair.b,
				Belief2Norm:    s2,
				ConflictType:   ConflictTypeDissonance,
				CoachingPrompt: pair.prompt,
			})
		}
	}
	return out
}

// CoachingPrompt returns the prompt for a pair, or a generic one for
// pairs outside the table.
func CoachingPrompt(dimension, belief1, belief2 string) string {
	for _, pair := range opposingPairs[normalize(dimension)] {
		if (pair.a == belief1 && pair.b == belief2) || (pair.a == belief2 && pair.b == belief1) {
			return pair.prompt
		}
	}
	return fmt.Sprintf("You endorse both %q and %q. Which one do you act on when they collide?", belief1, belief2)
}
