// Package scoringtest provides answer fixtures for tests of the scoring
// engine and the packages built on it.
package scoringtest

import (
	"fmt"

	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/answers"
)

// Tagged returns n answers on layer carrying tags.
func Tagged(layer, n int, tags ...string) []answers.Answer {
	out := make([]answers.Answer, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, answers.Answer{
			QuestionID: fmt.Sprintf("l%d-%v-%d", layer, tags, i),
			Selected:   "option",
			Layer:      layer,
			Tags:       append([]string(nil), tags...),
		})
	}
	return out
}

// Valued returns n answers on layer and dimension selecting value.
func Valued(layer int, dimension, value string, n int) []answers.Answer {
	out := make([]answers.Answer, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, answers.Answer{
			QuestionID: fmt.Sprintf("l%d-%s-%s-%d", layer, dimension, value, i),
			Selected:   value,
			Layer:      layer,
			Dimension:  dimension,
		})
	}
	return out
}

// Subtyped returns n Layer 2 answers attributed to subtype.
func Subtyped(subtype string, n int) []answers.Answer {
	out := make([]answers.Answer, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, answers.Answer{
			QuestionID: fmt.Sprintf("l2-%s-%d", subtype, i),
			Selected:   subtype,
			Layer:      2,
			Subtype:    subtype,
		})
	}
	return out
}

// Join concatenates answer groups in order.
func Join(groups ...[]answers.Answer) []answers.Answer {
	var out []answers.Answer
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// Complete returns a full 58-answer submission with a known outcome:
//
//   - Layer 1: architect 62.5 / alchemist 37.5, core type architect.
//   - Layer 2: Master Strategist (60%), not mixed.
//   - Layer 3: 4 of 6 answers recognise the alchemist mirror, moderate/66.
//   - Layer 4: visual, structured, flexible, independent, versatile.
//   - Layer 5: ADHD probable (60), dyslexia low (20).
//   - Layer 6: growth mindset, high risk, introverted, adaptability 1.
//   - Layer 7: three dominant values, two conflicts (growth and purpose),
//     "Speed + Scarcity".
func Complete() []answers.Answer {
	return Join(
		Tagged(1, 5, "architect"),
		Tagged(1, 3, "alchemist"),

		Subtyped("master_strategist", 3),
		Subtyped("systemised_builder", 2),

		Tagged(3, 4, "alchemist"),
		Tagged(3, 2, "architect"),

		Valued(4, "modality", "visual", 1),
		Valued(4, "modality_repeat", "diagrams", 1),
		Valued(4, "approach", "sequential", 1),
		Valued(4, "approach_repeat", "structured", 1),
		Valued(4, "concept_processing", "concrete", 1),
		Valued(4, "concept_processing_repeat", "abstract", 1),
		Valued(4, "environment", "solo", 1),
		Valued(4, "working_environment_repeat", "independent", 1),
		Valued(4, "pace", "fast", 1),
		Valued(4, "pace_repeat", "steady", 1),

		Valued(5, "", "adhd_reorganize", 1),
		Valued(5, "", "adhd_steps", 1),
		Valued(5, "", "adhd_focus", 1),
		Valued(5, "", "dyslexia_letters", 1),
		Valued(5, "", "none", 1),

		Valued(6, "mindset", "growth", 2),
		Valued(6, "mindset", "growth_learning", 1),
		Valued(6, "mindset", "fixed", 1),
		Valued(6, "risk_tolerance", "high", 2),
		Valued(6, "risk_tolerance", "moderate", 1),
		Valued(6, "extraversion", "introvert", 1),
		Valued(6, "extraversion", "ambivert", 1),
		Valued(6, "extraversion", "introverted", 1),

		Valued(7, "growth_belief", "bold_scaling", 3),
		Valued(7, "growth_belief", "quality_first", 2),
		Valued(7, "scaling_belief", "rapid_growth", 5),
		Valued(7, "resource_belief", "scarcity", 2),
		Valued(7, "purpose_belief", "purpose_driven", 1),
		Valued(7, "purpose_belief", "profit_first", 1),
	)
}
