// Package answers defines the quiz answer record consumed by the scoring
// engine and the parsing/validation applied when answers arrive from a
// transport (CLI file, MCP tool argument).
//
// Scoring functions accept []Answer directly and never validate counts;
// structural validation happens once, here, at the boundary.
package answers

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Answer is one recorded response to one question.
type Answer struct {
	QuestionID string   `json:"question_id" validate:"required"`
	Selected   string   `json:"selected" validate:"required"`
	Layer      int      `json:"layer" validate:"min=1,max=7"`
	Dimension  string   `json:"dimension,omitempty"`
	Tags       []string `json:"tags,omitempty" validate:"dive,oneof=architect alchemist blurred"`
	Subtype    string   `json:"subtype,omitempty"`
}

// HasTag reports whether the answer carries the archetype tag.
func (a Answer) HasTag(tag string) bool {
	for _, t := range a.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ForLayer returns the answers tagged with the given layer, preserving order.
func ForLayer(all []Answer, layer int) []Answer {
	var out []Answer
	for _, a := range all {
		if a.Layer == layer {
			out = append(out, a)
		}
	}
	return out
}

// layersWithDimension are the layers whose rubric is keyed by dimension.
var layersWithDimension = map[int]bool{4: true, 6: true, 7: true}

var answerValidate *validator.Validate

func init() {
	answerValidate = validator.New()
	answerValidate.RegisterStructValidation(answerStructLevel, Answer{})
}

// answerStructLevel enforces the cross-field rule that layers 4, 6 and 7
// carry a dimension.
func answerStructLevel(sl validator.StructLevel) {
	a := sl.Current().Interface().(Answer)
	if layersWithDimension[a.Layer] && strings.TrimSpace(a.Dimension) == "" {
		sl.ReportError(a.Dimension, "Dimension", "dimension", "dimension_required", fmt.Sprint(a.Layer))
	}
}

// Validate checks every answer and returns the first failure, annotated
// with the offending index and question id.
func Validate(all []Answer) error {
	if len(all) == 0 {
		return fmt.Errorf("no answers supplied")
	}
	for i := range all {
		if err := answerValidate.Struct(all[i]); err != nil {
			return fmt.Errorf("answer %d (%q): %w", i, all[i].QuestionID, err)
		}
	}
	return nil
}

// Parse decodes a JSON array of answers and validates it.
func Parse(data []byte) ([]Answer, error) {
	var all []Answer
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, fmt.Errorf("decoding answers: %w", err)
	}
	if err := Validate(all); err != nil {
		return nil, err
	}
	return all, nil
}

// CountByLayer tallies answers per layer (1..7). Index 0 is unused.
func CountByLayer(all []Answer) [8]int {
	var counts [8]int
	for _, a := range all {
		if a.Layer >= 1 && a.Layer <= 7 {
			counts[a.Layer]++
		}
	}
	return counts
}
