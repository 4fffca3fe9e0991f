package scoring

import (
	"fmt"
	"strings"

	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/answers"
	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/taxonomy"
)

// Layer4Result holds one preference per learning axis.
type Layer4Result struct {
	Modality             string `json:"modality"`
	Approach             string `json:"approach"`
	ConceptProcessing    string `json:"concept_processing"`
	WorkingEnvironment   string `json:"working_environment"`
	Pace                 string `json:"pace"`
	LearningStyleSummary string `json:"learning_style_summary"`
}

// Preference returns the resolved category of an axis.
func (r Layer4Result) Preference(axis taxonomy.LearningAxis) string {
	switch axis {
	case taxonomy.AxisModality:
		return r.Modality
	case taxonomy.AxisApproach:
		return r.Approach
	case taxonomy.AxisConceptProcessing:
		return r.ConceptProcessing
	case taxonomy.AxisWorkingEnvironment:
		return r.WorkingEnvironment
	case taxonomy.AxisPace:
		return r.Pace
	}
	return ""
}

// CalculateLayer4 resolves each learning axis from its Layer 4 answers.
// Answers that agree on a category resolve to it; disagreement or an
// unrecognised value resolves to the axis's contradiction label. A raw
// modality value of "multimodal" wins outright. Answers whose dimension
// is not a learning axis are ignored.
func CalculateLayer4(all []answers.Answer) Layer4Result {
	raw := make(map[taxonomy.LearningAxis][]string)
	for _, a := range answers.ForLayer(all, 4) {
		axis, ok := taxonomy.CanonicalLearningAxis(a.Dimension)
		if !ok {
			continue
		}
		raw[axis] = append(raw[axis], a.Selected)
	}

	res := Layer4Result{
		Modality:           resolveLearningAxis(taxonomy.AxisModality, raw[taxonomy.AxisModality]),
		Approach:           resolveLearningAxis(taxonomy.AxisApproach, raw[taxonomy.AxisApproach]),
		ConceptProcessing:  resolveLearningAxis(taxonomy.AxisConceptProcessing, raw[taxonomy.AxisConceptProcessing]),
		WorkingEnvironment: resolveLearningAxis(taxonomy.AxisWorkingEnvironment, raw[taxonomy.AxisWorkingEnvironment]),
		Pace:               resolveLearningAxis(taxonomy.AxisPace, raw[taxonomy.AxisPace]),
	}
	res.LearningStyleSummary = learningSummary(res)
	return res
}

func resolveLearningAxis(axis taxonomy.LearningAxis, values []string) string {
	fallback := taxonomy.ContradictionLabel(axis)
	if len(values) == 0 {
		return fallback
	}
	if axis == taxonomy.AxisModality {
		for _, v := range values {
			if strings.EqualFold(strings.TrimSpace(v), "multimodal") {
				return "multimodal"
			}
		}
	}

	var agreed string
	for i, v := range values {
		c, ok := taxonomy.LearningCategory(axis, v)
		if !ok || (i > 0 && c != agreed) {
			return fallback
		}
		agreed = c
	}
	return agreed
}

func learningSummary(r Layer4Result) string {
	return fmt.Sprintf(
		"You take in information best through %s input, prefer %s approaches with %s concepts, work best in %s settings and keep a %s rhythm.",
		taxonomy.DisplayValue(r.Modality),
		taxonomy.DisplayValue(r.Approach),
		taxonomy.DisplayValue(r.ConceptProcessing),
		taxonomy.DisplayValue(r.WorkingEnvironment),
		taxonomy.DisplayValue(r.Pace),
	)
}
