package answers

// LayerCoverage describes how well one quiz layer is represented in an
// answer set.
type LayerCoverage struct {
	Layer    int    `json:"layer"`
	Name     string `json:"name"`
	Weight   int    `json:"weight"`   // relative importance (1-10)
	Required bool   `json:"required"` // scoring fails without it
	Answered int    `json:"answered"`
}

// Covered reports whether the layer has at least one answer.
func (l LayerCoverage) Covered() bool { return l.Answered > 0 }

// CoverageReport summarises which layers an answer set covers. It is
// advisory: scoring never rejects a set for being short.
type CoverageReport struct {
	Layers  []LayerCoverage `json:"layers"`
	Score   int             `json:"score"` // weighted 0-100
	Missing []int           `json:"missing,omitempty"`
}

// Complete reports whether every layer has answers.
func (r CoverageReport) Complete() bool { return len(r.Missing) == 0 }

// Scoreable reports whether every required layer has answers.
func (r CoverageReport) Scoreable() bool {
	for _, l := range r.Layers {
		if l.Required && !l.Covered() {
			return false
		}
	}
	return true
}

// layerWeights follows how much of the profile each layer drives.
// Layers 3, 4 and 5 fall back to defaults when empty.
var layerWeights = []LayerCoverage{
	{Layer: 1, Name: "core type", Weight: 10, Required: true},
	{Layer: 2, Name: "subtype", Weight: 8, Required: true},
	{Layer: 3, Name: "mirror pair awareness", Weight: 5},
	{Layer: 4, Name: "learning style", Weight: 6},
	{Layer: 5, Name: "neurodiversity screening", Weight: 4},
	{Layer: 6, Name: "mindset and personality", Weight: 7, Required: true},
	{Layer: 7, Name: "meta-beliefs", Weight: 8, Required: true},
}

// Coverage tallies all per layer and computes the weighted share of
// layers that have answers.
func Coverage(all []Answer) CoverageReport {
	counts := CountByLayer(all)
	report := CoverageReport{Layers: make([]LayerCoverage, 0, len(layerWeights))}

	totalWeight, coveredWeight := 0, 0
	for _, l := range layerWeights {
		l.Answered = counts[l.Layer]
		totalWeight += l.Weight
		if l.Covered() {
			coveredWeight += l.Weight
		} else {
			report.Missing = append(report.Missing, l.Layer)
		}
		report.Layers = append(report.Layers, l)
	}
	report.Score = coveredWeight * 100 / totalWeight
	return report
}
