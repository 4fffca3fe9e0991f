package scoring

import (
	"fmt"
	"strings"

	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/answers"
	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/taxonomy"
)

// Layer 6 thresholds.
const (
	MindsetMinNorm = 55.0
	RiskMinGap     = 20.0
)

// Mixed is the outcome when a personality dimension has no clear winner.
const Mixed = "mixed"

// MindsetDetails exposes the mindset norms behind the classification.
type MindsetDetails struct {
	GrowthNorm int `json:"growth_norm"`
	FixedNorm  int `json:"fixed_norm"`
	Delta      int `json:"delta"`
}

// Layer6Result is the mindset and personality profile.
type Layer6Result struct {
	Mindset            string         `json:"mindset"`
	MindsetDetails     MindsetDetails `json:"mindset_details"`
	RiskTolerance      string         `json:"risk_tolerance"`
	Extraversion       string         `json:"extraversion"`
	Adaptability       int            `json:"adaptability"`
	PersonalitySummary string         `json:"personality_summary"`
}

// CalculateLayer6 classifies mindset, risk tolerance and extraversion
// from the Layer 6 answers, and counts answers whose raw value is
// literally "mixed" or "ambivert" as adaptability.
func CalculateLayer6(all []answers.Answer) (Layer6Result, error) {
	layer := answers.ForLayer(all, 6)
	if len(layer) == 0 {
		return Layer6Result{}, &EmptyLayerError{Layer: 6}
	}

	counts := map[taxonomy.PersonalityDimension]map[string]float64{
		taxonomy.DimMindset:       {},
		taxonomy.DimRiskTolerance: {},
		taxonomy.DimExtraversion:  {},
	}
	totals := make(map[taxonomy.PersonalityDimension]int)
	adaptability := 0

	for _, a := range layer {
		switch strings.ToLower(strings.TrimSpace(a.Selected)) {
		case "mixed", "ambivert":
			adaptability++
		}

		dim, ok := taxonomy.CanonicalPersonalityDimension(a.Dimension)
		if !ok {
			continue
		}
		totals[dim]++
		if v, ok := taxonomy.CanonicalPersonalityValue(dim, a.Selected); ok {
			counts[dim][v]++
		}
	}

	res := Layer6Result{Adaptability: adaptability}
	res.Mindset, res.MindsetDetails = classifyMindset(counts[taxonomy.DimMindset], totals[taxonomy.DimMindset])
	res.RiskTolerance = classifyRisk(counts[taxonomy.DimRiskTolerance], totals[taxonomy.DimRiskTolerance])
	res.Extraversion = classifyExtraversion(counts[taxonomy.DimExtraversion], totals[taxonomy.DimExtraversion])
	res.PersonalitySummary = personalitySummary(res)
	return res, nil
}

func classifyMindset(counts map[string]float64, total int) (string, MindsetDetails) {
	growth := percent(counts["growth"], total)
	fixed := percent(counts["fixed"], total)
	details := MindsetDetails{
		GrowthNorm: round(growth),
		FixedNorm:  round(fixed),
	}
	details.Delta = details.GrowthNorm - details.FixedNorm

	switch {
	case growth >= MindsetMinNorm:
		return "growth", details
	case fixed >= MindsetMinNorm:
		return "fixed", details
	}
	return Mixed, details
}

func classifyRisk(counts map[string]float64, total int) string {
	top, second := topTwo(rankDesc(taxonomy.PersonalityValues(taxonomy.DimRiskTolerance), norms(counts, total)))
	if top.norm-second.norm < RiskMinGap {
		return Mixed
	}
	return top.key
}

func classifyExtraversion(counts map[string]float64, total int) string {
	if total == 0 {
		return "balanced"
	}
	top, _ := topTwo(rankDesc(taxonomy.PersonalityValues(taxonomy.DimExtraversion), norms(counts, total)))
	if top.key == "ambivert" {
		return "balanced"
	}
	return top.key
}

func norms(counts map[string]float64, total int) map[string]float64 {
	out := make(map[string]float64, len(counts))
	for k, c := range counts {
		out[k] = percent(c, total)
	}
	return out
}

func personalitySummary(r Layer6Result) string {
	s := fmt.Sprintf("%s mindset, %s risk tolerance and %s social energy.",
		capitalize(r.Mindset), r.RiskTolerance, r.Extraversion)
	if r.Adaptability > 0 {
		s += fmt.Sprintf(" Adaptability score: %d.", r.Adaptability)
	}
	return s
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
