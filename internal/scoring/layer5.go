package scoring

import (
	"fmt"

	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/answers"
	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/taxonomy"
)

// Flag levels, strongest first.
const (
	FlagProbable = "probable"
	FlagPossible = "possible"
	FlagLow      = "low"
)

// Layer 5 band floors. Shares in [lowBandCeil, possibleMinNorm) raise no
// flag at all.
const (
	probableMinNorm = 60.0
	possibleMinNorm = 40.0
	lowBandCeil     = 30.0
)

// ScreeningDisclaimer accompanies every Layer 5 result.
const ScreeningDisclaimer = "This screening is an educational self-reflection tool, not a medical or psychological diagnosis. " +
	"Only a qualified professional can assess ADHD, dyslexia, autism or sensory processing differences. " +
	"Use these results to start a conversation, not to draw conclusions."

// CoOccurrenceWarning is set when ADHD and dyslexia are both flagged
// probable or possible.
const CoOccurrenceWarning = "ADHD and dyslexia indicators appear together. They frequently co-occur and can mask each other, " +
	"so a combined specialist assessment is recommended."

// TraitFlag is one screening signal.
type TraitFlag struct {
	Trait   taxonomy.Trait `json:"trait"`
	Level   string         `json:"level"`
	Message string         `json:"message"`
}

// Layer5Result is the neurodiversity screening outcome.
type Layer5Result struct {
	TraitsDetected      []taxonomy.Trait           `json:"traits_detected"`
	NormalizedScores    map[taxonomy.Trait]float64 `json:"normalized_scores"`
	Flags               []TraitFlag                `json:"flags"`
	CoOccurrenceWarning string                     `json:"co_occurrence_warning,omitempty"`
	Disclaimer          string                     `json:"disclaimer"`
}

// CalculateLayer5 screens the Layer 5 answers. It never fails: an empty
// layer yields zero scores, no flags and the disclaimer.
func CalculateLayer5(all []answers.Answer) Layer5Result {
	layer := answers.ForLayer(all, 5)

	counts := make(map[taxonomy.Trait]float64)
	for _, a := range layer {
		counts[taxonomy.CanonicalTrait(a.Selected)]++
	}

	res := Layer5Result{
		TraitsDetected:   []taxonomy.Trait{},
		NormalizedScores: make(map[taxonomy.Trait]float64, len(taxonomy.ScreenedTraits)+1),
		Flags:            []TraitFlag{},
		Disclaimer:       ScreeningDisclaimer,
	}
	res.NormalizedScores[taxonomy.TraitNone] = percent(counts[taxonomy.TraitNone], len(layer))

	for _, trait := range taxonomy.ScreenedTraits {
		norm := percent(counts[trait], len(layer))
		res.NormalizedScores[trait] = norm

		flag, ok := traitFlag(trait, norm)
		if !ok {
			continue
		}
		res.Flags = append(res.Flags, flag)
		if flag.Level != FlagLow {
			res.TraitsDetected = append(res.TraitsDetected, trait)
		}
	}

	if res.detected(taxonomy.TraitADHD) && res.detected(taxonomy.TraitDyslexia) {
		res.CoOccurrenceWarning = CoOccurrenceWarning
	}
	return res
}

func (r Layer5Result) detected(t taxonomy.Trait) bool {
	for _, d := range r.TraitsDetected {
		if d == t {
			return true
		}
	}
	return false
}

func traitFlag(trait taxonomy.Trait, norm float64) (TraitFlag, bool) {
	name := trait.Name()
	switch {
	case norm >= probableMinNorm:
		return TraitFlag{trait, FlagProbable,
			fmt.Sprintf("Probable %s traits — recommend referral to specialist.", name)}, true
	case norm >= possibleMinNorm:
		return TraitFlag{trait, FlagPossible,
			fmt.Sprintf("Possible %s features present — consider formal assessment / accommodations.", name)}, true
	case norm > 0 && norm < lowBandCeil:
		return TraitFlag{trait, FlagLow,
			fmt.Sprintf("Low likelihood of %s core traits.", name)}, true
	}
	return TraitFlag{}, false
}
