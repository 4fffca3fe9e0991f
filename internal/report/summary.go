// Package report derives the human-readable profile summary and the
// prioritised recommendation lists from a scored composite.
//
// Nothing here scores: every field is a template or a lookup-table join
// over scoring.Composite, so output is identical for identical input.
package report

import (
	"fmt"
	"strings"

	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/scoring"
	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/taxonomy"
)

// Summary is the narrative view of a profile.
type Summary struct {
	Headline           string   `json:"headline"`
	CoreType           string   `json:"core_type"`
	CoreDescription    string   `json:"core_description"`
	Subtype            string   `json:"subtype"`
	SubtypeDescription string   `json:"subtype_description,omitempty"`
	Strengths          []string `json:"strengths"`
	Blindspots         []string `json:"blindspots"`
	MirrorAwareness    string   `json:"mirror_awareness"`
	LearningStyle      string   `json:"learning_style"`
	Personality        string   `json:"personality"`
	Beliefs            string   `json:"beliefs"`
	Screening          string   `json:"screening"`
}

// Summarize builds the narrative summary of c.
func Summarize(c *scoring.Composite) Summary {
	core := c.Layer1.CoreType
	s := Summary{
		Headline:        fmt.Sprintf("%s: %s", core.Name(), c.Layer2.DisplayLabel),
		CoreType:        core.Name(),
		CoreDescription: core.Description(),
		Subtype:         taxonomy.SubtypeName(c.Layer2.PrimarySubtype),
		Strengths:       []string{},
		Blindspots:      []string{},
		MirrorAwareness: mirrorText(c),
		LearningStyle:   c.Layer4.LearningStyleSummary,
		Personality:     c.Layer6.PersonalitySummary,
		Beliefs:         c.Layer7.Summary,
		Screening:       screeningText(c.Layer5),
	}
	if p, ok := taxonomy.LookupSubtype(c.Layer2.PrimarySubtype); ok {
		s.SubtypeDescription = p.Description
		s.Strengths = append(s.Strengths, p.Strengths...)
		s.Blindspots = append(s.Blindspots, p.Blindspots...)
	}
	return s
}

func mirrorText(c *scoring.Composite) string {
	l3 := c.Layer3
	mirror := "Architect or Alchemist"
	if c.Layer1.CoreType != taxonomy.Blurred {
		mirror = c.Layer1.CoreType.Mirror().Name()
	}
	return fmt.Sprintf("Mirror awareness is %s (%d/100): you recognised %s traits in %d of %d mirror questions.",
		l3.MirrorAwarenessLevel, l3.MirrorAwarenessScore, mirror, l3.CorrectMirrorCount, l3.TotalMirrorQuestions)
}

func screeningText(l5 scoring.Layer5Result) string {
	if len(l5.TraitsDetected) == 0 {
		return "No neurodiversity indicators reached the screening threshold. " + l5.Disclaimer
	}
	var found []string
	for _, f := range l5.Flags {
		if f.Level == scoring.FlagLow {
			continue
		}
		found = append(found, fmt.Sprintf("%s (%s)", f.Trait.Name(), f.Level))
	}
	s := "Screening indicators: " + strings.Join(found, ", ") + "."
	if l5.CoOccurrenceWarning != "" {
		s += " " + l5.CoOccurrenceWarning
	}
	return s + " " + l5.Disclaimer
}
