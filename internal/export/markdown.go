package export

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/scoring"
	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/taxonomy"
	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/templates"
)

// Markdown renders c as the profile document. Section headings and their
// order are fixed by the profile template.
func Markdown(r templates.Renderer, c *scoring.Composite) (string, error) {
	out, err := r.Render(templates.Profile, profileData(c))
	if err != nil {
		return "", fmt.Errorf("rendering profile: %w", err)
	}
	return out, nil
}

func profileData(c *scoring.Composite) templates.ProfileData {
	return templates.ProfileData{
		Title: "E-DNA Profile",
		Meta: []templates.Field{
			{Label: "Assessment version", Value: c.AssessmentVersion},
			{Label: "Completed at", Value: c.CompletedAt.UTC().Format(time.RFC3339)},
			{Label: "Total questions", Value: strconv.Itoa(c.TotalQuestions)},
		},
		CoreType:          coreTypeSection(c.Layer1),
		Subtype:           subtypeSection(c.Layer2),
		Mirror:            mirrorSection(c.Layer3),
		Learning:          learningSection(c.Layer4),
		Screening:         screeningSection(c.Layer5),
		Personality:       personalitySection(c.Layer6),
		Beliefs:           beliefSection(c.Layer7),
		AssessmentVersion: c.AssessmentVersion,
	}
}

func coreTypeSection(l1 scoring.Layer1Result) templates.SectionData {
	s := templates.SectionData{
		Fields: []templates.Field{
			{Label: "Core type", Value: l1.CoreType.Name()},
			{Label: "Mastery", Value: outOf100(l1.Mastery)},
		},
		Paragraphs: []string{l1.CoreType.Description()},
	}
	for _, c := range taxonomy.CoreTypes {
		s.Fields = append(s.Fields, templates.Field{Label: c.Name(), Value: outOf100(l1.NormalizedScores[c])})
	}
	return s
}

func subtypeSection(l2 scoring.Layer2Result) templates.SectionData {
	secondary := "none"
	if l2.SecondarySubtype != nil {
		secondary = taxonomy.SubtypeName(*l2.SecondarySubtype)
	}
	s := templates.SectionData{
		Fields: []templates.Field{
			{Label: "Subtype", Value: l2.DisplayLabel},
			{Label: "Primary subtype", Value: taxonomy.SubtypeName(l2.PrimarySubtype)},
			{Label: "Secondary subtype", Value: secondary},
			{Label: "Mixed", Value: yesNo(l2.IsMixed)},
			{Label: "Mastery", Value: outOf100(l2.Mastery)},
		},
	}
	if p, ok := taxonomy.LookupSubtype(l2.PrimarySubtype); ok {
		s.Paragraphs = []string{p.Description}
		s.Lists = []templates.List{
			{Heading: "Strengths", Items: p.Strengths},
			{Heading: "Blindspots", Items: p.Blindspots},
		}
	}
	return s
}

func mirrorSection(l3 scoring.Layer3Result) templates.SectionData {
	return templates.SectionData{
		Fields: []templates.Field{
			{Label: "Awareness level", Value: l3.MirrorAwarenessLevel},
			{Label: "Awareness score", Value: outOf100(l3.MirrorAwarenessScore)},
			{Label: "Mirror answers recognised", Value: fmt.Sprintf("%d of %d", l3.CorrectMirrorCount, l3.TotalMirrorQuestions)},
		},
	}
}

var learningLabels = map[taxonomy.LearningAxis]string{
	taxonomy.AxisModality:           "Modality",
	taxonomy.AxisApproach:           "Approach",
	taxonomy.AxisConceptProcessing:  "Concept processing",
	taxonomy.AxisWorkingEnvironment: "Working environment",
	taxonomy.AxisPace:               "Pace",
}

func learningSection(l4 scoring.Layer4Result) templates.SectionData {
	var s templates.SectionData
	for _, axis := range taxonomy.LearningAxes {
		s.Fields = append(s.Fields, templates.Field{Label: learningLabels[axis], Value: taxonomy.DisplayValue(l4.Preference(axis))})
	}
	s.Paragraphs = []string{l4.LearningStyleSummary}
	return s
}

func screeningSection(l5 scoring.Layer5Result) templates.SectionData {
	var s templates.SectionData
	for _, trait := range taxonomy.ScreenedTraits {
		s.Fields = append(s.Fields, templates.Field{Label: trait.Name(), Value: formatNumber(l5.NormalizedScores[trait]) + "/100"})
	}
	if l5.CoOccurrenceWarning != "" {
		s.Paragraphs = append(s.Paragraphs, "**Note:** "+l5.CoOccurrenceWarning)
	}
	s.Paragraphs = append(s.Paragraphs, "_"+l5.Disclaimer+"_")
	if len(l5.Flags) > 0 {
		items := make([]string, 0, len(l5.Flags))
		for _, f := range l5.Flags {
			items = append(items, f.Message)
		}
		s.Lists = []templates.List{{Heading: "Screening Flags", Items: items}}
	}
	return s
}

func personalitySection(l6 scoring.Layer6Result) templates.SectionData {
	return templates.SectionData{
		Fields: []templates.Field{
			{Label: "Mindset", Value: l6.Mindset},
			{Label: "Growth norm", Value: outOf100(l6.MindsetDetails.GrowthNorm)},
			{Label: "Fixed norm", Value: outOf100(l6.MindsetDetails.FixedNorm)},
			{Label: "Mindset delta", Value: strconv.Itoa(l6.MindsetDetails.Delta)},
			{Label: "Risk tolerance", Value: l6.RiskTolerance},
			{Label: "Extraversion", Value: l6.Extraversion},
			{Label: "Adaptability", Value: strconv.Itoa(l6.Adaptability)},
		},
		Paragraphs: []string{l6.PersonalitySummary},
	}
}

func beliefSection(l7 scoring.Layer7Result) templates.SectionData {
	var s templates.SectionData
	for _, axis := range taxonomy.BeliefAxes {
		s.Fields = append(s.Fields, templates.Field{Label: axis.Name(), Value: outOf100(l7.AxisScores.Get(axis))})
	}
	s.Paragraphs = []string{l7.Summary}

	if len(l7.DominantBeliefs) > 0 {
		var items []string
		for _, b := range l7.DominantBeliefs {
			item := fmt.Sprintf("%s: %s%%", taxonomy.DisplayValue(b.Category), formatNumber(b.NormalizedScore))
			if b.IsDominant {
				item += " (dominant)"
			}
			items = append(items, item)
		}
		s.Lists = append(s.Lists, templates.List{Heading: "Top Beliefs", Items: items})
	}
	if len(l7.ConflictedBeliefs) > 0 {
		var items []string
		for _, cb := range l7.ConflictedBeliefs {
			items = append(items, fmt.Sprintf("%s (%s%%) vs %s (%s%%): %s",
				taxonomy.DisplayValue(cb.Belief1), formatNumber(cb.Belief1Norm),
				taxonomy.DisplayValue(cb.Belief2), formatNumber(cb.Belief2Norm),
				cb.CoachingPrompt))
		}
		s.Lists = append(s.Lists, templates.List{Heading: "Belief Conflicts", Items: items})
	}
	if len(l7.Misalignments) > 0 {
		var items []string
		for _, m := range l7.Misalignments {
			items = append(items, fmt.Sprintf("**%s**: %s Impact: %s Remedy: %s", m.Type, m.Description, m.Impact, m.Remedy))
		}
		s.Lists = append(s.Lists, templates.List{Heading: "Misalignment Patterns", Items: items})
	}
	return s
}

func outOf100(v int) string {
	return strconv.Itoa(v) + "/100"
}

// formatNumber prints v to one decimal without trailing zeros.
func formatNumber(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
