// Package playbook builds the personalised action plan that joins the
// static subtype catalogue with a scored profile.
package playbook

import (
	"fmt"
	"math"
	"strconv"

	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/beliefs"
	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/report"
	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/scoring"
	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/taxonomy"
	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/templates"
)

// Section headings, in output order.
const (
	HeadingIdentity      = "Who You Are"
	HeadingStrengths     = "Strengths to Leverage"
	HeadingBlindspots    = "Blindspots to Watch"
	HeadingLearning      = "How You Learn Best"
	HeadingDecisions     = "How You Decide"
	HeadingBeliefs       = "Beliefs and Values"
	HeadingMirror        = "Working With Your Mirror"
	HeadingSupport       = "Support and Accommodations"
	HeadingNinetyDayPlan = "Your Next 90 Days"
	HeadingTools         = "Recommended Tools"
)

// Section is one part of the playbook.
type Section struct {
	Heading string   `json:"heading"`
	Intro   string   `json:"intro,omitempty"`
	Items   []string `json:"items,omitempty"`
}

// Playbook is the personalised plan for one profile.
type Playbook struct {
	Title      string    `json:"title"`
	Subtitle   string    `json:"subtitle"`
	Sections   []Section `json:"sections"`
	Disclaimer string    `json:"disclaimer"`
}

// Section returns the section with the given heading.
func (p *Playbook) Section(heading string) (Section, bool) {
	for _, s := range p.Sections {
		if s.Heading == heading {
			return s, true
		}
	}
	return Section{}, false
}

// ninetyDayPhases label the development actions, in order.
var ninetyDayPhases = []string{"Days 1-30", "Days 31-60", "Days 61-90"}

// Generate builds the playbook for c. The support section appears only
// when screening detected a trait.
func Generate(c *scoring.Composite) *Playbook {
	summary := report.Summarize(c)
	recs := report.Recommend(c)
	core := c.Layer1.CoreType

	p := &Playbook{
		Title:      fmt.Sprintf("The %s Playbook", summary.Subtype),
		Subtitle:   fmt.Sprintf("A personalised plan for an E-DNA %s, %s.", core.Name(), c.Layer2.DisplayLabel),
		Disclaimer: c.Layer5.Disclaimer,
	}

	identity := Section{Heading: HeadingIdentity, Intro: summary.CoreDescription}
	if summary.SubtypeDescription != "" {
		identity.Items = append(identity.Items, summary.SubtypeDescription)
	}
	if secondary := c.Layer2.SecondarySubtype; secondary != nil {
		identity.Items = append(identity.Items,
			fmt.Sprintf("Your profile is mixed: you are moving toward %s.", taxonomy.SubtypeName(*secondary)))
	}
	identity.Items = append(identity.Items, fmt.Sprintf("Core type mastery: %d/100.", c.Layer1.Mastery))
	p.Sections = append(p.Sections, identity)

	p.Sections = append(p.Sections,
		Section{Heading: HeadingStrengths, Items: summary.Strengths},
		Section{Heading: HeadingBlindspots, Items: summary.Blindspots},
		Section{Heading: HeadingLearning, Intro: summary.LearningStyle, Items: recs.Learning},
		Section{Heading: HeadingDecisions, Intro: summary.Personality, Items: decisionItems(c)},
		Section{Heading: HeadingBeliefs, Intro: summary.Beliefs, Items: beliefItems(c)},
		Section{Heading: HeadingMirror, Intro: summary.MirrorAwareness, Items: mirrorItems(core)},
	)

	if support := supportItems(c.Layer5); len(support) > 0 {
		p.Sections = append(p.Sections, Section{Heading: HeadingSupport, Intro: c.Layer5.CoOccurrenceWarning, Items: support})
	}

	var plan []string
	for i, action := range recs.Development {
		plan = append(plan, fmt.Sprintf("%s: %s", ninetyDayPhases[i], action))
	}
	p.Sections = append(p.Sections,
		Section{Heading: HeadingNinetyDayPlan, Items: plan},
		Section{Heading: HeadingTools, Items: recs.Tools},
	)
	return p
}

var riskGuidance = map[string]string{
	"high":     "You move fast on uncertain bets; set a stop-loss before you start.",
	"moderate": "You weigh risk carefully; make sure caution does not become delay.",
	"low":      "You protect the downside; schedule deliberate small experiments.",
	"mixed":    "Your risk appetite shifts with context; decide the risk budget up front.",
}

var mindsetGuidance = map[string]string{
	"growth": "You treat ability as trainable, so stretch goals motivate you.",
	"fixed":  "You tend to see ability as set; frame new goals as experiments, not tests.",
	"mixed":  "Your mindset depends on the domain; notice where you stop trying.",
}

func decisionItems(c *scoring.Composite) []string {
	var items []string
	if g, ok := mindsetGuidance[c.Layer6.Mindset]; ok {
		items = append(items, g)
	}
	if g, ok := riskGuidance[c.Layer6.RiskTolerance]; ok {
		items = append(items, g)
	}
	items = append(items, fmt.Sprintf("Social energy: %s.", c.Layer6.Extraversion))
	return items
}

func beliefItems(c *scoring.Composite) []string {
	var items []string
	for _, b := range beliefs.Dominant(c.Layer7.DominantBeliefs) {
		items = append(items, fmt.Sprintf("Lead with %s (%s).", taxonomy.DisplayValue(b.Category), formatShare(b.NormalizedScore)))
	}
	for _, conflict := range c.Layer7.ConflictedBeliefs {
		items = append(items, conflict.CoachingPrompt)
	}
	for _, m := range c.Layer7.Misalignments {
		items = append(items, fmt.Sprintf("%s: %s", m.Type, m.Remedy))
	}
	return items
}

// formatShare prints a share to one decimal without trailing zeros
// ("60%", "37.5%").
func formatShare(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64) + "%"
}

func mirrorItems(core taxonomy.CoreType) []string {
	switch core {
	case taxonomy.Architect:
		return []string{"Invite an Alchemist to stress-test how your plans will feel to customers and team."}
	case taxonomy.Alchemist:
		return []string{"Invite an Architect to turn your next big idea into a sequenced plan."}
	}
	return []string{"Notice which mode you fall back on under pressure and practise the other deliberately."}
}

var accommodations = map[taxonomy.Trait]string{
	taxonomy.TraitADHD:     "Work in short focused blocks with visible timers and external accountability.",
	taxonomy.TraitDyslexia: "Use audio versions of documents and voice dictation for writing-heavy work.",
	taxonomy.TraitAutism:   "Ask for agendas in advance and agree on explicit communication norms.",
	taxonomy.TraitSensory:  "Design a workspace with controlled light and sound, and plan recovery breaks.",
}

func supportItems(l5 scoring.Layer5Result) []string {
	var items []string
	for _, trait := range l5.TraitsDetected {
		if a, ok := accommodations[trait]; ok {
			items = append(items, fmt.Sprintf("%s: %s", trait.Name(), a))
		}
	}
	return items
}

// Markdown renders p through the playbook template.
func Markdown(r templates.Renderer, p *Playbook) (string, error) {
	data := templates.PlaybookData{
		Title:      p.Title,
		Subtitle:   p.Subtitle,
		Disclaimer: p.Disclaimer,
	}
	for _, s := range p.Sections {
		data.Sections = append(data.Sections, templates.PlaybookSection{
			Heading: s.Heading,
			Intro:   s.Intro,
			Items:   s.Items,
		})
	}
	out, err := r.Render(templates.Playbook, data)
	if err != nil {
		return "", fmt.Errorf("rendering playbook: %w", err)
	}
	return out, nil
}
