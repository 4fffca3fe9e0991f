package beliefs

import "github.com/rubabzahra2481/EDNAfrontend-sub001/internal/taxonomy"

// MisalignmentPattern is a known behavioural failure mode signalled by a
// combination of axis extremes.
type MisalignmentPattern struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
	Remedy      string `json:"remedy"`
}

type misalignmentRule struct {
	pattern MisalignmentPattern
	matches func(AxisScores) bool
}

// Axis extremes used by the rules.
const (
	highAxis = 70
	lowAxis  = 30
)

var misalignmentRules = []misalignmentRule{
	{
		pattern: MisalignmentPattern{
			Type:        "Speed + Scarcity",
			Description: "You want rapid growth but believe resources are scarce.",
			Impact:      "Growth plans stall because you will not invest in the capacity they need.",
			Remedy:      "Fund one growth bet fully for 90 days instead of starving several.",
		},
		matches: func(s AxisScores) bool {
			return s.Get(taxonomy.GrowthPhilosophy) > highAxis && s.Get(taxonomy.ResourceWorldview) < lowAxis
		},
	},
	{
		pattern: MisalignmentPattern{
			Type:        "Mission Without Measurement",
			Description: "Purpose drives you, but you avoid tracking outcomes.",
			Impact:      "You cannot prove or improve the impact you care about most.",
			Remedy:      "Pick two impact metrics and review them monthly.",
		},
		matches: func(s AxisScores) bool {
			return s.Get(taxonomy.PurposeFilter) > highAxis && s.Get(taxonomy.MetricsOrientation) < lowAxis
		},
	},
	{
		pattern: MisalignmentPattern{
			Type:        "Lone Disruptor",
			Description: "You crave change but distrust the people needed to deliver it.",
			Impact:      "Change initiatives depend on you alone and burn you out.",
			Remedy:      "Recruit one trusted partner into each change before announcing it.",
		},
		matches: func(s AxisScores) bool {
			return s.Get(taxonomy.ChangeAppetite) > highAxis && s.Get(taxonomy.SocialWorldview) < lowAxis
		},
	},
	{
		pattern: MisalignmentPattern{
			Type:        "Numbers Without Meaning",
			Description: "You optimise metrics while purpose sits in the background.",
			Impact:      "Targets get hit but motivation and loyalty erode.",
			Remedy:      "Tie every quarterly target to the outcome it serves for customers.",
		},
		matches: func(s AxisScores) bool {
			return s.Get(taxonomy.MetricsOrientation) > highAxis && s.Get(taxonomy.PurposeFilter) < lowAxis
		},
	},
}

// DetectMisalignments returns every pattern whose rule matches, in rule
// order. Rules are independent; several may fire.
func DetectMisalignments(scores AxisScores) []MisalignmentPattern {
	var out []MisalignmentPattern
	for _, r := range misalignmentRules {
		if r.matches(scores) {
			out = append(out, r.pattern)
		}
	}
	return out
}
