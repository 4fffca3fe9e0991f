package taxonomy

import (
	"strings"
)

// Subtype is a Layer 2 refinement within a core type.
type Subtype string

const (
	MasterStrategist   Subtype = "master_strategist"
	SystemisedBuilder  Subtype = "systemised_builder"
	InternalAnalyzer   Subtype = "internal_analyzer"
	UltimateStrategist Subtype = "ultimate_strategist"

	VisionaryOracle       Subtype = "visionary_oracle"
	MagneticPerfectionist Subtype = "magnetic_perfectionist"
	EnergeticEmpath       Subtype = "energetic_empath"
	UltimateAlchemist     Subtype = "ultimate_alchemist"

	Overthinker Subtype = "overthinker"
	Performer   Subtype = "performer"
	SelfDoubter Subtype = "self_doubter"
)

// SubtypeProfile is the static reference data for one subtype.
type SubtypeProfile struct {
	Subtype     Subtype  `json:"subtype"`
	Name        string   `json:"name"`
	CoreType    CoreType `json:"core_type"`
	Description string   `json:"description"`
	Strengths   []string `json:"strengths"`
	Blindspots  []string `json:"blindspots"`
	GrowthFocus string   `json:"growth_focus"`
}

var subtypeProfiles = map[Subtype]SubtypeProfile{
	MasterStrategist: {
		Name:        "Master Strategist",
		CoreType:    Architect,
		Description: "Sees the whole board and plans several moves ahead before committing resources.",
		Strengths:   []string{"Long-range planning", "Resource allocation", "Risk anticipation"},
		Blindspots:  []string{"Over-planning before testing", "Underrating emotional buy-in"},
		GrowthFocus: "Ship smaller experiments earlier and let results refine the plan.",
	},
	SystemisedBuilder: {
		Name:        "Systemised Builder",
		CoreType:    Architect,
		Description: "Turns chaos into repeatable processes and gets energy from well-run operations.",
		Strengths:   []string{"Process design", "Operational consistency", "Delegation through documentation"},
		Blindspots:  []string{"Rigidity when conditions change", "Optimising what should be dropped"},
		GrowthFocus: "Review which systems still earn their upkeep every quarter.",
	},
	InternalAnalyzer: {
		Name:        "Internal Analyzer",
		CoreType:    Architect,
		Description: "Processes deeply and privately, reaching precise conclusions before speaking.",
		Strengths:   []string{"Depth of analysis", "Precision", "Independent judgement"},
		Blindspots:  []string{"Slow to share work in progress", "Analysis paralysis"},
		GrowthFocus: "Share drafts at 70% confidence and invite critique early.",
	},
	UltimateStrategist: {
		Name:        "Ultimate Strategist",
		CoreType:    Architect,
		Description: "Combines strategic vision with disciplined execution across every Architect mode.",
		Strengths:   []string{"Strategic range", "Execution discipline", "Clear decision rules"},
		Blindspots:  []string{"Carrying too much alone", "Impatience with intuitive teammates"},
		GrowthFocus: "Build a bench that can run your systems without you.",
	},
	VisionaryOracle: {
		Name:        "Visionary Oracle",
		CoreType:    Alchemist,
		Description: "Senses where things are going and pulls people toward a future they cannot yet see.",
		Strengths:   []string{"Trend intuition", "Inspiring vision", "Creative leaps"},
		Blindspots:  []string{"Unfinished implementation", "Vague next steps"},
		GrowthFocus: "Pair every vision with a named owner and a first milestone.",
	},
	MagneticPerfectionist: {
		Name:        "Magnetic Perfectionist",
		CoreType:    Alchemist,
		Description: "Creates work with a distinctive feel and holds it to an exacting standard.",
		Strengths:   []string{"Brand and craft quality", "Attention to detail", "Emotional resonance"},
		Blindspots:  []string{"Delayed launches", "Reluctance to delegate creative work"},
		GrowthFocus: "Define 'good enough to ship' before starting each piece.",
	},
	EnergeticEmpath: {
		Name:        "Energetic Empath",
		CoreType:    Alchemist,
		Description: "Reads people and rooms instantly and builds loyal communities around shared feeling.",
		Strengths:   []string{"Relationship building", "Audience insight", "Team morale"},
		Blindspots:  []string{"Absorbing others' stress", "Avoiding hard conversations"},
		GrowthFocus: "Protect energy with explicit boundaries and recovery time.",
	},
	UltimateAlchemist: {
		Name:        "Ultimate Alchemist",
		CoreType:    Alchemist,
		Description: "Integrates vision, craft and empathy and can translate intuition into results.",
		Strengths:   []string{"Creative range", "Influence", "Meaning-making"},
		Blindspots:  []string{"Spreading across too many ideas", "Inconsistent routines"},
		GrowthFocus: "Install one lightweight operating rhythm and keep it for 90 days.",
	},
	Overthinker: {
		Name:        "Overthinker",
		CoreType:    Blurred,
		Description: "Weighs both logic and intuition so thoroughly that decisions stall.",
		Strengths:   []string{"Sees multiple perspectives", "Thoroughness"},
		Blindspots:  []string{"Decision delay", "Second-guessing completed work"},
		GrowthFocus: "Time-box decisions and commit to a default rule for small ones.",
	},
	Performer: {
		Name:        "Performer",
		CoreType:    Blurred,
		Description: "Adapts style to whatever the audience expects, often losing track of a natural mode.",
		Strengths:   []string{"Adaptability", "Social awareness"},
		Blindspots:  []string{"Burnout from masking", "Unclear personal direction"},
		GrowthFocus: "Notice which mode feels restorative and build from there.",
	},
	SelfDoubter: {
		Name:        "Self-Doubter",
		CoreType:    Blurred,
		Description: "Has capability in both modes but trusts neither, deferring to others' methods.",
		Strengths:   []string{"Openness to feedback", "Humility"},
		Blindspots:  []string{"Borrowed strategies that do not fit", "Under-claiming wins"},
		GrowthFocus: "Keep an evidence log of decisions that worked and why.",
	},
}

func init() {
	for k, p := range subtypeProfiles {
		p.Subtype = k
		subtypeProfiles[k] = p
	}
}

// SubtypesFor returns the subtypes belonging to a core type in catalogue order.
func SubtypesFor(c CoreType) []Subtype {
	var order []Subtype
	switch c {
	case Architect:
		order = []Subtype{MasterStrategist, SystemisedBuilder, InternalAnalyzer, UltimateStrategist}
	case Alchemist:
		order = []Subtype{VisionaryOracle, MagneticPerfectionist, EnergeticEmpath, UltimateAlchemist}
	case Blurred:
		order = []Subtype{Overthinker, Performer, SelfDoubter}
	}
	return order
}

// LookupSubtype returns the static profile for a subtype label. Labels
// are matched case-insensitively and may use spaces, hyphens or
// underscores ("Master Strategist", "master-strategist").
func LookupSubtype(label string) (SubtypeProfile, bool) {
	p, ok := subtypeProfiles[Subtype(normalizeLabel(label))]
	return p, ok
}

// SubtypeName returns the display name for a subtype label, or a
// title-cased version of the label when it is not in the catalogue.
func SubtypeName(label string) string {
	if p, ok := LookupSubtype(label); ok {
		return p.Name
	}
	return titleCase(humanize(label))
}

func normalizeLabel(label string) string {
	s := strings.ToLower(strings.TrimSpace(label))
	s = strings.ReplaceAll(s, " ", "_")
	return strings.ReplaceAll(s, "-", "_")
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
