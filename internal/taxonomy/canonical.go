package taxonomy

import "strings"

// This file is the single home of every raw-token → canonical-enum
// mapping. Question banks use variant spellings for repeated or
// alias questions ("modality_repeat", "adhd_reorganize"); calculators
// resolve them only through the functions below.

// --- Layer 4: learning style ---

var learningAxisAliases = map[string]LearningAxis{
	"modality":            AxisModality,
	"learning_modality":   AxisModality,
	"approach":            AxisApproach,
	"learning_approach":   AxisApproach,
	"concept_processing":  AxisConceptProcessing,
	"concepts":            AxisConceptProcessing,
	"processing":          AxisConceptProcessing,
	"working_environment": AxisWorkingEnvironment,
	"environment":         AxisWorkingEnvironment,
	"work_environment":    AxisWorkingEnvironment,
	"pace":                AxisPace,
	"learning_pace":       AxisPace,
}

// repeatSuffixes mark the second question of an axis pair.
var repeatSuffixes = []string{"_repeat", "_check", "_confirm", "_2"}

// CanonicalLearningAxis resolves a Layer 4 dimension to its axis.
func CanonicalLearningAxis(dimension string) (LearningAxis, bool) {
	d := normalizeLabel(dimension)
	for _, suffix := range repeatSuffixes {
		d = strings.TrimSuffix(d, suffix)
	}
	axis, ok := learningAxisAliases[d]
	return axis, ok
}

// learningCategories maps each axis's raw answer values to the axis's
// categories.
var learningCategories = map[LearningAxis]map[string]string{
	AxisModality: {
		"visual":          "visual",
		"seeing":          "visual",
		"diagrams":        "visual",
		"auditory":        "auditory",
		"listening":       "auditory",
		"discussion":      "auditory",
		"kinesthetic":     "kinesthetic",
		"hands_on":        "kinesthetic",
		"doing":           "kinesthetic",
		"reading":         "reading_writing",
		"writing":         "reading_writing",
		"read_write":      "reading_writing",
		"reading_writing": "reading_writing",
	},
	AxisApproach: {
		"sequential":   "structured",
		"structured":   "structured",
		"step_by_step": "structured",
		"global":       "exploratory",
		"exploratory":  "exploratory",
		"kinesthetic":  "exploratory",
		"big_picture":  "exploratory",
	},
	AxisConceptProcessing: {
		"concrete":    "concrete",
		"practical":   "concrete",
		"examples":    "concrete",
		"abstract":    "abstract",
		"theoretical": "abstract",
		"conceptual":  "abstract",
	},
	AxisWorkingEnvironment: {
		"solo":          "independent",
		"independent":   "independent",
		"quiet":         "independent",
		"collaborative": "collaborative",
		"group":         "collaborative",
		"team":          "collaborative",
	},
	AxisPace: {
		"fast":       "fast_paced",
		"fast_paced": "fast_paced",
		"rapid":      "fast_paced",
		"quick":      "fast_paced",
		"steady":     "steady",
		"methodical": "steady",
		"deliberate": "steady",
		"slow":       "steady",
	},
}

var contradictionLabels = map[LearningAxis]string{
	AxisModality:           "multimodal",
	AxisApproach:           "adaptive",
	AxisConceptProcessing:  "flexible",
	AxisWorkingEnvironment: "adaptive",
	AxisPace:               "versatile",
}

// LearningCategory maps a raw Layer 4 value to its category on the axis.
func LearningCategory(axis LearningAxis, value string) (string, bool) {
	c, ok := learningCategories[axis][normalizeLabel(value)]
	return c, ok
}

// ContradictionLabel is the category an axis resolves to when its
// answers disagree or cannot be classified.
func ContradictionLabel(axis LearningAxis) string {
	return contradictionLabels[axis]
}

// --- Layer 5: neurodiversity ---

var traitAliases = map[string]Trait{
	"adhd":           TraitADHD,
	"dyslexia":       TraitDyslexia,
	"dyslexic":       TraitDyslexia,
	"autism":         TraitAutism,
	"autistic":       TraitAutism,
	"asd":            TraitAutism,
	"sensory":        TraitSensory,
	"spd":            TraitSensory,
	"none":           TraitNone,
	"neurotypical":   TraitNone,
	"no":             TraitNone,
	"not_applicable": TraitNone,
}

// CanonicalTrait resolves a Layer 5 value such as "adhd_reorganize" or
// "dyslexia_letters" to its trait. The part before the first underscore
// names the trait; unrecognized values count as TraitNone.
func CanonicalTrait(value string) Trait {
	v := normalizeLabel(value)
	if t, ok := traitAliases[v]; ok {
		return t
	}
	if head, _, found := strings.Cut(v, "_"); found {
		if t, ok := traitAliases[head]; ok {
			return t
		}
	}
	return TraitNone
}

// --- Layer 6: mindset & personality ---

// PersonalityDimension is one of the Layer 6 question dimensions.
type PersonalityDimension string

const (
	DimMindset       PersonalityDimension = "mindset"
	DimRiskTolerance PersonalityDimension = "risk_tolerance"
	DimExtraversion  PersonalityDimension = "extraversion"
)

var personalityAliases = map[string]PersonalityDimension{
	"mindset":        DimMindset,
	"growth_mindset": DimMindset,
	"risk":           DimRiskTolerance,
	"risk_tolerance": DimRiskTolerance,
	"extraversion":   DimExtraversion,
	"extroversion":   DimExtraversion,
	"social_energy":  DimExtraversion,
}

// CanonicalPersonalityDimension resolves a Layer 6 dimension label.
func CanonicalPersonalityDimension(dimension string) (PersonalityDimension, bool) {
	d := normalizeLabel(dimension)
	for _, suffix := range repeatSuffixes {
		d = strings.TrimSuffix(d, suffix)
	}
	p, ok := personalityAliases[d]
	return p, ok
}

// personalityValues lists the canonical values per dimension. A raw value
// matches when it equals a canonical value or starts with "<value>_".
var personalityValues = map[PersonalityDimension][]string{
	DimMindset:       {"growth", "fixed"},
	DimRiskTolerance: {"high", "moderate", "low"},
	DimExtraversion:  {"extroverted", "introverted", "ambivert"},
}

var personalityAliasValues = map[string]string{
	"extrovert":   "extroverted",
	"extravert":   "extroverted",
	"extraverted": "extroverted",
	"introvert":   "introverted",
	"medium":      "moderate",
}

// PersonalityValues returns the canonical values of a dimension in
// tie-break order.
func PersonalityValues(dim PersonalityDimension) []string {
	return personalityValues[dim]
}

// CanonicalPersonalityValue resolves a raw Layer 6 value ("growth_x",
// "introvert") to its canonical value on the dimension.
func CanonicalPersonalityValue(dim PersonalityDimension, value string) (string, bool) {
	v := normalizeLabel(value)
	if alias, ok := personalityAliasValues[v]; ok {
		v = alias
	}
	for _, canonical := range personalityValues[dim] {
		if v == canonical || strings.HasPrefix(v, canonical+"_") {
			return canonical, true
		}
	}
	return "", false
}

// --- Layer 7: beliefs ---

// Pole is the bucket a belief answer falls into on its axis.
type Pole int

const (
	PoleBalanced Pole = iota
	PoleHigh
	PoleLow
)

// beliefDimensions maps raw Layer 7 question dimensions to belief axes.
var beliefDimensions = map[string]BeliefAxis{
	"growth_belief":     GrowthPhilosophy,
	"scaling_belief":    GrowthPhilosophy,
	"purpose_belief":    PurposeFilter,
	"values_belief":     PurposeFilter,
	"change_belief":     ChangeAppetite,
	"innovation_belief": ChangeAppetite,
	"metrics_belief":    MetricsOrientation,
	"success_belief":    MetricsOrientation,
	"social_belief":     SocialWorldview,
	"people_belief":     SocialWorldview,
	"resource_belief":   ResourceWorldview,
	"money_belief":      ResourceWorldview,
}

// beliefPoles classifies answer values per axis; anything unlisted is
// balanced.
var beliefPoles = map[BeliefAxis]map[string]Pole{
	GrowthPhilosophy: {
		"bold_scaling":       PoleHigh,
		"rapid_growth":       PoleHigh,
		"scale_fast":         PoleHigh,
		"quality_first":      PoleLow,
		"quality_concern":    PoleLow,
		"sustainable_growth": PoleLow,
	},
	PurposeFilter: {
		"purpose_driven":     PoleHigh,
		"impact_first":       PoleHigh,
		"mission_first":      PoleHigh,
		"profit_first":       PoleLow,
		"revenue_first":      PoleLow,
		"opportunity_driven": PoleLow,
	},
	ChangeAppetite: {
		"embrace_change":  PoleHigh,
		"disrupt":         PoleHigh,
		"experiment":      PoleHigh,
		"stability_first": PoleLow,
		"proven_methods":  PoleLow,
		"cautious_change": PoleLow,
	},
	MetricsOrientation: {
		"data_driven":        PoleHigh,
		"kpi_focused":        PoleHigh,
		"measure_everything": PoleHigh,
		"intuition_led":      PoleLow,
		"feel_based":         PoleLow,
		"qualitative":        PoleLow,
	},
	SocialWorldview: {
		"collaborative":   PoleHigh,
		"community_first": PoleHigh,
		"trust_others":    PoleHigh,
		"competitive":     PoleLow,
		"self_reliant":    PoleLow,
		"guarded":         PoleLow,
	},
	ResourceWorldview: {
		"abundance":        PoleHigh,
		"invest_freely":    PoleHigh,
		"plenty":           PoleHigh,
		"scarcity":         PoleLow,
		"conserve":         PoleLow,
		"scarcity_mindset": PoleLow,
	},
}

// BeliefAxisFor resolves a raw Layer 7 dimension to its axis.
func BeliefAxisFor(dimension string) (BeliefAxis, bool) {
	axis, ok := beliefDimensions[normalizeLabel(dimension)]
	return axis, ok
}

// BeliefPole classifies a raw Layer 7 value on an axis.
func BeliefPole(axis BeliefAxis, value string) Pole {
	if p, ok := beliefPoles[axis][normalizeLabel(value)]; ok {
		return p
	}
	return PoleBalanced
}
