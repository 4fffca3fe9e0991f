// Package taxonomy holds the canonical vocabularies of the E-DNA assessment.
//
// Every classification the engine produces (core type, subtype, learning
// axis, neurodiversity trait, belief axis) is a typed string enum defined
// here, together with its display name. Scoring and the derived generators
// (report, playbook, export) read names from this package only, so the
// labels cannot drift between modules.
package taxonomy

import "fmt"

// --- Core type enum ---

// CoreType is the top-level archetype classification.
type CoreType string

const (
	Architect CoreType = "architect"
	Alchemist CoreType = "alchemist"
	Blurred   CoreType = "blurred"
)

// CoreTypes lists the archetypes in their fixed ranking order.
// Ties in Layer 1 are broken by this order.
var CoreTypes = []CoreType{Architect, Alchemist, Blurred}

var coreTypeNames = map[CoreType]string{
	Architect: "Architect",
	Alchemist: "Alchemist",
	Blurred:   "Blurred",
}

var coreTypeDescriptions = map[CoreType]string{
	Architect: "You build through structure: logic, systems and sequenced execution turn ideas into repeatable results.",
	Alchemist: "You build through energy: intuition, emotion and meaning turn ideas into experiences people feel.",
	Blurred:   "You move between structure and intuition without a settled default, which gives range but costs consistency.",
}

// Name returns the display name of the core type.
func (c CoreType) Name() string {
	if n, ok := coreTypeNames[c]; ok {
		return n
	}
	return string(c)
}

// Description returns the one-paragraph description of the core type.
func (c CoreType) Description() string {
	return coreTypeDescriptions[c]
}

// Mirror returns the opposite archetype. Blurred has no single mirror
// and returns itself.
func (c CoreType) Mirror() CoreType {
	switch c {
	case Architect:
		return Alchemist
	case Alchemist:
		return Architect
	default:
		return c
	}
}

// ValidateCoreType returns an error if the label is not a known archetype.
func ValidateCoreType(c CoreType) error {
	if _, ok := coreTypeNames[c]; !ok {
		return fmt.Errorf("invalid core type %q: must be one of: architect, alchemist, blurred", c)
	}
	return nil
}

// --- Learning axis enum ---

// LearningAxis is one of the five Layer 4 learning-style axes.
type LearningAxis string

const (
	AxisModality           LearningAxis = "modality"
	AxisApproach           LearningAxis = "approach"
	AxisConceptProcessing  LearningAxis = "concept_processing"
	AxisWorkingEnvironment LearningAxis = "working_environment"
	AxisPace               LearningAxis = "pace"
)

// LearningAxes lists the axes in output order.
var LearningAxes = []LearningAxis{
	AxisModality, AxisApproach, AxisConceptProcessing, AxisWorkingEnvironment, AxisPace,
}

// --- Trait enum ---

// Trait is a Layer 5 neurodiversity screening trait.
type Trait string

const (
	TraitADHD     Trait = "adhd"
	TraitDyslexia Trait = "dyslexia"
	TraitAutism   Trait = "autism"
	TraitSensory  Trait = "sensory"
	TraitNone     Trait = "none"
)

// ScreenedTraits are the traits that can raise a flag, in report order.
// TraitNone is tallied but never flagged.
var ScreenedTraits = []Trait{TraitADHD, TraitDyslexia, TraitAutism, TraitSensory}

var traitNames = map[Trait]string{
	TraitADHD:     "ADHD",
	TraitDyslexia: "Dyslexia",
	TraitAutism:   "Autism",
	TraitSensory:  "Sensory Processing",
	TraitNone:     "None",
}

// Name returns the display name of the trait.
func (t Trait) Name() string {
	if n, ok := traitNames[t]; ok {
		return n
	}
	return string(t)
}

// --- Belief axis enum ---

// BeliefAxis is one of the six bipolar Layer 7 value axes.
type BeliefAxis string

const (
	GrowthPhilosophy   BeliefAxis = "growth_philosophy"
	PurposeFilter      BeliefAxis = "purpose_filter"
	ChangeAppetite     BeliefAxis = "change_appetite"
	MetricsOrientation BeliefAxis = "metrics_orientation"
	SocialWorldview    BeliefAxis = "social_worldview"
	ResourceWorldview  BeliefAxis = "resource_worldview"
)

// BeliefAxes lists the six axes in output order.
var BeliefAxes = []BeliefAxis{
	GrowthPhilosophy, PurposeFilter, ChangeAppetite, MetricsOrientation, SocialWorldview, ResourceWorldview,
}

var beliefAxisNames = map[BeliefAxis]string{
	GrowthPhilosophy:   "Growth Philosophy",
	PurposeFilter:      "Purpose Filter",
	ChangeAppetite:     "Change Appetite",
	MetricsOrientation: "Metrics Orientation",
	SocialWorldview:    "Social Worldview",
	ResourceWorldview:  "Resource Worldview",
}

// Name returns the display name of the belief axis.
func (b BeliefAxis) Name() string {
	if n, ok := beliefAxisNames[b]; ok {
		return n
	}
	return string(b)
}

// --- Display names for categorical values ---

// valueNames maps canonical categorical tokens (learning preferences,
// mindset, risk, extraversion, belief values) to human-readable names.
var valueNames = map[string]string{
	"visual":          "visual",
	"auditory":        "auditory",
	"kinesthetic":     "hands-on",
	"reading_writing": "reading/writing",
	"multimodal":      "multimodal",
	"structured":      "structured",
	"exploratory":     "exploratory",
	"adaptive":        "adaptive",
	"concrete":        "concrete",
	"abstract":        "abstract",
	"flexible":        "flexible",
	"independent":     "independent",
	"collaborative":   "collaborative",
	"fast_paced":      "fast-paced",
	"steady":          "steady",
	"versatile":       "versatile",
	"extroverted":     "extroverted",
	"introverted":     "introverted",
	"balanced":        "balanced",
}

// DisplayValue returns a readable form of a categorical token. Unknown
// tokens have their underscores replaced with spaces.
func DisplayValue(token string) string {
	if n, ok := valueNames[token]; ok {
		return n
	}
	return humanize(token)
}

// humanize turns "bold_scaling" into "bold scaling".
func humanize(token string) string {
	out := []byte(token)
	for i := range out {
		if out[i] == '_' || out[i] == '-' {
			out[i] = ' '
		}
	}
	return string(out)
}
