package report

import (
	"fmt"

	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/scoring"
	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/taxonomy"
)

// Recommendation list caps.
const (
	MaxLearning    = 3
	MaxDevelopment = 3
	MaxTools       = 5
)

// Recommendations are the prioritised action lists for a profile.
type Recommendations struct {
	Learning    []string `json:"learning"`
	Development []string `json:"development"`
	Tools       []string `json:"tools"`
}

var learningTips = map[taxonomy.LearningAxis]map[string]string{
	taxonomy.AxisModality: {
		"visual":          "Sketch a diagram or mind map before reading any long document.",
		"auditory":        "Talk new ideas through out loud or listen to them as audio first.",
		"kinesthetic":     "Learn by building a rough prototype instead of studying the manual.",
		"reading_writing": "Summarise every new concept in your own words in a running notes file.",
		"multimodal":      "Mix formats: pair each reading session with a diagram or a conversation.",
	},
	taxonomy.AxisApproach: {
		"structured":  "Break new skills into numbered steps and finish each before moving on.",
		"exploratory": "Start with the big picture and fill in details as questions arise.",
		"adaptive":    "Choose step-by-step or big-picture learning per topic, not by habit.",
	},
	taxonomy.AxisConceptProcessing: {
		"concrete": "Ask for a worked example before any theory.",
		"abstract": "Look for the underlying model first, then test it on examples.",
		"flexible": "Alternate between examples and principles until both make sense.",
	},
	taxonomy.AxisWorkingEnvironment: {
		"independent":   "Protect two uninterrupted solo blocks each week for deep learning.",
		"collaborative": "Join or form a small peer group that meets on a fixed schedule.",
		"adaptive":      "Plan solo study for depth and group sessions for feedback.",
	},
	taxonomy.AxisPace: {
		"fast_paced": "Use short sprints with a clear finish line, then review what stuck.",
		"steady":     "Schedule consistent daily practice rather than occasional marathons.",
		"versatile":  "Sprint on familiar material and slow down deliberately on new ground.",
	},
}

var coreTypeTools = map[taxonomy.CoreType][]string{
	taxonomy.Architect: {"Decision matrix template", "Quarterly planning board"},
	taxonomy.Alchemist: {"Energy and mood journal", "Vision board with monthly review"},
	taxonomy.Blurred:   {"Decision log with outcome review", "Weekly reflection prompt"},
}

var modalityTools = map[string]string{
	"visual":          "Whiteboard or mind-mapping app",
	"auditory":        "Voice-memo app for capturing ideas",
	"kinesthetic":     "Physical sticky-note task wall",
	"reading_writing": "Structured note-taking app",
	"multimodal":      "Notebook that mixes sketches, lists and voice notes",
}

var paceTools = map[string]string{
	"fast_paced": "Timeboxing timer (25-minute sprints)",
	"steady":     "Habit tracker for daily practice",
	"versatile":  "Weekly energy planner",
}

var traitTools = map[taxonomy.Trait]string{
	taxonomy.TraitADHD:     "Body-doubling sessions or focus timers",
	taxonomy.TraitDyslexia: "Text-to-speech and dyslexia-friendly fonts",
	taxonomy.TraitAutism:   "Written agendas shared before meetings",
	taxonomy.TraitSensory:  "Noise-cancelling headphones and a low-stimulus workspace",
}

var mindsetTips = map[string]string{
	"growth": "Pick one skill you are weakest at and practise it publicly for 30 days.",
	"fixed":  "After each setback, write down one thing you learned and one thing you will try next.",
	"mixed":  "Notice which areas you treat as fixed talent and run one small experiment in each.",
}

var riskTips = map[string]string{
	"high":     "Before each bold bet, write down the downside you can live with.",
	"moderate": "Pair every safe initiative with one small calculated risk.",
	"low":      "Run a low-cost test of one idea you have been postponing.",
	"mixed":    "Decide your risk budget per project before starting it.",
}

// Recommend builds capped recommendation lists from c. Lists are filled
// in priority order and truncated at MaxLearning, MaxDevelopment and
// MaxTools.
func Recommend(c *scoring.Composite) Recommendations {
	return Recommendations{
		Learning:    capList(learningRecommendations(c), MaxLearning),
		Development: capList(developmentRecommendations(c), MaxDevelopment),
		Tools:       capList(toolRecommendations(c), MaxTools),
	}
}

func learningRecommendations(c *scoring.Composite) []string {
	var out []string
	for _, axis := range taxonomy.LearningAxes {
		if tip, ok := learningTips[axis][c.Layer4.Preference(axis)]; ok {
			out = append(out, tip)
		}
	}
	return out
}

func developmentRecommendations(c *scoring.Composite) []string {
	var out []string
	if p, ok := taxonomy.LookupSubtype(c.Layer2.PrimarySubtype); ok {
		out = append(out, p.GrowthFocus)
	}
	if c.Layer3.MirrorAwarenessLevel == scoring.MirrorLow {
		out = append(out, mirrorTip(c.Layer1.CoreType))
	}
	if len(c.Layer7.Misalignments) > 0 {
		out = append(out, c.Layer7.Misalignments[0].Remedy)
	}
	if tip, ok := mindsetTips[c.Layer6.Mindset]; ok {
		out = append(out, tip)
	}
	if len(c.Layer7.ConflictedBeliefs) > 0 {
		out = append(out, c.Layer7.ConflictedBeliefs[0].CoachingPrompt)
	}
	if tip, ok := riskTips[c.Layer6.RiskTolerance]; ok {
		out = append(out, tip)
	}
	return out
}

func mirrorTip(core taxonomy.CoreType) string {
	if core == taxonomy.Blurred {
		return "Shadow one strong Architect and one strong Alchemist for a week and note how each decides."
	}
	return fmt.Sprintf("Partner with an %s on your next project and study how they decide.", core.Mirror().Name())
}

func toolRecommendations(c *scoring.Composite) []string {
	var out []string
	for _, trait := range c.Layer5.TraitsDetected {
		if tool, ok := traitTools[trait]; ok {
			out = append(out, tool)
		}
	}
	out = append(out, coreTypeTools[c.Layer1.CoreType]...)
	if tool, ok := modalityTools[c.Layer4.Modality]; ok {
		out = append(out, tool)
	}
	if tool, ok := paceTools[c.Layer4.Pace]; ok {
		out = append(out, tool)
	}
	return out
}

// capList truncates items to n, always returning a non-nil slice.
func capList(items []string, n int) []string {
	if len(items) > n {
		items = items[:n]
	}
	return append([]string{}, items...)
}
