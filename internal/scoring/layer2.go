package scoring

import (
	"fmt"
	"strings"

	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/answers"
	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/taxonomy"
)

// Layer 2 confidence thresholds.
const (
	SubtypeConfidentMinNorm = 40.0
	SubtypeConfidentMinGap  = 12.0
)

// Layer2Result is the subtype refinement.
type Layer2Result struct {
	PrimarySubtype   string         `json:"primary_subtype"`
	SecondarySubtype *string        `json:"secondary_subtype"`
	IsMixed          bool           `json:"is_mixed"`
	Mastery          int            `json:"mastery"`
	NormalizedScores map[string]int `json:"normalized_scores"`
	DisplayLabel     string         `json:"display_label"`
}

// CalculateLayer2 tallies subtype labels over the Layer 2 answers. Each
// answer contributes its Subtype, or its Selected value when no subtype
// is attached. A clear leader yields "Name (NN%)"; otherwise the result
// is mixed and labelled "Primary (NN%) leading to Secondary (MM%)".
func CalculateLayer2(all []answers.Answer) (Layer2Result, error) {
	layer := answers.ForLayer(all, 2)
	if len(layer) == 0 {
		return Layer2Result{}, &EmptyLayerError{Layer: 2}
	}

	var order []string
	counts := make(map[string]float64)
	for _, a := range layer {
		label := a.Subtype
		if strings.TrimSpace(label) == "" {
			label = a.Selected
		}
		key := subtypeKey(label)
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}

	norms := make(map[string]float64, len(counts))
	rounded := make(map[string]int, len(counts))
	for k, c := range counts {
		norms[k] = percent(c, len(layer))
		rounded[k] = round(norms[k])
	}

	ranked := rankDesc(order, norms)
	top, second := topTwo(ranked)

	res := Layer2Result{
		PrimarySubtype:   top.key,
		Mastery:          round(top.norm),
		NormalizedScores: rounded,
	}
	if top.norm >= SubtypeConfidentMinNorm && top.norm-second.norm >= SubtypeConfidentMinGap {
		res.DisplayLabel = fmt.Sprintf("%s (%d%%)", taxonomy.SubtypeName(top.key), round(top.norm))
		return res, nil
	}

	res.IsMixed = true
	if len(ranked) < 2 {
		res.DisplayLabel = fmt.Sprintf("%s (%d%%)", taxonomy.SubtypeName(top.key), round(top.norm))
		return res, nil
	}
	secondary := second.key
	res.SecondarySubtype = &secondary
	res.DisplayLabel = fmt.Sprintf("%s (%d%%) leading to %s (%d%%)",
		taxonomy.SubtypeName(top.key), round(top.norm),
		taxonomy.SubtypeName(second.key), round(second.norm))
	return res, nil
}

// subtypeKey resolves catalogue spellings to the canonical subtype and
// keeps unknown labels as given.
func subtypeKey(label string) string {
	if p, ok := taxonomy.LookupSubtype(label); ok {
		return string(p.Subtype)
	}
	return strings.TrimSpace(label)
}
