package scoring

import (
	"math"
	"sort"
)

// rankedScore is one entry of a descending ranking.
type rankedScore[K comparable] struct {
	key  K
	norm float64
}

// rankDesc orders keys by norm, descending. Equal norms keep the order of
// keys, which callers pass in their tie-break order.
func rankDesc[K comparable](keys []K, norms map[K]float64) []rankedScore[K] {
	out := make([]rankedScore[K], 0, len(keys))
	for _, k := range keys {
		out = append(out, rankedScore[K]{key: k, norm: norms[k]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].norm > out[j].norm
	})
	return out
}

// topTwo returns the leader and the runner-up of a ranking. A missing
// runner-up has a zero norm.
func topTwo[K comparable](ranked []rankedScore[K]) (top, second rankedScore[K]) {
	if len(ranked) > 0 {
		top = ranked[0]
	}
	if len(ranked) > 1 {
		second = ranked[1]
	}
	return top, second
}

// percent multiplies before dividing so integer shares stay exact.
func percent(count float64, total int) float64 {
	if total == 0 {
		return 0
	}
	return count * 100 / float64(total)
}

func round(f float64) int {
	return int(math.Round(f))
}
