package langdetect

import (
	"fmt"
	"math"
	"sort"
)

// Language is one entry of a ranked detection result: a language identifier
// and its probability. An empty identifier denotes an unknown language.
type Language struct {
	Lang string  `json:"lang"`
	Prob float64 `json:"prob"`
}

func (l Language) String() string {
	if l.Lang == "" {
		return ""
	}

	return fmt.Sprintf("%s:%.1f", l.Lang, l.Prob)
}

// sortLanguages orders by probability descending under a total order: NaN
// sorts below every number and exact ties break by identifier ascending, so
// the ranking is stable and never depends on an unspecified float comparison.
func sortLanguages(langs []Language) {
	sort.Slice(langs, func(i, j int) bool {
		pi, pj := langs[i].Prob, langs[j].Prob

		switch {
		case math.IsNaN(pi):
			return false
		case math.IsNaN(pj):
			return true
		case pi != pj:
			return pi > pj
		default:
			return langs[i].Lang < langs[j].Lang
		}
	})
}
