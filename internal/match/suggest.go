package match

import "sort"

// DefaultThreshold is the similarity at or above which a suggestion is offered.
const DefaultThreshold = 0.8

// Candidate is a known name scored against an unknown one.
type Candidate struct {
	Name  string
	Score float64
}

// Rank scores every known name against name, best first. Ties are broken by
// name for determinism.
func Rank(name string, known []string) []Candidate {
	out := make([]Candidate, 0, len(known))

	for _, k := range known {
		out = append(out, Candidate{Name: k, Score: Similarity(name, k)})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}

		return out[i].Name < out[j].Name
	})

	return out
}

// Suggest returns the best known name when its similarity reaches threshold.
func Suggest(name string, known []string, threshold float64) (Candidate, bool) {
	ranked := Rank(name, known)
	if len(ranked) == 0 || ranked[0].Score < threshold {
		return Candidate{}, false
	}

	return ranked[0], true
}
