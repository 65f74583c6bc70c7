package match

// Levenshtein computes the edit distance between two strings, counting runes.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)

	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	if len(ra) == 0 {
		return len(rb)
	}

	// Two rows of the DP matrix, indexed by position in the shorter string.
	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// Similarity returns 1 - distance/maxLen over normalised names, in [0, 1].
func Similarity(a, b string) float64 {
	na, nb := []rune(NormalizeName(a)), []rune(NormalizeName(b))

	longest := max(len(na), len(nb))
	if longest == 0 {
		return 1
	}

	return 1 - float64(Levenshtein(string(na), string(nb)))/float64(longest)
}
