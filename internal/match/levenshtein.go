package match

import "unicode/utf8"

// Levenshtein returns the number of single-rune insertions, deletions and
// substitutions needed to turn a into b. Runes are compared, not bytes, so a
// non-ASCII letter counts as one edit.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) < len(rb) {
		ra, rb = rb, ra
	}

	// row[j] holds the distance between the consumed prefix of ra and rb[:j].
	row := make([]int, len(rb)+1)
	for j := range row {
		row[j] = j
	}

	for i, ca := range ra {
		diag := row[0]
		row[0] = i + 1

		for j, cb := range rb {
			above := row[j+1]

			if ca == cb {
				row[j+1] = diag
			} else {
				row[j+1] = 1 + min(diag, above, row[j])
			}

			diag = above
		}
	}

	return row[len(rb)]
}

// Similarity returns a score between 0 and 1 for two identifiers after
// normalization. 1.0 means the identifiers are the same column name.
func Similarity(a, b string) float64 {
	na, nb := NormalizeIdent(a), NormalizeIdent(b)
	if len(na) == 0 && len(nb) == 0 {
		return 1.0
	}

	maxLen := max(utf8.RuneCountInString(na), utf8.RuneCountInString(nb))

	return 1.0 - float64(Levenshtein(na, nb))/float64(maxLen)
}

// Closest returns the candidate most similar to name together with its score.
// Ties keep the earlier candidate. An empty candidate list returns "", 0.
func Closest(name string, candidates []string) (string, float64) {
	best, bestScore := "", 0.0

	for _, c := range candidates {
		score := Similarity(name, c)
		if best == "" || score > bestScore {
			best, bestScore = c, score
		}
	}

	return best, bestScore
}
