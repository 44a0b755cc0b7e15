package fuzzyindex

// dpRows holds the two rolling rows for the Levenshtein recurrence so that
// repeated scoring within one query reuses the same backing storage.
type dpRows struct {
	prev, curr []int
}

// rows returns both rows sized to n, growing the backing arrays as needed.
func (r *dpRows) rows(n int) (prev, curr []int) {
	if cap(r.prev) < n {
		r.prev = make([]int, n)
		r.curr = make([]int, n)
	}
	return r.prev[:n], r.curr[:n]
}

// levenshtein returns the minimum number of single-unit insertions,
// deletions, and substitutions transforming a into b. Two rolling rows keep
// extra space at O(len(b)).
func levenshtein(a, b []uint16, rows *dpRows) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev, curr := rows.rows(len(b) + 1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// similarity scores a against b as 1 - distance/maxLen and reports whether
// the score reaches minScore.
//
// The length gap alone forces at least abs(len(a)-len(b)) edits, so when
// that gap already pushes the best possible score below minScore the pair is
// rejected without running the recurrence. The shortcut can only reject
// pairs the exact computation would also reject; the reported score for a
// shortcut rejection is 0.
func similarity(a, b []uint16, minScore float64, rows *dpRows) (float64, bool) {
	maxLen := max(len(a), len(b))
	if maxLen == 0 {
		return 1, 1 >= minScore
	}

	diff := len(a) - len(b)
	if diff < 0 {
		diff = -diff
	}
	if float64(diff) > (1-minScore)*float64(maxLen) {
		return 0, false
	}

	d := levenshtein(a, b, rows)
	score := 1 - float64(d)/float64(maxLen)
	return score, score >= minScore
}
