package text

// Ratio computes a similarity ratio in [0,1] between two strings:
// twice the number of matching runes over the total length, where
// matches are found greedily by longest contiguous block. Identical
// strings score 1.0, disjoint strings 0.0.
func Ratio(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	ra, rb := []rune(a), []rune(b)
	matched := matchingRunes(ra, rb, 0, len(ra), 0, len(rb))
	return 2 * float64(matched) / float64(len(ra)+len(rb))
}

// matchingRunes counts matching runes by locating the longest common
// block in the given ranges, then recursing on the unmatched regions
// to its left and right.
func matchingRunes(a, b []rune, alo, ahi, blo, bhi int) int {
	i, j, size := longestMatch(a, b, alo, ahi, blo, bhi)
	if size == 0 {
		return 0
	}
	total := size
	total += matchingRunes(a, b, alo, i, blo, j)
	total += matchingRunes(a, b, i+size, ahi, j+size, bhi)
	return total
}

// longestMatch finds the longest block of runes common to
// a[alo:ahi] and b[blo:bhi].
func longestMatch(a, b []rune, alo, ahi, blo, bhi int) (besti, bestj, bestsize int) {
	b2j := make(map[rune][]int, bhi-blo)
	for j := blo; j < bhi; j++ {
		b2j[b[j]] = append(b2j[b[j]], j)
	}

	besti, bestj = alo, blo
	j2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		newj2len := make(map[int]int)
		for _, j := range b2j[a[i]] {
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len = newj2len
	}
	return besti, bestj, bestsize
}

// Jaccard computes intersection-over-union similarity between the
// token sets of two texts. Symmetric: Jaccard(a,b) == Jaccard(b,a).
func Jaccard(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}

	setA := TokenSet(a)
	setB := TokenSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	intersection := 0
	for tok := range setA {
		if _, ok := setB[tok]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}
