package engine

// countOccurrences reports how many starting positions in doc open an exact
// contiguous match of phrase. Positions are counted independently, with no
// skip-ahead after a match: phrase [a a] occurs twice in [a a a].
func countOccurrences(doc, phrase []string) int {
	n := len(phrase)
	if n == 0 || n > len(doc) {
		return 0
	}

	count := 0
	for i := 0; i+n <= len(doc); i++ {
		if matchesAt(doc, phrase, i) {
			count++
		}
	}
	return count
}

func matchesAt(doc, phrase []string, start int) bool {
	for j, tok := range phrase {
		if doc[start+j] != tok {
			return false
		}
	}
	return true
}
