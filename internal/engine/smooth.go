package engine

// smooth replaces each value with the centered moving average of itself and
// up to window neighbors on each side. The window truncates at the series
// edges; there is no padding and no wraparound.
func smooth(values []float64, window int) []float64 {
	if window <= 0 || len(values) == 0 {
		return values
	}

	out := make([]float64, len(values))
	for i := range values {
		lo := max(i-window, 0)
		hi := min(i+window, len(values)-1)

		var sum float64
		for j := lo; j <= hi; j++ {
			sum += values[j]
		}
		out[i] = sum / float64(hi-lo+1)
	}
	return out
}
