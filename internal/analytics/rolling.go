package analytics

// RollingMean computes a trailing moving average over values. A
// position with fewer than window values behind it averages what is
// there, so the first output equals the first input.
func RollingMean(values []float64, window int) []float64 {
	if window < 1 || len(values) == 0 {
		return nil
	}
	out := make([]float64, len(values))
	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		n := i + 1
		if n > window {
			n = window
		}
		out[i] = sum / float64(n)
	}
	return out
}
