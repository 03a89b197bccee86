package core

// EnsureLen returns a slice of length n, reusing buf when its capacity allows.
// The contents of a reused slice are not cleared.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}

	if cap(buf) >= n {
		return buf[:n]
	}

	return make([]float64, n)
}

// Zero sets every element of buf to 0.
func Zero(buf []float64) {
	clear(buf)
}
