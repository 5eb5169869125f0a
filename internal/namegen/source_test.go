package namegen

// indexSource always picks the same index, clamped to the bucket.
type indexSource struct {
	index int
}

func (s indexSource) IntN(n int) int {
	if s.index >= n {
		return n - 1
	}
	return s.index
}

// lastSource always picks the last element of a bucket.
type lastSource struct{}

func (lastSource) IntN(n int) int { return n - 1 }

// recordingSource remembers every bound it was asked for.
type recordingSource struct {
	bounds []int
}

func (s *recordingSource) IntN(n int) int {
	s.bounds = append(s.bounds, n)
	return 0
}
