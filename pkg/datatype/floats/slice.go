package floats

import "math"

// Slice is an ordered numeric series. Derived indicator series use
// math.NaN() to mark entries that have no defined value yet.
type Slice []float64

func New(a ...float64) Slice {
	return Slice(a)
}

func (s *Slice) Push(v float64) {
	*s = append(*s, v)
}

func (s Slice) Length() int {
	return len(s)
}

func (s Slice) Last() float64 {
	if len(s) == 0 {
		return 0.0
	}
	return s[len(s)-1]
}

func (s Slice) Sum() (sum float64) {
	for _, v := range s {
		sum += v
	}
	return sum
}

func (s Slice) Mean() (mean float64) {
	length := len(s)
	if length == 0 {
		return 0.0
	}
	return s.Sum() / float64(length)
}

// Sub subtracts b from s element-wise. NaN entries propagate, so the result
// is undefined wherever either input is undefined.
func (s Slice) Sub(b Slice) Slice {
	if len(s) != len(b) {
		return nil
	}

	sub := make(Slice, len(s))
	for i := 0; i < len(s); i++ {
		sub[i] = s[i] - b[i]
	}
	return sub
}

// Diff returns the bar-to-bar differences; the first entry is NaN since it
// has no predecessor.
func (s Slice) Diff() Slice {
	if len(s) == 0 {
		return nil
	}

	diff := make(Slice, len(s))
	diff[0] = math.NaN()
	for i := 1; i < len(s); i++ {
		diff[i] = s[i] - s[i-1]
	}
	return diff
}

// NaNSlice returns a slice of the given length with every entry undefined.
func NaNSlice(length int) Slice {
	s := make(Slice, length)
	for i := range s {
		s[i] = math.NaN()
	}
	return s
}

// Defined reports whether the entry at index i holds a computed value.
func (s Slice) Defined(i int) bool {
	return i >= 0 && i < len(s) && !math.IsNaN(s[i])
}
