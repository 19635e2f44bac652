package floats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSub(t *testing.T) {
	a := New(5, 6, 7)
	b := New(1, 2, 3)
	c := a.Sub(b)
	assert.Equal(t, Slice{4.0, 4.0, 4.0}, c)
	assert.Equal(t, 3, c.Length())
}

func TestSub_NaNPropagates(t *testing.T) {
	a := New(math.NaN(), 6, 7)
	b := New(1, math.NaN(), 3)
	c := a.Sub(b)
	assert.True(t, math.IsNaN(c[0]))
	assert.True(t, math.IsNaN(c[1]))
	assert.Equal(t, 4.0, c[2])
}

func TestSub_LengthMismatch(t *testing.T) {
	assert.Nil(t, New(1, 2).Sub(New(1, 2, 3)))
}

func TestDiff(t *testing.T) {
	d := New(1, 4, 2, 2).Diff()
	assert.True(t, math.IsNaN(d[0]))
	assert.Equal(t, Slice{3.0, -2.0, 0.0}, d[1:])
}

func TestMean(t *testing.T) {
	assert.Equal(t, 3.0, New(1, 2, 3, 4, 5).Mean())
	assert.Equal(t, 0.0, New().Mean())
}

func TestLast(t *testing.T) {
	assert.Equal(t, 5.0, New(1, 5).Last())
	assert.Equal(t, 0.0, New().Last())
}

func TestPush(t *testing.T) {
	var s Slice
	s.Push(1.5)
	s.Push(2.5)
	assert.Equal(t, Slice{1.5, 2.5}, s)
}

func TestDefined(t *testing.T) {
	s := NaNSlice(3)
	s[1] = 7

	assert.False(t, s.Defined(0))
	assert.True(t, s.Defined(1))
	assert.False(t, s.Defined(2))
	assert.False(t, s.Defined(-1))
	assert.False(t, s.Defined(3))
}
