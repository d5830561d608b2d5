package point

import (
	"testing"

	"github.com/origamifold/akatsuki/numeric"
	"github.com/stretchr/testify/assert"
)

func n(num, den int64) numeric.Number { return numeric.FromFrac(num, den) }
func i(v int64) numeric.Number        { return numeric.FromInt64(v) }

func TestInnerOuter(t *testing.T) {
	a := New(i(2), i(3))
	b := New(i(4), i(5))
	assert.True(t, Inner(a, b).Equal(i(2*4+3*5)))
	assert.True(t, Outer(a, b).Equal(i(2*5-3*4)))
}

func TestCanonicalOrder(t *testing.T) {
	p1 := New(i(0), i(0))
	p2 := New(i(1), i(0))
	p3 := New(i(0), i(1))
	assert.True(t, p1.Less(p2))
	assert.True(t, p1.Less(p3))
	assert.True(t, p2.Less(p3))
	assert.False(t, p3.Less(p1))
}

func TestAddSubNeg(t *testing.T) {
	a := New(i(1), i(2))
	b := New(i(3), i(4))
	assert.Equal(t, New(i(4), i(6)), a.Add(b))
	assert.Equal(t, New(i(-2), i(-2)), a.Sub(b))
	assert.Equal(t, New(i(-1), i(-2)), a.Neg())
}

func TestNormSquared(t *testing.T) {
	p := New(i(3), i(4))
	assert.True(t, NormSquared(p).Equal(i(25)))
}

func TestStringRendersParens(t *testing.T) {
	p := New(n(1, 2), i(3))
	assert.Equal(t, "(1/2, 3)", p.String())
}
