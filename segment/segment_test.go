package segment

import (
	"testing"

	"github.com/origamifold/akatsuki/numeric"
	"github.com/origamifold/akatsuki/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func i(v int64) numeric.Number { return numeric.FromInt64(v) }
func p(x, y int64) point.Point { return point.New(i(x), i(y)) }

func TestFromEndpointsAndEnd(t *testing.T) {
	s := FromEndpoints(p(0, 0), p(3, 4))
	assert.Equal(t, p(3, 4), s.Dir)
	assert.Equal(t, p(3, 4), s.End())
}

func TestReversed(t *testing.T) {
	s := FromEndpoints(p(0, 0), p(1, 1))
	r := s.Reversed()
	assert.Equal(t, p(1, 1), r.Pos)
	assert.True(t, r.End().Equal(p(0, 0)))
}

func TestLineLineIntersect(t *testing.T) {
	// x-axis and y-axis cross at the origin.
	s := FromEndpoints(p(-1, 0), p(1, 0))
	tt := FromEndpoints(p(0, -1), p(0, 1))
	got, ok := LineLineIntersect(s, tt)
	require.True(t, ok)
	assert.True(t, got.Equal(p(0, 0)))
}

func TestLineLineIntersectParallel(t *testing.T) {
	s := FromEndpoints(p(0, 0), p(1, 0))
	tt := FromEndpoints(p(0, 1), p(1, 1))
	_, ok := LineLineIntersect(s, tt)
	assert.False(t, ok)
}

func TestSegSegIntersectCrossing(t *testing.T) {
	s := FromEndpoints(p(0, 0), p(2, 2))
	tt := FromEndpoints(p(0, 2), p(2, 0))
	assert.True(t, SegSegIntersect(s, tt))
}

func TestSegSegIntersectDisjoint(t *testing.T) {
	s := FromEndpoints(p(0, 0), p(1, 0))
	tt := FromEndpoints(p(0, 1), p(1, 1))
	assert.False(t, SegSegIntersect(s, tt))
}

func TestSegSegIntersectCollinearOverlap(t *testing.T) {
	s := FromEndpoints(p(0, 0), p(2, 0))
	tt := FromEndpoints(p(1, 0), p(3, 0))
	assert.True(t, SegSegIntersect(s, tt))
}

func TestSegSegIntersectMiddleStrictInterior(t *testing.T) {
	s := FromEndpoints(p(0, 0), p(4, 4))
	tt := FromEndpoints(p(0, 4), p(4, 0))
	got, ok := SegSegIntersectMiddle(s, tt)
	require.True(t, ok)
	assert.Equal(t, p(2, 2), got)
}

func TestSegSegIntersectMiddleRejectsEndpointTouch(t *testing.T) {
	s := FromEndpoints(p(0, 0), p(2, 2))
	tt := FromEndpoints(p(2, 2), p(4, 0))
	_, ok := SegSegIntersectMiddle(s, tt)
	assert.False(t, ok)
}

func TestSegPointIntersectMiddle(t *testing.T) {
	s := FromEndpoints(p(0, 0), p(4, 0))
	assert.True(t, SegPointIntersectMiddle(s, p(2, 0)))
	assert.False(t, SegPointIntersectMiddle(s, p(0, 0)))
	assert.False(t, SegPointIntersectMiddle(s, p(4, 0)))
	assert.False(t, SegPointIntersectMiddle(s, p(2, 1)))
	assert.False(t, SegPointIntersectMiddle(s, p(5, 0)))
}
