package polygon

import (
	"testing"

	"github.com/origamifold/akatsuki/numeric"
	"github.com/origamifold/akatsuki/point"
	"github.com/origamifold/akatsuki/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func i(v int64) numeric.Number { return numeric.FromInt64(v) }
func p(x, y int64) point.Point { return point.New(i(x), i(y)) }

func unitSquareCCW() Polygon {
	return Polygon{p(0, 0), p(1, 0), p(1, 1), p(0, 1)}
}

func unitSquareCW() Polygon {
	return Polygon{p(0, 0), p(0, 1), p(1, 1), p(1, 0)}
}

func TestSignedAreaCCWIsPositive(t *testing.T) {
	assert.True(t, unitSquareCCW().SignedArea().Equal(i(1)))
}

func TestSignedAreaCWIsNegative(t *testing.T) {
	area := unitSquareCW().SignedArea()
	assert.True(t, area.Equal(numeric.FromInt64(-1)))
}

func TestSign(t *testing.T) {
	assert.Equal(t, types.Positive, unitSquareCCW().Sign())
	assert.Equal(t, types.Negative, unitSquareCW().Sign())
}

func TestSignPanicsOnZeroArea(t *testing.T) {
	degenerate := Polygon{p(0, 0), p(1, 0), p(2, 0)}
	assert.Panics(t, func() { degenerate.Sign() })
}

func TestReversedFlipsSign(t *testing.T) {
	ccw := unitSquareCCW()
	rev := ccw.Reversed()
	assert.True(t, rev.SignedArea().Equal(numeric.FromInt64(-1)))
	assert.Equal(t, ccw[0], rev[len(rev)-1])
}

func TestSegments(t *testing.T) {
	segs := unitSquareCCW().Segments()
	require.Len(t, segs, 4)
	assert.Equal(t, p(0, 0), segs[0].Pos)
	assert.Equal(t, p(1, 0), segs[0].End())
}

func TestPolygonListSignedArea(t *testing.T) {
	list := PolygonList{unitSquareCCW(), unitSquareCCW()}
	assert.True(t, list.SignedArea().Equal(i(2)))
}

func TestMakeCounterclockwiseFixesOrientation(t *testing.T) {
	unsigned := [][]point.Point{unitSquareCCW(), unitSquareCW()}
	fixed := MakeCounterclockwise(unsigned)
	require.Len(t, fixed, 2)
	assert.True(t, fixed[0].IsPositive())
	assert.True(t, fixed[1].IsPositive())
	// The clockwise input should have been reversed to become positive.
	assert.True(t, fixed[1].SignedArea().Equal(i(1)))
}
