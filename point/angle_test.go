package point

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuadrant(t *testing.T) {
	tests := []struct {
		name string
		p    Point
		want Quad
	}{
		{name: "positive x-axis", p: New(i(1), i(0)), want: Quad1},
		{name: "first quadrant interior", p: New(i(1), i(1)), want: Quad1},
		{name: "positive y-axis", p: New(i(0), i(1)), want: Quad2},
		{name: "second quadrant interior", p: New(i(-1), i(1)), want: Quad2},
		{name: "negative x-axis", p: New(i(-1), i(0)), want: Quad3},
		{name: "third quadrant interior", p: New(i(-1), i(-1)), want: Quad3},
		{name: "negative y-axis", p: New(i(0), i(-1)), want: Quad4},
		{name: "fourth quadrant interior", p: New(i(1), i(-1)), want: Quad4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Quadrant(tt.p))
		})
	}
}

func TestQuadrantPanicsOnZero(t *testing.T) {
	assert.Panics(t, func() { Quadrant(New(i(0), i(0))) })
}

func TestLessAngleTotalOrder(t *testing.T) {
	// Four axis-aligned directions in counterclockwise order.
	east := New(i(1), i(0))
	north := New(i(0), i(1))
	west := New(i(-1), i(0))
	south := New(i(0), i(-1))

	require.True(t, LessAngle(east, north))
	require.True(t, LessAngle(north, west))
	require.True(t, LessAngle(west, south))
	require.False(t, LessAngle(south, east)) // south is last before wraparound

	// within a quadrant
	shallow := New(i(2), i(1))
	steep := New(i(1), i(2))
	assert.True(t, LessAngle(shallow, steep))
	assert.False(t, LessAngle(steep, shallow))
}
