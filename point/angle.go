package point

import "fmt"

// Quad identifies which of the four quadrants a non-zero vector falls
// into, for purposes of the angular order LessAngle defines below.
type Quad uint8

// Valid values for Quad. The axis tie-breaks follow §4.G exactly: the
// positive x-axis belongs to quadrant 1, the positive y-axis and the
// negative-x half-plane's boundary belong to quadrant 2, the negative
// x-axis belongs to quadrant 3, and everything else (including the
// negative y-axis) belongs to quadrant 4.
const (
	Quad1 Quad = iota + 1
	Quad2
	Quad3
	Quad4
)

// String returns "Quad1".."Quad4".
//
// Panics:
//   - If q is not one of the defined constants.
func (q Quad) String() string {
	switch q {
	case Quad1:
		return "Quad1"
	case Quad2:
		return "Quad2"
	case Quad3:
		return "Quad3"
	case Quad4:
		return "Quad4"
	default:
		panic(fmt.Errorf("unsupported Quad: %d", q))
	}
}

// Quadrant classifies a non-zero vector p into one of four quadrants,
// using the axis tie-break rule from §4.G:
//
//	x>0 && y>=0 -> Quad1
//	x<=0 && y>0 -> Quad2
//	x<0 && y<=0 -> Quad3
//	otherwise   -> Quad4
//
// Panics:
//   - If p is the zero vector, which has no defined quadrant.
func Quadrant(p Point) Quad {
	if p.IsZero() {
		panic(fmt.Errorf("point: Quadrant undefined for the zero vector"))
	}
	x, y := p.X.Sign(), p.Y.Sign()
	switch {
	case x > 0 && y >= 0:
		return Quad1
	case x <= 0 && y > 0:
		return Quad2
	case x < 0 && y <= 0:
		return Quad3
	default:
		return Quad4
	}
}

// LessAngle defines a strict total order on non-zero vectors by their
// counterclockwise angle from the positive x-axis, without ever computing
// an actual angle (which would require irrational trigonometry). Vectors
// are first ordered by Quadrant; within a quadrant, a is less than b iff
// the cross product a×b is positive (b lies counterclockwise from a).
//
// This order underlies the boundary walker's leftmost-turn rule (§4.W)
// and the line-grouping tie-break in segment merging (§4.S).
func LessAngle(a, b Point) bool {
	qa, qb := Quadrant(a), Quadrant(b)
	if qa != qb {
		return qa < qb
	}
	return Outer(a, b).Sign() > 0
}
