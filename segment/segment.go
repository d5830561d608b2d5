// Package segment implements the exact-geometry primitives (§4.G) and the
// segment algebra (§4.S) that the ribbon sweep and boundary walker build
// on. A Segment is directed: it has an origin and a displacement, and
// every predicate here either respects that direction or explicitly
// normalizes it away (see NormalizeDirection and Merge).
//
// This package is grounded on the akatsuki judge's geom.cc, which keeps
// the same two concerns — point/segment predicates and the directed
// segment algebra used to cancel shared polygon edges — in one file; the
// style of the intersection predicates follows this module's
// linesegment/intersection.go ancestor.
package segment

import (
	"fmt"

	"github.com/origamifold/akatsuki/numeric"
	"github.com/origamifold/akatsuki/point"
)

// Segment is a directed line segment from Pos to Pos+Dir. Line shares the
// same representation but denotes the infinite line through Pos with
// direction Dir.
type Segment struct {
	Pos point.Point
	Dir point.Point
}

// Line is an alias for Segment used wherever only the infinite line
// matters (the two line-intersection helpers below).
type Line = Segment

// FromPosAndDir builds a Segment (or Line) from an origin and a
// displacement.
func FromPosAndDir(pos, dir point.Point) Segment {
	return Segment{Pos: pos, Dir: dir}
}

// FromEndpoints builds a Segment from a to b; Dir = b - a.
func FromEndpoints(a, b point.Point) Segment {
	return Segment{Pos: a, Dir: b.Sub(a)}
}

// End returns the segment's terminal point, Pos + Dir.
func (s Segment) End() point.Point {
	return s.Pos.Add(s.Dir)
}

// Reversed returns the same segment traversed in the opposite direction:
// origin becomes the old end, and Dir is negated.
func (s Segment) Reversed() Segment {
	return Segment{Pos: s.End(), Dir: s.Dir.Neg()}
}

// String renders "pos -> end", mirroring the judge's ostream for Segment
// in spirit (the original type has no dedicated operator<<, but every
// point does).
func (s Segment) String() string {
	return fmt.Sprintf("%s -> %s", s.Pos, s.End())
}

// ccw returns +1/-1 for strictly left/right of the directed ray p->r; for
// collinear points it returns -1 when s is on the opposite side of p from
// r, +1 when s is strictly beyond r, and 0 when s lies between p and r
// inclusive. This is the CCW helper from §4.G.
func ccw(p, r, s point.Point) int {
	a := r.Sub(p)
	b := s.Sub(p)
	if sign := point.Outer(a, b).Sign(); sign != 0 {
		return sign
	}
	if a.X.Mul(b.X).Sign() < 0 || a.Y.Mul(b.Y).Sign() < 0 {
		return -1
	}
	if point.NormSquared(a).Less(point.NormSquared(b)) {
		return 1
	}
	return 0
}

// LineLineIntersect returns the unique intersection of two infinite lines
// when they are not parallel, computed as
//
//	p = s.Pos + s.Dir * outer(t.Dir, t.Pos - s.Pos) / outer(t.Dir, s.Dir)
//
// The second return value is false when the lines are parallel
// (outer(s.Dir, t.Dir) == 0), in which case p is the zero value.
func LineLineIntersect(s, t Line) (point.Point, bool) {
	if point.Outer(s.Dir, t.Dir).IsZero() {
		return point.Point{}, false
	}
	ratio := point.Outer(t.Dir, t.Pos.Sub(s.Pos)).Quo(point.Outer(t.Dir, s.Dir))
	return s.Pos.Add(s.Dir.Scale(ratio)), true
}

// SegSegIntersect reports whether two closed segments intersect,
// including a colinear overlap. It uses the sign product of CCW
// orientations on both segments, so it never computes an actual
// intersection point.
func SegSegIntersect(s, t Segment) bool {
	sEnd, tEnd := s.End(), t.End()
	return ccw(s.Pos, sEnd, t.Pos)*ccw(s.Pos, sEnd, tEnd) <= 0 &&
		ccw(t.Pos, tEnd, s.Pos)*ccw(t.Pos, tEnd, sEnd) <= 0
}

// SegSegIntersectMiddle returns the intersection point of s and t only
// when it lies strictly in the interior of both segments. Parallel
// segments, or segments that only touch at an endpoint, return
// (zero point, false).
func SegSegIntersectMiddle(s, t Segment) (point.Point, bool) {
	outerST := point.Outer(s.Dir, t.Dir)
	if outerST.IsZero() {
		return point.Point{}, false
	}
	rs := point.Outer(t.Dir, t.Pos.Sub(s.Pos)).Quo(point.Outer(t.Dir, s.Dir))
	rt := point.Outer(s.Dir, s.Pos.Sub(t.Pos)).Quo(outerST)
	zero, one := numeric.Zero(), numeric.One()
	if !(zero.Less(rs) && rs.Less(one) && zero.Less(rt) && rt.Less(one)) {
		return point.Point{}, false
	}
	return s.Pos.Add(s.Dir.Scale(rs)), true
}

// SegPointIntersectMiddle reports whether p lies strictly between the
// endpoints of s (i.e. on the segment but not at either endpoint).
func SegPointIntersectMiddle(s Segment, p point.Point) bool {
	diff := p.Sub(s.Pos)
	if !point.Outer(s.Dir, diff).IsZero() {
		return false
	}
	ip := point.Inner(s.Dir, diff)
	zero := numeric.Zero()
	return zero.Less(ip) && ip.Less(point.Inner(s.Dir, s.Dir))
}
