package segment

import (
	rbt "github.com/emirpasic/gods/trees/redblacktree"

	"github.com/origamifold/akatsuki/point"
)

// SplitToSegments turns a polygon's ordered, implicitly-closed vertex list
// into one directed Segment per edge, in traversal order.
func SplitToSegments(points []point.Point) []Segment {
	n := len(points)
	segs := make([]Segment, 0, n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		segs = append(segs, FromEndpoints(points[i], points[j]))
	}
	return segs
}

// SplitToSegmentsAll applies SplitToSegments to every polygon in a list
// and concatenates the results, preserving traversal order within each
// polygon.
func SplitToSegmentsAll(polygons [][]point.Point) []Segment {
	var segs []Segment
	for _, poly := range polygons {
		segs = append(segs, SplitToSegments(poly)...)
	}
	return segs
}

// NormalizeDirection replaces every segment whose direction falls in
// Quad3 or Quad4 (i.e. points "downward" under the angular order) with its
// reverse, so that every returned segment's direction lies in Quad1 or
// Quad2. This is how the algebra identifies the undirected line a segment
// supports, independent of which way it happened to be traversed.
func NormalizeDirection(segs []Segment) []Segment {
	out := make([]Segment, len(segs))
	for i, s := range segs {
		if point.Quadrant(s.Dir) >= point.Quad3 {
			out[i] = s.Reversed()
		} else {
			out[i] = s
		}
	}
	return out
}

// Reverse flips every segment's direction, leaving the set of underlying
// lines unchanged.
func Reverse(segs []Segment) []Segment {
	out := make([]Segment, len(segs))
	for i, s := range segs {
		out[i] = s.Reversed()
	}
	return out
}

// upperHalf normalizes a direction vector into the upper half-plane (or
// the positive x-axis), matching NormalizeDirection's quadrant rule. It is
// used only to compare two lines' directions irrespective of which way
// either was traversed.
func upperHalf(d point.Point) point.Point {
	if point.Quadrant(d) >= point.Quad3 {
		return d.Neg()
	}
	return d
}

// closestPointToOrigin returns the foot of the perpendicular from the
// origin to the infinite line s denotes:
//
//	pos - dir * (inner(pos, dir) / normSquared(dir))
//
// Segments on the same infinite line share this value; segments on
// different lines share it only when both lines pass through the origin.
func closestPointToOrigin(s Line) point.Point {
	factor := point.Inner(s.Pos, s.Dir).Quo(point.NormSquared(s.Dir))
	return s.Pos.Sub(s.Dir.Scale(factor))
}

// lineComparator orders segments by the undirected line they span: first
// by the canonical order of the foot of perpendicular from the origin,
// then (for lines through the origin) by the angular order of their
// direction normalized into the upper half-plane. Two segments compare
// equal under this order iff they lie on the same infinite line,
// regardless of their individual direction or position on that line.
func lineComparator(a, b interface{}) int {
	sa, sb := a.(Segment), b.(Segment)
	pa, pb := closestPointToOrigin(sa), closestPointToOrigin(sb)
	if !pa.Equal(pb) {
		return pa.Compare(pb)
	}
	da, db := upperHalf(sa.Dir), upperHalf(sb.Dir)
	switch point.Outer(da, db).Sign() {
	case 1:
		return -1
	case -1:
		return 1
	default:
		return 0
	}
}

// pointComparator orders points by the canonical (Y, then X) order.
func pointComparator(a, b interface{}) int {
	return a.(point.Point).Compare(b.(point.Point))
}

// Merge reduces any multiset of directed segments to a minimal equivalent
// multiset by signed one-dimensional coverage along each line they
// support (§4.S). Segments are grouped by the line they lie on using
// lineComparator (an ordered red-black tree, mirroring the original
// judge's std::map<Segment, ..., LineComparator>); within a group, each
// segment's endpoints contribute +1 at its origin and -1 at its end to a
// second ordered accumulator keyed by point, and a segment is emitted
// every time the running level crosses zero.
//
// The net effect: overlapping segments that run the same way collapse
// into one, and segments that run opposite ways cancel on their overlap.
// This is how two trapezoids' shared interior wall disappears when the
// boundary walker reconstructs a canonical boundary.
func Merge(segs []Segment) []Segment {
	lines := rbt.NewWith(lineComparator)
	for _, s := range segs {
		if v, found := lines.Get(s); found {
			lines.Put(s, append(v.([]Segment), s))
		} else {
			lines.Put(s, []Segment{s})
		}
	}

	var merged []Segment
	it := lines.Iterator()
	for it.Next() {
		group := it.Value().([]Segment)
		merged = append(merged, mergeCollinearGroup(group)...)
	}
	return merged
}

func mergeCollinearGroup(group []Segment) []Segment {
	events := rbt.NewWith(pointComparator)
	addEvent := func(p point.Point, delta int) {
		if v, found := events.Get(p); found {
			events.Put(p, v.(int)+delta)
		} else {
			events.Put(p, delta)
		}
	}
	for _, s := range group {
		addEvent(s.Pos, 1)
		addEvent(s.End(), -1)
	}

	var out []Segment
	level := 0
	var start point.Point
	it := events.Iterator()
	for it.Next() {
		cur := it.Key().(point.Point)
		delta := it.Value().(int)
		switch {
		case level > 0 && level+delta <= 0:
			out = append(out, FromEndpoints(start, cur))
		case level < 0 && level+delta >= 0:
			out = append(out, FromEndpoints(cur, start))
		}
		if (level >= 0 && level+delta < 0) || (level <= 0 && level+delta > 0) {
			start = cur
		}
		level += delta
	}
	return out
}
