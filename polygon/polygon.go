// Package polygon defines the polygon-shaped data model of §3: Polygon,
// PolygonList, DisjointPolygonList, and ComplexPolygon. None of these are
// distinct Go types beyond a shared underlying slice — the distinctions
// the judge cares about (simple vs. not, signed vs. unsigned, disjoint vs.
// overlapping, canonical vs. not) are semantic invariants enforced by the
// functions that produce and consume each one, exactly as in the original
// judge, where all four are typedefs over std::vector<Complex> /
// std::vector<Polygon>.
package polygon

import (
	"github.com/origamifold/akatsuki/numeric"
	"github.com/origamifold/akatsuki/point"
	"github.com/origamifold/akatsuki/segment"
	"github.com/origamifold/akatsuki/types"
)

// Polygon is an ordered, implicitly-closed sequence of at least 3 distinct
// points. Its sign is the sign of its signed area: positive (CCW) is an
// outer boundary, negative (CW) is a hole.
type Polygon []point.Point

// PolygonList is a multiset of signed polygons that may overlap
// arbitrarily.
type PolygonList []Polygon

// DisjointPolygonList is a PolygonList whose members are all positive and
// pairwise interior-disjoint. Producers that return this type (the
// Boolean operator's trapezoids) uphold the invariant; it is not checked
// at the type level.
type DisjointPolygonList []Polygon

// ComplexPolygon is the canonical representation of a planar region with
// holes: a set of simple signed polygons such that no three share an
// interior point, and any two that do share one have opposite signs. The
// sweep package's boundary walker produces it in this canonical form;
// package format's ParseProblem builds one from problem text as given.
type ComplexPolygon []Polygon

// SignedArea computes the shoelace sum A = 1/2 * sum(outer(p_i, p_{i+1})).
func (p Polygon) SignedArea() numeric.Number {
	area := numeric.Zero()
	n := len(p)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area = area.Add(point.Outer(p[i], p[j]))
	}
	return area.Halve()
}

// Sign returns the polygon's sign: Positive for a counterclockwise outer
// boundary, Negative for a clockwise hole.
//
// Panics:
//   - If the polygon has zero signed area, which has no defined sign in
//     this domain.
func (p Polygon) Sign() types.Sign {
	s := p.SignedArea().Sign()
	if s == 0 {
		panic("polygon: zero-area polygon has no sign")
	}
	return types.SignOf(s)
}

// IsPositive reports whether p is counterclockwise (a non-hole boundary).
func (p Polygon) IsPositive() bool {
	return p.SignedArea().Sign() > 0
}

// Reversed returns p with its vertex order reversed, flipping its sign.
func (p Polygon) Reversed() Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[len(p)-1-i] = v
	}
	return out
}

// Segments splits p into one directed Segment per edge, in traversal
// order (§4.S split_to_segments).
func (p Polygon) Segments() []segment.Segment {
	return segment.SplitToSegments(p)
}

// SignedArea sums the signed area of every polygon in the list. For a
// DisjointPolygonList of positive polygons this equals the Lebesgue
// measure of the region they cover; for a ComplexPolygon it equals the
// measure of the region including hole subtraction, since holes carry
// negative area.
func (l PolygonList) SignedArea() numeric.Number {
	total := numeric.Zero()
	for _, p := range l {
		total = total.Add(p.SignedArea())
	}
	return total
}

// Segments concatenates Segments() over every polygon in the list, in
// order.
func (l PolygonList) Segments() []segment.Segment {
	pts := make([][]point.Point, len(l))
	for i, p := range l {
		pts[i] = p
	}
	return segment.SplitToSegmentsAll(pts)
}

// SignedArea sums the signed area of every trapezoid; see PolygonList.SignedArea.
func (l DisjointPolygonList) SignedArea() numeric.Number {
	return PolygonList(l).SignedArea()
}

// Segments concatenates Segments() over every trapezoid.
func (l DisjointPolygonList) Segments() []segment.Segment {
	return PolygonList(l).Segments()
}

// SignedArea sums the signed area of a ComplexPolygon's boundaries; by
// the ComplexPolygon invariant (§3) this equals the Lebesgue measure of
// the represented region.
func (c ComplexPolygon) SignedArea() numeric.Number {
	return PolygonList(c).SignedArea()
}

// Segments concatenates Segments() over every boundary of a ComplexPolygon.
func (c ComplexPolygon) Segments() []segment.Segment {
	return PolygonList(c).Segments()
}

// MakeCounterclockwise reverses any unsigned polygon whose natural vertex
// order is clockwise, producing a PolygonList of exclusively positive
// polygons. This is the step solution facets go through before they are
// fed to the Boolean engine, since facets carry no orientation intent of
// their own (§3: "Facets are unsigned").
func MakeCounterclockwise(unsigned [][]point.Point) PolygonList {
	out := make(PolygonList, len(unsigned))
	for i, pts := range unsigned {
		p := Polygon(pts)
		if p.SignedArea().Sign() < 0 {
			p = p.Reversed()
		}
		out[i] = p
	}
	return out
}
