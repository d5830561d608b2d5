package sweep

import (
	"github.com/origamifold/akatsuki/internal/dbg"
	"github.com/origamifold/akatsuki/numeric"
	"github.com/origamifold/akatsuki/polygon"
	"github.com/origamifold/akatsuki/segment"
)

// selfCanonicalizeColor is the single color used by MakeComplexPolygon; it
// has no meaning beyond keying ComputeRibbons's color map.
const selfCanonicalizeColor = 1

// intersectionColorA and intersectionColorB are the two colors used by
// ComputeIntersection.
const (
	intersectionColorA = 1
	intersectionColorB = 2
)

// appendTrapezoid appends MakeTrapezoid's result unless it collapsed below
// a triangle (the two walls meet on both of the ribbon's horizontals).
func appendTrapezoid(trapezoids polygon.DisjointPolygonList, left, right Side, bottomY, topY numeric.Number) polygon.DisjointPolygonList {
	t := MakeTrapezoid(left, right, bottomY, topY)
	if len(t) < 3 {
		return trapezoids
	}
	return append(trapezoids, t)
}

// MakeComplexPolygon self-canonicalizes an arbitrary PolygonList into the
// canonical ComplexPolygon it represents: walking each ribbon's sorted
// sides with a single level counter, a trapezoid is closed every time the
// level returns to zero.
func MakeComplexPolygon(polygons polygon.PolygonList) polygon.ComplexPolygon {
	ribbons := ComputeRibbons(map[int]polygon.PolygonList{selfCanonicalizeColor: polygons})
	dbg.Printf("self-canonicalize: %d ribbons over %d input polygons", len(ribbons), len(polygons))

	var trapezoids polygon.DisjointPolygonList
	for _, ribbon := range ribbons {
		level := 0
		var leftWall Side
		for _, side := range ribbon.Sides {
			if side.Open {
				if level == 0 {
					leftWall = side
				}
				level++
			} else {
				if level <= 0 {
					panic("sweep: ribbon level underflow during self-canonicalization")
				}
				level--
				if level == 0 {
					trapezoids = appendTrapezoid(trapezoids, leftWall, side, ribbon.BottomY, ribbon.TopY)
				}
			}
		}
		if level != 0 {
			panic("sweep: ribbon did not close at level 0")
		}
	}
	return mergeDisjointPolygons(trapezoids)
}

// ComputeUnion is self-canonicalization applied to the concatenation of
// both inputs.
func ComputeUnion(a, b polygon.ComplexPolygon) polygon.ComplexPolygon {
	combined := make(polygon.PolygonList, 0, len(a)+len(b))
	combined = append(combined, a...)
	combined = append(combined, b...)
	return MakeComplexPolygon(combined)
}

// ComputeIntersection walks each ribbon's sides maintaining a level per
// color; a trapezoid's left wall is the side whose opening causes both
// levels to become nonzero, and its right wall is the side whose closing
// first makes either level drop back to zero.
func ComputeIntersection(a, b polygon.ComplexPolygon) polygon.ComplexPolygon {
	ribbons := ComputeRibbons(map[int]polygon.PolygonList{
		intersectionColorA: polygon.PolygonList(a),
		intersectionColorB: polygon.PolygonList(b),
	})
	dbg.Printf("intersection: %d ribbons over %d/%d input polygons", len(ribbons), len(a), len(b))

	var trapezoids polygon.DisjointPolygonList
	for _, ribbon := range ribbons {
		levels := map[int]int{intersectionColorA: 0, intersectionColorB: 0}
		var leftWall Side
		both := func() bool { return levels[intersectionColorA] >= 1 && levels[intersectionColorB] >= 1 }
		for _, side := range ribbon.Sides {
			if side.Open {
				levels[side.Color]++
				if levels[side.Color] == 1 && both() {
					leftWall = side
				}
			} else {
				if levels[side.Color] <= 0 {
					panic("sweep: ribbon level underflow during intersection")
				}
				if levels[side.Color] == 1 && both() {
					trapezoids = appendTrapezoid(trapezoids, leftWall, side, ribbon.BottomY, ribbon.TopY)
				}
				levels[side.Color]--
			}
		}
		if levels[intersectionColorA] != 0 || levels[intersectionColorB] != 0 {
			panic("sweep: ribbon did not close at level 0")
		}
	}
	return mergeDisjointPolygons(trapezoids)
}

func mergeDisjointPolygons(trapezoids polygon.DisjointPolygonList) polygon.ComplexPolygon {
	return WalkSegments(segment.Merge(trapezoids.Segments()))
}
