// Package validate implements the seven (plus one optional) validity
// predicates of §4.V. Validate runs them in order and returns the first
// failure; it never partially succeeds. It is grounded on the akatsuki
// judge's validator.cc, which runs the same sequence of checks with the
// same short-circuit behavior and "ValidateSolutionError: " message
// prefix, logging progress with glog where this port uses a build-tag-gated
// debug logger instead (see internal/dbg).
package validate

import (
	"fmt"

	"github.com/origamifold/akatsuki/internal/dbg"
	"github.com/origamifold/akatsuki/model"
	"github.com/origamifold/akatsuki/numeric"
	"github.com/origamifold/akatsuki/options"
	"github.com/origamifold/akatsuki/point"
	"github.com/origamifold/akatsuki/polygon"
	"github.com/origamifold/akatsuki/segment"
	"github.com/origamifold/akatsuki/sweep"
)

// Error reports the predicate that failed and a human-readable
// description, matching the "ValidateSolutionError: <description>" wire
// format consumed by the command-line surface.
type Error struct {
	Predicate   int
	Description string
}

func (e *Error) Error() string {
	return fmt.Sprintf("ValidateSolutionError: %s", e.Description)
}

func fail(predicate int, format string, args ...interface{}) error {
	return &Error{Predicate: predicate, Description: fmt.Sprintf(format, args...)}
}

// Validate runs predicates 0-6 unconditionally, and predicate 7 (the
// normalized-folding check) only when WithNormalizedFoldingCheck(true) is
// among opts. It is on during --compile and off during --evaluate (§6).
func Validate(solution model.SolutionSpec, opts ...options.ValidateOptionsFunc) error {
	o := options.Apply(options.ValidateOptions{}, opts...)
	dbg.Printf("validate: %d facets, normalized folding check=%v", len(solution.FacetDefs), o.CheckNormalizedFolding)

	if err := checkFacetSizes(solution); err != nil {
		return err
	}
	if err := checkSourceInUnitSquare(solution); err != nil {
		return err
	}
	if err := checkNoDuplicateSourceVertices(solution); err != nil {
		return err
	}
	if err := checkNoVertexOnEdgeInterior(solution); err != nil {
		return err
	}
	if err := checkNoSelfIntersectingFacets(solution); err != nil {
		return err
	}
	if err := checkCongruentMapping(solution); err != nil {
		return err
	}
	if err := checkUnitSquareCoverage(solution); err != nil {
		return err
	}
	if o.CheckNormalizedFolding {
		if err := checkNormalizedFolding(solution); err != nil {
			return err
		}
	}
	dbg.Printf("validate: all predicates passed")
	return nil
}

// 0. Every facet has at least 3 vertices.
func checkFacetSizes(solution model.SolutionSpec) error {
	for i, def := range solution.FacetDefs {
		if len(def) < 3 {
			return fail(0, "Facet #%d must have no less than 3 vertices", i)
		}
	}
	return nil
}

// 1. Every source vertex lies in the closed unit square.
func checkSourceInUnitSquare(solution model.SolutionSpec) error {
	zero, one := numeric.Zero(), numeric.One()
	for _, p := range solution.SrcPoints {
		inRange := func(v numeric.Number) bool {
			return zero.LessOrEqual(v) && v.LessOrEqual(one)
		}
		if !inRange(p.X) || !inRange(p.Y) {
			return fail(1, "Source vertex %s is out of the unit square.", p)
		}
	}
	return nil
}

// 2. No duplicate source vertices under exact equality.
func checkNoDuplicateSourceVertices(solution model.SolutionSpec) error {
	seen := make(map[string]struct{}, len(solution.SrcPoints))
	for _, p := range solution.SrcPoints {
		key := p.String()
		if _, ok := seen[key]; ok {
			return fail(2, "No coordinate should appear more than once in the source positions part.")
		}
		seen[key] = struct{}{}
	}
	return nil
}

// 3. No source vertex lies strictly inside any source-facet edge.
func checkNoVertexOnEdgeInterior(solution model.SolutionSpec) error {
	for _, facet := range solution.SrcFacets {
		for _, edge := range facet.Segments() {
			for _, p := range solution.SrcPoints {
				if segment.SegPointIntersectMiddle(edge, p) {
					return fail(3, "Vertex %s must not lie on an edge.", p)
				}
			}
		}
	}
	return nil
}

// 4. No source facet self-intersects (non-adjacent, non-identical edge pairs).
func checkNoSelfIntersectingFacets(solution model.SolutionSpec) error {
	for i, facet := range solution.SrcFacets {
		edges := facet.Segments()
		n := len(edges)
		for a := 0; a < n; a++ {
			for b := a + 2; b < n; b++ {
				if a == 0 && b == n-1 {
					continue // adjacent via wraparound
				}
				if segment.SegSegIntersect(edges[a], edges[b]) {
					return fail(4, "Facet #%d must not intersect with itself.", i)
				}
			}
		}
	}
	return nil
}

// 5. Each facet maps congruently from src to dst, up to a single mirror
// sign applied uniformly across the facet.
func checkCongruentMapping(solution model.SolutionSpec) error {
	for i := range solution.SrcFacets {
		srcEdges := solution.SrcFacets[i].Segments()
		dstEdges := solution.DstFacets[i].Segments()
		for k := range srcEdges {
			if !point.NormSquared(srcEdges[k].Dir).Equal(point.NormSquared(dstEdges[k].Dir)) {
				return fail(5, "Facet #%d is not mapped congruently.", i)
			}
		}
		if !congruentUnderSomeMirror(srcEdges, dstEdges) {
			return fail(5, "Facet #%d is not mapped congruently.", i)
		}
	}
	return nil
}

func congruentUnderSomeMirror(srcEdges, dstEdges []segment.Segment) bool {
	for _, mirror := range []int64{1, -1} {
		if congruentUnderMirror(srcEdges, dstEdges, mirror) {
			return true
		}
	}
	return false
}

func congruentUnderMirror(srcEdges, dstEdges []segment.Segment, mirrorSign int64) bool {
	n := len(srcEdges)
	for k := 0; k < n; k++ {
		j := (k + 1) % n
		ipSrc := point.Inner(srcEdges[k].Dir, srcEdges[j].Dir)
		ipDst := point.Inner(dstEdges[k].Dir, dstEdges[j].Dir)
		if !ipSrc.Equal(ipDst) {
			return false
		}
		opSrc := point.Outer(srcEdges[k].Dir, srcEdges[j].Dir)
		opDst := point.Outer(dstEdges[k].Dir, dstEdges[j].Dir).Mul(numeric.FromInt64(mirrorSign))
		if !opSrc.Equal(opDst) {
			return false
		}
	}
	return true
}

// 6. The source facets cover exactly the unit square: area sum equals 1,
// and the Boolean self-canonicalization of the CCW-normalized facets also
// has area 1 (catches holes/overlaps that the area sum alone cannot).
func checkUnitSquareCoverage(solution model.SolutionSpec) error {
	ccw := polygon.MakeCounterclockwise(toPointSlices(solution.SrcFacets))

	areaSum := ccw.SignedArea()
	one := numeric.One()
	if !areaSum.Equal(one) {
		return fail(6, "The sum of all facets area must be equal to 1. Current coverage area = %s", areaSum)
	}

	union := sweep.MakeComplexPolygon(ccw)
	unionArea := union.SignedArea()
	dbg.Printf("predicate 6: area sum=%s, union area=%s", areaSum, unionArea)
	if !unionArea.Equal(one) {
		return fail(6, "The union set of all facets at source positions must cover the unit square. Current coverage area = %s", unionArea)
	}
	return nil
}

// 7. Normalized-folding check: for every undirected source edge shared by
// exactly two facets, their combined sign must flip between src and dst.
func checkNormalizedFolding(solution model.SolutionSpec) error {
	type edgeKey struct{ a, b int }
	adjacents := make(map[edgeKey][]int)
	for facetIdx, def := range solution.FacetDefs {
		n := len(def)
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			a, b := def[i], def[j]
			if a > b {
				a, b = b, a
			}
			key := edgeKey{a, b}
			adjacents[key] = append(adjacents[key], facetIdx)
		}
	}

	srcSigns := facetSigns(solution.SrcFacets)
	dstSigns := facetSigns(solution.DstFacets)

	for _, facetIndices := range adjacents {
		if len(facetIndices) != 2 {
			continue
		}
		i, j := facetIndices[0], facetIndices[1]
		if srcSigns[i]*srcSigns[j] == dstSigns[i]*dstSigns[j] {
			return fail(7, "Facet #%d and #%d must have non-empty intersection in the destination positions for the \"normalized\" requirement.", i, j)
		}
	}
	return nil
}

func facetSigns(facets []polygon.Polygon) []int {
	signs := make([]int, len(facets))
	for i, f := range facets {
		if f.SignedArea().Sign() > 0 {
			signs[i] = 1
		} else {
			signs[i] = -1
		}
	}
	return signs
}

func toPointSlices(facets []polygon.Polygon) [][]point.Point {
	out := make([][]point.Point, len(facets))
	for i, f := range facets {
		out[i] = f
	}
	return out
}
