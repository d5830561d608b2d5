// Package evaluate implements §4.E: scoring a validated solution against
// a problem, and compiling a validated solution into its own ProblemSpec.
// Grounded on the akatsuki judge's evaluator.cc (Evaluate) and the
// --compile code path sketched in main.cc (CompileProblem is not itself
// among the kept original sources, so its shape here follows §6's
// description: silhouette = union of dst_facets, skeleton = src edges).
package evaluate

import (
	"github.com/origamifold/akatsuki/model"
	"github.com/origamifold/akatsuki/point"
	"github.com/origamifold/akatsuki/polygon"
	"github.com/origamifold/akatsuki/segment"
	"github.com/origamifold/akatsuki/sweep"
)

// scale is 10^6, the fixed-point factor applied to the resemblance ratio
// before truncating to an integer (§4.E, §6).
const scale = 1_000_000

// Evaluate computes the integer resemblance score between a problem's
// silhouette and a solution's destination facets. The caller must have
// already run validate.Validate on solution with the normalized-folding
// check off.
func Evaluate(problem model.ProblemSpec, solution model.SolutionSpec) int64 {
	silhouette := canonicalSilhouette(solution)
	union := sweep.ComputeUnion(problem.Polygons, silhouette)
	intersection := sweep.ComputeIntersection(problem.Polygons, silhouette)

	unionArea := union.SignedArea()
	intersectionArea := intersection.SignedArea()

	resemblance := intersectionArea.Quo(unionArea)
	return resemblance.ScaledFloor(scale)
}

// CompileProblem reconstructs the ProblemSpec a validated solution folds
// into: the silhouette is the canonicalized union of destination facets,
// and the skeleton is every edge of every source facet, undeduplicated,
// matching the original edges array's role as parse-fidelity-only data
// (§3: "not used by the core except for parse fidelity").
func CompileProblem(solution model.SolutionSpec) model.ProblemSpec {
	silhouette := canonicalSilhouette(solution)

	var edges []segment.Segment
	for _, facet := range solution.SrcFacets {
		edges = append(edges, facet.Segments()...)
	}

	return model.ProblemSpec{Polygons: silhouette, Edges: edges}
}

func canonicalSilhouette(solution model.SolutionSpec) polygon.ComplexPolygon {
	ccw := polygon.MakeCounterclockwise(toPointSlices(solution.DstFacets))
	return sweep.MakeComplexPolygon(ccw)
}

func toPointSlices(facets []polygon.Polygon) [][]point.Point {
	out := make([][]point.Point, len(facets))
	for i, f := range facets {
		out[i] = f
	}
	return out
}
