// Package model defines the two top-level value objects the validator and
// evaluator operate on: ProblemSpec and SolutionSpec. Both are immutable
// after construction; SolutionSpec's derived facet arrays are computed once
// by NewSolutionSpec rather than recomputed on every access, mirroring the
// akatsuki judge's problem.h/solution.h, which materialize src_facets and
// dst_facets as struct fields populated while parsing.
package model

import (
	"fmt"

	"github.com/origamifold/akatsuki/point"
	"github.com/origamifold/akatsuki/polygon"
	"github.com/origamifold/akatsuki/segment"
)

// ProblemSpec is a target shape: a canonical ComplexPolygon silhouette,
// plus a list of skeleton segments kept only for output fidelity (the
// core never reads them back).
type ProblemSpec struct {
	Polygons polygon.ComplexPolygon
	Edges    []segment.Segment
}

// SolutionSpec is a folding: n source/destination vertex pairs and m
// facets, each a list of ≥3 indices into the vertex arrays. SrcFacets and
// DstFacets are derived once at construction by indexing SrcPoints/
// DstPoints with each facet's index list.
type SolutionSpec struct {
	SrcPoints []point.Point
	DstPoints []point.Point
	FacetDefs [][]int

	SrcFacets []polygon.Polygon
	DstFacets []polygon.Polygon
}

// NewSolutionSpec validates index bounds and materializes SrcFacets and
// DstFacets from facetDefs. It does not run the full validator (package
// validate) — only the structural checks that the two point arrays have
// the same length and that every index is in range, without which
// indexing would panic deep inside the Boolean engine.
func NewSolutionSpec(srcPoints, dstPoints []point.Point, facetDefs [][]int) (SolutionSpec, error) {
	if len(srcPoints) != len(dstPoints) {
		return SolutionSpec{}, fmt.Errorf("model: src_points has %d entries, dst_points has %d", len(srcPoints), len(dstPoints))
	}
	n := len(srcPoints)
	srcFacets := make([]polygon.Polygon, len(facetDefs))
	dstFacets := make([]polygon.Polygon, len(facetDefs))
	for i, def := range facetDefs {
		src := make(polygon.Polygon, len(def))
		dst := make(polygon.Polygon, len(def))
		for j, idx := range def {
			if idx < 0 || idx >= n {
				return SolutionSpec{}, fmt.Errorf("model: facet %d references out-of-range vertex index %d", i, idx)
			}
			src[j] = srcPoints[idx]
			dst[j] = dstPoints[idx]
		}
		srcFacets[i] = src
		dstFacets[i] = dst
	}
	return SolutionSpec{
		SrcPoints: srcPoints,
		DstPoints: dstPoints,
		FacetDefs: facetDefs,
		SrcFacets: srcFacets,
		DstFacets: dstFacets,
	}, nil
}
