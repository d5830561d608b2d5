package sweep

import (
	"github.com/google/btree"

	"github.com/origamifold/akatsuki/internal/dbg"
	"github.com/origamifold/akatsuki/numeric"
	"github.com/origamifold/akatsuki/point"
	"github.com/origamifold/akatsuki/polygon"
	"github.com/origamifold/akatsuki/segment"
)

// outgoingEdges is one entry of the walker's ordered origin -> outgoing
// edge list map, kept in a btree.BTreeG so the walker can always find the
// lexicographically smallest remaining origin in O(log n).
type outgoingEdges struct {
	origin point.Point
	edges  []segment.Segment
}

func outgoingEdgesLess(a, b outgoingEdges) bool {
	return a.origin.Less(b.origin)
}

// rotateForCompare maps v into a frame where base points along the
// positive x-axis, preserving only what less_angle needs to order
// directions relative to base: the scalar factor normSquared(base) is
// always positive and dropped, since it cannot change an angular
// comparison.
func rotateForCompare(base, v point.Point) point.Point {
	return point.New(point.Inner(v, base), point.Outer(base, v))
}

// WalkSegments reassembles a multiset of merged directed segments into the
// canonical ComplexPolygon they bound, using the leftmost-turn rule of
// §4.W: each cycle starts at the lexicographically smallest remaining
// origin, seeded with a synthetic edge arriving along direction (1, 0),
// and at every vertex picks the real outgoing edge that turns least
// counterclockwise relative to the reverse of the edge just taken.
func WalkSegments(segs []segment.Segment) polygon.ComplexPolygon {
	edgeMap := btree.NewG[outgoingEdges](32, outgoingEdgesLess)
	for _, s := range segs {
		if item, found := edgeMap.Get(outgoingEdges{origin: s.Pos}); found {
			item.edges = append(item.edges, s)
			edgeMap.ReplaceOrInsert(item)
		} else {
			edgeMap.ReplaceOrInsert(outgoingEdges{origin: s.Pos, edges: []segment.Segment{s}})
		}
	}
	dbg.Printf("walk: %d distinct origins from %d merged segments", edgeMap.Len(), len(segs))

	syntheticOffset := point.New(numeric.One(), numeric.Zero())

	var result polygon.ComplexPolygon
	for edgeMap.Len() > 0 {
		startItem, _ := edgeMap.Min()
		startVertex := startItem.origin

		var cycle polygon.Polygon
		current := segment.FromEndpoints(startVertex.Sub(syntheticOffset), startVertex)
		for {
			next := current.End()
			item, found := edgeMap.Get(outgoingEdges{origin: next})
			if !found {
				break
			}

			base := current.Dir.Neg()
			bestIdx := 0
			bestKey := rotateForCompare(base, item.edges[0].Dir)
			for i := 1; i < len(item.edges); i++ {
				key := rotateForCompare(base, item.edges[i].Dir)
				if point.LessAngle(key, bestKey) {
					bestIdx, bestKey = i, key
				}
			}

			chosen := item.edges[bestIdx]
			item.edges = append(item.edges[:bestIdx], item.edges[bestIdx+1:]...)
			if len(item.edges) == 0 {
				edgeMap.Delete(outgoingEdges{origin: next})
			} else {
				edgeMap.ReplaceOrInsert(item)
			}

			current = chosen
			cycle = append(cycle, current.Pos)
		}
		dbg.Printf("walk: closed cycle of %d vertices starting at %s", len(cycle), startVertex)
		result = append(result, cycle)
	}
	return result
}
