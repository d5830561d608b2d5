// Package sweep implements the horizontal ribbon-sweep decomposition (§4.R),
// the Boolean operator over colored sides (§4.B), and the boundary walker
// that reconstructs canonical complex polygons from disjoint trapezoids
// (§4.W). It is grounded on the akatsuki judge's sweep.cc, which keeps all
// three concerns in one translation unit; this package splits them across
// ribbon.go, boolean.go and walk.go along the same lines.
package sweep

import (
	"sort"

	"github.com/google/btree"

	"github.com/origamifold/akatsuki/numeric"
	"github.com/origamifold/akatsuki/point"
	"github.com/origamifold/akatsuki/polygon"
	"github.com/origamifold/akatsuki/segment"
)

// Side is a chord of a polygon edge inside a single Ribbon, tagged with the
// color of the polygon it came from and whether it opens or closes a
// region as the ribbon is swept left to right.
type Side struct {
	Color   int
	BottomX numeric.Number
	TopX    numeric.Number
	Open    bool
}

// Ribbon is the open horizontal strip bottomY < y < topY, together with
// every Side that crosses it, sorted for the Boolean operator's single
// left-to-right pass.
type Ribbon struct {
	BottomY numeric.Number
	TopY    numeric.Number
	Sides   []Side
}

// sideLess orders sides by (bottomX, topX, !open): ties with identical
// geometry place open before close, so the Boolean operator fuses touching
// regions into one maximal trapezoid.
func sideLess(a, b Side) bool {
	if c := a.BottomX.Cmp(b.BottomX); c != 0 {
		return c < 0
	}
	if c := a.TopX.Cmp(b.TopX); c != 0 {
		return c < 0
	}
	return a.Open && !b.Open
}

// coloredSegment is a directed polygon edge tagged with the color of the
// polygon it came from; splitColored produces them for a whole color-tagged
// collection.
type coloredSegment struct {
	segment.Segment
	color int
}

func splitColored(colorToPolygons map[int]polygon.PolygonList) []coloredSegment {
	var out []coloredSegment
	colors := make([]int, 0, len(colorToPolygons))
	for c := range colorToPolygons {
		colors = append(colors, c)
	}
	sort.Ints(colors)
	for _, c := range colors {
		for _, s := range colorToPolygons[c].Segments() {
			out = append(out, coloredSegment{Segment: s, color: c})
		}
	}
	return out
}

// enumerateInterestingYs collects the y-coordinate of every segment
// endpoint and every strict-interior segment/segment intersection, sorted
// ascending with exact duplicates removed.
func enumerateInterestingYs(segs []coloredSegment) []numeric.Number {
	ys := btree.NewG[numeric.Number](32, func(a, b numeric.Number) bool { return a.Less(b) })
	for _, s := range segs {
		ys.ReplaceOrInsert(s.Pos.Y)
		ys.ReplaceOrInsert(s.End().Y)
	}
	for i := 0; i < len(segs); i++ {
		for j := i + 1; j < len(segs); j++ {
			if p, ok := segment.SegSegIntersectMiddle(segs[i].Segment, segs[j].Segment); ok {
				ys.ReplaceOrInsert(p.Y)
			}
		}
	}
	out := make([]numeric.Number, 0, ys.Len())
	ys.Ascend(func(y numeric.Number) bool {
		out = append(out, y)
		return true
	})
	return out
}

// sidesWithinRange collects, for one ribbon, the Side chord of every
// segment (of any color) whose y-extent strictly spans the ribbon.
func sidesWithinRange(segs []coloredSegment, bottomY, topY numeric.Number) []Side {
	bottomLine := segment.FromPosAndDir(point.New(numeric.Zero(), bottomY), point.New(numeric.One(), numeric.Zero()))
	topLine := segment.FromPosAndDir(point.New(numeric.Zero(), topY), point.New(numeric.One(), numeric.Zero()))

	var sides []Side
	for _, s := range segs {
		posAboveTop := s.Pos.Y.GreaterOrEqual(topY)
		endAboveTop := s.End().Y.GreaterOrEqual(topY)
		if posAboveTop == endAboveTop {
			continue
		}
		bottomP, ok1 := segment.LineLineIntersect(s.Segment, bottomLine)
		topP, ok2 := segment.LineLineIntersect(s.Segment, topLine)
		if !ok1 || !ok2 {
			continue
		}
		sides = append(sides, Side{
			Color:   s.color,
			BottomX: bottomP.X,
			TopX:    topP.X,
			Open:    posAboveTop,
		})
	}
	return sides
}

// ComputeRibbons carves the plane into horizontal ribbons between every
// pair of consecutive interesting y-coordinates across all colors, and
// populates each ribbon with the sorted sides of every color's polygons
// that cross it.
func ComputeRibbons(colorToPolygons map[int]polygon.PolygonList) []Ribbon {
	all := splitColored(colorToPolygons)
	ys := enumerateInterestingYs(all)

	ribbons := make([]Ribbon, 0, len(ys)-1)
	for i := 0; i+1 < len(ys); i++ {
		bottomY, topY := ys[i], ys[i+1]
		sides := sidesWithinRange(all, bottomY, topY)
		sort.SliceStable(sides, func(i, j int) bool { return sideLess(sides[i], sides[j]) })
		ribbons = append(ribbons, Ribbon{BottomY: bottomY, TopY: topY, Sides: sides})
	}
	return ribbons
}

// MakeTrapezoid builds the positive polygon bounded by left and right on
// the bottom and top horizontals. Where the two walls meet at the same x on
// a horizontal, that corner appears once rather than twice, so the result
// has three vertices (two if the walls meet on both horizontals).
func MakeTrapezoid(left, right Side, bottomY, topY numeric.Number) polygon.Polygon {
	var trapezoid polygon.Polygon
	trapezoid = append(trapezoid, point.New(left.BottomX, bottomY))
	if !left.BottomX.Equal(right.BottomX) {
		trapezoid = append(trapezoid, point.New(right.BottomX, bottomY))
	}
	trapezoid = append(trapezoid, point.New(right.TopX, topY))
	if !left.TopX.Equal(right.TopX) {
		trapezoid = append(trapezoid, point.New(left.TopX, topY))
	}
	return trapezoid
}
