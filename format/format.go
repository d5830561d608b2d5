// Package format implements the plain-text wire formats of §6: parsing
// and printing ProblemSpec and SolutionSpec. It is grounded on the
// akatsuki judge's problem.cc and solution.cc, which read and write the
// same token stream via C++'s whitespace-skipping operator>>; this port
// uses a bufio.Scanner in ScanWords mode for the same whitespace-agnostic
// behavior.
package format

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/origamifold/akatsuki/model"
	"github.com/origamifold/akatsuki/numeric"
	"github.com/origamifold/akatsuki/point"
	"github.com/origamifold/akatsuki/polygon"
	"github.com/origamifold/akatsuki/segment"
)

// tokenReader pulls whitespace-separated tokens from a stream, mirroring
// C++'s istream::operator>>.
type tokenReader struct {
	scanner *bufio.Scanner
}

func newTokenReader(r io.Reader) *tokenReader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	s.Split(bufio.ScanWords)
	return &tokenReader{scanner: s}
}

func (t *tokenReader) next() (string, error) {
	if !t.scanner.Scan() {
		if err := t.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return t.scanner.Text(), nil
}

func (t *tokenReader) nextInt() (int, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}
	n := 0
	neg := false
	for i, c := range tok {
		if i == 0 && c == '-' {
			neg = true
			continue
		}
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("format: malformed integer %q", tok)
		}
		n = n*10 + int(c-'0')
	}
	if neg {
		n = -n
	}
	return n, nil
}

func (t *tokenReader) nextPoint() (point.Point, error) {
	tok, err := t.next()
	if err != nil {
		return point.Point{}, err
	}
	parts := strings.SplitN(tok, ",", 2)
	if len(parts) != 2 {
		return point.Point{}, fmt.Errorf("format: malformed coordinate %q", tok)
	}
	x, err := numeric.Parse(parts[0])
	if err != nil {
		return point.Point{}, err
	}
	y, err := numeric.Parse(parts[1])
	if err != nil {
		return point.Point{}, err
	}
	return point.New(x, y), nil
}

// ParseProblem reads a ProblemSpec in the format described in §6.
func ParseProblem(r io.Reader) (model.ProblemSpec, error) {
	t := newTokenReader(r)

	numPolygons, err := t.nextInt()
	if err != nil {
		return model.ProblemSpec{}, err
	}
	polygons := make(polygon.ComplexPolygon, numPolygons)
	for i := 0; i < numPolygons; i++ {
		numVertices, err := t.nextInt()
		if err != nil {
			return model.ProblemSpec{}, err
		}
		poly := make(polygon.Polygon, numVertices)
		for j := 0; j < numVertices; j++ {
			p, err := t.nextPoint()
			if err != nil {
				return model.ProblemSpec{}, err
			}
			poly[j] = p
		}
		polygons[i] = poly
	}

	numEdges, err := t.nextInt()
	if err != nil {
		return model.ProblemSpec{}, err
	}
	edges := make([]segment.Segment, numEdges)
	for i := 0; i < numEdges; i++ {
		a, err := t.nextPoint()
		if err != nil {
			return model.ProblemSpec{}, err
		}
		b, err := t.nextPoint()
		if err != nil {
			return model.ProblemSpec{}, err
		}
		edges[i] = segment.FromEndpoints(a, b)
	}

	return model.ProblemSpec{Polygons: polygons, Edges: edges}, nil
}

// WriteProblem prints a ProblemSpec in the format described in §6.
func WriteProblem(w io.Writer, spec model.ProblemSpec) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, len(spec.Polygons))
	for _, poly := range spec.Polygons {
		fmt.Fprintln(bw, len(poly))
		for _, p := range poly {
			fmt.Fprintf(bw, "%s,%s\n", p.X.String(), p.Y.String())
		}
	}
	fmt.Fprintln(bw, len(spec.Edges))
	for _, e := range spec.Edges {
		end := e.End()
		fmt.Fprintf(bw, "%s,%s %s,%s\n", e.Pos.X.String(), e.Pos.Y.String(), end.X.String(), end.Y.String())
	}
	return bw.Flush()
}

// ParseSolution reads a SolutionSpec in the format described in §6.
func ParseSolution(r io.Reader) (model.SolutionSpec, error) {
	t := newTokenReader(r)

	n, err := t.nextInt()
	if err != nil {
		return model.SolutionSpec{}, err
	}
	srcPoints := make([]point.Point, n)
	for i := 0; i < n; i++ {
		p, err := t.nextPoint()
		if err != nil {
			return model.SolutionSpec{}, err
		}
		srcPoints[i] = p
	}

	m, err := t.nextInt()
	if err != nil {
		return model.SolutionSpec{}, err
	}
	facetDefs := make([][]int, m)
	for i := 0; i < m; i++ {
		k, err := t.nextInt()
		if err != nil {
			return model.SolutionSpec{}, err
		}
		def := make([]int, k)
		for j := 0; j < k; j++ {
			idx, err := t.nextInt()
			if err != nil {
				return model.SolutionSpec{}, err
			}
			def[j] = idx
		}
		facetDefs[i] = def
	}

	dstPoints := make([]point.Point, n)
	for i := 0; i < n; i++ {
		p, err := t.nextPoint()
		if err != nil {
			return model.SolutionSpec{}, err
		}
		dstPoints[i] = p
	}

	return model.NewSolutionSpec(srcPoints, dstPoints, facetDefs)
}
