package graph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arborfell/oddpath/weight"
)

// Parse reads the general (non-planar) input format from §6:
//
//	Line 1: "n m" (possibly with ignored trailing tokens)
//	Then m lines: "u v [w]", weight defaulting to 1 when omitted.
//
// Blank lines and lines starting with '%' are skipped. Parser errors are
// wrapped with the offending line's content.
func Parse[W weight.Numeric](r io.Reader) (*UndirectedGraph[W, BasicEdge[W]], error) {
	lines := significantLines(r)

	header, ok := lines.next()
	if !ok {
		return nil, ErrMissingHeader
	}
	n, _, err := parseHeader(header)
	if err != nil {
		return nil, fmt.Errorf("graph: %w: %q", err, header)
	}

	g := New[W, BasicEdge[W]](n)
	for {
		row, ok := lines.next()
		if !ok {
			break
		}
		e, err := parseBasicEdgeRow[W](row, n)
		if err != nil {
			return nil, fmt.Errorf("graph: %w: %q", err, row)
		}
		g.AddEdge(e)
	}
	return g, nil
}

// parseHeader parses the "n m [...]" row, ignoring any trailing tokens.
func parseHeader(row string) (n, m int, err error) {
	fields := strings.Fields(row)
	if len(fields) < 2 {
		return 0, 0, ErrMissingHeader
	}
	n, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: could not parse n", ErrMissingHeader)
	}
	m, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: could not parse m", ErrMissingHeader)
	}
	return n, m, nil
}

// parseBasicEdgeRow parses "u v [w]"; w defaults to 1.
func parseBasicEdgeRow[W weight.Numeric](row string, n int) (BasicEdge[W], error) {
	var zero BasicEdge[W]
	fields := strings.Fields(row)
	if len(fields) < 2 {
		return zero, ErrMalformedLine
	}
	u, err := strconv.Atoi(fields[0])
	if err != nil {
		return zero, fmt.Errorf("%w: bad from-vertex", ErrMalformedLine)
	}
	v, err := strconv.Atoi(fields[1])
	if err != nil {
		return zero, fmt.Errorf("%w: bad to-vertex", ErrMalformedLine)
	}
	if u < 0 || u >= n || v < 0 || v >= n {
		return zero, ErrVertexOutOfRange
	}
	var w W
	if len(fields) >= 3 {
		w, err = weight.Parse[W](fields[2])
		if err != nil {
			return zero, err
		}
	} else {
		w = weight.FromUint[W](1)
	}
	return NewBasicEdge(u, v, w), nil
}

// significantLines trims, lowers-effort-filters comments ('%') and blank
// lines from r, matching the format note in §6.
type lineScanner struct {
	sc *bufio.Scanner
}

func significantLines(r io.Reader) *lineScanner {
	return &lineScanner{sc: bufio.NewScanner(r)}
}

func (l *lineScanner) next() (string, bool) {
	for l.sc.Scan() {
		line := strings.TrimSpace(l.sc.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		return line, true
	}
	return "", false
}
