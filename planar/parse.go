package planar

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arborfell/oddpath/weight"
)

// Parse reads the planar input format from §6:
//
//	Line 1: "n m"
//	Then n point rows: "id x y"
//	Then m edge rows: "u v [w]", weight defaulting to 1 when omitted.
//
// Blank lines and '%'-comments are skipped, same convention as the
// general graph parser.
func Parse[W weight.Numeric](r io.Reader) (*Graph[W], error) {
	sc := bufio.NewScanner(r)
	next := func() (string, bool) {
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" || strings.HasPrefix(line, "%") {
				continue
			}
			return line, true
		}
		return "", false
	}

	header, ok := next()
	if !ok {
		return nil, ErrMissingHeader
	}
	fields := strings.Fields(header)
	if len(fields) < 2 {
		return nil, fmt.Errorf("%w: %q", ErrMissingHeader, header)
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("%w: bad n: %q", ErrMissingHeader, header)
	}
	m, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, fmt.Errorf("%w: bad m: %q", ErrMissingHeader, header)
	}

	pre := NewPreGraph[W](n)

	for i := 0; i < n; i++ {
		row, ok := next()
		if !ok {
			return nil, fmt.Errorf("%w: expected point row %d", ErrMalformedLine, i)
		}
		id, pt, err := parsePointRow(row)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", err, row)
		}
		if err := pre.SetPoint(id, pt); err != nil {
			return nil, fmt.Errorf("%w: %q", err, row)
		}
	}

	for i := 0; i < m; i++ {
		row, ok := next()
		if !ok {
			return nil, fmt.Errorf("%w: expected edge row %d", ErrMalformedLine, i)
		}
		u, v, w, err := parseEdgeRow[W](row, n)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", err, row)
		}
		pre.AddEdge(u, v, w)
	}

	return pre.Planarize()
}

func parsePointRow(row string) (int, Point, error) {
	fields := strings.Fields(row)
	if len(fields) < 3 {
		return 0, Point{}, ErrMalformedLine
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, Point{}, ErrMalformedLine
	}
	x, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0, Point{}, ErrMalformedLine
	}
	y, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return 0, Point{}, ErrMalformedLine
	}
	return id, Point{X: x, Y: y}, nil
}

func parseEdgeRow[W weight.Numeric](row string, n int) (u, v int, w W, err error) {
	fields := strings.Fields(row)
	if len(fields) < 2 {
		return 0, 0, w, ErrMalformedLine
	}
	u, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, w, ErrMalformedLine
	}
	v, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, w, ErrMalformedLine
	}
	if u < 0 || u >= n || v < 0 || v >= n {
		return 0, 0, w, fmt.Errorf("%w: vertex out of range", ErrMalformedLine)
	}
	if len(fields) >= 3 {
		w, err = weight.Parse[W](fields[2])
		if err != nil {
			return 0, 0, w, err
		}
	} else {
		w = weight.FromUint[W](1)
	}
	return u, v, w, nil
}
