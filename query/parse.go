package query

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arborfell/oddpath/weight"
)

// infinitySentinel is the textual stand-in for an Impossible cost in a
// query file.
const infinitySentinel = "∞"

// ErrMalformedQuery indicates a query row that does not match its
// format's expected field count.
var ErrMalformedQuery = errors.New("query: malformed query line")

// WalkQuery is one row of a .walk or .path query file: s, t and the
// expected cost (Infinite if no qualifying walk/path exists).
type WalkQuery[W weight.Numeric] struct {
	S, T int
	Cost weight.Cost[W]
}

// BottleneckQuery is one row of a .bottleneck query file: s, t, the
// bottleneck edge (u,v) and the expected cost.
type BottleneckQuery[W weight.Numeric] struct {
	S, T, U, V int
	Cost       weight.Cost[W]
}

// DisjointQuery is one row of a .disjoint query file: the two
// source-target pairs and the expected combined cost.
type DisjointQuery[W weight.Numeric] struct {
	S1, T1, S2, T2 int
	Cost           weight.Cost[W]
}

// DiversionQuery is one row of a .diversion query file: s, t, the
// diversion edge (du,dv), and an optional expected cost (Impossible
// denotes "no expectation given", not "no diversion set exists" — unlike
// the other query kinds, a cost is never required here).
type DiversionQuery[W weight.Numeric] struct {
	S, T, DU, DV int
	Cost         weight.Cost[W]
	HasCost      bool
}

// ParseWalkQueries reads a .walk or .path file: one "s t cost" row per
// line.
func ParseWalkQueries[W weight.Numeric](r io.Reader) ([]WalkQuery[W], error) {
	var out []WalkQuery[W]
	lines := significantLines(r)
	for {
		row, ok := lines.next()
		if !ok {
			break
		}
		fields := strings.Fields(row)
		if len(fields) != 3 {
			return nil, fmt.Errorf("query: %w: %q", ErrMalformedQuery, row)
		}
		s, t, err := parseTwoInts(fields[0], fields[1])
		if err != nil {
			return nil, fmt.Errorf("query: %w: %q", err, row)
		}
		cost, err := parseCost[W](fields[2])
		if err != nil {
			return nil, fmt.Errorf("query: %w: %q", err, row)
		}
		out = append(out, WalkQuery[W]{S: s, T: t, Cost: cost})
	}
	return out, nil
}

// ParseBottleneckQueries reads a .bottleneck file: one "s t u v cost" row
// per line.
func ParseBottleneckQueries[W weight.Numeric](r io.Reader) ([]BottleneckQuery[W], error) {
	var out []BottleneckQuery[W]
	lines := significantLines(r)
	for {
		row, ok := lines.next()
		if !ok {
			break
		}
		fields := strings.Fields(row)
		if len(fields) != 5 {
			return nil, fmt.Errorf("query: %w: %q", ErrMalformedQuery, row)
		}
		ints, err := parseInts(fields[:4])
		if err != nil {
			return nil, fmt.Errorf("query: %w: %q", err, row)
		}
		cost, err := parseCost[W](fields[4])
		if err != nil {
			return nil, fmt.Errorf("query: %w: %q", err, row)
		}
		out = append(out, BottleneckQuery[W]{S: ints[0], T: ints[1], U: ints[2], V: ints[3], Cost: cost})
	}
	return out, nil
}

// ParseDisjointQueries reads a .disjoint file: one "s1 t1 s2 t2 cost" row
// per line.
func ParseDisjointQueries[W weight.Numeric](r io.Reader) ([]DisjointQuery[W], error) {
	var out []DisjointQuery[W]
	lines := significantLines(r)
	for {
		row, ok := lines.next()
		if !ok {
			break
		}
		fields := strings.Fields(row)
		if len(fields) != 5 {
			return nil, fmt.Errorf("query: %w: %q", ErrMalformedQuery, row)
		}
		ints, err := parseInts(fields[:4])
		if err != nil {
			return nil, fmt.Errorf("query: %w: %q", err, row)
		}
		cost, err := parseCost[W](fields[4])
		if err != nil {
			return nil, fmt.Errorf("query: %w: %q", err, row)
		}
		out = append(out, DisjointQuery[W]{S1: ints[0], T1: ints[1], S2: ints[2], T2: ints[3], Cost: cost})
	}
	return out, nil
}

// ParseDiversionQueries reads a .diversion file: one "s t du dv [cost]"
// row per line; the trailing cost is optional.
func ParseDiversionQueries[W weight.Numeric](r io.Reader) ([]DiversionQuery[W], error) {
	var out []DiversionQuery[W]
	lines := significantLines(r)
	for {
		row, ok := lines.next()
		if !ok {
			break
		}
		fields := strings.Fields(row)
		if len(fields) != 4 && len(fields) != 5 {
			return nil, fmt.Errorf("query: %w: %q", ErrMalformedQuery, row)
		}
		ints, err := parseInts(fields[:4])
		if err != nil {
			return nil, fmt.Errorf("query: %w: %q", err, row)
		}
		q := DiversionQuery[W]{S: ints[0], T: ints[1], DU: ints[2], DV: ints[3]}
		if len(fields) == 5 {
			q.Cost, err = parseCost[W](fields[4])
			if err != nil {
				return nil, fmt.Errorf("query: %w: %q", err, row)
			}
			q.HasCost = true
		}
		out = append(out, q)
	}
	return out, nil
}

func parseCost[W weight.Numeric](s string) (weight.Cost[W], error) {
	if s == infinitySentinel {
		return weight.Infinite[W](), nil
	}
	w, err := weight.Parse[W](s)
	if err != nil {
		return weight.Cost[W]{}, err
	}
	return weight.Finite(w), nil
}

func parseTwoInts(a, b string) (int, int, error) {
	x, err := strconv.Atoi(a)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad vertex %q", ErrMalformedQuery, a)
	}
	y, err := strconv.Atoi(b)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad vertex %q", ErrMalformedQuery, b)
	}
	return x, y, nil
}

func parseInts(fields []string) ([4]int, error) {
	var out [4]int
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return out, fmt.Errorf("%w: bad vertex %q", ErrMalformedQuery, f)
		}
		out[i] = v
	}
	return out, nil
}

// significantLines trims, and skips comment ('%') and blank lines,
// mirroring the same convention used by the graph and planar parsers.
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
