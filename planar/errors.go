package planar

import "errors"

// Sentinel errors for planar-graph construction and parsing.
var (
	// ErrMissingHeader indicates the "n m" header row is absent or
	// unparsable.
	ErrMissingHeader = errors.New("planar: missing or malformed header row")

	// ErrMalformedLine indicates a point or edge row that does not match
	// the expected shape.
	ErrMalformedLine = errors.New("planar: malformed input line")

	// ErrDuplicatePoint indicates the same vertex id was placed twice.
	ErrDuplicatePoint = errors.New("planar: duplicate point id")

	// ErrMissingPoint indicates a vertex never received a placement.
	ErrMissingPoint = errors.New("planar: vertex has no point")

	// ErrCoincidentPoints indicates two vertices were placed at the same
	// position, which leaves the clockwise polar-angle sort undefined.
	ErrCoincidentPoints = errors.New("planar: coincident points")

	// ErrIncompleteFaces indicates the clockwise face walk left some
	// half-edge without both a left and a right face; this only happens
	// if the input embedding is not actually planar.
	ErrIncompleteFaces = errors.New("planar: face walk left an edge without both faces")

	// ErrEulerFormula indicates the discovered (n, m, f) triple violates
	// Euler's formula n - m + f = 2, a strong signal the input points
	// do not describe a planar embedding.
	ErrEulerFormula = errors.New("planar: n - m + f != 2")
)
