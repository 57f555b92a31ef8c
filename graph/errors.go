package graph

import "errors"

// Sentinel errors for graph construction and parsing.
var (
	// ErrVertexOutOfRange indicates an edge or vertex index outside [0,n).
	ErrVertexOutOfRange = errors.New("graph: vertex index out of range")

	// ErrMalformedLine indicates a row that does not match the expected
	// "u v [w]" shape.
	ErrMalformedLine = errors.New("graph: malformed input line")

	// ErrMissingHeader indicates the "n m" header row is absent or
	// unparsable.
	ErrMissingHeader = errors.New("graph: missing or malformed header row")
)
