package builder

import "errors"

// ErrTooFewVertices is returned when n is below the minimum a topology
// requires (2 for Path/Star, 3 for Cycle, 1 for Complete, 4 for Wheel).
var ErrTooFewVertices = errors.New("builder: too few vertices for this topology")
