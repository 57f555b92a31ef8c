package weight

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrNegativeWeight is returned by Parse when the textual weight would be
// negative. Every edge weight in this module must be non-negative.
var ErrNegativeWeight = errors.New("weight: negative edge weight is not allowed")

// ErrUnsupportedKind is returned by Parse when W is neither ~uint64 nor
// ~float64 (FromUint returns the zero W in that case). It should never be observed in practice: every
// type instantiated against Numeric in this module is one of the two.
var ErrUnsupportedKind = errors.New("weight: unsupported numeric kind")

// Parse reads w from its textual form, the way the input format in §6
// expects (a bare non-negative number, or a literal '1' default handled
// by the caller when the token is absent). Parse rejects negative values
// and, for float64, non-finite values.
func Parse[W Numeric](s string) (W, error) {
	var zero W
	switch any(zero).(type) {
	case uint64:
		u, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return zero, fmt.Errorf("weight: could not parse %q as uint64: %w", s, err)
		}
		return W(u), nil
	case float64:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return zero, fmt.Errorf("weight: could not parse %q as float64: %w", s, err)
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return zero, fmt.Errorf("weight: %q is not a finite number", s)
		}
		if f < 0 {
			return zero, ErrNegativeWeight
		}
		return W(f), nil
	default:
		return zero, ErrUnsupportedKind
	}
}

// FromUint converts a small non-negative literal (e.g. the default edge
// weight of 1, or 0 for a split edge's second half) into W.
func FromUint[W Numeric](u uint64) W {
	var zero W
	switch any(zero).(type) {
	case uint64:
		return W(u)
	case float64:
		return W(float64(u))
	default:
		return zero
	}
}

// formatNumeric renders w for Cost.String without requiring W to satisfy
// fmt.Stringer (native uint64/float64 don't).
func formatNumeric[W Numeric](w W) string {
	switch v := any(w).(type) {
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", w)
	}
}

// OrderKey returns a value that totally orders W for use as a secondary
// heap tiebreaker, matching the design note that floating-point weights
// need a bit-reinterpret comparison to be a well-defined total order
// (our values are always non-negative and finite, so the raw bit pattern
// already sorts consistently with the numeric order).
func OrderKey[W Numeric](w W) uint64 {
	switch v := any(w).(type) {
	case uint64:
		return v
	case float64:
		return math.Float64bits(v)
	default:
		return 0
	}
}
