package weight

// Numeric is the set of concrete weight representations this module
// supports. Both kinds already implement +, -, < and == natively, so
// Numeric needs no methods of its own: it exists purely to bound the
// type parameter W used throughout graph, planar, search, oddwalk and
// oddpath.
//
// Invariant (enforced at parse time, not by the type system): every
// edge weight is non-negative.
type Numeric interface {
	~uint64 | ~float64
}

// Cost is either Infinite or a Finite(w). It is the tentative-label
// type used by every shortest-path routine in this module: Infinite is
// the absorbing maximum element, so Add/Sub with it always yields
// Infinite, and comparisons always rank it last.
type Cost[W Numeric] struct {
	value  W
	finite bool
}

// Finite wraps w as a concrete, finite cost.
func Finite[W Numeric](w W) Cost[W] {
	return Cost[W]{value: w, finite: true}
}

// Infinite returns the absorbing maximum cost.
func Infinite[W Numeric]() Cost[W] {
	return Cost[W]{}
}

// IsFinite reports whether c holds a concrete value.
func (c Cost[W]) IsFinite() bool { return c.finite }

// IsInfinite reports whether c is the absorbing maximum.
func (c Cost[W]) IsInfinite() bool { return !c.finite }

// MustValue returns the wrapped value. It panics if c is Infinite: a
// caller that reaches this path believed a label was finalized when it
// was not, which is a solver invariant violation rather than a normal
// outcome.
func (c Cost[W]) MustValue() W {
	if !c.finite {
		panic("weight: MustValue called on an Infinite Cost")
	}
	return c.value
}

// Add returns c + other, saturating to Infinite if either operand is.
func (c Cost[W]) Add(other Cost[W]) Cost[W] {
	if !c.finite || !other.finite {
		return Infinite[W]()
	}
	return Finite(c.value + other.value)
}

// Sub returns c - other, saturating to Infinite if either operand is.
// Non-negativity of the result is the caller's responsibility; this
// module never subtracts in a direction that should go negative.
func (c Cost[W]) Sub(other Cost[W]) Cost[W] {
	if !c.finite || !other.finite {
		return Infinite[W]()
	}
	return Finite(c.value - other.value)
}

// Less reports whether c sorts strictly before other, with Infinite
// ranked greatest.
func (c Cost[W]) Less(other Cost[W]) bool {
	switch {
	case c.finite && other.finite:
		return c.value < other.value
	case c.finite && !other.finite:
		return true
	default:
		return false
	}
}

// Equal reports value equality (Infinite == Infinite).
func (c Cost[W]) Equal(other Cost[W]) bool {
	if c.finite != other.finite {
		return false
	}
	return !c.finite || c.value == other.value
}

// String renders a Finite cost as its value, and Infinite as "∞".
func (c Cost[W]) String() string {
	if !c.finite {
		return "∞"
	}
	return formatNumeric(c.value)
}
