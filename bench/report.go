package bench

import (
	"fmt"

	"github.com/arborfell/oddpath/weight"
)

// Mismatch records one query row whose actual outcome did not match its
// expected answer, or whose returned path failed a verify.* invariant.
type Mismatch struct {
	Line   int
	Detail string
}

// Report summarizes a batch of query checks.
type Report struct {
	Total     int
	Mismatches []Mismatch
}

// OK reports whether every query in the batch passed.
func (r *Report) OK() bool { return len(r.Mismatches) == 0 }

func (r *Report) record(line int, format string, args ...interface{}) {
	r.Mismatches = append(r.Mismatches, Mismatch{Line: line, Detail: fmt.Sprintf(format, args...)})
}

// String renders a one-line-per-mismatch summary, or "ok" if none.
func (r *Report) String() string {
	if r.OK() {
		return fmt.Sprintf("ok (%d/%d)", r.Total, r.Total)
	}
	s := fmt.Sprintf("%d/%d failed:\n", len(r.Mismatches), r.Total)
	for _, m := range r.Mismatches {
		s += fmt.Sprintf("  line %d: %s\n", m.Line, m.Detail)
	}
	return s
}

func costMismatch[W weight.Numeric](want, got weight.Cost[W]) string {
	return fmt.Sprintf("expected cost %v, got %v", want, got)
}
