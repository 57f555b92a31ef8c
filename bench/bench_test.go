package bench_test

import (
	"testing"

	"github.com/arborfell/oddpath/builder"
	"github.com/arborfell/oddpath/oddpath"
	"github.com/arborfell/oddpath/oddwalk"
)

// BenchmarkOddWalk_Cycle measures the layered-Dijkstra odd-walk solver on
// an odd cycle, the shape that forces it to go all the way around.
func BenchmarkOddWalk_Cycle(b *testing.B) {
	const n = 2001 // odd, so s and t=n/2 sit on an odd-length detour
	g, err := builder.Cycle[uint64](n, 1)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(n + n))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		oddwalk.Solve[uint64](g, 0, n/2)
	}
}

// BenchmarkOddPath_Cycle measures the blossom-contraction odd-path
// solver on the same odd cycle, where the only odd simple path is the
// long way around. No blossom forms: the two arcs between s and t are
// grown by vertex events alone.
func BenchmarkOddPath_Cycle(b *testing.B) {
	const n = 2001
	g, err := builder.Cycle[uint64](n, 1)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(n + n))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		oddpath.Solve[uint64](g, 0, n/2)
	}
}

// BenchmarkOddPath_Complete measures the solver on a dense graph. Since
// t=n/2 is adjacent to s, the answer is the direct edge: each scan pushes
// many vertex and blossom events, and the solve ends once t's distance-1
// vertex event is popped.
func BenchmarkOddPath_Complete(b *testing.B) {
	const n = 60
	g, err := builder.Complete[uint64](n, 1)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(n * n))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		oddpath.Solve[uint64](g, 0, n/2)
	}
}
