package bench

import (
	"errors"

	"github.com/arborfell/oddpath/bottleneck"
	"github.com/arborfell/oddpath/disjoint"
	"github.com/arborfell/oddpath/diversion"
	"github.com/arborfell/oddpath/graph"
	"github.com/arborfell/oddpath/oddpath"
	"github.com/arborfell/oddpath/oddwalk"
	"github.com/arborfell/oddpath/planar"
	"github.com/arborfell/oddpath/query"
	"github.com/arborfell/oddpath/verify"
	"github.com/arborfell/oddpath/weight"
)

// CheckWalk runs oddwalk.Solve for every row of a .walk query file
// against g, checking both the reported cost and (when a walk is
// expected) its parity and from/to/cost-sum invariants.
func CheckWalk[W weight.Numeric](g *graph.UndirectedGraph[W, graph.BasicEdge[W]], queries []query.WalkQuery[W]) *Report {
	r := &Report{Total: len(queries)}
	for i, q := range queries {
		res := oddwalk.Solve(g, q.S, q.T)
		checkPathLikeResult(r, i, q.S, q.T, q.Cost, res, true, false)
	}
	return r
}

// CheckPath runs oddpath.Solve for every row of a .path query file
// against g, additionally requiring the returned path be simple.
func CheckPath[W weight.Numeric](g *graph.UndirectedGraph[W, graph.BasicEdge[W]], queries []query.WalkQuery[W]) *Report {
	r := &Report{Total: len(queries)}
	for i, q := range queries {
		res := oddpath.Solve(g, q.S, q.T)
		checkPathLikeResult(r, i, q.S, q.T, q.Cost, res, true, true)
	}
	return r
}

// CheckBottleneck runs bottleneck.Solve for every row of a .bottleneck
// query file, additionally requiring the returned path traverse (u,v).
func CheckBottleneck[W weight.Numeric](g *graph.UndirectedGraph[W, graph.BasicEdge[W]], queries []query.BottleneckQuery[W]) *Report {
	r := &Report{Total: len(queries)}
	for i, q := range queries {
		res := bottleneck.Solve(g, q.S, q.T, q.U, q.V)
		if !checkPathLikeResult(r, i, q.S, q.T, q.Cost, res, false, true) {
			continue
		}
		if res.Found() {
			if err := verify.TraversesEdge(res.Path(), q.U, q.V); err != nil {
				r.record(i, "%v", err)
			}
		}
	}
	return r
}

// CheckDisjoint runs disjoint.Solve for every row of a .disjoint query
// file, additionally requiring the two returned paths be vertex-disjoint.
func CheckDisjoint[W weight.Numeric](g *graph.UndirectedGraph[W, graph.BasicEdge[W]], queries []query.DisjointQuery[W]) *Report {
	r := &Report{Total: len(queries)}
	for i, q := range queries {
		res := disjoint.Solve(g, q.S1, q.T1, q.S2, q.T2)

		if res.Found() != q.Cost.IsFinite() {
			r.record(i, "expected found=%v, got found=%v", q.Cost.IsFinite(), res.Found())
			continue
		}
		if !res.Found() {
			continue
		}
		if !res.Cost().Equal(q.Cost) {
			r.record(i, "%s", costMismatch(q.Cost, res.Cost()))
		}
		if err := verify.IsPath(q.S1, q.T1, res.Cost(), res.Path1()); err != nil {
			// Cost() is the combined cost of both paths, so only chain
			// validity (not the per-path sum) is meaningful to assert here.
			if !errors.Is(err, verify.ErrCostMismatch) {
				r.record(i, "path1: %v", err)
			}
		}
		if err := verify.IsPath(q.S2, q.T2, res.Cost(), res.Path2()); err != nil {
			if !errors.Is(err, verify.ErrCostMismatch) {
				r.record(i, "path2: %v", err)
			}
		}
		if err := verify.Disjoint(res.Path1(), res.Path2()); err != nil {
			r.record(i, "%v", err)
		}
	}
	return r
}

// CheckDiversion runs diversion.Solve for every row of a .diversion
// query file, requiring the returned edge set actually divert traffic
// through (du,dv) per verify.DivertsNetwork. Cost is compared only for
// rows that specify one (see query.DiversionQuery.HasCost).
func CheckDiversion[W weight.Numeric](pg *planar.Graph[W], queries []query.DiversionQuery[W]) *Report {
	r := &Report{Total: len(queries)}
	for i, q := range queries {
		res := diversion.Solve(pg, q.S, q.T, q.DU, q.DV)
		if !res.Found() {
			r.record(i, "diversion.Solve reported Impossible")
			continue
		}
		if q.HasCost && !res.Cost().Equal(q.Cost) {
			r.record(i, "%s", costMismatch(q.Cost, res.Cost()))
		}
		withD, withoutD := verify.DivertsNetwork(pg.Real(), q.S, q.T, q.DU, q.DV, res.Edges())
		if !withD {
			r.record(i, "removing the diversion set alone already disconnects s from t")
		}
		if !withoutD {
			r.record(i, "s and t remain connected even after removing the diversion set and (du,dv)")
		}
	}
	return r
}

// checkPathLikeResult is the shared body of CheckWalk/CheckPath/
// CheckBottleneck: compare found-ness and cost, then (for a Possible
// result) run the structural invariants every path/walk must satisfy.
// It returns false if the cost/found-ness comparison itself failed.
func checkPathLikeResult[W weight.Numeric, E graph.Edge[W]](r *Report, line, s, t int, want weight.Cost[W], res query.PathResult[W, E], requireOdd, requireSimple bool) bool {
	if res.Found() != want.IsFinite() {
		r.record(line, "expected found=%v, got found=%v", want.IsFinite(), res.Found())
		return false
	}
	if !res.Found() {
		return true
	}
	if !res.Cost().Equal(want) {
		r.record(line, "%s", costMismatch(want, res.Cost()))
		return false
	}
	if err := verify.IsPath(s, t, res.Cost(), res.Path()); err != nil {
		r.record(line, "%v", err)
	}
	if requireOdd {
		if err := verify.IsOddLength(res.Path()); err != nil {
			r.record(line, "%v", err)
		}
	}
	if requireSimple {
		if err := verify.IsSimple(res.Path()); err != nil {
			r.record(line, "%v", err)
		}
	}
	return true
}
