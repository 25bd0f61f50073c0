// Package sssp implements single-source shortest paths over a weighted
// directed graph, with a sequential label-setting engine and an adaptive
// parallel engine that fans out the relaxation of high-degree nodes across a
// fixed pool of workers. Both engines produce the same distances for the
// same input; predecessor choice may differ where multiple minimum-cost
// paths exist.
package sssp

import "math"

// Infinity is the unreached-distance sentinel. Chosen with headroom so that
// Infinity plus any edge weight cannot wrap.
const Infinity = int64(math.MaxInt64 / 4)

// NoPredecessor marks the source and unreached nodes in the predecessor table.
const NoPredecessor = int32(-1)

// Result is the output of one engine run: distance and predecessor tables
// indexed by 1-based node id (index 0 unused). Owned by the caller and
// read-only after the run returns.
type Result struct {
	Source int32
	Dist   []int64
	Pred   []int32
}

func newResult(n int, source int32) Result {
	res := Result{
		Source: source,
		Dist:   make([]int64, n+1),
		Pred:   make([]int32, n+1),
	}
	for i := range res.Dist {
		res.Dist[i] = Infinity
		res.Pred[i] = NoPredecessor
	}
	res.Dist[source] = 0
	return res
}

// Reachable reports whether target was reached from the source.
func (r Result) Reachable(target int32) bool {
	return r.Dist[target] != Infinity
}

// PathTo walks the predecessor table from target back to the source and
// returns the path in source->target order. Returns nil if target is
// unreachable.
func (r Result) PathTo(target int32) []int32 {
	if target < 1 || int(target) >= len(r.Dist) || !r.Reachable(target) {
		return nil
	}
	path := make([]int32, 0, 8)
	for v := target; v != NoPredecessor; v = r.Pred[v] {
		path = append(path, v)
	}
	if path[len(path)-1] != r.Source { // walk ended before the source
		return nil
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
