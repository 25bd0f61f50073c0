package sssp

import (
	"github.com/rs/zerolog/log"

	"github.com/Achrafbennanizia/Dijkstra/graph"
	"github.com/Achrafbennanizia/Dijkstra/utils"
)

// A frontier entry: a candidate distance for a node, awaiting processing.
// Entries are never removed from the middle of the heap; an entry whose
// distance no longer matches the distance table is stale and discarded
// on pop (lazy deletion).
type frontierItem struct {
	dist int64
	node int32
}

func (a frontierItem) Less(b frontierItem) bool {
	return a.dist < b.dist
}

// RunSequential computes shortest distances from source to every node with
// classic label-setting Dijkstra. It is the correctness oracle for the
// parallel engine. The graph must be validated and the source in range.
func RunSequential(g *graph.Graph, source int32) Result {
	if !g.Valid(source) {
		log.Panic().Msg("Source node out of range: " + utils.V(source))
	}
	res := newResult(g.NodeCount(), source)

	frontier := make(utils.PQ[frontierItem], 0, 64)
	frontier.Push(frontierItem{dist: 0, node: source})

	for len(frontier) > 0 {
		top := frontier.Pop()
		if top.dist != res.Dist[top.node] {
			continue // stale
		}
		for _, e := range g.OutEdges[top.node] {
			if candidate := top.dist + e.Weight; candidate < res.Dist[e.To] {
				res.Dist[e.To] = candidate
				res.Pred[e.To] = top.node
				frontier.Push(frontierItem{dist: candidate, node: e.To})
			}
		}
	}
	return res
}
