// Package graph holds the adjacency representation consumed by the
// shortest-path engines, along with the DIMACS loader and the synthetic
// graph generator. The graph owns input validation: ids and weights are
// checked here, so the engines can assume a well-formed structure.
package graph

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/stat"

	"github.com/Achrafbennanizia/Dijkstra/utils"
)

var (
	ErrBadNodeCount   = errors.New("graph: node count must be positive")
	ErrBadNode        = errors.New("graph: node id out of range")
	ErrNegativeWeight = errors.New("graph: negative edge weight")
	ErrWeightTooLarge = errors.New("graph: edge weight above MaxWeight")
)

// MaxWeight is the largest accepted edge weight. It sits just below the
// engines' unreached-distance sentinel, so a committed finite distance plus
// one weight stays under half of MaxInt64 and cannot wrap.
const MaxWeight = int64(math.MaxInt64/4) - 1

// Edge is a directed out-edge. Parallel edges between the same pair are
// permitted and independent.
type Edge struct {
	To     int32
	Weight int64
}

// Graph is an adjacency list indexed by 1-based node id; index 0 is unused,
// reflecting the external numbering of DIMACS files. Immutable once handed
// to an engine.
type Graph struct {
	OutEdges [][]Edge // OutEdges[u] for u in [1, NodeCount()].
	numEdges uint64
}

// New creates an empty graph with n nodes and no edges.
func New(n int) (*Graph, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadNodeCount, n)
	}
	return &Graph{OutEdges: make([][]Edge, n+1)}, nil
}

// AddEdge appends a directed edge from -> to. Both endpoints must be within
// [1, NodeCount()] and the weight within [0, MaxWeight].
func (g *Graph) AddEdge(from, to int32, weight int64) error {
	if from < 1 || int(from) >= len(g.OutEdges) || to < 1 || int(to) >= len(g.OutEdges) {
		return fmt.Errorf("%w: edge %d->%d with %d nodes", ErrBadNode, from, to, g.NodeCount())
	}
	if weight < 0 {
		return fmt.Errorf("%w: edge %d->%d weight=%d", ErrNegativeWeight, from, to, weight)
	}
	if weight > MaxWeight {
		return fmt.Errorf("%w: edge %d->%d weight=%d", ErrWeightTooLarge, from, to, weight)
	}
	g.OutEdges[from] = append(g.OutEdges[from], Edge{To: to, Weight: weight})
	g.numEdges++
	return nil
}

func (g *Graph) NodeCount() int {
	return len(g.OutEdges) - 1
}

func (g *Graph) EdgeCount() uint64 {
	return g.numEdges
}

func (g *Graph) OutDegree(u int32) int {
	return len(g.OutEdges[u])
}

// Valid reports whether u is a node of this graph.
func (g *Graph) Valid(u int32) bool {
	return u >= 1 && int(u) < len(g.OutEdges)
}

func (g *Graph) MaxOutDegree() (maxDeg int) {
	for u := 1; u < len(g.OutEdges); u++ {
		maxDeg = utils.Max(maxDeg, len(g.OutEdges[u]))
	}
	return maxDeg
}

// PrintStats logs basic degree statistics, like sink count and the degree
// distribution of the graph.
func (g *Graph) PrintStats() {
	numSinks := 0
	degrees := make([]float64, 0, g.NodeCount())
	for u := 1; u < len(g.OutEdges); u++ {
		if len(g.OutEdges[u]) == 0 {
			numSinks++
		}
		degrees = append(degrees, float64(len(g.OutEdges[u])))
	}

	log.Info().Msg("----GraphStats----")
	log.Info().Msg("Nodes " + utils.V(g.NodeCount()))
	log.Info().Msg("Sinks " + utils.V(numSinks) + " pct:" + utils.F("%.3f", float64(numSinks)*100.0/float64(g.NodeCount())))
	log.Info().Msg("Edges " + utils.V(g.numEdges))
	log.Info().Msg("MaxOutDeg " + utils.V(g.MaxOutDegree()))
	log.Info().Msg("MeanOutDeg " + utils.F("%.3f", stat.Mean(degrees, nil)) + " StdDev " + utils.F("%.3f", stat.StdDev(degrees, nil)))
	log.Info().Msg("----EndStats----")
}
