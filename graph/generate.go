package graph

import (
	"bufio"
	"io"
	"math/rand"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/Achrafbennanizia/Dijkstra/utils"
)

// GenerateOptions controls the synthetic graph generator. Targets are drawn
// uniformly from [1, Nodes] and weights uniformly from [1, MaxWeight], so the
// result may contain self loops and parallel edges; both are legal input for
// the engines.
type GenerateOptions struct {
	Nodes        int
	EdgesPerNode int
	MaxWeight    int64
}

// Presets matching the original test tiers.
func SmallOptions() GenerateOptions { return GenerateOptions{Nodes: 4, EdgesPerNode: 1, MaxWeight: 20} }

func MediumOptions() GenerateOptions {
	return GenerateOptions{Nodes: 100, EdgesPerNode: 5, MaxWeight: 50}
}

func LargeOptions() GenerateOptions {
	return GenerateOptions{Nodes: 1000, EdgesPerNode: 5, MaxWeight: 100}
}

func MassiveOptions() GenerateOptions {
	return GenerateOptions{Nodes: 5000, EdgesPerNode: 10, MaxWeight: 100}
}

// Generate builds a random graph. The rng is taken explicitly so tests can
// seed deterministic graphs.
func Generate(opts GenerateOptions, rng *rand.Rand) (*Graph, error) {
	g, err := New(opts.Nodes)
	if err != nil {
		return nil, err
	}
	if opts.MaxWeight < 1 {
		opts.MaxWeight = 1
	}
	for u := 1; u <= opts.Nodes; u++ {
		for j := 0; j < opts.EdgesPerNode; j++ {
			target := int32(rng.Intn(opts.Nodes) + 1)
			weight := rng.Int63n(opts.MaxWeight) + 1
			if err = g.AddEdge(int32(u), target, weight); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// WriteDimacs emits the graph in the DIMACS shortest-path format accepted by
// LoadDimacs.
func WriteDimacs(w io.Writer, g *Graph, comment string) error {
	bw := bufio.NewWriter(w)
	if comment != "" {
		if _, err := bw.WriteString("c " + comment + "\n"); err != nil {
			return err
		}
	}
	if _, err := bw.WriteString("p sp " + strconv.Itoa(g.NodeCount()) + " " + strconv.FormatUint(g.EdgeCount(), 10) + "\n"); err != nil {
		return err
	}
	for u := 1; u < len(g.OutEdges); u++ {
		for _, e := range g.OutEdges[u] {
			if _, err := bw.WriteString("a " + strconv.Itoa(u) + " " + strconv.Itoa(int(e.To)) + " " + strconv.FormatInt(e.Weight, 10) + "\n"); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// GenerateToFile generates a graph and writes it out as a .gr file.
func GenerateToFile(path string, opts GenerateOptions, rng *rand.Rand) error {
	g, err := Generate(opts, rng)
	if err != nil {
		return err
	}
	file := utils.CreateFile(path)
	defer file.Close()
	if err = WriteDimacs(file, g, "generated graph"); err != nil {
		return err
	}
	log.Info().Msg("Generated " + path + ": " + utils.V(g.NodeCount()) + " nodes, " + utils.V(g.EdgeCount()) + " edges")
	return nil
}
