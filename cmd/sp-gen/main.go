package main

import (
	"flag"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Achrafbennanizia/Dijkstra/graph"
)

// Generates synthetic DIMACS .gr graphs for benchmarking, from the preset
// tiers or custom parameters.
func main() {
	smallPtr := flag.Bool("small", false, "Generate the small test graph (4 nodes).")
	mediumPtr := flag.Bool("medium", false, "Generate the medium graph (100 nodes).")
	largePtr := flag.Bool("large", false, "Generate the large graph (1000 nodes).")
	massivePtr := flag.Bool("massive", false, "Generate the massive graph (5000 nodes).")
	allPtr := flag.Bool("all", false, "Generate every preset tier.")
	customPtr := flag.Bool("custom", false, "Generate a custom graph from the flags below.")
	nodesPtr := flag.Int("nodes", 1000, "Node count for the custom graph.")
	edgesPtr := flag.Int("edges-per-node", 5, "Out-edges per node for the custom graph.")
	weightPtr := flag.Int64("max-weight", 100, "Maximum edge weight for the custom graph.")
	outPtr := flag.String("out", ".", "Output directory.")
	seedPtr := flag.Int64("seed", 0, "Random seed. 0 uses the current time.")
	flag.Parse()

	if !(*smallPtr || *mediumPtr || *largePtr || *massivePtr || *allPtr || *customPtr) {
		flag.Usage()
		os.Exit(1)
	}

	seed := *seedPtr
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	write := func(name string, opts graph.GenerateOptions) {
		if err := graph.GenerateToFile(filepath.Join(*outPtr, name), opts, rng); err != nil {
			log.Fatal().Err(err).Msg("Failed to generate " + name)
		}
	}

	if *smallPtr || *allPtr {
		write("test.gr", graph.SmallOptions())
	}
	if *mediumPtr || *allPtr {
		write("large_graph.gr", graph.MediumOptions())
	}
	if *largePtr || *allPtr {
		write("huge_graph.gr", graph.LargeOptions())
	}
	if *massivePtr || *allPtr {
		write("massive_graph.gr", graph.MassiveOptions())
	}
	if *customPtr {
		write("custom_graph.gr", graph.GenerateOptions{
			Nodes:        *nodesPtr,
			EdgesPerNode: *edgesPtr,
			MaxWeight:    *weightPtr,
		})
	}
}
