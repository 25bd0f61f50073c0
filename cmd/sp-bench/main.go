package main

import (
	"flag"
	"os"
	"runtime"

	"github.com/rs/zerolog/log"

	"github.com/Achrafbennanizia/Dijkstra/bench"
	"github.com/Achrafbennanizia/Dijkstra/graph"
	"github.com/Achrafbennanizia/Dijkstra/sssp"
	"github.com/Achrafbennanizia/Dijkstra/utils"
)

// Launch point. Loads a DIMACS graph, benchmarks the sequential engine
// against the adaptive parallel engine, and prints the shortest path to the
// requested target.
func main() {
	graphPtr := flag.String("g", "", "Graph file (DIMACS .gr).")
	configPtr := flag.String("config", "", "Optional YAML config supplying defaults; explicit flags override.")
	sourcePtr := flag.Int("src", 1, "Source node id.")
	targetPtr := flag.Int("target", 0, "Target node to print the shortest path for. 0 to skip.")
	threadPtr := flag.Int("t", runtime.NumCPU(), "Thread count for the parallel fan-out.")
	thresholdPtr := flag.Int("threshold", sssp.DefaultThreshold, "Out-degree at which relaxation goes parallel.")
	trialsPtr := flag.Int("trials", 1, "Benchmark trials per engine.")
	statsPtr := flag.Bool("stats", false, "Print degree statistics for the loaded graph.")
	debugPtr := flag.Int("debug", 0, "Adds extra debug output. Level 0 for info, 1 for debug, 2 for trace.")
	colourPtr := flag.Bool("nc", false, "Removes the colouring from the log output.")
	flag.Parse()

	if *colourPtr {
		utils.SetLoggerConsole(true)
	}
	utils.SetLevel(*debugPtr)

	if *configPtr != "" {
		explicit := make(map[string]bool)
		flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
		cfg := ReadConfig(*configPtr)
		if !explicit["g"] && cfg.Graph != "" {
			*graphPtr = cfg.Graph
		}
		if !explicit["src"] && cfg.Source != 0 {
			*sourcePtr = cfg.Source
		}
		if !explicit["target"] && cfg.Target != 0 {
			*targetPtr = cfg.Target
		}
		if !explicit["t"] && cfg.Threads != 0 {
			*threadPtr = cfg.Threads
		}
		if !explicit["threshold"] && cfg.Threshold != 0 {
			*thresholdPtr = cfg.Threshold
		}
		if !explicit["trials"] && cfg.Trials != 0 {
			*trialsPtr = cfg.Trials
		}
	}

	if *graphPtr == "" {
		flag.Usage()
		os.Exit(1)
	}

	g, err := graph.LoadDimacs(*graphPtr)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load graph")
	}
	log.Info().Msg("Loaded " + utils.V(g.NodeCount()) + " nodes and " + utils.V(g.EdgeCount()) + " edges")
	if *statsPtr {
		g.PrintStats()
	}

	source := int32(*sourcePtr)
	if !g.Valid(source) {
		log.Fatal().Msg("Source node out of range: " + utils.V(source))
	}

	report, parRes := bench.Run(g, source, bench.Options{
		Trials: *trialsPtr,
		Engine: sssp.Options{Threshold: *thresholdPtr, Threads: *threadPtr},
	})
	report.Log()
	utils.MemoryStats()

	if *targetPtr == 0 {
		return
	}
	target := int32(*targetPtr)
	if !g.Valid(target) {
		log.Fatal().Msg("Target node out of range: " + utils.V(target))
	}
	if !parRes.Reachable(target) {
		log.Info().Msg("Target " + utils.V(target) + " is unreachable from " + utils.V(source))
		return
	}
	log.Info().Msg("Shortest path " + utils.V(source) + " -> " + utils.V(target) +
		" distance " + utils.V(parRes.Dist[target]))
	pathStr := ""
	for _, v := range parRes.PathTo(target) {
		pathStr += utils.V(v) + " "
	}
	log.Info().Msg("Path: " + pathStr)
}
