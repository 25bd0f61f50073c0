// Package bench times the sequential and parallel engines against each other
// on the same graph and source, verifying after every trial that the two
// produced identical distances. Reporting covers speedup and efficiency the
// usual way: speedup = seq/par, efficiency = speedup/threads.
package bench

import (
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/stat"

	"github.com/Achrafbennanizia/Dijkstra/graph"
	"github.com/Achrafbennanizia/Dijkstra/sssp"
	"github.com/Achrafbennanizia/Dijkstra/utils"
)

type Options struct {
	Trials int // Runs of each engine; statistics aggregate over all of them.
	Engine sssp.Options
}

func DefaultOptions() Options {
	return Options{Trials: 1, Engine: sssp.DefaultOptions()}
}

type Report struct {
	Trials    int
	Threads   int
	SeqMillis []float64
	ParMillis []float64
}

func (r Report) SeqMean() float64 { return stat.Mean(r.SeqMillis, nil) }
func (r Report) ParMean() float64 { return stat.Mean(r.ParMillis, nil) }

func (r Report) Speedup() float64 {
	if r.ParMean() <= 0 {
		return 0
	}
	return r.SeqMean() / r.ParMean()
}

func (r Report) Efficiency() float64 {
	return r.Speedup() / float64(r.Threads)
}

// Run times both engines over opts.Trials runs. Returns the report and the
// parallel engine's result from the last trial for downstream consumption
// (path reconstruction). Panics if the engines ever disagree on a distance.
func Run(g *graph.Graph, source int32, opts Options) (Report, sssp.Result) {
	if opts.Trials < 1 {
		opts.Trials = 1
	}
	engine := sssp.NewEngine(opts.Engine)
	report := Report{
		Trials:    opts.Trials,
		Threads:   opts.Engine.Threads,
		SeqMillis: make([]float64, 0, opts.Trials),
		ParMillis: make([]float64, 0, opts.Trials),
	}

	watch := utils.Watch{}
	var parRes sssp.Result
	for trial := 0; trial < opts.Trials; trial++ {
		watch.Start()
		seqRes := sssp.RunSequential(g, source)
		report.SeqMillis = append(report.SeqMillis, watch.Elapsed().Seconds()*1000)

		watch.Start()
		parRes = engine.Run(g, source)
		report.ParMillis = append(report.ParMillis, watch.Elapsed().Seconds()*1000)

		verifyEquivalent(seqRes, parRes)
		log.Debug().Msg("trial " + utils.V(trial) +
			" seq(ms) " + utils.F("%.3f", report.SeqMillis[trial]) +
			" par(ms) " + utils.F("%.3f", report.ParMillis[trial]))
	}
	return report, parRes
}

// The engines must agree node for node, exactly. A mismatch means the merge
// protocol lost or mis-applied an update; halt rather than report nonsense.
func verifyEquivalent(seq, par sssp.Result) {
	diffs := 0
	for i := 1; i < len(seq.Dist); i++ {
		if seq.Dist[i] != par.Dist[i] {
			if diffs < 10 {
				log.Error().Msg("distance mismatch at node " + utils.V(i) +
					": sequential " + utils.V(seq.Dist[i]) + " parallel " + utils.V(par.Dist[i]))
			}
			diffs++
		}
	}
	if diffs > 0 {
		log.Panic().Msg("Engines disagree on " + utils.V(diffs) + " nodes")
	}
}

// Log prints the performance summary.
func (r Report) Log() {
	log.Info().Msg("----Performance----")
	log.Info().Msg("Trials " + utils.V(r.Trials))
	log.Info().Msg("Sequential(ms) mean " + utils.F("%.3f", r.SeqMean()) + " stddev " + utils.F("%.3f", stat.StdDev(r.SeqMillis, nil)))
	log.Info().Msg("Parallel(ms, " + utils.V(r.Threads) + " threads) mean " + utils.F("%.3f", r.ParMean()) + " stddev " + utils.F("%.3f", stat.StdDev(r.ParMillis, nil)))
	log.Info().Msg("Speedup " + utils.F("%.3f", r.Speedup()) + "x Efficiency " + utils.F("%.3f", r.Efficiency()))
	log.Info().Msg("----EndPerformance----")
}
