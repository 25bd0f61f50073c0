package sssp

import (
	"runtime"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/Achrafbennanizia/Dijkstra/graph"
	"github.com/Achrafbennanizia/Dijkstra/utils"
)

// DefaultThreshold is the out-degree at which per-node relaxation switches
// from the sequential inner loop to the parallel fan-out.
const DefaultThreshold = 100

// Options configures the parallel engine. Both values are fixed at engine
// construction and never adjusted mid-run.
type Options struct {
	Threshold int // Out-degree at/above which the fan-out goes parallel.
	Threads   int // Worker count for the fan-out pool.
}

func DefaultOptions() Options {
	return Options{Threshold: DefaultThreshold, Threads: runtime.NumCPU()}
}

// Engine is the adaptive parallel shortest-path engine. The frontier
// pop/push sequencing stays on a single thread, so nodes settle in exactly
// the order the sequential engine settles them; only the relaxation of one
// popped node's out-edges is ever parallelized.
type Engine struct {
	threshold int
	threads   int
}

func NewEngine(opts Options) *Engine {
	if opts.Threshold < 1 {
		opts.Threshold = DefaultThreshold
	}
	if opts.Threads < 1 {
		opts.Threads = runtime.NumCPU()
	}
	return &Engine{threshold: opts.Threshold, threads: opts.Threads}
}

// A tentative update discovered by a fan-out worker. Workers only propose;
// the main loop is the sole writer of the distance/predecessor tables.
type update struct {
	node int32
	dist int64
	prev int32
}

// One contiguous slice of the popped node's edge list, handed to a worker.
type fanTask struct {
	edges []graph.Edge
	dist  int64
	from  int32
}

// Per-run state shared between the main loop and the fan-out workers.
type parallelRun struct {
	res Result

	mu      sync.Mutex // guards updates; held only for the append
	updates []update

	tasks   chan fanTask
	barrier sync.WaitGroup
}

// Run computes shortest distances from source, value-equivalent to
// RunSequential on the same input. The graph must be validated and the
// source in range.
func (e *Engine) Run(g *graph.Graph, source int32) Result {
	if !g.Valid(source) {
		log.Panic().Msg("Source node out of range: " + utils.V(source))
	}
	r := &parallelRun{
		res:     newResult(g.NodeCount(), source),
		updates: make([]update, 0, 256),
		tasks:   make(chan fanTask, e.threads),
	}
	for t := 0; t < e.threads; t++ {
		go r.worker()
	}
	defer close(r.tasks)

	frontier := make(utils.PQ[frontierItem], 0, 64)
	frontier.Push(frontierItem{dist: 0, node: source})
	fanOuts := 0

	for len(frontier) > 0 {
		top := frontier.Pop()
		if top.dist != r.res.Dist[top.node] {
			continue // stale
		}
		edges := g.OutEdges[top.node]
		if len(edges) == 0 {
			continue
		}

		if len(edges) < e.threshold {
			// Low degree: thread coordination would cost more than it buys.
			for _, edge := range edges {
				if candidate := top.dist + edge.Weight; candidate < r.res.Dist[edge.To] {
					r.res.Dist[edge.To] = candidate
					r.res.Pred[edge.To] = top.node
					frontier.Push(frontierItem{dist: candidate, node: edge.To})
				}
			}
			continue
		}

		fanOuts++
		e.fanOut(r, edges, top.dist, top.node)

		// Serial commit: re-check each proposal against the authoritative
		// table. Two proposals for the same target computed from the same
		// snapshot can both look like improvements; only the first better
		// one commits, the rest become no-ops.
		for _, upd := range r.updates {
			if upd.dist < r.res.Dist[upd.node] {
				r.res.Dist[upd.node] = upd.dist
				r.res.Pred[upd.node] = upd.prev
				frontier.Push(frontierItem{dist: upd.dist, node: upd.node})
			}
		}
	}

	log.Trace().Msg("parallel fan-outs: " + utils.V(fanOuts))
	return r.res
}

// fanOut partitions edges across the worker pool and blocks until every
// worker has finished its slice. While workers run, the main loop performs
// no table writes, so workers read the distance table without locks.
func (e *Engine) fanOut(r *parallelRun, edges []graph.Edge, dist int64, from int32) {
	r.updates = r.updates[:0]
	chunk := (len(edges) + e.threads - 1) / e.threads
	for lo := 0; lo < len(edges); lo += chunk {
		hi := utils.Min(lo+chunk, len(edges))
		r.barrier.Add(1)
		r.tasks <- fanTask{edges: edges[lo:hi], dist: dist, from: from}
	}
	r.barrier.Wait()
}

func (r *parallelRun) worker() {
	for task := range r.tasks {
		var local []update
		for _, edge := range task.edges {
			// The distance computation and the improvement check run
			// outside any lock; the lock below guards only the append.
			if candidate := task.dist + edge.Weight; candidate < r.res.Dist[edge.To] {
				local = append(local, update{node: edge.To, dist: candidate, prev: task.from})
			}
		}
		if len(local) > 0 {
			r.mu.Lock()
			r.updates = append(r.updates, local...)
			r.mu.Unlock()
		}
		r.barrier.Done()
	}
}
