package workload

import (
	"fmt"
	"github.com/Pallinder/go-randomdata"
	"github.com/google/uuid"
	"github.com/gostonefire/linkedds/bucketmap"
	"github.com/gostonefire/linkedds/graph"
	"github.com/gostonefire/linkedds/hashfunc"
	"github.com/gostonefire/linkedds/internal/conf"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"
	"io"
)

// Report - What running a workload produced
//   - MapStat is the bucket map statistics, nil if the workload has no map block
//   - Puts is the number of Put calls made
//   - Duplicates is the number of Puts that overwrote a key generated before
//   - Removed is the number of entries actually removed
//   - Adjacency is the adjacency matrix of the graph, nil if there is no graph block or it has no nodes
type Report struct {
	MapStat    *bucketmap.Stat
	Puts       int
	Duplicates int
	Removed    int
	Adjacency  *mat.Dense
}

// Runner - Executes workloads, writing results to out and progress to logger
type Runner struct {
	out          io.Writer
	logger       zerolog.Logger
	distribution bool
}

// NewRunner - Returns a pointer to a new Runner
//   - out is where the statistics and the adjacency matrix are printed
//   - logger receives progress logging
//   - distribution set to true includes the per bucket entry counts in the statistics
func NewRunner(out io.Writer, logger zerolog.Logger, distribution bool) *Runner {
	return &Runner{out: out, logger: logger, distribution: distribution}
}

// Run - Executes the map block and then the graph block of workload
func (R *Runner) Run(workload *Workload) (report Report, err error) {
	if workload.Map != nil {
		err = R.runMap(workload.Map, &report)
		if err != nil {
			err = fmt.Errorf("error while running map block: %w", err)
			return
		}
	}

	if workload.Graph != nil {
		err = R.runGraph(workload.Graph, &report)
		if err != nil {
			err = fmt.Errorf("error while running graph block: %w", err)
			return
		}
	}

	return
}

// runMap - Fills a bucket map with generated keys, removes some of them again and prints statistics
func (R *Runner) runMap(block *MapBlock, report *Report) (err error) {
	buckets := block.Buckets
	if buckets == 0 {
		buckets = conf.DefaultBuckets
	}

	mapConf := bucketmap.Conf[string]{Buckets: buckets}
	if block.Hash == HashCRC32 {
		mapConf.HashAlgorithm = hashfunc.NewCRC32(hashfunc.StringKey)
	}

	m, err := bucketmap.NewFromConf[string, int](mapConf)
	if err != nil {
		return
	}

	generate := keyGenerator(block.Generator)
	keys := make([]string, block.Keys)
	for i := range keys {
		keys[i] = generate(i)
		m.Put(keys[i], i)
		report.Puts++
	}
	report.Duplicates = report.Puts - m.Len()
	R.logger.Info().Int("buckets", buckets).Int("puts", report.Puts).Int("duplicates", report.Duplicates).
		Int("entries", m.Len()).Msg("map filled")

	for _, key := range keys[:block.Remove] {
		if _, ok := m.Remove(key); ok {
			report.Removed++
		}
	}
	if block.Remove > 0 {
		R.logger.Info().Int("removed", report.Removed).Int("entries", m.Len()).Msg("keys removed")
	}

	stat := m.Stat(R.distribution)
	report.MapStat = &stat

	_, err = fmt.Fprintf(R.out, "entries: %d\nbuckets: %d\nused buckets: %d\nlongest chain: %d\nload factor: %.3f\n",
		stat.Entries, stat.Buckets, stat.UsedBuckets, stat.LongestChain, stat.LoadFactor)
	if err != nil {
		return
	}
	if R.distribution {
		_, err = fmt.Fprintf(R.out, "distribution: %v\n", stat.BucketDistribution)
	}

	return
}

// runGraph - Builds the graph by node names and prints its adjacency matrix
func (R *Runner) runGraph(block *GraphBlock, report *Report) (err error) {
	g := graph.WithCapacity[string](len(block.Nodes))
	ids := bucketmap.WithCapacity[string, graph.NodeID](len(block.Nodes))

	for _, name := range block.Nodes {
		if ids.Contains(name) {
			err = fmt.Errorf("duplicate node name %q", name)
			return
		}
		ids.Put(name, g.NewNode(name))
	}

	for _, line := range block.Lines {
		from, ok := ids.Get(line.From)
		if !ok {
			err = fmt.Errorf("line source %q is not a node", line.From)
			return
		}
		to, ok := ids.Get(line.To)
		if !ok {
			err = fmt.Errorf("line target %q is not a node", line.To)
			return
		}
		err = g.AddLine(from, to)
		if err != nil {
			return
		}
		R.logger.Debug().Str("from", line.From).Str("to", line.To).Msg("line added")
	}
	R.logger.Info().Int("nodes", g.Len()).Int("lines", len(block.Lines)).Msg("graph built")

	report.Adjacency = g.AdjacencyMatrix()
	if report.Adjacency == nil {
		return
	}

	_, err = fmt.Fprintf(R.out, "nodes: %v\nadjacency:\n%v\n", block.Nodes, mat.Formatted(report.Adjacency, mat.Squeeze()))

	return
}

// keyGenerator - Returns the key generator for name, index i is the number of the key generated
func keyGenerator(name string) func(i int) string {
	switch name {
	case GeneratorUUID:
		return func(int) string { return uuid.NewString() }
	case GeneratorName:
		return func(int) string { return randomdata.SillyName() }
	default:
		return func(i int) string { return fmt.Sprintf("key%d", i) }
	}
}
