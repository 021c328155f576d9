package bench

import (
	"context"
	"log/slog"
	"time"

	"github.com/homily-archive/ngram-search/internal/engine"
)

const (
	DefaultIterations = 20
	DefaultWarmup     = 2
)

type Config struct {
	Iterations int
	Warmup     int
}

func DefaultConfig() Config {
	return Config{
		Iterations: DefaultIterations,
		Warmup:     DefaultWarmup,
	}
}

type QueryResult struct {
	Query  Query
	Stats  LatencyStats
	Errors int
}

type Result struct {
	Suite     string
	Config    Config
	Queries   []QueryResult
	Aggregate LatencyStats
}

// Run times every suite query against the engine. Failing searches are
// counted per query instead of aborting the run, so one bad query does not
// cost the whole suite; only cancellation stops it.
func Run(ctx context.Context, eng *engine.Engine, suite *Suite, cfg Config) (*Result, error) {
	if cfg.Iterations <= 0 {
		cfg.Iterations = DefaultIterations
	}
	if cfg.Warmup < 0 {
		cfg.Warmup = 0
	}

	result := &Result{
		Suite:   suite.Name,
		Config:  cfg,
		Queries: make([]QueryResult, 0, len(suite.Queries)),
	}

	for _, q := range suite.Queries {
		qr := QueryResult{Query: q}
		domainCfg := q.Config.Domain()

		for i := 0; i < cfg.Warmup; i++ {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			_, _ = eng.Search(ctx, q.Term, domainCfg)
		}

		durations := make([]time.Duration, 0, cfg.Iterations)
		for i := 0; i < cfg.Iterations; i++ {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			start := time.Now()
			_, err := eng.Search(ctx, q.Term, domainCfg)
			if err != nil {
				qr.Errors++
				continue
			}
			durations = append(durations, time.Since(start))
		}

		qr.Stats = ComputeLatencyStats(durations)
		result.Queries = append(result.Queries, qr)
		slog.Debug("query timed", "term", q.Term, "samples", qr.Stats.SampleCount, "errors", qr.Errors)
	}

	allStats := make([]LatencyStats, 0, len(result.Queries))
	for _, qr := range result.Queries {
		allStats = append(allStats, qr.Stats)
	}
	result.Aggregate = MergeLatencyStats(allStats)

	return result, nil
}
