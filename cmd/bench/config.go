package main

import (
	"flag"

	"github.com/homily-archive/ngram-search/internal/bench"
)

type cliConfig struct {
	SuitePath  string
	DBPath     string
	Iterations int
	Warmup     int
}

func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.SuitePath, "suite", "configs/bench/queries.yaml", "Path to query suite YAML")
	flag.StringVar(&cfg.DBPath, "db", "", "SQLite database path (defaults to SQLITE_PATH)")
	flag.IntVar(&cfg.Iterations, "iterations", bench.DefaultIterations, "Number of measured iterations per query")
	flag.IntVar(&cfg.Warmup, "warmup", bench.DefaultWarmup, "Number of warmup runs before measurement")

	flag.Parse()
	return cfg
}
