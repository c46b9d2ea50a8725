package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"kdtree"
	"kdtree/internal/bruteforce"
	"kdtree/internal/config"
)

// Distances from the reference index are float32; allow for the rounding.
const tolerance = 1e-3

func main() {
	configPath := flag.String("config", "", "Path to YAML config (default: configs/kdtree.yaml, kdtree.yaml)")
	n := flag.Int("n", 0, "Number of random points to insert")
	k := flag.Int("k", 0, "Point dimension")
	queries := flag.Int("queries", 0, "Number of random Find/Nearest checks")
	seed := flag.Int64("seed", 0, "Random seed (0: time based)")
	dump := flag.Bool("dump", true, "Print the tree after building it")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "n":
			cfg.Points = *n
		case "k":
			cfg.Dimensions = *k
		case "queries":
			cfg.Queries = *queries
		case "seed":
			cfg.Seed = *seed
		case "dump":
			cfg.Dump = *dump
		}
	})

	logger := newLogger(cfg, os.Stderr)
	mismatches, err := run(cfg, os.Stdout, logger)
	if err != nil {
		log.Fatalf("Run failed: %v", err)
	}
	if mismatches > 0 {
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// run builds a tree from random points, cross-checks it against a linear scan
// and returns the number of disagreements.
func run(cfg *config.Config, out io.Writer, logger *slog.Logger) (int, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	logger.Info("building tree",
		"points", cfg.Points, "dimensions", cfg.Dimensions,
		"min", cfg.Min, "max", cfg.Max, "seed", cfg.Seed)

	tree, err := kdtree.New[int](cfg.Dimensions)
	if err != nil {
		return 0, err
	}
	var ref bruteforce.Index[int]

	randomPoint := func() (kdtree.Point[int], error) {
		coords := make([]int, cfg.Dimensions)
		for i := range coords {
			coords[i] = cfg.Min + rng.Intn(cfg.Max-cfg.Min+1)
		}
		return kdtree.NewPoint(cfg.Dimensions, coords...)
	}

	inserted := make([]kdtree.Point[int], 0, cfg.Points)
	start := time.Now()
	for i := 0; i < cfg.Points; i++ {
		p, err := randomPoint()
		if err != nil {
			return 0, err
		}
		if err := tree.Insert(p); err != nil {
			return 0, err
		}
		ref.Add(p)
		inserted = append(inserted, p)
	}
	logger.Info("tree built", "len", tree.Len(), "height", tree.Height(), "took", time.Since(start))

	mismatches := 0
	for _, p := range inserted {
		found, err := tree.Find(p)
		if err != nil {
			return 0, err
		}
		if !found {
			logger.Error("inserted point not found", "point", p.String())
			mismatches++
		}
	}

	for i := 0; i < cfg.Queries; i++ {
		q, err := randomPoint()
		if err != nil {
			return mismatches, err
		}
		found, err := tree.Find(q)
		if err != nil {
			return mismatches, err
		}
		want := ref.Contains(q)
		logger.Debug("find", "query", q.String(), "tree", found, "reference", want)
		if found != want {
			logger.Error("find mismatch", "query", q.String(), "tree", found, "reference", want)
			mismatches++
		}

		if ref.Len() == 0 {
			continue
		}
		got, err := tree.Nearest(q)
		if err != nil {
			return mismatches, err
		}
		refPoint, refDist, err := ref.Nearest(q)
		if err != nil {
			return mismatches, err
		}
		gotDist := bruteforce.Distance(got, q)
		logger.Debug("nearest", "query", q.String(), "tree", got.String(), "reference", refPoint.String())
		if diff := gotDist - refDist; diff > tolerance || diff < -tolerance {
			logger.Error("nearest mismatch",
				"query", q.String(),
				"tree", got.String(), "tree_distance", gotDist,
				"reference", refPoint.String(), "reference_distance", refDist)
			mismatches++
		}
	}
	logger.Info("checks done", "queries", cfg.Queries, "mismatches", mismatches)

	if cfg.Dump {
		if err := tree.Fprint(out); err != nil {
			return mismatches, fmt.Errorf("dump tree: %w", err)
		}
	}
	return mismatches, nil
}
