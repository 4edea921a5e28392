package batch

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Runner solves a list of files on a bounded number of goroutines.
type Runner struct {
	// Workers is the number of files solved concurrently; values < 1 mean 1.
	Workers int
	// Options apply to every ProcessFile call.
	Options []Option
	Logger  zerolog.Logger
}

// Run solves paths and returns one result per path, in input order. Files
// not started before ctx is done get ctx.Err() as their Err, and Run
// returns that error too.
func (r *Runner) Run(ctx context.Context, paths []string) ([]FileResult, error) {
	runID := ulid.Make().String()
	log := r.Logger.With().Str("run_id", runID).Logger()

	workers := r.Workers
	if workers < 1 {
		workers = 1
	}
	log.Info().Int("files", len(paths)).Int("workers", workers).Msg("batch started")
	start := time.Now()

	opts := append(append([]Option(nil), r.Options...), WithLogger(log))
	results := make([]FileResult, len(paths))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = FileResult{Path: path, Err: err}
				return nil
			}
			results[i] = ProcessFile(path, opts...)
			logResult(log, results[i])
			return nil
		})
	}
	_ = g.Wait()

	var failed int
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}
	log.Info().Int("failed", failed).Dur("elapsed", time.Since(start)).Msg("batch finished")

	return results, ctx.Err()
}

func logResult(log zerolog.Logger, res FileResult) {
	if res.Err != nil {
		log.Error().Err(res.Err).Str("file", res.Path).Msg("file failed")
		return
	}
	log.Debug().
		Str("file", res.Path).
		Int("nodes", res.Nodes).
		Int("edges", res.Edges).
		Int64("max_flow", res.MaxFlow).
		Int("augmentations", res.Augmentations).
		Dur("parse", res.ParseTime).
		Dur("algorithm", res.AlgoTime).
		Msg("file solved")
}
