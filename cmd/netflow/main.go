// Command netflow computes maximum flows of edge-list networks.
//
//	netflow [flags] file1.txt file2.txt ...   process specific files
//	netflow -d dir                            process every .txt file in dir
//	netflow -a                                process ladder_*.txt and bridge_*.txt
//	netflow -gen ladder -n 50 [-o file]       write a generated network
//	netflow -serve :8080                      serve the HTTP API
//
// Source is node 0 and sink is the last node of every file.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/netflow/batch"
	"github.com/katalvlaran/netflow/builder"
	"github.com/katalvlaran/netflow/config"
	"github.com/katalvlaran/netflow/edgelist"
	"github.com/katalvlaran/netflow/server"
)

const defaultFile = "network.txt"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

type cliFlags struct {
	configPath string
	dir        string
	all        bool

	gen    string
	n      int
	out    string
	seed   int64
	prob   float64
	maxCap int64

	serve string
}

// run is main without process exit, returning the exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("netflow", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var f cliFlags
	fs.StringVar(&f.configPath, "config", "", "config file (yaml, json or toml)")
	fs.StringVar(&f.dir, "d", "", "process every .txt file in `dir`")
	fs.BoolVar(&f.all, "a", false, "process ladder_*.txt and bridge_*.txt in the working directory")
	fs.StringVar(&f.gen, "gen", "", "generate a network: ladder, bridge, chain, parallel or random")
	fs.IntVar(&f.n, "n", 10, "size of the generated network (rungs, gadgets, nodes or paths)")
	fs.StringVar(&f.out, "o", "", "output file for -gen (default <kind>_<n>.txt)")
	fs.Int64Var(&f.seed, "seed", 1, "random seed for -gen")
	fs.Float64Var(&f.prob, "p", 0.1, "edge probability for -gen random")
	fs.Int64Var(&f.maxCap, "max-cap", 100, "capacities for -gen are drawn from [1, max-cap]")
	fs.StringVar(&f.serve, "serve", "", "serve the HTTP API on `addr`")
	fs.String("csv", "", "CSV output path (batch.csv_path)")
	fs.String("backend", "", "network backend: auto, dense or sparse (solver.backend)")
	fs.String("duplicates", "", "duplicate edge policy: overwrite, sum or reject (solver.duplicate_policy)")
	fs.Int("workers", 0, "files solved concurrently (batch.workers)")
	fs.Bool("trace", false, "record augmenting paths (solver.trace)")
	fs.Int("max-nodes", 0, "largest node count a network may declare (solver.max_nodes)")
	fs.String("log-level", "", "log level (logging.level)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg := config.NewConfig()
	if f.configPath != "" {
		if err := cfg.LoadFromFile(f.configPath); err != nil {
			fmt.Fprintf(stderr, "netflow: %v\n", err)
			return 1
		}
	}
	overrideFromFlags(cfg, fs)
	log := cfg.NewLogger(stderr)

	switch {
	case f.gen != "":
		return generate(f, stdout, stderr)
	case f.serve != "":
		return serve(ctx, cfg, log, f.serve, stderr)
	}

	return process(ctx, cfg, log, f, fs.Args(), stdout, stderr)
}

// overrideFromFlags copies explicitly set flags over config values.
func overrideFromFlags(cfg *config.Config, fs *flag.FlagSet) {
	keys := map[string]string{
		"csv":        "batch.csv_path",
		"backend":    "solver.backend",
		"duplicates": "solver.duplicate_policy",
		"workers":    "batch.workers",
		"trace":      "solver.trace",
		"max-nodes":  "solver.max_nodes",
		"log-level":  "logging.level",
	}
	fs.Visit(func(fl *flag.Flag) {
		if key, ok := keys[fl.Name]; ok {
			cfg.Set(key, fl.Value.String())
		}
	})
}

func process(ctx context.Context, cfg *config.Config, log zerolog.Logger, f cliFlags, args []string, stdout, stderr io.Writer) int {
	var (
		paths    []string
		writeCSV bool
		err      error
	)
	switch {
	case f.dir != "":
		paths, err = batch.DirFiles(f.dir)
		writeCSV = true
	case f.all:
		paths, err = batch.BenchmarkFiles(".")
		writeCSV = true
	case len(args) == 0:
		printUsage(stdout)
		paths = []string{defaultFile}
	default:
		paths = args
		writeCSV = len(args) > 1
	}
	if err != nil {
		fmt.Fprintf(stderr, "netflow: %v\n", err)
		return 1
	}
	if len(paths) == 0 {
		fmt.Fprintln(stdout, "No files to process. Please check your arguments.")
		return 0
	}

	backend, err := cfg.Backend()
	if err != nil {
		fmt.Fprintf(stderr, "netflow: %v\n", err)
		return 2
	}
	policy, err := cfg.DuplicatePolicy()
	if err != nil {
		fmt.Fprintf(stderr, "netflow: %v\n", err)
		return 2
	}

	report := batch.Report{VerboseLimit: cfg.VerboseLimit(), DetailNodeLimit: cfg.DetailNodeLimit()}
	verbose := report.Verbose(len(paths))
	if len(paths) > 1 {
		fmt.Fprintf(stdout, "Processing %d files...\n", len(paths))
	}

	runner := &batch.Runner{
		Workers: cfg.Workers(),
		Logger:  log,
		Options: []batch.Option{
			batch.WithBackend(backend),
			batch.WithDuplicatePolicy(policy),
			batch.WithTrace(cfg.Trace() || verbose),
			batch.WithMaxNodes(cfg.MaxNodes()),
		},
	}
	results, runErr := runner.Run(ctx, paths)
	if err = report.Render(stdout, results); err != nil {
		fmt.Fprintf(stderr, "netflow: %v\n", err)
		return 1
	}

	if writeCSV {
		if err = batch.WriteCSVFile(cfg.CSVPath(), results); err != nil {
			fmt.Fprintf(stderr, "netflow: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "\nResults saved to %s\n", cfg.CSVPath())
	}

	if runErr != nil {
		return 1
	}
	for _, r := range results {
		if r.Err != nil {
			return 1
		}
	}

	return 0
}

func generate(f cliFlags, stdout, stderr io.Writer) int {
	var cons builder.Constructor
	switch f.gen {
	case "ladder":
		cons = builder.Ladder(f.n)
	case "bridge":
		cons = builder.Bridge(f.n)
	case "chain":
		cons = builder.Chain(f.n)
	case "parallel":
		cons = builder.Parallel(f.n, 3)
	case "random":
		cons = builder.RandomSparse(f.n, f.prob)
	default:
		fmt.Fprintf(stderr, "netflow: unknown generator %q\n", f.gen)
		return 2
	}
	if f.maxCap < 1 {
		fmt.Fprintf(stderr, "netflow: -max-cap must be ≥ 1, got %d\n", f.maxCap)
		return 2
	}

	doc, err := builder.Build(cons, builder.WithSeed(f.seed), builder.WithUniformCapacity(1, f.maxCap))
	if err != nil {
		fmt.Fprintf(stderr, "netflow: %v\n", err)
		return 1
	}
	out := f.out
	if out == "" {
		out = fmt.Sprintf("%s_%d.txt", f.gen, f.n)
	}
	if err = edgelist.WriteFile(out, doc); err != nil {
		fmt.Fprintf(stderr, "netflow: %v\n", err)
		return 1
	}
	fmt.Fprintf(stdout, "Wrote %s: %d nodes, %d edges\n", out, doc.Nodes, len(doc.Edges))

	return 0
}

func serve(ctx context.Context, cfg *config.Config, log zerolog.Logger, addr string, stderr io.Writer) int {
	backend, err := cfg.Backend()
	if err != nil {
		fmt.Fprintf(stderr, "netflow: %v\n", err)
		return 2
	}
	policy, err := cfg.DuplicatePolicy()
	if err != nil {
		fmt.Fprintf(stderr, "netflow: %v\n", err)
		return 2
	}

	srv := server.New(server.Options{
		Backend:      backend,
		Policy:       policy,
		MaxBodyBytes: cfg.MaxBodyBytes(),
		MaxNodes:     cfg.MaxNodes(),
		Logger:       log,
	})
	if err = srv.ListenAndServe(ctx, addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		return 1
	}

	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage options:")
	fmt.Fprintln(w, "1. netflow file1.txt file2.txt ... - Process specific files")
	fmt.Fprintln(w, "2. netflow -d directory - Process all .txt files in directory")
	fmt.Fprintln(w, "3. netflow -a - Process all benchmark files (ladder_*.txt and bridge_*.txt)")
	fmt.Fprintln(w, "4. netflow -gen ladder|bridge|chain|parallel|random -n N - Generate a network")
	fmt.Fprintln(w, "5. netflow -serve :8080 - Serve the HTTP API")
	fmt.Fprintf(w, "\nRunning with default file '%s'\n", defaultFile)
}
