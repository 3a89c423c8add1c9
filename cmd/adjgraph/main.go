// Command adjgraph builds an adjacency-list graph from a dataset, prints it
// and tears it down.
//
// With no arguments it uses the built-in six-vertex reference network:
//
//	adjgraph
//	adjgraph --dataset network.hcl --depth 2
//	ADJGRAPH_DEPTH=0 adjgraph --debug
//
// Settings resolve as flag > process environment > .env file > default.
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/go-logr/zapr"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/adjgraph/builder"
	"github.com/katalvlaran/adjgraph/core"
)

// Environment keys read as defaults for the matching flags.
const (
	envDataset = "ADJGRAPH_DATASET"
	envDepth   = "ADJGRAPH_DEPTH"
	envDebug   = "ADJGRAPH_DEBUG"
)

// errHandleLeak is returned when Release leaves the caller's handle set.
var errHandleLeak = errors.New("adjgraph: graph handle not cleared after release")

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "adjgraph:", err)
		os.Exit(1)
	}
}

// options is the resolved command configuration.
type options struct {
	dataset string
	depth   int
	strict  bool
	unique  bool
	debug   bool
}

// run is main without the process exit, for tests.
func run(stdout, stderr io.Writer, args []string) error {
	opts, err := parseOptions(args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	zl := newLogger(stderr, opts.debug)
	defer func() { _ = zl.Sync() }()

	ds := builder.Default()
	if opts.dataset != "" {
		if ds, err = builder.LoadFile(opts.dataset); err != nil {
			return err
		}
	}
	zl.Debug("dataset loaded",
		zap.String("name", ds.Name), zap.Stringer("kind", ds.Kind),
		zap.Int("vertices", len(ds.Vertices)), zap.Int("edges", len(ds.Edges)))

	bopts := []builder.BuilderOption{builder.WithLogger(zapr.NewLogger(zl))}
	if opts.strict {
		bopts = append(bopts, builder.WithStrictEdges())
	}
	if opts.unique {
		bopts = append(bopts, builder.WithUniquePayloads())
	}

	g, rep, err := builder.Build(ds, bopts...)
	if err != nil {
		return err
	}
	for _, s := range rep.Skipped {
		zl.Warn("edge not inserted", zap.Int("index", s.Index), zap.Stringer("edge", s.Pair), zap.Error(s.Err))
	}

	if err := g.Print(stdout, opts.depth); err != nil {
		core.Release(&g)
		return fmt.Errorf("print: %w", err)
	}

	core.Release(&g)
	if g != nil {
		return errHandleLeak
	}
	zl.Debug("graph released", zap.String("dataset", ds.Name))

	return nil
}

// parseOptions reads flags, then fills unset ones from the environment and
// the optional .env file.
func parseOptions(args []string, stderr io.Writer) (options, error) {
	var (
		opts    options
		envFile string
	)
	flags := pflag.NewFlagSet("adjgraph", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&opts.dataset, "dataset", "", "dataset file (.yaml, .yml, .hcl); built-in reference network when empty")
	flags.IntVarP(&opts.depth, "depth", "d", core.DepthNeighbors, "print depth: 0 summary, 1 neighbors, 2 entry identities")
	flags.BoolVar(&opts.strict, "strict", false, "fail when an edge names an unknown payload")
	flags.BoolVar(&opts.unique, "unique", false, "reject datasets with repeated payloads")
	flags.BoolVar(&opts.debug, "debug", false, "trace every adjacency entry")
	flags.StringVar(&envFile, "env-file", ".env", "dotenv file with ADJGRAPH_* defaults; ignored when missing")
	if err := flags.Parse(args); err != nil {
		return opts, err
	}
	if flags.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %v", flags.Args())
	}

	env, err := readEnvFile(envFile)
	if err != nil {
		return opts, err
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := env[key]
		return v, ok
	}

	if v, ok := lookup(envDataset); ok && !flags.Changed("dataset") {
		opts.dataset = v
	}
	if v, ok := lookup(envDepth); ok && !flags.Changed("depth") {
		if opts.depth, err = strconv.Atoi(v); err != nil {
			return opts, fmt.Errorf("%s=%q: %w", envDepth, v, err)
		}
	}
	if v, ok := lookup(envDebug); ok && !flags.Changed("debug") {
		if opts.debug, err = strconv.ParseBool(v); err != nil {
			return opts, fmt.Errorf("%s=%q: %w", envDebug, v, err)
		}
	}

	return opts, nil
}

// readEnvFile parses path with godotenv without touching the process
// environment. A missing file yields an empty map.
func readEnvFile(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	env, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("env file %s: %w", path, err)
	}

	return env, nil
}

// newLogger writes console-encoded logs to w: warnings and up by default,
// everything down to logr V(1) traces with debug.
func newLogger(w io.Writer, debug bool) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	level := zapcore.WarnLevel
	if debug {
		encCfg = zap.NewDevelopmentEncoderConfig()
		level = zapcore.DebugLevel
	}
	encCfg.TimeKey = ""

	zc := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)

	return zap.New(zc)
}
