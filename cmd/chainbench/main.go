// Command chainbench reads a stock dataset and times insert, search and delete on a separate chaining hash table
// for the sorted, shuffled and reversed orderings of the data.
package main

import (
	"flag"
	"fmt"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/gostonefire/chaintable/benchmark"
	"github.com/gostonefire/chaintable/dataset"
	"github.com/gostonefire/chaintable/ordering"
	"github.com/gostonefire/chaintable/report"
	"io"
	"math/rand"
	"os"
	"time"
)

const usage = "Usage: chainbench [flags] <input file> <number of lines>"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run - Executes one invocation and returns the process exit status
func run(args []string, stdout, stderr io.Writer) int {
	var config Config
	fs := flag.NewFlagSet("chainbench", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		_, _ = fmt.Fprintln(stderr, usage)
		fs.PrintDefaults()
	}
	config.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if err := config.ParseArgs(fs.Args()); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		fs.Usage()
		return 1
	}
	if err := config.Validate(); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		fs.Usage()
		return 1
	}

	logger := newLogger(stderr, config.logLevel)

	if err := benchmarkFile(config, stdout, logger); err != nil {
		_ = level.Error(logger).Log("msg", "benchmark failed", "err", err)
		return 1
	}

	return 0
}

// benchmarkFile - Reads the dataset, runs all orderings and reports the results
func benchmarkFile(config Config, stdout io.Writer, logger log.Logger) error {
	records, err := dataset.ReadFile(config.inFile, config.numLines)
	if err != nil {
		return err
	}
	_ = level.Debug(logger).Log("msg", "dataset read", "file", config.inFile, "records", len(records))

	seed := config.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	_ = level.Debug(logger).Log("msg", "shuffle seed", "seed", seed)

	orderings := ordering.Build(records, rand.New(rand.NewSource(seed)))

	var runner benchmark.Runner
	results, err := runner.RunAll(orderings)
	if err != nil {
		return err
	}

	if err = report.WriteSummary(stdout, len(records), results); err != nil {
		return fmt.Errorf("error while writing summary: %w", err)
	}

	if err = report.AppendResults(config.resultsFile, results); err != nil {
		return err
	}
	_ = level.Info(logger).Log("msg", "results appended", "file", config.resultsFile, "orderings", len(results))

	return nil
}

// newLogger - Returns a logfmt logger on w filtered at levelName, which must already be validated
func newLogger(w io.Writer, levelName string) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	opt, _ := levelOption(levelName)
	logger = level.NewFilter(logger, opt)
	return log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
}
