package main

import (
	"flag"
	"fmt"
	"github.com/go-kit/log/level"
	"strconv"
)

// Config - Settings of one invocation, from flags and the two positional arguments
type Config struct {
	inFile      string
	numLines    int
	resultsFile string
	seed        int64
	logLevel    string
}

// RegisterFlags - Registers the optional flags on f
func (c *Config) RegisterFlags(f *flag.FlagSet) {
	f.StringVar(&c.resultsFile, "out", "analysis.txt", "results log to append timings to")
	f.Int64Var(&c.seed, "seed", 0, "seed for the shuffled ordering, 0 picks one from the clock")
	f.StringVar(&c.logLevel, "log.level", "info", "log level: debug, info, warn or error")
}

// ParseArgs - Sets the input file and number of lines from the positional arguments
func (c *Config) ParseArgs(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("expected 2 arguments, got %d", len(args))
	}

	n, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("number of lines %q is not an integer", args[1])
	}

	c.inFile = args[0]
	c.numLines = n

	return nil
}

// Validate - Returns an error if the configuration can't be used
func (c *Config) Validate() error {
	if c.inFile == "" {
		return fmt.Errorf("input file must not be empty")
	}
	if c.numLines < 0 {
		return fmt.Errorf("number of lines must be 0 (zero) or higher, got %d", c.numLines)
	}
	if c.resultsFile == "" {
		return fmt.Errorf("results file (out) must not be empty")
	}
	if _, err := levelOption(c.logLevel); err != nil {
		return err
	}
	return nil
}

// levelOption - Returns the go-kit level filter for name
func levelOption(name string) (level.Option, error) {
	switch name {
	case "debug":
		return level.AllowDebug(), nil
	case "info":
		return level.AllowInfo(), nil
	case "warn":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	}
	return nil, fmt.Errorf("unknown log level %q", name)
}
