// Package report writes benchmark results to the console and to the append-only results log.
package report

import (
	"fmt"
	"github.com/gostonefire/chaintable/benchmark"
	"io"
	"os"
	"strings"
)

// DefaultResultsFile - Name of the results log written next to where the program runs
const DefaultResultsFile = "analysis.txt"

// WriteSummary - Writes a human-readable summary of results to w
//   - n is the number of records evaluated
//   - results is one benchmark.Result per ordering
func WriteSummary(w io.Writer, n int, results []benchmark.Result) (err error) {
	_, err = fmt.Fprintf(w, "Number of lines evaluated: %d\n\n", n)
	if err != nil {
		return
	}

	for _, r := range results {
		_, err = fmt.Fprintf(w, "%s\nInsert: %.3f ms\nSearch: %.3f ms\nDelete: %.3f ms\n\n",
			strings.ToUpper(r.Ordering),
			benchmark.Milliseconds(r.Insert),
			benchmark.Milliseconds(r.Search),
			benchmark.Milliseconds(r.Delete),
		)
		if err != nil {
			return
		}
	}

	return
}

// FormatLine - Returns the results log line for r, "N,ordering,insert_ms,search_ms,delete_ms" without line break
func FormatLine(r benchmark.Result) string {
	return fmt.Sprintf("%d,%s,%.3f,%.3f,%.3f",
		r.N,
		r.Ordering,
		benchmark.Milliseconds(r.Insert),
		benchmark.Milliseconds(r.Search),
		benchmark.Milliseconds(r.Delete),
	)
}

// WriteResults - Writes one results log line per result to w
func WriteResults(w io.Writer, results []benchmark.Result) (err error) {
	for _, r := range results {
		_, err = fmt.Fprintln(w, FormatLine(r))
		if err != nil {
			return
		}
	}

	return
}

// AppendResults - Appends one line per result to the results log at path, creating it if it does not exist
func AppendResults(path string, results []benchmark.Result) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		err = fmt.Errorf("error while opening results file: %w", err)
		return
	}
	defer func(f *os.File) {
		if cErr := f.Close(); cErr != nil && err == nil {
			err = fmt.Errorf("error while closing results file: %w", cErr)
		}
	}(f)

	err = WriteResults(f, results)
	if err != nil {
		err = fmt.Errorf("error while writing results file: %w", err)
		return
	}

	return
}
