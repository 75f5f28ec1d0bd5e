// Package benchmark times insert, search and delete passes over a fresh SeparateChainingHashTable per ordering.
package benchmark

import (
	"fmt"
	"github.com/gostonefire/chaintable"
	"github.com/gostonefire/chaintable/ordering"
	"github.com/gostonefire/chaintable/stock"
	"time"
)

// Result - Timings of one benchmark run over one ordering
//   - N is the number of records in the ordering
//   - Ordering is the name of the ordering
//   - Insert, Search and Delete are the elapsed time of each full pass
type Result struct {
	N        int
	Ordering string
	Insert   time.Duration
	Search   time.Duration
	Delete   time.Duration
}

// Milliseconds - Returns d as fractional milliseconds
func Milliseconds(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1_000_000.0
}

// Runner - Runs benchmark passes. The zero value is ready to use and measures with time.Now.
type Runner struct {
	now func() time.Time
}

// NewRunner - Returns a Runner measuring with the given clock, nil means time.Now
func NewRunner(now func() time.Time) *Runner {
	return &Runner{now: now}
}

// TableCapacity - Returns the number of buckets used for n records, 2n+1
func TableCapacity(n int) int64 {
	return 2*int64(n) + 1
}

// RunAll - Runs every ordering on its own table and returns one Result per ordering, in the same order
func (R *Runner) RunAll(orderings []ordering.Ordering) (results []Result, err error) {
	results = make([]Result, 0, len(orderings))
	for _, o := range orderings {
		var result Result
		result, err = R.Run(o)
		if err != nil {
			results = nil
			return
		}
		results = append(results, result)
	}

	return
}

// Run - Creates a new table sized for the ordering, then inserts, searches and deletes every record in order,
// timing each pass.
//
// It returns:
//   - result holds the elapsed time of each pass
//   - err is a standard error if a table operation failed or the table was left in an unexpected state
func (R *Runner) Run(o ordering.Ordering) (result Result, err error) {
	table, err := chaintable.NewSeparateChainingHashTable[stock.Stock](TableCapacity(len(o.Records)))
	if err != nil {
		return
	}

	result = Result{N: len(o.Records), Ordering: o.Name}

	result.Insert, err = R.timePass(func() error { return insertPass(table, o.Records) })
	if err != nil {
		err = fmt.Errorf("error while inserting %s records: %w", o.Name, err)
		return
	}
	if want := distinctSymbols(o.Records); table.Len() != want {
		err = fmt.Errorf("table holds %d records after inserting %s records, expected %d", table.Len(), o.Name, want)
		return
	}

	result.Search, err = R.timePass(func() error { return searchPass(table, o.Records) })
	if err != nil {
		err = fmt.Errorf("error while searching %s records: %w", o.Name, err)
		return
	}

	result.Delete, err = R.timePass(func() error { return deletePass(table, o.Records) })
	if err != nil {
		err = fmt.Errorf("error while deleting %s records: %w", o.Name, err)
		return
	}
	if table.Len() != 0 {
		err = fmt.Errorf("table holds %d records after deleting %s records", table.Len(), o.Name)
		return
	}

	return
}

// timePass - Runs pass and returns its elapsed time using the monotonic clock
func (R *Runner) timePass(pass func() error) (elapsed time.Duration, err error) {
	now := R.now
	if now == nil {
		now = time.Now
	}

	start := now()
	err = pass()
	elapsed = now().Sub(start)

	return
}

func insertPass(table *chaintable.SeparateChainingHashTable[stock.Stock], records []stock.Stock) error {
	for _, s := range records {
		if err := table.Insert(s); err != nil {
			return err
		}
	}
	return nil
}

func searchPass(table *chaintable.SeparateChainingHashTable[stock.Stock], records []stock.Stock) error {
	for _, s := range records {
		found, err := table.Contains(s)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%s not found", s.Symbol)
		}
	}
	return nil
}

func deletePass(table *chaintable.SeparateChainingHashTable[stock.Stock], records []stock.Stock) error {
	for _, s := range records {
		if _, err := table.Remove(s); err != nil {
			return err
		}
	}
	return nil
}

// distinctSymbols - Returns the number of different symbols in records
func distinctSymbols(records []stock.Stock) int64 {
	seen := make(map[string]struct{}, len(records))
	for _, s := range records {
		seen[s.Symbol] = struct{}{}
	}
	return int64(len(seen))
}
