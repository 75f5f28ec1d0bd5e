//go:build unit || integration

package report

import (
	"github.com/gostonefire/chaintable/benchmark"
	"time"
)

func testResults() []benchmark.Result {
	return []benchmark.Result{
		{N: 3, Ordering: "sorted", Insert: 1234567 * time.Nanosecond, Search: 500 * time.Microsecond, Delete: 2 * time.Millisecond},
		{N: 3, Ordering: "shuffled", Insert: time.Millisecond, Search: 1600 * time.Nanosecond, Delete: 0},
		{N: 3, Ordering: "reversed", Insert: 10 * time.Millisecond, Search: 20 * time.Millisecond, Delete: 30 * time.Millisecond},
	}
}
