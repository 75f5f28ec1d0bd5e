//go:build stress

package test

import (
	"fmt"
	"github.com/gostonefire/chaintable"
	"github.com/gostonefire/chaintable/benchmark"
	"github.com/gostonefire/chaintable/dataset"
	"github.com/gostonefire/chaintable/ordering"
	"github.com/gostonefire/chaintable/stock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

func randomSymbol(rng *rand.Rand) string {
	b := make([]byte, 8)
	for i := range b {
		b[i] = letters[rng.Intn(len(letters))]
	}
	return string(b)
}

// createAndStoreTestdata - Writes amount lines of unique random symbols with prices to fileName
func createAndStoreTestdata(amount int, fileName string, rng *rand.Rand) error {
	f, err := os.OpenFile(fileName, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer func(f *os.File) { _ = f.Close() }(f)

	seen := make(map[string]bool, amount)
	for len(seen) < amount {
		symbol := randomSymbol(rng)
		if seen[symbol] {
			continue
		}
		seen[symbol] = true
		_, err = fmt.Fprintf(f, "%s,%.2f\n", symbol, rng.Float64()*1000)
		if err != nil {
			return err
		}
	}

	return nil
}

func TestStress(t *testing.T) {
	t.Run("benchmarks a large dataset from file", func(t *testing.T) {
		// Prepare
		rng := rand.New(rand.NewSource(1))
		fileName := filepath.Join(t.TempDir(), "stress.csv")
		err := createAndStoreTestdata(200000, fileName, rng)
		require.NoError(t, err, "creates test data")

		records, err := dataset.ReadFile(fileName, 200000)
		require.NoError(t, err, "reads test data")
		require.Len(t, records, 200000, "all records read")

		var runner benchmark.Runner

		// Execute
		results, err := runner.RunAll(ordering.Build(records, rng))

		// Check
		assert.NoError(t, err, "runs all orderings")
		assert.Len(t, results, 3, "one result per ordering")
		for _, r := range results {
			t.Logf("%s: insert %.3f ms, search %.3f ms, delete %.3f ms", r.Ordering,
				benchmark.Milliseconds(r.Insert), benchmark.Milliseconds(r.Search), benchmark.Milliseconds(r.Delete))
		}
	})

	t.Run("chains stay short at load factor one half", func(t *testing.T) {
		// Prepare
		rng := rand.New(rand.NewSource(2))
		n := 100000
		table, err := chaintable.NewSeparateChainingHashTable[stock.Stock](benchmark.TableCapacity(n))
		require.NoError(t, err, "creates table")

		// Execute
		for table.Len() < int64(n) {
			err = table.Insert(stock.New(randomSymbol(rng), 1.0))
			require.NoError(t, err, "inserts stock")
		}

		// Check
		stat := table.Stat(false)
		assert.Equal(t, int64(n), stat.Records, "all records stored")
		assert.Less(t, stat.LongestChain, int64(16), "no degenerate chain")
		assert.InDelta(t, 0.5, table.GetTableInfo().LoadFactor, 0.01, "load factor about one half")
	})

	t.Run("undersized table still holds everything", func(t *testing.T) {
		// Prepare
		rng := rand.New(rand.NewSource(3))
		table, err := chaintable.NewSeparateChainingHashTable[stock.Stock](3)
		require.NoError(t, err, "creates table")

		stocks := make([]stock.Stock, 0, 5000)
		for len(stocks) < 5000 {
			s := stock.New(randomSymbol(rng), 1.0)
			if found, _ := table.Contains(s); found {
				continue
			}
			require.NoError(t, table.Insert(s), "inserts stock")
			stocks = append(stocks, s)
		}

		// Execute and Check
		for _, s := range stocks {
			removed, err := table.Remove(s)
			require.NoError(t, err, "removes stock")
			require.Truef(t, removed, "%s removed", s.Symbol)
		}
		assert.Equal(t, int64(0), table.Len(), "table empty")
	})
}
