//go:build unit

package ordering

import (
	"github.com/google/go-cmp/cmp"
	"github.com/gostonefire/chaintable/stock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math/rand"
	"slices"
	"testing"
)

func symbolsOf(records []stock.Stock) []string {
	result := make([]string, len(records))
	for i, r := range records {
		result[i] = r.Symbol
	}
	return result
}

func TestBuild(t *testing.T) {
	t.Run("three stocks scenario", func(t *testing.T) {
		// Prepare
		records := []stock.Stock{stock.New("AAPL", 150.0), stock.New("MSFT", 300.0), stock.New("GOOG", 140.0)}

		// Execute
		orderings := Build(records, rand.New(rand.NewSource(1)))

		// Check
		require.Len(t, orderings, 3, "three orderings")
		assert.Equal(t, Sorted, orderings[0].Name, "first is sorted")
		assert.Equal(t, Shuffled, orderings[1].Name, "second is shuffled")
		assert.Equal(t, Reversed, orderings[2].Name, "third is reversed")
		assert.Equal(t, []string{"AAPL", "GOOG", "MSFT"}, symbolsOf(orderings[0].Records), "sorted ascending")
		assert.Equal(t, []string{"MSFT", "GOOG", "AAPL"}, symbolsOf(orderings[2].Records), "sorted descending")
		assert.Equal(t, []string{"AAPL", "MSFT", "GOOG"}, symbolsOf(records), "input untouched")
	})

	t.Run("shuffled is a permutation of sorted", func(t *testing.T) {
		// Prepare
		rng := rand.New(rand.NewSource(7))
		records := make([]stock.Stock, 500)
		for i := range records {
			records[i] = stock.New(string(rune('A'+i%26))+string(rune('A'+i/26)), float64(i))
		}

		// Execute
		orderings := Build(records, rng)

		// Check
		shuffled := symbolsOf(orderings[1].Records)
		assert.NotEqual(t, symbolsOf(orderings[0].Records), shuffled, "shuffled differs from sorted")
		slices.Sort(shuffled)
		assert.Empty(t, cmp.Diff(symbolsOf(orderings[0].Records), shuffled), "same elements as sorted")
	})

	t.Run("same seed gives same shuffle", func(t *testing.T) {
		// Prepare
		records := []stock.Stock{stock.New("A", 1), stock.New("B", 2), stock.New("C", 3), stock.New("D", 4), stock.New("E", 5)}

		// Execute
		first := Build(records, rand.New(rand.NewSource(3)))
		second := Build(records, rand.New(rand.NewSource(3)))

		// Check
		assert.Equal(t, first[1].Records, second[1].Records, "deterministic shuffle")
	})

	t.Run("empty dataset gives empty orderings", func(t *testing.T) {
		// Execute
		orderings := Build(nil, rand.New(rand.NewSource(1)))

		// Check
		require.Len(t, orderings, 3, "three orderings")
		for _, o := range orderings {
			assert.Emptyf(t, o.Records, "%s is empty", o.Name)
		}
	})
}
