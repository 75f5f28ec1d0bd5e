// Package ordering builds the three input permutations a benchmark run is made of.
package ordering

import (
	"github.com/gostonefire/chaintable/stock"
	"math/rand"
	"slices"
)

// Names of the orderings in the order Build returns them
const (
	Sorted   = "sorted"
	Shuffled = "shuffled"
	Reversed = "reversed"
)

// Ordering - One named permutation of the dataset
type Ordering struct {
	Name    string
	Records []stock.Stock
}

// Build - Returns the sorted, shuffled and reversed orderings of records, in that order.
// The shuffled ordering is a uniform permutation of the sorted one drawn from rng. Records is not changed.
func Build(records []stock.Stock, rng *rand.Rand) []Ordering {
	sorted := SortedBySymbol(records)

	shuffled := slices.Clone(sorted)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	reversed := slices.Clone(records)
	slices.SortStableFunc(reversed, func(a, b stock.Stock) int { return stock.Compare(b, a) })

	return []Ordering{
		{Name: Sorted, Records: sorted},
		{Name: Shuffled, Records: shuffled},
		{Name: Reversed, Records: reversed},
	}
}

// SortedBySymbol - Returns a copy of records sorted ascending by symbol, equal symbols keep their relative order
func SortedBySymbol(records []stock.Stock) []stock.Stock {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, stock.Compare)
	return sorted
}
