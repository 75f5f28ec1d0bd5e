// Package stock holds the record type of the S&P 500 dataset: a stock symbol and its price.
package stock

import (
	"fmt"
	"github.com/gostonefire/chaintable/internal/hash"
	"strings"
)

// Stock - Represents one line of the dataset. The symbol is the identity of a stock, the price is carried as data
// but never takes part in equality or hashing.
type Stock struct {
	Symbol string
	Price  float64
}

// New - Returns a Stock with the given symbol and price
func New(symbol string, price float64) Stock {
	return Stock{Symbol: symbol, Price: price}
}

// HashCode - Returns a hash value derived from the symbol only
func (S Stock) HashCode() int64 {
	return hash.StringHash(S.Symbol)
}

// Equals - Returns true if other has the same symbol
func (S Stock) Equals(other Stock) bool {
	return S.Symbol == other.Symbol
}

// String - Returns the stock as "<symbol> <price> | "
func (S Stock) String() string {
	return fmt.Sprintf("%s %v | ", S.Symbol, S.Price)
}

// Compare - Orders two stocks by symbol, returning -1, 0 or +1
func Compare(a, b Stock) int {
	return strings.Compare(a.Symbol, b.Symbol)
}
