// Package dataset reads "symbol,price" text into stocks.
package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"github.com/gostonefire/chaintable/stock"
	"io"
	"os"
	"strconv"
	"strings"
)

// ParseError - Custom error to inform that the price on an otherwise well-formed line could not be parsed
type ParseError struct {
	Line  int
	Price string
	Err   error
}

// Error - Used to notify which line holds a bad price
func (P ParseError) Error() string {
	return fmt.Sprintf("line %d: invalid price %q: %s", P.Line, P.Price, P.Err)
}

// Unwrap - Returns the underlying strconv error
func (P ParseError) Unwrap() error {
	return P.Err
}

// ReadFile - Opens the file at path and reads up to maxLines stocks from it, see Read.
func ReadFile(path string, maxLines int) (stocks []stock.Stock, err error) {
	f, err := os.Open(path)
	if err != nil {
		err = fmt.Errorf("error while opening dataset file: %w", err)
		return
	}
	defer func(f *os.File) { _ = f.Close() }(f)

	stocks, err = Read(f, maxLines)

	return
}

// Read - Reads stocks from r, one "symbol,price" per line.
// Lines are trimmed, blank lines and lines with fewer than two comma separated fields are skipped and are not
// counted. Reading stops when maxLines stocks have been accepted.
//   - r is the source of the dataset
//   - maxLines is the max number of stocks to read, it has to be 0 (zero) or higher
//
// It returns:
//   - stocks is the accepted stocks in file order
//   - err is either of type ParseError if a price could not be parsed or a standard error if reading failed
func Read(r io.Reader, maxLines int) (stocks []stock.Stock, err error) {
	if maxLines < 0 {
		err = fmt.Errorf("max lines must be 0 (zero) or higher, got %d", maxLines)
		return
	}

	stocks = make([]stock.Stock, 0)
	fr := bufio.NewReader(r)

	var line string
	var lineNo int
	var readErr error
	for len(stocks) < maxLines && readErr == nil {
		line, readErr = fr.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			err = fmt.Errorf("error while reading dataset: %w", readErr)
			return
		}
		if readErr != nil && line == "" {
			break
		}
		lineNo++

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		parts := splitFields(line)
		if len(parts) < 2 {
			continue
		}

		priceField := strings.TrimSpace(parts[1])
		var price float64
		price, err = strconv.ParseFloat(priceField, 64)
		if err != nil {
			err = ParseError{Line: lineNo, Price: priceField, Err: err}
			stocks = nil
			return
		}

		stocks = append(stocks, stock.New(strings.TrimSpace(parts[0]), price))
	}

	return
}

// splitFields - Splits line on commas and drops trailing empty fields, so "AAPL," counts as a single field
func splitFields(line string) []string {
	parts := strings.Split(line, ",")
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}

	return parts
}
