// Package memory builds Datasets from in-memory tabular data.
package memory

import (
	"strings"

	"github.com/go-remap/remap"
	"github.com/go-remap/remap/datasource/dsv"
)

// CreateDataset parses raw DSV text (with a header line) into a Dataset.
// A nil parser selects the default comma-delimited Parser.
func CreateDataset(raw string, parser *dsv.Parser) (*remap.Dataset, error) {
	if parser == nil {
		parser = dsv.CreateParser(nil)
	}
	return parser.Parse(strings.NewReader(raw))
}

// CreateDatasetFromRows builds a Dataset directly from a header and rows
func CreateDatasetFromRows(columns []string, rows [][]string) (*remap.Dataset, error) {
	return remap.CreateDataset(columns, rows)
}
