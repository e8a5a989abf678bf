package remap

import (
	"fmt"

	xxhash "github.com/cespare/xxhash/v2"
)

// Dataset is an immutable table: an ordered sequence of column names plus
// an ordered sequence of rows, each row aligned positionally to the header.
// A Dataset is produced whole by a transform pass and never modified
// afterwards - chaining passes produces fresh Datasets.
type Dataset struct {
	columns []string
	rows    [][]string
}

// CreateDataset is a factory for Datasets. The given header and rows are
// copied, and every row must have exactly as many values as the header has
// columns.
func CreateDataset(columns []string, rows [][]string) (*Dataset, error) {
	ds := &Dataset{
		columns: make([]string, len(columns)),
		rows:    make([][]string, len(rows)),
	}
	copy(ds.columns, columns)
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("Row %d has %d values but the header has %d columns", i, len(row), len(columns))
		}
		ds.rows[i] = make([]string, len(row))
		copy(ds.rows[i], row)
	}
	return ds, nil
}

// Columns returns a copy of the ordered header of this Dataset
func (d *Dataset) Columns() []string {
	columns := make([]string, len(d.columns))
	copy(columns, d.columns)
	return columns
}

// NumColumns returns the number of columns in this Dataset
func (d *Dataset) NumColumns() int {
	return len(d.columns)
}

// NumRows returns the number of rows in this Dataset
func (d *Dataset) NumRows() int {
	return len(d.rows)
}

// Row returns a copy of the row at the given index
func (d *Dataset) Row(i int) []string {
	row := make([]string, len(d.rows[i]))
	copy(row, d.rows[i])
	return row
}

// ForEachRow iterates over the rows of this Dataset in order, stopping at
// the first error. The callback must not retain or modify the row slice.
func (d *Dataset) ForEachRow(fn func(i int, row []string) error) error {
	for i, row := range d.rows {
		if err := fn(i, row); err != nil {
			return err
		}
	}
	return nil
}

// NamedRow returns the row at the given index as a mapping from column
// name to value
func (d *Dataset) NamedRow(i int) map[string]string {
	named := make(map[string]string, len(d.columns))
	for j, name := range d.columns {
		named[name] = d.rows[i][j]
	}
	return named
}

// Checksum returns a hash of the header and every row of this Dataset,
// useful for cheaply comparing Datasets in logs and tests
func (d *Dataset) Checksum() uint64 {
	digest := xxhash.New()
	for _, name := range d.columns {
		digest.WriteString(name)
		digest.Write([]byte{0})
	}
	for _, row := range d.rows {
		for _, value := range row {
			digest.WriteString(value)
			digest.Write([]byte{0})
		}
		digest.Write([]byte{'\n'})
	}
	return digest.Sum64()
}
