package engine

import (
	"sort"

	"github.com/go-remap/remap"
	"github.com/go-remap/remap/errors"
)

// Apply evaluates every row of the source Dataset against the compiled
// template and assembles a fresh output Dataset. The output header is
// fixed by the first evaluated row: its output column names, sorted
// lexicographically. Later rows are projected onto that header.
func Apply(source *remap.Dataset, tpl remap.CompiledTemplate) (*remap.Dataset, error) {
	columns := source.Columns()
	var outColumns []string
	var outRows [][]string
	err := source.ForEachRow(func(i int, row []string) error {
		input := make(map[string]string, len(columns))
		for j, name := range columns {
			input[name] = row[j]
		}
		output, err := EvaluateRow(input, columns, tpl)
		if err != nil {
			return err
		}
		if outColumns == nil {
			outColumns = make([]string, 0, len(output))
			for name := range output {
				outColumns = append(outColumns, name)
			}
			sort.Strings(outColumns)
		}
		outRow, err := projectRow(output, outColumns, i)
		if err != nil {
			return err
		}
		outRows = append(outRows, outRow)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return remap.CreateDataset(outColumns, outRows)
}

// projectRow builds a value list by looking up each fixed header name in
// a row's output mapping. Values under names outside the header are
// dropped; a missing header name fails with an InconsistentRowShapeError
// rather than silently inserting a blank.
func projectRow(output map[string]string, header []string, rowIndex int) ([]string, error) {
	row := make([]string, len(header))
	var missing []string
	for j, name := range header {
		value, ok := output[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		row[j] = value
	}
	if len(missing) > 0 {
		return nil, errors.InconsistentRowShapeError{RowIndex: rowIndex, Missing: missing}
	}
	return row, nil
}
