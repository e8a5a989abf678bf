// Package dsv parses and serializes delimiter-separated tabular data with
// a header line. Parsing uses encoding/csv; serialization always quotes
// every value.
package dsv

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/go-remap/remap"
	"github.com/go-remap/remap/errors"
)

// ParserConf configures a DSV Parser
type ParserConf struct {
	Delimiter rune // The delimiter separating columns. Defaults to ,
	Comment   rune // Lines beginning with the comment character are ignored. Cannot be equal to the Delimiter. Defaults to no comment character.
}

// Parser produces Datasets from DSV data and serializes Datasets back to
// DSV data
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new DSV Parser
func CreateParser(conf *ParserConf) *Parser {
	if conf == nil {
		conf = &ParserConf{}
	}
	if conf.Delimiter == 0 {
		conf.Delimiter = ','
	}
	return &Parser{conf: conf}
}

// Parse reads DSV data, treating the first record as the header, and
// produces a Dataset
func (p *Parser) Parse(r io.Reader) (*remap.Dataset, error) {
	reader := csv.NewReader(r)
	reader.Comma = p.conf.Delimiter
	reader.Comment = p.conf.Comment

	header, err := reader.Read()
	if err == io.EOF {
		return remap.CreateDataset(nil, nil)
	}
	if err != nil {
		return nil, errors.RowParseError{Line: 1, Cause: err}
	}
	columns := make([]string, len(header))
	copy(columns, header)

	var rows [][]string
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.RowParseError{Line: line, Cause: err}
		}
		row := make([]string, len(record))
		copy(row, record)
		rows = append(rows, row)
	}
	return remap.CreateDataset(columns, rows)
}

// ParseRow parses a single DSV line into ordered field values
func (p *Parser) ParseRow(line string) ([]string, error) {
	reader := csv.NewReader(strings.NewReader(line))
	reader.Comma = p.conf.Delimiter
	record, err := reader.Read()
	if err != nil {
		return nil, errors.RowParseError{Line: 1, Cause: err}
	}
	return record, nil
}

// SerializeRow serializes ordered field values to a single DSV line,
// without a trailing newline. Every value is quoted.
func (p *Parser) SerializeRow(values []string) string {
	var line strings.Builder
	for i, value := range values {
		if i > 0 {
			line.WriteRune(p.conf.Delimiter)
		}
		line.WriteByte('"')
		line.WriteString(strings.ReplaceAll(value, `"`, `""`))
		line.WriteByte('"')
	}
	return line.String()
}

// Serialize writes a Dataset as DSV data, header first, each line
// newline-terminated
func (p *Parser) Serialize(ds *remap.Dataset, w io.Writer) error {
	if ds.NumColumns() == 0 && ds.NumRows() == 0 {
		return nil
	}
	if _, err := io.WriteString(w, p.SerializeRow(ds.Columns())+"\n"); err != nil {
		return errors.RowSerializeError{Row: 0, Cause: err}
	}
	return ds.ForEachRow(func(i int, row []string) error {
		if _, err := io.WriteString(w, p.SerializeRow(row)+"\n"); err != nil {
			return errors.RowSerializeError{Row: i + 1, Cause: err}
		}
		return nil
	})
}
