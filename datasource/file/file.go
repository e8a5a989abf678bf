// Package file loads Datasets from disk and saves them back. Files with
// an .lz4 extension are transparently decompressed on read and
// compressed on write.
package file

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pierrec/lz4"

	"github.com/go-remap/remap"
	"github.com/go-remap/remap/datasource/dsv"
)

func isCompressed(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".lz4"
}

// LoadDataset reads a DSV file (with a header line) into a Dataset. A nil
// parser selects the default comma-delimited Parser.
func LoadDataset(path string, parser *dsv.Parser) (*remap.Dataset, error) {
	if parser == nil {
		parser = dsv.CreateParser(nil)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if isCompressed(path) {
		return parser.Parse(lz4.NewReader(f))
	}
	return parser.Parse(f)
}

// SaveDataset writes a Dataset to a DSV file, creating or truncating it
func SaveDataset(path string, ds *remap.Dataset, parser *dsv.Parser) error {
	if parser == nil {
		parser = dsv.CreateParser(nil)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if isCompressed(path) {
		zw := lz4.NewWriter(f)
		if err := parser.Serialize(ds, zw); err != nil {
			return err
		}
		return zw.Close()
	}
	return parser.Serialize(ds, f)
}
