package remap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateDatasetChecksWidths(t *testing.T) {
	_, err := CreateDataset([]string{"a", "b"}, [][]string{{"1"}})
	require.NotNil(t, err)
}

func TestDatasetIsIsolatedFromCallerSlices(t *testing.T) {
	columns := []string{"a"}
	rows := [][]string{{"1"}}
	ds, err := CreateDataset(columns, rows)
	require.Nil(t, err)
	columns[0] = "changed"
	rows[0][0] = "changed"
	require.Equal(t, []string{"a"}, ds.Columns())
	require.Equal(t, []string{"1"}, ds.Row(0))

	// accessors hand out copies too
	ds.Columns()[0] = "changed"
	ds.Row(0)[0] = "changed"
	require.Equal(t, []string{"a"}, ds.Columns())
	require.Equal(t, []string{"1"}, ds.Row(0))
}

func TestDatasetNamedRow(t *testing.T) {
	ds, err := CreateDataset([]string{"a", "b"}, [][]string{{"1", "2"}})
	require.Nil(t, err)
	require.Equal(t, map[string]string{"a": "1", "b": "2"}, ds.NamedRow(0))
}

func TestDatasetChecksum(t *testing.T) {
	first, err := CreateDataset([]string{"a"}, [][]string{{"1"}})
	require.Nil(t, err)
	same, err := CreateDataset([]string{"a"}, [][]string{{"1"}})
	require.Nil(t, err)
	different, err := CreateDataset([]string{"a"}, [][]string{{"2"}})
	require.Nil(t, err)
	require.Equal(t, first.Checksum(), same.Checksum())
	require.NotEqual(t, first.Checksum(), different.Checksum())

	// value boundaries matter: ["ab",""] differs from ["a","b"]
	left, err := CreateDataset([]string{"x", "y"}, [][]string{{"ab", ""}})
	require.Nil(t, err)
	right, err := CreateDataset([]string{"x", "y"}, [][]string{{"a", "b"}})
	require.Nil(t, err)
	require.NotEqual(t, left.Checksum(), right.Checksum())
}
