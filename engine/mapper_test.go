package engine

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-remap/remap"
	"github.com/go-remap/remap/datasource/dsv"
	"github.com/go-remap/remap/errors"
)

func TestMapperCascadeComposesPasses(t *testing.T) {
	source := mustDataset(t, []string{"name"}, [][]string{
		{"homer simpson"},
		{"marge simpson"},
	})
	first := remap.RawTemplate{
		"name": map[string]interface{}{
			"first": "split(' ', 0)",
			"last":  "split(' ', 1)",
		},
	}
	second := remap.RawTemplate{
		"first": map[string]interface{}{
			"first": "upper",
		},
		"last": "family",
	}

	// chained: first pass, then second pass with cascade
	chained := CreateMapper(nil)
	chained.LoadData(source)
	intermediate, err := chained.Apply(first, false)
	require.Nil(t, err)
	result, err := chained.Apply(second, true)
	require.Nil(t, err)

	// equivalent: treat the intermediate output as a fresh input
	direct := CreateMapper(nil)
	direct.LoadData(intermediate)
	expected, err := direct.Apply(second, false)
	require.Nil(t, err)

	require.Equal(t, expected.Columns(), result.Columns())
	require.Equal(t, expected.Checksum(), result.Checksum())
	require.Equal(t, []string{"family", "first"}, result.Columns())
	require.Equal(t, []string{"simpson", "HOMER"}, result.Row(0))
}

func TestMapperNonCascadeReadsLoadedInput(t *testing.T) {
	// cascade=false always reads the most recently loaded input, not the
	// most recent output
	source := mustDataset(t, []string{"a"}, [][]string{{"1"}})
	m := CreateMapper(nil)
	m.LoadData(source)
	_, err := m.Apply(remap.RawTemplate{"a": "b"}, false)
	require.Nil(t, err)
	result, err := m.Apply(remap.RawTemplate{"a": "c"}, false)
	require.Nil(t, err)
	require.Equal(t, []string{"c"}, result.Columns())
}

func TestMapperCascadeWithoutPriorOutput(t *testing.T) {
	m := CreateMapper(nil)
	m.LoadData(mustDataset(t, []string{"a"}, [][]string{{"1"}}))
	_, err := m.Apply(remap.RawTemplate{"a": "b"}, true)
	require.NotNil(t, err)
	_, ok := err.(errors.NoPriorOutputError)
	require.True(t, ok)
}

func TestMapperLoadDataDiscardsPriorOutput(t *testing.T) {
	m := CreateMapper(nil)
	m.LoadData(mustDataset(t, []string{"a"}, [][]string{{"1"}}))
	_, err := m.Apply(remap.RawTemplate{"a": "b"}, false)
	require.Nil(t, err)
	m.LoadData(mustDataset(t, []string{"a"}, [][]string{{"2"}}))
	_, err = m.Apply(remap.RawTemplate{"b": "c"}, true)
	require.NotNil(t, err)
	_, ok := err.(errors.NoPriorOutputError)
	require.True(t, ok)
}

func TestMapperFailedPassKeepsPriorOutput(t *testing.T) {
	m := CreateMapper(nil)
	m.LoadData(mustDataset(t, []string{"a"}, [][]string{{"x, y"}}))
	_, err := m.Apply(remap.RawTemplate{"a": "kept"}, false)
	require.Nil(t, err)

	// out-of-range split index fails during evaluation
	_, err = m.Apply(remap.RawTemplate{
		"a": map[string]interface{}{"b": "split(', ', 9)"},
	}, false)
	require.NotNil(t, err)

	out, err := m.Output()
	require.Nil(t, err)
	require.Equal(t, "\"kept\"\n\"x, y\"\n", out)
}

func TestMapperOutputSerializesWithTrailingNewline(t *testing.T) {
	m := CreateMapper(nil)
	m.LoadData(mustDataset(t, []string{"a", "b"}, [][]string{
		{"1", "he said \"hi\""},
	}))
	_, err := m.Apply(remap.RawTemplate{"a": "a", "b": "b"}, false)
	require.Nil(t, err)
	out, err := m.Output()
	require.Nil(t, err)
	require.Equal(t, "\"a\",\"b\"\n\"1\",\"he said \"\"hi\"\"\"\n", out)
	require.True(t, strings.HasSuffix(out, "\n"))
}

func TestMapperOutputRoundTrip(t *testing.T) {
	m := CreateMapper(nil)
	original := mustDataset(t, []string{"a", "b"}, [][]string{
		{"plain", "with, comma"},
		{"with \"quotes\"", "multi\nline"},
	})
	m.LoadData(original)
	_, err := m.Apply(remap.RawTemplate{"a": "a", "b": "b"}, false)
	require.Nil(t, err)
	out, err := m.Output()
	require.Nil(t, err)

	reparsed, err := dsv.CreateParser(nil).Parse(strings.NewReader(out))
	require.Nil(t, err)
	require.Equal(t, original.Columns(), reparsed.Columns())
	require.Equal(t, original.Checksum(), reparsed.Checksum())
}

func TestMapperOutputBeforeApply(t *testing.T) {
	m := CreateMapper(nil)
	_, err := m.Output()
	require.NotNil(t, err)
	err = m.SaveData("unused")
	require.NotNil(t, err)
}

func TestMapperApplyBeforeLoad(t *testing.T) {
	m := CreateMapper(nil)
	_, err := m.Apply(remap.RawTemplate{"a": "b"}, false)
	require.NotNil(t, err)
}

func TestMapperSaveData(t *testing.T) {
	dir, err := ioutil.TempDir("", "remap-mapper")
	require.Nil(t, err)
	defer os.RemoveAll(dir)

	m := CreateMapper(nil)
	m.LoadData(mustDataset(t, []string{"a"}, [][]string{{"1"}}))
	_, err = m.Apply(remap.RawTemplate{"a": "b"}, false)
	require.Nil(t, err)

	path := filepath.Join(dir, "out.csv")
	require.Nil(t, m.SaveData(path))
	written, err := ioutil.ReadFile(path)
	require.Nil(t, err)
	require.Equal(t, "\"b\"\n\"1\"\n", string(written))
}

func TestMapperRecordsStatistics(t *testing.T) {
	m := CreateMapper(nil)
	m.LoadData(mustDataset(t, []string{"a"}, [][]string{{"1"}, {"2"}}))
	_, err := m.Apply(remap.RawTemplate{"a": "b"}, false)
	require.Nil(t, err)
	_, err = m.Apply(remap.RawTemplate{"b": "c"}, true)
	require.Nil(t, err)

	runStats := m.GetRuntimeStatistics()
	require.Equal(t, []int64{2, 2}, runStats.GetNumRowsProcessed())
	require.Len(t, runStats.GetPassIDs(), 2)
	require.Len(t, runStats.GetPassRuntimes(), 2)
	require.False(t, runStats.GetStartTime().IsZero())
}
