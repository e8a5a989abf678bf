package funcs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func apply(t *testing.T, name string, staticArgs []string, values ...string) (string, error) {
	fn, err := Builtin().Resolve(name, staticArgs...)
	require.Nil(t, err)
	return fn(values...)
}

func TestSplitOutOfRange(t *testing.T) {
	_, err := apply(t, "split", []string{", ", "5"}, "a, b")
	require.NotNil(t, err)
}

func TestConcat(t *testing.T) {
	out, err := apply(t, "concat", nil, "foo", "baz")
	require.Nil(t, err)
	require.Equal(t, "foobaz", out)

	out, err = apply(t, "concat", []string{" "}, "foo", "baz")
	require.Nil(t, err)
	require.Equal(t, "foo baz", out)
}

func TestTrim(t *testing.T) {
	out, err := apply(t, "trim", nil, "  padded\t")
	require.Nil(t, err)
	require.Equal(t, "padded", out)

	out, err = apply(t, "trim", []string{"#"}, "#tag#")
	require.Nil(t, err)
	require.Equal(t, "tag", out)
}

func TestCase(t *testing.T) {
	out, err := apply(t, "upper", nil, "il")
	require.Nil(t, err)
	require.Equal(t, "IL", out)

	out, err = apply(t, "lower", nil, "IL")
	require.Nil(t, err)
	require.Equal(t, "il", out)
}

func TestReplace(t *testing.T) {
	out, err := apply(t, "replace", []string{"-", "/"}, "2024-01-02")
	require.Nil(t, err)
	require.Equal(t, "2024/01/02", out)
}

func TestConstIgnoresInput(t *testing.T) {
	out, err := apply(t, "const", []string{"USA"}, "anything")
	require.Nil(t, err)
	require.Equal(t, "USA", out)
}

func TestDefault(t *testing.T) {
	out, err := apply(t, "default", []string{"n/a"}, "")
	require.Nil(t, err)
	require.Equal(t, "n/a", out)

	out, err = apply(t, "default", []string{"n/a"}, "set")
	require.Nil(t, err)
	require.Equal(t, "set", out)
}

func TestFormat(t *testing.T) {
	out, err := apply(t, "format", []string{"%s (%s)"}, "Springfield", "IL")
	require.Nil(t, err)
	require.Equal(t, "Springfield (IL)", out)
}

func TestUnaryArity(t *testing.T) {
	_, err := apply(t, "upper", nil, "a", "b")
	require.NotNil(t, err)
}
