package funcs

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-remap/remap"
)

func TestRegistryResolveBuiltin(t *testing.T) {
	r := Builtin()
	fn, err := r.Resolve("split", ", ", "1")
	require.Nil(t, err)
	out, err := fn("742, Evergreen Terrace")
	require.Nil(t, err)
	require.Equal(t, "Evergreen Terrace", out)
}

func TestRegistryResolveUnknown(t *testing.T) {
	r := Builtin()
	_, err := r.Resolve("nope")
	require.NotNil(t, err)
}

func TestRegistryResolveBadStaticArgs(t *testing.T) {
	r := Builtin()
	_, err := r.Resolve("split", ", ")
	require.NotNil(t, err)
	_, err = r.Resolve("split", ", ", "one")
	require.NotNil(t, err)
}

func TestRegistryRegisterDuplicate(t *testing.T) {
	r := CreateRegistry()
	identity := func(args ...string) (remap.TransformFunc, error) {
		return func(values ...string) (string, error) {
			return values[0], nil
		}, nil
	}
	require.Nil(t, r.Register("identity", identity))
	require.NotNil(t, r.Register("identity", identity))
	require.True(t, r.Has("identity"))
}

func TestRegistryRegisterAllCollectsErrors(t *testing.T) {
	r := CreateRegistry()
	err := r.RegisterAll(map[string]remap.FactoryFunc{
		"":    nil,
		"bad": nil,
	})
	require.NotNil(t, err)
	require.False(t, r.Has("bad"))
}
