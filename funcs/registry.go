package funcs

import (
	"fmt"
	"sort"

	"github.com/hashicorp/go-multierror"

	"github.com/go-remap/remap"
)

// Registry maps function names to the factories which build their
// TransformFuncs. Template function expressions are resolved against a
// Registry at compile time, so a template can only ever invoke functions
// which were declared up front.
type Registry struct {
	factories map[string]remap.FactoryFunc
}

// CreateRegistry returns an empty Registry
func CreateRegistry() *Registry {
	return &Registry{factories: make(map[string]remap.FactoryFunc)}
}

// Builtin returns a Registry preloaded with the builtin transform
// functions (split, concat, trim, upper, lower, replace, const, default,
// format)
func Builtin() *Registry {
	r := CreateRegistry()
	err := r.RegisterAll(builtins())
	if err != nil {
		// builtins are statically well-formed
		panic(err)
	}
	return r
}

// Register adds a named factory to this Registry
func (r *Registry) Register(name string, factory remap.FactoryFunc) error {
	if name == "" {
		return fmt.Errorf("Function name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("Factory for function %s cannot be nil", name)
	}
	if _, ok := r.factories[name]; ok {
		return fmt.Errorf("Registry already contains a function named %s", name)
	}
	r.factories[name] = factory
	return nil
}

// RegisterAll adds all the given factories to this Registry, collecting
// any registration failures into a single error
func (r *Registry) RegisterAll(factories map[string]remap.FactoryFunc) error {
	var multierr *multierror.Error
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := r.Register(name, factories[name]); err != nil {
			multierr = multierror.Append(multierr, err)
		}
	}
	return multierr.ErrorOrNil()
}

// Has returns true iff this Registry contains a function with the given name
func (r *Registry) Has(name string) bool {
	_, ok := r.factories[name]
	return ok
}

// Resolve invokes the named factory with the given static arguments,
// producing a TransformFunc ready to be applied to row values
func (r *Registry) Resolve(name string, args ...string) (remap.TransformFunc, error) {
	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("Registry does not contain a function named %s", name)
	}
	fn, err := factory(args...)
	if err != nil {
		return nil, fmt.Errorf("Unable to construct function %s: %w", name, err)
	}
	return fn, nil
}
