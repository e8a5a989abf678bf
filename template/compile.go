package template

import (
	"fmt"
	"sort"

	"github.com/hashicorp/go-multierror"

	"github.com/go-remap/remap"
	"github.com/go-remap/remap/errors"
	"github.com/go-remap/remap/funcs"
)

// Compiler resolves the function expressions of a RawTemplate against a
// function Registry, producing a CompiledTemplate ready for row
// evaluation. Compilation builds a fresh structure and never modifies the
// raw template.
type Compiler struct {
	registry *funcs.Registry
}

// CreateCompiler returns a Compiler backed by the given Registry. A nil
// Registry selects the builtin functions.
func CreateCompiler(registry *funcs.Registry) *Compiler {
	if registry == nil {
		registry = funcs.Builtin()
	}
	return &Compiler{registry: registry}
}

// Compile walks a RawTemplate and resolves every function-bearing leaf
// into an invocable TransformFunc. Expression failures across the whole
// template are collected into a single TemplateCompileError. A combine
// object without a usable "func" attribute fails immediately with a
// TemplateFormatError.
func (c *Compiler) Compile(raw remap.RawTemplate) (remap.CompiledTemplate, error) {
	compiled := make(remap.CompiledTemplate, len(raw))
	var multierr *multierror.Error
	for _, column := range sortedKeys(raw) {
		switch desc := raw[column].(type) {
		case string:
			compiled[column] = &remap.RenameSpec{Target: desc}
		default:
			fields, ok := asStringMap(raw[column])
			if !ok {
				multierr = multierror.Append(multierr, fmt.Errorf("Description for input column %s must be a rename string or a field mapping", column))
				continue
			}
			mapping := &remap.ExplodeSpec{Fields: make(map[string]remap.FieldSpec, len(fields))}
			for _, outName := range sortedKeys(fields) {
				spec, err := c.compileField(column, outName, fields[outName])
				if err != nil {
					if _, fatal := err.(errors.TemplateFormatError); fatal {
						return nil, err
					}
					multierr = multierror.Append(multierr, err)
					continue
				}
				mapping.Fields[outName] = spec
			}
			compiled[column] = mapping
		}
	}
	if err := multierr.ErrorOrNil(); err != nil {
		return nil, errors.TemplateCompileError{Cause: err}
	}
	return compiled, nil
}

func (c *Compiler) compileField(column string, outName string, raw interface{}) (remap.FieldSpec, error) {
	if combine, ok := asStringMap(raw); ok {
		return c.compileCombine(column, outName, combine)
	}
	switch v := raw.(type) {
	case string:
		fn, expr, err := c.resolveExpr(v)
		if err != nil {
			return nil, fmt.Errorf("Output column %s (under input column %s): %w", outName, column, err)
		}
		return &remap.FuncSpec{Expr: expr, Fn: fn}, nil
	case nil:
		return nil, fmt.Errorf("Output column %s (under input column %s) has no field spec", outName, column)
	default:
		// any other scalar is a verbatim constant
		return &remap.LiteralSpec{Value: fmt.Sprint(v)}, nil
	}
}

func (c *Compiler) compileCombine(column string, outName string, combine map[string]interface{}) (remap.FieldSpec, error) {
	rawFn, ok := combine["func"].(string)
	if !ok {
		return nil, errors.TemplateFormatError{Column: column, OutName: outName}
	}
	rawArgs, ok := combine["args"].([]interface{})
	if !ok {
		return nil, fmt.Errorf("Combine spec for output column %s (under input column %s) must list its args", outName, column)
	}
	args := make([]string, len(rawArgs))
	for i, a := range rawArgs {
		name, ok := a.(string)
		if !ok {
			return nil, fmt.Errorf("Combine arg %d for output column %s must be an input column name", i, outName)
		}
		args[i] = name
	}
	fn, expr, err := c.resolveExpr(rawFn)
	if err != nil {
		return nil, fmt.Errorf("Combine func for output column %s (under input column %s): %w", outName, column, err)
	}
	return &remap.CombineSpec{Args: args, Expr: expr, Fn: fn}, nil
}

func (c *Compiler) resolveExpr(src string) (remap.TransformFunc, string, error) {
	call, err := parseExpr(src)
	if err != nil {
		return nil, "", err
	}
	fn, err := c.registry.Resolve(call.name, call.args...)
	if err != nil {
		return nil, "", err
	}
	return fn, src, nil
}

// asStringMap coerces the map types produced by the YAML and JSON loaders
// (and by hand-built templates) into a map with string keys
func asStringMap(raw interface{}) (map[string]interface{}, bool) {
	switch m := raw.(type) {
	case map[string]interface{}:
		return m, true
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(m))
		for k, v := range m {
			key, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[key] = v
		}
		return out, true
	default:
		return nil, false
	}
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
