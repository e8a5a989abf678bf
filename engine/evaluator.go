package engine

import (
	"sort"

	"github.com/go-remap/remap"
	"github.com/go-remap/remap/errors"
)

// EvaluateRow produces one output row mapping from one input row mapping,
// per the compiled template. Input columns are visited in header order.
// An input column with no template entry is silently dropped. When two
// field specs write the same output column, the later write wins; within
// one input column's explode mapping, output columns are visited in
// sorted order so that precedence is deterministic.
func EvaluateRow(input map[string]string, columns []string, tpl remap.CompiledTemplate) (map[string]string, error) {
	output := make(map[string]string)
	for _, column := range columns {
		mapping, ok := tpl[column]
		if !ok {
			continue
		}
		switch m := mapping.(type) {
		case *remap.RenameSpec:
			output[m.Target] = input[column]
		case *remap.ExplodeSpec:
			outNames := make([]string, 0, len(m.Fields))
			for outName := range m.Fields {
				outNames = append(outNames, outName)
			}
			sort.Strings(outNames)
			for _, outName := range outNames {
				value, err := evaluateField(input, column, outName, m.Fields[outName])
				if err != nil {
					return nil, err
				}
				output[outName] = value
			}
		}
	}
	return output, nil
}

func evaluateField(input map[string]string, column string, outName string, spec remap.FieldSpec) (string, error) {
	switch s := spec.(type) {
	case *remap.FuncSpec:
		if s.Fn == nil {
			return "", errors.TemplateFormatError{Column: column, OutName: outName}
		}
		value, err := s.Fn(input[column])
		if err != nil {
			return "", errors.TransformExecutionError{Column: column, OutName: outName, Cause: err}
		}
		return value, nil
	case *remap.CombineSpec:
		if s.Fn == nil {
			return "", errors.TemplateFormatError{Column: column, OutName: outName}
		}
		values := make([]string, len(s.Args))
		for i, arg := range s.Args {
			values[i] = input[arg]
		}
		value, err := s.Fn(values...)
		if err != nil {
			return "", errors.TransformExecutionError{Column: column, OutName: outName, Cause: err}
		}
		return value, nil
	case *remap.LiteralSpec:
		return s.Value, nil
	default:
		return "", errors.TemplateFormatError{Column: column, OutName: outName}
	}
}
