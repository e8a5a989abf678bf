// Package testing provides helpers for exercising transform templates
// against in-memory data in tests.
package testing

import (
	"github.com/go-remap/remap"
	"github.com/go-remap/remap/datasource/memory"
	"github.com/go-remap/remap/engine"
	"github.com/go-remap/remap/funcs"
)

// RunTransform parses raw DSV text (with a header line), applies the
// given templates in order - the first against the parsed input, each
// subsequent one cascaded onto the previous output - and returns the
// final Dataset along with its serialized form. A nil registry selects
// the builtin transform functions.
func RunTransform(rawData string, templates []remap.RawTemplate, registry *funcs.Registry) (result *remap.Dataset, output string, err error) {
	// handle panics from user-supplied transform functions
	defer func() {
		if r := recover(); r != nil {
			if anErr, ok := r.(error); ok {
				err = anErr
			} else {
				panic(r)
			}
		}
	}()

	ds, err := memory.CreateDataset(rawData, nil)
	if err != nil {
		return nil, "", err
	}
	mapper := engine.CreateMapper(&engine.MapperConf{Registry: registry})
	mapper.LoadData(ds)
	for i, tpl := range templates {
		result, err = mapper.Apply(tpl, i > 0)
		if err != nil {
			return nil, "", err
		}
	}
	output, err = mapper.Output()
	if err != nil {
		return nil, "", err
	}
	return result, output, nil
}
