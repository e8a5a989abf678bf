package funcs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-remap/remap"
)

func builtins() map[string]remap.FactoryFunc {
	return map[string]remap.FactoryFunc{
		"split":   splitFactory,
		"concat":  concatFactory,
		"trim":    trimFactory,
		"upper":   upperFactory,
		"lower":   lowerFactory,
		"replace": replaceFactory,
		"const":   constFactory,
		"default": defaultFactory,
		"format":  formatFactory,
	}
}

func one(values []string) (string, error) {
	if len(values) != 1 {
		return "", fmt.Errorf("Expected exactly 1 value but received %d", len(values))
	}
	return values[0], nil
}

// split(sep, idx) splits its value on sep and emits the element at idx
func splitFactory(args ...string) (remap.TransformFunc, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("split expects 2 arguments (separator, index), received %d", len(args))
	}
	sep := args[0]
	idx, err := strconv.Atoi(args[1])
	if err != nil {
		return nil, fmt.Errorf("split index must be an integer: %w", err)
	}
	return func(values ...string) (string, error) {
		value, err := one(values)
		if err != nil {
			return "", err
		}
		parts := strings.Split(value, sep)
		if idx < 0 || idx >= len(parts) {
			return "", fmt.Errorf("split index %d out of range for %d parts", idx, len(parts))
		}
		return parts[idx], nil
	}, nil
}

// concat() joins all of its values; concat(sep) joins them with sep
func concatFactory(args ...string) (remap.TransformFunc, error) {
	if len(args) > 1 {
		return nil, fmt.Errorf("concat expects at most 1 argument (separator), received %d", len(args))
	}
	sep := ""
	if len(args) == 1 {
		sep = args[0]
	}
	return func(values ...string) (string, error) {
		return strings.Join(values, sep), nil
	}, nil
}

// trim() trims whitespace; trim(cutset) trims the given characters
func trimFactory(args ...string) (remap.TransformFunc, error) {
	if len(args) > 1 {
		return nil, fmt.Errorf("trim expects at most 1 argument (cutset), received %d", len(args))
	}
	return func(values ...string) (string, error) {
		value, err := one(values)
		if err != nil {
			return "", err
		}
		if len(args) == 1 {
			return strings.Trim(value, args[0]), nil
		}
		return strings.TrimSpace(value), nil
	}, nil
}

func upperFactory(args ...string) (remap.TransformFunc, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("upper expects no arguments, received %d", len(args))
	}
	return func(values ...string) (string, error) {
		value, err := one(values)
		if err != nil {
			return "", err
		}
		return strings.ToUpper(value), nil
	}, nil
}

func lowerFactory(args ...string) (remap.TransformFunc, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("lower expects no arguments, received %d", len(args))
	}
	return func(values ...string) (string, error) {
		value, err := one(values)
		if err != nil {
			return "", err
		}
		return strings.ToLower(value), nil
	}, nil
}

// replace(old, new) replaces every occurrence of old with new
func replaceFactory(args ...string) (remap.TransformFunc, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("replace expects 2 arguments (old, new), received %d", len(args))
	}
	return func(values ...string) (string, error) {
		value, err := one(values)
		if err != nil {
			return "", err
		}
		return strings.ReplaceAll(value, args[0], args[1]), nil
	}, nil
}

// const(value) ignores its input and emits a fixed value
func constFactory(args ...string) (remap.TransformFunc, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("const expects 1 argument (value), received %d", len(args))
	}
	return func(values ...string) (string, error) {
		return args[0], nil
	}, nil
}

// default(fallback) emits its value, or fallback when the value is empty
func defaultFactory(args ...string) (remap.TransformFunc, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("default expects 1 argument (fallback), received %d", len(args))
	}
	return func(values ...string) (string, error) {
		value, err := one(values)
		if err != nil {
			return "", err
		}
		if value == "" {
			return args[0], nil
		}
		return value, nil
	}, nil
}

// format(layout) applies a Sprintf layout to all of its values
func formatFactory(args ...string) (remap.TransformFunc, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("format expects 1 argument (layout), received %d", len(args))
	}
	layout := args[0]
	return func(values ...string) (string, error) {
		fmtArgs := make([]interface{}, len(values))
		for i, v := range values {
			fmtArgs[i] = v
		}
		return fmt.Sprintf(layout, fmtArgs...), nil
	}, nil
}
