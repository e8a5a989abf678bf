package remap

// TransformFunc manipulates one or more input column values to produce a
// single output column value. Explode specs call it with exactly one
// value; combine specs call it with one value per named argument column.
type TransformFunc func(values ...string) (string, error)

// FactoryFunc builds a TransformFunc from the static arguments of a
// template function expression. For example, the expression
// "split(', ', 2)" invokes the "split" factory with the static arguments
// ", " and "2" to produce a TransformFunc over row values.
type FactoryFunc func(args ...string) (TransformFunc, error)
