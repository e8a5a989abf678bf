package remap

// RawTemplate is a transform description as parsed from a template
// document: a mapping from input column name to either a plain string (a
// rename target) or a mapping from output column name to a raw field spec.
// A raw field spec is a function expression (string), a combine object
// (a mapping with "args" and "func" keys), or a literal scalar.
type RawTemplate map[string]interface{}

// CompiledTemplate is a RawTemplate with every function-bearing leaf
// resolved into an invocable TransformFunc. It is built fresh for each
// transform pass and never cached across passes.
type CompiledTemplate map[string]ColumnMapping

// ColumnMapping describes how a single input column contributes to the
// output of a transform pass
type ColumnMapping interface {
	isColumnMapping()
}

// RenameSpec copies an input column's value unchanged to the output
// column named Target
type RenameSpec struct {
	Target string
}

// ExplodeSpec fans a single input column out into one or more output
// columns, each produced by its own FieldSpec
type ExplodeSpec struct {
	Fields map[string]FieldSpec
}

func (s *RenameSpec) isColumnMapping()  {}
func (s *ExplodeSpec) isColumnMapping() {}

// FieldSpec describes how a single output column's value is computed
type FieldSpec interface {
	isFieldSpec()
}

// FuncSpec computes an output value by applying Fn to the input column's
// value. Expr retains the source expression for logging.
type FuncSpec struct {
	Expr string
	Fn   TransformFunc
}

// CombineSpec computes an output value by passing the values of the Args
// input columns, in order, to Fn. Expr retains the source expression for
// logging.
type CombineSpec struct {
	Args []string
	Expr string
	Fn   TransformFunc
}

// LiteralSpec emits the same constant value for every row
type LiteralSpec struct {
	Value string
}

func (s *FuncSpec) isFieldSpec()    {}
func (s *CombineSpec) isFieldSpec() {}
func (s *LiteralSpec) isFieldSpec() {}
