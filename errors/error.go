package errors

import (
	"fmt"
	"strings"
)

// TemplateCompileError occurs when a function expression in a template
// leaf cannot be parsed or resolved
type TemplateCompileError struct {
	Cause error
}

// Error returns a textual representation of this TemplateCompileError
func (e TemplateCompileError) Error() string {
	return fmt.Sprintf("Unable to compile template: %v", e.Cause)
}

// Unwrap returns the underlying cause of this TemplateCompileError
func (e TemplateCompileError) Unwrap() error {
	return e.Cause
}

// TemplateFormatError occurs when a combine spec is missing its function
// attribute, or carries one which is not a function expression
type TemplateFormatError struct {
	Column  string
	OutName string
}

// Error returns a textual representation of this TemplateFormatError
func (e TemplateFormatError) Error() string {
	return fmt.Sprintf("Combine spec for output column %s (under input column %s) has no usable function attribute", e.OutName, e.Column)
}

// TransformExecutionError occurs when a transform function fails while
// evaluating a row. It aborts the whole transform pass.
type TransformExecutionError struct {
	Column  string
	OutName string
	Cause   error
}

// Error returns a textual representation of this TransformExecutionError
func (e TransformExecutionError) Error() string {
	return fmt.Sprintf("Transform for output column %s (from input column %s) failed: %v", e.OutName, e.Column, e.Cause)
}

// Unwrap returns the underlying cause of this TransformExecutionError
func (e TransformExecutionError) Unwrap() error {
	return e.Cause
}

// NoPriorOutputError occurs when a cascaded pass is requested before any
// pass has produced an output Dataset
type NoPriorOutputError struct{}

// Error returns a textual representation of this NoPriorOutputError
func (e NoPriorOutputError) Error() string {
	return "Cannot cascade: no prior transform pass has produced an output"
}

// RowParseError occurs when a tabular input line cannot be parsed
type RowParseError struct {
	Line  int
	Cause error
}

// Error returns a textual representation of this RowParseError
func (e RowParseError) Error() string {
	return fmt.Sprintf("Unable to parse row at line %d: %v", e.Line, e.Cause)
}

// Unwrap returns the underlying cause of this RowParseError
func (e RowParseError) Unwrap() error {
	return e.Cause
}

// RowSerializeError occurs when an output row cannot be serialized
type RowSerializeError struct {
	Row   int
	Cause error
}

// Error returns a textual representation of this RowSerializeError
func (e RowSerializeError) Error() string {
	return fmt.Sprintf("Unable to serialize row %d: %v", e.Row, e.Cause)
}

// Unwrap returns the underlying cause of this RowSerializeError
func (e RowSerializeError) Unwrap() error {
	return e.Cause
}

// InconsistentRowShapeError occurs when a row produces an output mapping
// which lacks one or more of the output columns fixed by the first row of
// the pass
type InconsistentRowShapeError struct {
	RowIndex int
	Missing  []string
}

// Error returns a textual representation of this InconsistentRowShapeError
func (e InconsistentRowShapeError) Error() string {
	return fmt.Sprintf("Row %d did not produce values for fixed output columns: %s", e.RowIndex, strings.Join(e.Missing, ", "))
}
