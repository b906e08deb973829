package template

import "fmt"

// SyntaxError reports a malformed template: unmatched braces, an
// expression that is neither a call nor an identifier, an unknown
// function name, or an undefined variable.
type SyntaxError struct {
	// Offset is the byte offset of the offending placeholder in the
	// template text.
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("template: %s at offset %d", e.Msg, e.Offset)
}

// FuncError wraps a failure returned by a registered function. The
// render that triggered it is aborted.
type FuncError struct {
	Name string
	Err  error
}

func (e *FuncError) Error() string {
	return fmt.Sprintf("template: function %q: %v", e.Name, e.Err)
}

func (e *FuncError) Unwrap() error { return e.Err }
