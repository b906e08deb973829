// Package template provides the placeholder engine used to render
// document templates. It substitutes {{name(args)}} expressions with the
// output of registered functions.
//
// # Syntax
//
// A placeholder is a function call with optional named arguments:
//
//	{{now()}}
//	{{date(sub_rnd_days=30)}}
//	{{chance(range=5, options="up|down")}}
//
// Argument values are either integers or strings; strings may be quoted
// with single or double quotes. Unquoted values that do not parse as
// integers are treated as strings.
//
// A bare identifier like {{name}} is resolved from the variable map
// passed to Render. Rendering with an empty variable map makes every
// bare identifier an error, which keeps all dynamism in function calls.
//
// # Errors
//
// Render is all-or-nothing: the first failing placeholder aborts the
// render and no partial output is returned. Malformed placeholders,
// unknown function names, and undefined variables produce a
// *SyntaxError; a failure returned by a registered function is wrapped
// in a *FuncError.
package template
