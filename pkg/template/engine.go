package template

import (
	"regexp"
	"strconv"
	"strings"
)

// Func is a function callable from a template placeholder. It receives
// the named arguments parsed from the call site and returns the text to
// substitute, or an error that aborts the render.
type Func func(args Args) (string, error)

// Engine substitutes {{name(args)}} placeholders with the output of
// registered functions. An Engine is immutable once all functions are
// registered and is then safe for concurrent use; the functions
// themselves must provide their own concurrency safety.
type Engine struct {
	funcs map[string]Func
}

// New creates an engine with no registered functions.
func New() *Engine {
	return &Engine{funcs: make(map[string]Func)}
}

// RegisterFunction binds a function to a placeholder name. Registering
// the same name again replaces the previous binding.
func (e *Engine) RegisterFunction(name string, fn Func) {
	e.funcs[name] = fn
}

// Compiled patterns for placeholder expressions.
var (
	// name(args)
	callPattern = regexp.MustCompile(`^([A-Za-z_]\w*)\((.*)\)$`)
	// bare identifier
	identPattern = regexp.MustCompile(`^[A-Za-z_]\w*$`)
	// key=value inside an argument list
	argPattern = regexp.MustCompile(`^(\w+)\s*=\s*(.+)$`)
)

// Render evaluates every {{expression}} in the template and returns the
// substituted text. Bare identifiers are resolved from vars; a nil map
// means no variables are defined. The first error aborts the render
// with no partial output.
func (e *Engine) Render(template string, vars map[string]string) (string, error) {
	var sb strings.Builder
	sb.Grow(len(template))

	pos := 0
	for pos < len(template) {
		open := strings.Index(template[pos:], "{{")
		if open < 0 {
			// No more placeholders; a stray "}}" is plain text.
			sb.WriteString(template[pos:])
			break
		}
		open += pos
		sb.WriteString(template[pos:open])

		closing := strings.Index(template[open+2:], "}}")
		if closing < 0 {
			return "", &SyntaxError{Offset: open, Msg: "unmatched {{"}
		}
		expr := strings.TrimSpace(template[open+2 : open+2+closing])

		value, err := e.evaluate(expr, open, vars)
		if err != nil {
			return "", err
		}
		sb.WriteString(value)
		pos = open + 2 + closing + 2
	}

	return sb.String(), nil
}

// evaluate resolves a single placeholder expression. offset is the
// placeholder's position in the template, used for error reporting.
func (e *Engine) evaluate(expr string, offset int, vars map[string]string) (string, error) {
	if matches := callPattern.FindStringSubmatch(expr); matches != nil {
		name := matches[1]
		fn, ok := e.funcs[name]
		if !ok {
			return "", &SyntaxError{Offset: offset, Msg: "unknown function " + strconv.Quote(name)}
		}
		args, err := parseArgs(matches[2], offset)
		if err != nil {
			return "", err
		}
		value, err := fn(args)
		if err != nil {
			return "", &FuncError{Name: name, Err: err}
		}
		return value, nil
	}

	if identPattern.MatchString(expr) {
		value, ok := vars[expr]
		if !ok {
			return "", &SyntaxError{Offset: offset, Msg: "undefined variable " + strconv.Quote(expr)}
		}
		return value, nil
	}

	return "", &SyntaxError{Offset: offset, Msg: "malformed expression " + strconv.Quote(expr)}
}

// parseArgs parses a call-site argument list like
//
//	range=5, options="a|b"
//
// into an Args map. Quoted values are strings; unquoted values that
// parse as integers are int64, anything else is kept as a string.
func parseArgs(list string, offset int) (Args, error) {
	args := make(Args)
	if strings.TrimSpace(list) == "" {
		return args, nil
	}

	for _, part := range splitArgs(list) {
		matches := argPattern.FindStringSubmatch(part)
		if matches == nil {
			return nil, &SyntaxError{Offset: offset, Msg: "malformed argument " + strconv.Quote(part)}
		}
		key := matches[1]
		raw := strings.TrimSpace(matches[2])

		if unquoted, ok := unquote(raw); ok {
			args[key] = unquoted
		} else if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			args[key] = n
		} else {
			args[key] = raw
		}
	}
	return args, nil
}

// splitArgs splits an argument list on commas, respecting quoted
// strings.
func splitArgs(s string) []string {
	var args []string
	var current strings.Builder
	inQuote := false
	quoteChar := byte(0)

	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case inQuote:
			current.WriteByte(ch)
			if ch == quoteChar {
				inQuote = false
			}
		case ch == '"' || ch == '\'':
			inQuote = true
			quoteChar = ch
			current.WriteByte(ch)
		case ch == ',':
			args = append(args, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteByte(ch)
		}
	}
	if current.Len() > 0 {
		args = append(args, strings.TrimSpace(current.String()))
	}
	return args
}

// unquote strips matching surrounding quotes. The second return is
// false when the value is not quoted.
func unquote(s string) (string, bool) {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1], true
		}
	}
	return s, false
}
