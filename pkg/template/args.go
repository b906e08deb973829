package template

// Args holds the named arguments parsed from a placeholder call site.
// Values are either string or int64, matching the two literal forms the
// template syntax can express. Args are built per invocation and never
// retained between renders.
type Args map[string]any

// Has reports whether the argument was supplied at the call site.
func (a Args) Has(key string) bool {
	_, ok := a[key]
	return ok
}

// String returns the argument as a string. The second return is false
// when the argument is absent or not a string literal.
func (a Args) String(key string) (string, bool) {
	s, ok := a[key].(string)
	return s, ok
}

// Int returns the argument as an integer. The second return is false
// when the argument is absent or not an integer literal; a quoted
// number like "3" is a string, not an integer.
func (a Args) Int(key string) (int64, bool) {
	n, ok := a[key].(int64)
	return n, ok
}
