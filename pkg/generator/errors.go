package generator

import (
	"errors"
	"fmt"
)

// ErrBadArgument matches every argument validation failure via
// errors.Is.
var ErrBadArgument = errors.New("bad argument")

// ArgumentError reports a missing or malformed generator argument. It
// aborts the render that invoked the generator.
type ArgumentError struct {
	Generator string
	Argument  string
	Reason    string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("generator %q: argument %q %s", e.Generator, e.Argument, e.Reason)
}

func (e *ArgumentError) Is(target error) bool { return target == ErrBadArgument }
