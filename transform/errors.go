package transform

import (
	"errors"
	"fmt"
)

// ErrEmptyStack is returned by PopMatrix when there is no snapshot left to
// restore. It means push/pop nesting in caller code is unbalanced and is
// never silently ignored.
var ErrEmptyStack = errors.New("transform: pop with empty matrix stack")

// InvalidArgumentError reports caller misuse: an unknown property kind, a
// malformed value, or a target without a measurable bounding box. The
// enclosing script is expected to stop; nothing is partially applied.
type InvalidArgumentError struct {
	Msg string
}

func (e *InvalidArgumentError) Error() string { return "transform: " + e.Msg }

func invalidf(format string, args ...any) error {
	return &InvalidArgumentError{Msg: fmt.Sprintf(format, args...)}
}
