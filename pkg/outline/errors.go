package outline

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSelection = errors.New("outline: invalid selection")
	ErrCannotMove       = fmt.Errorf("%w: nowhere to move", ErrInvalidSelection)
	ErrInvalidClipboard = errors.New("outline: invalid clipboard")
	ErrEmptyClipboard   = errors.New("outline: clipboard is empty")
	ErrIndexDrift       = errors.New("outline: index drift")
	ErrUnsupported      = errors.New("outline: not supported by markup")
)

// Warning is a non-fatal problem reported alongside a successful result.
type Warning struct {
	Message string
}

func (w Warning) String() string { return w.Message }

// MalformedClipboard is reported when pasted text skips a level.
func MalformedClipboard(line int) Warning {
	return Warning{Message: fmt.Sprintf("clipboard: level incremented by 2 or more at line %d", line)}
}
