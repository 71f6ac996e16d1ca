package roster

import (
	"errors"
	"fmt"
)

// Kind classifies roster failures.
type Kind string

const (
	KindNotFound  Kind = "not_found"
	KindRead      Kind = "read_failed"
	KindInvalid   Kind = "invalid_roster"
	KindReference Kind = "unknown_reference"
)

// Error wraps a roster failure with the operation, the roster file and the
// entry (entity or step) that caused it.
type Error struct {
	Op   string
	Kind Kind
	Path string
	// Entry names the offending section and 1-based position, e.g. "steps[3]".
	Entry string
	Err   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		msg += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Entry != "" {
		msg += " at " + e.Entry
	}
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind reports whether err is a roster Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var re *Error
	return errors.As(err, &re) && re.Kind == kind
}

func entry(section string, i int) string {
	return fmt.Sprintf("%s[%d]", section, i+1)
}
