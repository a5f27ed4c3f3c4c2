// Package typoerr holds the single error taxonomy shared by the dictionary
// loader, the rule engine and the Typo facade.
package typoerr

import (
	"errors"
	"fmt"
)

// Type tags an Error with its kind.
type Type int

const (
	// InvalidInput is returned for empty dictionary content and for empty or
	// whitespace-only words.
	InvalidInput Type = iota + 1
	// DictionaryLoadError is returned when a dictionary could not be built at all.
	DictionaryLoadError
)

func (t Type) String() string {
	switch t {
	case InvalidInput:
		return "invalid input"
	case DictionaryLoadError:
		return "dictionary load error"
	default:
		return fmt.Sprintf("typoerr.Type(%d)", int(t))
	}
}

// Sentinels for errors.Is matching. Only the Type is compared.
var (
	ErrInvalidInput   = &Error{Type: InvalidInput}
	ErrDictionaryLoad = &Error{Type: DictionaryLoadError}
)

// Error is the error value returned by every typo package.
type Error struct {
	Type Type
	// Op names the failing operation, e.g. "parseDicFile" or "check".
	Op  string
	Msg string
	Err error
}

// New builds an Error without a cause.
func New(t Type, op, msg string) *Error {
	return &Error{Type: t, Op: op, Msg: msg}
}

// Wrap builds an Error around cause.
func Wrap(t Type, op string, cause error) *Error {
	return &Error{Type: t, Op: op, Err: cause}
}

func (e *Error) Error() string {
	s := "typo"
	if e.Op != "" {
		s += ": " + e.Op
	}
	s += ": " + e.Type.String()
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same Type.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Type == e.Type
}

// IsType reports whether any error in err's chain is an *Error of type t.
func IsType(err error, t Type) bool {
	return errors.Is(err, &Error{Type: t})
}
