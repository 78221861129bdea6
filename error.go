package argparse

import (
	"flag"
	"fmt"
	"strings"
)

// ErrorCode identifies the kind of failure reported by an [Error].
type ErrorCode int

const (
	// ErrHelpRequested is returned when -h or --help is present. It is not a failure: callers
	// should print [Parser.GenerateHelp] and exit cleanly.
	ErrHelpRequested ErrorCode = iota + 1
	ErrUnknownArgument
	ErrMissingValue
	ErrUnexpectedPositional
	ErrMissingRequiredArgument
	ErrOptionInGroup
	ErrFlagValue

	// Registration errors.
	ErrDuplicateName
	ErrDuplicateShortName
	ErrInvalidName
	ErrInvalidShortName
	ErrRequiredFlag
)

func (c ErrorCode) String() string {
	switch c {
	case ErrHelpRequested:
		return "help requested"
	case ErrUnknownArgument:
		return "unknown argument"
	case ErrMissingValue:
		return "missing value"
	case ErrUnexpectedPositional:
		return "unexpected positional argument"
	case ErrMissingRequiredArgument:
		return "missing required argument"
	case ErrOptionInGroup:
		return "option in middle of group"
	case ErrFlagValue:
		return "flag does not take a value"
	case ErrDuplicateName:
		return "duplicate name"
	case ErrDuplicateShortName:
		return "duplicate short name"
	case ErrInvalidName:
		return "invalid name"
	case ErrInvalidShortName:
		return "invalid short name"
	case ErrRequiredFlag:
		return "flag cannot be required"
	default:
		return "unknown error"
	}
}

// Error is returned by [Parser.Parse] and by registration calls. Arg carries the offending token
// or argument name, depending on the code.
type Error struct {
	Code ErrorCode
	Arg  string

	// Suggestions holds similar registered arguments for ErrUnknownArgument.
	Suggestions []string
}

func newError(code ErrorCode, arg string) *Error {
	return &Error{Code: code, Arg: arg}
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch e.Code {
	case ErrHelpRequested:
		return e.Code.String()
	case ErrUnknownArgument:
		if len(e.Suggestions) > 0 {
			return fmt.Sprintf("unknown argument %q. Did you mean one of these?\n\t%s",
				e.Arg,
				strings.Join(e.Suggestions, "\n\t"))
		}
		return fmt.Sprintf("unknown argument %q", e.Arg)
	case ErrUnexpectedPositional:
		return fmt.Sprintf("unexpected positional argument %q", e.Arg)
	case ErrOptionInGroup:
		return fmt.Sprintf("option %q must be the last in a group of short flags", e.Arg)
	}
	return fmt.Sprintf("%s: %q", e.Code, e.Arg)
}

// Is reports whether target is an *Error with the same code. An empty target Arg matches any
// argument, so errors.Is(err, &Error{Code: ErrMissingValue}) checks the kind only. A help error
// also matches [flag.ErrHelp].
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	if e.Code == ErrHelpRequested && target == flag.ErrHelp {
		return true
	}
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code && (t.Arg == "" || t.Arg == e.Arg)
}

// ValueError is returned by [GetValue] and [GetValueAs] when an option value cannot be converted
// to the requested type. It never comes out of [Parser.Parse].
type ValueError struct {
	Name  string
	Value string
	Err   error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("invalid value %q for option %q: %v", e.Value, e.Name, e.Err)
}

func (e *ValueError) Unwrap() error {
	return e.Err
}
