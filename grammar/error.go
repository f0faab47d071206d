package grammar

import "fmt"

// ErrorCode is the closed error taxonomy of §7. It mirrors
// original_source/core/error.h's ErrorCode enum; DictionaryLoadFailed folds
// into FileNotFound/ParseError (see SPEC_FULL.md §D.3) and OutOfMemory is
// not modeled (Go has no recoverable allocation-failure signal to carry).
type ErrorCode int

const (
	// Success is the zero value; Error values with this code are never
	// constructed by NewError — it exists only so the zero ErrorCode is
	// meaningful if a caller zero-values an Error by mistake.
	Success ErrorCode = iota
	InvalidUtf8
	FileNotFound
	ParseError
	InvalidInput
	InternalError
)

func (c ErrorCode) String() string {
	switch c {
	case Success:
		return "Success"
	case InvalidUtf8:
		return "InvalidUtf8"
	case FileNotFound:
		return "FileNotFound"
	case ParseError:
		return "ParseError"
	case InvalidInput:
		return "InvalidInput"
	case InternalError:
		return "InternalError"
	default:
		return fmt.Sprintf("ErrorCode(%d)", int(c))
	}
}

// Error is the concrete error type returned by every fallible operation in
// this module. It carries a closed code so callers can branch with
// errors.As without string-matching messages.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("suzume: %s: %s", e.Code, e.Message)
}

// NewError constructs an *Error. Returned as the `error` interface so
// callers use errors.As(err, &grammar.Error{}) rather than a concrete type
// switch.
func NewError(code ErrorCode, message string) error {
	return &Error{Code: code, Message: message}
}

// Wrap annotates err with additional context, preserving its ErrorCode when
// err is already a *Error; otherwise it is classified as InternalError.
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	var ge *Error
	if e, ok := err.(*Error); ok {
		ge = e
	} else {
		ge = &Error{Code: InternalError, Message: err.Error()}
	}
	return &Error{Code: ge.Code, Message: context + ": " + ge.Message}
}

// CodeOf returns the ErrorCode of err, or InternalError if err is not a
// *Error produced by this module.
func CodeOf(err error) ErrorCode {
	if e, ok := err.(*Error); ok {
		return e.Code
	}
	return InternalError
}
