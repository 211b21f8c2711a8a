package types

import "errors"

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindIO    ErrKind = iota // input names an existing file that cannot be read
	ErrKindParse                // markup failed to parse or contains no elements
	ErrKindQuery                // path query rejected as syntactically invalid
)

// String implements the Stringer interface for ErrKind.
func (k ErrKind) String() string {
	switch k {
	case ErrKindIO:
		return "io"
	case ErrKindParse:
		return "parse"
	case ErrKindQuery:
		return "query"
	default:
		return "unknown"
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// IOErr wraps err as an ErrKindIO error.
func IOErr(msg string, err error) *Error {
	return &Error{Kind: ErrKindIO, Msg: msg, Err: err}
}

// ParseErr wraps err as an ErrKindParse error.
func ParseErr(msg string, err error) *Error {
	return &Error{Kind: ErrKindParse, Msg: msg, Err: err}
}

// QueryErr wraps err as an ErrKindQuery error.
func QueryErr(msg string, err error) *Error {
	return &Error{Kind: ErrKindQuery, Msg: msg, Err: err}
}

// Sentinels commonly returned by implementations.
var (
	// ErrNoStructure indicates markup that parsed but contains no element at
	// all (e.g., plain text or an empty string).
	ErrNoStructure = &Error{Kind: ErrKindParse, Msg: "markup contains no elements"}
)

// KindOf extracts the ErrKind from err, walking the unwrap chain.
// The second return is false when err carries no *Error.
func KindOf(err error) (ErrKind, bool) {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind, true
	}
	return 0, false
}
