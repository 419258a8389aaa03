package chrono

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// ErrUnsupportedRepresentation indicates that the requested value
// cannot be represented, or that the requested value is not present.
var ErrUnsupportedRepresentation = errors.ErrUnsupported

// InvalidArgumentError is the panic value of Builder methods (and the pattern compiler) when a
// caller supplies a value that is malformed at the point of the call - an out-of-range
// width, an unknown pattern letter, unbalanced quotes or brackets. It is always reported
// eagerly: no builder method leaves partial state in a tree that is later returned to the
// caller.
type InvalidArgumentError struct {
	Message string
}

func (e *InvalidArgumentError) Error() string {
	return e.Message
}

func invalidArgumentf(format string, args ...any) error {
	return &InvalidArgumentError{Message: fmt.Sprintf(format, args...)}
}

// IllegalStateError is the panic value of Builder.OptionalEnd when there is no matching
// OptionalStart to close.
type IllegalStateError struct {
	Message string
}

func (e *IllegalStateError) Error() string {
	return e.Message
}

func illegalStatef(format string, args ...any) error {
	return &IllegalStateError{Message: fmt.Sprintf(format, args...)}
}

// UnsupportedTemporalTypeError is returned (and may be panicked via Must-style wrappers,
// but the engine itself always returns it) when a print encounters a field the supplied
// TemporalAccessor does not support.
type UnsupportedTemporalTypeError struct {
	Field Field
}

func (e *UnsupportedTemporalTypeError) Error() string {
	return fmt.Sprintf("unsupported field: %s", e.Field)
}

// ParseError is returned by Formatter.Parse (never by ParseUnresolved, which reports
// failures through the position's ErrorIndex instead). Its Message embeds the input text
// abbreviated to maxAbbreviatedTextLen characters; Text holds the full input and ErrorIndex
// the index at which parsing failed, mirroring java.time's
// DateTimeParseException.
type ParseError struct {
	Message    string
	Text       string
	ErrorIndex int
	Cause      error
}

func (e *ParseError) Error() string {
	return e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// maxAbbreviatedTextLen is the length at which Formatter.Parse truncates the input text
// embedded in a ParseError message. There is exactly one abbreviation helper, used
// everywhere a parse error message is built.
const maxAbbreviatedTextLen = 64

func abbreviate(text string) string {
	if len(text) <= maxAbbreviatedTextLen {
		return text
	}
	return text[:maxAbbreviatedTextLen] + "..."
}

func newParseError(text string, errorIndex int, cause error) *ParseError {
	return &ParseError{
		Message:    fmt.Sprintf("Text %q could not be parsed: %s", abbreviate(text), cause),
		Text:       text,
		ErrorIndex: errorIndex,
		Cause:      pkgerrors.WithStack(cause),
	}
}
