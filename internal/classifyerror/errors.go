// Package classifyerror holds the request-level errors of the classifier.
// Normalization misses are not errors and never surface here.
package classifyerror

import (
	"errors"
	"fmt"
)

// MissingDescriptionMessage is the fixed message returned to callers that do
// not send a usable raw_description.
const MissingDescriptionMessage = "A função deve ser chamada com um argumento 'raw_description'."

// ErrInvalidArgument is matched by every request error via errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError reports a missing or unusable field.
type InvalidArgumentError struct {
	Field  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", e.Field, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidArgument) hold.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// InputTooLongError reports a field longer than the configured bound.
type InputTooLongError struct {
	Field  string
	Length int
	Max    int
}

func (e *InputTooLongError) Error() string {
	return fmt.Sprintf("invalid argument %s: length %d exceeds maximum of %d characters",
		e.Field, e.Length, e.Max)
}

// Is makes errors.Is(err, ErrInvalidArgument) hold.
func (e *InputTooLongError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// IsInvalidArgument reports whether err is a request error.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// Message returns the caller-facing message for a request error. Oversize
// input gets its own explanation; every other request error gets the fixed
// missing-description message.
func Message(err error) string {
	var tooLong *InputTooLongError
	if errors.As(err, &tooLong) {
		return tooLong.Error()
	}
	return MissingDescriptionMessage
}
