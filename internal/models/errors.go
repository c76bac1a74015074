package models

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed conversion.
type ErrorKind string

const (
	KindMissingInput     ErrorKind = "missing-input"
	KindNoText           ErrorKind = "no-extractable-text"
	KindInsufficientData ErrorKind = "insufficient-data"
	KindMalformedRecord  ErrorKind = "malformed-record"
	KindOutputWrite      ErrorKind = "output-write"
	KindUncategorized    ErrorKind = "uncategorized"
)

// ExitCode maps an error kind to the process exit status.
func (k ErrorKind) ExitCode() int {
	switch k {
	case KindMissingInput:
		return 2
	case KindNoText:
		return 3
	case KindInsufficientData:
		return 4
	case KindMalformedRecord:
		return 5
	case KindOutputWrite:
		return 6
	default:
		return 1
	}
}

// ExtractError is a conversion failure tagged with its kind.
type ExtractError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *ExtractError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExtractError) Unwrap() error {
	return e.Err
}

// NewError creates an ExtractError.
func NewError(kind ErrorKind, message string, err error) *ExtractError {
	return &ExtractError{Kind: kind, Message: message, Err: err}
}

// KindOf returns the kind of the first ExtractError in err's chain,
// or KindUncategorized when there is none.
func KindOf(err error) ErrorKind {
	var ee *ExtractError
	if errors.As(err, &ee) {
		return ee.Kind
	}
	return KindUncategorized
}
