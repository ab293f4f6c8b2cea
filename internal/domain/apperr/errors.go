// Package apperr holds the failure kinds shared by every layer. Infrastructure maps driver
// errors onto them, usecases wrap them with context and the presentation layer turns them
// into HTTP statuses.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
	ErrStorage    = errors.New("object storage failure")

	ErrAccessDenied           = errors.New("access denied")
	ErrAuthenticationRequired = fmt.Errorf("%w: authentication required", ErrAccessDenied)
	ErrNotOwner               = fmt.Errorf("%w: requester is not the owner", ErrAccessDenied)

	ErrSourceRequired     = fmt.Errorf("%w: video source file is required", ErrValidation)
	ErrInvalidVideoFormat = fmt.Errorf("%w: only mp4 video is supported", ErrValidation)
	ErrDurationExtract    = errors.New("video duration extraction failed")
)

// DetailError is a failure kind plus a message written for the caller. Driver and parser
// causes never go into it; wrap them next to it instead.
type DetailError struct {
	kind   error
	detail string
}

func Detail(kind error, format string, args ...any) *DetailError {
	return &DetailError{
		kind:   kind,
		detail: fmt.Sprintf(format, args...),
	}
}

func (e *DetailError) Error() string {
	return e.kind.Error() + ": " + e.detail
}

func (e *DetailError) Unwrap() error {
	return e.kind
}

// publicKinds is ordered from the most to the least specific kind.
var publicKinds = []error{
	ErrSourceRequired,
	ErrInvalidVideoFormat,
	ErrAuthenticationRequired,
	ErrNotOwner,
	ErrAccessDenied,
	ErrNotFound,
	ErrValidation,
	ErrConflict,
	ErrDurationExtract,
}

// PublicMessage returns the text of err that may be shown to a caller: the first caller
// detail in the chain, or else the message of the most specific known kind. ok is false
// when err carries no known kind.
func PublicMessage(err error) (string, bool) {
	var detail *DetailError
	if errors.As(err, &detail) {
		return detail.Error(), true
	}

	for _, kind := range publicKinds {
		if errors.Is(err, kind) {
			return kind.Error(), true
		}
	}

	return "", false
}
