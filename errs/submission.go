package errs

import (
	"errors"
	"net/http"
)

// Submission workflow sentinels. Every error produced while moving a draft
// through the form and onto the wire falls into exactly one of these buckets.
var (
	// ErrValidation marks a section-gating failure; recovered in place,
	// never fatal.
	ErrValidation = errors.New("validation failed")

	// ErrEncoding marks a draft that could not be turned into a multipart
	// payload. A required binary missing at encode time lands here.
	ErrEncoding = errors.New("encoding failed")

	// ErrTransport marks a failed call to the collaborator backend:
	// network fault, non-2xx status, or an unreadable response body.
	ErrTransport = errors.New("transport failed")

	// ErrSubmissionInFlight guards the one-submission-at-a-time rule.
	ErrSubmissionInFlight = errors.New("a submission is already in progress")

	// ErrAlreadySubmitted marks a draft whose submission already completed.
	// A workflow submits at most once.
	ErrAlreadySubmitted = errors.New("this project has already been submitted")
)

// GenericTransportMessage is surfaced whenever the collaborator backend did
// not provide a usable error message of its own.
const GenericTransportMessage = "something went wrong, please try again"

func NewValidationError(field, message string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        errors.New(message),
		kind:       ErrValidation,
		Field:      field,
	}
}

func NewEncodingError(field string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        errors.New(field + " is required"),
		kind:       ErrEncoding,
		Field:      field,
	}
}

// NewTransportError carries the server-provided message when there is one,
// otherwise callers pass GenericTransportMessage.
func NewTransportError(message string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        errors.New(message),
		kind:       ErrTransport,
		Cause:      cause,
	}
}

func NewSubmissionInFlightError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusConflict,
		err:        ErrSubmissionInFlight,
		kind:       ErrSubmissionInFlight,
	}
}

func NewAlreadySubmittedError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusConflict,
		err:        ErrAlreadySubmitted,
		kind:       ErrAlreadySubmitted,
	}
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

func IsEncoding(err error) bool {
	return errors.Is(err, ErrEncoding)
}

func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}
