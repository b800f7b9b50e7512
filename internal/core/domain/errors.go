package domain

import "fmt"

// ErrorKind tags a domain error with the name rendered in the API error
// envelope ({"Detail": ..., "Type": <kind>}).
type ErrorKind string

const (
	KindArgument        ErrorKind = "ArgumentError"
	KindInvalidArgument ErrorKind = "InvalidArgumentError"
	KindMissingArgument ErrorKind = "MissingArgumentError"
	KindValidation      ErrorKind = "ValidationError"
	KindAuthentication  ErrorKind = "AuthenticationError"
	KindDatasetDownload ErrorKind = "DatasetDownloadError"
	KindNotFound        ErrorKind = "NotFoundError"
)

// Error is the single error type raised by the domain and service layers.
// Errors propagate unhandled up to the HTTP error handler, which maps the
// kind to a status code.
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

// Is lets errors.Is match two domain errors by kind alone, so callers can
// test against a prototype like domain.NewNotFoundError("").
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func NewInvalidArgumentError(msg string) *Error {
	return &Error{Kind: KindInvalidArgument, Message: msg}
}

func NewMissingArgumentError(msg string) *Error {
	return &Error{Kind: KindMissingArgument, Message: msg}
}

func NewValidationError(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func NewAuthenticationError(msg string) *Error {
	return &Error{Kind: KindAuthentication, Message: msg}
}

func NewNotFoundError(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// NewDatasetDownloadError wraps the transport failure behind a dataset
// download error; fatal to the ingestion job that raised it.
func NewDatasetDownloadError(msg string, cause error) *Error {
	return &Error{Kind: KindDatasetDownload, Message: msg, Cause: cause}
}
