package errors

import "errors"

// This package defines a centralized set of sentinel errors for the application.
// Services wrap these with fmt.Errorf("%w: ...") and the API layer uses
// errors.Is() to map them to HTTP responses.

var (
	// ErrNotFound signifies that a requested resource could not be located.
	// This is typically mapped to a 404 Not Found HTTP status.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation signifies that input data provided by a client failed
	// business rule validation.
	// This is typically mapped to a 400 Bad Request HTTP status.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidModel signifies that the requested model is not on the allow-list.
	// The prompt endpoints answer it with the "Invalid model" sentinel body.
	ErrInvalidModel = errors.New("invalid model")

	// ErrExtraction signifies that text could not be extracted from an attached
	// file or URL.
	ErrExtraction = errors.New("extraction failed")

	// ErrIndexing signifies that documents could not be written to, or read
	// from, the retrieval index.
	ErrIndexing = errors.New("indexing failed")

	// ErrModelCall signifies that the model runtime failed or returned an
	// unusable response.
	ErrModelCall = errors.New("model call failed")

	// ErrDecode signifies that a structured model response could not be parsed.
	ErrDecode = errors.New("response decode failed")

	// ErrStorage signifies a local file-system or database failure while
	// reading, writing or deleting persisted state.
	ErrStorage = errors.New("storage failure")

	// ErrInternal signifies an unexpected error on the server. This is a generic
	// error used to prevent leaking sensitive implementation details to the client.
	// This is typically mapped to a 500 Internal Server Error HTTP status.
	ErrInternal = errors.New("internal server error")
)
