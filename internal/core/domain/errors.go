package domain

import "errors"

// Domain errors represent input and processing failures. Ingestion
// operations that promise failure-as-value (URL ingestion, repository
// batches, document extraction) convert these into result fields;
// they surface directly only from upload validation.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedFileType indicates an upload with a file type the
	// extractor does not handle.
	ErrUnsupportedFileType = errors.New("unsupported file type")

	// ErrFileTooLarge indicates an upload over the configured limit.
	ErrFileTooLarge = errors.New("file too large")
)
