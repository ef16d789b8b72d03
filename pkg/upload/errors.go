package upload

import "errors"

var (
	// ErrNilFileHeader is returned when validation is asked about a nil file.
	ErrNilFileHeader = errors.New("file header is nil")

	// ErrFileTooLarge is returned when the file exceeds the size limit.
	ErrFileTooLarge = errors.New("file too large")

	// ErrTypeNotAllowed is returned when the MIME type is not on the allow-list.
	ErrTypeNotAllowed = errors.New("file type not allowed")

	// ErrExtensionNotAllowed is returned when the extension is not on the allow-list.
	ErrExtensionNotAllowed = errors.New("file extension not allowed")

	// ErrFailedToOpenFile is returned when the uploaded file cannot be opened.
	ErrFailedToOpenFile = errors.New("failed to open file")

	// ErrFailedToReadFile is returned when the uploaded file cannot be read.
	ErrFailedToReadFile = errors.New("failed to read file")
)
