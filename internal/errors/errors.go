package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrUnsupportedFormat is returned when an upload has an extension no extractor handles
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrExtractionFailed is returned when a file could not be read or parsed at all
	ErrExtractionFailed = errors.New("text extraction failed")

	// ErrCandidateNotFound is returned when a candidate id is not in the store
	ErrCandidateNotFound = errors.New("candidate not found")

	// ErrMissingJobDescription is returned when a classification pass has no job description text
	ErrMissingJobDescription = errors.New("job description required")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// UnsupportedFormatError represents an upload whose extension is not handled
type UnsupportedFormatError struct {
	Filename string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format: '%s' (only .pdf and .docx are accepted)", e.Filename)
}

func (e *UnsupportedFormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}

// NewUnsupportedFormatError creates a new UnsupportedFormatError
func NewUnsupportedFormatError(filename string) *UnsupportedFormatError {
	return &UnsupportedFormatError{Filename: filename}
}

// ExtractionError represents a file that could not be read or parsed at all
type ExtractionError struct {
	Filename string
	Cause    error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to extract text from '%s': %v", e.Filename, e.Cause)
	}
	return fmt.Sprintf("failed to extract text from '%s'", e.Filename)
}

func (e *ExtractionError) Is(target error) bool {
	return target == ErrExtractionFailed
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// NewExtractionError creates a new ExtractionError
func NewExtractionError(filename string, cause error) *ExtractionError {
	return &ExtractionError{Filename: filename, Cause: cause}
}

// CandidateNotFoundError represents a candidate lookup miss with context
type CandidateNotFoundError struct {
	ID int
}

func (e *CandidateNotFoundError) Error() string {
	return fmt.Sprintf("candidate with id %d not found", e.ID)
}

func (e *CandidateNotFoundError) Is(target error) bool {
	return target == ErrCandidateNotFound
}

// NewCandidateNotFoundError creates a new CandidateNotFoundError
func NewCandidateNotFoundError(id int) *CandidateNotFoundError {
	return &CandidateNotFoundError{ID: id}
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
