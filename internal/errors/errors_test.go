package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestUnsupportedFormatError(t *testing.T) {
	err := NewUnsupportedFormatError("resume.txt")

	expectedMsg := "unsupported file format: 'resume.txt' (only .pdf and .docx are accepted)"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Error("Expected error to match ErrUnsupportedFormat sentinel")
	}

	if errors.Is(err, ErrCandidateNotFound) {
		t.Error("Error should not match ErrCandidateNotFound")
	}
}

func TestExtractionError(t *testing.T) {
	cause := fmt.Errorf("file is encrypted")
	err := NewExtractionError("resume.pdf", cause)

	expectedMsg := "failed to extract text from 'resume.pdf': file is encrypted"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrExtractionFailed) {
		t.Error("Expected error to match ErrExtractionFailed sentinel")
	}

	if !errors.Is(err, cause) {
		t.Error("Expected error to unwrap to its cause")
	}

	// Without a cause the message omits the detail
	bare := NewExtractionError("resume.pdf", nil)
	if bare.Error() != "failed to extract text from 'resume.pdf'" {
		t.Errorf("Unexpected message for cause-less error: '%s'", bare.Error())
	}
}

func TestCandidateNotFoundError(t *testing.T) {
	err := NewCandidateNotFoundError(42)

	expectedMsg := "candidate with id 42 not found"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrCandidateNotFound) {
		t.Error("Expected error to match ErrCandidateNotFound sentinel")
	}

	if errors.Is(err, ErrUnsupportedFormat) {
		t.Error("Error should not match ErrUnsupportedFormat")
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("threshold", "must be between 0 and 1")

	expectedMsg := "validation error for field 'threshold': must be between 0 and 1"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrInvalidInput) {
		t.Error("Expected error to match ErrInvalidInput sentinel")
	}

	// Field-less variant
	err2 := NewValidationError("", "body required")
	expectedMsg2 := "validation error: body required"
	if err2.Error() != expectedMsg2 {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg2, err2.Error())
	}
}
