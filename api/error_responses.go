package api

import (
	goerrors "errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zhassan-dev/resume-screener/internal/errors"
)

// ErrorCode represents standardized error codes for the API
type ErrorCode string

const (
	// Client Error Codes (4xx)
	ErrorCodeValidationFailed      ErrorCode = "VALIDATION_FAILED"
	ErrorCodeInvalidJSON           ErrorCode = "INVALID_JSON"
	ErrorCodeUnsupportedFormat     ErrorCode = "UNSUPPORTED_FORMAT"
	ErrorCodeCandidateNotFound     ErrorCode = "CANDIDATE_NOT_FOUND"
	ErrorCodeMissingJobDescription ErrorCode = "MISSING_JOB_DESCRIPTION"

	// Server Error Codes (5xx)
	ErrorCodeExtractionFailed ErrorCode = "EXTRACTION_FAILED"
	ErrorCodeInternalError    ErrorCode = "INTERNAL_ERROR"
)

// APIError represents a standardized API error response
type APIError struct {
	Error     string    `json:"error"`
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// SendError sends a standardized error response
func SendError(c *gin.Context, statusCode int, code ErrorCode, message string) {
	c.JSON(statusCode, &APIError{
		Error:     "Request failed",
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
	})
}

// SendPipelineError maps a pipeline error to the matching status code and
// machine-readable error code.
func SendPipelineError(c *gin.Context, err error) {
	switch {
	case goerrors.Is(err, errors.ErrUnsupportedFormat):
		SendError(c, http.StatusBadRequest, ErrorCodeUnsupportedFormat, err.Error())
	case goerrors.Is(err, errors.ErrMissingJobDescription):
		SendError(c, http.StatusBadRequest, ErrorCodeMissingJobDescription, err.Error())
	case goerrors.Is(err, errors.ErrInvalidInput):
		SendError(c, http.StatusBadRequest, ErrorCodeValidationFailed, err.Error())
	case goerrors.Is(err, errors.ErrCandidateNotFound):
		SendError(c, http.StatusNotFound, ErrorCodeCandidateNotFound, err.Error())
	case goerrors.Is(err, errors.ErrExtractionFailed):
		SendError(c, http.StatusUnprocessableEntity, ErrorCodeExtractionFailed, err.Error())
	default:
		SendError(c, http.StatusInternalServerError, ErrorCodeInternalError, err.Error())
	}
}

// SendInvalidJSONError sends a standardized invalid JSON error
func SendInvalidJSONError(c *gin.Context, err error) {
	SendError(c, http.StatusBadRequest, ErrorCodeInvalidJSON,
		"Invalid JSON in request body: "+err.Error())
}
