package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/marcos-nsantos/pixforge/internal/domain"
)

type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Err        error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func NotFound(message string) *AppError {
	return &AppError{
		Code:       "NOT_FOUND",
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

func BadRequest(code, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func Processing(message string, err error) *AppError {
	return &AppError{
		Code:       "PROCESSING_ERROR",
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Err:        err,
	}
}

func Internal(err error) *AppError {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		StatusCode: http.StatusInternalServerError,
		Err:        err,
	}
}

// FromDomain maps domain errors to the response the client sees. Unknown
// errors become a generic internal error that keeps the cause for logging.
func FromDomain(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, domain.ErrNoFileProvided):
		return BadRequest("NO_FILE", "No file provided")
	case errors.Is(err, domain.ErrFileTooLarge):
		return BadRequest("FILE_TOO_LARGE", "File size exceeds 10MB limit")
	case errors.Is(err, domain.ErrUnsupportedType):
		return BadRequest("INVALID_TYPE", "Invalid file type. Only JPG, PNG, and WEBP are supported")
	case errors.Is(err, domain.ErrNoFileSpecified):
		return BadRequest("NO_FILE", "No file specified")
	case errors.Is(err, domain.ErrMissingDimensions):
		return BadRequest("VALIDATION_ERROR", "Width and height are required for ratio resize")
	case errors.Is(err, domain.ErrInvalidPercentage):
		return BadRequest("VALIDATION_ERROR", "Percentage must be between 10 and 100")
	case errors.Is(err, domain.ErrInvalidResizeType):
		return BadRequest("VALIDATION_ERROR", "Invalid resize type")
	case errors.Is(err, domain.ErrInvalidDimensions):
		return BadRequest("VALIDATION_ERROR", "Width and height are required for ratio resize")
	case errors.Is(err, domain.ErrDimensionsTooLarge):
		return BadRequest("DIMENSIONS_TOO_LARGE", "Requested dimensions exceed the supported limit")
	case errors.Is(err, domain.ErrImageTooLarge):
		return BadRequest("IMAGE_TOO_LARGE", "Image dimensions exceed the supported limit")
	case errors.Is(err, domain.ErrUnreadableImage):
		return BadRequest("UNREADABLE_IMAGE", "Could not determine image dimensions")
	case errors.Is(err, domain.ErrFileNotFound):
		return NotFound("File not found")
	case errors.Is(err, domain.ErrResizeFailed):
		return Processing("Failed to resize image", err)
	default:
		return Internal(err)
	}
}

func Is(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

func StatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
