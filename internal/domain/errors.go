package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes for business logic errors.
const (
	CodeNotFound    = 1
	CodeValidation  = 2
	CodeInvalidEnum = 3
	CodeInvalidPage = 4
	CodeNoUpdates   = 5
	CodeInternal    = 6
)

// AppError represents a business logic error with a code, message, and optional wrapped error.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the wrapped error for use with errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// Predefined business errors.
//
// To check whether an error matches one of these categories, use the
// corresponding helper function (IsNotFound, IsValidation, etc.) instead of
// errors.Is. The helpers use errors.As with error-code comparison, so they
// correctly match any *AppError that carries the same code — including
// freshly constructed instances from NewAppError and wrapped errors —
// whereas errors.Is only matches by pointer identity with the specific
// sentinel below.
var (
	ErrNotFound   = &AppError{Code: CodeNotFound, Message: "study log not found"}
	ErrValidation = &AppError{Code: CodeValidation, Message: "validation error"}
	ErrNoUpdates  = &AppError{Code: CodeNoUpdates, Message: "no fields to update"}
	ErrInternal   = &AppError{Code: CodeInternal, Message: "internal error"}
)

// NewAppError creates a new AppError with the given code, message, and wrapped error.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewInvalidEnumError creates a validation error for an unrecognized enum token,
// naming the offending field and value.
func NewInvalidEnumError(field, value string) *AppError {
	return &AppError{
		Code:    CodeInvalidEnum,
		Message: fmt.Sprintf("invalid %s: %q", field, value),
	}
}

// InvalidPageError carries the details of an out-of-range page request so
// callers can build a precise response without string inspection.
type InvalidPageError struct {
	RequestedPage int
	TotalPages    int
}

// Error implements the error interface.
func (e *InvalidPageError) Error() string {
	return fmt.Sprintf("invalid page request: page %d, total pages %d (valid range 0..%d)",
		e.RequestedPage, e.TotalPages, e.TotalPages-1)
}

// NewInvalidPageError creates an AppError wrapping an InvalidPageError with the
// requested page and the computed total page count.
func NewInvalidPageError(requestedPage, totalPages int) *AppError {
	detail := &InvalidPageError{RequestedPage: requestedPage, TotalPages: totalPages}
	return &AppError{
		Code:    CodeInvalidPage,
		Message: detail.Error(),
		Err:     detail,
	}
}

// IsNotFound reports whether err is or wraps an AppError with CodeNotFound.
func IsNotFound(err error) bool {
	return hasCode(err, CodeNotFound)
}

// IsValidation reports whether err is or wraps an AppError with CodeValidation.
func IsValidation(err error) bool {
	return hasCode(err, CodeValidation)
}

// IsInvalidEnum reports whether err is or wraps an AppError with CodeInvalidEnum.
func IsInvalidEnum(err error) bool {
	return hasCode(err, CodeInvalidEnum)
}

// IsInvalidPage reports whether err is or wraps an AppError with CodeInvalidPage.
func IsInvalidPage(err error) bool {
	return hasCode(err, CodeInvalidPage)
}

// IsNoUpdates reports whether err is or wraps an AppError with CodeNoUpdates.
func IsNoUpdates(err error) bool {
	return hasCode(err, CodeNoUpdates)
}

// IsInternal reports whether err is or wraps an AppError with CodeInternal.
func IsInternal(err error) bool {
	return hasCode(err, CodeInternal)
}

// hasCode checks whether err is or wraps an *AppError with the given code.
func hasCode(err error, code int) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// HTTPStatusCode maps an error to an HTTP status code.
// If the error is an *AppError, the code is mapped; otherwise http.StatusInternalServerError is returned.
func HTTPStatusCode(err error) int {
	var appErr *AppError
	if err != nil && errors.As(err, &appErr) {
		switch appErr.Code {
		case CodeNotFound:
			return http.StatusNotFound
		case CodeValidation, CodeInvalidEnum, CodeInvalidPage, CodeNoUpdates:
			return http.StatusBadRequest
		case CodeInternal:
			return http.StatusInternalServerError
		}
	}
	return http.StatusInternalServerError
}
