package pkg

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/simp-lee/studylog/internal/domain"
)

// Response is the standard JSON envelope for API responses.
type Response struct {
	Success bool       `json:"success"`
	Data    any        `json:"data"`
	Error   *ErrorInfo `json:"error"`
}

// ErrorInfo describes a failed request.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes surfaced to clients.
const (
	ErrCodeNotFound       = "NOT_FOUND"
	ErrCodeInvalidInput   = "INVALID_INPUT"
	ErrCodeInvalidPage    = "INVALID_PAGE_REQUEST"
	ErrCodeInternalServer = "INTERNAL_SERVER_ERROR"
)

// Success sends a 200 JSON response with the given data.
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// Created sends a 201 JSON response with the given data.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Data:    data,
	})
}

// Error sends a JSON error response. *domain.AppError codes map to the
// appropriate HTTP status and client error code; anything else is a 500.
func Error(c *gin.Context, err error) {
	status := domain.HTTPStatusCode(err)

	info := &ErrorInfo{
		Code:    errorCode(err),
		Message: "internal error",
	}
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		info.Message = appErr.Message
	}

	c.JSON(status, Response{
		Success: false,
		Error:   info,
	})
}

// errorCode maps a domain error to its client-facing error code string.
func errorCode(err error) string {
	switch {
	case domain.IsNotFound(err):
		return ErrCodeNotFound
	case domain.IsInvalidPage(err):
		return ErrCodeInvalidPage
	case domain.IsValidation(err), domain.IsInvalidEnum(err), domain.IsNoUpdates(err):
		return ErrCodeInvalidInput
	default:
		return ErrCodeInternalServer
	}
}

// BindAndValidate binds the request body to obj and validates it.
// On failure it automatically sends an error response and returns false.
// Because obj is available, JSON struct tags are used for field names when possible.
// Usage in handlers:
//
//	if !pkg.BindAndValidate(c, &req) { return }
func BindAndValidate(c *gin.Context, obj any) bool {
	if err := c.ShouldBind(obj); err != nil {
		bindError(c, err, obj)
		return false
	}
	return true
}

// bindError sends a 400 response for a failed bind. Validator errors are
// condensed into a per-field message; other bind failures (malformed JSON,
// bad field types) report the underlying error.
func bindError(c *gin.Context, err error, obj any) {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Error:   &ErrorInfo{Code: ErrCodeInvalidInput, Message: err.Error()},
		})
		return
	}

	// Build a struct-field → json-tag map when the concrete type is available.
	jsonTags := buildJSONTagMap(obj)

	parts := make([]string, 0, len(ve))
	for _, fe := range ve {
		name := fe.Field()
		if tag, ok := jsonTags[fe.StructField()]; ok {
			name = tag
		} else {
			name = strings.ToLower(name)
		}
		msg := fe.Tag()
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		parts = append(parts, name+": "+msg)
	}

	c.JSON(http.StatusBadRequest, Response{
		Success: false,
		Error:   &ErrorInfo{Code: ErrCodeInvalidInput, Message: strings.Join(parts, "; ")},
	})
}

// buildJSONTagMap returns a map from struct field name to its JSON tag name.
// If obj is nil or not a struct (pointer), it returns an empty map.
func buildJSONTagMap(obj any) map[string]string {
	if obj == nil {
		return nil
	}
	t := reflect.TypeOf(obj)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	m := make(map[string]string, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("json")
		if name := parseJSONTagName(tag); name != "" {
			m[f.Name] = name
		}
	}
	return m
}

// parseJSONTagName extracts the field name from a JSON struct tag value.
func parseJSONTagName(tag string) string {
	if tag == "" || tag == "-" {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" || name == "-" {
		return ""
	}
	return name
}
