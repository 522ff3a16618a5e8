package domain

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorHelpers(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		want  bool
	}{
		{"sentinel not found", ErrNotFound, IsNotFound, true},
		{"new not found", NewAppError(CodeNotFound, "gone", nil), IsNotFound, true},
		{"wrapped not found", fmt.Errorf("lookup: %w", ErrNotFound), IsNotFound, true},
		{"validation is not not-found", ErrValidation, IsNotFound, false},
		{"validation", NewAppError(CodeValidation, "bad input", nil), IsValidation, true},
		{"invalid enum", NewInvalidEnumError("category", "COOKING"), IsInvalidEnum, true},
		{"invalid page", NewInvalidPageError(5, 3), IsInvalidPage, true},
		{"no updates", ErrNoUpdates, IsNoUpdates, true},
		{"internal", ErrInternal, IsInternal, true},
		{"plain error", errors.New("boom"), IsInternal, false},
		{"nil", nil, IsNotFound, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.check(tt.err); got != tt.want {
				t.Errorf("got %v, want %v for %v", got, tt.want, tt.err)
			}
		})
	}
}

func TestAppErrorMessage(t *testing.T) {
	base := errors.New("disk full")
	err := NewAppError(CodeInternal, "save failed", base)

	if err.Error() != "save failed: disk full" {
		t.Errorf("got %q", err.Error())
	}
	if !errors.Is(err, base) {
		t.Error("expected wrapped error to be reachable via errors.Is")
	}

	bare := NewAppError(CodeValidation, "title is required", nil)
	if bare.Error() != "title is required" {
		t.Errorf("got %q", bare.Error())
	}
}

func TestNewInvalidEnumError(t *testing.T) {
	err := NewInvalidEnumError("category", "COOKING")
	want := `invalid category: "COOKING"`
	if err.Message != want {
		t.Errorf("got %q, want %q", err.Message, want)
	}
}

func TestInvalidPageErrorDetail(t *testing.T) {
	err := NewInvalidPageError(5, 3)

	var detail *InvalidPageError
	if !errors.As(err, &detail) {
		t.Fatal("expected to unwrap *InvalidPageError")
	}
	if detail.RequestedPage != 5 || detail.TotalPages != 3 {
		t.Errorf("got page=%d totalPages=%d, want 5 and 3", detail.RequestedPage, detail.TotalPages)
	}
}

func TestHTTPStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", ErrNotFound, http.StatusNotFound},
		{"validation", ErrValidation, http.StatusBadRequest},
		{"invalid enum", NewInvalidEnumError("category", "X"), http.StatusBadRequest},
		{"invalid page", NewInvalidPageError(2, 1), http.StatusBadRequest},
		{"no updates", ErrNoUpdates, http.StatusBadRequest},
		{"internal", ErrInternal, http.StatusInternalServerError},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
		{"wrapped not found", fmt.Errorf("ctx: %w", ErrNotFound), http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatusCode(tt.err); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}
