package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestGetAppErrorPassthrough(t *testing.T) {
	orig := NewNotFoundError("Invoice")
	got := GetAppError(orig)
	if got != orig {
		t.Errorf("GetAppError should return the original *AppError")
	}
	if got.Code != http.StatusNotFound {
		t.Errorf("code = %d, want %d", got.Code, http.StatusNotFound)
	}
	if got.Message != "Invoice not found" {
		t.Errorf("message = %q", got.Message)
	}
}

func TestGetAppErrorWrapped(t *testing.T) {
	wrapped := fmt.Errorf("while updating: %w", ErrForbidden)
	got := GetAppError(wrapped)
	if got.Code != http.StatusForbidden {
		t.Errorf("code = %d, want %d", got.Code, http.StatusForbidden)
	}
}

func TestGetAppErrorPlain(t *testing.T) {
	got := GetAppError(errors.New("disk on fire"))
	if got.Code != http.StatusInternalServerError {
		t.Errorf("plain errors map to 500, got %d", got.Code)
	}
}

func TestIsAppError(t *testing.T) {
	if !IsAppError(ErrNotFound) {
		t.Error("sentinel should be an AppError")
	}
	if IsAppError(errors.New("nope")) {
		t.Error("plain error should not be an AppError")
	}
}
