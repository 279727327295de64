package goerror

import (
	"errors"
	"net/http"
	"testing"
)

func TestNewNotFound(t *testing.T) {
	// Act
	err := NewNotFound("product", "abc-123")

	// Assert
	var gerr *Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if gerr.Kind() != KindNotFound {
		t.Fatalf("expected not found kind, got %v", gerr.Kind())
	}
	if gerr.Msg() != "product with id 'abc-123' was not found" {
		t.Fatalf("unexpected message: %q", gerr.Msg())
	}
	if gerr.StatusCode() != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", gerr.StatusCode())
	}
}

func TestNewBadRequestDefaultMessage(t *testing.T) {
	// Act
	err := NewBadRequest()

	// Assert
	var gerr *Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if gerr.Msg() != "Invalid request body" {
		t.Fatalf("unexpected message: %q", gerr.Msg())
	}
	if gerr.StatusCode() != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", gerr.StatusCode())
	}
}

func TestNewValidationCarriesFields(t *testing.T) {
	// Arrange
	fields := map[string][]string{"Name": {"Name is required"}}

	// Act
	err := NewValidation(fields)

	// Assert
	var gerr *Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if gerr.Msg() != "One or more validation errors occurred." {
		t.Fatalf("unexpected message: %q", gerr.Msg())
	}
	if got := gerr.Fields()["Name"]; len(got) != 1 || got[0] != "Name is required" {
		t.Fatalf("unexpected fields: %v", gerr.Fields())
	}
}

func TestNewServerWrapsCause(t *testing.T) {
	// Arrange
	cause := errors.New("connection refused")

	// Act
	err := NewServer(cause)

	// Assert
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be unwrappable")
	}
	var gerr *Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if gerr.StatusCode() != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", gerr.StatusCode())
	}
	if err.Error() != "connection refused" {
		t.Fatalf("unexpected error string: %q", err.Error())
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"not found", NewNotFound("order", "1"), KindNotFound},
		{"bad request", NewBadRequest(), KindBadRequest},
		{"validation", NewValidation(nil), KindValidation},
		{"server", NewServer(errors.New("boom")), KindServer},
		{"plain error", errors.New("boom"), KindServer},
		{"nil", nil, KindServer},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := KindOf(tc.err); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
