package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidFace, "face %d has %d vertices", 3, 2)

	if err.Code != ErrCodeInvalidFace {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidFace)
	}

	if err.Message != "face 3 has 2 vertices" {
		t.Errorf("Message = %v, want %v", err.Message, "face 3 has 2 vertices")
	}

	expected := "INVALID_FACE: face 3 has 2 vertices"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(ErrCodeWriteFailed, cause, "packet 20")

	if err.Code != ErrCodeWriteFailed {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeWriteFailed)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{"matching code", New(ErrCodeInvalidEdge, "test"), ErrCodeInvalidEdge, true},
		{"different code", New(ErrCodeInvalidEdge, "test"), ErrCodeInvalidFace, false},
		{"plain error", errors.New("plain"), ErrCodeInvalidEdge, false},
		{"wrapped in fmt", fmt.Errorf("outer: %w", New(ErrCodeFileNotFound, "gone")), ErrCodeFileNotFound, true},
		{"nil error", nil, ErrCodeInvalidEdge, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInvalidMesh, "bad")); got != ErrCodeInvalidMesh {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeInvalidMesh)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode() = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidProject, "no objects")); got != "no objects" {
		t.Errorf("UserMessage() = %q, want %q", got, "no objects")
	}
	if got := UserMessage(errors.New("plain")); got != "plain" {
		t.Errorf("UserMessage() = %q, want %q", got, "plain")
	}
}
