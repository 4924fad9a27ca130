package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestErrorString(t *testing.T) {
	cause := errors.New("connection refused")

	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"plain", New(ErrCodeInvalidConfig, "books per row must be positive, got %d", -1), "INVALID_CONFIG: books per row must be positive, got -1"},
		{"wrapped", Wrap(ErrCodeNetwork, cause, "fetch cover"), "NETWORK_ERROR: fetch cover: connection refused"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("eof")
	err := Wrap(ErrCodeInvalidInput, cause, "books.json")
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false")
	}
	if errors.Unwrap(err) != cause {
		t.Error("Unwrap did not return the cause")
	}
}

func TestCodes(t *testing.T) {
	inner := New(ErrCodeInvalidInput, "inner")

	tests := []struct {
		name string
		err  error
		code Code
	}{
		{"direct", New(ErrCodeInvalidFormat, "gif"), ErrCodeInvalidFormat},
		{"outermost wins", Wrap(ErrCodeNetwork, inner, "outer"), ErrCodeNetwork},
		{"through fmt", fmt.Errorf("render: %w", New(ErrCodeInvalidConfig, "seed")), ErrCodeInvalidConfig},
		{"plain", errors.New("plain"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.code {
				t.Errorf("GetCode() = %q, want %q", got, tt.code)
			}
			if tt.code != "" && !Is(tt.err, tt.code) {
				t.Errorf("Is(err, %q) = false", tt.code)
			}
			if Is(tt.err, ErrCodeUnsupported) {
				t.Error("Is matched an unrelated code")
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidStyle, "unknown style %q", "neon")); got != `unknown style "neon"` {
		t.Errorf("UserMessage(coded) = %q", got)
	}
	if got := UserMessage(errors.New("plain")); got != "plain" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"invalid config", New(ErrCodeInvalidConfig, "per row 0"), ExitUsage},
		{"wrapped invalid config", fmt.Errorf("plan: %w", New(ErrCodeInvalidConfig, "seed -1")), ExitUsage},
		{"cancelled", fmt.Errorf("render: %w", context.Canceled), ExitInterrupted},
		{"missing file", New(ErrCodeFileNotFound, "books.json"), ExitFailure},
		{"plain", errors.New("boom"), ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
