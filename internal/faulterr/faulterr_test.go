package faulterr

import (
	"errors"
	"fmt"
	"testing"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindConfig, "config error"},
		{KindResolution, "resolution error"},
		{KindRegistry, "registry error"},
		{KindInternal, "internal error"},
		{Kind(999), "unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("Kind.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{"nil error", nil, "<nil>"},
		{
			"full error",
			&Error{Op: "resolve", Kind: KindResolution, Detail: "symbol not found", Err: fmt.Errorf("dlsym failed")},
			"resolve: symbol not found: dlsym failed",
		},
		{
			"kind only",
			&Error{Kind: KindRegistry},
			"registry error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Is(t *testing.T) {
	err1 := &Error{Kind: KindResolution, Op: "a"}
	err2 := &Error{Kind: KindResolution, Op: "b"}
	err3 := &Error{Kind: KindConfig, Op: "c"}

	if !err1.Is(err2) {
		t.Error("same kind should match")
	}
	if err1.Is(err3) {
		t.Error("different kind should not match")
	}
	if err1.Is(fmt.Errorf("plain")) {
		t.Error("non-*Error should not match")
	}
}

func TestIsKind(t *testing.T) {
	err := &Error{Kind: KindRegistry}
	wrapped := fmt.Errorf("wrapped: %w", err)

	if !IsKind(wrapped, KindRegistry) {
		t.Error("IsKind should see through fmt.Errorf wrapping")
	}
	if IsKind(wrapped, KindConfig) {
		t.Error("IsKind should not match a different kind")
	}
}

func TestSentinelErrors(t *testing.T) {
	wrapped := Wrap(fmt.Errorf("dlopen: no such file"), KindResolution, "resolve")
	if !errors.Is(wrapped, ErrSymbolNotFound) {
		t.Error("errors.Is should match ErrSymbolNotFound by kind")
	}
}
