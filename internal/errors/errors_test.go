package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	plain := Input("spend must be a number")
	if got := plain.Error(); got != "[INPUT_ERROR] spend must be a number" {
		t.Errorf("unexpected message: %s", got)
	}

	wrapped := Parsing("bad catalog", fmt.Errorf("line 3"))
	if got := wrapped.Error(); got != "[PARSING_ERROR] bad catalog: line 3" {
		t.Errorf("unexpected message: %s", got)
	}
}

func TestIsTypeThroughWrapping(t *testing.T) {
	base := NotFound("tier", "platinum")
	wrapped := fmt.Errorf("evaluate: %w", base)

	if !IsType(wrapped, TypeNotFound) {
		t.Error("expected wrapped error to be TypeNotFound")
	}
	if IsType(wrapped, TypeInput) {
		t.Error("wrapped error should not be TypeInput")
	}
	if TypeOf(stderrors.New("boom")) != TypeInternal {
		t.Error("foreign errors should map to TypeInternal")
	}
	if base.Context["tier"] != "platinum" {
		t.Errorf("expected context tier=platinum, got %v", base.Context)
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Config("save failed", cause)

	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
}

func TestContextErrorsAreCanceled(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"canceled", context.Canceled},
		{"deadline", context.DeadlineExceeded},
		{"wrapped", fmt.Errorf("evaluate: %w", context.Canceled)},
		{"typed", Canceled(context.Canceled)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TypeOf(tt.err); got != TypeCanceled {
				t.Errorf("expected %s, got %s", TypeCanceled, got)
			}
		})
	}

	if !stderrors.Is(Canceled(context.Canceled), context.Canceled) {
		t.Error("Canceled should keep the context error as its cause")
	}
}

func TestInternalWrapsCause(t *testing.T) {
	cause := stderrors.New("json: unsupported value: +Inf")
	err := Internal("failed to encode response", cause)

	if !IsType(err, TypeInternal) {
		t.Errorf("expected TypeInternal, got %s", err.Type)
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
	if IsType(nil, TypeInternal) {
		t.Error("nil error should have no type")
	}
}
