package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	t.Parallel()

	plain := SourceUnavailable("order source down")
	if plain.Error() != "order source down" {
		t.Errorf("expected message only, got %q", plain.Error())
	}

	cause := errors.New("connection refused")
	wrapped := Wrap(cause, ErrCodeSourceUnavailable, "list orders")
	if wrapped.Error() != "list orders: connection refused" {
		t.Errorf("expected message with cause, got %q", wrapped.Error())
	}
}

func TestWrap_NilError(t *testing.T) {
	t.Parallel()

	if Wrap(nil, ErrCodeInternal, "something") != nil {
		t.Error("expected Wrap(nil, ...) to return nil")
	}
	if Wrapf(nil, ErrCodeInternal, "something %d", 1) != nil {
		t.Error("expected Wrapf(nil, ...) to return nil")
	}
}

func TestWrap_PreservesCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("disk full")
	err := Wrap(cause, ErrCodePersistence, "write snapshot")

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}

	// Wrapping an AppError keeps the inner code findable too.
	outer := fmt.Errorf("refresh: %w", err)
	if !IsPersistence(outer) {
		t.Error("expected IsPersistence to see through fmt.Errorf wrapping")
	}
}

func TestCodePredicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		err   error
		check func(error) bool
		want  bool
	}{
		{"source unavailable matches", SourceUnavailable("down"), IsSourceUnavailable, true},
		{"source unavailable mismatch", Persistence("fail"), IsSourceUnavailable, false},
		{"enrichment matches", EnrichmentUnavailable("no site"), IsEnrichmentUnavailable, true},
		{"persistence matches", Persistence("fail"), IsPersistence, true},
		{"validation matches", Validation("bad input"), IsValidation, true},
		{"plain error matches nothing", errors.New("plain"), IsSourceUnavailable, false},
		{"nil error matches nothing", nil, IsPersistence, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.check(tt.err); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	t.Parallel()

	if got := GetCode(Validation("bad")); got != ErrCodeValidation {
		t.Errorf("expected %q, got %q", ErrCodeValidation, got)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("expected empty code for plain error, got %q", got)
	}
	if got := GetCode(nil); got != "" {
		t.Errorf("expected empty code for nil error, got %q", got)
	}
}
