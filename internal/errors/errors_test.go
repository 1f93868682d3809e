package errors

import (
	"errors"
	"testing"
)

type constraintError struct {
	Constraint string
}

func (e constraintError) Error() string { return "violates " + e.Constraint }

func TestWrapping(t *testing.T) {
	base := New("duplicate key")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "wrap", err: Wrap(base, "failed to insert registration"), want: "failed to insert registration: duplicate key"},
		{name: "wrapf", err: Wrapf(base, "failed to join club %d", 7), want: "failed to join club 7: duplicate key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, tt.err.Error())
			}
			if !Is(tt.err, base) {
				t.Error("expected the chain to keep the base error")
			}
		})
	}

	if Wrap(nil, "noop") != nil || Wrapf(nil, "noop %d", 1) != nil {
		t.Error("expected wrapping nil to return nil")
	}
}

func TestKindMatching(t *testing.T) {
	err := Wrap(WithMessage(ErrConflict, "already registered"), "register")
	if !Is(err, ErrConflict) {
		t.Error("expected a wrapped kind error to match its kind")
	}
	if Is(err, ErrNotFound) {
		t.Error("expected ErrConflict NOT to match ErrNotFound")
	}

	var target constraintError
	if !As(Wrap(constraintError{Constraint: "club_memberships_pkey"}, "insert"), &target) {
		t.Fatal("expected As to find the constraint error")
	}
	if target.Constraint != "club_memberships_pkey" {
		t.Errorf("expected club_memberships_pkey, got %q", target.Constraint)
	}
}

func TestStandardErrors(t *testing.T) {
	tests := []struct {
		err  error
		text string
	}{
		{ErrNotFound, "not found"},
		{ErrConflict, "conflict"},
		{ErrInvalidInput, "invalid input"},
		{ErrUnauthorized, "unauthorized"},
		{ErrForbidden, "forbidden"},
		{ErrRateLimited, "rate limit exceeded"},
	}

	for _, tt := range tests {
		if tt.err.Error() != tt.text {
			t.Errorf("expected text '%s' for error, got '%s'", tt.text, tt.err.Error())
		}
	}
}

func TestWithMessage(t *testing.T) {
	err := WithMessage(ErrNotFound, "event not found")

	if err.Error() != "event not found" {
		t.Errorf("expected 'event not found', got '%s'", err.Error())
	}
	if !Is(err, ErrNotFound) {
		t.Error("expected error to match ErrNotFound")
	}
	if Is(err, ErrConflict) {
		t.Error("expected error NOT to match ErrConflict")
	}

	msg, ok := PublicMessage(Wrap(err, "failed to load event"))
	if !ok {
		t.Fatal("expected public message to survive wrapping")
	}
	if msg != "event not found" {
		t.Errorf("expected 'event not found', got '%s'", msg)
	}
}

func TestPublicMessageWithoutKind(t *testing.T) {
	if _, ok := PublicMessage(errors.New("db down")); ok {
		t.Error("expected no public message for a plain error")
	}
}
