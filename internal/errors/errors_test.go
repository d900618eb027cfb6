package errors

import (
	"testing"
)

func TestExitError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ExitError
		want string
	}{
		{
			name: "with underlying error",
			err:  NewExitError(New("boom"), ExitSystem),
			want: "boom",
		},
		{
			name: "nil underlying error",
			err:  NewExitError(nil, ExitUser),
			want: "exit code 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExitError_Unwrap(t *testing.T) {
	err := NewUserError(ErrNoKey, "Run: den init")

	if !Is(err, ErrNoKey) {
		t.Error("expected errors.Is to match the wrapped sentinel")
	}

	var exitErr *ExitError
	if !As(err, &exitErr) {
		t.Fatal("expected errors.As to find ExitError")
	}
	if exitErr.Code != ExitUser {
		t.Errorf("Code = %d, want %d", exitErr.Code, ExitUser)
	}
	if exitErr.Suggestion != "Run: den init" {
		t.Errorf("Suggestion = %q", exitErr.Suggestion)
	}
}

func TestNewSystemError(t *testing.T) {
	err := NewSystemError(New("disk full"), "free up space")
	var exitErr *ExitError
	if !As(err, &exitErr) {
		t.Fatal("expected ExitError")
	}
	if exitErr.Code != ExitSystem {
		t.Errorf("Code = %d, want %d", exitErr.Code, ExitSystem)
	}
}

func TestWrap_NilPassthrough(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}
}

func TestWrap_PreservesChain(t *testing.T) {
	err := Wrapf(ErrNotFound, "looking up field %q", "theme")
	if !Is(err, ErrNotFound) {
		t.Error("wrapped error should match sentinel")
	}
}
