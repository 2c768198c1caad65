package errors

import (
	"errors"
	"fmt"
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
			err:  NewExitError(ErrNotFound, ExitUser),
			want: "not found",
		},
		{
			name: "with wrapped error",
			err:  NewExitError(fmt.Errorf("loading config: %w", ErrInvalidConfig), ExitUser),
			want: "loading config: invalid configuration",
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
				t.Errorf("ExitError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExitError_UnwrapAndAs(t *testing.T) {
	wrapped := Wrap(NewSystemError(ErrInstallIncomplete, "re-run with -v"), "running install")

	if !errors.Is(wrapped, ErrInstallIncomplete) {
		t.Error("errors.Is() should find ErrInstallIncomplete through ExitError")
	}

	var exitErr *ExitError
	if !As(wrapped, &exitErr) {
		t.Fatal("As() should find ExitError through a cockroachdb wrap")
	}
	if exitErr.Code != ExitSystem {
		t.Errorf("ExitError.Code = %d, want %d", exitErr.Code, ExitSystem)
	}
	if exitErr.Suggestion != "re-run with -v" {
		t.Errorf("ExitError.Suggestion = %q", exitErr.Suggestion)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"plain error", New("boom"), ExitUser},
		{"user error", NewUserError(New("bad flag"), ""), ExitUser},
		{"system error", NewSystemError(New("disk full"), ""), ExitSystem},
		{"wrapped system error", Wrapf(NewSystemError(New("disk full"), ""), "copying %s", "a.md"), ExitSystem},
		{"config error", NewConfigError(ErrInvalidConfig), ExitUser},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(nil, "context"); err != nil {
		t.Errorf("Wrap(nil) = %v, want nil", err)
	}
	if err := Wrapf(nil, "context %d", 1); err != nil {
		t.Errorf("Wrapf(nil) = %v, want nil", err)
	}
}

func TestWithHint(t *testing.T) {
	err := WithHint(Newf("bundle %q missing", "dist/skills"), "run the build first")
	if got := err.Error(); got != `bundle "dist/skills" missing` {
		t.Errorf("Error() = %q", got)
	}
	if got := FlattenHints(err); got != "run the build first" {
		t.Errorf("FlattenHints() = %q", got)
	}
}

func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{"ErrNotFound", ErrNotFound, "not found"},
		{"ErrInvalidConfig", ErrInvalidConfig, "invalid configuration"},
		{"ErrInstallIncomplete", ErrInstallIncomplete, "skill installation incomplete"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("%s.Error() = %q, want %q", tt.name, got, tt.wantMsg)
			}
		})
	}
}

func TestNewConstructors(t *testing.T) {
	t.Run("NewUserError", func(t *testing.T) {
		e := NewUserError(errors.New("user error"), "check input")
		if e.Code != ExitUser {
			t.Errorf("Code = %d, want %d", e.Code, ExitUser)
		}
		if e.Suggestion != "check input" {
			t.Errorf("Suggestion = %q, want 'check input'", e.Suggestion)
		}
	})

	t.Run("NewSystemError", func(t *testing.T) {
		e := NewSystemError(errors.New("system error"), "check logs")
		if e.Code != ExitSystem {
			t.Errorf("Code = %d, want %d", e.Code, ExitSystem)
		}
	})

	t.Run("NewConfigError", func(t *testing.T) {
		e := NewConfigError(errors.New("config error"))
		if e.Code != ExitUser {
			t.Errorf("Code = %d, want %d", e.Code, ExitUser)
		}
		if e.Suggestion != "Fix the file shown by: claude-skills config path" {
			t.Errorf("Suggestion = %q", e.Suggestion)
		}
	})
}

func TestJoin(t *testing.T) {
	if err := Join(nil, nil); err != nil {
		t.Errorf("Join(nil, nil) = %v, want nil", err)
	}

	a := errors.New("console closed")
	b := errors.New("disk full")
	err := Join(a, nil, b)
	if !Is(err, a) || !Is(err, b) {
		t.Errorf("Join() = %v, want both errors in chain", err)
	}
}
