package commands

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ai-labs/claude-skills/internal/errors"
	"github.com/ai-labs/claude-skills/internal/logging"
)

func TestSetupLogging_VerbosityFlags(t *testing.T) {
	t.Cleanup(resetFlags)
	t.Setenv(logging.EnvDebug, "")

	tests := []struct {
		name      string
		verbosity int
		wantLevel slog.Level
	}{
		{"default (0)", 0, slog.LevelWarn},
		{"verbose (1)", 1, slog.LevelInfo},
		{"debug (2)", 2, slog.LevelDebug},
		{"trace (3)", 3, logging.LevelTrace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			verbosity = tt.verbosity
			if err := setupLogging(rootCmd); err != nil {
				t.Fatalf("setupLogging failed: %v", err)
			}

			logger := slog.Default()
			if !logger.Enabled(t.Context(), tt.wantLevel) {
				t.Errorf("expected level %v to be enabled", tt.wantLevel)
			}
			if tt.wantLevel > logging.LevelTrace {
				shouldBeDisabled := tt.wantLevel - 4
				if logger.Enabled(t.Context(), shouldBeDisabled) {
					t.Errorf("expected level %v to be disabled", shouldBeDisabled)
				}
			}
		})
	}
}

func TestSetupLogging_EnvVar(t *testing.T) {
	t.Cleanup(resetFlags)

	tests := []struct {
		name      string
		envVal    string
		wantLevel slog.Level
	}{
		{"debug=1", "1", slog.LevelDebug},
		{"debug=true", "true", slog.LevelDebug},
		{"debug=2", "2", logging.LevelTrace},
		{"debug=0", "0", slog.LevelWarn},
		{"debug=unknown", "foo", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			t.Setenv(logging.EnvDebug, tt.envVal)

			if err := setupLogging(rootCmd); err != nil {
				t.Fatalf("setupLogging failed: %v", err)
			}

			logger := slog.Default()
			if !logger.Enabled(t.Context(), tt.wantLevel) {
				t.Errorf("expected level %v to be enabled", tt.wantLevel)
			}

			if tt.wantLevel == slog.LevelDebug {
				if logger.Enabled(t.Context(), logging.LevelTrace) {
					t.Errorf("expected Trace level to be disabled when %s=%s", logging.EnvDebug, tt.envVal)
				}
			}
		})
	}
}

func TestSetupLogging_FlagPrecedence(t *testing.T) {
	t.Cleanup(resetFlags)
	resetFlags()
	t.Setenv(logging.EnvDebug, "2")
	verbosity = 1

	if err := setupLogging(rootCmd); err != nil {
		t.Fatalf("setupLogging failed: %v", err)
	}

	logger := slog.Default()
	if !logger.Enabled(t.Context(), slog.LevelInfo) {
		t.Error("expected Info level to be enabled")
	}
	if logger.Enabled(t.Context(), slog.LevelDebug) {
		t.Error("expected Debug level to be disabled (flag should override env var)")
	}
}

func TestSetupLogging_Quiet(t *testing.T) {
	t.Cleanup(resetFlags)
	resetFlags()
	quiet = true

	if err := setupLogging(rootCmd); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logger := slog.Default()
	if !logger.Enabled(t.Context(), slog.LevelError) {
		t.Error("expected Error level to be enabled")
	}
	if logger.Enabled(t.Context(), slog.LevelWarn) {
		t.Error("expected Warn level to be disabled")
	}
}

func TestSetupLogging_QuietMutualExclusion(t *testing.T) {
	t.Cleanup(resetFlags)
	resetFlags()
	verbosity = 1
	quiet = true

	err := setupLogging(rootCmd)
	if err == nil {
		t.Fatal("expected error when both quiet and verbose are set")
	}
	if code := errors.ExitCode(err); code != errors.ExitUser {
		t.Errorf("ExitCode() = %d, want %d", code, errors.ExitUser)
	}
}

func TestSetupLogging_BadFormat(t *testing.T) {
	t.Cleanup(resetFlags)
	resetFlags()
	logFormat = "logfmt"

	if err := setupLogging(rootCmd); err == nil {
		t.Error("expected error for unknown --log-format")
	}
}

func TestSetupLogging_LogFile(t *testing.T) {
	t.Cleanup(resetFlags)
	t.Cleanup(closeLogSink)
	resetFlags()
	t.Setenv(logging.EnvDebug, "")
	logFile = filepath.Join(t.TempDir(), "claude-skills.log")

	if err := setupLogging(rootCmd); err != nil {
		t.Fatalf("setupLogging failed: %v", err)
	}
	slog.Default().Warn("bundle missing", "dir", "/opt/dist/skills")
	closeLogSink()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	var record map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(data))), &record); err != nil {
		t.Fatalf("log file is not JSON: %v\n%s", err, data)
	}
	if record["msg"] != "bundle missing" || record["dir"] != "/opt/dist/skills" {
		t.Errorf("unexpected record: %v", record)
	}
}

func TestRoot_UnknownCommand(t *testing.T) {
	t.Chdir(t.TempDir())

	_, _, err := execute(t, "frobnicate")
	if err == nil {
		t.Fatal("expected error for unknown command")
	}
	if code := errors.ExitCode(err); code != errors.ExitUser {
		t.Errorf("ExitCode() = %d, want %d", code, errors.ExitUser)
	}
}

func TestRoot_MissingExplicitConfig(t *testing.T) {
	t.Chdir(t.TempDir())

	_, _, err := execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "install")
	if err == nil {
		t.Fatal("expected error for missing --config file")
	}
	if !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}

	var exitErr *errors.ExitError
	if !errors.As(err, &exitErr) || exitErr.Suggestion == "" {
		t.Errorf("expected an ExitError with a suggestion, got %v", err)
	}
}

func TestRoot_VersionIgnoresBrokenConfig(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, filepath.Join(dir, "config.yaml"), "exclude_match: glob\n")

	stdout, _, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version failed with a broken config: %v", err)
	}
	if !strings.Contains(stdout, "claude-skills version") {
		t.Errorf("unexpected output: %q", stdout)
	}
}
