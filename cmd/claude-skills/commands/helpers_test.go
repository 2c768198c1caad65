package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ai-labs/claude-skills/internal/config"
	"github.com/ai-labs/claude-skills/internal/logging"
)

// resetFlags restores every package-level flag variable. Cobra binds flags
// to these globals, so values leak between Execute calls otherwise.
func resetFlags() {
	verbosity = 0
	quiet = false
	logFormat = "text"
	logFile = ""
	configFile = ""
	loadedConfig = nil
	configLoadErr = nil

	installBundle = ""
	installFrom = ""
	installStrict = false
	installOutput = "text"

	scaffoldDir = ""
	scaffoldScope = ""
	scaffoldLicense = ""
	scaffoldAuthor = ""
	scaffoldPkgVersion = ""

	configFormat = "yaml"
	configForce = false
}

// execute runs the root command with args against an empty config
// directory, and returns what it wrote.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	return executeWithHome(t, t.TempDir(), args...)
}

// executeWithHome is execute with a caller-chosen config directory, for
// runs that must see each other's config files.
func executeWithHome(t *testing.T, home string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	resetFlags()
	t.Cleanup(resetFlags)
	t.Setenv(config.EnvConfigHome, home)
	t.Setenv(logging.EnvDebug, "")

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err = Execute()
	return out.String(), errOut.String(), err
}

// writeFile creates path and its parents with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("creating %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}
