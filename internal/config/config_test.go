package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ai-labs/claude-skills/internal/errors"
	"github.com/ai-labs/claude-skills/internal/project"
)

// isolate points the config search at empty directories so the developer's
// own config never leaks into a test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv(EnvConfigHome, t.TempDir())
	t.Chdir(t.TempDir())
}

func TestInit(t *testing.T) {
	isolate(t)
	Init()

	assert.Equal(t, ".claude", viper.GetString("config_dir"))
	assert.Equal(t, "node_modules", viper.GetString("excluded_dir"))
	assert.Equal(t, filepath.Join("packages", "skills"), viper.GetString("scaffold.dir"))
}

func TestLoad_NoConfigFile(t *testing.T) {
	isolate(t)
	Init()

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_WithConfigFile(t *testing.T) {
	isolate(t)

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("bundle_dir: /opt/skills\nstrict: true\nexclude_match: substring\nscaffold:\n  scope: \"@acme\"\n")
	require.NoError(t, os.WriteFile(configPath, content, 0o600))

	Init()
	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "/opt/skills", cfg.BundleDir)
	assert.True(t, cfg.Strict)
	assert.Equal(t, string(project.MatchSubstring), cfg.ExcludeMatch)
	assert.Equal(t, "@acme", cfg.Scaffold.Scope)
	// Unset keys keep their defaults.
	assert.Equal(t, "MIT", cfg.Scaffold.License)
	assert.Equal(t, "package.json", cfg.ManifestFile)
}

func TestLoad_TOMLFile(t *testing.T) {
	isolate(t)

	configPath := filepath.Join(t.TempDir(), "config.toml")
	content := []byte("skills_dir = \"plugins\"\n\n[scaffold]\nauthor = \"Acme\"\n")
	require.NoError(t, os.WriteFile(configPath, content, 0o600))

	Init()
	cfg, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, "plugins", cfg.SkillsDir)
	assert.Equal(t, "Acme", cfg.Scaffold.Author)
}

func TestLoad_SearchesConfigDir(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	t.Setenv(EnvConfigHome, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("strict: true\n"), 0o600))

	Init()
	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.Strict)
}

func TestLoad_SearchFindsNonYAMLFiles(t *testing.T) {
	tests := []struct {
		file    string
		content string
	}{
		{"config.toml", "strict = true\n\n[scaffold]\nscope = \"@acme\"\n"},
		{"config.json", `{"strict": true, "scaffold": {"scope": "@acme"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			isolate(t)
			dir := t.TempDir()
			t.Setenv(EnvConfigHome, dir)
			require.NoError(t, os.WriteFile(filepath.Join(dir, tt.file), []byte(tt.content), 0o600))

			Init()
			cfg, err := Load("")
			require.NoError(t, err)
			assert.True(t, cfg.Strict)
			assert.Equal(t, "@acme", cfg.Scaffold.Scope)
			assert.Equal(t, filepath.Join(dir, tt.file), viper.ConfigFileUsed())
		})
	}
}

func TestLoad_ExplicitFileWithoutExtension(t *testing.T) {
	isolate(t)

	configPath := filepath.Join(t.TempDir(), "claude-skills-rc")
	require.NoError(t, os.WriteFile(configPath, []byte("strict: true\n"), 0o600))

	Init()
	cfg, err := Load(configPath)
	require.NoError(t, err)
	assert.True(t, cfg.Strict)
}

func TestLoad_EnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("CLAUDE_SKILLS_BUNDLE_DIR", "/from/env")
	t.Setenv("CLAUDE_SKILLS_SCAFFOLD_DIR", "skills-src")

	Init()
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.BundleDir)
	assert.Equal(t, "skills-src", cfg.Scaffold.Dir)
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	isolate(t)
	Init()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestLoad_InvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "config_dir with separator",
			content: "config_dir: a/b\n",
			wantErr: "validating config: config_dir: must be a single directory or file name: a/b",
		},
		{
			name:    "unknown match mode",
			content: "exclude_match: glob\n",
			wantErr: "validating config: exclude_match: unknown match mode: glob",
		},
		{
			name:    "dot-dot skills_dir",
			content: "skills_dir: ..\n",
			wantErr: "validating config: skills_dir: must be a single directory or file name: ..",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			Init()

			configPath := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(configPath, []byte(tt.content), 0o600))

			_, err := Load(configPath)
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestValidate(t *testing.T) {
	assert.Empty(t, Validate(Default()))
	assert.Len(t, Validate(nil), 1)

	cfg := Default()
	cfg.ManifestFile = "sub/package.json"
	cfg.BundleDir = "bad\x00path"
	errs := Validate(cfg)
	require.Len(t, errs, 2)
	assert.True(t, errors.Is(errs[0], ErrInvalidName))
	assert.True(t, errors.Is(errs[1], ErrInvalidPath))

	var fe *FieldError
	require.True(t, errors.As(errs[1], &fe))
	assert.Equal(t, "bundle_dir", fe.Field)
}

func TestDefaultConfigPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvConfigHome, dir)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), DefaultConfigPath())
}
