// Package config provides configuration management for claude-skills using Viper.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/ai-labs/claude-skills/internal/errors"
	"github.com/ai-labs/claude-skills/internal/paths"
	"github.com/ai-labs/claude-skills/internal/project"
	"github.com/ai-labs/claude-skills/internal/scaffold"
)

// EnvPrefix prefixes every environment variable override.
const EnvPrefix = "CLAUDE_SKILLS"

// EnvConfigHome overrides the directory searched for config.yaml.
const EnvConfigHome = EnvPrefix + "_CONFIG_HOME"

// FileName is the config file name without extension.
const FileName = "config"

// Config represents the top-level configuration structure.
type Config struct {
	BundleDir    string         `mapstructure:"bundle_dir" yaml:"bundle_dir" toml:"bundle_dir" json:"bundle_dir"`
	StartDir     string         `mapstructure:"start_dir" yaml:"start_dir" toml:"start_dir" json:"start_dir"`
	ConfigDir    string         `mapstructure:"config_dir" yaml:"config_dir" toml:"config_dir" json:"config_dir"`
	SkillsDir    string         `mapstructure:"skills_dir" yaml:"skills_dir" toml:"skills_dir" json:"skills_dir"`
	ManifestFile string         `mapstructure:"manifest_file" yaml:"manifest_file" toml:"manifest_file" json:"manifest_file"`
	ExcludedDir  string         `mapstructure:"excluded_dir" yaml:"excluded_dir" toml:"excluded_dir" json:"excluded_dir"`
	ExcludeMatch string         `mapstructure:"exclude_match" yaml:"exclude_match" toml:"exclude_match" json:"exclude_match"`
	Strict       bool           `mapstructure:"strict" yaml:"strict" toml:"strict" json:"strict"`
	Scaffold     ScaffoldConfig `mapstructure:"scaffold" yaml:"scaffold" toml:"scaffold" json:"scaffold"`
}

// ScaffoldConfig holds the defaults for the scaffold generators.
type ScaffoldConfig struct {
	Dir     string `mapstructure:"dir" yaml:"dir" toml:"dir" json:"dir"`
	Scope   string `mapstructure:"scope" yaml:"scope" toml:"scope" json:"scope"`
	Version string `mapstructure:"version" yaml:"version" toml:"version" json:"version"`
	License string `mapstructure:"license" yaml:"license" toml:"license" json:"license"`
	Author  string `mapstructure:"author" yaml:"author" toml:"author" json:"author"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		ConfigDir:    paths.DefaultConfigDirName,
		SkillsDir:    paths.DefaultSkillsDirName,
		ManifestFile: project.DefaultManifestFile,
		ExcludedDir:  project.DefaultExcludedDir,
		ExcludeMatch: string(project.MatchSegment),
		Scaffold: ScaffoldConfig{
			Dir:     scaffold.DefaultSkillsDir,
			Scope:   scaffold.DefaultScope,
			Version: scaffold.DefaultVersion,
			License: scaffold.DefaultLicense,
			Author:  scaffold.DefaultAuthor,
		},
	}
}

// Dir returns the directory searched for config.yaml after the working
// directory: $CLAUDE_SKILLS_CONFIG_HOME, or <XDG config home>/claude-skills.
func Dir() string {
	if dir := os.Getenv(EnvConfigHome); dir != "" {
		return dir
	}
	return paths.AppConfigDir()
}

// DefaultConfigPath returns <Dir()>/config.yaml.
func DefaultConfigPath() string {
	return filepath.Join(Dir(), FileName+".yaml")
}

// Init resets Viper and registers search paths, environment binding and
// defaults. Call this once at application startup before accessing config values.
func Init() {
	viper.Reset()

	// No config type: the decoder follows the extension of the file found,
	// so config.toml and config.json written by `config init` load too.
	viper.SetConfigName(FileName)

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(Dir())

	// CLAUDE_SKILLS_BUNDLE_DIR, CLAUDE_SKILLS_SCAFFOLD_DIR, ...
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	def := Default()
	viper.SetDefault("bundle_dir", def.BundleDir)
	viper.SetDefault("start_dir", def.StartDir)
	viper.SetDefault("config_dir", def.ConfigDir)
	viper.SetDefault("skills_dir", def.SkillsDir)
	viper.SetDefault("manifest_file", def.ManifestFile)
	viper.SetDefault("excluded_dir", def.ExcludedDir)
	viper.SetDefault("exclude_match", def.ExcludeMatch)
	viper.SetDefault("strict", def.Strict)
	viper.SetDefault("scaffold.dir", def.Scaffold.Dir)
	viper.SetDefault("scaffold.scope", def.Scaffold.Scope)
	viper.SetDefault("scaffold.version", def.Scaffold.Version)
	viper.SetDefault("scaffold.license", def.Scaffold.License)
	viper.SetDefault("scaffold.author", def.Scaffold.Author)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file and a missing file is an error.
// If path is empty, it searches the default locations and falls back to defaults.
// The result is validated before it is returned.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
		// An explicit file without an extension is read as YAML.
		if filepath.Ext(path) == "" {
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		isNotFound := errors.As(err, &notFound) || os.IsNotExist(err)
		switch {
		case isNotFound && path == "":
			// Implicit load: defaults are fine.
		case isNotFound:
			return nil, errors.Wrapf(errors.ErrNotFound, "config file %s", path)
		default:
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Wrap(errs[0], "validating config")
	}

	return &cfg, nil
}
