package config

import (
	"path/filepath"
	"strings"

	"github.com/ai-labs/claude-skills/internal/errors"
	"github.com/ai-labs/claude-skills/internal/project"
)

// Validation errors for configuration fields.
var (
	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")

	// ErrInvalidName indicates a value that must be a single path segment is not.
	ErrInvalidName = errors.New("must be a single directory or file name")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	names := []struct {
		field, value string
	}{
		{"config_dir", cfg.ConfigDir},
		{"skills_dir", cfg.SkillsDir},
		{"manifest_file", cfg.ManifestFile},
		{"excluded_dir", cfg.ExcludedDir},
	}
	for _, n := range names {
		if err := validateName(n.value); err != nil {
			errs = append(errs, &FieldError{Field: n.field, Value: n.value, Err: err})
		}
	}

	dirs := []struct {
		field, value string
	}{
		{"bundle_dir", cfg.BundleDir},
		{"start_dir", cfg.StartDir},
		{"scaffold.dir", cfg.Scaffold.Dir},
	}
	for _, d := range dirs {
		if err := validatePath(d.value); err != nil {
			errs = append(errs, &FieldError{Field: d.field, Value: d.value, Err: err})
		}
	}

	if _, err := project.ParseMatchMode(cfg.ExcludeMatch); err != nil {
		errs = append(errs, &FieldError{Field: "exclude_match", Value: cfg.ExcludeMatch, Err: project.ErrUnknownMatchMode})
	}

	return errs
}

// validateName accepts empty values (meaning "use default") and single
// path segments.
func validateName(name string) error {
	if name == "" {
		return nil
	}
	if strings.ContainsRune(name, '\x00') {
		return ErrInvalidPath
	}
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return ErrInvalidName
	}
	return nil
}

// validatePath checks if a path string is well-formed.
// It does not check if the path exists, only that it's syntactically valid.
func validatePath(path string) error {
	// Empty paths are valid (they mean "use default")
	if path == "" {
		return nil
	}

	// Check for null bytes which are never valid in paths
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}

	if filepath.Clean(path) == "" {
		return ErrInvalidPath
	}

	return nil
}

// FieldError represents an error for a specific config field.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Value
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
