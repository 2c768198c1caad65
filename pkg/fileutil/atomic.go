// Package fileutil provides atomic file writes and the encoders for the
// files claude-skills generates.
package fileutil

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ai-labs/claude-skills/internal/errors"
)

// ErrExists is returned by the Create functions when the target already exists.
var ErrExists = fs.ErrExist

// AtomicWriteFile writes data to a file atomically using a temp file + rename pattern.
// An interrupted write leaves any previous file intact.
//
// The caller is responsible for ensuring the parent directory exists.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	tmpName, err := writeTemp(path, data, perm)
	if err != nil {
		return err
	}
	defer removeIfPresent(tmpName)

	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrap(err, "renaming temp file")
	}
	return nil
}

// AtomicCreateFile writes data to path only if path does not exist yet.
// The file appears fully written or not at all. It returns an error
// matching ErrExists when path is already taken, including when another
// writer wins the race between the existence check and the write.
func AtomicCreateFile(path string, data []byte, perm os.FileMode) error {
	if _, err := os.Lstat(path); err == nil {
		return errors.Wrapf(ErrExists, "%s", path)
	}

	tmpName, err := writeTemp(path, data, perm)
	if err != nil {
		return err
	}
	defer removeIfPresent(tmpName)

	// link(2) refuses to replace an existing name, which rename(2) would not.
	if err := os.Link(tmpName, path); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return errors.Wrapf(ErrExists, "%s", path)
		}
		// Filesystems without hard links fall back to a checked rename.
		if _, statErr := os.Lstat(path); statErr == nil {
			return errors.Wrapf(ErrExists, "%s", path)
		}
		if err := os.Rename(tmpName, path); err != nil {
			return errors.Wrap(err, "renaming temp file")
		}
	}
	return nil
}

// MarshalYAML renders v as YAML. yaml.v3 panics on some unsupported
// types; the panic is returned as an error.
func MarshalYAML(v any) (data []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			data, err = nil, errors.Newf("marshaling YAML: %v", r)
		}
	}()

	data, err = yaml.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "marshaling YAML")
	}
	return data, nil
}

// MarshalJSON renders v with 2-space indentation and a trailing newline.
func MarshalJSON(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "marshaling JSON")
	}
	return append(data, '\n'), nil
}

// writeTemp writes data to a temp file next to path and returns its name.
func writeTemp(path string, data []byte, perm os.FileMode) (string, error) {
	// Same directory so the final rename or link stays on one filesystem.
	tmp, err := os.CreateTemp(filepath.Dir(path), ".claude-skills-*.tmp")
	if err != nil {
		return "", errors.Wrap(err, "creating temp file")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", errors.Wrap(err, "writing temp file")
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", errors.Wrap(err, "setting file permissions")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", errors.Wrap(err, "closing temp file")
	}
	return tmpName, nil
}

func removeIfPresent(name string) {
	if _, err := os.Lstat(name); err == nil {
		os.Remove(name)
	}
}
