// Package project locates the root directory of the project a skill bundle
// is being installed into.
package project

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ai-labs/claude-skills/internal/errors"
)

// Defaults for a Node-style consuming project.
const (
	DefaultManifestFile = "package.json"
	DefaultExcludedDir  = "node_modules"
)

// MatchMode selects how the excluded directory is matched against a path.
type MatchMode string

const (
	// MatchSegment excludes a path only when one of its segments equals the
	// excluded directory name.
	MatchSegment MatchMode = "segment"

	// MatchSubstring excludes a path when the excluded name appears anywhere
	// in the path string, so "my_node_modules_fork" is excluded too.
	MatchSubstring MatchMode = "substring"
)

// ErrUnknownMatchMode is returned by ParseMatchMode for unrecognized values.
var ErrUnknownMatchMode = errors.New("unknown match mode")

// ParseMatchMode converts a config value into a MatchMode.
// An empty string selects MatchSegment.
func ParseMatchMode(s string) (MatchMode, error) {
	switch MatchMode(s) {
	case "", MatchSegment:
		return MatchSegment, nil
	case MatchSubstring:
		return MatchSubstring, nil
	default:
		return "", errors.Wrapf(ErrUnknownMatchMode, "%q (valid: %s, %s)", s, MatchSegment, MatchSubstring)
	}
}

// Resolver finds the nearest ancestor directory that holds a project manifest
// and is not inside a dependency cache.
type Resolver struct {
	// ManifestFile marks a directory as a project root.
	ManifestFile string

	// ExcludedDir names the dependency-cache directory whose contents are
	// never treated as a project root.
	ExcludedDir string

	// Match selects segment or substring matching for ExcludedDir.
	Match MatchMode

	// Getwd supplies the fallback when no ancestor qualifies.
	Getwd func() (string, error)
}

// NewResolver returns a Resolver with the package.json / node_modules defaults.
func NewResolver() *Resolver {
	return &Resolver{
		ManifestFile: DefaultManifestFile,
		ExcludedDir:  DefaultExcludedDir,
		Match:        MatchSegment,
		Getwd:        os.Getwd,
	}
}

// FindRoot walks upward from start, inclusive, and returns the first
// directory for which Qualifies holds. The filesystem root is tested too.
// When nothing qualifies it returns the working directory, or the cleaned
// start directory if the working directory cannot be determined.
// FindRoot never fails and never writes.
func (r *Resolver) FindRoot(start string) string {
	dir, err := filepath.Abs(start)
	if err != nil {
		dir = filepath.Clean(start)
	}

	for {
		if r.Qualifies(dir) {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return r.fallback(start)
}

// Qualifies reports whether dir holds the manifest file and lies outside
// the excluded dependency-cache directory.
func (r *Resolver) Qualifies(dir string) bool {
	if r.Excluded(dir) {
		return false
	}
	_, err := os.Stat(filepath.Join(dir, r.manifestFile()))
	return err == nil
}

// Excluded reports whether dir is inside the dependency-cache directory
// under the resolver's match mode.
func (r *Resolver) Excluded(dir string) bool {
	name := r.ExcludedDir
	if name == "" {
		return false
	}
	if r.Match == MatchSubstring {
		return strings.Contains(dir, name)
	}
	return slices.Contains(Segments(dir), name)
}

// Segments splits a path into its cleaned, non-empty components.
func Segments(path string) []string {
	path = filepath.ToSlash(filepath.Clean(path))
	var segs []string
	for seg := range strings.SplitSeq(path, "/") {
		if seg != "" && seg != "." {
			segs = append(segs, seg)
		}
	}
	return segs
}

func (r *Resolver) manifestFile() string {
	if r.ManifestFile == "" {
		return DefaultManifestFile
	}
	return r.ManifestFile
}

func (r *Resolver) fallback(start string) string {
	getwd := r.Getwd
	if getwd == nil {
		getwd = os.Getwd
	}
	if wd, err := getwd(); err == nil {
		return wd
	}
	return filepath.Clean(start)
}
