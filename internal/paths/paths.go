package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/ai-labs/claude-skills/internal/errors"
)

// AppName names the application's own config directory under ConfigHome.
const AppName = "claude-skills"

// Default directory names inside a consuming project.
const (
	// DefaultConfigDirName is the project-scoped Claude configuration directory.
	DefaultConfigDirName = ".claude"

	// DefaultSkillsDirName is the skills directory inside the config directory.
	DefaultSkillsDirName = "skills"
)

// BundleRelPath is the location of the packaged skills relative to the
// installer's own directory.
var BundleRelPath = filepath.Join("dist", "skills")

// DefaultDirPerm is the permission for newly created directories.
const DefaultDirPerm = 0o755

// ErrInstallerDirNotFound indicates the running executable could not be located.
var ErrInstallerDirNotFound = errors.New("installer directory not found")

// executable is swapped in tests.
var executable = os.Executable

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// AppConfigDir returns <ConfigHome>/claude-skills.
func AppConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// InstallerDir returns the directory holding the running executable, with
// symlinks resolved so a linked binary still finds its bundle.
func InstallerDir() (string, error) {
	exe, err := executable()
	if err != nil {
		return "", errors.Wrap(ErrInstallerDirNotFound, err.Error())
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// BundleDir returns <installerDir>/dist/skills.
func BundleDir(installerDir string) string {
	return filepath.Join(installerDir, BundleRelPath)
}

// ProjectConfigDir returns <projectRoot>/<name>, using DefaultConfigDirName
// when name is empty. Returns an empty string for an empty projectRoot.
func ProjectConfigDir(projectRoot, name string) string {
	if projectRoot == "" {
		return ""
	}
	if name == "" {
		name = DefaultConfigDirName
	}
	return filepath.Join(projectRoot, name)
}

// SkillsDir returns <configDir>/<name>, using DefaultSkillsDirName when name
// is empty. Returns an empty string for an empty configDir.
func SkillsDir(configDir, name string) string {
	if configDir == "" {
		return ""
	}
	if name == "" {
		name = DefaultSkillsDirName
	}
	return filepath.Join(configDir, name)
}
