// Package install mirrors a bundled skills directory into a project's
// .claude/skills directory.
package install

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ai-labs/claude-skills/internal/errors"
	"github.com/ai-labs/claude-skills/internal/logging"
	"github.com/ai-labs/claude-skills/internal/paths"
)

// Options configures an Installer.
type Options struct {
	// ProjectRoot is the directory that receives the config directory.
	ProjectRoot string

	// BundleDir holds one subdirectory per skill. It is never modified.
	BundleDir string

	// ConfigDirName defaults to ".claude".
	ConfigDirName string

	// SkillsDirName defaults to "skills".
	SkillsDirName string

	// DirPerm is used for created directories. Zero means paths.DefaultDirPerm.
	DirPerm os.FileMode
}

// Installer copies a skill bundle into a project.
type Installer struct {
	opts   Options
	logger *slog.Logger
}

// New creates an Installer. A nil logger discards debug output.
func New(opts Options, logger *slog.Logger) *Installer {
	if logger == nil {
		logger = logging.NewDiscard()
	}
	if opts.DirPerm == 0 {
		opts.DirPerm = paths.DefaultDirPerm
	}
	return &Installer{opts: opts, logger: logger}
}

// Run ensures <root>/.claude and <root>/.claude/skills exist and, when the
// bundle directory exists, copies it over the skills directory.
//
// Run never returns an error. Failures are reported through the Result:
// a bundle that overlaps the skills directory or a directory that cannot
// be created is StatusFatal, and a copy that stops midway is
// StatusPartial. A missing bundle is a warning and leaves the status at
// StatusSuccess. Runs are idempotent and not atomic.
func (i *Installer) Run() *Result {
	configDir := paths.ProjectConfigDir(i.opts.ProjectRoot, i.opts.ConfigDirName)
	skillsDir := paths.SkillsDir(configDir, i.opts.SkillsDirName)

	res := &Result{
		Status:      StatusSuccess,
		ProjectRoot: i.opts.ProjectRoot,
		ConfigDir:   configDir,
		SkillsDir:   skillsDir,
		BundleDir:   i.opts.BundleDir,
	}
	res.enter(StateStart)

	i.logger.Debug("starting install", "project_root", i.opts.ProjectRoot, "bundle", i.opts.BundleDir)

	if err := checkOverlap(res.BundleDir, res.SkillsDir); err != nil {
		res.Status = StatusFatal
		res.add(SeverityError, err, "Error installing skills: %v", err)
	} else if i.ensureDirs(res) {
		i.copyBundle(res)
	}

	res.add(SeverityInfo, nil, "Claude skill installation complete!")
	res.enter(StateDone)

	i.logger.Debug("install finished",
		"status", res.Status.String(),
		"files_copied", res.Stats.FilesCopied,
		"files_overwritten", res.Stats.FilesOverwritten,
		"dirs_created", res.Stats.DirsCreated,
	)

	return res
}

func (i *Installer) ensureDirs(res *Result) bool {
	rel := i.configDirName()

	if err := paths.EnsureDir(res.ConfigDir, i.opts.DirPerm); err != nil {
		res.Status = StatusFatal
		res.add(SeverityError, err, "Error installing skills: creating %s directory: %v", rel, err)
		return false
	}
	res.add(SeverityInfo, nil, "Created %s directory at %s", rel, res.ConfigDir)

	if err := paths.EnsureDir(res.SkillsDir, i.opts.DirPerm); err != nil {
		res.Status = StatusFatal
		res.add(SeverityError, err, "Error installing skills: creating %s/%s directory: %v", rel, i.skillsDirName(), err)
		return false
	}
	res.add(SeverityInfo, nil, "Created %s/%s directory at %s", rel, i.skillsDirName(), res.SkillsDir)

	res.enter(StateDirectoriesEnsured)
	return true
}

func (i *Installer) copyBundle(res *Result) {
	info, err := os.Stat(res.BundleDir)
	if err != nil || !info.IsDir() {
		res.enter(StateSkipped)
		res.add(SeverityWarning, nil,
			"No dist/skills folder found at %s; did you run the build before publish?", res.BundleDir)
		return
	}
	res.BundleFound = true

	res.enter(StateCopying)
	res.add(SeverityInfo, nil, "Copying Claude skills to user project...")

	c := &copier{
		logger:  i.logger,
		dirPerm: i.opts.DirPerm,
		stats:   &res.Stats,
	}
	if err := c.copyDir(res.BundleDir, res.SkillsDir, nil); err != nil {
		res.Status = StatusPartial
		res.add(SeverityError, err, "Error installing skills: %v", err)
		return
	}

	res.enter(StateCopied)
	res.add(SeverityInfo, nil, "Skills installed successfully in %s/%s/ (%d files, %d overwritten)",
		i.configDirName(), i.skillsDirName(), res.Stats.FilesCopied, res.Stats.FilesOverwritten)
}

func (i *Installer) configDirName() string {
	if i.opts.ConfigDirName == "" {
		return paths.DefaultConfigDirName
	}
	return i.opts.ConfigDirName
}

func (i *Installer) skillsDirName() string {
	if i.opts.SkillsDirName == "" {
		return paths.DefaultSkillsDirName
	}
	return i.opts.SkillsDirName
}

// ErrBundleOverlap is reported when the bundle and the skills directory are
// the same directory or one contains the other. Copying would truncate the
// bundle or recurse into its own output.
var ErrBundleOverlap = errors.New("bundle and skills directory overlap")

// checkOverlap resolves both directories through symlinks and fails when
// one lies inside the other. A missing bundle never overlaps.
func checkOverlap(bundleDir, skillsDir string) error {
	if info, err := os.Stat(bundleDir); err != nil || !info.IsDir() {
		return nil
	}
	bundle, err := resolvePath(bundleDir)
	if err != nil {
		return err
	}
	skills, err := resolvePath(skillsDir)
	if err != nil {
		return err
	}
	if within(bundle, skills) || within(skills, bundle) {
		return errors.Wrapf(ErrBundleOverlap, "bundle %s, skills directory %s", bundle, skills)
	}
	return nil
}

// resolvePath returns the absolute, symlink-free form of p. Trailing
// components that do not exist yet are kept as written.
func resolvePath(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", errors.Wrapf(err, "resolving %s", p)
	}
	rest := ""
	for dir := abs; ; {
		if resolved, err := filepath.EvalSymlinks(dir); err == nil {
			return filepath.Join(resolved, rest), nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return abs, nil
		}
		rest = filepath.Join(filepath.Base(dir), rest)
		dir = parent
	}
}

// within reports whether path is dir or lies below it.
func within(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
