package scaffold

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ai-labs/claude-skills/internal/errors"
	"github.com/ai-labs/claude-skills/pkg/fileutil"
)

// DefaultSkillsDir is the development skills tree, relative to the working directory.
var DefaultSkillsDir = filepath.Join("packages", "skills")

// ErrSkillsDirNotFound indicates the skills tree does not exist.
var ErrSkillsDirNotFound = errors.New("skills directory not found")

// Generator renders one file for a skill folder.
type Generator interface {
	// FileName is the file the generator creates inside each folder.
	FileName() string

	// Render returns the file content for the named folder.
	Render(folder string) ([]byte, error)
}

// Action records what happened to a folder.
type Action string

const (
	ActionCreated Action = "created"
	ActionSkipped Action = "skipped"
)

// Entry is the outcome for one skill folder.
type Entry struct {
	Folder string
	Path   string
	Action Action
}

// Report lists the outcome of a generator run in folder order.
type Report struct {
	Dir      string
	FileName string
	Entries  []Entry
}

// Created returns the number of folders that received a new file.
func (r *Report) Created() int { return r.count(ActionCreated) }

// Skipped returns the number of folders that already had the file.
func (r *Report) Skipped() int { return r.count(ActionSkipped) }

func (r *Report) count(a Action) int {
	n := 0
	for _, e := range r.Entries {
		if e.Action == a {
			n++
		}
	}
	return n
}

// Generate runs g over every immediate subdirectory of dir. Plain files
// such as packaged .skill archives are ignored. A folder whose target file
// exists is reported as skipped. Generate stops at the first write error and
// returns the partial report alongside it.
func Generate(dir string, g Generator) (*Report, error) {
	report := &Report{Dir: dir, FileName: g.FileName()}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return report, errors.Wrapf(ErrSkillsDirNotFound, "%s", dir)
		}
		return report, errors.Wrapf(err, "reading skills directory %s", dir)
	}

	for _, entry := range entries {
		skillPath := filepath.Join(dir, entry.Name())
		isDir := entry.IsDir()
		if !isDir && entry.Type()&fs.ModeSymlink != 0 {
			if info, err := os.Stat(skillPath); err == nil {
				isDir = info.IsDir()
			}
		}
		if !isDir {
			continue
		}

		target := filepath.Join(skillPath, g.FileName())
		e := Entry{Folder: entry.Name(), Path: target}

		if _, err := os.Lstat(target); err == nil {
			e.Action = ActionSkipped
			report.Entries = append(report.Entries, e)
			continue
		}

		data, err := g.Render(entry.Name())
		if err != nil {
			return report, errors.Wrapf(err, "rendering %s for %s", g.FileName(), entry.Name())
		}

		if err := fileutil.AtomicCreateFile(target, data, 0o644); err != nil {
			if errors.Is(err, fileutil.ErrExists) {
				e.Action = ActionSkipped
				report.Entries = append(report.Entries, e)
				continue
			}
			return report, errors.Wrapf(err, "writing %s", target)
		}

		e.Action = ActionCreated
		report.Entries = append(report.Entries, e)
	}

	return report, nil
}
