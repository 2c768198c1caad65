package install

import (
	"fmt"

	"github.com/ai-labs/claude-skills/internal/errors"
)

// Status is the overall outcome of an install run.
type Status int

const (
	// StatusSuccess means every step finished. A missing bundle still counts.
	StatusSuccess Status = iota

	// StatusPartial means the directories exist but the copy stopped on an
	// error, so the destination may hold a mix of old and new files.
	StatusPartial

	// StatusFatal means the destination directories could not be created.
	StatusFatal
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusPartial:
		return "partial"
	case StatusFatal:
		return "fatal"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// State is a step of the per-run state machine:
//
//	Start -> DirectoriesEnsured -> (Copying -> Copied | Skipped) -> Done
type State string

const (
	StateStart              State = "start"
	StateDirectoriesEnsured State = "directories-ensured"
	StateCopying            State = "copying"
	StateCopied             State = "copied"
	StateSkipped            State = "skipped"
	StateDone               State = "done"
)

// Severity classifies a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Diagnostic is one human-readable message produced during a run.
type Diagnostic struct {
	Severity Severity
	Message  string
	Err      error
}

// Stats counts what the copy touched.
type Stats struct {
	FilesCopied      int
	FilesOverwritten int
	DirsCreated      int
	EntriesSkipped   int
}

// Result describes a finished install run.
type Result struct {
	Status      Status
	Trail       []State
	ProjectRoot string
	ConfigDir   string
	SkillsDir   string
	BundleDir   string
	BundleFound bool
	Stats       Stats
	Diagnostics []Diagnostic
}

// State returns the last state the run reached.
func (r *Result) State() State {
	if len(r.Trail) == 0 {
		return StateStart
	}
	return r.Trail[len(r.Trail)-1]
}

// Err returns nil for a successful run. Otherwise it returns
// ErrInstallIncomplete wrapping the first error diagnostic.
func (r *Result) Err() error {
	if r.Status == StatusSuccess {
		return nil
	}
	for _, d := range r.Diagnostics {
		if d.Severity == SeverityError && d.Err != nil {
			return errors.Wrapf(ErrInstallIncomplete, "%s: %v", r.Status, d.Err)
		}
	}
	return errors.Wrap(ErrInstallIncomplete, r.Status.String())
}

// ErrInstallIncomplete is returned by Result.Err for partial or fatal runs.
var ErrInstallIncomplete = errors.ErrInstallIncomplete

func (r *Result) enter(s State) {
	r.Trail = append(r.Trail, s)
}

func (r *Result) add(sev Severity, err error, format string, args ...any) {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{
		Severity: sev,
		Message:  fmt.Sprintf(format, args...),
		Err:      err,
	})
}
