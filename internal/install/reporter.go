package install

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/ai-labs/claude-skills/internal/errors"
)

// Format specifies the output format for install reports.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

// ParseFormat maps a flag value to a Format. Empty means text.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", errors.Newf("unknown output format %q (valid: text, json)", s)
	}
}

// Reporter writes the diagnostics of a Result. Info lines go to out,
// warnings and errors go to errOut.
type Reporter struct {
	out    io.Writer
	errOut io.Writer
	format Format
}

// NewReporter creates a new Reporter.
func NewReporter(out, errOut io.Writer, format Format) *Reporter {
	return &Reporter{
		out:    out,
		errOut: errOut,
		format: format,
	}
}

// Report writes the result to the configured writers.
func (r *Reporter) Report(res *Result) error {
	if res == nil {
		return nil
	}

	switch r.format {
	case FormatJSON:
		return r.reportJSON(res)
	default:
		r.reportText(res)
		return nil
	}
}

type jsonDiagnostic struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Error    string `json:"error,omitempty"`
}

type jsonReport struct {
	Status      string           `json:"status"`
	State       State            `json:"state"`
	ProjectRoot string           `json:"project_root"`
	ConfigDir   string           `json:"config_dir"`
	SkillsDir   string           `json:"skills_dir"`
	BundleDir   string           `json:"bundle_dir"`
	BundleFound bool             `json:"bundle_found"`
	Stats       Stats            `json:"stats"`
	Diagnostics []jsonDiagnostic `json:"diagnostics"`
}

// reportJSON writes the whole result to out as one JSON document.
func (r *Reporter) reportJSON(res *Result) error {
	report := jsonReport{
		Status:      res.Status.String(),
		State:       res.State(),
		ProjectRoot: res.ProjectRoot,
		ConfigDir:   res.ConfigDir,
		SkillsDir:   res.SkillsDir,
		BundleDir:   res.BundleDir,
		BundleFound: res.BundleFound,
		Stats:       res.Stats,
		Diagnostics: make([]jsonDiagnostic, 0, len(res.Diagnostics)),
	}
	for _, d := range res.Diagnostics {
		jd := jsonDiagnostic{Severity: d.Severity.String(), Message: d.Message}
		if d.Err != nil {
			jd.Error = d.Err.Error()
		}
		report.Diagnostics = append(report.Diagnostics, jd)
	}

	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(report), "encoding JSON report")
}

func (r *Reporter) reportText(res *Result) {
	for _, d := range res.Diagnostics {
		switch d.Severity {
		case SeverityWarning:
			fmt.Fprintf(r.errOut, "%s %s\n", color.YellowString("warning:"), d.Message)
		case SeverityError:
			fmt.Fprintf(r.errOut, "%s %s\n", color.RedString("error:"), d.Message)
		default:
			fmt.Fprintf(r.out, "%s %s\n", color.GreenString("info:"), d.Message)
		}
	}
}
