package scaffold

import (
	"bytes"
	"regexp"
	"text/template"

	"github.com/ai-labs/claude-skills/internal/errors"
)

// entryPointTmpl escapes the folder name with the js builtin wherever it
// lands inside a string literal.
var entryPointTmpl = template.Must(template.New(EntryPointName).Parse(
	`export default async function {{.Identifier}}(input) {
  console.log("🧠 Running skill: {{js .Folder}}");

  // Implement the skill logic here.
  return {
    message: "Skill '{{js .Folder}}' executed successfully!",
    input
  };
}
`))

// unsafeIdentChars matches everything outside the JavaScript identifier
// characters the stub allows.
var unsafeIdentChars = regexp.MustCompile(`[^A-Za-z0-9_$]`)

// Identifier turns a folder name into a JavaScript function name. Every
// character outside [A-Za-z0-9_$] becomes an underscore, a leading digit is
// prefixed with an underscore, and an empty name becomes "_".
func Identifier(folder string) string {
	id := unsafeIdentChars.ReplaceAllString(folder, "_")
	if id == "" {
		return "_"
	}
	if id[0] >= '0' && id[0] <= '9' {
		id = "_" + id
	}
	return id
}

// TemplateGenerator writes a default index.js that logs its invocation and
// echoes its input back with a success message.
type TemplateGenerator struct{}

// NewTemplateGenerator returns a TemplateGenerator.
func NewTemplateGenerator() *TemplateGenerator { return &TemplateGenerator{} }

// FileName implements Generator.
func (g *TemplateGenerator) FileName() string { return EntryPointName }

// Render implements Generator.
func (g *TemplateGenerator) Render(folder string) ([]byte, error) {
	var buf bytes.Buffer
	err := entryPointTmpl.Execute(&buf, struct {
		Folder     string
		Identifier string
	}{
		Folder:     folder,
		Identifier: Identifier(folder),
	})
	if err != nil {
		return nil, errors.Wrap(err, "executing entry point template")
	}
	return buf.Bytes(), nil
}
