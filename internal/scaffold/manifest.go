package scaffold

import (
	"github.com/ai-labs/claude-skills/pkg/fileutil"
)

// Manifest defaults.
const (
	ManifestFileName = "package.json"
	DefaultScope     = "@ai-labs-claude-skills"
	DefaultVersion   = "1.0.0"
	DefaultLicense   = "MIT"
	DefaultAuthor    = "AI Labs"
	EntryPointName   = "index.js"
)

// Manifest is the package.json written for a skill folder.
// Field order matches the emitted JSON.
type Manifest struct {
	Name        string   `json:"name"`
	Version     string   `json:"version"`
	Description string   `json:"description"`
	Main        string   `json:"main"`
	Files       []string `json:"files"`
	License     string   `json:"license"`
	Author      string   `json:"author"`
}

// ManifestGenerator writes a default package.json.
type ManifestGenerator struct {
	Scope   string
	Version string
	License string
	Author  string
}

// NewManifestGenerator returns a generator with the default scope, version,
// license and author.
func NewManifestGenerator() *ManifestGenerator {
	return &ManifestGenerator{
		Scope:   DefaultScope,
		Version: DefaultVersion,
		License: DefaultLicense,
		Author:  DefaultAuthor,
	}
}

// FileName implements Generator.
func (g *ManifestGenerator) FileName() string { return ManifestFileName }

// Manifest builds the manifest for folder.
func (g *ManifestGenerator) Manifest(folder string) Manifest {
	name := folder
	if g.Scope != "" {
		name = g.Scope + "/" + folder
	}
	return Manifest{
		Name:        name,
		Version:     orDefault(g.Version, DefaultVersion),
		Description: "Claude AI skill: " + folder,
		Main:        EntryPointName,
		Files:       []string{"."},
		License:     orDefault(g.License, DefaultLicense),
		Author:      orDefault(g.Author, DefaultAuthor),
	}
}

// Render implements Generator.
func (g *ManifestGenerator) Render(folder string) ([]byte, error) {
	return fileutil.MarshalJSON(g.Manifest(folder))
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
