// Package scaffold fills in missing files for skill folders under a
// development skills tree.
//
// Two generators are provided. [ManifestGenerator] writes a default
// package.json and [TemplateGenerator] writes a default index.js entry
// point. Both are driven by [Generate], which visits every immediate
// subdirectory of the skills tree in name order and leaves folders that
// already have the target file untouched:
//
//	report, err := scaffold.Generate("packages/skills", scaffold.NewManifestGenerator())
//	for _, e := range report.Entries {
//	    fmt.Println(e.Folder, e.Action)
//	}
//
// Files are created atomically and never overwrite an existing file, so
// running a generator twice is safe.
package scaffold
