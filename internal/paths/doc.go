// Package paths resolves the filesystem locations the installer works with.
//
// # Layout
//
//	<installer dir>/dist/skills      bundled skills (read-only input)
//	<project root>/.claude           project config directory
//	<project root>/.claude/skills    installed skills (write target)
//	<XDG config home>/claude-skills  the tool's own config.yaml
//
// The installer directory is the directory of the running executable with
// symlinks resolved. XDG locations come from github.com/adrg/xdg.
package paths
