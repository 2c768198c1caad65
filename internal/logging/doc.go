// Package logging configures log/slog for claude-skills.
//
// Diagnostics a user must see (the install report, scaffold lines) are
// printed by the commands themselves. This package only carries the
// developer-facing records: resolved paths, each copied file, skipped
// entries. They are off by default and enabled with -v, -vv, -vvv or
// $CLAUDE_SKILLS_DEBUG.
//
// # Levels
//
// [LevelFromVerbosity] maps the -v count to Warn, Info, Debug and
// [LevelTrace]. The copier logs one Debug record per copied file and one
// Trace record per skipped irregular entry:
//
//	logger := logging.New(logging.Config{Level: logging.LevelFromVerbosity(3)})
//	logger.Log(ctx, logging.LevelTrace, "skipping irregular entry", "path", p)
//
// # Log File
//
// --log-file tees every record as JSON next to the terminal output:
//
//	f, _ := os.OpenFile("install.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
//	logger := logging.New(logging.Config{
//		Level:  slog.LevelDebug,
//		Format: logging.FormatText,
//		Output: os.Stderr,
//		File:   f,
//	})
//
// # Commands
//
// The root command stores its logger with [NewContext]; subcommands fetch
// it with [FromContext] and hand it to the installer. Tests use [ForTest],
// and [NewDiscard] silences a component entirely.
package logging
