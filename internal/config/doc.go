// Package config loads the claude-skills configuration.
//
// # Configuration File
//
// config.yaml is searched in the working directory and then in
// $CLAUDE_SKILLS_CONFIG_HOME or <XDG config home>/claude-skills:
//
//	bundle_dir: ""           # default: <installer dir>/dist/skills
//	start_dir: ""            # default: <installer dir>
//	config_dir: .claude
//	skills_dir: skills
//	manifest_file: package.json
//	excluded_dir: node_modules
//	exclude_match: segment   # or substring
//	strict: false            # exit non-zero on partial installs
//	scaffold:
//	  dir: packages/skills
//	  scope: "@ai-labs-claude-skills"
//	  version: 1.0.0
//	  license: MIT
//	  author: AI Labs
//
// Every key can be overridden from the environment with the CLAUDE_SKILLS_
// prefix, dots replaced by underscores (CLAUDE_SKILLS_SCAFFOLD_DIR).
//
// # Loading Configuration
//
//	config.Init()
//	cfg, err := config.Load("")
//
// [Load] validates the result; [Validate] can also be called directly.
package config
