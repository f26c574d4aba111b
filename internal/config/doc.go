// Package config handles loading and validation of create-whop configuration.
//
// Configuration is read from ~/.config/create-whop/config.toml with
// environment variable overrides.
//
// # Configuration Sources (highest priority first)
//
//   - Command-line flags (applied by the CLI after loading)
//   - CREATE_WHOP_PACKAGE_MANAGER, CREATE_WHOP_THEME, CREATE_WHOP_LOG_FILE
//   - Config file settings (CREATE_WHOP_CONFIG overrides the file path)
//   - Default values
//
// # Key Settings
//
//   - package_manager: "auto" (detect), "ask" (prompt), or a fixed manager
//   - theme: color preset for banner and prompts
//   - log_file: optional rotating JSON debug log
//   - [git]: default branch, initial commit and its message
//   - [stats]: endpoint, gjson field path, and label of the vanity statistic
//
// # Hooks Configuration
//
// Hooks are defined in [hooks.NAME] sections:
//
//	[hooks.editor]
//	command = "code {path}"
//	description = "Open VS Code"
//	on = ["after"]
//
// Hooks without "on" are kept but never run automatically.
//
// Invalid enum values are rejected with the list of allowed values and,
// when one is close enough, a "did you mean" suggestion.
package config
