// Package hooks runs user-configured shell commands after a project is created.
//
// Hooks are shell commands defined in config. They enable workflow
// automation such as opening an editor, creating a remote repository, or
// sending a notification once the app has been scaffolded.
//
// # Hook Selection
//
// Hooks can run automatically or manually:
//
//   - Automatic: Hooks whose "on" list contains "after" (or "all")
//   - Manual: Use --hook=name to run a specific hook, --no-hook to skip all,
//     or "create-whop hook name" to run hooks in an existing app
//
// Example config:
//
//	[hooks.vscode]
//	command = "code {path}"
//	on = ["after"]
//
//	[hooks.remote]
//	command = "gh repo create {name} --private --source {path}"
//	# no "on" - only runs via --hook=remote
//
// # Placeholder Substitution
//
//   - {path}: Absolute project path
//   - {name}: App name as entered
//   - {package-name}: npm package name
//   - {package-manager}: Package manager chosen for install
//   - {trigger}: Lifecycle point that triggered the hook
//
// Custom variables via --arg key=value:
//
//   - {key}: Value from --arg key=value
//   - {key:-default}: Value with fallback if not provided
//
// Hooks run with the working directory set to the new project. Failures
// are logged as warnings and never stop the scaffolding flow.
package hooks
