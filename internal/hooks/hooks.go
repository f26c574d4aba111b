package hooks

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"sort"
	"strings"

	"github.com/raphi011/create-whop/internal/config"
	"github.com/raphi011/create-whop/internal/hookerr"
	"github.com/raphi011/create-whop/internal/log"
)

// shellQuote escapes a string for safe use in shell commands.
// It wraps the value in single quotes and escapes any embedded single quotes.
func shellQuote(s string) string {
	// e.g., "it's" becomes 'it'\''s'
	return "'" + strings.ReplaceAll(s, "'", "'\\''") + "'"
}

// Trigger identifies the lifecycle point running the hooks.
type Trigger string

const (
	TriggerAfter Trigger = "after"
	// TriggerManual is set when hooks run through the hook command.
	TriggerManual Trigger = "manual"
)

// Context holds the values for placeholder substitution
type Context struct {
	Path           string            // absolute project path
	Name           string            // app name as entered
	PackageName    string            // npm package name
	PackageManager string            // package manager chosen for install
	Trigger        string            // lifecycle point that triggered the hook
	Env            map[string]string // custom variables from --arg key=value flags
	DryRun         bool              // if true, print command instead of executing

	// Stdout and Stderr receive hook output. Nil means the process streams.
	Stdout io.Writer
	Stderr io.Writer
}

// HookMatch represents a hook that matched the current trigger
type HookMatch struct {
	Hook *config.Hook
	Name string
}

// SelectHooks determines which hooks to run based on config and CLI flags.
// If hookName is specified, only that hook runs regardless of its "on"
// list. Otherwise all hooks whose "on" list matches trigger run, ordered
// by name. Returns an error if the named hook doesn't exist.
func SelectHooks(cfg config.HooksConfig, hookName string, noHook bool, trigger Trigger) ([]HookMatch, error) {
	if noHook {
		return nil, nil
	}

	if hookName != "" {
		hook, exists := cfg.Hooks[hookName]
		if !exists {
			return nil, hookerr.New(hookerr.InvalidArgument, "select hook", "unknown hook %q", hookName)
		}
		return []HookMatch{{Hook: &hook, Name: hookName}}, nil
	}

	return findMatchingHooks(cfg, trigger), nil
}

// findMatchingHooks returns all hooks that have trigger in their "on" list.
// Hooks without "on" are skipped (they only run via explicit --hook=name).
func findMatchingHooks(cfg config.HooksConfig, trigger Trigger) []HookMatch {
	var matches []HookMatch

	for name, hook := range cfg.Hooks {
		if len(hook.On) > 0 && hookMatchesTrigger(hook, trigger) {
			hookCopy := hook
			matches = append(matches, HookMatch{Hook: &hookCopy, Name: name})
		}
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i].Name < matches[j].Name })
	return matches
}

// hookMatchesTrigger returns true if trigger is in the hook's "on" list.
// Special value "all" matches every trigger.
func hookMatchesTrigger(hook config.Hook, trigger Trigger) bool {
	for _, on := range hook.On {
		if on == "all" || on == string(trigger) {
			return true
		}
	}
	return false
}

// RunAll runs all matched hooks in hctx.Path and stops at the first failure.
func RunAll(ctx context.Context, matches []HookMatch, hctx Context) error {
	for _, match := range matches {
		if err := runHook(ctx, match.Name, match.Hook, hctx, hctx.Path); err != nil {
			return hookerr.Wrap(hookerr.HookFailed, fmt.Sprintf("hook %q", match.Name), err)
		}
	}
	return nil
}

// RunAllNonFatal runs every matched hook in workDir, logging failures as
// warnings. It returns the number of hooks that failed.
func RunAllNonFatal(ctx context.Context, matches []HookMatch, hctx Context, workDir string) int {
	failed := 0
	for _, match := range matches {
		if err := runHook(ctx, match.Name, match.Hook, hctx, workDir); err != nil {
			log.FromContext(ctx).Warnf("hook %q failed: %v", match.Name, err)
			failed++
		}
	}
	return failed
}

// runHook executes a single hook with variable substitution.
func runHook(ctx context.Context, name string, hook *config.Hook, hctx Context, workDir string) error {
	l := log.FromContext(ctx)
	command := SubstitutePlaceholders(hook.Command, hctx)

	if hctx.DryRun {
		l.Printf("[dry-run] %s: %s\n", name, command)
		return nil
	}

	l.Printf("Running hook '%s'...\n", name)
	l.Debug("hook", "name", name, "command", command, "dir", workDir)

	shellCmd := exec.CommandContext(ctx, "sh", "-c", command)
	shellCmd.Dir = workDir
	shellCmd.Stdout = orDefault(hctx.Stdout, os.Stdout)
	shellCmd.Stderr = orDefault(hctx.Stderr, os.Stderr)

	if err := shellCmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return err
	}

	if hook.Description != "" {
		l.Printf("  ✓ %s\n", hook.Description)
	}
	return nil
}

func orDefault(w, def io.Writer) io.Writer {
	if w == nil {
		return def
	}
	return w
}

// placeholderRegex matches {key}, {key:raw}, or {key:-default}.
var placeholderRegex = regexp.MustCompile(`\{([a-zA-Z_][a-zA-Z0-9_-]*)(?:(:raw)|:-([^}]*))?\}`)

// SubstitutePlaceholders replaces {placeholder} with shell-quoted values from Context.
// Values are properly escaped to prevent command injection. The command is
// scanned once, so braces inside a substituted value are never expanded.
//
// Static placeholders: {path}, {name}, {package-name}, {package-manager}, {trigger}
// Env placeholders (from Context.Env):
//   - {key}         - shell-quoted value
//   - {key:raw}     - unquoted value (for embedding in existing quotes)
//   - {key:-default} - shell-quoted value with default if key missing
//
// Static placeholders take precedence over env keys of the same name.
func SubstitutePlaceholders(command string, hctx Context) string {
	static := map[string]string{
		"path":            hctx.Path,
		"name":            hctx.Name,
		"package-name":    hctx.PackageName,
		"package-manager": hctx.PackageManager,
		"trigger":         hctx.Trigger,
	}

	return placeholderRegex.ReplaceAllStringFunc(command, func(match string) string {
		submatch := placeholderRegex.FindStringSubmatch(match)
		if submatch == nil {
			return match
		}
		key := submatch[1]
		isRaw := submatch[2] == ":raw"
		defaultVal := submatch[3]

		val, ok := static[key]
		if !ok {
			val, ok = hctx.Env[key]
		}
		if !ok {
			val = defaultVal
		}
		if isRaw {
			return val
		}
		return shellQuote(val)
	})
}
