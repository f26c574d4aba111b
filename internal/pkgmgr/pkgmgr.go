// Package pkgmgr detects the Node package manager to use and runs installs.
package pkgmgr

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/raphi011/create-whop/internal/cmd"
	"github.com/raphi011/create-whop/internal/hookerr"
)

// PackageManager is a Node package manager binary name.
type PackageManager string

const (
	NPM  PackageManager = "npm"
	PNPM PackageManager = "pnpm"
	Yarn PackageManager = "yarn"
	Bun  PackageManager = "bun"
)

// Special selection values accepted from config and flags.
const (
	// Auto detects the package manager from the invoking environment.
	Auto = "auto"
	// Ask lets the user choose interactively.
	Ask = "ask"
)

// UserAgentEnv is set by npm, pnpm, yarn, and bun when they run a binary.
const UserAgentEnv = "npm_config_user_agent"

// All lists the supported package managers in prompt order.
var All = []PackageManager{NPM, PNPM, Yarn, Bun}

// Parse returns the package manager named s.
func Parse(s string) (PackageManager, error) {
	pm := PackageManager(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range All {
		if pm == known {
			return pm, nil
		}
	}
	return "", hookerr.New(hookerr.InvalidArgument, "package manager", "unsupported package manager %q", s)
}

// FromUserAgent picks the package manager from an npm_config_user_agent
// value such as "pnpm/9.1.0 npm/? node/v20.11.0 darwin arm64".
// Unknown or empty agents fall back to npm.
func FromUserAgent(ua string) PackageManager {
	switch {
	case strings.HasPrefix(ua, "pnpm"):
		return PNPM
	case strings.HasPrefix(ua, "yarn"):
		return Yarn
	case strings.HasPrefix(ua, "bun"):
		return Bun
	default:
		return NPM
	}
}

// Detect resolves a configured selection. Empty and "auto" consult the
// user agent; "ask" reports needsPrompt so the caller can offer a choice.
func Detect(selection, userAgent string) (pm PackageManager, needsPrompt bool, err error) {
	switch strings.ToLower(strings.TrimSpace(selection)) {
	case "", Auto:
		return FromUserAgent(userAgent), false, nil
	case Ask:
		return FromUserAgent(userAgent), true, nil
	}
	pm, err = Parse(selection)
	return pm, false, err
}

// DetectFromEnv is Detect using the process environment.
func DetectFromEnv(selection string) (PackageManager, bool, error) {
	return Detect(selection, os.Getenv(UserAgentEnv))
}

// Install runs "<pm> install" in dir.
func Install(ctx context.Context, pm PackageManager, dir string) error {
	if !cmd.Available(string(pm)) {
		return hookerr.New(hookerr.InstallFailed, "install", "%s not found in PATH", pm)
	}
	if err := cmd.RunContext(ctx, dir, string(pm), "install"); err != nil {
		return hookerr.Wrap(hookerr.InstallFailed, fmt.Sprintf("%s install", pm), err)
	}
	return nil
}

// RunCommand returns the command line that runs a package.json script.
func (pm PackageManager) RunCommand(script string) string {
	if pm == NPM || pm == Bun {
		return fmt.Sprintf("%s run %s", pm, script)
	}
	return fmt.Sprintf("%s %s", pm, script)
}

// DevCommand returns the command that starts the dev server.
func (pm PackageManager) DevCommand() string {
	return pm.RunCommand("dev")
}

// Strings returns the names of all package managers.
func Strings() []string {
	out := make([]string, len(All))
	for i, pm := range All {
		out[i] = string(pm)
	}
	return out
}

// Version returns the output of "<pm> --version".
func Version(ctx context.Context, pm PackageManager) (string, error) {
	out, err := cmd.OutputContext(ctx, "", string(pm), "--version")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
