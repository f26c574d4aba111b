// Package lifecycle implements the before and after hooks that turn the
// template into a named, installed, version-controlled Whop app.
//
// The before hook shows the banner, asks for the app name, picks the
// destination, and rewrites package.json. The after hook initializes git,
// installs dependencies, runs configured shell hooks, and prints the next
// steps. Only cancellation, a destination collision, and invalid input
// stop the flow; git, install, and hook failures are warnings.
package lifecycle

import (
	"context"
	"io"
	"net/http"
	"os"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/colorprofile"

	"github.com/raphi011/create-whop/internal/config"
	"github.com/raphi011/create-whop/internal/gitinit"
	"github.com/raphi011/create-whop/internal/pkgmgr"
	"github.com/raphi011/create-whop/internal/ui/prompt"
	"github.com/raphi011/create-whop/internal/ui/styles"
)

// Prompter asks the user questions. Cancellation is reported as
// hookerr.ErrCancelled.
type Prompter interface {
	AskText(message, placeholder string, validate prompt.ValidateFunc) (string, error)
	AskConfirm(message string, defaultValue bool) (bool, error)
	AskSelect(message string, options []string) (string, error)
}

// Options are the command-line choices that pre-answer prompts.
type Options struct {
	Name           string
	Yes            bool  // accept the default answer of every prompt
	Git            *bool // nil asks
	Install        *bool // nil asks
	PackageManager string
	Copy           bool
	JSON           bool // suppress the next-steps note

	HookName string
	NoHook   bool
	HookEnv  map[string]string
}

// App is stored under Context.Data["app"] by the before hook.
type App struct {
	Name        string `json:"name"`
	PackageName string `json:"packageName"`
}

// DataKey is the Context.Data key holding the App.
const DataKey = "app"

// GitStatus summarizes what happened to version control.
type GitStatus string

const (
	GitDisabled    GitStatus = "disabled"
	GitInitialized GitStatus = "initialized"
	GitSkipped     GitStatus = "skipped"
	GitFailed      GitStatus = "failed"
)

// Result is the summary of a finished run.
type Result struct {
	Path           string    `json:"path"`
	Name           string    `json:"name"`
	PackageName    string    `json:"packageName"`
	PackageManager string    `json:"packageManager,omitempty"`
	Git            GitStatus `json:"git"`
	Installed      bool      `json:"installed"`
	HooksFailed    int       `json:"hooksFailed"`
}

// Hooks carries the collaborators of both lifecycle hooks.
type Hooks struct {
	Config      config.Config
	Options     Options
	Prompter    Prompter
	Interactive bool
	Spinner     gitinit.Spinner
	Styles      styles.Styles
	Profile     colorprofile.Profile

	// UI receives the banner. Nil disables it.
	UI io.Writer
	// HookOutput receives the stdout and stderr of shell hooks so they
	// never mix with the command's own output. Nil means os.Stderr.
	HookOutput io.Writer
	// WorkDir is the directory the user ran the command in.
	WorkDir   string
	UserAgent string

	HTTPClient *http.Client
	// Clipboard, Install and Inspector default to the real collaborators.
	Clipboard func(text string) error
	Install   func(ctx context.Context, pm pkgmgr.PackageManager, dir string) error
	Inspector gitinit.Inspector

	Result Result
}

func (h *Hooks) hookOutput() io.Writer {
	if h.HookOutput != nil {
		return h.HookOutput
	}
	return os.Stderr
}

func (h *Hooks) copyToClipboard(text string) error {
	if h.Clipboard != nil {
		return h.Clipboard(text)
	}
	return clipboard.WriteAll(text)
}

func (h *Hooks) install(ctx context.Context, pm pkgmgr.PackageManager, dir string) error {
	if h.Install != nil {
		return h.Install(ctx, pm, dir)
	}
	return pkgmgr.Install(ctx, pm, dir)
}

// confirm asks a yes/no question, answering with the default when
// prompts are disabled.
func (h *Hooks) confirm(message string, defaultValue bool) (bool, error) {
	if !h.Interactive || h.Options.Yes || h.Prompter == nil {
		return defaultValue, nil
	}
	return h.Prompter.AskConfirm(message, defaultValue)
}

// flagOrConfirm returns the flag value if set, else asks.
func (h *Hooks) flagOrConfirm(flag *bool, message string) (bool, error) {
	if flag != nil {
		return *flag, nil
	}
	return h.confirm(message, true)
}
