// Package hookerr classifies failures raised while running the scaffolding hooks.
//
// Collaborators return *Error values tagged with a Kind. Callers decide
// from the kind whether a failure is fatal, a warning, or ignored, and
// main maps the final error to an exit code with [ExitCode].
package hookerr

import (
	"errors"
	"fmt"
)

// Kind is the category of a hook failure.
type Kind int

const (
	// Unknown is the kind of errors that were never classified.
	Unknown Kind = iota
	// PromptCancelled means the user cancelled a prompt. The process exits with 0.
	PromptCancelled
	// GitOperationFailed means repository inspection or initialization failed. Non-fatal.
	GitOperationFailed
	// InstallFailed means the package manager install failed. Non-fatal.
	InstallFailed
	// HookFailed means a user-configured shell hook failed. Non-fatal.
	HookFailed
	// StatsFetchFailed means the vanity statistic could not be fetched. Ignored.
	StatsFetchFailed
	// DestinationExists means the destination directory already has content.
	DestinationExists
	// InvalidArgument means user input (name, flags) was unusable.
	InvalidArgument
	// Manifest means the package manifest was missing or malformed.
	Manifest
	// Config means the configuration file was invalid.
	Config
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case PromptCancelled:
		return "prompt cancelled"
	case GitOperationFailed:
		return "git operation failed"
	case InstallFailed:
		return "install failed"
	case HookFailed:
		return "hook failed"
	case StatsFetchFailed:
		return "stats fetch failed"
	case DestinationExists:
		return "destination exists"
	case InvalidArgument:
		return "invalid argument"
	case Manifest:
		return "manifest error"
	case Config:
		return "configuration error"
	default:
		return "error"
	}
}

// Fatal reports whether a failure of this kind stops the scaffolding flow.
func (k Kind) Fatal() bool {
	switch k {
	case GitOperationFailed, InstallFailed, HookFailed, StatsFetchFailed:
		return false
	default:
		return true
	}
}

// Error is a classified failure. Op names the step that failed.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Op != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case e.Op != "":
		return e.Op
	default:
		return e.Kind.String()
	}
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a classified error with a message.
func New(kind Kind, op, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

// Wrap classifies err. Returns nil if err is nil.
func Wrap(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// ErrCancelled is returned by prompts when the user cancels.
var ErrCancelled = &Error{Kind: PromptCancelled, Op: "cancelled"}

// KindOf returns the kind of the first *Error in err's chain, or Unknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

// Is reports whether err is classified as kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// ExitCode maps a final error to a process exit code.
// Cancellation is a clean exit; every other error is 1.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case Is(err, PromptCancelled):
		return 0
	default:
		return 1
	}
}
