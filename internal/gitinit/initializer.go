package gitinit

import (
	"context"

	"github.com/raphi011/create-whop/internal/git"
	"github.com/raphi011/create-whop/internal/hookerr"
	"github.com/raphi011/create-whop/internal/log"
	"github.com/raphi011/create-whop/internal/ui/progress"
)

const (
	msgStart   = "Initializing git repository..."
	msgSkip    = "Skipping git initialization"
	msgSuccess = "Successfully initialized git repository"
	msgFailure = "Failed to initialize git repository, skipping"
)

// Spinner shows progress while the repository is set up.
type Spinner interface {
	Start(message string)
	Stop(status progress.Status, message string)
}

// Initializer runs the git setup for a freshly written project.
type Initializer struct {
	Inspector Inspector
	Confirm   ConfirmFunc
	Spinner   Spinner
	Options   git.InitOptions

	// Init and Remove default to git.Init and git.RemoveRepo.
	Init   func(ctx context.Context, dir string, opts git.InitOptions) error
	Remove func(dir string) error
}

// NewInitializer returns an Initializer backed by the real git collaborators.
func NewInitializer(confirm ConfirmFunc, spinner Spinner, opts git.InitOptions) *Initializer {
	return &Initializer{
		Inspector: git.Inspector{},
		Confirm:   confirm,
		Spinner:   spinner,
		Options:   opts,
		Init:      git.Init,
		Remove:    git.RemoveRepo,
	}
}

// Run decides and, when allowed, initializes a repository at dest.
// Failures are returned as GitOperationFailed after the spinner reports
// them; a cancelled prompt is returned unchanged.
func (in *Initializer) Run(ctx context.Context, dest string) (Outcome, error) {
	l := log.FromContext(ctx)

	in.Spinner.Start(msgStart)
	prompted := false
	confirm := func(message string, defaultValue bool) (bool, error) {
		in.Spinner.Stop(progress.StatusNone, "")
		prompted = true
		return in.Confirm(message, defaultValue)
	}

	d, err := Decide(dest, in.Inspector, confirm)
	if err != nil {
		if hookerr.Is(err, hookerr.PromptCancelled) {
			return Skip, err
		}
		return Skip, in.fail("inspect repository", err)
	}
	l.Debug("git decision", "state", d.State, "outcome", d.Outcome, "remove", d.RemoveExisting)

	if d.Outcome == Skip {
		in.Spinner.Stop(progress.StatusSkipped, msgSkip)
		return Skip, nil
	}
	if prompted {
		in.Spinner.Start(msgStart)
	}

	if d.RemoveExisting {
		if err := in.remove(dest); err != nil {
			return Skip, in.fail("remove repository", err)
		}
	}
	if err := in.init(ctx, dest); err != nil {
		return Skip, in.fail("git init", err)
	}

	in.Spinner.Stop(progress.StatusSuccess, msgSuccess)
	return Proceed, nil
}

func (in *Initializer) fail(op string, err error) error {
	in.Spinner.Stop(progress.StatusFailure, msgFailure)
	return hookerr.Wrap(hookerr.GitOperationFailed, op, err)
}

func (in *Initializer) remove(dir string) error {
	if in.Remove == nil {
		return git.RemoveRepo(dir)
	}
	return in.Remove(dir)
}

func (in *Initializer) init(ctx context.Context, dir string) error {
	if in.Init == nil {
		return git.Init(ctx, dir, in.Options)
	}
	return in.Init(ctx, dir, in.Options)
}
