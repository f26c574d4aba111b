package lifecycle

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/raphi011/create-whop/internal/generator"
	"github.com/raphi011/create-whop/internal/git"
	"github.com/raphi011/create-whop/internal/gitinit"
	"github.com/raphi011/create-whop/internal/hookerr"
	"github.com/raphi011/create-whop/internal/hooks"
	"github.com/raphi011/create-whop/internal/log"
	"github.com/raphi011/create-whop/internal/output"
	"github.com/raphi011/create-whop/internal/pkgmgr"
	"github.com/raphi011/create-whop/internal/ui/progress"
)

// Prompt and spinner texts of the after hook.
const (
	MsgInitGit          = "Initialize Git repo?"
	MsgPackageManager   = "Which package manager do you want to use?"
	MsgInstalling       = "Installing dependencies..."
	MsgInstalled        = "Successfully installed dependencies"
	MsgInstallFailed    = "Failed to install dependencies, skipping"
	NextStepsTitle      = "Next steps"
	msgInstallQuestionF = "Install dependencies with %s?"
)

// After sets up the written project.
func (h *Hooks) After(ctx context.Context, gctx *generator.Context) error {
	l := log.FromContext(ctx)
	dest := gctx.Dir.Path
	h.Result.Path = dest

	pm, err := h.packageManager()
	if err != nil {
		return err
	}
	h.Result.PackageManager = string(pm)

	shouldInitGit, err := h.flagOrConfirm(h.Options.Git, MsgInitGit)
	if err != nil {
		return err
	}
	shouldInstall, err := h.flagOrConfirm(h.Options.Install, fmt.Sprintf(msgInstallQuestionF, pm))
	if err != nil {
		return err
	}

	h.Result.Git = GitDisabled
	if shouldInitGit {
		status, err := h.initGit(ctx, dest)
		if err != nil {
			return err
		}
		h.Result.Git = status
	}

	if shouldInstall {
		h.Spinner.Start(MsgInstalling)
		if err := h.install(ctx, pm, dest); err != nil {
			h.Spinner.Stop(progress.StatusFailure, MsgInstallFailed)
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			if hookerr.KindOf(err).Fatal() {
				return err
			}
			l.Warnf("%v", err)
		} else {
			h.Spinner.Stop(progress.StatusSuccess, MsgInstalled)
			h.Result.Installed = true
		}
	}

	if err := h.runHooks(ctx, gctx, pm); err != nil {
		return err
	}

	h.nextSteps(ctx, dest, pm)
	return nil
}

func (h *Hooks) packageManager() (pkgmgr.PackageManager, error) {
	selection := h.Options.PackageManager
	if selection == "" {
		selection = h.Config.PackageManager
	}
	pm, ask, err := pkgmgr.Detect(selection, h.UserAgent)
	if err != nil {
		return "", err
	}
	if !ask || !h.Interactive || h.Options.Yes || h.Prompter == nil {
		return pm, nil
	}

	options := []string{string(pm)}
	for _, other := range pkgmgr.All {
		if other != pm {
			options = append(options, string(other))
		}
	}
	choice, err := h.Prompter.AskSelect(MsgPackageManager, options)
	if err != nil {
		return "", err
	}
	return pkgmgr.Parse(choice)
}

func (h *Hooks) initGit(ctx context.Context, dest string) (GitStatus, error) {
	in := gitinit.NewInitializer(h.gitConfirm, h.Spinner, git.InitOptions{
		DefaultBranch: h.Config.Git.DefaultBranch,
		InitialCommit: h.Config.Git.InitialCommit,
		CommitMessage: h.Config.Git.CommitMessage,
	})
	if h.Inspector != nil {
		in.Inspector = h.Inspector
	}

	outcome, err := in.Run(ctx, dest)
	switch {
	case err != nil:
		if ctxErr := ctx.Err(); ctxErr != nil {
			return GitFailed, ctxErr
		}
		if hookerr.KindOf(err).Fatal() {
			return GitFailed, err
		}
		log.FromContext(ctx).Warnf("%v", err)
		return GitFailed, nil
	case outcome == gitinit.Skip:
		return GitSkipped, nil
	default:
		return GitInitialized, nil
	}
}

// gitConfirm styles the warning prefix of the decision prompts.
func (h *Hooks) gitConfirm(message string, defaultValue bool) (bool, error) {
	if rest, ok := strings.CutPrefix(message, "Warning: "); ok {
		message = h.Styles.Warn(rest)
	}
	return h.confirm(message, defaultValue)
}

func (h *Hooks) runHooks(ctx context.Context, gctx *generator.Context, pm pkgmgr.PackageManager) error {
	matches, err := hooks.SelectHooks(h.Config.Hooks, h.Options.HookName, h.Options.NoHook, hooks.TriggerAfter)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		return nil
	}

	app, _ := gctx.Data[DataKey].(App)
	hctx := hooks.Context{
		Path:           gctx.Dir.Path,
		Name:           app.Name,
		PackageName:    app.PackageName,
		PackageManager: string(pm),
		Trigger:        string(hooks.TriggerAfter),
		Env:            h.Options.HookEnv,
		Stdout:         h.hookOutput(),
		Stderr:         h.hookOutput(),
	}
	h.Result.HooksFailed = hooks.RunAllNonFatal(ctx, matches, hctx, gctx.Dir.Path)
	return nil
}

// nextSteps prints how to start the app when it was created somewhere
// other than the working directory.
func (h *Hooks) nextSteps(ctx context.Context, dest string, pm pkgmgr.PackageManager) {
	l := log.FromContext(ctx)
	if h.WorkDir == "" || filepath.Clean(h.WorkDir) == filepath.Clean(dest) {
		return
	}

	rel, err := filepath.Rel(h.WorkDir, dest)
	if err != nil {
		rel = dest
	}
	cdLine := "cd " + shellPath(rel)

	if h.Options.Copy {
		if err := h.copyToClipboard(cdLine); err != nil {
			l.Warnf("copy to clipboard: %v", err)
		} else {
			l.Debug("copied to clipboard", "text", cdLine)
		}
	}

	if h.Options.JSON || l.IsQuiet() {
		return
	}

	steps := []string{cdLine}
	if !h.Result.Installed {
		steps = append(steps, string(pm)+" install")
	}
	steps = append(steps, pm.DevCommand())
	output.FromContext(ctx).Print(h.Styles.Note(NextStepsTitle, strings.Join(steps, "\n")))
}

// shellPath quotes p when it contains characters a shell would split on.
func shellPath(p string) string {
	if !strings.ContainsAny(p, " \t'\"$&;|<>()*?[]#~`!") {
		return p
	}
	return "'" + strings.ReplaceAll(p, "'", `'\''`) + "'"
}
