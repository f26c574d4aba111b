package main

import (
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"

	"github.com/raphi011/create-whop/internal/config"
	"github.com/raphi011/create-whop/internal/generator"
	"github.com/raphi011/create-whop/internal/hookerr"
	"github.com/raphi011/create-whop/internal/hooks"
	"github.com/raphi011/create-whop/internal/lifecycle"
	"github.com/raphi011/create-whop/internal/log"
	"github.com/raphi011/create-whop/internal/output"
	"github.com/raphi011/create-whop/internal/pkgmgr"
	"github.com/raphi011/create-whop/internal/ui/progress"
	"github.com/raphi011/create-whop/internal/ui/prompt"
	"github.com/raphi011/create-whop/internal/ui/styles"
)

// createFlags are the flags of the root command.
type createFlags struct {
	template       string
	yes            bool
	git            bool
	noGit          bool
	install        bool
	noInstall      bool
	packageManager string
	copy           bool
	json           bool
	hook           string
	noHook         bool
	args           []string
}

// isInteractive is replaced in tests.
var isInteractive = prompt.Interactive

func addCreateFlags(cmd *cobra.Command) {
	f := &createFlags{}

	cmd.Flags().StringVarP(&f.template, "template", "t", "", "Template directory (default: built-in Whop template)")
	cmd.Flags().BoolVarP(&f.yes, "yes", "y", false, "Accept the default answer of every prompt")
	cmd.Flags().BoolVar(&f.git, "git", false, "Initialize a git repository")
	cmd.Flags().BoolVar(&f.noGit, "no-git", false, "Skip git initialization")
	cmd.Flags().BoolVar(&f.install, "install", false, "Install dependencies")
	cmd.Flags().BoolVar(&f.noInstall, "no-install", false, "Skip dependency installation")
	cmd.Flags().StringVarP(&f.packageManager, "package-manager", "p", "", "Package manager: npm, pnpm, yarn, bun, auto, or ask")
	cmd.Flags().BoolVar(&f.copy, "copy", false, "Copy the cd command to the clipboard")
	cmd.Flags().BoolVar(&f.json, "json", false, "Print a JSON summary instead of next steps")
	cmd.Flags().StringVar(&f.hook, "hook", "", "Run only this configured hook")
	cmd.Flags().BoolVar(&f.noHook, "no-hook", false, "Skip configured hooks")
	cmd.Flags().StringArrayVarP(&f.args, "arg", "a", nil, "Set hook variable KEY=VALUE (repeatable)")

	cmd.MarkFlagsMutuallyExclusive("git", "no-git")
	cmd.MarkFlagsMutuallyExclusive("install", "no-install")
	cmd.MarkFlagsMutuallyExclusive("hook", "no-hook")
	cmd.MarkFlagDirname("template")

	_ = cmd.RegisterFlagCompletionFunc("package-manager", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return append(pkgmgr.Strings(), pkgmgr.Auto, pkgmgr.Ask), cobra.ShellCompDirectiveNoFileComp
	})

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCreate(cmd, args, f)
	}
}

// tristate returns nil unless one of the paired flags was given.
func tristate(on, off bool) *bool {
	switch {
	case on:
		v := true
		return &v
	case off:
		v := false
		return &v
	default:
		return nil
	}
}

func runCreate(cmd *cobra.Command, args []string, f *createFlags) error {
	ctx := cmd.Context()
	l := log.FromContext(ctx)
	cfg := config.FromContext(ctx)
	if cfg == nil {
		d := config.Default()
		cfg = &d
	}
	workDir := config.WorkDirFromContext(ctx)

	if f.packageManager != "" {
		if err := config.ValidatePackageManager(f.packageManager); err != nil {
			return hookerr.Wrap(hookerr.InvalidArgument, "--package-manager", err)
		}
	}
	if _, err := hooks.SelectHooks(cfg.Hooks, f.hook, f.noHook, hooks.TriggerAfter); err != nil {
		return err
	}
	hookEnv, err := hooks.ParseEnv(f.args)
	if err != nil {
		return err
	}

	entries, err := loadTemplate(f.template)
	if err != nil {
		return hookerr.Wrap(hookerr.InvalidArgument, "--template", err)
	}

	theme, _ := styles.Preset(cfg.Theme)
	st := styles.New(theme)
	profile := colorprofile.Detect(cmd.ErrOrStderr(), os.Environ())
	interactive := isInteractive()

	var ui io.Writer = cmd.ErrOrStderr()
	if l.IsQuiet() {
		ui = io.Discard
	}
	banner := &colorprofile.Writer{Forward: ui, Profile: profile}
	term := prompt.NewTerminal(st)
	term.Out = cmd.ErrOrStderr()
	term.Profile = profile

	name := ""
	if len(args) > 0 {
		name = args[0]
	}

	h := &lifecycle.Hooks{
		Config: *cfg,
		Options: lifecycle.Options{
			Name:           name,
			Yes:            f.yes,
			Git:            tristate(f.git, f.noGit),
			Install:        tristate(f.install, f.noInstall),
			PackageManager: f.packageManager,
			Copy:           f.copy,
			JSON:           f.json,
			HookName:       f.hook,
			NoHook:         f.noHook,
			HookEnv:        hookEnv,
		},
		Prompter:    term,
		Interactive: interactive,
		Spinner:     progress.NewSpinner(ui, st, profile, interactive && !l.IsQuiet()),
		Styles:      st,
		Profile:     profile,
		UI:          banner,
		HookOutput:  cmd.ErrOrStderr(),
		WorkDir:     workDir,
		UserAgent:   os.Getenv(pkgmgr.UserAgentEnv),
		HTTPClient:  http.DefaultClient,
	}

	gctx := generator.NewContext(workDir, entries)
	if err := generator.Run(ctx, gctx, h.Before, h.After); err != nil {
		return err
	}

	if f.json {
		return output.FromContext(ctx).JSON(h.Result)
	}
	return nil
}

func loadTemplate(dir string) ([]generator.FileEntry, error) {
	if dir == "" {
		return generator.Default()
	}
	return generator.LoadDir(dir)
}
