package main

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"github.com/raphi011/create-whop/internal/config"
	"github.com/raphi011/create-whop/internal/hookerr"
	"github.com/raphi011/create-whop/internal/hooks"
	"github.com/raphi011/create-whop/internal/log"
	"github.com/raphi011/create-whop/internal/manifest"
	"github.com/raphi011/create-whop/internal/pkgmgr"
)

func newHookCmd() *cobra.Command {
	var (
		env    []string
		dryRun bool
		dir    string
	)

	cmd := &cobra.Command{
		Use:               "hook <name>...",
		Short:             "Run configured hooks in an existing app",
		Aliases:           []string{"h"},
		GroupID:           GroupUtility,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: completeHookArg,
		Long: `Run one or more configured hooks in an app created earlier.

Hooks are defined in config.toml and can use placeholders. {name} is the
app directory name, {package-name} comes from package.json and {trigger}
is "manual". Hooks run in order and stop at the first failure.`,
		Example: `  create-whop hook vscode                 # Run in the current directory
  create-whop hook vscode remote          # Run multiple hooks
  create-whop hook remote -C ./my-app     # Run in another app
  create-whop hook remote -a org=acme     # Set a hook variable
  create-whop hook vscode -d              # Dry-run: print command without executing`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			l := log.FromContext(ctx)

			hookEnv, err := hooks.ParseEnv(env)
			if err != nil {
				return err
			}

			var matches []hooks.HookMatch
			for _, name := range args {
				m, err := hooks.SelectHooks(cfg.Hooks, name, false, hooks.TriggerManual)
				if err != nil {
					return err
				}
				matches = append(matches, m...)
			}

			path := dir
			if path == "" {
				path = config.WorkDirFromContext(ctx)
			} else if !filepath.IsAbs(path) {
				path = filepath.Join(config.WorkDirFromContext(ctx), path)
			}

			hctx, err := appHookContext(path, cfg.PackageManager)
			if err != nil {
				return err
			}
			hctx.Env = hookEnv
			hctx.DryRun = dryRun
			hctx.Stdout = cmd.OutOrStdout()
			hctx.Stderr = cmd.ErrOrStderr()

			l.Debug("running hooks", "hooks", args, "dir", hctx.Path, "dryRun", dryRun)
			return hooks.RunAll(ctx, matches, hctx)
		},
	}

	cmd.Flags().StringArrayVarP(&env, "arg", "a", nil, "Set hook variable KEY=VALUE (repeatable)")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "Print hook commands without executing them")
	cmd.Flags().StringVarP(&dir, "dir", "C", "", "App directory (default: current directory)")
	cmd.MarkFlagDirname("dir")

	return cmd
}

// appHookContext describes the app in dir for placeholder substitution.
func appHookContext(dir, packageManager string) (hooks.Context, error) {
	dir = filepath.Clean(dir)
	data, err := os.ReadFile(filepath.Join(dir, manifest.FileName))
	if err != nil {
		return hooks.Context{}, hookerr.Wrap(hookerr.InvalidArgument, "read "+manifest.FileName, err)
	}

	name := filepath.Base(dir)
	pkgName := manifest.Name(data)
	if pkgName == "" {
		pkgName = name
	}

	pm, _, err := pkgmgr.DetectFromEnv(packageManager)
	if err != nil {
		return hooks.Context{}, hookerr.Wrap(hookerr.Config, "package_manager", err)
	}

	return hooks.Context{
		Path:           dir,
		Name:           name,
		PackageName:    pkgName,
		PackageManager: string(pm),
		Trigger:        string(hooks.TriggerManual),
	}, nil
}

// completeHookArg offers the configured hook names not given yet.
func completeHookArg(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	cfg, err := config.Load()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var names []string
	for name, hook := range cfg.Hooks.Hooks {
		if slices.Contains(args, name) {
			continue
		}
		if hook.Description != "" {
			name += "\t" + hook.Description
		}
		names = append(names, name)
	}
	slices.Sort(names)
	return names, cobra.ShellCompDirectiveNoFileComp
}
