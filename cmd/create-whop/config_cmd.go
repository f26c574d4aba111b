package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/raphi011/create-whop/internal/config"
	"github.com/raphi011/create-whop/internal/hookerr"
	"github.com/raphi011/create-whop/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage create-whop configuration.

Config location: ~/.config/create-whop/config.toml
Override with CREATE_WHOP_CONFIG.`,
		Example: `  create-whop config init     # Create default config
  create-whop config show     # Show effective config
  create-whop config hooks    # List configured hooks`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigHooksCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Example: `  create-whop config init      # Create config
  create-whop config init -f   # Overwrite existing config
  create-whop config init -s   # Print config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())
			if stdout {
				out.Print(config.DefaultConfig())
				return nil
			}

			path, err := config.Init(force)
			if err != nil {
				return hookerr.Wrap(hookerr.Config, "config init", fmt.Errorf("%w (use -f to overwrite)", err))
			}
			out.Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		Long: `Show effective configuration.

Values come from the config file, overridden by CREATE_WHOP_* environment
variables.`,
		Example: `  create-whop config show          # Show config
  create-whop config show --json   # Output as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			out := output.FromContext(ctx)

			if jsonOutput {
				return out.JSON(cfg)
			}

			path, err := config.Path()
			if err != nil {
				path = "(unknown)"
			}
			out.Printf("Config file: %s\n\n", path)
			out.Printf("package_manager: %s\n", cfg.PackageManager)
			out.Printf("theme: %s\n", cfg.Theme)
			if cfg.LogFile != "" {
				out.Printf("log_file: %s\n", cfg.LogFile)
			}
			out.Printf("git.default_branch: %s\n", orNone(cfg.Git.DefaultBranch))
			out.Printf("git.initial_commit: %v\n", cfg.Git.InitialCommit)
			out.Printf("git.commit_message: %s\n", cfg.Git.CommitMessage)
			if cfg.Stats.Enabled() {
				out.Printf("stats.url: %s\n", cfg.Stats.URL)
				out.Printf("stats.field: %s\n", cfg.Stats.Field)
				out.Printf("stats.timeout: %s\n", cfg.Stats.Timeout)
			} else {
				out.Println("stats: disabled")
			}
			out.Printf("hooks: %d configured\n", len(cfg.Hooks.Hooks))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func newConfigHooksCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "hooks",
		Short: "List configured hooks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			out := output.FromContext(ctx)

			if jsonOutput {
				return out.JSON(cfg.Hooks.Hooks)
			}

			if len(cfg.Hooks.Hooks) == 0 {
				out.Println("No hooks configured")
				return nil
			}

			names := make([]string, 0, len(cfg.Hooks.Hooks))
			for name := range cfg.Hooks.Hooks {
				names = append(names, name)
			}
			slices.Sort(names)

			for _, name := range names {
				hook := cfg.Hooks.Hooks[name]
				out.Printf("%s:\n", name)
				out.Printf("  command: %s\n", hook.Command)
				if hook.Description != "" {
					out.Printf("  description: %s\n", hook.Description)
				}
				if len(hook.On) > 0 {
					out.Printf("  on: %v\n", hook.On)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
