package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/create-whop/internal/config"
	"github.com/raphi011/create-whop/internal/doctor"
	"github.com/raphi011/create-whop/internal/output"
	"github.com/raphi011/create-whop/internal/ui/styles"
)

func newDoctorCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "doctor",
		Short:   "Check the environment for creating apps",
		GroupID: GroupUtility,
		Args:    cobra.NoArgs,
		Long: `Check the environment for creating apps.

Checks:
- git is installed and a commit identity is configured
- which package managers are installed
- the config file parses`,
		Example: `  create-whop doctor          # Print report
  create-whop doctor --json   # Output as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			// The config is validated as a check of its own, so a broken
			// file falls back to defaults here.
			cfg, err := config.Load()
			if err != nil {
				cfg = config.Default()
			}
			path, _ := config.Path()

			report := doctor.Run(ctx, cfg, doctor.Options{
				ConfigPath: path,
				WorkDir:    config.WorkDirFromContext(ctx),
			})

			if jsonOutput {
				return out.JSON(report)
			}
			theme, _ := styles.Preset(cfg.Theme)
			doctor.Print(out.Writer(), report, styles.New(theme))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
