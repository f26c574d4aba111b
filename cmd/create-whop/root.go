package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"

	"github.com/raphi011/create-whop/internal/config"
	"github.com/raphi011/create-whop/internal/hookerr"
	"github.com/raphi011/create-whop/internal/log"
	"github.com/raphi011/create-whop/internal/output"
	"github.com/raphi011/create-whop/internal/ui/styles"
)

// Command group IDs for organizing help output
const (
	GroupConfig  = "config"
	GroupUtility = "utility"
)

// cli holds the state shared by the commands of one invocation.
type cli struct {
	verbose bool
	quiet   bool

	closeLog func() error
}

// skipSetup lists commands that work without a valid config.
var skipSetup = map[string]bool{
	"completion": true,
	"__complete": true,
	"help":       true,
	"version":    true,
	"doctor":     true,
	"init":       true,
}

// newRootCmd builds the command tree.
func newRootCmd() (*cobra.Command, *cli) {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:   "create-whop [name]",
		Short: "Create a new Whop app",
		Long: `create-whop scaffolds a new Whop app from a template.

It asks for the app name, writes the template into a new directory,
optionally initializes a git repository and installs dependencies with
your package manager, then runs any configured hooks.`,
		Example: `  create-whop                      # Interactive
  create-whop my-app               # Create ./my-app
  create-whop @acme/shop --yes     # Scoped package, accept all defaults
  create-whop my-app --no-git --package-manager pnpm
  create-whop . --template ./my-template`,
		Args:                       cobra.MaximumNArgs(1),
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose && c.quiet {
				return hookerr.New(hookerr.InvalidArgument, "flags", "--verbose and --quiet are mutually exclusive")
			}
			return c.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Show external commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&c.quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddGroup(
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
		&cobra.Group{ID: GroupUtility, Title: "Utility Commands:"},
	)

	addCreateFlags(rootCmd)
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newHookCmd())
	rootCmd.AddCommand(newDoctorCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd, c
}

// setup attaches the logger, printer, config, and working directory to
// the command context.
func (c *cli) setup(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger := log.New(cmd.ErrOrStderr(), c.verbose, c.quiet)
	ctx = log.WithLogger(ctx, logger)
	ctx = output.WithPrinter(ctx, colorprofile.NewWriter(cmd.OutOrStdout(), os.Environ()))

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	ctx = config.WithWorkDir(ctx, workDir)

	if skipSetup[cmd.Name()] {
		cmd.SetContext(ctx)
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return hookerr.Wrap(hookerr.Config, "load config", err)
	}
	ctx = config.WithConfig(ctx, &cfg)

	if cfg.LogFile != "" {
		closeLog, err := logger.AttachFile(log.FileConfig{Path: cfg.LogFile})
		if err != nil {
			logger.Warnf("log file: %v", err)
		} else {
			c.closeLog = closeLog
		}
	}
	logger.Debug("invocation", "command", cmd.CommandPath(), "workdir", workDir, "version", version)

	cmd.SetContext(ctx)
	return nil
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rootCmd, c := newRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	if c.closeLog != nil {
		_ = c.closeLog()
	}
	reportError(rootCmd, err)
	return exitCode(err)
}

// exitCode maps err to the process exit code. An interrupt is treated
// like a cancelled prompt.
func exitCode(err error) int {
	if errors.Is(err, context.Canceled) {
		return 0
	}
	return hookerr.ExitCode(err)
}

func reportError(cmd *cobra.Command, err error) {
	if err == nil {
		return
	}
	w := cmd.ErrOrStderr()
	s := styles.New(styles.NoneTheme)
	if hookerr.Is(err, hookerr.PromptCancelled) || errors.Is(err, context.Canceled) {
		fmt.Fprintln(w, s.Muted.Render("cancelled"))
		return
	}
	fmt.Fprintln(w, s.Error.Render(s.Symbols.Failure)+" "+err.Error())
	if hookerr.Is(err, hookerr.InvalidArgument) || hookerr.KindOf(err) == hookerr.Unknown {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Run 'create-whop -h' for help")
	}
}
