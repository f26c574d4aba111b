package doctor

import (
	"context"
	"fmt"
	"io"

	"github.com/raphi011/create-whop/internal/cmd"
	"github.com/raphi011/create-whop/internal/config"
	"github.com/raphi011/create-whop/internal/pkgmgr"
	"github.com/raphi011/create-whop/internal/ui/static"
	"github.com/raphi011/create-whop/internal/ui/styles"
)

// Options configures Run.
type Options struct {
	// ConfigPath is the config file to validate. Empty skips the check.
	ConfigPath string
	// WorkDir is where git config is read from.
	WorkDir string
}

// available is replaced in tests.
var available = func(pm pkgmgr.PackageManager) bool {
	return cmd.Available(string(pm))
}

// Run performs all checks. It never fails; problems are reported as checks.
func Run(ctx context.Context, cfg config.Config, opts Options) Report {
	var r Report
	checkGit(ctx, &r, cfg, opts.WorkDir)
	checkPackageManagers(ctx, &r, cfg)
	checkConfig(&r, opts.ConfigPath)
	return r
}

// Print writes the report as a table followed by hints and a summary.
func Print(w io.Writer, r Report, s styles.Styles) {
	rows := make([][]string, 0, len(r.Checks))
	for _, c := range r.Checks {
		rows = append(rows, []string{c.Name, statusCell(c.Status, s), c.Detail})
	}
	fmt.Fprint(w, static.RenderTable([]string{"CHECK", "STATUS", "DETAIL"}, rows, s))

	var hints []Check
	for _, c := range r.Checks {
		if c.Hint != "" {
			hints = append(hints, c)
		}
	}
	if len(hints) > 0 {
		fmt.Fprintln(w)
		for _, c := range hints {
			fmt.Fprintf(w, "  • %s: %s\n", c.Name, c.Hint)
		}
	}

	fmt.Fprintln(w)
	switch fails, warns := r.Count(StatusFail), r.Count(StatusWarn); {
	case fails > 0:
		fmt.Fprintf(w, "%s %d problems found\n", s.Error.Render(s.Symbols.Failure), fails+warns)
	case warns > 0:
		fmt.Fprintf(w, "%s %d warnings\n", s.Warning.Render("!"), warns)
	default:
		fmt.Fprintf(w, "%s No issues found\n", s.Success.Render(s.Symbols.Success))
	}
}

func statusCell(st Status, s styles.Styles) string {
	switch st {
	case StatusOK:
		return s.Success.Render(string(st))
	case StatusFail:
		return s.Error.Render(string(st))
	case StatusWarn:
		return s.Warning.Render(string(st))
	default:
		return s.Muted.Render(string(st))
	}
}
