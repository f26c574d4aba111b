package lifecycle

import (
	"context"
	"fmt"
	"strings"

	"github.com/raphi011/create-whop/internal/generator"
	"github.com/raphi011/create-whop/internal/hookerr"
	"github.com/raphi011/create-whop/internal/log"
	"github.com/raphi011/create-whop/internal/manifest"
	"github.com/raphi011/create-whop/internal/project"
	"github.com/raphi011/create-whop/internal/stats"
	"github.com/raphi011/create-whop/internal/ui/styles"
)

// Prompt texts of the before hook.
const (
	MsgAppName         = "What do you want to name your app?"
	AppNamePlaceholder = "my-whop-app"
)

// Before names the app and prepares the template entries.
func (h *Hooks) Before(ctx context.Context, gctx *generator.Context) error {
	h.banner(ctx)

	name, err := h.appName()
	if err != nil {
		return err
	}

	proj, err := project.Parse(name, gctx.Dir.Path)
	if err != nil {
		return err
	}
	gctx.Dir.Path = proj.Dir
	log.FromContext(ctx).Debug("destination", "dir", proj.Dir, "package", proj.PackageName)

	if err := generator.CheckDestination(proj.Dir); err != nil {
		return err
	}

	entry := gctx.Dir.Find(manifest.FileName)
	if entry == nil {
		return hookerr.New(hookerr.Manifest, "rewrite manifest", "template has no %s", manifest.FileName)
	}
	content, err := manifest.SetName(entry.Content, proj.PackageName)
	if err != nil {
		return err
	}
	entry.Content = content

	app := App{Name: proj.Name, PackageName: proj.PackageName}
	gctx.Data[DataKey] = app
	h.Result.Path = proj.Dir
	h.Result.Name = app.Name
	h.Result.PackageName = app.PackageName
	return nil
}

func (h *Hooks) appName() (string, error) {
	name := strings.TrimSpace(h.Options.Name)
	if name != "" {
		if msg := project.ValidateName(name); msg != "" {
			return "", hookerr.New(hookerr.InvalidArgument, "app name", "%s", msg)
		}
		return name, nil
	}
	if !h.Interactive || h.Prompter == nil {
		return "", hookerr.New(hookerr.InvalidArgument, "app name", "no app name given; pass it as the first argument when not running in a terminal")
	}
	return h.Prompter.AskText(MsgAppName, AppNamePlaceholder, project.ValidateName)
}

// banner prints the gradient logo and, if configured, the statistic.
// Stats failures are ignored.
func (h *Hooks) banner(ctx context.Context) {
	l := log.FromContext(ctx)
	if h.UI == nil || l.IsQuiet() {
		return
	}

	var line string
	if h.Config.Stats.Enabled() {
		var err error
		line, err = stats.Line(ctx, h.HTTPClient, h.Config.Stats)
		if err != nil {
			l.Debug("stats unavailable", "error", err)
			line = ""
		}
	}

	fmt.Fprint(h.UI, styles.RenderBanner(h.Styles.Theme, h.Profile))
	if line != "" {
		fmt.Fprintln(h.UI, h.Styles.Muted.Render(line))
	}
	fmt.Fprintln(h.UI)
}
