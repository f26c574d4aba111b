package doctor

import (
	"context"
	"errors"
	"os"

	"github.com/raphi011/create-whop/internal/config"
	"github.com/raphi011/create-whop/internal/git"
	"github.com/raphi011/create-whop/internal/pkgmgr"
)

// checkGit reports the git version and, when the initial commit is
// enabled, whether a commit identity is configured.
func checkGit(ctx context.Context, r *Report, cfg config.Config, workDir string) {
	if err := git.CheckGit(); err != nil {
		r.add(Check{
			Category: CategoryGit,
			Name:     "git",
			Status:   StatusWarn,
			Detail:   "not found on PATH",
			Hint:     "install git (https://git-scm.com) or pass --no-git",
		})
		return
	}

	version, err := git.Version(ctx)
	if err != nil {
		r.add(Check{Category: CategoryGit, Name: "git", Status: StatusWarn, Detail: err.Error()})
		return
	}
	r.add(Check{Category: CategoryGit, Name: "git", Status: StatusOK, Detail: version})

	if !cfg.Git.InitialCommit {
		return
	}
	for _, key := range []string{"user.name", "user.email"} {
		value, err := git.ConfigValue(ctx, workDir, key)
		switch {
		case err != nil:
			r.add(Check{Category: CategoryGit, Name: key, Status: StatusWarn, Detail: err.Error()})
		case value == "":
			r.add(Check{
				Category: CategoryGit,
				Name:     key,
				Status:   StatusWarn,
				Detail:   "not set, the initial commit will fail",
				Hint:     "git config --global " + key + " <value>",
			})
		default:
			r.add(Check{Category: CategoryGit, Name: key, Status: StatusOK, Detail: value})
		}
	}
}

// checkPackageManagers reports every supported package manager. Missing
// ones are informational unless the config pins one, which then fails.
func checkPackageManagers(ctx context.Context, r *Report, cfg config.Config) {
	pinned, _ := pkgmgr.Parse(cfg.PackageManager)
	found := 0

	for _, pm := range pkgmgr.All {
		if !available(pm) {
			c := Check{Category: CategoryPackageManager, Name: string(pm), Status: StatusMissing}
			if pm == pinned {
				c.Status = StatusFail
				c.Detail = "configured as package_manager but not installed"
				c.Hint = "install " + string(pm) + " or change package_manager"
			}
			r.add(c)
			continue
		}

		found++
		version, err := pkgmgr.Version(ctx, pm)
		if err != nil {
			r.add(Check{Category: CategoryPackageManager, Name: string(pm), Status: StatusWarn, Detail: err.Error()})
			continue
		}
		r.add(Check{Category: CategoryPackageManager, Name: string(pm), Status: StatusOK, Detail: version})
	}

	if found == 0 {
		r.add(Check{
			Category: CategoryPackageManager,
			Name:     "install",
			Status:   StatusFail,
			Detail:   "no package manager found",
			Hint:     "install Node.js (https://nodejs.org) or pass --no-install",
		})
	}
}

// checkConfig reports whether the config file at path parses. A missing
// file is fine.
func checkConfig(r *Report, path string) {
	if path == "" {
		return
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		r.add(Check{
			Category: CategoryConfig,
			Name:     "config",
			Status:   StatusOK,
			Detail:   "no config file, using defaults",
		})
		return
	}
	if _, err := config.LoadFrom(path); err != nil {
		r.add(Check{
			Category: CategoryConfig,
			Name:     "config",
			Status:   StatusFail,
			Detail:   err.Error(),
			Hint:     "fix " + path + " or regenerate it with 'create-whop config init -f'",
		})
		return
	}
	r.add(Check{Category: CategoryConfig, Name: "config", Status: StatusOK, Detail: path})
}
