package doctor

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/raphi011/create-whop/internal/config"
	"github.com/raphi011/create-whop/internal/pkgmgr"
	"github.com/raphi011/create-whop/internal/ui/styles"
)

// withAvailable replaces package manager detection for one test.
func withAvailable(t *testing.T, installed ...pkgmgr.PackageManager) {
	t.Helper()
	prev := available
	available = func(pm pkgmgr.PackageManager) bool {
		for _, p := range installed {
			if p == pm {
				return true
			}
		}
		return false
	}
	t.Cleanup(func() { available = prev })
}

// fakeBinary writes an executable shell script named name into a temp
// dir and prepends it to PATH.
func fakeBinary(t *testing.T, name, script string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts not supported on windows")
	}
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("#!/bin/sh\n"+script+"\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func find(r Report, category Category, name string) (Check, bool) {
	for _, c := range r.Checks {
		if c.Category == category && c.Name == name {
			return c, true
		}
	}
	return Check{}, false
}

func TestCheckPackageManagers_NoneInstalled(t *testing.T) {
	withAvailable(t)

	var r Report
	checkPackageManagers(context.Background(), &r, config.Default())

	if got := r.Count(StatusMissing); got != len(pkgmgr.All) {
		t.Errorf("missing = %d, want %d", got, len(pkgmgr.All))
	}
	c, ok := find(r, CategoryPackageManager, "install")
	if !ok || c.Status != StatusFail {
		t.Fatalf("expected failing install check, got %+v", r.Checks)
	}
	if r.Healthy() {
		t.Error("Healthy() = true, want false")
	}
}

func TestCheckPackageManagers_PinnedMissing(t *testing.T) {
	fakeBinary(t, "npm", `echo "10.2.4"`)
	withAvailable(t, pkgmgr.NPM)

	cfg := config.Default()
	cfg.PackageManager = "pnpm"

	var r Report
	checkPackageManagers(context.Background(), &r, cfg)

	npm, _ := find(r, CategoryPackageManager, "npm")
	if npm.Status != StatusOK || npm.Detail != "10.2.4" {
		t.Errorf("npm = %+v, want ok with version", npm)
	}
	pnpm, _ := find(r, CategoryPackageManager, "pnpm")
	if pnpm.Status != StatusFail || pnpm.Hint == "" {
		t.Errorf("pnpm = %+v, want fail with hint", pnpm)
	}
	yarn, _ := find(r, CategoryPackageManager, "yarn")
	if yarn.Status != StatusMissing {
		t.Errorf("yarn = %+v, want missing", yarn)
	}
}

func TestCheckConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	valid := filepath.Join(dir, "valid.toml")
	invalid := filepath.Join(dir, "invalid.toml")
	if err := os.WriteFile(valid, []byte("theme = \"nord\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(invalid, []byte("package_manager = \"pnmp\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		path       string
		wantStatus Status
		wantChecks int
	}{
		{"empty path skips", "", "", 0},
		{"missing file uses defaults", filepath.Join(dir, "none.toml"), StatusOK, 1},
		{"valid file", valid, StatusOK, 1},
		{"invalid file fails", invalid, StatusFail, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var r Report
			checkConfig(&r, tt.path)
			if len(r.Checks) != tt.wantChecks {
				t.Fatalf("checks = %+v, want %d", r.Checks, tt.wantChecks)
			}
			if tt.wantChecks > 0 && r.Checks[0].Status != tt.wantStatus {
				t.Errorf("status = %q, want %q (%s)", r.Checks[0].Status, tt.wantStatus, r.Checks[0].Detail)
			}
		})
	}
}

func TestCheckGit_MissingIdentity(t *testing.T) {
	global := filepath.Join(t.TempDir(), "gitconfig")
	if err := os.WriteFile(global, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GIT_CONFIG_GLOBAL", global)
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")

	var r Report
	checkGit(context.Background(), &r, config.Default(), t.TempDir())

	gitCheck, ok := find(r, CategoryGit, "git")
	if !ok || gitCheck.Status != StatusOK {
		t.Fatalf("git check = %+v, want ok", gitCheck)
	}
	for _, key := range []string{"user.name", "user.email"} {
		c, ok := find(r, CategoryGit, key)
		if !ok || c.Status != StatusWarn || !strings.Contains(c.Hint, key) {
			t.Errorf("%s check = %+v, want warn with hint", key, c)
		}
	}
}

func TestCheckGit_SkipsIdentityWithoutCommit(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Git.InitialCommit = false

	var r Report
	checkGit(context.Background(), &r, cfg, t.TempDir())
	if _, ok := find(r, CategoryGit, "user.name"); ok {
		t.Error("identity should not be checked when initial_commit is off")
	}
}

func TestPrint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		report Report
		want   []string
	}{
		{
			name: "healthy",
			report: Report{Checks: []Check{
				{Category: CategoryGit, Name: "git", Status: StatusOK, Detail: "2.43.0"},
			}},
			want: []string{"CHECK", "2.43.0", "No issues found"},
		},
		{
			name: "warnings only",
			report: Report{Checks: []Check{
				{Category: CategoryGit, Name: "user.name", Status: StatusWarn, Hint: "git config --global user.name <value>"},
			}},
			want: []string{"user.name: git config --global user.name <value>", "1 warnings"},
		},
		{
			name: "failure",
			report: Report{Checks: []Check{
				{Category: CategoryPackageManager, Name: "install", Status: StatusFail, Detail: "no package manager found"},
				{Category: CategoryGit, Name: "git", Status: StatusWarn},
			}},
			want: []string{"no package manager found", "2 problems found"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			Print(&buf, tt.report, styles.New(styles.NoneTheme))
			got := ansi.Strip(buf.String())
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("output missing %q:\n%s", w, got)
				}
			}
		})
	}
}
