package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if cfg.PackageManager != DefaultPackageManager {
		t.Errorf("PackageManager = %q, want %q", cfg.PackageManager, DefaultPackageManager)
	}
	if !cfg.Git.InitialCommit {
		t.Error("Git.InitialCommit should default to true")
	}
	if cfg.Stats.Enabled() {
		t.Error("stats should be disabled without a url")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	data := []byte(`
package_manager = "pnpm"
theme = "nord"

[git]
default_branch = "main"
initial_commit = false

[stats]
url = "https://example.com/stats"
field = "data.devs"
timeout = "2s"

[hooks.editor]
command = "code {path}"
description = "Open VS Code"
on = ["after"]
`)

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.PackageManager != "pnpm" {
		t.Errorf("PackageManager = %q, want pnpm", cfg.PackageManager)
	}
	if cfg.Theme != "nord" {
		t.Errorf("Theme = %q, want nord", cfg.Theme)
	}
	if cfg.Git.DefaultBranch != "main" {
		t.Errorf("Git.DefaultBranch = %q, want main", cfg.Git.DefaultBranch)
	}
	if cfg.Git.InitialCommit {
		t.Error("Git.InitialCommit = true, want false")
	}
	if cfg.Git.CommitMessage != DefaultCommitMessage {
		t.Errorf("Git.CommitMessage = %q, want default", cfg.Git.CommitMessage)
	}
	if cfg.Stats.Field != "data.devs" || cfg.Stats.Timeout != 2*time.Second {
		t.Errorf("Stats = %+v", cfg.Stats)
	}
	if cfg.Stats.Label != DefaultStatsLabel {
		t.Errorf("Stats.Label = %q, want default", cfg.Stats.Label)
	}

	want := Hook{Command: "code {path}", Description: "Open VS Code", On: []string{"after"}}
	if got := cfg.Hooks.Hooks["editor"]; !reflect.DeepEqual(got, want) {
		t.Errorf("hooks.editor = %+v, want %+v", got, want)
	}
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"bad toml", `package_manager = `, "failed to parse"},
		{"unknown package manager", `package_manager = "pnmp"`, `did you mean "pnpm"`},
		{"unknown theme", `theme = "solarized"`, "invalid theme"},
		{"bad timeout", "[stats]\ntimeout = \"soon\"", "invalid stats.timeout"},
		{"bad stats url", "[stats]\nurl = \"ftp://x\"", "invalid stats.url"},
		{"hook without command", "[hooks.x]\ndescription = \"nothing\"", "command is required"},
		{"hook bad trigger", "[hooks.x]\ncommand = \"echo\"\non = [\"before\"]", "invalid hooks.x.on"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(tt.data))
			if err == nil {
				t.Fatal("Parse() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Parse() error = %q, want to contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestParseHooksConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      map[string]any
		expected HooksConfig
	}{
		{
			name: "full hooks config",
			raw: map[string]any{
				"editor": map[string]any{
					"command":     "code {path}",
					"description": "Open VS Code",
					"on":          []any{"after"},
				},
				"manual": map[string]any{
					"command": "echo {name}",
				},
			},
			expected: HooksConfig{
				Hooks: map[string]Hook{
					"editor": {Command: "code {path}", Description: "Open VS Code", On: []string{"after"}},
					"manual": {Command: "echo {name}"},
				},
			},
		},
		{
			name:     "nil input",
			raw:      nil,
			expected: HooksConfig{Hooks: map[string]Hook{}},
		},
		{
			name:     "non-table values ignored",
			raw:      map[string]any{"stray": "value"},
			expected: HooksConfig{Hooks: map[string]Hook{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := parseHooksConfig(tt.raw)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("parseHooksConfig() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestLoadFrom_Missing(t *testing.T) {
	t.Setenv(EnvPackageManager, "")
	t.Setenv(EnvTheme, "")
	t.Setenv(EnvLogFile, "")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFrom(missing) error = %v", err)
	}
	if cfg.PackageManager != DefaultPackageManager {
		t.Errorf("PackageManager = %q, want default", cfg.PackageManager)
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`package_manager = "npm"`), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv(EnvPackageManager, "bun")
	t.Setenv(EnvTheme, "dracula")
	t.Setenv(EnvLogFile, "")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.PackageManager != "bun" {
		t.Errorf("PackageManager = %q, want env override bun", cfg.PackageManager)
	}
	if cfg.Theme != "dracula" {
		t.Errorf("Theme = %q, want env override dracula", cfg.Theme)
	}
}

func TestLoadFrom_InvalidEnv(t *testing.T) {
	t.Setenv(EnvPackageManager, "yran")
	t.Setenv(EnvTheme, "")
	t.Setenv(EnvLogFile, "")

	_, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("LoadFrom() = nil, want error for invalid env value")
	}
	if !strings.Contains(err.Error(), `did you mean "yarn"`) {
		t.Errorf("error = %q, want yarn suggestion", err.Error())
	}
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "create-whop", "config.toml")
	t.Setenv(EnvConfigPath, path)

	got, err := Init(false)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if got != path {
		t.Errorf("Init() path = %q, want %q", got, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Parse(data); err != nil {
		t.Errorf("default config does not parse: %v", err)
	}

	if _, err := Init(false); err == nil {
		t.Error("Init(false) on existing file = nil, want error")
	}
	if _, err := Init(true); err != nil {
		t.Errorf("Init(true) error = %v", err)
	}
}

func TestSuggest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  string
	}{
		{"pnmp", "pnpm"},
		{"yran", "yarn"},
		{"nmp", "npm"},
		{"BUN", "bun"},
		{"zzz", ""},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()
			if got := Suggest(tt.value, []string{"npm", "pnpm", "yarn", "bun"}); got != tt.want {
				t.Errorf("Suggest(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestFormatOptions(t *testing.T) {
	t.Parallel()

	if got := formatOptions([]string{"a", "b"}); got != `"a" or "b"` {
		t.Errorf("formatOptions(2) = %s", got)
	}
	if got := formatOptions([]string{"a", "b", "c"}); got != `"a", "b", or "c"` {
		t.Errorf("formatOptions(3) = %s", got)
	}
}
