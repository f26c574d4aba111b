package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/raphi011/create-whop/internal/storage"
)

// Hook defines a post-create shell hook
type Hook struct {
	Command     string   `toml:"command" json:"command"`
	Description string   `toml:"description" json:"description,omitempty"`
	On          []string `toml:"on" json:"on,omitempty"` // lifecycle points this hook runs on (empty = never automatic)
}

// HooksConfig holds hook-related configuration
type HooksConfig struct {
	Hooks map[string]Hook `toml:"-" json:"hooks"` // parsed from [hooks.NAME] sections
}

// GitConfig holds settings for repository initialization
type GitConfig struct {
	DefaultBranch string `toml:"default_branch" json:"defaultBranch"` // branch passed to git init -b (empty = git's default)
	InitialCommit bool   `toml:"initial_commit" json:"initialCommit"` // commit the generated files after init
	CommitMessage string `toml:"commit_message" json:"commitMessage"`
}

// StatsConfig configures the vanity statistic shown under the banner
type StatsConfig struct {
	URL     string        `toml:"url" json:"url"`     // endpoint returning JSON; empty disables the fetch
	Field   string        `toml:"field" json:"field"` // gjson path of the numeric field
	Label   string        `toml:"label" json:"label"` // display text, {count} is replaced by the formatted number
	Timeout time.Duration `toml:"-" json:"timeout"`   // parsed from the "timeout" string; 0 = no timeout
}

// Enabled reports whether a statistic endpoint is configured.
func (s StatsConfig) Enabled() bool {
	return s.URL != ""
}

// Config holds the create-whop configuration
type Config struct {
	PackageManager string      `toml:"package_manager" json:"packageManager"` // auto, ask, npm, pnpm, yarn, bun
	Theme          string      `toml:"theme" json:"theme"`
	LogFile        string      `toml:"log_file" json:"logFile,omitempty"`
	Git            GitConfig   `toml:"git" json:"git"`
	Stats          StatsConfig `toml:"stats" json:"stats"`
	Hooks          HooksConfig `toml:"-" json:"-"` // custom parsing needed, listed by "config hooks"
}

// Defaults
const (
	DefaultPackageManager = "auto"
	DefaultTheme          = "default"
	DefaultCommitMessage  = "Initial commit"
	DefaultStatsField     = "count"
	DefaultStatsLabel     = "{count} developers are building on Whop"
)

// Default returns the default configuration
func Default() Config {
	return Config{
		PackageManager: DefaultPackageManager,
		Theme:          DefaultTheme,
		Git: GitConfig{
			InitialCommit: true,
			CommitMessage: DefaultCommitMessage,
		},
		Stats: StatsConfig{
			Field: DefaultStatsField,
			Label: DefaultStatsLabel,
		},
		Hooks: HooksConfig{Hooks: map[string]Hook{}},
	}
}

// Environment variables that override config file settings.
const (
	EnvConfigPath     = "CREATE_WHOP_CONFIG"
	EnvPackageManager = "CREATE_WHOP_PACKAGE_MANAGER"
	EnvTheme          = "CREATE_WHOP_THEME"
	EnvLogFile        = "CREATE_WHOP_LOG_FILE"
)

// rawConfig is used for initial TOML parsing before processing hooks
// and optional values
type rawConfig struct {
	PackageManager string         `toml:"package_manager"`
	Theme          string         `toml:"theme"`
	LogFile        string         `toml:"log_file"`
	Git            rawGitConfig   `toml:"git"`
	Stats          rawStatsConfig `toml:"stats"`
	Hooks          map[string]any `toml:"hooks"`
}

type rawGitConfig struct {
	DefaultBranch string `toml:"default_branch"`
	InitialCommit *bool  `toml:"initial_commit"`
	CommitMessage string `toml:"commit_message"`
}

type rawStatsConfig struct {
	URL     string `toml:"url"`
	Field   string `toml:"field"`
	Label   string `toml:"label"`
	Timeout string `toml:"timeout"`
}

// expandPath expands ~ to the user's home directory
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}

// Path returns the path to the config file.
// CREATE_WHOP_CONFIG overrides the default ~/.config/create-whop/config.toml.
func Path() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return expandPath(p)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "create-whop", "config.toml"), nil
}

// Load reads the config file and applies environment overrides.
// Returns Default() if the file doesn't exist (no error).
// Returns an error only if the file exists but is invalid.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return applyEnv(Default())
	}
	return LoadFrom(path)
}

// LoadFrom reads config from path and applies environment overrides.
func LoadFrom(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return applyEnv(Default())
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Default(), err
	}
	return applyEnv(cfg)
}

// Parse decodes TOML config data, fills in defaults, and validates it.
func Parse(data []byte) (Config, error) {
	var raw rawConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg := Default()
	if raw.PackageManager != "" {
		cfg.PackageManager = raw.PackageManager
	}
	if raw.Theme != "" {
		cfg.Theme = raw.Theme
	}
	cfg.LogFile = raw.LogFile
	cfg.Git.DefaultBranch = raw.Git.DefaultBranch
	if raw.Git.InitialCommit != nil {
		cfg.Git.InitialCommit = *raw.Git.InitialCommit
	}
	if raw.Git.CommitMessage != "" {
		cfg.Git.CommitMessage = raw.Git.CommitMessage
	}
	cfg.Stats.URL = raw.Stats.URL
	if raw.Stats.Field != "" {
		cfg.Stats.Field = raw.Stats.Field
	}
	if raw.Stats.Label != "" {
		cfg.Stats.Label = raw.Stats.Label
	}
	if raw.Stats.Timeout != "" {
		d, err := time.ParseDuration(raw.Stats.Timeout)
		if err != nil {
			return Default(), fmt.Errorf("invalid stats.timeout %q: %w", raw.Stats.Timeout, err)
		}
		cfg.Stats.Timeout = d
	}
	cfg.Hooks = parseHooksConfig(raw.Hooks)

	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// applyEnv overrides config values from environment variables and
// re-validates the overridden fields.
func applyEnv(cfg Config) (Config, error) {
	if v := os.Getenv(EnvPackageManager); v != "" {
		cfg.PackageManager = v
	}
	if v := os.Getenv(EnvTheme); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.LogFile = v
	}

	if cfg.LogFile != "" {
		expanded, err := expandPath(cfg.LogFile)
		if err != nil {
			return Default(), fmt.Errorf("expand log_file: %w", err)
		}
		cfg.LogFile = expanded
	}

	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// parseHooksConfig extracts HooksConfig from raw TOML map
// Handles [hooks.NAME] sections
func parseHooksConfig(raw map[string]any) HooksConfig {
	hc := HooksConfig{
		Hooks: make(map[string]Hook),
	}

	for key, value := range raw {
		hookMap, ok := value.(map[string]any)
		if !ok {
			continue
		}
		hook := Hook{}
		if cmd, ok := hookMap["command"].(string); ok {
			hook.Command = cmd
		}
		if desc, ok := hookMap["description"].(string); ok {
			hook.Description = desc
		}
		if on, ok := hookMap["on"].([]any); ok {
			for _, v := range on {
				if s, ok := v.(string); ok {
					hook.On = append(hook.On, s)
				}
			}
		}
		hc.Hooks[key] = hook
	}

	return hc
}

const defaultConfig = `# create-whop configuration

# Package manager used for "Install dependencies?"
# "auto" detects the manager that launched create-whop (npm_config_user_agent)
# "ask" shows a selection prompt
# Values: "auto", "ask", "npm", "pnpm", "yarn", "bun"
package_manager = "auto"

# Color theme for the banner and prompts
# Values: "default", "dracula", "nord", "gruvbox", "none"
theme = "default"

# Optional rotating debug log (JSON lines)
# log_file = "~/.cache/create-whop/create-whop.log"

[git]
# Branch name for the new repository (empty uses git's init.defaultBranch)
# default_branch = "main"

# Commit the generated files right after "git init"
initial_commit = true
commit_message = "Initial commit"

# Vanity statistic shown under the banner
# The endpoint must return JSON; "field" is a gjson path to a number.
# [stats]
# url = "https://example.com/api/stats"
# field = "developers.total"
# label = "{count} developers are building on Whop"
# timeout = "3s"

# Hooks - shell commands that run after the project was generated
# Hooks run with the working directory set to the new project.
#
# [hooks.editor]
# command = "code {path}"
# description = "Open VS Code"
# on = ["after"]
#
# Available "on" values: "after", "all"
#
# Available placeholders:
#   {path}            - absolute project path
#   {name}            - app name as entered
#   {package-name}    - npm package name
#   {package-manager} - package manager used for install
#   {trigger}         - lifecycle point that triggered the hook
`

// Init creates a default config file at Path().
// If force is true, overwrites an existing file.
// Returns the path to the created file.
func Init(force bool) (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", errors.New("config file already exists: " + path)
		}
	}

	if err := storage.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return "", err
	}

	return path, nil
}

// DefaultConfig returns the commented default config file content.
func DefaultConfig() string {
	return defaultConfig
}
