package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Valid enum values for configuration fields.
var (
	ValidPackageManagers = []string{"auto", "ask", "npm", "pnpm", "yarn", "bun"}
	ValidThemes          = []string{"default", "dracula", "nord", "gruvbox", "none"}
	ValidHookTriggers    = []string{"after", "all"}
)

// Validate checks enum fields and hook definitions.
func (c Config) Validate() error {
	if err := ValidatePackageManager(c.PackageManager); err != nil {
		return err
	}
	if err := validateEnum(c.Theme, "theme", ValidThemes); err != nil {
		return err
	}
	for name, hook := range c.Hooks.Hooks {
		if strings.TrimSpace(hook.Command) == "" {
			return fmt.Errorf("hook %q: command is required", name)
		}
		for _, on := range hook.On {
			if err := validateEnum(on, fmt.Sprintf("hooks.%s.on", name), ValidHookTriggers); err != nil {
				return err
			}
		}
	}
	if c.Stats.Enabled() && !strings.HasPrefix(c.Stats.URL, "http://") && !strings.HasPrefix(c.Stats.URL, "https://") {
		return fmt.Errorf("invalid stats.url %q: must start with http:// or https://", c.Stats.URL)
	}
	return nil
}

// ValidatePackageManager validates a package manager value against ValidPackageManagers.
// Exported for use in CLI flag validation.
func ValidatePackageManager(value string) error {
	return validateEnum(value, "package_manager", ValidPackageManagers)
}

// validateEnum checks that value (if non-empty) is one of the allowed values.
// Returns a formatted error mentioning the field name, the allowed options,
// and the closest allowed value if one matches fuzzily.
func validateEnum(value, field string, allowed []string) error {
	if value == "" {
		return nil
	}
	if slices.Contains(allowed, value) {
		return nil
	}
	msg := fmt.Sprintf("invalid %s %q: must be %s", field, value, formatOptions(allowed))
	if s := Suggest(value, allowed); s != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", s)
	}
	return fmt.Errorf("%s", msg)
}

// Suggest returns the allowed value that best matches value, or "" if
// nothing matches. Both directions are tried so that typos with swapped
// letters ("pnmp") and abbreviations ("pn") find a candidate.
func Suggest(value string, allowed []string) string {
	value = strings.ToLower(value)
	if matches := fuzzy.Find(value, allowed); len(matches) > 0 {
		return matches[0].Str
	}

	best, bestScore := "", 0
	for _, opt := range allowed {
		matches := fuzzy.Find(opt, []string{value})
		if len(matches) > 0 && (best == "" || matches[0].Score > bestScore) {
			best, bestScore = opt, matches[0].Score
		}
	}
	if best != "" {
		return best
	}

	// Fall back to the option sharing the most leading characters.
	bestPrefix := 0
	for _, opt := range allowed {
		n := commonPrefix(value, opt)
		if n > bestPrefix {
			best, bestPrefix = opt, n
		}
	}
	return best
}

func commonPrefix(a, b string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

// formatOptions formats a list of allowed values for error messages.
// E.g., ["a", "b", "c"] -> `"a", "b", or "c"`
func formatOptions(opts []string) string {
	quoted := make([]string, len(opts))
	for i, o := range opts {
		quoted[i] = fmt.Sprintf("%q", o)
	}
	if len(quoted) <= 2 {
		return strings.Join(quoted, " or ")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}
