package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Theme defines the color palette for UI components
type Theme struct {
	Name    string
	Primary color.Color // main accent color (note borders, prompt titles)
	Accent  color.Color // highlight color (selected items, typed input)
	Success color.Color // success indicators (checkmarks)
	Error   color.Color // error messages and the "Warning:" label
	Muted   color.Color // hints and inactive text
	Normal  color.Color // standard text
	Info    color.Color // informational text (vanity statistic)
	Warning color.Color // warnings and skipped steps

	// Banner gradient stops
	GradientFrom string
	GradientTo   string

	// Plain disables every color, including the banner gradient.
	Plain bool
}

// Whop brand gradient used for the banner.
const (
	BrandGradientFrom = "#FF6143"
	BrandGradientTo   = "#D9D9D9"
)

// Preset themes
var (
	// DefaultTheme is the default color scheme
	DefaultTheme = Theme{
		Name:         "default",
		Primary:      lipgloss.Color("62"),  // cyan/teal
		Accent:       lipgloss.Color("212"), // pink/magenta
		Success:      lipgloss.Color("82"),  // green
		Error:        lipgloss.Color("196"), // red
		Muted:        lipgloss.Color("240"), // dark gray
		Normal:       lipgloss.Color("252"), // light gray
		Info:         lipgloss.Color("244"), // gray
		Warning:      lipgloss.Color("214"), // orange
		GradientFrom: BrandGradientFrom,
		GradientTo:   BrandGradientTo,
	}

	// DraculaTheme is based on the Dracula color scheme
	DraculaTheme = Theme{
		Name:         "dracula",
		Primary:      lipgloss.Color("#bd93f9"), // purple
		Accent:       lipgloss.Color("#ff79c6"), // pink
		Success:      lipgloss.Color("#50fa7b"), // green
		Error:        lipgloss.Color("#ff5555"), // red
		Muted:        lipgloss.Color("#6272a4"), // comment
		Normal:       lipgloss.Color("#f8f8f2"), // foreground
		Info:         lipgloss.Color("#8be9fd"), // cyan
		Warning:      lipgloss.Color("#ffb86c"), // orange
		GradientFrom: "#ff79c6",
		GradientTo:   "#bd93f9",
	}

	// NordTheme is based on the Nord color scheme
	NordTheme = Theme{
		Name:         "nord",
		Primary:      lipgloss.Color("#88c0d0"), // nord8 (frost cyan)
		Accent:       lipgloss.Color("#b48ead"), // nord15 (aurora purple)
		Success:      lipgloss.Color("#a3be8c"), // nord14 (aurora green)
		Error:        lipgloss.Color("#bf616a"), // nord11 (aurora red)
		Muted:        lipgloss.Color("#4c566a"), // nord3 (polar night)
		Normal:       lipgloss.Color("#eceff4"), // nord6 (snow storm)
		Info:         lipgloss.Color("#81a1c1"), // nord9 (frost blue)
		Warning:      lipgloss.Color("#ebcb8b"), // nord13 (aurora yellow)
		GradientFrom: "#bf616a",
		GradientTo:   "#eceff4",
	}

	// GruvboxTheme is based on the Gruvbox color scheme
	GruvboxTheme = Theme{
		Name:         "gruvbox",
		Primary:      lipgloss.Color("#83a598"), // blue
		Accent:       lipgloss.Color("#d3869b"), // purple
		Success:      lipgloss.Color("#b8bb26"), // green
		Error:        lipgloss.Color("#fb4934"), // red
		Muted:        lipgloss.Color("#665c54"), // gray
		Normal:       lipgloss.Color("#ebdbb2"), // foreground
		Info:         lipgloss.Color("#8ec07c"), // aqua
		Warning:      lipgloss.Color("#fabd2f"), // yellow
		GradientFrom: "#fe8019",
		GradientTo:   "#ebdbb2",
	}

	// NoneTheme renders without any colors (uses terminal defaults)
	// Formatting (bold/italic/underline) is preserved
	NoneTheme = Theme{
		Name:    "none",
		Primary: lipgloss.NoColor{},
		Accent:  lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
		Muted:   lipgloss.NoColor{},
		Normal:  lipgloss.NoColor{},
		Info:    lipgloss.NoColor{},
		Warning: lipgloss.NoColor{},
		Plain:   true,
	}
)

var presets = map[string]Theme{
	"default": DefaultTheme,
	"dracula": DraculaTheme,
	"nord":    NordTheme,
	"gruvbox": GruvboxTheme,
	"none":    NoneTheme,
}

// Preset returns the theme with the given name.
// Unknown or empty names return DefaultTheme and false.
func Preset(name string) (Theme, bool) {
	t, ok := presets[name]
	if !ok {
		return DefaultTheme, false
	}
	return t, true
}
