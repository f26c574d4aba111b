package styles

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"
)

// Gradient colors each column of a multi-line text block with a color
// blended between from and to. All lines share the same column colors so
// the block reads as one horizontal gradient.
//
// Plain themes and profiles without color support return text unchanged.
func Gradient(text, from, to string, theme Theme, profile colorprofile.Profile) (string, error) {
	if theme.Plain || profile == colorprofile.NoTTY || profile == colorprofile.Ascii {
		return text, nil
	}

	start, err := colorful.Hex(from)
	if err != nil {
		return "", fmt.Errorf("gradient start %q: %w", from, err)
	}
	end, err := colorful.Hex(to)
	if err != nil {
		return "", fmt.Errorf("gradient end %q: %w", to, err)
	}

	lines := strings.Split(text, "\n")
	width := 0
	for _, line := range lines {
		width = max(width, ansi.StringWidth(line))
	}
	if width == 0 {
		return text, nil
	}

	palette := make([]lipgloss.Style, width)
	for i := range palette {
		t := 0.0
		if width > 1 {
			t = float64(i) / float64(width-1)
		}
		c := start.BlendLab(end, t).Clamped()
		palette[i] = lipgloss.NewStyle().Foreground(profile.Convert(c))
	}

	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteString("\n")
		}
		col := 0
		for _, r := range line {
			if r == ' ' {
				sb.WriteRune(r)
				col++
				continue
			}
			sb.WriteString(palette[min(col, width-1)].Render(string(r)))
			col += max(ansi.StringWidth(string(r)), 1)
		}
	}
	return sb.String(), nil
}

// Banner is the create-whop logo.
const Banner = `
                        __                     __
  _____________  ____ _/ /____       _      __/ /_  ____  ____
 / ___/ ___/ _ \/ __ ` + "`" + `/ __/ _ \_____| | /| / / __ \/ __ \/ __ \
/ /__/ /  /  __/ /_/ / /_/  __/_____| |/ |/ / / / / /_/ / /_/ /
\___/_/   \___/\__,_/\__/\___/      |__/|__/_/ /_/\____/ .___/
                                                      /_/
`

// RenderBanner renders the logo with the theme gradient, falling back
// to the brand colors when the theme defines none.
func RenderBanner(theme Theme, profile colorprofile.Profile) string {
	from, to := theme.GradientFrom, theme.GradientTo
	if from == "" || to == "" {
		from, to = BrandGradientFrom, BrandGradientTo
	}
	out, err := Gradient(Banner, from, to, theme, profile)
	if err != nil {
		return Banner
	}
	return out
}
