package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/x/ansi"
)

func TestPreset(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"default", "dracula", "nord", "gruvbox", "none"} {
		theme, ok := Preset(name)
		if !ok {
			t.Errorf("Preset(%q) not found", name)
			continue
		}
		if theme.Name != name {
			t.Errorf("Preset(%q).Name = %q", name, theme.Name)
		}
	}

	theme, ok := Preset("solarized")
	if ok {
		t.Error("Preset(solarized) should not be found")
	}
	if theme.Name != "default" {
		t.Errorf("unknown preset fallback = %q, want default", theme.Name)
	}
}

func TestGradient(t *testing.T) {
	t.Parallel()

	text := "abc\nde"

	t.Run("true color adds escapes and keeps text", func(t *testing.T) {
		t.Parallel()
		out, err := Gradient(text, BrandGradientFrom, BrandGradientTo, DefaultTheme, colorprofile.TrueColor)
		if err != nil {
			t.Fatalf("Gradient() error = %v", err)
		}
		if out == text {
			t.Error("Gradient() returned uncolored text for TrueColor")
		}
		if got := ansi.Strip(out); got != text {
			t.Errorf("stripped output = %q, want %q", got, text)
		}
	})

	t.Run("plain theme unchanged", func(t *testing.T) {
		t.Parallel()
		out, err := Gradient(text, BrandGradientFrom, BrandGradientTo, NoneTheme, colorprofile.TrueColor)
		if err != nil || out != text {
			t.Errorf("Gradient(none) = %q, %v; want unchanged", out, err)
		}
	})

	t.Run("no tty unchanged", func(t *testing.T) {
		t.Parallel()
		out, err := Gradient(text, BrandGradientFrom, BrandGradientTo, DefaultTheme, colorprofile.NoTTY)
		if err != nil || out != text {
			t.Errorf("Gradient(NoTTY) = %q, %v; want unchanged", out, err)
		}
	})

	t.Run("invalid color", func(t *testing.T) {
		t.Parallel()
		if _, err := Gradient(text, "orange", BrandGradientTo, DefaultTheme, colorprofile.TrueColor); err == nil {
			t.Error("Gradient() with invalid hex = nil, want error")
		}
	})
}

func TestRenderBanner(t *testing.T) {
	t.Parallel()

	out := RenderBanner(DefaultTheme, colorprofile.ANSI256)
	if got := ansi.Strip(out); got != Banner {
		t.Error("RenderBanner() changed the banner text")
	}
	if RenderBanner(NoneTheme, colorprofile.TrueColor) != Banner {
		t.Error("RenderBanner(none) should return the raw banner")
	}
}

func TestStyles_NoteAndWarn(t *testing.T) {
	t.Parallel()

	s := New(NoneTheme)

	note := ansi.Strip(s.Note("Next steps", "cd my-app\nnpm run dev"))
	for _, want := range []string{"Next steps", "cd my-app", "npm run dev"} {
		if !strings.Contains(note, want) {
			t.Errorf("Note() = %q, want to contain %q", note, want)
		}
	}

	warn := ansi.Strip(s.Warn("There is already a git repository."))
	if warn != "Warning: There is already a git repository." {
		t.Errorf("Warn() = %q", warn)
	}
}
