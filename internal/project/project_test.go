package project

import (
	"path/filepath"
	"testing"

	"github.com/raphi011/create-whop/internal/hookerr"
)

func TestParse(t *testing.T) {
	t.Parallel()

	base := filepath.Join(string(filepath.Separator), "home", "dev", "Projects")

	tests := []struct {
		name  string
		input string
		want  Project
	}{
		{
			name:  "plain",
			input: "my-app",
			want:  Project{Dir: filepath.Join(base, "my-app"), Name: "my-app", PackageName: "my-app"},
		},
		{
			name:  "nested path",
			input: "apps/web",
			want:  Project{Dir: filepath.Join(base, "apps", "web"), Name: "web", PackageName: "web"},
		},
		{
			name:  "dot uses base dir",
			input: ".",
			want:  Project{Dir: base, Name: "Projects", PackageName: "projects"},
		},
		{
			name:  "scoped",
			input: "@acme/web",
			want:  Project{Dir: filepath.Join(base, "web"), Name: "web", PackageName: "@acme/web"},
		},
		{
			name:  "scoped below path",
			input: "apps/@acme/web",
			want:  Project{Dir: filepath.Join(base, "apps", "web"), Name: "web", PackageName: "@acme/web"},
		},
		{
			name:  "spaces and case",
			input: "  My Cool App ",
			want:  Project{Dir: filepath.Join(base, "My Cool App"), Name: "My Cool App", PackageName: "my-cool-app"},
		},
		{
			name:  "absolute",
			input: "/srv/apps/shop",
			want:  Project{Dir: filepath.Join(string(filepath.Separator), "srv", "apps", "shop"), Name: "shop", PackageName: "shop"},
		},
		{
			name:  "trailing slash",
			input: "my-app/",
			want:  Project{Dir: filepath.Join(base, "my-app"), Name: "my-app", PackageName: "my-app"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tt.input, base)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "   ", "!!!"} {
		_, err := Parse(input, "/tmp")
		if !hookerr.Is(err, hookerr.InvalidArgument) {
			t.Errorf("Parse(%q) error = %v, want invalid argument", input, err)
		}
	}
}

func TestPackageName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"my-app", "my-app"},
		{"My App", "my-app"},
		{"app!@#$", "app"},
		{"v1.2_beta~x", "v1.2_beta~x"},
		{".hidden", "hidden"},
		{"_private", "private"},
	}
	for _, tt := range tests {
		if got := PackageName(tt.in); got != tt.want {
			t.Errorf("PackageName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidateName(t *testing.T) {
	t.Parallel()

	if got := ValidateName(" \t"); got != MsgNameRequired {
		t.Errorf("ValidateName(blank) = %q, want %q", got, MsgNameRequired)
	}
	if got := ValidateName("app"); got != "" {
		t.Errorf("ValidateName(app) = %q, want empty", got)
	}
}
