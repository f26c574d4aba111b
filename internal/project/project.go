// Package project derives the destination directory and package name
// from the app name a user typed.
package project

import (
	"path/filepath"
	"strings"

	"github.com/raphi011/create-whop/internal/hookerr"
)

// Project is the parsed form of an app name.
type Project struct {
	// Dir is the absolute destination directory.
	Dir string
	// Name is the display name (last path component).
	Name string
	// PackageName is the npm package name, including any scope.
	PackageName string
}

// MsgNameRequired is the validation message for blank names.
const MsgNameRequired = "Name is required"

// ValidateName returns a message describing why input is not a usable
// app name, or "" if it is.
func ValidateName(input string) string {
	if strings.TrimSpace(input) == "" {
		return MsgNameRequired
	}
	return ""
}

// Parse resolves input against baseDir.
//
// "." targets baseDir itself. A path like "apps/web" creates the last
// component below baseDir. A scoped name "@acme/web" keeps the scope in
// the package name and uses "web" as the directory.
func Parse(input, baseDir string) (Project, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Project{}, hookerr.New(hookerr.InvalidArgument, "parse name", "%s", MsgNameRequired)
	}

	base, err := filepath.Abs(baseDir)
	if err != nil {
		return Project{}, hookerr.Wrap(hookerr.InvalidArgument, "resolve base dir", err)
	}

	segments := splitPath(input)
	scope := ""
	if n := len(segments); n >= 2 && strings.HasPrefix(segments[n-2], "@") {
		scope = segments[n-2]
		segments = append(segments[:n-2:n-2], segments[n-1])
	}

	var dir string
	switch {
	case filepath.IsAbs(input) && scope == "":
		dir = filepath.Clean(input)
	case filepath.IsAbs(input):
		dir = string(filepath.Separator) + filepath.Join(segments...)
	default:
		dir = filepath.Join(append([]string{base}, segments...)...)
	}

	name := filepath.Base(dir)
	pkg := PackageName(name)
	if pkg == "" {
		return Project{}, hookerr.New(hookerr.InvalidArgument, "parse name", "%q does not contain a valid package name", input)
	}
	if scope != "" {
		pkg = "@" + PackageName(strings.TrimPrefix(scope, "@")) + "/" + pkg
	}

	return Project{Dir: dir, Name: name, PackageName: pkg}, nil
}

// PackageName normalizes s into a valid unscoped npm package name.
func PackageName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == ' ':
			b.WriteByte('-')
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '.', r == '_', r == '~':
			b.WriteRune(r)
		}
	}
	return strings.TrimLeft(b.String(), "._")
}

// splitPath splits p on both separators and drops empty and "." parts.
func splitPath(p string) []string {
	fields := strings.FieldsFunc(filepath.ToSlash(p), func(r rune) bool { return r == '/' })
	out := fields[:0]
	for _, f := range fields {
		if f != "." {
			out = append(out, f)
		}
	}
	return out
}
