package generator

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
)

//go:embed all:template
var defaultTemplate embed.FS

// skipDirs are never copied from a template.
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
}

// HookFiles hold lifecycle hooks of template authors and are not copied.
var HookFiles = map[string]bool{
	"_poop.js": true,
	"_poop.ts": true,
}

// Default returns the entries of the built-in template.
func Default() ([]FileEntry, error) {
	sub, err := fs.Sub(defaultTemplate, "template")
	if err != nil {
		return nil, err
	}
	return LoadFS(sub)
}

// LoadDir reads the template at dir.
func LoadDir(dir string) ([]FileEntry, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("open template: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("template %s is not a directory", dir)
	}
	return LoadFS(os.DirFS(dir))
}

// LoadFS reads every regular file of fsys into entries, in lexical order.
func LoadFS(fsys fs.FS) ([]FileEntry, error) {
	var entries []FileEntry
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != "." && skipDirs[d.Name()] {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || HookFiles[path.Base(p)] {
			return nil
		}

		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		entries = append(entries, FileEntry{Path: p, Content: content, Mode: entryMode(info.Mode())})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load template: %w", err)
	}
	return entries, nil
}

// entryMode keeps the executable bit and makes the file owner-writable.
// Embedded files report read-only permissions.
func entryMode(m fs.FileMode) fs.FileMode {
	if m.Perm()&0o111 != 0 {
		return 0o755
	}
	return 0o644
}
