// Package generator loads a template into memory, runs the lifecycle hooks
// around it, and writes the result to the destination directory.
//
// Templates are copied verbatim; there is no templating engine. Hooks
// edit entries in place (for example the package.json name) and move the
// destination by changing Context.Dir.Path.
package generator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/raphi011/create-whop/internal/hookerr"
	"github.com/raphi011/create-whop/internal/log"
)

// FileEntry is one template file.
type FileEntry struct {
	// Path is slash-separated and relative to the template root.
	Path    string
	Content []byte
	Mode    fs.FileMode
}

// Dir is the output directory and the entries that will be written into it.
type Dir struct {
	Path    string
	Entries []FileEntry
}

// Find returns the entry at p, or nil.
func (d *Dir) Find(p string) *FileEntry {
	for i := range d.Entries {
		if d.Entries[i].Path == p {
			return &d.Entries[i]
		}
	}
	return nil
}

// Context is shared by the hooks of one generator run.
type Context struct {
	Dir  Dir
	Data map[string]any
}

// NewContext returns a Context writing to dir.
func NewContext(dir string, entries []FileEntry) *Context {
	return &Context{
		Dir:  Dir{Path: dir, Entries: entries},
		Data: map[string]any{},
	}
}

// Hook is a lifecycle callback.
type Hook func(ctx context.Context, gctx *Context) error

// Run calls before, writes the entries, then calls after.
// A nil hook is skipped.
func Run(ctx context.Context, gctx *Context, before, after Hook) error {
	if before != nil {
		if err := before(ctx, gctx); err != nil {
			return err
		}
	}
	if err := Write(ctx, gctx); err != nil {
		return err
	}
	if after != nil {
		return after(ctx, gctx)
	}
	return nil
}

// gitignoreName is how .gitignore is stored in templates, since npm drops
// .gitignore files from published packages.
const gitignoreName = "_gitignore"

// outputPath maps a template path to its path on disk.
func outputPath(p string) string {
	dir, base := path.Split(p)
	if base == gitignoreName {
		base = ".gitignore"
	}
	return filepath.FromSlash(dir + base)
}

// CheckDestination fails with DestinationExists if dir exists and holds
// anything besides repository metadata.
func CheckDestination(dir string) error {
	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return hookerr.Wrap(hookerr.DestinationExists, "check destination", err)
	}
	if !info.IsDir() {
		return hookerr.New(hookerr.DestinationExists, "check destination", "%s already exists and is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return hookerr.Wrap(hookerr.DestinationExists, "check destination", err)
	}
	for _, e := range entries {
		if e.Name() != ".git" {
			return hookerr.New(hookerr.DestinationExists, "check destination", "%s already exists and is not empty", dir)
		}
	}
	return nil
}

// Write creates gctx.Dir.Path and writes every entry into it.
func Write(ctx context.Context, gctx *Context) error {
	dest := gctx.Dir.Path
	if err := CheckDestination(dest); err != nil {
		return err
	}

	entries := append([]FileEntry(nil), gctx.Dir.Entries...)
	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })

	if err := os.MkdirAll(dest, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dest, err)
	}
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !fs.ValidPath(e.Path) {
			return fmt.Errorf("invalid template path %q", e.Path)
		}
		target := filepath.Join(dest, outputPath(e.Path))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("create %s: %w", filepath.Dir(target), err)
		}
		mode := e.Mode
		if mode == 0 {
			mode = 0o644
		}
		if err := os.WriteFile(target, e.Content, mode); err != nil {
			return fmt.Errorf("write %s: %w", e.Path, err)
		}
	}

	log.FromContext(ctx).Debug("wrote template", "dir", dest, "files", len(entries))
	return nil
}
