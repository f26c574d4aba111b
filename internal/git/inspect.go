package git

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
)

// DirName is the name of the repository metadata entry.
const DirName = ".git"

// Inspector answers repository questions about the filesystem.
type Inspector struct{}

// HasRepo reports whether path itself contains repository metadata.
// Both a .git directory and a .git file (worktrees, submodules) count.
func (Inspector) HasRepo(path string) (bool, error) {
	_, err := os.Lstat(filepath.Join(path, DirName))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("inspect %s: %w", path, err)
}

// InsideAncestorRepo reports whether any proper ancestor of path is
// inside a git work tree. path itself is not considered.
func (i Inspector) InsideAncestorRepo(path string) (bool, error) {
	root, err := i.AncestorRoot(path)
	if err != nil {
		return false, err
	}
	return root != "", nil
}

// AncestorRoot returns the work tree root of the nearest repository
// enclosing the parent of path, or "" if there is none.
func (Inspector) AncestorRoot(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	parent := filepath.Dir(abs)
	if parent == abs {
		return "", nil
	}

	repo, err := gogit.PlainOpenWithOptions(parent, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if errors.Is(err, gogit.ErrRepositoryNotExists) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("opening repository above %s: %w", abs, err)
	}

	wt, err := repo.Worktree()
	if errors.Is(err, gogit.ErrIsBareRepository) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("getting worktree above %s: %w", abs, err)
	}
	return wt.Filesystem.Root(), nil
}
