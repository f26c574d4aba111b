package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// InitOptions controls repository creation.
type InitOptions struct {
	// DefaultBranch overrides init.defaultBranch when non-empty.
	DefaultBranch string
	// InitialCommit stages all files and commits them.
	InitialCommit bool
	// CommitMessage is used for the initial commit.
	CommitMessage string
}

// Init creates a repository in dir and optionally commits its contents.
// If staging or committing fails, the new repository is removed again.
func Init(ctx context.Context, dir string, opts InitOptions) error {
	args := []string{"init"}
	if opts.DefaultBranch != "" {
		args = append(args, "-b", opts.DefaultBranch)
	}
	if err := runGit(ctx, dir, args...); err != nil {
		return fmt.Errorf("git init: %w", err)
	}

	if !opts.InitialCommit {
		return nil
	}

	if err := commitAll(ctx, dir, opts.CommitMessage); err != nil {
		if rmErr := RemoveRepo(dir); rmErr != nil {
			return errors.Join(err, rmErr)
		}
		return err
	}
	return nil
}

func commitAll(ctx context.Context, dir, msg string) error {
	if err := runGit(ctx, dir, "add", "-A"); err != nil {
		return fmt.Errorf("stage files: %w", err)
	}
	if msg == "" {
		msg = "Initial commit"
	}
	if err := runGit(ctx, dir, "commit", "-m", msg); err != nil {
		return fmt.Errorf("create initial commit: %w", err)
	}
	return nil
}

// RemoveRepo deletes the repository metadata in dir, whether it is a
// directory or a gitfile. A missing entry is not an error.
func RemoveRepo(dir string) error {
	if err := os.RemoveAll(filepath.Join(dir, DirName)); err != nil {
		return fmt.Errorf("remove existing repository: %w", err)
	}
	return nil
}

// CurrentBranch returns the branch HEAD points at in dir.
func CurrentBranch(ctx context.Context, dir string) (string, error) {
	out, err := outputGit(ctx, dir, "symbolic-ref", "--short", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
