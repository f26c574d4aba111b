// Package gitinit decides whether a new project may get its own git
// repository and runs the initialization around that decision.
//
// [Decide] inspects the destination and its ancestors once, asks at most
// one question, and returns [Proceed] or [Skip]. [Initializer] wraps the
// decision with spinner output, metadata removal, and git init.
package gitinit

import (
	"fmt"
	"path/filepath"
)

// State is the repository situation of a destination directory.
type State int

const (
	// NoRepo means neither the destination nor an ancestor is a repository.
	NoRepo State = iota
	// RepoAtDestination means the destination has its own .git entry.
	RepoAtDestination
	// InsideAncestorRepo means an ancestor directory is inside a work tree.
	InsideAncestorRepo
)

func (s State) String() string {
	switch s {
	case RepoAtDestination:
		return "repo-at-destination"
	case InsideAncestorRepo:
		return "inside-ancestor-repo"
	default:
		return "no-repo"
	}
}

// Outcome is the result of the decision.
type Outcome int

const (
	Proceed Outcome = iota
	Skip
)

func (o Outcome) String() string {
	if o == Skip {
		return "skip"
	}
	return "proceed"
}

// Decision is what [Decide] concluded for a destination.
type Decision struct {
	Outcome Outcome
	// RemoveExisting is set when existing metadata at the destination
	// must be deleted before initializing.
	RemoveExisting bool
	State          State
}

// Inspector reports the repository state around a path.
type Inspector interface {
	HasRepo(path string) (bool, error)
	InsideAncestorRepo(path string) (bool, error)
}

// ConfirmFunc asks a yes/no question with a default answer.
type ConfirmFunc func(message string, defaultValue bool) (bool, error)

// OverwriteMessage is asked when the destination already has a repository.
const OverwriteMessage = "Warning: There is already a git repository. Initializing a new repository would delete the previous history. Would you like to continue?"

// NestedMessage returns the question asked when dirName sits inside another work tree.
func NestedMessage(dirName string) string {
	return fmt.Sprintf("Warning: %q is already in a git worktree. Would you still like to initialize a new git repository in this directory?", dirName)
}

// Decide determines whether git may be initialized at dest. Both
// inspections run before branching; confirm is called at most once and
// always with a false default.
func Decide(dest string, inspector Inspector, confirm ConfirmFunc) (Decision, error) {
	hasRepo, err := inspector.HasRepo(dest)
	if err != nil {
		return Decision{Outcome: Skip}, err
	}
	inAncestor, err := inspector.InsideAncestorRepo(dest)
	if err != nil {
		return Decision{Outcome: Skip}, err
	}

	switch {
	case hasRepo:
		ok, err := confirm(OverwriteMessage, false)
		if err != nil || !ok {
			return Decision{Outcome: Skip, State: RepoAtDestination}, err
		}
		return Decision{Outcome: Proceed, RemoveExisting: true, State: RepoAtDestination}, nil
	case inAncestor:
		ok, err := confirm(NestedMessage(filepath.Base(dest)), false)
		if err != nil || !ok {
			return Decision{Outcome: Skip, State: InsideAncestorRepo}, err
		}
		return Decision{Outcome: Proceed, State: InsideAncestorRepo}, nil
	default:
		return Decision{Outcome: Proceed, State: NoRepo}, nil
	}
}
