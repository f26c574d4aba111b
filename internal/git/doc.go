// Package git inspects and initializes git repositories for new projects.
//
// Inspection uses go-git to walk the directory tree without spawning a
// process. Mutating operations shell out to the git CLI so the user's
// settings (init.defaultBranch, hooks, signing) apply to the new repo.
//
//   - [Inspector.HasRepo]: whether a directory holds its own .git entry
//   - [Inspector.InsideAncestorRepo]: whether any parent directory is a repo
//   - [Init]: git init, stage everything, optional initial commit
//   - [RemoveRepo]: delete existing repository metadata
package git
