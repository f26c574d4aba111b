package gitinit

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/raphi011/create-whop/internal/git"
	"github.com/raphi011/create-whop/internal/hookerr"
	"github.com/raphi011/create-whop/internal/ui/progress"
)

type spinnerEvent struct {
	start   bool
	status  progress.Status
	message string
}

type fakeSpinner struct {
	events []spinnerEvent
}

func (s *fakeSpinner) Start(message string) {
	s.events = append(s.events, spinnerEvent{start: true, message: message})
}

func (s *fakeSpinner) Stop(status progress.Status, message string) {
	s.events = append(s.events, spinnerEvent{status: status, message: message})
}

func (s *fakeSpinner) last() spinnerEvent {
	if len(s.events) == 0 {
		return spinnerEvent{}
	}
	return s.events[len(s.events)-1]
}

type fakeGit struct {
	initDirs   []string
	removeDirs []string
	initErr    error
	removeErr  error
	opts       git.InitOptions
}

func (g *fakeGit) init(_ context.Context, dir string, opts git.InitOptions) error {
	g.initDirs = append(g.initDirs, dir)
	g.opts = opts
	return g.initErr
}

func (g *fakeGit) remove(dir string) error {
	g.removeDirs = append(g.removeDirs, dir)
	return g.removeErr
}

func newTestInitializer(insp Inspector, confirm ConfirmFunc) (*Initializer, *fakeSpinner, *fakeGit) {
	sp := &fakeSpinner{}
	g := &fakeGit{}
	return &Initializer{
		Inspector: insp,
		Confirm:   confirm,
		Spinner:   sp,
		Options:   git.InitOptions{DefaultBranch: "main"},
		Init:      g.init,
		Remove:    g.remove,
	}, sp, g
}

func TestInitializer_NoConflict(t *testing.T) {
	t.Parallel()

	confirm, calls := recorder(false, nil)
	in, sp, g := newTestInitializer(&fakeInspector{}, confirm)

	got, err := in.Run(context.Background(), "/tmp/app")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got != Proceed {
		t.Errorf("Run() = %v, want proceed", got)
	}
	if len(*calls) != 0 {
		t.Error("no prompt expected")
	}
	if len(g.initDirs) != 1 || g.initDirs[0] != "/tmp/app" || len(g.removeDirs) != 0 {
		t.Errorf("init = %v, remove = %v", g.initDirs, g.removeDirs)
	}
	if g.opts.DefaultBranch != "main" {
		t.Errorf("init options = %+v, want configured branch", g.opts)
	}
	want := []spinnerEvent{
		{start: true, message: msgStart},
		{status: progress.StatusSuccess, message: msgSuccess},
	}
	if len(sp.events) != len(want) {
		t.Fatalf("spinner events = %+v, want %+v", sp.events, want)
	}
	for i := range want {
		if sp.events[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, sp.events[i], want[i])
		}
	}
}

func TestInitializer_OverwriteDeclined(t *testing.T) {
	t.Parallel()

	confirm, _ := recorder(false, nil)
	in, sp, g := newTestInitializer(&fakeInspector{hasRepo: true}, confirm)

	got, err := in.Run(context.Background(), "/tmp/app")
	if err != nil || got != Skip {
		t.Fatalf("Run() = %v, %v; want skip", got, err)
	}
	if len(g.initDirs) != 0 || len(g.removeDirs) != 0 {
		t.Error("no git operation expected after decline")
	}
	if last := sp.last(); last.status != progress.StatusSkipped || last.message != msgSkip {
		t.Errorf("last spinner event = %+v, want skip message", last)
	}
}

func TestInitializer_OverwriteAccepted(t *testing.T) {
	t.Parallel()

	confirm, _ := recorder(true, nil)
	in, sp, g := newTestInitializer(&fakeInspector{hasRepo: true}, confirm)

	got, err := in.Run(context.Background(), "/tmp/app")
	if err != nil || got != Proceed {
		t.Fatalf("Run() = %v, %v; want proceed", got, err)
	}
	if len(g.removeDirs) != 1 || len(g.initDirs) != 1 {
		t.Errorf("remove = %v, init = %v; want one each", g.removeDirs, g.initDirs)
	}
	// spinner stops for the prompt and restarts afterwards
	if len(sp.events) != 4 || !sp.events[2].start {
		t.Errorf("spinner events = %+v", sp.events)
	}
}

func TestInitializer_Failures(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	tests := []struct {
		name      string
		insp      *fakeInspector
		initErr   error
		removeErr error
	}{
		{"inspection", &fakeInspector{hasRepoErr: boom}, nil, nil},
		{"removal", &fakeInspector{hasRepo: true}, nil, boom},
		{"init", &fakeInspector{}, boom, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			confirm, _ := recorder(true, nil)
			in, sp, g := newTestInitializer(tt.insp, confirm)
			g.initErr, g.removeErr = tt.initErr, tt.removeErr

			got, err := in.Run(context.Background(), "/tmp/app")
			if got != Skip {
				t.Errorf("Run() outcome = %v, want skip", got)
			}
			if !hookerr.Is(err, hookerr.GitOperationFailed) {
				t.Errorf("Run() error kind = %v, want git operation failed", hookerr.KindOf(err))
			}
			if !errors.Is(err, boom) {
				t.Errorf("Run() error = %v, want wrapped %v", err, boom)
			}
			if last := sp.last(); last.status != progress.StatusFailure || last.message != msgFailure {
				t.Errorf("last spinner event = %+v, want failure message", last)
			}
		})
	}
}

func TestInitializer_Cancelled(t *testing.T) {
	t.Parallel()

	confirm, _ := recorder(false, hookerr.ErrCancelled)
	in, _, g := newTestInitializer(&fakeInspector{inAncestor: true}, confirm)

	_, err := in.Run(context.Background(), "/tmp/app")
	if !hookerr.Is(err, hookerr.PromptCancelled) {
		t.Fatalf("Run() error = %v, want prompt cancelled", err)
	}
	if len(g.initDirs) != 0 {
		t.Error("init must not run after cancel")
	}
}

func TestInitializer_RealRepo(t *testing.T) {
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")
	t.Setenv("GIT_AUTHOR_NAME", "Test User")
	t.Setenv("GIT_AUTHOR_EMAIL", "test@test.com")
	t.Setenv("GIT_COMMITTER_NAME", "Test User")
	t.Setenv("GIT_COMMITTER_EMAIL", "test@test.com")
	t.Setenv("GIT_CONFIG_COUNT", "1")
	t.Setenv("GIT_CONFIG_KEY_0", "commit.gpgsign")
	t.Setenv("GIT_CONFIG_VALUE_0", "false")

	base, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	dest := filepath.Join(base, "app")
	if err := os.MkdirAll(filepath.Join(dest, ".git", "objects"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dest, "index.js"), []byte("console.log(1)\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	confirm, calls := recorder(true, nil)
	sp := &fakeSpinner{}
	in := NewInitializer(confirm, sp, git.InitOptions{DefaultBranch: "main", InitialCommit: true, CommitMessage: "Initial commit"})

	got, err := in.Run(context.Background(), dest)
	if err != nil || got != Proceed {
		t.Fatalf("Run() = %v, %v; want proceed", got, err)
	}
	if len(*calls) != 1 || (*calls)[0].message != OverwriteMessage {
		t.Errorf("prompts = %+v, want overwrite prompt", *calls)
	}
	if _, err := os.Stat(filepath.Join(dest, ".git", "HEAD")); err != nil {
		t.Errorf("new repository missing HEAD: %v", err)
	}
	branch, err := git.CurrentBranch(context.Background(), dest)
	if err != nil || branch != "main" {
		t.Errorf("CurrentBranch() = %q, %v; want main", branch, err)
	}
}
