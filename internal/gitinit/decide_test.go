package gitinit

import (
	"errors"
	"testing"
)

type fakeInspector struct {
	hasRepo     bool
	inAncestor  bool
	hasRepoErr  error
	ancestorErr error

	hasRepoCalls  int
	ancestorCalls int
}

func (f *fakeInspector) HasRepo(string) (bool, error) {
	f.hasRepoCalls++
	return f.hasRepo, f.hasRepoErr
}

func (f *fakeInspector) InsideAncestorRepo(string) (bool, error) {
	f.ancestorCalls++
	return f.inAncestor, f.ancestorErr
}

type confirmCall struct {
	message      string
	defaultValue bool
}

// recorder returns a ConfirmFunc that answers with answer and records calls.
func recorder(answer bool, err error) (ConfirmFunc, *[]confirmCall) {
	var calls []confirmCall
	return func(message string, defaultValue bool) (bool, error) {
		calls = append(calls, confirmCall{message, defaultValue})
		return answer, err
	}, &calls
}

func TestDecide(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		hasRepo    bool
		inAncestor bool
		answer     bool
		want       Decision
		wantPrompt string
	}{
		{
			name: "no repo anywhere proceeds without prompt",
			want: Decision{Outcome: Proceed, State: NoRepo},
		},
		{
			name:       "repo at destination declined",
			hasRepo:    true,
			want:       Decision{Outcome: Skip, State: RepoAtDestination},
			wantPrompt: OverwriteMessage,
		},
		{
			name:       "repo at destination accepted removes existing",
			hasRepo:    true,
			answer:     true,
			want:       Decision{Outcome: Proceed, RemoveExisting: true, State: RepoAtDestination},
			wantPrompt: OverwriteMessage,
		},
		{
			name:       "repo at destination wins over ancestor",
			hasRepo:    true,
			inAncestor: true,
			want:       Decision{Outcome: Skip, State: RepoAtDestination},
			wantPrompt: OverwriteMessage,
		},
		{
			name:       "inside ancestor declined",
			inAncestor: true,
			want:       Decision{Outcome: Skip, State: InsideAncestorRepo},
			wantPrompt: NestedMessage("app"),
		},
		{
			name:       "inside ancestor accepted",
			inAncestor: true,
			answer:     true,
			want:       Decision{Outcome: Proceed, State: InsideAncestorRepo},
			wantPrompt: NestedMessage("app"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			insp := &fakeInspector{hasRepo: tt.hasRepo, inAncestor: tt.inAncestor}
			confirm, calls := recorder(tt.answer, nil)

			got, err := Decide("/tmp/app", insp, confirm)
			if err != nil {
				t.Fatalf("Decide() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Decide() = %+v, want %+v", got, tt.want)
			}
			if insp.hasRepoCalls != 1 || insp.ancestorCalls != 1 {
				t.Errorf("inspections = (%d, %d), want both computed once", insp.hasRepoCalls, insp.ancestorCalls)
			}

			if tt.wantPrompt == "" {
				if len(*calls) != 0 {
					t.Errorf("confirm called %d times, want 0", len(*calls))
				}
				return
			}
			if len(*calls) != 1 {
				t.Fatalf("confirm called %d times, want 1", len(*calls))
			}
			c := (*calls)[0]
			if c.message != tt.wantPrompt {
				t.Errorf("prompt = %q, want %q", c.message, tt.wantPrompt)
			}
			if c.defaultValue {
				t.Error("prompt default = true, want false")
			}
		})
	}
}

func TestDecide_InspectionError(t *testing.T) {
	t.Parallel()

	boom := errors.New("permission denied")
	for _, insp := range []*fakeInspector{
		{hasRepoErr: boom},
		{ancestorErr: boom},
	} {
		confirm, calls := recorder(true, nil)
		got, err := Decide("/tmp/app", insp, confirm)
		if !errors.Is(err, boom) {
			t.Errorf("Decide() error = %v, want %v", err, boom)
		}
		if got.Outcome != Skip {
			t.Errorf("Outcome = %v, want skip", got.Outcome)
		}
		if len(*calls) != 0 {
			t.Error("confirm must not run after an inspection error")
		}
	}
}

func TestDecide_ConfirmError(t *testing.T) {
	t.Parallel()

	cancelled := errors.New("cancelled")
	confirm, _ := recorder(true, cancelled)
	got, err := Decide("/tmp/app", &fakeInspector{hasRepo: true}, confirm)
	if !errors.Is(err, cancelled) {
		t.Fatalf("Decide() error = %v, want %v", err, cancelled)
	}
	if got.Outcome != Skip || got.RemoveExisting {
		t.Errorf("Decide() = %+v, want skip without removal", got)
	}
}

func TestNestedMessage(t *testing.T) {
	t.Parallel()

	want := `Warning: "my-app" is already in a git worktree. Would you still like to initialize a new git repository in this directory?`
	if got := NestedMessage("my-app"); got != want {
		t.Errorf("NestedMessage() = %q, want %q", got, want)
	}
}
