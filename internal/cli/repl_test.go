package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool
	repoOpen bool

	calls []string
	args  map[string][]string
}

func (f *fakeExec) record(name string, args []string) {
	f.calls = append(f.calls, name)
	if args != nil {
		if f.args == nil {
			f.args = map[string][]string{}
		}
		f.args[name] = args
	}
}

func (f *fakeExec) isLoggedIn() bool  { return f.loggedIn }
func (f *fakeExec) hasOpenRepo() bool { return f.repoOpen }

func (f *fakeExec) Register(ctx context.Context) error {
	f.record("register", nil)
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.record("login", nil)
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.record("logout", nil)
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Whoami(ctx context.Context) error { f.record("whoami", nil); return nil }

func (f *fakeExec) Repos(ctx context.Context, args []string) error {
	f.record("repos", args)
	return nil
}
func (f *fakeExec) CreateRepo(ctx context.Context) error { f.record("mkrepo", nil); return nil }
func (f *fakeExec) DeleteRepo(ctx context.Context, args []string) error {
	f.record("rmrepo", args)
	return nil
}
func (f *fakeExec) Open(ctx context.Context, args []string) error {
	f.record("open", args)
	f.repoOpen = true
	return nil
}
func (f *fakeExec) CloseRepo(ctx context.Context) error {
	f.record("close", nil)
	f.repoOpen = false
	return nil
}

func (f *fakeExec) Papers(ctx context.Context) error { f.record("papers", nil); return nil }
func (f *fakeExec) Upload(ctx context.Context) error { f.record("upload", nil); return nil }
func (f *fakeExec) Update(ctx context.Context, args []string) error {
	f.record("update", args)
	return nil
}
func (f *fakeExec) Versions(ctx context.Context, args []string) error {
	f.record("versions", args)
	return nil
}
func (f *fakeExec) Preview(ctx context.Context, args []string) error {
	f.record("preview", args)
	return nil
}
func (f *fakeExec) Download(ctx context.Context, args []string) error {
	f.record("download", args)
	return nil
}
func (f *fakeExec) DeletePaper(ctx context.Context, args []string) error {
	f.record("rmpaper", args)
	return nil
}
func (f *fakeExec) Activity(ctx context.Context) error { f.record("activity", nil); return nil }
func (f *fakeExec) Collaborators(ctx context.Context) error {
	f.record("collab", nil)
	return nil
}

func silencePrintln(t *testing.T) {
	t.Helper()
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })
}

func TestRunREPL_SessionFlow(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"repos my",
		"open repo-1",
		"upload",
		"update paper-1",
		"versions paper-1",
		"activity",
		"collab",
		"close",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "repos", "open", "upload", "update", "versions", "activity", "collab", "close"}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}

	if got := exec.args["repos"]; len(got) != 1 || got[0] != "my" {
		t.Fatalf("repos args: %v", got)
	}
	if got := exec.args["open"]; len(got) != 1 || got[0] != "repo-1" {
		t.Fatalf("open args: %v", got)
	}
	if got := exec.args["update"]; len(got) != 1 || got[0] != "paper-1" {
		t.Fatalf("update args: %v", got)
	}
}

func TestRunREPL_QuitAndUnknown(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("frobnicate\nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_EOFExits(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("whoami\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	if len(exec.calls) != 1 || exec.calls[0] != "whoami" {
		t.Fatalf("calls: %v", exec.calls)
	}
}
