package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	arg   string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Info(ctx context.Context) error  { f.calls = append(f.calls, "info"); return nil }
func (f *fakeExec) Mood(ctx context.Context) error  { f.calls = append(f.calls, "mood"); return nil }
func (f *fakeExec) Boards(ctx context.Context) error { f.calls = append(f.calls, "boards"); return nil }
func (f *fakeExec) Open(ctx context.Context, key string) error {
	f.calls = append(f.calls, "open")
	f.arg = key
	return nil
}
func (f *fakeExec) Post(ctx context.Context) error { f.calls = append(f.calls, "post"); return nil }
func (f *fakeExec) Lock(ctx context.Context) error { f.calls = append(f.calls, "lock"); return nil }
func (f *fakeExec) AddBoard(ctx context.Context) error {
	f.calls = append(f.calls, "add")
	return nil
}
func (f *fakeExec) RenameBoard(ctx context.Context, key string) error {
	f.calls = append(f.calls, "rename")
	f.arg = key
	return nil
}
func (f *fakeExec) DeleteBoard(ctx context.Context, key string) error {
	f.calls = append(f.calls, "delete")
	f.arg = key
	return nil
}
func (f *fakeExec) Charts(ctx context.Context) error   { f.calls = append(f.calls, "charts"); return nil }
func (f *fakeExec) Calendar(ctx context.Context) error { f.calls = append(f.calls, "calendar"); return nil }
func (f *fakeExec) Admin(ctx context.Context) error    { f.calls = append(f.calls, "admin"); return nil }
func (f *fakeExec) ChangeAdminPass(ctx context.Context) error {
	f.calls = append(f.calls, "chadmin")
	return nil
}
func (f *fakeExec) RecoverAdmin(ctx context.Context) error {
	f.calls = append(f.calls, "recover")
	return nil
}
func (f *fakeExec) Wipe(ctx context.Context) error { f.calls = append(f.calls, "wipe"); return nil }

func silenceOutput(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

func runScript(t *testing.T, f *fakeExec, lines ...string) {
	t.Helper()
	silenceOutput(t)
	reader := bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
	runREPL(context.Background(), f, func() string { return "" }, reader)
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	f := &fakeExec{}
	runScript(t, f,
		"login",
		"mood",
		"boards",
		"open happy",
		"post",
		"lock",
		"charts",
		"calendar",
		"logout",
		"exit",
	)
	assert.Equal(t, []string{"login", "mood", "boards", "open", "post", "lock", "charts", "calendar", "logout"}, f.calls)
	assert.Equal(t, "happy", f.arg)
}

func TestRunREPL_ArgumentCommandsNeedArgs(t *testing.T) {
	f := &fakeExec{loggedIn: true}
	runScript(t, f,
		"open",
		"rename",
		"delete",
		"exit",
	)
	assert.Empty(t, f.calls, "commands without the required argument must not dispatch")
}

func TestRunREPL_UnknownAndBlankLines(t *testing.T) {
	f := &fakeExec{}
	runScript(t, f,
		"",
		"frobnicate",
		"   ",
		"info",
		"quit",
	)
	assert.Equal(t, []string{"info"}, f.calls)
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	f := &fakeExec{}
	silenceOutput(t)
	reader := bufio.NewReader(strings.NewReader("boards")) // no trailing newline
	runREPL(context.Background(), f, func() string { return "" }, reader)
	assert.Equal(t, []string{"boards"}, f.calls, "last partial line is still dispatched")
}
