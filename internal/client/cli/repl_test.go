package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  [][]string
	err   error
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(context.Context) error {
	f.calls = append(f.calls, "register")
	return f.err
}
func (f *fakeExec) Login(context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return f.err
}
func (f *fakeExec) Logout(context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Status(context.Context) error  { f.calls = append(f.calls, "status"); return nil }
func (f *fakeExec) Balance(context.Context) error { f.calls = append(f.calls, "balance"); return f.err }
func (f *fakeExec) Sign(_ context.Context, args []string) error {
	f.calls = append(f.calls, "sign")
	f.args = append(f.args, args)
	return nil
}
func (f *fakeExec) Submit(_ context.Context, args []string) error {
	f.calls = append(f.calls, "submit")
	f.args = append(f.args, args)
	return nil
}

// capturePrintln records user-facing output for the test duration.
func capturePrintln(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) { return fmt.Fprintln(&buf, a...) }
	t.Cleanup(func() { printlnFn = orig })
	return &buf
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	out := capturePrintln(t)

	input := strings.Join([]string{
		"help",
		"login",
		"",
		"help",
		"status",
		"balance",
		"sign g1 m1 100",
		"submit t1 g1 m1 100 12.5 map=dust",
		"foobar",
		"logout",
		"exit",
		"status",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(strings.NewReader(input)))

	assert.Equal(t, []string{"login", "status", "balance", "sign", "submit", "logout"}, exec.calls)
	assert.Equal(t, [][]string{{"g1", "m1", "100"}, {"t1", "g1", "m1", "100", "12.5", "map=dust"}}, exec.args)

	text := out.String()
	assert.Contains(t, text, "Available commands: register, login, sign, exit")
	assert.Contains(t, text, "Available commands: status, balance, sign, submit, logout, exit")
	assert.Contains(t, text, "Unknown command: foobar")
	assert.Contains(t, text, "Bye!")
	assert.Contains(t, text, "game s> ")
}

func TestRunREPL_PrintsErrorsAndContinues(t *testing.T) {
	out := capturePrintln(t)

	exec := &fakeExec{err: errors.New("boom")}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("balance\nregister\nquit\n")))

	assert.Equal(t, []string{"balance", "register"}, exec.calls)
	assert.Equal(t, 2, strings.Count(out.String(), "Error: boom"))
}

func TestRunREPL_LastLineWithoutNewline(t *testing.T) {
	capturePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("status")))

	assert.Equal(t, []string{"status"}, exec.calls)
}
