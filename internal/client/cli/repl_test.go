package cli

import (
	"context"
	"io"
	"strings"
	"testing"
)

type fakeExec struct {
	calls []string
}

func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	return nil
}
func (f *fakeExec) Whoami(ctx context.Context) error {
	f.calls = append(f.calls, "whoami")
	return nil
}
func (f *fakeExec) Limit(ctx context.Context) error {
	f.calls = append(f.calls, "limit")
	return nil
}
func (f *fakeExec) Track(ctx context.Context) error {
	f.calls = append(f.calls, "track")
	return nil
}
func (f *fakeExec) Stats(ctx context.Context) error {
	f.calls = append(f.calls, "stats")
	return nil
}
func (f *fakeExec) Upgrade(ctx context.Context) error {
	f.calls = append(f.calls, "upgrade")
	return nil
}

func silencePrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

func lineFeeder(lines ...string) func() (string, error) {
	i := 0
	return func() (string, error) {
		if i >= len(lines) {
			return "", io.EOF
		}
		line := lines[i]
		i++
		return line, nil
	}
}

func TestRunLoop_DispatchesCommands(t *testing.T) {
	silencePrintln(t)

	exec := &fakeExec{}
	err := runLoop(context.Background(), exec, func(context.Context) string { return "s" },
		lineFeeder("help", "login", "whoami", "limit", "track", "foobar", "logout", "exit"))
	if err != nil {
		t.Fatalf("runLoop err: %v", err)
	}

	want := []string{"login", "whoami", "limit", "track", "logout"}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls mismatch: got %v, want %v", exec.calls, want)
	}
	for i := range want {
		if exec.calls[i] != want[i] {
			t.Fatalf("calls mismatch: got %v, want %v", exec.calls, want)
		}
	}
}

func TestRunLoop_CaseAndWhitespaceInsensitive(t *testing.T) {
	silencePrintln(t)

	exec := &fakeExec{}
	err := runLoop(context.Background(), exec, func(context.Context) string { return "s" },
		lineFeeder("  LOGIN  ", "", "Stats", "QUIT"))
	if err != nil {
		t.Fatalf("runLoop err: %v", err)
	}
	if len(exec.calls) != 2 || exec.calls[0] != "login" || exec.calls[1] != "stats" {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunLoop_EOFExitsCleanly(t *testing.T) {
	silencePrintln(t)

	exec := &fakeExec{}
	err := runLoop(context.Background(), exec, func(context.Context) string { return "s" }, lineFeeder())
	if err != nil {
		t.Fatalf("want nil on EOF, got %v", err)
	}
	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunLoop_CancelledContext(t *testing.T) {
	silencePrintln(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := runLoop(ctx, &fakeExec{}, func(context.Context) string { return "s" },
		lineFeeder(strings.Repeat("help\n", 3)))
	if err == nil {
		t.Fatal("want context error")
	}
}
