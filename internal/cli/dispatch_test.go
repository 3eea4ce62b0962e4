package cli_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"todo/internal/cli"
	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
	"todo/internal/testutil"
)

func newDispatcher(fake *testutil.FakeService) *cli.Dispatcher {
	factory := func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		return fake, nil
	}
	return cli.NewDispatcher(commands.DefaultRegistry, factory)
}

func run(t *testing.T, d *cli.Dispatcher, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := d.Run(context.Background(), args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestUnknownCommand(t *testing.T) {
	d := newDispatcher(testutil.NewFakeService())
	code, _, errOut := run(t, d, "bogus")
	if code != exitcode.UserError {
		t.Errorf("expected exit 1, got %d", code)
	}
	if errOut != "error: unknown command: bogus\n" {
		t.Errorf("unexpected stderr: %q", errOut)
	}
}

func TestFlagBeforeCommand(t *testing.T) {
	d := newDispatcher(testutil.NewFakeService())
	code, _, errOut := run(t, d, "--quiet", "list")
	if code != exitcode.UserError {
		t.Errorf("expected exit 1, got %d", code)
	}
	if !strings.Contains(errOut, "unknown command: --quiet") {
		t.Errorf("unexpected stderr: %q", errOut)
	}
}

func TestUnknownFlag(t *testing.T) {
	d := newDispatcher(testutil.NewFakeService())
	code, _, errOut := run(t, d, "list", "--bogus")
	if code != exitcode.UserError {
		t.Errorf("expected exit 1, got %d", code)
	}
	if !strings.Contains(errOut, "unknown flag: -bogus") {
		t.Errorf("unexpected stderr: %q", errOut)
	}
}

func TestHelp(t *testing.T) {
	d := newDispatcher(testutil.NewFakeService())
	code, out, _ := run(t, d, "help", "--config", t.TempDir())
	if code != exitcode.Success {
		t.Errorf("expected exit 0, got %d", code)
	}
	if !strings.Contains(out, "Usage:") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestVersion(t *testing.T) {
	d := newDispatcher(testutil.NewFakeService())
	code, out, _ := run(t, d, "version", "--config", t.TempDir())
	if code != exitcode.Success {
		t.Errorf("expected exit 0, got %d", code)
	}
	if out != "todo "+commands.Version+"\n" {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestNeedsAuth_NoToken(t *testing.T) {
	d := newDispatcher(testutil.NewFakeService())
	code, _, errOut := run(t, d, "list", "--config", t.TempDir())
	if code != exitcode.AuthError {
		t.Errorf("expected exit 2, got %d", code)
	}
	if errOut != "error: not logged in (run: todo login)\n" {
		t.Errorf("unexpected stderr: %q", errOut)
	}
}

func TestNeedsAuth_InvalidToken(t *testing.T) {
	fake := testutil.NewFakeService()
	fake.MeErr = testutil.ErrNotFound

	dir := t.TempDir()
	if err := (&config.Config{Dir: dir}).WriteToken("stale-token"); err != nil {
		t.Fatalf("failed to seed token: %v", err)
	}

	d := newDispatcher(fake)
	code, _, errOut := run(t, d, "list", "--config", dir)
	if code != exitcode.AuthError {
		t.Errorf("expected exit 2, got %d", code)
	}
	if errOut != "error: token expired or invalid (run: todo login)\n" {
		t.Errorf("unexpected stderr: %q", errOut)
	}
}

func TestAuthenticatedList(t *testing.T) {
	fake := testutil.NewFakeService()
	fake.AddTask("u1", "Buy milk", false)

	dir := t.TempDir()
	if err := (&config.Config{Dir: dir}).WriteToken("tok-1"); err != nil {
		t.Fatalf("failed to seed token: %v", err)
	}

	d := newDispatcher(fake)
	code, out, errOut := run(t, d, "list", "--config", dir)
	if code != exitcode.Success {
		t.Fatalf("expected exit 0, got %d (stderr: %s)", code, errOut)
	}
	if !strings.Contains(out, "[ ] Buy milk") {
		t.Errorf("unexpected output: %q", out)
	}
	if fake.Token() != "tok-1" {
		t.Errorf("expected installed token, got %q", fake.Token())
	}
}

func TestNoArgsListsTasks(t *testing.T) {
	d := newDispatcher(testutil.NewFakeService())
	code, _, errOut := run(t, d)
	if code != exitcode.AuthError {
		t.Errorf("expected exit 2 without a token, got %d", code)
	}
	if !strings.Contains(errOut, "not logged in") {
		t.Errorf("unexpected stderr: %q", errOut)
	}
}

func TestQuietSuppressesChatter(t *testing.T) {
	fake := testutil.NewFakeService()
	dir := t.TempDir()
	if err := (&config.Config{Dir: dir}).WriteToken("tok-1"); err != nil {
		t.Fatalf("failed to seed token: %v", err)
	}

	d := newDispatcher(fake)
	code, out, _ := run(t, d, "list", "--config", dir, "--quiet")
	if code != exitcode.Success {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if out != "" {
		t.Errorf("expected no output with --quiet, got %q", out)
	}
}
