package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"MyLocalPaint/internal/config"
)

func run(t *testing.T, args ...string) (stdout, logs string, ran *config.Config, err error) {
	t.Helper()
	var out, logBuf bytes.Buffer
	o := &options{
		logOut: &logBuf,
		runUI: func(_ context.Context, cfg config.Config, _ *log.Logger) {
			ran = &cfg
		},
	}
	cmd := newRootCmd(o)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err = cmd.ExecuteContext(context.Background())
	return out.String(), logBuf.String(), ran, err
}

func TestRootRunsUIWithDefaults(t *testing.T) {
	_, _, ran, err := run(t)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if ran == nil {
		t.Fatal("UI was not started")
	}
	if ran.Canvas.Width != 600 || ran.Canvas.Height != 400 {
		t.Errorf("canvas = %dx%d, want 600x400", ran.Canvas.Width, ran.Canvas.Height)
	}
}

func TestRootLoadsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paint.toml")
	if err := os.WriteFile(path, []byte("[canvas]\nwidth = 1024\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, _, ran, err := run(t, "--config", path)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if ran == nil || ran.Canvas.Width != 1024 {
		t.Errorf("config not applied: %+v", ran)
	}
}

func TestRootBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paint.toml")
	if err := os.WriteFile(path, []byte("[brush]\ncolor = \"nope\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, _, ran, err := run(t, "-c", path)
	if err == nil {
		t.Fatal("expected an error for an invalid color")
	}
	if ran != nil {
		t.Error("UI should not start with a bad config")
	}
}

func TestSelfTestCommand(t *testing.T) {
	_, logs, ran, err := run(t, "selftest")
	if err != nil {
		t.Fatalf("selftest: %v", err)
	}
	if ran != nil {
		t.Error("selftest should not open the UI")
	}
	if !strings.Contains(logs, "0 failed") {
		t.Errorf("summary missing from logs:\n%s", logs)
	}
}

func TestConfigCommand(t *testing.T) {
	out, _, _, err := run(t, "config")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	for _, want := range []string{"[canvas]", "width = 600", "[brush]", "[export]", `name = "painting"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestVerboseLogsDebug(t *testing.T) {
	_, logs, _, err := run(t, "-v", "config")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if !strings.Contains(logs, "config loaded") {
		t.Errorf("expected debug output with -v, got:\n%s", logs)
	}

	_, logs, _, _ = run(t, "config")
	if strings.Contains(logs, "config loaded") {
		t.Errorf("debug output without -v:\n%s", logs)
	}
}

func TestRootPassesCommandContextToUI(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var got context.Context
	o := &options{
		logOut: &bytes.Buffer{},
		runUI: func(ctx context.Context, _ config.Config, _ *log.Logger) {
			got = ctx
		},
	}
	cmd := newRootCmd(o)
	cmd.SetArgs(nil)
	if err := cmd.ExecuteContext(ctx); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got == nil {
		t.Fatal("UI was not started")
	}
	if err := got.Err(); err != nil {
		t.Fatalf("context already done when the UI started: %v", err)
	}

	cancel()
	select {
	case <-got.Done():
	case <-time.After(time.Second):
		t.Fatal("UI context not cancelled with its parent")
	}
}
