package runner_test

import (
	"bytes"
	"context"
	"runtime"
	"strings"
	"testing"

	"github.com/gadalang/gada-runtime/runner"
)

func TestRun(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs echo")
	}
	var out bytes.Buffer
	p, err := runner.Run(context.Background(), "hello", []string{"world"},
		runner.WithBin("echo"),
		runner.WithStdout(&out))
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Wait(); err != nil {
		t.Fatal(err)
	}
	if p.ExitCode() != 0 {
		t.Errorf("exit code %d, want 0", p.ExitCode())
	}
	if got := strings.TrimSpace(out.String()); got != "hello world" {
		t.Errorf("stdout %q, want %q", got, "hello world")
	}
}

func TestRunMissingBin(t *testing.T) {
	_, err := runner.Run(context.Background(), "hello", nil,
		runner.WithBin("definitely-not-a-binary-9f2c"))
	if err == nil {
		t.Fatal("Run with missing binary succeeded, want error")
	}
}

func TestRunIntercom(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs echo")
	}
	var out bytes.Buffer
	p, err := runner.Run(context.Background(), "hello", nil,
		runner.WithBin("echo"),
		runner.WithStdout(&out),
		runner.WithNewIntercom())
	if err != nil {
		t.Fatal(err)
	}
	ic := p.Intercom()
	if ic == nil {
		t.Fatal("no intercom attached")
	}
	if err := p.Wait(); err != nil {
		t.Fatal(err)
	}
	// The child was told where to dial back.
	want := "--intercom-port"
	if !strings.Contains(out.String(), want) {
		t.Errorf("stdout %q does not mention %s", out.String(), want)
	}
}

func TestExitCodeBeforeExit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs sleep")
	}
	p, err := runner.Run(context.Background(), "0.2", nil, runner.WithBin("sleep"))
	if err != nil {
		t.Fatal(err)
	}
	if code := p.ExitCode(); code != -1 {
		t.Errorf("exit code %d while running, want -1", code)
	}
	if err := p.Wait(); err != nil {
		t.Fatal(err)
	}
}
