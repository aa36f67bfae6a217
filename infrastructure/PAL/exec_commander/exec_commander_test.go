//go:build !windows

package exec_commander

import (
	"context"
	"strings"
	"testing"
)

func TestNewExecCommander(t *testing.T) {
	c := NewExecCommander()
	if c == nil {
		t.Fatal("expected non-nil commander")
	}
	if _, ok := c.(*ExecCommander); !ok {
		t.Fatalf("expected *ExecCommander, got %T", c)
	}
}

func TestExecCommander_Output(t *testing.T) {
	c := &ExecCommander{}
	out, err := c.Output(context.Background(), "/bin/sh", "-c", "printf 'hello'")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "hello" {
		t.Fatalf("unexpected output: %q", string(out))
	}
}

func TestExecCommander_ShellRunsCompoundScript(t *testing.T) {
	c := &ExecCommander{}
	out, err := c.Shell(context.Background(), `printf "a b" && printf ' c'`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "a b c" {
		t.Fatalf("unexpected output: %q", string(out))
	}
}

func TestExecCommander_ShellStopsOnFailure(t *testing.T) {
	c := &ExecCommander{}
	out, err := c.Shell(context.Background(), "printf first && exit 3 && printf never")
	if err == nil {
		t.Fatal("expected error from failing script")
	}
	if strings.Contains(string(out), "never") {
		t.Fatalf("commands after the failing one must not run, got %q", string(out))
	}
}
