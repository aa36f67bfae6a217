package presentation

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"netprio/domain/adapter"
	"netprio/infrastructure/settings"
	"netprio/presentation/ui/cli"
)

type scriptedCommander struct {
	output  []byte
	scripts []string
}

func (c *scriptedCommander) Output(context.Context, string, ...string) ([]byte, error) {
	return c.output, nil
}

func (c *scriptedCommander) Shell(_ context.Context, script string) ([]byte, error) {
	c.scripts = append(c.scripts, script)
	return nil, nil
}

type discardLogger struct{}

func (discardLogger) Printf(string, ...any) {}

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Printf(format string, v ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, v...))
}

const interfaceTable = "Idx     Met         MTU          State                Name\r\n" +
	"---  ----------  ----------  ------------  ---------------------------\r\n" +
	"  1          75  4294967295  connected     Loopback Pseudo-Interface 1\r\n" +
	" 14          50        1500  connected     Wi-Fi\r\n" +
	" 12          25        1500  connected     Ethernet 0\r\n"

func TestNewAppDependencies_Defaults(t *testing.T) {
	commander := &scriptedCommander{output: []byte(interfaceTable)}
	deps, err := NewAppDependencies(settings.Default(), commander, discardLogger{})
	if err != nil {
		t.Fatalf("NewAppDependencies: %v", err)
	}

	records, status := deps.Session().ListAdapters(context.Background())
	if len(records) != 2 || records[0].Name != "Ethernet 0" {
		t.Fatalf("unexpected records %+v", records)
	}
	if status != "Found 2 connected adapters." {
		t.Fatalf("unexpected status %q", status)
	}

	ok, _ := deps.Session().CommitOrder(context.Background(), []adapter.Record{records[1], records[0]})
	if !ok {
		t.Fatal("commit failed")
	}
	want := `netsh interface ipv4 set interface "Wi-Fi" metric=1 && netsh interface ipv4 set interface "Ethernet 0" metric=11`
	if len(commander.scripts) != 1 || commander.scripts[0] != want {
		t.Fatalf("unexpected scripts %q", commander.scripts)
	}
}

func TestNewAppDependencies_RejectsUnknownEncoding(t *testing.T) {
	cfg := settings.Default()
	cfg.Decoding.Encodings = []string{"no-such-encoding"}
	if _, err := NewAppDependencies(cfg, &scriptedCommander{}, discardLogger{}); err == nil {
		t.Fatal("expected error for unknown encoding")
	}
}

func TestRunCommand_DryRunApply(t *testing.T) {
	commander := &scriptedCommander{output: []byte(interfaceTable)}
	deps, err := NewAppDependencies(settings.Default(), commander, discardLogger{})
	if err != nil {
		t.Fatalf("NewAppDependencies: %v", err)
	}

	var out bytes.Buffer
	if err := RunCommand(context.Background(), deps, "apply", []string{"--dry-run", "Wi-Fi"}, &out); err != nil {
		t.Fatalf("RunCommand: %v", err)
	}
	if len(commander.scripts) != 0 {
		t.Fatal("dry run must not execute")
	}
	if !strings.Contains(out.String(), `set interface "Wi-Fi" metric=1 && `) {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}

func TestRunCommand_Unknown(t *testing.T) {
	deps, err := NewAppDependencies(settings.Default(), &scriptedCommander{}, discardLogger{})
	if err != nil {
		t.Fatalf("NewAppDependencies: %v", err)
	}
	if err := RunCommand(context.Background(), deps, "nope", nil, &bytes.Buffer{}); !errors.Is(err, cli.ErrUsage) {
		t.Fatalf("expected ErrUsage, got %v", err)
	}
}

func TestNewAppDependencies_LogsSettingsSource(t *testing.T) {
	cfg := settings.Default()
	cfg.Language = "ko"
	logger := &recordingLogger{}
	if _, err := NewAppDependencies(cfg, &scriptedCommander{}, logger); err != nil {
		t.Fatalf("NewAppDependencies: %v", err)
	}
	if len(logger.lines) == 0 || !strings.Contains(logger.lines[0], "language: ko") {
		t.Fatalf("expected a startup line naming the language, got %q", logger.lines)
	}
}
