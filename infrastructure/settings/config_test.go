package settings

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent", ConfigFileName)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Metrics.Base != 1 || cfg.Metrics.Step != 10 {
		t.Fatalf("unexpected metrics: %+v", cfg.Metrics)
	}
	if cfg.Path() != path || cfg.Dir() != filepath.Dir(path) {
		t.Fatalf("unexpected path bookkeeping: %q %q", cfg.Path(), cfg.Dir())
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
language = "ko"

[metrics]
base = 5
step = 20

[commands]
separator = " & "

[decoding]
encodings = ["utf-8", "ibm437"]

[ui]
auto_commit = true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Language != "ko" || cfg.Metrics.Base != 5 || cfg.Metrics.Step != 20 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Commands.Separator != " & " || !cfg.UI.AutoCommit {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if len(cfg.Commands.Query) == 0 || cfg.Commands.Query[0] != "netsh" {
		t.Fatalf("untouched sections must keep defaults, got %v", cfg.Commands.Query)
	}
	if strings.Join(cfg.Decoding.Encodings, ",") != "utf-8,ibm437" {
		t.Fatalf("unexpected encodings %v", cfg.Decoding.Encodings)
	}
}

func TestLoad_ValidationErrors(t *testing.T) {
	path := writeConfig(t, `
language = "de"

[metrics]
base = 0
step = 10

[commands]
set_metric = "netsh interface ipv4 set interface {name}"

[decoding]
encodings = ["klingon"]

[api]
listen = "not-an-address"
`)
	_, err := Load(path)
	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %T: %v", err, err)
	}
	got := map[string]bool{}
	for _, v := range verrs {
		got[v.FieldPath] = true
	}
	for _, field := range []string{"language", "metrics.base", "commands.set_metric", "decoding.encodings[0]", "api.listen"} {
		if !got[field] {
			t.Errorf("expected validation error for %s, got %v", field, verrs)
		}
	}
	if !strings.Contains(err.Error(), "validation failed with") {
		t.Fatalf("unexpected error text: %q", err.Error())
	}
}

func TestLoad_SyntaxError(t *testing.T) {
	path := writeConfig(t, "language = \n[metrics")
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "failed to parse config file") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestDefaultPath_Env(t *testing.T) {
	want := filepath.Join(t.TempDir(), "custom.toml")
	t.Setenv(ConfigPathEnv, want)
	got, err := DefaultPath()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
