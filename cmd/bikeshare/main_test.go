package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/bikeshare/internal/config"
	"github.com/verte-zerg/bikeshare/internal/testutil"
)

func runRoot(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootRunsOneRound(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteCSV(t, dir, "new_york_city.csv", testutil.Sample())
	cfgPath := filepath.Join(t.TempDir(), "config.toml")

	out, err := runRoot(t, "nyc\n3\n1\nno\nno\n", "--config", cfgPath, "--data-dir", dir, "--no-clear")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, want := range []string{
		"Data successfully loaded for New York City.",
		"Displaying bikeshare data from New York City for every Monday in March.",
		"Most popular start station: Canal St",
		"The most common birth year is: 1985",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "does not contain") {
		t.Fatalf("did not expect a missing-column notice, got:\n%s", out)
	}
}

func TestRootEndOfInputIsCleanExit(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	if _, err := runRoot(t, "", "--config", cfgPath, "--data-dir", t.TempDir()); err != nil {
		t.Fatalf("expected clean exit on EOF, got %v", err)
	}
}

func TestConfigFileSetsDataDir(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteCSV(t, dir, "washington.csv", testutil.BareSample())
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	content := "[data]\ndir = " + `"` + filepath.ToSlash(dir) + `"` + "\n"
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	out, err := runRoot(t, "3\nall\nall\nno\nno\n", "--config", cfgPath, "--no-clear")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "Data from Washington does not contain gender data.") {
		t.Fatalf("expected washington stats, got:\n%s", out)
	}
}

func TestCitiesCommand(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteCSV(t, dir, "chicago.csv", testutil.Sample())
	cfgPath := filepath.Join(t.TempDir(), "config.toml")

	out, err := runRoot(t, "", "cities", "--config", cfgPath, "--data-dir", dir)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 cities, got:\n%s", out)
	}
	if !strings.Contains(lines[0], "Chicago") || !strings.Contains(lines[0], "ok") {
		t.Fatalf("expected chicago to be present: %q", lines[0])
	}
	if !strings.Contains(lines[2], "missing") {
		t.Fatalf("expected washington to be missing: %q", lines[2])
	}
}

func TestDefaultConfigTemplateParses(t *testing.T) {
	var cfg config.FileConfig
	if _, err := toml.Decode(defaultConfigTemplate(), &cfg); err != nil {
		t.Fatalf("decode template: %v", err)
	}
	if cfg.Data.Dir != nil || cfg.Display.ClearScreen != nil {
		t.Fatalf("expected every template value to be commented out, got %+v", cfg)
	}
}
