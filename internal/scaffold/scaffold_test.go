package scaffold

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCreateLaysOutProject(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "my-dashboards")

	err := Create(dir, Config{ProjectName: "my-dashboards"}, discardLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, rel := range []string{
		"main.go",
		"go.mod",
		"app/config.go",
		"app/server.go",
		"app/views/firstboard/board.go",
		"app/views/secondboard/board.go",
	} {
		if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(rel))); err != nil {
			t.Errorf("missing %s: %v", rel, err)
		}
	}

	info, err := os.Stat(filepath.Join(dir, "assets"))
	if err != nil || !info.IsDir() {
		t.Errorf("assets directory missing")
	}
}

func TestCreateRendersConfig(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "suite")

	err := Create(dir, Config{ProjectName: "suite", ModulePath: "example.com/suite"}, discardLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	gomod, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(gomod), "module example.com/suite") {
		t.Errorf("go.mod should use the module path:\n%s", gomod)
	}

	server, _ := os.ReadFile(filepath.Join(dir, "app", "server.go"))
	if !strings.Contains(string(server), `"example.com/suite/app/views/firstboard"`) {
		t.Errorf("server.go should import view packages via the module path:\n%s", server)
	}

	cfg, _ := os.ReadFile(filepath.Join(dir, "app", "config.go"))
	if !strings.Contains(string(cfg), `Name:      "suite"`) {
		t.Errorf("config.go should carry the project name:\n%s", cfg)
	}
}

func TestCreateIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "suite")
	if err := Create(dir, Config{ProjectName: "suite"}, discardLogger()); err != nil {
		t.Fatalf("first create: %v", err)
	}

	marker := filepath.Join(dir, "main.go")
	if err := os.WriteFile(marker, []byte("edited"), 0644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	if err := Create(dir, Config{ProjectName: "suite"}, logger); err != nil {
		t.Fatalf("second create: %v", err)
	}

	data, _ := os.ReadFile(marker)
	if string(data) != "edited" {
		t.Errorf("existing project files must not be overwritten")
	}
	if !strings.Contains(buf.String(), "Project already exists.") {
		t.Errorf("second run should log that the project exists, got %q", buf.String())
	}
}

func TestCreateDefaultsFromDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "boards")
	if err := Create(dir, Config{}, discardLogger()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	gomod, _ := os.ReadFile(filepath.Join(dir, "go.mod"))
	if !strings.Contains(string(gomod), "module boards") {
		t.Errorf("module path should default to the directory name:\n%s", gomod)
	}
}

func TestValidName(t *testing.T) {
	valid := []string{"app", "my-dashboards", "suite_2", "A1"}
	invalid := []string{"", "1app", "-x", "my app", "a/b", "."}

	for _, name := range valid {
		if !ValidName(name) {
			t.Errorf("ValidName(%q) = false, want true", name)
		}
	}
	for _, name := range invalid {
		if ValidName(name) {
			t.Errorf("ValidName(%q) = true, want false", name)
		}
	}
}
