// Package scaffold generates the starter project written by "portico new".
//
// The skeleton is a small two-dashboard suite: an application factory in
// app/server.go, one view package per dashboard, and a main.go that runs the
// manager in debug mode.
package scaffold

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"text/template"

	"github.com/portico-dev/portico/internal/errors"
)

// Config contains scaffold configuration.
type Config struct {
	// ProjectName is the name of the project.
	ProjectName string

	// ModulePath is the Go module path of the generated project.
	ModulePath string

	// Description is a short project description.
	Description string
}

var projectNameRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)

// ValidName reports whether name can be used as a project directory name.
func ValidName(name string) bool {
	return projectNameRe.MatchString(name)
}

// Create generates the starter project in outputDir. If the project's app
// directory already exists, nothing is written and no error is returned.
func Create(outputDir string, cfg Config, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ProjectName == "" {
		cfg.ProjectName = filepath.Base(outputDir)
	}
	if cfg.ModulePath == "" {
		cfg.ModulePath = cfg.ProjectName
	}

	appDir := filepath.Join(outputDir, "app")
	if _, err := os.Stat(appDir); err == nil {
		logger.Info("Project already exists.")
		return nil
	}

	if _, err := os.Stat(outputDir); os.IsNotExist(err) {
		logger.Info("Creating project directory", "dir", outputDir)
	}

	dirs := []string{
		filepath.Join(outputDir, "assets"),
		appDir,
		filepath.Join(appDir, "views"),
		filepath.Join(appDir, "views", "firstboard"),
		filepath.Join(appDir, "views", "secondboard"),
	}
	for _, dir := range dirs {
		logger.Info("Writing", "path", dir)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.New("E111").WithDetailf("cannot create %s", dir).Wrap(err)
		}
	}

	for relPath, content := range skeleton {
		tmpl, err := template.New(relPath).Parse(content)
		if err != nil {
			return errors.New("E110").WithDetailf("invalid template %s", relPath).Wrap(err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, cfg); err != nil {
			return errors.New("E110").WithDetailf("cannot render %s", relPath).Wrap(err)
		}

		fullPath := filepath.Join(outputDir, filepath.FromSlash(relPath))
		logger.Info("Writing", "path", fullPath)
		if err := os.WriteFile(fullPath, buf.Bytes(), 0644); err != nil {
			return errors.New("E112").WithDetailf("cannot write %s", fullPath).Wrap(err)
		}
	}

	return nil
}
