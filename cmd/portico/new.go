package main

import (
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/portico-dev/portico/internal/errors"
	"github.com/portico-dev/portico/internal/scaffold"
)

func newCmd() *cobra.Command {
	var (
		modulePath  string
		description string
	)

	cmd := &cobra.Command{
		Use:   "new <project_directory>",
		Short: "Create a new dashboard suite project",
		Long: `Create a starter project in the given directory: an application factory,
two example dashboards, and a shared assets directory.

Running the command again on an existing project changes nothing.

Examples:
  portico new my-dashboards
  portico new my-dashboards --module github.com/acme/my-dashboards`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(args[0], modulePath, description)
		},
	}

	cmd.Flags().StringVarP(&modulePath, "module", "m", "", "Go module path for the generated project")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Project description")

	return cmd
}

func runNew(outputDir, modulePath, description string) error {
	printBanner()
	info("Creating a new Portico project...")

	name := filepath.Base(filepath.Clean(outputDir))
	if !scaffold.ValidName(name) {
		return errors.New("E101").
			WithDetailf("%q is not a valid project name", name)
	}

	cfg := scaffold.Config{
		ProjectName: name,
		ModulePath:  modulePath,
		Description: description,
	}
	if err := scaffold.Create(outputDir, cfg, slog.Default()); err != nil {
		return err
	}

	success("Project ready in %s", outputDir)
	info("Next steps:")
	info("  cd %s", outputDir)
	info("  go mod tidy")
	info("  go run .")
	return nil
}
