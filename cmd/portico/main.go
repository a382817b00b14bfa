package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/portico-dev/portico/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╔═╗┌─┐┬─┐┌┬┐┬┌─┐┌─┐
  ╠═╝│ │├┬┘ │ ││  │ │
  ╩  └─┘┴└─ ┴ ┴└─┘└─┘
`

var (
	flagVerbose bool
	flagQuiet   bool
	flagColor   bool
	flagNoColor bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "portico",
		Short: "A thin layer for combining dashboards into one application",
		Long: `Portico mounts multiple dashboard apps on a single server, each under
its own URL prefix, with a shared navigation menu and template.

Commands:
  new       Scaffold a starter project
  version   Print version information`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureOutput()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Silence warnings")
	rootCmd.PersistentFlags().BoolVar(&flagColor, "color", false, "Force color output")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable color output")
	rootCmd.Flags().BoolP("version", "V", false, "Show the version and exit")

	rootCmd.AddCommand(
		newCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		if pe, ok := err.(*errors.Error); ok {
			fmt.Fprintln(os.Stderr, pe.Format())
		} else {
			errorMsg("%s", err)
		}
		os.Exit(1)
	}
}

// configureOutput applies the global flags to logging and color handling.
func configureOutput() {
	level := slog.LevelInfo
	if flagVerbose {
		level = slog.LevelDebug
	}
	if flagQuiet {
		level = slog.LevelError
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if flagNoColor {
		errors.DisableColors()
	} else if flagColor {
		errors.EnableColors()
	}
}

// printBanner prints the Portico ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Printf("\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}

// errorMsg prints an error message.
func errorMsg(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "\033[31m✗\033[0m %s\n", fmt.Sprintf(format, args...))
}
