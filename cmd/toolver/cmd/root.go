package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/toolver/internal/config"
	"github.com/oshokin/toolver/internal/report"
	"github.com/oshokin/toolver/internal/service/inspect"
	"github.com/oshokin/toolver/internal/version"
)

var (
	// configPath stores the path to the configuration YAML file.
	configPath string
	// logLevel overrides the log level from the configuration file.
	logLevel string
	// output selects the info output format.
	output string
	// parseAs selects which rendering the parse command prints.
	parseAs string

	// rootCmd represents the base command.
	rootCmd = &cobra.Command{
		Use:   "toolver",
		Short: "Inspect toolchain release versions and build metadata.",
		Long: `Inspect toolchain release versions and build metadata.

Release lines are rendered in three forms: the canonical "1.20.0", the
unstable tool string "0.120.0" and the stable tool string "120.0.0".
Commit information is read from git, either by running the git binary or
in-process, as selected in the configuration file.`,
		SilenceUsage: true,
	}

	// infoCmd reports build, commit and release information.
	infoCmd = &cobra.Command{
		Use:   "info",
		Short: "Show build version, channel, commit and release lines.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return inspect.Info(cmd.Context(), options(cmd))
		},
	}

	// releasesCmd lists the configured release lines.
	releasesCmd = &cobra.Command{
		Use:   "releases",
		Short: "List release lines with their tool strings.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return inspect.Releases(cmd.Context(), options(cmd))
		},
	}

	// parseCmd parses version text.
	parseCmd = &cobra.Command{
		Use:   "parse <version>",
		Short: "Parse major.minor.patch text and print its renderings.",
		Long: `Parse major.minor.patch text and print its renderings.

Only the first three dot-separated tokens are read, so "1.2.3.4" is 1.2.3.
The command fails when fewer than three numeric tokens are present.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return inspect.Parse(cmd.Context(), options(cmd), args[0], parseAs)
		},
	}
)

// options builds service options from the parsed flags.
func options(cmd *cobra.Command) *inspect.Options {
	return &inspect.Options{
		ConfigPath: configPath,
		LogLevel:   logLevel,
		Output:     output,
		Out:        cmd.OutOrStdout(),
	}
}

// Execute runs the toolver CLI and exits with non-zero status on error.
func Execute() {
	// Setup graceful shutdown handling.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// An empty path means the default file when present, built-in defaults otherwise.
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"path to configuration file (default \""+config.DefaultConfigFilename+"\" if present)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	infoCmd.Flags().StringVarP(&output, "output", "o", report.FormatText, "output format (text, yaml, json)")
	parseCmd.Flags().StringVar(&parseAs, "as", inspect.AsAll, "rendering to print (all, display, unstable, stable)")

	rootCmd.AddCommand(infoCmd, releasesCmd, parseCmd)
	version.AttachCobraVersionCommand(rootCmd)
}
