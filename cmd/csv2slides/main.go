// Package main provides the CLI entry point for csv2slides.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/ukaji3/csv2slides-go/pkg/csv2slides"
	"github.com/ukaji3/csv2slides-go/pkg/csv2slides/framework"
)

var cfgFile string

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "csv2slides BUILD_DIR",
		Short: "Converts your CSV data to visually pleasing HTML slides",
		Long: `csv2slides turns survey-style CSV data into a reveal.js slideshow.

Numeric and declared chart fields become pie charts, free-text fields become
numbered answer lists. The build directory receives the generated page, one
SVG chart per chart field, a copy of the raw data and the reveal.js framework.`,
		Args:         cobra.ExactArgs(1),
		RunE:         run,
		SilenceUsage: true,
	}

	flags := rootCmd.Flags()
	flags.String("csv_input", csv2slides.DefaultCSVInput, "Path of the input CSV data (.csv or .xlsx)")
	flags.String("csv_raw", csv2slides.DefaultCSVPublic, "Name of the file used to deploy the raw CSV data")
	flags.String("semantics", csv2slides.DefaultSemantics, "Semantic definitions for the CSV data (.xml or .yaml)")
	flags.String("slides", csv2slides.DefaultSlides, "Definition of the slides (.xml or .yaml); unknown elements are rejected")
	flags.String("template", "", "Page template (default: built-in reveal.js page)")
	flags.Bool("skip-framework", false, "Do not fetch the reveal.js framework into the build directory")
	flags.String("framework-repo", framework.DefaultRepository, "Git repository of the presentation framework")
	flags.String("framework-rev", framework.DefaultRevision, "Revision of the presentation framework")
	flags.String("log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: ./csv2slides.yaml)")

	rootCmd.AddCommand(newIndexCmd())
	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}

	opts := csv2slides.Options{
		CSVInput:      cfg.CSVInput,
		CSVPublic:     cfg.CSVRaw,
		Semantics:     cfg.Semantics,
		Slides:        cfg.Slides,
		Template:      cfg.Template,
		SkipFramework: cfg.SkipFramework,
		Framework: framework.Config{
			Repository: cfg.FrameworkRepo,
			Revision:   cfg.FrameworkRev,
		},
		Logger: logger,
	}

	if err := csv2slides.Build(cmd.Context(), args[0], opts); err != nil {
		return fmt.Errorf("build failed: %w", err)
	}
	return nil
}

func newIndexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "index [DIR]",
		Short: "Write an index page linking every build directory in DIR",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return csv2slides.BuildIndex(dir)
		},
	}
}
