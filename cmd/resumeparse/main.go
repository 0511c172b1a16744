// Package main provides a command-line front end to the resume field extractor.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"staffing-backend/internal/shared/telemetry"
)

func newRootCmd() *cobra.Command {
	var (
		logLevel  string
		logFormat string
	)
	root := &cobra.Command{
		Use:           "resumeparse",
		Short:         "Extract structured fields from a resume",
		Long:          "resumeparse reads a PDF, DOCX or plain-text resume and prints the parsed candidate fields as JSON.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			telemetry.Init(logLevel, logFormat)
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", envOr("LOG_LEVEL", "warn"), "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&logFormat, "log-format", envOr("LOG_FORMAT", "pretty"), "Log format (json or pretty)")

	root.AddCommand(newFileCmd(), newTextCmd())
	return root
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
