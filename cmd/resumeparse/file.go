package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"staffing-backend/internal/extract"
	"staffing-backend/internal/shared/telemetry"
	"staffing-backend/resume/parse"
)

func newFileCmd() *cobra.Command {
	var opts outputOptions
	cmd := &cobra.Command{
		Use:   "file <path>",
		Short: "Parse a PDF, DOCX or plain-text resume file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}

			// An empty type lets the extractor resolve it from magic bytes, then the extension.
			text, err := extract.New().ExtractText(cmd.Context(), data, "", filepath.Base(path))
			if err != nil {
				return fmt.Errorf("failed to extract text from %s: %w", path, err)
			}
			telemetry.Debug("resumeparse.extracted", map[string]any{"path": path, "text_len": len(text)})

			return writeResult(cmd.OutOrStdout(), text, parse.Extract(text), opts)
		},
	}
	opts.bind(cmd)
	return cmd
}
