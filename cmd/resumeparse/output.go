package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"staffing-backend/resume/parse"
)

type outputOptions struct {
	lines   bool
	compact bool
}

func (o *outputOptions) bind(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.lines, "lines", false, "Print the cleaned input lines instead of the parsed record")
	cmd.Flags().BoolVar(&o.compact, "compact", false, "Print JSON on a single line")
}

func writeResult(w io.Writer, text string, parsed parse.ParsedResume, opts outputOptions) error {
	if opts.lines {
		for i, line := range parse.Lines(text) {
			if _, err := fmt.Fprintf(w, "%3d  %s\n", i, line); err != nil {
				return err
			}
		}
		return nil
	}

	enc := json.NewEncoder(w)
	if !opts.compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(parsed.Normalize())
}
