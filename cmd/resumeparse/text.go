package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"staffing-backend/resume/parse"
)

func newTextCmd() *cobra.Command {
	var opts outputOptions
	cmd := &cobra.Command{
		Use:   "text [path|-]",
		Short: "Parse resume text from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				raw []byte
				err error
			)
			if len(args) == 0 || args[0] == "-" {
				raw, err = io.ReadAll(cmd.InOrStdin())
			} else {
				raw, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			text := string(raw)
			return writeResult(cmd.OutOrStdout(), text, parse.Extract(text), opts)
		},
	}
	opts.bind(cmd)
	return cmd
}
