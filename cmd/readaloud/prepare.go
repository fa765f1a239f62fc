package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/example/go-readaloud/internal/text"
	"github.com/spf13/cobra"
)

// newPrepareCmd previews the chunking pipeline without invoking the engine:
// it prints the newline-delimited chunks that synth would send.
func newPrepareCmd() *cobra.Command {
	var flagText string

	cmd := &cobra.Command{
		Use:   "prepare [file]",
		Short: "Normalize and chunk text without synthesizing",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			input, err := readPrepareInput(flagText, args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			prepared, err := text.Prepare(input, text.Options{
				MinChars: cfg.Chunking.MinChars,
				MaxChars: cfg.Chunking.MaxChars,
			})
			if err != nil {
				return err
			}
			if prepared == "" {
				return fmt.Errorf("no content after normalization")
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), prepared)
			return err
		},
	}

	cmd.Flags().StringVar(&flagText, "text", "", "Text to prepare (overrides the file argument)")

	return cmd
}

// readPrepareInput resolves the text source: --text, then the file argument,
// then stdin. Unlike synth there is no example-text fallback; a dry run on
// unreadable input should fail loudly.
func readPrepareInput(flagText string, args []string, stdin io.Reader) (string, error) {
	if strings.TrimSpace(flagText) != "" {
		return flagText, nil
	}

	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("read input file: %w", err)
		}
		return string(data), nil
	}

	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	if strings.TrimSpace(string(b)) == "" {
		return "", fmt.Errorf("provide a file argument, --text, or pipe text on stdin")
	}
	return string(b), nil
}
