package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/go-readaloud/internal/text"
	"github.com/example/go-readaloud/internal/tts"
	"github.com/spf13/cobra"
)

// defaultExampleText is synthesized when no input file is given or the file
// cannot be read.
const defaultExampleText = "This is a longer English text to demonstrate the text-to-speech capabilities. " +
	"The system can handle multiple sentences and will generate natural-sounding speech. " +
	"You can use this script to convert any text file to speech, or run it without arguments to hear this example. " +
	"The text processing function will automatically split long texts into optimal chunks for better speech synthesis."

// defaultOutputName is the output file used with the example text.
const defaultOutputName = "example_output.wav"

func newSynthCmd() *cobra.Command {
	var flagText string
	var out string
	var voice string
	var ttsArgs []string

	cmd := &cobra.Command{
		Use:   "synth [file]",
		Short: "Synthesize a text file (or --text) to WAV",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			filePath := ""
			if len(args) > 0 {
				filePath = args[0]
			}

			input := resolveSynthInput(flagText, filePath)

			selectedVoice := cfg.TTS.Voice
			if voice != "" {
				selectedVoice = voice
			}

			engine := &tts.CLIEngine{
				ExecutablePath: cfg.TTS.CLIPath,
				ConfigPath:     cfg.TTS.CLIConfigPath,
				Voice:          selectedVoice,
				Quiet:          cfg.TTS.Quiet,
				ExtraArgs:      ttsArgs,
				Stderr:         os.Stderr,
			}

			svc, err := tts.NewService(engine, text.Options{
				MinChars: cfg.Chunking.MinChars,
				MaxChars: cfg.Chunking.MaxChars,
			})
			if err != nil {
				return err
			}

			wavData, err := svc.Synthesize(cmd.Context(), input.text)
			if err != nil {
				return err
			}

			outPath := resolveOutputPath(out, input)
			if err := writeSynthOutput(outPath, wavData, os.Stdout); err != nil {
				return err
			}

			slog.Info("audio written", slog.String("path", outPath), slog.Int("bytes", len(wavData)))
			return nil
		},
	}

	cmd.Flags().StringVar(&flagText, "text", "", "Text to synthesize (overrides the file argument)")
	cmd.Flags().StringVar(&out, "out", "", "Output WAV path ('-' for stdout; default derived from the input filename)")
	cmd.Flags().StringVar(&voice, "voice", "", "Voice or model file for the engine (overrides config)")
	cmd.Flags().StringArrayVar(&ttsArgs, "tts-arg", nil, "Pass-through engine flag in key=value form (repeatable)")

	return cmd
}

// synthInput carries the resolved text plus where it came from, which
// decides the default output filename.
type synthInput struct {
	text     string
	filePath string // empty when the example text is used
}

// resolveSynthInput picks the text source: explicit --text, then the file
// argument, then the built-in example. A file that cannot be read logs the
// error and falls back to the example rather than failing.
func resolveSynthInput(flagText, filePath string) synthInput {
	if strings.TrimSpace(flagText) != "" {
		return synthInput{text: flagText, filePath: filePath}
	}

	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			slog.Warn("reading input file failed, using example text",
				slog.String("path", filePath),
				slog.String("error", err.Error()),
			)
			return synthInput{text: defaultExampleText}
		}
		return synthInput{text: string(data), filePath: filePath}
	}

	slog.Info("no file provided, using example text")
	return synthInput{text: defaultExampleText}
}

// resolveOutputPath derives the output WAV path: explicit --out wins, then
// <input basename>.wav, then the example default.
func resolveOutputPath(out string, input synthInput) string {
	if out != "" {
		return out
	}
	if input.filePath != "" {
		return strings.TrimSuffix(input.filePath, filepath.Ext(input.filePath)) + ".wav"
	}
	return defaultOutputName
}

func writeSynthOutput(outPath string, wavData []byte, stdout io.Writer) error {
	if outPath == "-" {
		if stdout == nil {
			return fmt.Errorf("stdout writer is nil")
		}
		_, err := stdout.Write(wavData)
		return err
	}
	return os.WriteFile(outPath, wavData, 0o644)
}
