// Package tts drives an external speech-synthesis engine over prepared text
// chunks and assembles the per-chunk audio into one WAV payload.
package tts

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// Engine produces WAV bytes for a single prepared text chunk.
type Engine interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
	Name() string
}

// CLIEngine invokes an external synthesis executable per chunk: text on
// stdin, WAV on stdout. The default invocation matches piper-style tools
// (--output_file - writes the WAV to stdout).
type CLIEngine struct {
	// ExecutablePath is the engine binary; "piper" when empty.
	ExecutablePath string
	// Voice is passed as --model when set (a voice/model file path or ID).
	Voice string
	// ConfigPath is passed as --config when set.
	ConfigPath string
	// Quiet adds --quiet to suppress engine progress output.
	Quiet bool
	// ExtraArgs are pass-through key=value flags appended verbatim.
	ExtraArgs []string
	// Stderr receives the engine's diagnostic output when non-nil.
	Stderr io.Writer
}

func (e *CLIEngine) Name() string {
	if e.ExecutablePath == "" {
		return "piper"
	}
	return e.ExecutablePath
}

func (e *CLIEngine) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("empty chunk text")
	}

	args := []string{"--output_file", "-"}
	if e.Voice != "" {
		args = append(args, "--model", e.Voice)
	}
	if e.ConfigPath != "" {
		args = append(args, "--config", e.ConfigPath)
	}
	if e.Quiet {
		args = append(args, "--quiet")
	}

	extra, err := BuildPassthroughArgs(e.ExtraArgs)
	if err != nil {
		return nil, err
	}
	args = append(args, extra...)

	cmd := exec.CommandContext(ctx, e.Name(), args...)
	cmd.Stdin = strings.NewReader(text)
	if e.Stderr != nil {
		cmd.Stderr = e.Stderr
	}

	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return nil, mapEngineError(e.Name(), err)
	}
	return out.Bytes(), nil
}

// BuildPassthroughArgs turns key=value items into engine flags, preserving
// explicit dashes and adding "--" to bare keys.
func BuildPassthroughArgs(items []string) ([]string, error) {
	args := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		parts := strings.SplitN(item, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid engine arg %q: expected key=value", item)
		}
		key := strings.TrimSpace(parts[0])
		val := strings.TrimSpace(parts[1])
		if key == "" {
			return nil, fmt.Errorf("invalid engine arg %q: empty key", item)
		}
		if strings.HasPrefix(key, "-") {
			args = append(args, key+"="+val)
		} else {
			args = append(args, "--"+key+"="+val)
		}
	}
	return args, nil
}

func mapEngineError(name string, err error) error {
	if errors.Is(err, exec.ErrNotFound) {
		return fmt.Errorf(
			"synthesis engine %q not found in PATH; set --tts-cli-path or READALOUD_TTS_CLI_PATH: %w",
			name, err)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return fmt.Errorf("synthesis engine %q exited non-zero; check stderr details above: %w", name, err)
	}

	return err
}
