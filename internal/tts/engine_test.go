package tts

import (
	"context"
	"strings"
	"testing"
)

func TestCLIEngine_Name(t *testing.T) {
	if got := (&CLIEngine{}).Name(); got != "piper" {
		t.Errorf("default engine name = %q, want piper", got)
	}
	if got := (&CLIEngine{ExecutablePath: "/opt/tts/bin/mimic"}).Name(); got != "/opt/tts/bin/mimic" {
		t.Errorf("engine name = %q, want configured path", got)
	}
}

func TestCLIEngine_RejectsEmptyChunk(t *testing.T) {
	eng := &CLIEngine{}
	if _, err := eng.Synthesize(context.Background(), "   "); err == nil {
		t.Fatal("expected error for whitespace-only chunk")
	}
}

func TestCLIEngine_MissingBinaryError(t *testing.T) {
	eng := &CLIEngine{ExecutablePath: "definitely-not-a-real-tts-binary"}
	_, err := eng.Synthesize(context.Background(), "Hello world.")
	if err == nil {
		t.Fatal("expected error for missing binary")
	}
	if !strings.Contains(err.Error(), "not found in PATH") {
		t.Errorf("expected actionable not-found message, got: %v", err)
	}
}

func TestBuildPassthroughArgs(t *testing.T) {
	got, err := BuildPassthroughArgs([]string{
		"length_scale=1.2",
		"--sentence-silence=0.4",
		"-s=3",
		"  ",
	})
	if err != nil {
		t.Fatalf("BuildPassthroughArgs returned error: %v", err)
	}

	want := []string{
		"--length_scale=1.2",
		"--sentence-silence=0.4",
		"-s=3",
	}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("unexpected passthrough args: got %v want %v", got, want)
	}
}

func TestBuildPassthroughArgs_Invalid(t *testing.T) {
	if _, err := BuildPassthroughArgs([]string{"novalue"}); err == nil {
		t.Error("expected error for missing =")
	}
	if _, err := BuildPassthroughArgs([]string{"=1.2"}); err == nil {
		t.Error("expected error for empty key")
	}
}
