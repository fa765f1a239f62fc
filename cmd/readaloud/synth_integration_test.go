package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/example/go-readaloud/internal/testutil"
)

// TestSynthCommand_EndToEnd drives the synth command against a real engine
// binary. It is skipped when no engine is installed.
func TestSynthCommand_EndToEnd(t *testing.T) {
	testutil.RequireEngine(t)

	dir := t.TempDir()
	inPath := filepath.Join(dir, "story.txt")
	content := "Integration testing is fun. It exercises the whole pipeline end to end."
	if err := os.WriteFile(inPath, []byte(content), 0o600); err != nil {
		t.Fatalf("write input: %v", err)
	}

	root := NewRootCmd()
	root.SetArgs([]string{"synth", inPath})
	if err := root.Execute(); err != nil {
		t.Fatalf("synth command failed: %v", err)
	}

	outPath := filepath.Join(dir, "story.wav")
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output WAV: %v", err)
	}

	testutil.AssertValidWAV(t, data)
}
