package commands

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunDetect_SupportedExport(t *testing.T) {
	resetExitCode(t)
	exportPath := writeExport(t, sampleExport)

	cmd := NewDetectCommand()
	cmd.SetArgs([]string{exportPath})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", ExitCode)
	}
}

func TestRunDetect_UnsupportedExport(t *testing.T) {
	resetExitCode(t)
	exportPath := writeExport(t, "1/1/24, 22:00 - Alice: Hello\n1/1/24, 22:01 - Bob: Hi\n")

	cmd := NewDetectCommand()
	cmd.SetArgs([]string{exportPath})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if ExitCode != 1 {
		t.Errorf("ExitCode = %d, want 1", ExitCode)
	}
}

func TestRunDetect_MissingFile(t *testing.T) {
	resetExitCode(t)

	cmd := NewDetectCommand()
	cmd.SetArgs([]string{"/nonexistent/chat.txt"})

	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestRunDetect_WriteConfig(t *testing.T) {
	resetExitCode(t)
	exportPath := writeExport(t, sampleExport)
	configPath := filepath.Join(t.TempDir(), "starter.yaml")

	cmd := NewDetectCommand()
	cmd.SetArgs([]string{exportPath, "--write-config", configPath})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Detect failed: %v", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("Starter config not written: %v", err)
	}
	if !strings.Contains(string(data), "timestamp_pattern") {
		t.Errorf("Starter config missing timestamp_pattern:\n%s", data)
	}

	// Refuses to overwrite
	cmd = NewDetectCommand()
	cmd.SetArgs([]string{exportPath, "--write-config", configPath})
	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Error("Expected error when starter config already exists")
	}
}

func TestRunDetect_WriteConfigUnsupportedFormat(t *testing.T) {
	resetExitCode(t)
	exportPath := writeExport(t, "1/1/24, 22:00 - Alice: Hello\n")
	configPath := filepath.Join(t.TempDir(), "starter.yaml")

	cmd := NewDetectCommand()
	cmd.SetArgs([]string{exportPath, "--write-config", configPath})

	// No config can make an unsupported export parseable.
	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Error("Expected error writing config for unsupported format")
	}
}

func TestRunDetect_JSONOutput(t *testing.T) {
	resetExitCode(t)
	exportPath := writeExport(t, sampleExport)

	cmd := NewDetectCommand()
	cmd.SetArgs([]string{exportPath, "--output", "json"})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
}
