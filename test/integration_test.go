// ABOUTME: Integration tests for practice CLI.
// ABOUTME: Builds the binary and runs the setup, record, and export workflow.
package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestFullWorkflow(t *testing.T) {
	// Build the binary
	projectRoot, _ := filepath.Abs("..")
	practiceBinary := filepath.Join(projectRoot, "practice")

	buildCmd := exec.Command("go", "build", "-o", practiceBinary, "./cmd/practice")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}
	defer os.Remove(practiceBinary)

	// Use temp data and config directories
	tmpDir := t.TempDir()
	env := append(os.Environ(),
		"XDG_CONFIG_HOME="+filepath.Join(tmpDir, "config"),
		"PRACTICE_DATA_DIR="+filepath.Join(tmpDir, "data"),
		"PRACTICE_BACKEND=sqlite",
	)

	run := func(args ...string) (string, error) {
		cmd := exec.Command(practiceBinary, args...)
		cmd.Env = env
		cmd.Dir = tmpDir
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	// Commands need a program first
	output, err := run("today")
	if err == nil {
		t.Fatalf("Expected 'today' to fail before setup, got: %s", output)
	}
	if !strings.Contains(output, "practice setup") {
		t.Errorf("Expected setup hint in output, got: %s", output)
	}

	// Test setup
	output, err = run("setup", "--length", "21")
	if err != nil {
		t.Fatalf("Failed to set up: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Program created") {
		t.Errorf("Expected 'Program created' in output, got: %s", output)
	}

	// Test today
	output, err = run("today")
	if err != nil {
		t.Fatalf("Failed to show today: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Day 1 of 21") {
		t.Errorf("Expected 'Day 1 of 21' in output, got: %s", output)
	}

	// Test recording
	output, err = run("record", "--cig-urge", "6", "--mood", "7", "--notes", "first day")
	if err != nil {
		t.Fatalf("Failed to record: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Recorded") {
		t.Errorf("Expected 'Recorded' in output, got: %s", output)
	}

	// Test summary
	output, err = run("summary")
	if err != nil {
		t.Fatalf("Failed to summarize: %v\n%s", err, output)
	}
	if !strings.Contains(output, "100%") {
		t.Errorf("Expected full adherence in summary, got: %s", output)
	}

	// Test CSV export to the default file name
	output, err = run("export", "csv")
	if err != nil {
		t.Fatalf("Failed to export: %v\n%s", err, output)
	}
	data, err := os.ReadFile(filepath.Join(tmpDir, "spiritual-practice-data.csv"))
	if err != nil {
		t.Fatalf("Expected CSV export file: %v", err)
	}
	if !strings.Contains(string(data), `"first day"`) {
		t.Errorf("Expected quoted notes in CSV, got: %s", data)
	}

	// Test log
	output, err = run("log")
	if err != nil {
		t.Fatalf("Failed to list log: %v\n%s", err, output)
	}
	if !strings.Contains(output, "first day") {
		t.Errorf("Expected notes in log output, got: %s", output)
	}
}
