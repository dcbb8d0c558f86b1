package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// resetFlags restores every package-level flag to its default value.
func resetFlags() {
	verbose, quiet, jsonOut, noColor = false, false, false, true
	configPath, imagePath = "", ""
	initForce = false
	readOffset, readLength, readOut = 0, 256, ""
	writeOffset, writeFile, writeHex = 0, "", ""
	eraseOffset, eraseLength, eraseAll = 0, 0, false
	vectorHeaderSize, vectorHeaderSet = 0, false
}

// testImage creates an erased default-layout image and points --image at it.
func testImage(t *testing.T) string {
	t.Helper()
	resetFlags()
	t.Cleanup(resetFlags)

	imagePath = filepath.Join(t.TempDir(), "mram.bin")
	if _, err := captureOutput(t, runInit); err != nil {
		t.Fatalf("init: %v", err)
	}
	return imagePath
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	// Save original stdout
	origStdout := os.Stdout

	// Create a pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	// Redirect stdout to pipe
	os.Stdout = w

	// Run function
	fnErr := fn()

	// Close write end and restore stdout
	w.Close()
	os.Stdout = origStdout

	// Read captured output
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	return buf.String(), fnErr
}

// assertJSON checks that output is valid JSON and decodes it into v
func assertJSON(t *testing.T, output string, v interface{}) {
	t.Helper()
	if err := json.Unmarshal([]byte(output), v); err != nil {
		t.Errorf("output is not valid JSON: %v\nOutput: %s", err, output)
	}
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, exp := range expected {
		if !strings.Contains(output, exp) {
			t.Errorf("output missing expected string %q\nOutput: %s", exp, output)
		}
	}
}
