package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"
)

func captureStdout(t *testing.T, fn func() error) string {
	t.Helper()

	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	os.Stdout = w

	runErr := fn()

	_ = w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)

	if runErr != nil {
		t.Fatalf("Run() error = %v", runErr)
	}

	return buf.String()
}

func TestVersionCmdRunDefault(t *testing.T) {
	cmd := &VersionCmd{}
	output := captureStdout(t, cmd.Run)

	for _, want := range []string{"Version:", "Commit:", "Date:"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q, got: %s", want, output)
		}
	}
}

func TestVersionCmdRunShort(t *testing.T) {
	cmd := &VersionCmd{Short: true}
	output := captureStdout(t, cmd.Run)

	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) != 1 {
		t.Errorf("short output should be a single line, got %d lines: %q", len(lines), output)
	}
	if strings.TrimSpace(output) == "" {
		t.Error("short output should not be empty")
	}
}

func TestVersionCmdRunJSON(t *testing.T) {
	cmd := &VersionCmd{JSON: true}
	output := captureStdout(t, cmd.Run)

	var result map[string]string
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("output is not valid JSON: %v\noutput: %s", err, output)
	}

	for _, field := range []string{"version", "commit", "date"} {
		if _, ok := result[field]; !ok {
			t.Errorf("JSON output missing field %q", field)
		}
	}
}

func TestCLIHasVersionCommand(t *testing.T) {
	cli := &CLI{}
	captureStdout(t, cli.Version.Run)
}
