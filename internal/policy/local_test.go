// ABOUTME: Unit tests for the local directory policy source.
// ABOUTME: Tests discovery scanning, reserved file exclusion, and missing-file handling.

package policy

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return logger
}

func writePolicyFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
}

func TestLocalSourceName(t *testing.T) {
	source := NewLocalSource("policies", newTestLogger())
	if source.Name() != "local" {
		t.Errorf("Expected name 'local', got '%s'", source.Name())
	}
}

func TestLocalSourceDiscover(t *testing.T) {
	dir := t.TempDir()
	writePolicyFile(t, dir, "npm.txt", "lodash\n")
	writePolicyFile(t, dir, "maven.txt", "org.example:lib\n")
	writePolicyFile(t, dir, "config.txt", "fail_on_severity: high\n")
	writePolicyFile(t, dir, "README.md", "not a policy\n")
	if err := os.Mkdir(filepath.Join(dir, "nested.txt"), 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	source := NewLocalSource(dir, newTestLogger())
	ecosystems := source.Discover(context.Background())

	expected := []string{"maven", "npm"}
	if len(ecosystems) != len(expected) {
		t.Fatalf("Expected %d ecosystems, got %v", len(expected), ecosystems)
	}
	for i, eco := range expected {
		if ecosystems[i] != eco {
			t.Errorf("Expected ecosystem %q at %d, got %q", eco, i, ecosystems[i])
		}
	}
}

func TestLocalSourceDiscoverMissingDir(t *testing.T) {
	source := NewLocalSource("/nonexistent/policy/dir", newTestLogger())

	ecosystems := source.Discover(context.Background())
	if len(ecosystems) != 0 {
		t.Errorf("Expected no ecosystems for missing directory, got %v", ecosystems)
	}
}

func TestLocalSourceFetch(t *testing.T) {
	dir := t.TempDir()
	writePolicyFile(t, dir, "npm.txt", "# tracked packages\n\nlodash\n  left-pad  \n")

	source := NewLocalSource(dir, newTestLogger())

	list := source.Fetch(context.Background(), "npm")
	if len(list) != 2 || list[0] != "lodash" || list[1] != "left-pad" {
		t.Errorf("Unexpected list: %v", list)
	}
}

func TestLocalSourceFetchMissingFile(t *testing.T) {
	source := NewLocalSource(t.TempDir(), newTestLogger())

	list := source.Fetch(context.Background(), "pip")
	if len(list) != 0 {
		t.Errorf("Expected empty list for missing file, got %v", list)
	}
}

func TestLocalSourceUppercaseFilename(t *testing.T) {
	dir := t.TempDir()
	writePolicyFile(t, dir, "NPM.txt", "lodash\n")

	source := NewLocalSource(dir, newTestLogger())
	ecosystems := source.Discover(context.Background())

	// Ecosystem names are lowercase mapping keys regardless of file casing.
	if len(ecosystems) != 1 || ecosystems[0] != "npm" {
		t.Errorf("Expected [npm], got %v", ecosystems)
	}
}
