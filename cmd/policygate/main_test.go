// ABOUTME: Tests for entry-point configuration and input selection.
// ABOUTME: Tests environment overrides, logger setup, and the input reader choice.

package main

import (
	"io"
	"strings"
	"testing"

	"github.com/gh-action-pr-demo/policygate/internal/filter"
	"github.com/sirupsen/logrus"
)

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("POLICY_SOURCE", "github")
	t.Setenv("POLICY_REPO", "acme/policies")
	t.Setenv("POLICY_REF", "v2")
	t.Setenv("MIN_SEVERITY", "high")
	t.Setenv("MOCK_MODE", "1")

	config := &filter.Config{
		PolicySource: "local",
		PolicyPath:   ".github/policies",
		PolicyRef:    "main",
		PolicyDir:    ".github/policies",
		MinSeverity:  "critical",
	}
	applyEnvOverrides(config)

	if config.PolicySource != "github" {
		t.Errorf("Expected policy source 'github', got '%s'", config.PolicySource)
	}
	if config.PolicyRepo != "acme/policies" {
		t.Errorf("Expected policy repo 'acme/policies', got '%s'", config.PolicyRepo)
	}
	if config.PolicyRef != "v2" {
		t.Errorf("Expected policy ref 'v2', got '%s'", config.PolicyRef)
	}
	if config.PolicyPath != ".github/policies" {
		t.Errorf("Unset env var should not override, got '%s'", config.PolicyPath)
	}
	if config.MinSeverity != "high" {
		t.Errorf("Expected min severity 'high', got '%s'", config.MinSeverity)
	}
	if !config.MockMode {
		t.Error("Expected mock mode enabled")
	}
}

func TestApplyEnvOverridesMockModeFalse(t *testing.T) {
	t.Setenv("MOCK_MODE", "no")

	config := &filter.Config{}
	applyEnvOverrides(config)

	if config.MockMode {
		t.Error("Expected mock mode disabled for MOCK_MODE=no")
	}
}

func TestInputReader(t *testing.T) {
	stdin := strings.NewReader("from stdin")

	t.Run("env value wins", func(t *testing.T) {
		r := inputReader(`[{"ecosystem":"npm"}]`, stdin)
		data, err := io.ReadAll(r)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if string(data) != `[{"ecosystem":"npm"}]` {
			t.Errorf("Unexpected input: %s", data)
		}
	})

	t.Run("empty env falls back to stdin", func(t *testing.T) {
		if inputReader("", stdin) != io.Reader(stdin) {
			t.Error("Expected stdin reader when env value is empty")
		}
	})
}

func TestNewLoggerLevel(t *testing.T) {
	logger := newLogger()
	if logger.GetLevel() != logrus.InfoLevel {
		t.Errorf("Expected info level by default, got %v", logger.GetLevel())
	}

	t.Setenv("LOG_LEVEL", "debug")
	logger = newLogger()
	if logger.GetLevel() != logrus.DebugLevel {
		t.Errorf("Expected debug level, got %v", logger.GetLevel())
	}
}
