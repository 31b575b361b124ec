// ABOUTME: Entry point for the policygate vulnerability policy filter.
// ABOUTME: Handles configuration parsing, policy loading, filtering, and exit codes.

package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gh-action-pr-demo/policygate/internal/filter"
	"github.com/gh-action-pr-demo/policygate/internal/policy"
	"github.com/gh-action-pr-demo/policygate/internal/report"
	"github.com/gh-action-pr-demo/policygate/internal/severity"

	"github.com/sirupsen/logrus"
)

// Exit codes distinguish "ran and found violations" from "failed to run".
const (
	exitOK         = 0
	exitViolations = 1
	exitError      = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	config := parseConfig()
	logger := newLogger()

	minSeverity, err := severity.Parse(config.MinSeverity)
	if err != nil {
		logger.WithError(err).Error("Invalid minimum severity threshold")
		return exitError
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.WithFields(logrus.Fields{
		"policy_source": config.PolicySource,
		"policy_repo":   config.PolicyRepo,
		"policy_ref":    config.PolicyRef,
		"min_severity":  minSeverity.String(),
	}).Info("Initializing policygate")

	source, err := policy.NewSource(&policy.SourceConfig{
		Kind:     config.PolicySource,
		Repo:     config.PolicyRepo,
		Ref:      config.PolicyRef,
		Path:     config.PolicyPath,
		Dir:      config.PolicyDir,
		MockMode: config.MockMode,
	}, logger)
	if err != nil {
		logger.WithError(err).Error("Failed to create policy source")
		return exitError
	}

	policies := policy.NewLoader(source, logger).LoadAll(ctx)

	changes, err := report.ReadChanges(inputReader(os.Getenv("VULNERABILITIES"), os.Stdin))
	if err != nil {
		logger.WithError(err).Error("Failed to read vulnerability input")
		return exitError
	}

	engine := filter.NewEngine(policies, minSeverity, logger)
	filtered, entries := engine.Apply(changes)

	rep := report.New(filtered, entries, len(changes), minSeverity.String())
	if err := rep.Write(os.Stdout, config.Pretty); err != nil {
		logger.WithError(err).Error("Failed to write report")
		return exitError
	}

	if len(filtered) > 0 {
		logger.WithField("violations", len(filtered)).Warn("Policy violations found")
		return exitViolations
	}

	logger.Info("No policy violations found")
	return exitOK
}

func parseConfig() *filter.Config {
	config := &filter.Config{}

	flag.StringVar(&config.PolicySource, "policy-source", "local", "Policy source: local or github")
	flag.StringVar(&config.PolicyRepo, "policy-repo", "", "Policy repository (owner/name) for the github source")
	flag.StringVar(&config.PolicyPath, "policy-path", ".github/policies", "Path prefix of policy files in the repository")
	flag.StringVar(&config.PolicyRef, "policy-ref", "main", "Revision reference in the policy repository")
	flag.StringVar(&config.PolicyDir, "policy-dir", ".github/policies", "Local policy directory")
	flag.StringVar(&config.MinSeverity, "min-severity", "critical", "Minimum severity threshold (low, moderate, high, critical)")
	flag.BoolVar(&config.Pretty, "pretty", false, "Indent the output JSON")
	flag.BoolVar(&config.MockMode, "mock", false, "Use built-in sample policies (no filesystem or network access)")
	flag.Parse()

	applyEnvOverrides(config)
	return config
}

// applyEnvOverrides lets environment variables override flag values, so the
// gate configures the same way inside a CI workflow as on the command line.
func applyEnvOverrides(config *filter.Config) {
	if env := os.Getenv("POLICY_SOURCE"); env != "" {
		config.PolicySource = env
	}
	if env := os.Getenv("POLICY_REPO"); env != "" {
		config.PolicyRepo = env
	}
	if env := os.Getenv("POLICY_PATH"); env != "" {
		config.PolicyPath = env
	}
	if env := os.Getenv("POLICY_REF"); env != "" {
		config.PolicyRef = env
	}
	if env := os.Getenv("POLICY_DIR"); env != "" {
		config.PolicyDir = env
	}
	if env := os.Getenv("MIN_SEVERITY"); env != "" {
		config.MinSeverity = env
	}
	if env := os.Getenv("MOCK_MODE"); env == "true" || env == "1" {
		config.MockMode = true
	}
}

// inputReader selects the vulnerability input: the serialized JSON from the
// environment when present, otherwise standard input.
func inputReader(envValue string, stdin io.Reader) io.Reader {
	if envValue != "" {
		return strings.NewReader(envValue)
	}
	return stdin
}

func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr) // stdout carries only the report JSON
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(logrus.InfoLevel)

	if os.Getenv("LOG_LEVEL") == "debug" {
		logger.SetLevel(logrus.DebugLevel)
	}

	return logger
}
