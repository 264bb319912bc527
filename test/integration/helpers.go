//go:build integration

package integration

import (
	"bytes"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/fivetwenty-io/microcms-go/internal/constants"
)

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	APIURL         string
	APIKey         string
	ObjectEndpoint string
	ListEndpoint   string
	BinaryPath     string
	Verbose        bool
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		APIURL:         os.Getenv(constants.EnvAPIURL),
		APIKey:         os.Getenv(constants.EnvAPIKey),
		ObjectEndpoint: getenvDefault("MICROCMS_TEST_OBJECT_ENDPOINT", "test"),
		ListEndpoint:   getenvDefault("MICROCMS_TEST_LIST_ENDPOINT", "list_test"),
		BinaryPath:     getBinaryPath(),
		Verbose:        os.Getenv("MICROCMS_VERBOSE") == "true",
	}
}

func getenvDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}

// getBinaryPath determines the path to the microcms binary.
func getBinaryPath() string {
	if path := os.Getenv("MICROCMS_BINARY_PATH"); path != "" {
		return path
	}

	// Try common locations
	candidates := []string{
		"../../microcms",
		"./microcms",
		"../microcms",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "microcms"
}

// SkipIfMissingConfig skips the test unless API URL and key are set.
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.APIURL == "" || config.APIKey == "" {
		t.Skip("MICROCMS_API_URL or MICROCMS_API_KEY not set, skipping integration test")
	}
}

// SkipIfMissingBinary skips the test when the CLI has not been built.
func (config *TestConfig) SkipIfMissingBinary(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath(config.BinaryPath); err != nil {
		t.Skipf("microcms binary not found at %s, skipping integration test", config.BinaryPath)
	}
}

// CommandRunner provides utilities for running microcms commands.
type CommandRunner struct {
	config *TestConfig
	t      *testing.T
}

// NewCommandRunner creates a new command runner.
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	return &CommandRunner{
		config: config,
		t:      t,
	}
}

// Run executes a microcms command against the configured API.
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	cmd := exec.Command(runner.config.BinaryPath, args...)
	cmd.Env = append(os.Environ(),
		constants.EnvAPIURL+"="+runner.config.APIURL,
		constants.EnvAPIKey+"="+runner.config.APIKey,
	)

	var stdoutBuf, stderrBuf bytes.Buffer

	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.BinaryPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}
