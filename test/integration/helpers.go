//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	APIEndpoint string
	Username    string
	Password    string
	BeerPath    string
	Verbose     bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		APIEndpoint: os.Getenv("BEER_IT_API"),
		Username:    os.Getenv("BEER_IT_USERNAME"),
		Password:    os.Getenv("BEER_IT_PASSWORD"),
		BeerPath:    getBeerPath(),
		Verbose:     os.Getenv("BEER_IT_VERBOSE") == "true",
	}
}

// getBeerPath determines the path to the beer binary
func getBeerPath() string {
	if path := os.Getenv("BEER_BINARY_PATH"); path != "" {
		return path
	}

	candidates := []string{
		"../../beer",
		"./beer",
		"../beer",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "beer"
}

// SkipIfMissingConfig skips test if required config is missing
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.APIEndpoint == "" {
		t.Skip("BEER_IT_API not set, skipping integration test")
	}

	if _, err := exec.LookPath(config.BeerPath); err != nil {
		t.Skipf("beer binary not found at %s, skipping integration test", config.BeerPath)
	}
}

// CommandRunner runs the beer binary against an isolated config file.
type CommandRunner struct {
	config     *TestConfig
	configFile string
	t          *testing.T
}

// NewCommandRunner creates a new command runner
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	t.Helper()

	return &CommandRunner{
		config:     config,
		configFile: filepath.Join(t.TempDir(), "config.yml"),
		t:          t,
	}
}

// Run executes a beer command and returns output
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	return runner.RunWithInput("", args...)
}

// RunWithInput executes a beer command with stdin input
func (runner *CommandRunner) RunWithInput(input string, args ...string) (stdout, stderr string, err error) {
	cmd := exec.Command(runner.config.BeerPath, args...)
	cmd.Env = append(os.Environ(), "BEER_CONFIG="+runner.configFile, "BEER_NO_COLOR=true")
	cmd.Stdin = strings.NewReader(input)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.BeerPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// Login stores the test credentials in the runner's config file.
func (runner *CommandRunner) Login() error {
	_, stderr, err := runner.Run("login",
		"--api", runner.config.APIEndpoint,
		"--username", runner.config.Username,
		"--password", runner.config.Password)
	if err != nil {
		return fmt.Errorf("failed to login: %s", stderr)
	}

	return nil
}

// CleanupBeer attempts to delete a beer created by a test.
func (runner *CommandRunner) CleanupBeer(id string) {
	if id == "" {
		return
	}

	stdout, stderr, err := runner.Run("beers", "delete", id, "--force")
	if err != nil && runner.config.Verbose {
		runner.t.Logf("Cleanup warning for beer %s: %s\nStderr: %s", id, stdout, stderr)
	}
}

// GenerateTestName creates a unique test resource name
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

// DecodeJSONOutput unmarshals command output into target.
func DecodeJSONOutput(t *testing.T, output string, target interface{}) {
	t.Helper()

	if err := json.Unmarshal([]byte(strings.TrimSpace(output)), target); err != nil {
		t.Fatalf("Output is not valid JSON: %v\n%s", err, output)
	}
}
