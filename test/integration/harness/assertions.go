package harness

import (
	"encoding/json"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSuccess checks that droidsound exited 0
func AssertSuccess(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.Equal(tb, 0, result.ExitCode,
		"expected exit 0, got %d\nstdout: %s\nstderr: %s",
		result.ExitCode, result.Stdout, result.Stderr)
}

// AssertFailure checks that droidsound exited non-zero
func AssertFailure(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.NotEqual(tb, 0, result.ExitCode,
		"expected a failing exit code\nstdout: %s", result.Stdout)
}

// AssertExitCode checks the exact exit code
func AssertExitCode(tb testing.TB, result CommandResult, expected int) {
	tb.Helper()
	assert.Equal(tb, expected, result.ExitCode,
		"expected exit %d, got %d\nstdout: %s\nstderr: %s",
		expected, result.ExitCode, result.Stdout, result.Stderr)
}

// AssertStdoutContains checks that stdout mentions expected
func AssertStdoutContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stdout, expected, "stdout: %s", result.Stdout)
}

// AssertStderrContains checks that stderr mentions expected
func AssertStderrContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stderr, expected, "stderr: %s", result.Stderr)
}

// AssertEncoded checks the row `encode` printed for command.
// Rows are "<command>  <bytes>", with bytes as upper-case hex or vocalizer text.
func AssertEncoded(tb testing.TB, result CommandResult, command, expected string) {
	tb.Helper()
	for _, line := range outputLines(result.Stdout) {
		fields := strings.Fields(line)
		if len(fields) < 2 || fields[0] != command {
			continue
		}
		assert.Equal(tb, expected, strings.Join(fields[1:], " "), "encoding of %s", command)
		return
	}
	assert.Fail(tb, "command not encoded", "no row for %q in stdout: %s", command, result.Stdout)
}

// AssertReplies checks the per-command replies `send` prints, in order
func AssertReplies(tb testing.TB, result CommandResult, expected ...string) {
	tb.Helper()
	var replies []string
	for _, line := range outputLines(result.Stdout) {
		if strings.HasPrefix(line, "OK ") || strings.HasPrefix(line, "? ") {
			replies = append(replies, line)
		}
	}
	assert.Equal(tb, expected, replies, "stdout: %s", result.Stdout)
}

// AssertValidJSON unmarshals stdout into target
func AssertValidJSON(tb testing.TB, result CommandResult, target any) {
	tb.Helper()
	err := json.Unmarshal([]byte(result.Stdout), target)
	require.NoError(tb, err, "stdout is not JSON: %s", result.Stdout)
}

// AssertJSONField checks one top-level field of a JSON object on stdout.
// Numbers decode as float64.
func AssertJSONField(tb testing.TB, result CommandResult, key string, expected any) {
	tb.Helper()
	var data map[string]any
	AssertValidJSON(tb, result, &data)
	require.Contains(tb, data, key, "stdout: %s", result.Stdout)
	assert.Equal(tb, expected, data[key], "JSON field %q", key)
}

func outputLines(s string) []string {
	return slices.DeleteFunc(strings.Split(s, "\n"), func(line string) bool {
		return strings.TrimSpace(line) == ""
	})
}
