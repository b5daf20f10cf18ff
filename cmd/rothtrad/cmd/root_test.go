package cmd

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestAccumulateCSV(t *testing.T) {
	out, err := run(t, "accumulate", "--years", "3", "--format", "csv")
	require.NoError(t, err)
	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"Metric", "Value"}, records[0])
	assert.Equal(t, []string{"ContributionYears", "3"}, records[1])
}

func TestCompareJSON(t *testing.T) {
	out, err := run(t, "compare", "--years", "4", "--distribution-years", "3", "--format", "json")
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.Contains(t, body, "comparison")
	assert.Contains(t, body, "distribution_summary")
	assert.NotEmpty(t, body["assumptions"])
}

func TestCompareAliases(t *testing.T) {
	out, err := run(t, "project", "--format", "lite")
	require.NoError(t, err)
	assert.Contains(t, out, "Preferred:")
}

func TestRejectsBadFlagValue(t *testing.T) {
	_, err := run(t, "accumulate", "--gross-income", "lots")
	assert.ErrorContains(t, err, "--gross-income")

	_, err = run(t, "accumulate", "--traditional-percent", "140")
	assert.ErrorContains(t, err, "traditional_percent")
}

func TestUnsupportedFormat(t *testing.T) {
	_, err := run(t, "accumulate", "--format", "pdf")
	assert.ErrorContains(t, err, "unsupported output format")

	_, err = run(t, "accumulate", "--format", "all")
	assert.ErrorContains(t, err, "--output auto")
}

func TestOutputToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.html")
	out, err := run(t, "compare", "--format", "html", "--output", path)
	require.NoError(t, err)
	assert.Empty(t, out)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<!DOCTYPE html>")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(string(data)), "</html>"), "report file is complete once the command returns")
}

func TestOutputToFileCreateError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "report.csv")
	_, err := run(t, "compare", "--format", "csv", "--output", path)
	assert.ErrorContains(t, err, "failed to create output file")
}

func TestBrackets(t *testing.T) {
	out, err := run(t, "brackets", "--year", "1", "--inflation-rate", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "TAX BRACKETS, YEAR 1")
	assert.Contains(t, out, "$12,760.00")
	assert.Contains(t, out, "and above")

	_, err = run(t, "brackets", "--year", "-2")
	assert.Error(t, err)
}

func TestInitConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "example.toml")
	out, err := run(t, "init-config", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	out, err = run(t, "--config", path, "accumulate", "--format", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "ContributionYears")
}

func TestInvalidLogSettings(t *testing.T) {
	_, err := run(t, "--log-format", "xml", "accumulate")
	assert.ErrorContains(t, err, "invalid log format")

	_, err = run(t, "--log-level", "loud", "accumulate")
	assert.Error(t, err)
}
