package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cpfvariant/cpf"
	"github.com/katalvlaran/cpfvariant/variant"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cpfvariant.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestSearch_Text(t *testing.T) {
	stdout, stderr, err := execute(t, "search", "529.982.247-25", "--no-color")
	require.NoError(t, err)

	want := "original: 529.982.247-25\n" +
		"Valid variations (1)\n" +
		"  ✓ 529.982.257-05 (2 digits different)\n" +
		"search complete: 1 variation(s) found, 4554 checked\n"
	assert.Equal(t, want, stdout)
	assert.Equal(t, "searching variations with 1 digit(s) changed\n"+
		"searching variations with 2 digit(s) changed\n", stderr)
}

func TestSearch_JSON(t *testing.T) {
	stdout, stderr, err := execute(t, "search", "12345678909", "-o", "json")
	require.NoError(t, err)
	assert.Empty(t, stderr)

	var doc struct {
		Original string `json:"original"`
		Entries  []struct {
			CPF         string `json:"cpf"`
			Differences int    `json:"differences"`
		} `json:"entries"`
		Checked int `json:"checked"`
		Level   int `json:"level"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &doc))
	assert.Equal(t, "123.456.789-09", doc.Original)
	require.Len(t, doc.Entries, 1)
	assert.Equal(t, "223.456.789-09", doc.Entries[0].CPF)
	assert.Equal(t, 1, doc.Entries[0].Differences)
	assert.Equal(t, 99, doc.Checked)
	assert.Equal(t, 1, doc.Level)
}

func TestSearch_MaxLevelCapsEscalation(t *testing.T) {
	stdout, _, err := execute(t, "search", "529.982.247-25", "--max-level", "1", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, stdout, "no results")
	assert.Contains(t, stdout, "search complete: no valid variation found, 99 checked")
}

func TestSearch_Errors(t *testing.T) {
	_, _, err := execute(t, "search", "111.444.777-3")
	assert.ErrorIs(t, err, variant.ErrWrongLength)

	_, _, err = execute(t, "search", "111.444.777-36")
	assert.ErrorIs(t, err, variant.ErrInvalidChecksum)

	_, _, err = execute(t, "search", "529.982.247-25", "--max-level", "4")
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, _, err = execute(t, "search", "529.982.247-25", "-o", "xml")
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, _, err = execute(t, "search")
	assert.Error(t, err)
}

func TestSearch_ConfigFile(t *testing.T) {
	path := writeConfig(t, "max_level: 1\noutput: yaml\n")

	stdout, _, err := execute(t, "search", "12345678909", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "cpf: 223.456.789-09")
	assert.Contains(t, stdout, "checked: 99")

	// flags win over the file
	stdout, _, err = execute(t, "search", "12345678909", "--config", path, "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"checked": 99`)
}

func TestSearch_TraceAndMetrics(t *testing.T) {
	_, stderr, err := execute(t, "search", "12345678909", "-o", "json", "--trace", "--metrics")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"Name": "variant.Submit"`)
	assert.Contains(t, stderr, `"Name": "variant.level"`)
	assert.Contains(t, stderr, `cpfvariant_candidates_checked_total{level="1"} 99`)
	assert.Contains(t, stderr, `cpfvariant_searches_total{outcome="found"} 1`)
}

func TestSearch_DebugLogging(t *testing.T) {
	_, stderr, err := execute(t, "search", "12345678909", "-o", "yaml", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, stderr, "level=DEBUG")
	assert.Contains(t, stderr, "level=INFO")
	assert.Contains(t, stderr, "run_id=")
}

func TestValidate(t *testing.T) {
	stdout, _, err := execute(t, "validate", "52998224725")
	require.NoError(t, err)
	assert.Equal(t, "valid: 529.982.247-25\n", stdout)

	stdout, _, err = execute(t, "validate", "111.444.777-36")
	assert.ErrorIs(t, err, cpf.ErrInvalidChecksum)
	assert.Empty(t, stdout)

	_, _, err = execute(t, "validate", "123")
	assert.ErrorIs(t, err, cpf.ErrWrongLength)
}

// TestNonDigitInput_SameMessage reports a stray letter as a length error in
// both commands.
func TestNonDigitInput_SameMessage(t *testing.T) {
	_, _, verr := execute(t, "validate", "111.444.777-3x")
	require.Error(t, verr)
	assert.ErrorIs(t, verr, cpf.ErrWrongLength)
	assert.ErrorIs(t, verr, cpf.ErrNonDigit)
	assert.Contains(t, verr.Error(), "must have 11 digits")

	_, _, serr := execute(t, "search", "111.444.777-3x")
	require.Error(t, serr)
	assert.ErrorIs(t, serr, variant.ErrWrongLength)
	assert.ErrorIs(t, serr, cpf.ErrNonDigit)
	assert.Contains(t, serr.Error(), "must have 11 digits")
}

// TestSearch_NoColorFalseOverridesConfig lets --no-color=false undo a
// config color mode, falling back to auto detection.
func TestSearch_NoColorFalseOverridesConfig(t *testing.T) {
	path := writeConfig(t, "color: always\n")

	stdout, _, err := execute(t, "search", "12345678909", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "\x1b[")

	// auto never colors a buffer
	stdout, _, err = execute(t, "search", "12345678909", "--config", path, "--no-color=false")
	require.NoError(t, err)
	assert.NotContains(t, stdout, "\x1b[")
	assert.Contains(t, stdout, "✓ 223.456.789-09 (1 digit different)")

	stdout, _, err = execute(t, "search", "12345678909", "--config", path, "--no-color")
	require.NoError(t, err)
	assert.NotContains(t, stdout, "\x1b[")
}

func TestFormat(t *testing.T) {
	stdout, _, err := execute(t, "format", "11144477736")
	require.NoError(t, err)
	assert.Equal(t, "111.444.777-36\n", stdout)

	_, _, err = execute(t, "format", "1114447773x")
	assert.ErrorIs(t, err, cpf.ErrNonDigit)
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = LoadConfig(writeConfig(t, "max_level: 2\ncolor: never\nlog_level: debug\ntrace: true\n"))
	require.NoError(t, err)
	assert.Equal(t, Config{MaxLevel: 2, Output: "text", Color: ColorNever, LogLevel: "debug", Trace: true}, cfg)

	_, err = LoadConfig(writeConfig(t, "max_level: 0\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = LoadConfig(writeConfig(t, "color: sometimes\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = LoadConfig(writeConfig(t, "depth: 2\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestUseColor(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, useColor(ColorAlways, &buf))
	assert.False(t, useColor(ColorNever, &buf))
	assert.False(t, useColor(ColorAuto, &buf))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, useColor(ColorAuto, os.Stdout))
}
