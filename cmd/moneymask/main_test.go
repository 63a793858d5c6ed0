package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/money-mask/internal/config"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestFormatCommand(t *testing.T) {
	out, err := run(t, "", "format", "--", "123456", "-5", "")
	require.NoError(t, err)
	assert.Equal(t, "1,234.56\n-0.05\n0.00\n", out)
}

func TestFormatCommand_Number(t *testing.T) {
	out, err := run(t, "", "format", "--number", "--", "1234.5", "-1234.56")
	require.NoError(t, err)
	assert.Equal(t, "1,234.50\n-1,234.56\n", out)

	_, err = run(t, "", "format", "-n", "abc")
	assert.ErrorContains(t, err, "not a number")
}

func TestFormatCommand_Flags(t *testing.T) {
	out, err := run(t, "", "format", "--number", "--precision", "3", "--decimal", ",", "--thousands", ".", "--prefix", "R$ ", "--suffix", " #", "1234.567")
	require.NoError(t, err)
	assert.Equal(t, "R$ 1.234,567 #\n", out)

	out, err = run(t, "", "format", "--thousands", "", "123456789")
	require.NoError(t, err)
	assert.Equal(t, "1234567.89\n", out)
}

func TestFormatCommand_Stdin(t *testing.T) {
	out, err := run(t, "100\n\n2500\r\n", "format", "--prefix", "$")
	require.NoError(t, err)
	assert.Equal(t, "$1.00\n$25.00\n", out)
}

func TestFormatCommand_OutputFormats(t *testing.T) {
	out, err := run(t, "", "format", "-o", "csv", "123456")
	require.NoError(t, err)
	assert.Equal(t, "Input,Masked,Value,Caret\n123456,\"1,234.56\",1234.56,\n", out)

	out, err = run(t, "", "format", "-o", "json", "5")
	require.NoError(t, err)
	assert.Contains(t, out, `"masked": "0.05"`)
	assert.Contains(t, out, `"kind": "format"`)

	_, err = run(t, "", "format", "-o", "xml", "5")
	assert.ErrorContains(t, err, "unsupported output format")
}

func TestUnformatCommand(t *testing.T) {
	out, err := run(t, "", "unformat", "--", "$1,234.56", "-1,234.56", "0.00")
	require.NoError(t, err)
	assert.Equal(t, "1234.56\n-1234.56\n0.00\n", out)

	out, err = run(t, "", "unformat", "--precision", "3", "R$ 1.234,567 #")
	require.NoError(t, err)
	assert.Equal(t, "1234.567\n", out)
}

func TestCaretCommand(t *testing.T) {
	out, err := run(t, "", "caret", "1,2349|.56", "1,234.567|")
	require.NoError(t, err)
	assert.Equal(t, "12,349|.56\n12,345.67|\n", out)

	out, err = run(t, "", "caret", "--suffix", " %", "--focus", "|1.25 %")
	require.NoError(t, err)
	assert.Equal(t, "1.25| %\n", out)

	_, err = run(t, "", "caret")
	assert.Error(t, err)
}

func TestPresets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	out, err := run(t, "", "presets", "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote ")

	out, err = run(t, "", "presets", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "brl")
	assert.Contains(t, out, "R$ -1.234.567,89")
	assert.Contains(t, out, "¥-1,234,568")

	out, err = run(t, "", "format", "-c", path, "-p", "eur", "123456")
	require.NoError(t, err)
	assert.Equal(t, "1.234,56 €\n", out)

	// Explicit flags win over the preset.
	out, err = run(t, "", "format", "-c", path, "-p", "eur", "--suffix", "", "123456")
	require.NoError(t, err)
	assert.Equal(t, "1.234,56\n", out)

	_, err = run(t, "", "format", "-c", path, "-p", "gbp", "1")
	assert.ErrorIs(t, err, config.ErrUnknownPreset)

	_, err = run(t, "", "presets")
	assert.ErrorContains(t, err, "requires --config")
}

func TestPresets_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("presets:\n  x:\n    precision: 40\n"), 0644))
	_, err := run(t, "", "format", "-c", path, "1")
	assert.ErrorIs(t, err, config.ErrInvalidPreset)
}

func TestEditRequiresTerminal(t *testing.T) {
	if isTerminal() {
		t.Skip("stdin is a terminal")
	}
	_, err := run(t, "", "edit")
	assert.ErrorIs(t, err, ErrNotTerminal)
}

func TestVerboseLogging(t *testing.T) {
	out, err := run(t, "", "caret", "-v", "12|")
	require.NoError(t, err)
	assert.Contains(t, out, "DEBUG binding arg0")
	assert.Contains(t, out, "0.12|")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "2.0.0")
}
