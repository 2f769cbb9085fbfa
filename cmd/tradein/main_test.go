package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "tradein version "), out)
}

func TestCatalogValidateCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ps5.yaml")
	require.NoError(t, os.WriteFile(path, []byte("questions:\n  - {id: q1, text: Ok?, step: 1, options: [{value: si, label: Sì}]}\n"), 0o644))

	out, err := execute(t, "", "catalog", "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ ps5.yaml")
}

func TestValueCommand_JSON(t *testing.T) {
	env := filepath.Join(t.TempDir(), "missing.env")
	out, err := execute(t, "q\n", "value", "--json", "--shopper", "zoe", "--env-file", env)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[len(lines)-1], `"isTradeInActive":false`)
}

func TestMCPCommand_RejectsTransport(t *testing.T) {
	_, err := execute(t, "", "mcp", "--transport", "carrier-pigeon")
	assert.ErrorContains(t, err, "unknown transport")
}
