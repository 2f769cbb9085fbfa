package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/tradein/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shortCatalog = `questions:
  - id: q1
    text: Condizione?
    step: 1
    options:
      - {value: good, label: Good, deduction: -10}
      - {value: new, label: New}
`

const brokenCatalog = `questions:
  - id: q1
    text: Condizione?
    step: 2
    options: []
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidateCatalogs_File(t *testing.T) {
	path := writeFile(t, t.TempDir(), "ps5.yaml", shortCatalog)

	var out bytes.Buffer
	require.NoError(t, ValidateCatalogs(context.Background(), &out, path))
	assert.Contains(t, out.String(), "✓ ps5.yaml (1 questions)")
}

func TestValidateCatalogs_ReportsProblems(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.yaml", brokenCatalog)

	var out bytes.Buffer
	err := ValidateCatalogs(context.Background(), &out, path)
	assert.ErrorContains(t, err, "1 of 1 catalogs invalid")
	assert.Contains(t, out.String(), "✗ bad.yaml")
}

func TestValidateCatalogs_Directory(t *testing.T) {
	dir := testutils.SeedDir(t, map[string]string{
		"ps5.md":      "---\n" + shortCatalog + "---\n",
		"switch.json": `{"questions":[{"id":"q1","text":"Joy-Con?","step":1,"options":[{"value":"ok","label":"Ok"}]}]}`,
	})

	var out bytes.Buffer
	require.NoError(t, ValidateCatalogs(context.Background(), &out, dir))
	assert.Contains(t, out.String(), "✓ ps5 (1 questions)")
	assert.Contains(t, out.String(), "✓ switch (1 questions)")
}

func TestValidateCatalogs_Missing(t *testing.T) {
	err := ValidateCatalogs(context.Background(), &bytes.Buffer{}, filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestCatalogMarkdown(t *testing.T) {
	dir := testutils.SeedDir(t, map[string]string{"ps5.md": "---\nconsole: ps5\nquestions:\n  - id: q1\n    text: Graffi?\n    step: 1\n    options:\n      - {value: si, label: Sì, deduction: -15}\n      - {value: \"no\", label: \"No\"}\n---\nSolo per PS5.\n"})

	app := newTestApp(t, Options{CatalogDir: dir})
	require.NotNil(t, app.Catalogs)

	md := CatalogMarkdown(context.Background(), app, "ps5")
	assert.Contains(t, md, "# Catalog for ps5")
	assert.Contains(t, md, "_source: console_")
	assert.Contains(t, md, "Solo per PS5.")
	assert.Contains(t, md, "- Sì `si` (-15)")

	md = CatalogMarkdown(context.Background(), app, "")
	assert.Contains(t, md, "# Default catalog")
	assert.Contains(t, md, "_source: default_")
	assert.Contains(t, md, "## Step 5")
}
