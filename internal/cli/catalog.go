package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	loamadapter "github.com/aretw0/tradein/pkg/adapters/loam"
	"github.com/aretw0/tradein/pkg/catalog"
	"github.com/aretw0/tradein/pkg/domain"
)

// ValidateCatalogs checks a catalog file or every catalog document of a
// directory. Each problem is reported on w; the error summarizes the count.
func ValidateCatalogs(ctx context.Context, w io.Writer, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	catalogs := map[string]domain.Catalog{}
	if info.IsDir() {
		catalogs, err = loadDir(ctx, path)
	} else {
		var c domain.Catalog
		c, err = loadFile(ctx, path)
		catalogs[filepath.Base(path)] = c
	}
	if err != nil {
		return err
	}
	if len(catalogs) == 0 {
		return fmt.Errorf("no catalogs found in %s", path)
	}

	names := make([]string, 0, len(catalogs))
	for name := range catalogs {
		names = append(names, name)
	}
	sort.Strings(names)

	failed := 0
	for _, name := range names {
		c := catalogs[name]
		if err := catalog.Validate(c); err != nil {
			failed++
			var verr *catalog.ValidationError
			if errors.As(err, &verr) {
				for _, p := range verr.Problems {
					fmt.Fprintf(w, "✗ %s: %s\n", name, p)
				}
				continue
			}
			fmt.Fprintf(w, "✗ %s: %v\n", name, err)
			continue
		}
		fmt.Fprintf(w, "✓ %s (%d questions)\n", name, len(c))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d catalogs invalid", failed, len(catalogs))
	}
	return nil
}

func loadFile(ctx context.Context, path string) (domain.Catalog, error) {
	if strings.EqualFold(filepath.Ext(path), ".md") {
		src, err := loamadapter.Open(filepath.Dir(path))
		if err != nil {
			return nil, err
		}
		id := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		return src.Catalog(ctx, id)
	}
	return catalog.LoadFile(path)
}

func loadDir(ctx context.Context, dir string) (map[string]domain.Catalog, error) {
	src, err := loamadapter.Open(dir)
	if err != nil {
		return nil, err
	}
	ids, err := src.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]domain.Catalog, len(ids))
	for _, id := range ids {
		c, err := src.Catalog(ctx, id)
		if err != nil {
			return nil, err
		}
		out[id] = c
	}
	return out, nil
}

// CatalogMarkdown renders the catalog a console resolves to, including the
// notes of its catalog document when one exists.
func CatalogMarkdown(ctx context.Context, app *App, consoleID string) string {
	c, source := app.Service.Catalog(ctx, consoleID)

	var sb strings.Builder
	title := "Default catalog"
	if consoleID != "" {
		title = fmt.Sprintf("Catalog for %s", consoleID)
	}
	fmt.Fprintf(&sb, "# %s\n\n_source: %s_\n\n", title, source)

	if app.Catalogs != nil && consoleID != "" {
		if notes, err := app.Catalogs.Notes(ctx, consoleID); err == nil && notes != "" {
			sb.WriteString(notes + "\n\n")
		}
	}

	for _, step := range c.StepNumbers() {
		fmt.Fprintf(&sb, "## Step %d\n\n", step)
		for _, q := range c.ForStep(step) {
			fmt.Fprintf(&sb, "**%s** (`%s`)\n\n", q.Text, q.ID)
			for _, opt := range q.Options {
				if opt.Deduction != 0 {
					fmt.Fprintf(&sb, "- %s `%s` (%+d)\n", opt.Label, opt.Value, opt.Deduction)
					continue
				}
				fmt.Fprintf(&sb, "- %s `%s`\n", opt.Label, opt.Value)
			}
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
