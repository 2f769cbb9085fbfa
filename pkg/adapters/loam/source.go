// Package loam serves per-console question catalogs from a directory of
// markdown (frontmatter), YAML or JSON documents managed by Loam.
package loam

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/aretw0/loam"
	"github.com/aretw0/tradein/pkg/domain"
)

var extensions = []string{".md", ".yaml", ".yml", ".json"}

// Source adapts a Loam repository to ports.CatalogSource.
type Source struct {
	Repo *loam.TypedRepository[CatalogMetadata]
	dir  string

	mu    sync.RWMutex
	cache map[string]domain.Catalog
}

// New wraps an existing typed repository rooted at dir.
func New(repo *loam.TypedRepository[CatalogMetadata], dir string) *Source {
	return &Source{
		Repo:  repo,
		dir:   dir,
		cache: make(map[string]domain.Catalog),
	}
}

// Open initializes a read-only Loam repository over dir.
func Open(dir string) (*Source, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}
	// Strict mode keeps numbers as json.Number across markdown, YAML and JSON.
	repo, err := loam.Init(absPath,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}
	return New(loam.NewTypedRepository[CatalogMetadata](repo), absPath), nil
}

// Catalog returns the catalog document of a console.
func (s *Source) Catalog(ctx context.Context, consoleID string) (domain.Catalog, error) {
	if consoleID == "" || strings.ContainsAny(consoleID, `/\`) || strings.Contains(consoleID, "..") {
		return nil, fmt.Errorf("catalog %q: %w", consoleID, domain.ErrNotFound)
	}

	s.mu.RLock()
	cached, ok := s.cache[consoleID]
	s.mu.RUnlock()
	if ok {
		return cached.Clone(), nil
	}

	if !s.exists(consoleID) {
		return nil, fmt.Errorf("catalog %s: %w", consoleID, domain.ErrNotFound)
	}

	doc, err := s.Repo.Get(ctx, consoleID)
	if err != nil {
		return nil, fmt.Errorf("loam get failed for %s: %w", consoleID, err)
	}
	cat := domain.Catalog(doc.Data.Questions)

	s.mu.Lock()
	s.cache[consoleID] = cat.Clone()
	s.mu.Unlock()
	return cat, nil
}

// Notes returns the markdown body of a console's catalog document.
func (s *Source) Notes(ctx context.Context, consoleID string) (string, error) {
	if !s.exists(consoleID) {
		return "", fmt.Errorf("catalog %s: %w", consoleID, domain.ErrNotFound)
	}
	doc, err := s.Repo.Get(ctx, consoleID)
	if err != nil {
		return "", fmt.Errorf("loam get failed for %s: %w", consoleID, err)
	}
	return strings.TrimSpace(doc.Content), nil
}

// List returns the console ids that have a catalog document.
func (s *Source) List(ctx context.Context) ([]string, error) {
	docs, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	seen := make(map[string]string)
	ids := make([]string, 0, len(docs))
	for _, doc := range docs {
		id := trimExtension(doc.ID)
		if doc.Data.Console != "" && doc.Data.Console != id {
			return nil, fmt.Errorf("document '%s' declares console '%s'", doc.ID, doc.Data.Console)
		}
		if existing, ok := seen[id]; ok {
			return nil, fmt.Errorf("collision detected: console '%s' is defined in both '%s' and '%s'", id, existing, doc.ID)
		}
		seen[id] = doc.ID
		ids = append(ids, id)
	}
	return ids, nil
}

// Watch drops cached catalogs whenever their documents change. It returns
// once the watcher is running; changed ids are forwarded on the channel.
func (s *Source) Watch(ctx context.Context) (<-chan string, error) {
	events, err := s.Repo.Watch(ctx, "**/*.{md,json,yaml,yml}")
	if err != nil {
		return nil, fmt.Errorf("failed to start loam watcher: %w", err)
	}

	ch := make(chan string, 1)
	go func() {
		defer close(ch)
		for {
			select {
			case <-ctx.Done():
				return
			case evt, ok := <-events:
				if !ok {
					return
				}
				id := trimExtension(evt.ID)
				s.Invalidate(id)
				select {
				case ch <- id:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return ch, nil
}

// Invalidate drops one cached catalog.
func (s *Source) Invalidate(consoleID string) {
	s.mu.Lock()
	delete(s.cache, consoleID)
	s.mu.Unlock()
}

func (s *Source) exists(consoleID string) bool {
	for _, ext := range extensions {
		_, err := os.Stat(filepath.Join(s.dir, consoleID+ext))
		if err == nil {
			return true
		}
		if !errors.Is(err, os.ErrNotExist) {
			return true
		}
	}
	return false
}

func trimExtension(id string) string {
	ext := filepath.Ext(id)
	if ext != "" {
		return filepath.ToSlash(strings.TrimSuffix(id, ext))
	}
	return filepath.ToSlash(id)
}
