package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/tradein/pkg/domain"
	"gopkg.in/yaml.v3"
)

// Document is the on-disk shape of a catalog file.
type Document struct {
	Console   string            `yaml:"console,omitempty" json:"console,omitempty"`
	Questions []domain.Question `yaml:"questions" json:"questions"`
}

// Parse decodes a catalog from YAML or JSON, chosen by ext (".json" or anything else for YAML).
func Parse(data []byte, ext string) (domain.Catalog, error) {
	var doc Document
	if strings.ToLower(ext) == ".json" {
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse catalog json: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse catalog yaml: %w", err)
		}
	}
	return domain.Catalog(doc.Questions), nil
}

// LoadFile reads and parses a single catalog file.
func LoadFile(path string) (domain.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(data, filepath.Ext(path))
}
