/*
loader.go - Catalog file loading and validation

PURPOSE:
  Lets an office override the stock catalog with a config file. YAML and
  JSON are both accepted through the same path: yaml.Unmarshal parses
  either, since YAML is a superset of JSON.

VALIDATION:
  - every program and service needs a non-empty ID and label/name
  - IDs are unique across the whole document (services across categories
    too, since the quote grid keys cells by service ID alone)
*/
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFromFile reads a catalog from a YAML or JSON file.
func LoadFromFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("catalog validation failed: %w", err)
	}
	return &c, nil
}

// Validate checks structural invariants of the catalog document.
func (c *Catalog) Validate() error {
	if len(c.Programs) == 0 {
		return fmt.Errorf("at least one loan program is required")
	}

	programIDs := make(map[string]bool)
	for i, p := range c.Programs {
		if p.ID == "" || p.Label == "" {
			return fmt.Errorf("program %d: id and label are required", i)
		}
		if programIDs[p.ID] {
			return fmt.Errorf("duplicate program id %q", p.ID)
		}
		programIDs[p.ID] = true
	}

	categoryIDs := make(map[string]bool)
	serviceIDs := make(map[string]bool)
	for i, cat := range c.Categories {
		if cat.ID == "" || cat.Name == "" {
			return fmt.Errorf("category %d: id and name are required", i)
		}
		if categoryIDs[cat.ID] {
			return fmt.Errorf("duplicate category id %q", cat.ID)
		}
		categoryIDs[cat.ID] = true

		for j, svc := range cat.Services {
			if svc.ID == "" || svc.Name == "" {
				return fmt.Errorf("category %q service %d: id and name are required", cat.ID, j)
			}
			if serviceIDs[svc.ID] {
				return fmt.Errorf("duplicate service id %q", svc.ID)
			}
			serviceIDs[svc.ID] = true
		}
	}
	return nil
}
