// Package catalog models the structure catalog an external component
// supplies: structure definitions grouped into categories, each
// category carrying a default rendering layer. The converter only
// reads catalogs; nothing here mutates one after loading.
package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/shipgrid/pkg/grid"
)

// Catalog errors.
var (
	ErrInvalidCatalog = errors.New("invalid catalog data")
)

// Structure is one buildable structure definition.
type Structure struct {
	ID     int    `yaml:"id"`     // Numeric type code used by save files
	Name   string `yaml:"name"`   // Display name
	Width  int    `yaml:"width"`  // Footprint width in tiles
	Height int    `yaml:"height"` // Footprint height in tiles
	Color  string `yaml:"color"`  // Render color, "#rrggbb"
}

// Category groups structures and assigns their default layer.
type Category struct {
	ID         string      `yaml:"id"`
	Name       string      `yaml:"name"`
	Layer      grid.Layer  `yaml:"layer"`
	Structures []Structure `yaml:"structures"`
}

// Catalog is the full structure catalog.
type Catalog struct {
	Categories []Category `yaml:"categories"`
}

// Entry is one indexed catalog structure with its resolved category
// and layer.
type Entry struct {
	Structure  Structure
	CategoryID string
	Layer      grid.Layer
}

// Index builds a type-code lookup over the catalog in one pass.
// Identifiers are expected to be unique; on a collision the last
// definition wins.
func (c *Catalog) Index() map[int]Entry {
	idx := make(map[int]Entry)
	for _, cat := range c.Categories {
		for _, s := range cat.Structures {
			idx[s.ID] = Entry{
				Structure:  s,
				CategoryID: cat.ID,
				Layer:      cat.Layer,
			}
		}
	}
	return idx
}

// Len returns the total number of structure definitions.
func (c *Catalog) Len() int {
	n := 0
	for _, cat := range c.Categories {
		n += len(cat.Structures)
	}
	return n
}

// Load parses a catalog from YAML bytes.
func Load(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	return &c, nil
}

// LoadFile parses a catalog from a YAML file on disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	return Load(data)
}
