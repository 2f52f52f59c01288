package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/piresc/fleettrack/internal/pkg/models"
)

//go:embed stop_points.yaml
var defaultCatalog []byte

// ErrEmptyCatalog is returned when a catalog file lists no stop points
var ErrEmptyCatalog = errors.New("stop point catalog is empty")

type file struct {
	StopPoints []string `yaml:"stop_points"`
}

// Catalog is the fixed ordered list of stop points an operator may route through
type Catalog struct {
	points []models.StopPoint
	index  map[models.StopPoint]struct{}
}

// Load reads a catalog from a YAML file. An empty path loads the built-in catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Parse(defaultCatalog)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stop point catalog: %w", err)
	}
	return Parse(data)
}

// Default returns the built-in catalog
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("built-in stop point catalog: %v", err))
	}
	return c
}

// Parse decodes a YAML catalog document
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse stop point catalog: %w", err)
	}
	return New(f.StopPoints)
}

// New builds a catalog from names, rejecting blanks and duplicates
func New(names []string) (*Catalog, error) {
	if len(names) == 0 {
		return nil, ErrEmptyCatalog
	}
	c := &Catalog{
		points: make([]models.StopPoint, 0, len(names)),
		index:  make(map[models.StopPoint]struct{}, len(names)),
	}
	for i, name := range names {
		p := models.StopPoint(strings.TrimSpace(name))
		if p == "" {
			return nil, fmt.Errorf("stop point %d is blank", i)
		}
		if _, dup := c.index[p]; dup {
			return nil, fmt.Errorf("stop point %q listed twice", p)
		}
		c.index[p] = struct{}{}
		c.points = append(c.points, p)
	}
	return c, nil
}

// Contains reports whether point is in the catalog
func (c *Catalog) Contains(point models.StopPoint) bool {
	_, ok := c.index[point]
	return ok
}

// List returns the stop points in catalog order
func (c *Catalog) List() []models.StopPoint {
	return slices.Clone(c.points)
}

// Len returns the number of stop points
func (c *Catalog) Len() int {
	return len(c.points)
}
