// Package catalog indexes device types from brand packs so they can be imported into a layout by slug.
package catalog

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/braunma/rackplanner/pkg/models"
	"github.com/braunma/rackplanner/pkg/utils"
)

// Catalog is a slug-indexed set of device types grouped by brand pack
type Catalog struct {
	types  map[string]models.DeviceType
	packs  map[string][]string
	logger *utils.Logger
	mu     sync.RWMutex
}

// New creates an empty catalog
func New(logger *utils.Logger) *Catalog {
	if logger == nil {
		logger = utils.NewLogger(false)
	}
	return &Catalog{
		types:  make(map[string]models.DeviceType),
		packs:  make(map[string][]string),
		logger: logger,
	}
}

// Load adds the device types of a brand pack. Loading a pack again replaces it.
// A slug already provided by another pack is skipped with a warning.
func (c *Catalog) Load(pack string, types []models.DeviceType) error {
	for _, dt := range types {
		if err := models.ValidateDeviceType(dt); err != nil {
			return fmt.Errorf("pack %s: %w", pack, err)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.invalidate(pack)

	slugs := make([]string, 0, len(types))
	for _, dt := range types {
		if _, exists := c.types[dt.Slug]; exists {
			c.logger.Warning("Device type %s from pack %s already in catalog, skipping", dt.Slug, pack)
			continue
		}
		c.types[dt.Slug] = dt.Clone()
		slugs = append(slugs, dt.Slug)
	}
	c.packs[pack] = slugs

	c.logger.Debug("→ %s: %d device types", pack, len(slugs))
	return nil
}

// Get returns the device type with the given slug
func (c *Catalog) Get(slug string) (models.DeviceType, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	dt, ok := c.types[slug]
	if !ok {
		return models.DeviceType{}, false
	}
	return dt.Clone(), true
}

// Slugs returns every slug in the catalog, sorted
func (c *Catalog) Slugs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	slugs := make([]string, 0, len(c.types))
	for slug := range c.types {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	return slugs
}

// Packs returns the loaded pack names, sorted
func (c *Catalog) Packs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	packs := make([]string, 0, len(c.packs))
	for pack := range c.packs {
		packs = append(packs, pack)
	}
	sort.Strings(packs)
	return packs
}

// Pack returns the device types of one pack in load order
func (c *Catalog) Pack(pack string) []models.DeviceType {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.DeviceType, 0, len(c.packs[pack]))
	for _, slug := range c.packs[pack] {
		out = append(out, c.types[slug].Clone())
	}
	return out
}

// Search returns the device types whose slug, model or manufacturer contains query
// or that carry query as a tag, all case-insensitively. Results are sorted by slug.
func (c *Catalog) Search(query string) []models.DeviceType {
	q := strings.ToLower(strings.TrimSpace(query))

	var out []models.DeviceType
	for _, slug := range c.Slugs() {
		dt, _ := c.Get(slug)
		if q == "" ||
			strings.Contains(dt.Slug, q) ||
			strings.Contains(strings.ToLower(dt.Model), q) ||
			strings.Contains(strings.ToLower(dt.Manufacturer), q) ||
			utils.ContainsFold(dt.Tags, q) {
			out = append(out, dt)
		}
	}
	return out
}

// Invalidate drops a pack and its device types
func (c *Catalog) Invalidate(pack string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.invalidate(pack)
}

// InvalidateAll empties the catalog
func (c *Catalog) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.types = make(map[string]models.DeviceType)
	c.packs = make(map[string][]string)
}

// Size returns the number of device types in the catalog
func (c *Catalog) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.types)
}

func (c *Catalog) invalidate(pack string) {
	for _, slug := range c.packs[pack] {
		delete(c.types, slug)
	}
	delete(c.packs, pack)
}
