// Package srid implements the SRID/CRS catalog, one of the two process-wide
// shared resources the core consults read-only (§5, §9 "Global state").
package srid

import "sync"

// Entry describes one catalog entry: a human-readable name and whether the
// SRID is geodetic (lon/lat on a sphere/ellipsoid) rather than planar.
type Entry struct {
	Name     string
	Geodetic bool
}

// Catalog is a thread-safe, read-mostly SRID table. The zero value is a
// usable empty catalog; use Default for the package-wide instance seeded
// with WGS84 and "unknown" (SRID 0).
type Catalog struct {
	mu      sync.RWMutex
	entries map[int32]Entry
}

// NewCatalog returns an empty Catalog.
func NewCatalog() *Catalog {
	return &Catalog{entries: make(map[int32]Entry)}
}

// Register adds or replaces the entry for srid.
func (c *Catalog) Register(srid int32, e Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.entries == nil {
		c.entries = make(map[int32]Entry)
	}
	c.entries[srid] = e
}

// Lookup returns the entry for srid, if registered.
func (c *Catalog) Lookup(srid int32) (Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[srid]

	return e, ok
}

// IsGeodetic reports whether srid is a known geodetic SRID. Unknown SRIDs
// are treated as planar.
func (c *Catalog) IsGeodetic(srid int32) bool {
	e, ok := c.Lookup(srid)

	return ok && e.Geodetic
}

// Default is the process-wide SRID catalog, pre-seeded with the handful of
// SRIDs tempo's own tests and parser rely on. Applications may Register
// additional entries; all reads are safe for concurrent use.
var Default = newDefault()

func newDefault() *Catalog {
	c := NewCatalog()
	c.Register(0, Entry{Name: "Unknown", Geodetic: false})
	c.Register(4326, Entry{Name: "WGS 84", Geodetic: true})
	c.Register(3857, Entry{Name: "Web Mercator", Geodetic: false})
	c.Register(2154, Entry{Name: "RGF93 / Lambert-93", Geodetic: false})

	return c
}
