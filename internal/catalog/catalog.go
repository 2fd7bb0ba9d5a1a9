// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"fmt"

	"proplib/internal/models"
)

// Catalog is the generated record set, built once at startup and read-only
// for the rest of the process lifetime. Concurrent readers need no
// synchronization because nothing mutates it after construction.
type Catalog struct {
	records []models.Component
	byID    map[string]*models.Component
}

// New generates the full catalog and indexes it by ID. The serial suffix
// should make generated names unique within a category, but nothing proves
// that for every bank combination, so duplicate IDs are rejected here
// rather than assumed away.
func New() (*Catalog, error) {
	records := Generate()

	byID := make(map[string]*models.Component, len(records))
	for i := range records {
		rec := &records[i]
		if _, exists := byID[rec.ID]; exists {
			return nil, fmt.Errorf("catalog: duplicate generated id %q", rec.ID)
		}
		byID[rec.ID] = rec
	}

	return &Catalog{records: records, byID: byID}, nil
}

// Records returns the full record set in generation order. Callers must
// treat the returned slice as read-only.
func (c *Catalog) Records() []models.Component {
	return c.records
}

// Len returns the total number of records in the catalog.
func (c *Catalog) Len() int {
	return len(c.records)
}

// FindByID returns the record with the given ID, or nil if none exists.
func (c *Catalog) FindByID(id string) *models.Component {
	return c.byID[id]
}
