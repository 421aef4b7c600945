package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"travelstore/internal/domain"
	"travelstore/internal/domain/models"
)

// Catalog is an immutable snapshot of the trip inventory. Records never change
// after load; Replace swaps the whole snapshot atomically (admin reload).
type Catalog struct {
	mu    sync.RWMutex
	trips []models.Trip
}

func New(trips []models.Trip) *Catalog {
	c := &Catalog{}
	c.Replace(trips)
	return c
}

// Replace installs a new snapshot. The input slice is copied so later caller
// mutations cannot leak into the catalog.
func (c *Catalog) Replace(trips []models.Trip) {
	snapshot := make([]models.Trip, len(trips))
	copy(snapshot, trips)

	c.mu.Lock()
	c.trips = snapshot
	c.mu.Unlock()
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.trips)
}

// Trips returns a copy of the snapshot in catalog order.
func (c *Catalog) Trips() []models.Trip {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Trip, len(c.trips))
	copy(out, c.trips)
	return out
}

// Featured returns the first n trips in catalog order (the storefront shows 6).
func (c *Catalog) Featured(n int) []models.Trip {
	trips := c.Trips()
	if n < 0 {
		n = 0
	}
	if n > len(trips) {
		n = len(trips)
	}
	return trips[:n]
}

func (c *Catalog) FindByID(id int64) (models.Trip, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, t := range c.trips {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Trip{}, domain.NotFoundError{Resource: "trip"}
}

// Search applies the query against the current snapshot.
func (c *Catalog) Search(q Query) []models.Trip {
	return Search(c.Trips(), q)
}

// LoadFile reads a catalog from a JSON file (the storefront's seed data).
func LoadFile(path string) ([]models.Trip, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	var trips []models.Trip
	if err := json.Unmarshal(raw, &trips); err != nil {
		return nil, fmt.Errorf("decode catalog file: %w", err)
	}
	return trips, nil
}
