// Copyright (c) 2026 Dream Labs Inc. All Rights Reserved.
// This is licensed software from Dream Labs Inc, for limitations
// and restrictions contact your company contract manager.

package service

import (
	"context"
	"fmt"
	"os"

	"github.com/dreamlabs/season-progression/pkg/season"

	"gopkg.in/yaml.v3"
)

// CatalogFile is the YAML layout of a season catalog file.
type CatalogFile struct {
	Seasons []season.Season `yaml:"seasons"`
}

// LoadCatalogFile loads and validates a season catalog from a YAML file.
func LoadCatalogFile(path string) (*CatalogFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	var catalog CatalogFile
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse YAML catalog: %w", err)
	}

	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	return &catalog, nil
}

// Validate checks the catalog for structural errors. Overlapping season
// windows are not rejected here: the resolver handles overlap deterministically
// and catalog integrity is an administrative concern.
func (c *CatalogFile) Validate() error {
	ids := make(map[string]bool)
	for _, s := range c.Seasons {
		if s.SeasonID == "" {
			return fmt.Errorf("season with empty ID found")
		}
		if ids[s.SeasonID] {
			return fmt.Errorf("duplicate season ID: %s", s.SeasonID)
		}
		ids[s.SeasonID] = true

		if !s.StartTime.Before(s.EndTime) {
			return fmt.Errorf("season %s start time must be before end time", s.SeasonID)
		}
	}
	return nil
}

// FileCatalogStore implements SeasonCatalogStore over a catalog file loaded at
// startup. It preserves the file's document order, which makes it the direct
// expression of "first match in catalog iteration order". Used for local runs
// and for seeding the Redis catalog.
type FileCatalogStore struct {
	seasons []season.Season
}

// NewFileCatalogStore creates a catalog store from an already-loaded file.
func NewFileCatalogStore(catalog *CatalogFile) *FileCatalogStore {
	return &FileCatalogStore{seasons: catalog.Seasons}
}

// FetchAllSeasons returns the loaded season definitions in file order.
func (f *FileCatalogStore) FetchAllSeasons(ctx context.Context) ([]season.Season, error) {
	out := make([]season.Season, len(f.seasons))
	copy(out, f.seasons)
	return out, nil
}
