package db

import (
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/jakechorley/seva-rota/pkg/core/model"
)

// LoadZones reads the zone list, falling back to the defaults when absent, empty or
// when any zone lacks an ID
func (db *DB) LoadZones(ctx context.Context) ([]model.Zone, error) {
	var zones []model.Zone
	found, err := db.getJSON(ctx, KeyZones, &zones)
	if err != nil {
		return nil, err
	}
	if !found || len(zones) == 0 {
		return slices.Clone(db.defaults.Zones), nil
	}

	for _, zone := range zones {
		if zone.ID == "" {
			db.logger.Warn("Stored zone without ID, using default zones", zap.String("name", zone.Name))
			return slices.Clone(db.defaults.Zones), nil
		}
	}
	return zones, nil
}

// SaveZones persists the zone list
func (db *DB) SaveZones(ctx context.Context, zones []model.Zone) error {
	if err := db.putJSON(ctx, KeyZones, zones); err != nil {
		return fmt.Errorf("failed to save zones: %w", err)
	}
	return nil
}
