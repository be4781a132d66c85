package db

import (
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/jakechorley/seva-rota/pkg/core/model"
)

var poolKeys = map[model.PoolName]string{
	model.PoolStage:          KeyStageVolunteers,
	model.PoolSanchalan:      KeySanchalanVolunteers,
	model.PoolGyanPracharaks: KeyGyanPracharaks,
}

// LoadPools reads the three volunteer pools.
// Stage and Sanchalan fall back to the defaults when absent, malformed or empty.
// Gyan pracharaks fall back only when absent or malformed; a stored empty list is kept.
func (db *DB) LoadPools(ctx context.Context) (model.VolunteerPools, error) {
	stage, err := db.loadPool(ctx, model.PoolStage, false)
	if err != nil {
		return model.VolunteerPools{}, err
	}
	sanchalan, err := db.loadPool(ctx, model.PoolSanchalan, false)
	if err != nil {
		return model.VolunteerPools{}, err
	}
	gyanPracharaks, err := db.loadPool(ctx, model.PoolGyanPracharaks, true)
	if err != nil {
		return model.VolunteerPools{}, err
	}

	return model.VolunteerPools{
		Stage:          stage,
		Sanchalan:      sanchalan,
		GyanPracharaks: gyanPracharaks,
	}, nil
}

func (db *DB) loadPool(ctx context.Context, name model.PoolName, allowEmpty bool) ([]string, error) {
	var names []string
	found, err := db.getJSON(ctx, poolKeys[name], &names)
	if err != nil {
		return nil, err
	}

	if !found || (!allowEmpty && len(names) == 0) {
		return slices.Clone(db.defaults.Pools.Get(name)), nil
	}
	if names == nil {
		// "null" decodes to nil
		names = []string{}
	}
	return names, nil
}

// SavePool persists one pool
func (db *DB) SavePool(ctx context.Context, name model.PoolName, names []string) error {
	key, ok := poolKeys[name]
	if !ok {
		return fmt.Errorf("unknown volunteer pool %q", name)
	}
	if names == nil {
		names = []string{}
	}

	if err := db.putJSON(ctx, key, names); err != nil {
		return fmt.Errorf("failed to save %s pool: %w", name, err)
	}
	db.logger.Info("Saved volunteer pool", zap.String("pool", string(name)), zap.Int("count", len(names)))
	return nil
}
