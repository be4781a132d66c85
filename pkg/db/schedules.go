package db

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/seva-rota/pkg/core/model"
	"github.com/jakechorley/seva-rota/pkg/core/seed"
)

// LoadSchedules reads every saved week.
// An absent or malformed store is replaced by the initial store holding the seed week.
func (db *DB) LoadSchedules(ctx context.Context) (model.ScheduleStore, error) {
	var store model.ScheduleStore
	found, err := db.getJSON(ctx, KeyScheduleStore, &store)
	if err != nil {
		return nil, err
	}
	if !found || store == nil {
		return seed.InitialStore(), nil
	}

	for weekID := range store {
		if _, err := model.ParseWeekID(weekID); err != nil {
			db.logger.Warn("Saved week has an unexpected ID", zap.String("week_id", weekID))
		}
	}

	db.logger.Debug("Loaded schedule store", zap.Int("weeks", len(store)))
	return store, nil
}

// SaveSchedules persists every saved week
func (db *DB) SaveSchedules(ctx context.Context, store model.ScheduleStore) error {
	if err := db.putJSON(ctx, KeyScheduleStore, store); err != nil {
		return fmt.Errorf("failed to save schedules: %w", err)
	}
	return nil
}
