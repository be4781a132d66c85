package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/seva-rota/pkg/core/model"
	"github.com/jakechorley/seva-rota/pkg/core/seed"
)

// Record keys
const (
	KeyStageVolunteers     = "stageVolunteers"
	KeySanchalanVolunteers = "sanchalanVolunteers"
	KeyGyanPracharaks      = "gyanPracharaks"
	KeyScheduleStore       = "scheduleStore"
	KeyZones               = "zones"
)

// Defaults are used whenever a record is absent or cannot be decoded
type Defaults struct {
	Zones []model.Zone
	Pools model.VolunteerPools
}

// DB stores the editor records as JSON documents in a KV backend
type DB struct {
	kv       KV
	logger   *zap.Logger
	defaults Defaults
}

// New creates a DB over kv. Empty defaults are replaced by the built-in zones and pools.
func New(kv KV, logger *zap.Logger, defaults Defaults) *DB {
	if len(defaults.Zones) == 0 {
		defaults.Zones = seed.DefaultZones()
	}
	builtin := seed.DefaultPools()
	if len(defaults.Pools.Stage) == 0 {
		defaults.Pools.Stage = builtin.Stage
	}
	if len(defaults.Pools.Sanchalan) == 0 {
		defaults.Pools.Sanchalan = builtin.Sanchalan
	}
	if defaults.Pools.GyanPracharaks == nil {
		defaults.Pools.GyanPracharaks = builtin.GyanPracharaks
	}

	return &DB{
		kv:       kv,
		logger:   logger,
		defaults: defaults,
	}
}

// Defaults returns the effective defaults
func (db *DB) Defaults() Defaults {
	return db.defaults
}

// getJSON decodes the record at key into dest.
// It returns found=false when the record is absent or malformed; malformed records are logged.
func (db *DB) getJSON(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := db.kv.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		db.logger.Debug("Record not found, using default", zap.String("key", key))
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		db.logger.Warn("Malformed record, using default",
			zap.String("key", key),
			zap.Error(err))
		return false, nil
	}
	return true, nil
}

func (db *DB) putJSON(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := db.kv.Put(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	db.logger.Debug("Record written", zap.String("key", key), zap.Int("bytes", len(raw)))
	return nil
}
