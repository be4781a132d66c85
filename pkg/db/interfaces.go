package db

import (
	"context"
	"errors"

	"github.com/jakechorley/seva-rota/pkg/core/model"
)

// ErrNotFound is returned by a KV backend when a key has never been written
var ErrNotFound = errors.New("key not found")

// KV is the durable key-value backend the records are stored in.
// Values are opaque JSON documents.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

// Database defines the typed record operations the editor session relies on.
// db.DB implements it on top of any KV backend.
type Database interface {
	LoadPools(ctx context.Context) (model.VolunteerPools, error)
	SavePool(ctx context.Context, name model.PoolName, names []string) error
	LoadSchedules(ctx context.Context) (model.ScheduleStore, error)
	SaveSchedules(ctx context.Context, store model.ScheduleStore) error
	LoadZones(ctx context.Context) ([]model.Zone, error)
	SaveZones(ctx context.Context, zones []model.Zone) error
}
