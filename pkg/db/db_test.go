package db

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/seva-rota/pkg/core/model"
	"github.com/jakechorley/seva-rota/pkg/core/seed"
)

// mockKV is an in-memory KV backend
type mockKV struct {
	values map[string][]byte
	getErr error
	puts   []string
}

func newMockKV() *mockKV {
	return &mockKV{values: map[string][]byte{}}
}

func (m *mockKV) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	value, ok := m.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return value, nil
}

func (m *mockKV) Put(ctx context.Context, key string, value []byte) error {
	m.values[key] = value
	m.puts = append(m.puts, key)
	return nil
}

func newTestDB(kv KV) *DB {
	return New(kv, zap.NewNop(), Defaults{})
}

func TestLoadPools_AbsentUsesDefaults(t *testing.T) {
	db := newTestDB(newMockKV())

	pools, err := db.LoadPools(context.Background())
	require.NoError(t, err)

	defaults := seed.DefaultPools()
	assert.Equal(t, defaults.Stage, pools.Stage)
	assert.Equal(t, defaults.Sanchalan, pools.Sanchalan)
	assert.Equal(t, []string{}, pools.GyanPracharaks)
}

func TestLoadPools_MalformedAndEmptyUseDefaults(t *testing.T) {
	kv := newMockKV()
	kv.values[KeyStageVolunteers] = []byte("{not json")
	kv.values[KeySanchalanVolunteers] = []byte("[]")
	kv.values[KeyGyanPracharaks] = []byte("oops")
	db := newTestDB(kv)

	pools, err := db.LoadPools(context.Background())
	require.NoError(t, err)

	assert.Equal(t, seed.DefaultPools().Stage, pools.Stage)
	assert.Equal(t, seed.DefaultPools().Sanchalan, pools.Sanchalan)
	assert.Empty(t, pools.GyanPracharaks)
}

func TestLoadPools_StoredValuesKept(t *testing.T) {
	kv := newMockKV()
	kv.values[KeyStageVolunteers] = []byte(`["A Ji","B Ji"]`)
	kv.values[KeySanchalanVolunteers] = []byte(`["C Ji"]`)
	kv.values[KeyGyanPracharaks] = []byte(`[]`)
	db := newTestDB(kv)

	pools, err := db.LoadPools(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"A Ji", "B Ji"}, pools.Stage)
	assert.Equal(t, []string{"C Ji"}, pools.Sanchalan)
	assert.Equal(t, []string{}, pools.GyanPracharaks)
}

func TestLoadPools_BackendErrorIsReturned(t *testing.T) {
	kv := newMockKV()
	kv.getErr = errors.New("disk on fire")
	db := newTestDB(kv)

	_, err := db.LoadPools(context.Background())
	assert.ErrorContains(t, err, "disk on fire")
}

func TestSavePool(t *testing.T) {
	kv := newMockKV()
	db := newTestDB(kv)

	require.NoError(t, db.SavePool(context.Background(), model.PoolGyanPracharaks, nil))
	assert.Equal(t, "[]", string(kv.values[KeyGyanPracharaks]))

	require.NoError(t, db.SavePool(context.Background(), model.PoolStage, []string{"A Ji"}))
	assert.Equal(t, `["A Ji"]`, string(kv.values[KeyStageVolunteers]))

	assert.Error(t, db.SavePool(context.Background(), model.PoolName("evening"), []string{"A"}))
}

func TestLoadSchedules_AbsentUsesInitialStore(t *testing.T) {
	db := newTestDB(newMockKV())

	store, err := db.LoadSchedules(context.Background())
	require.NoError(t, err)

	require.Contains(t, store, "2025-03-31")
	assert.Equal(t, "Sheetal Dola Ji", store["2025-03-31"][0].Services[0].Allocations["zone_1"])
}

func TestLoadSchedules_MalformedUsesInitialStore(t *testing.T) {
	kv := newMockKV()
	kv.values[KeyScheduleStore] = []byte(`["not", "a", "map"]`)
	db := newTestDB(kv)

	store, err := db.LoadSchedules(context.Background())
	require.NoError(t, err)
	assert.Len(t, store, 1)
}

func TestSchedules_RoundTrip(t *testing.T) {
	kv := newMockKV()
	db := newTestDB(kv)

	week, err := seed.BlankWeek(seed.SeedWeekStart.AddDate(0, 0, 7), seed.DefaultZones())
	require.NoError(t, err)
	week[2].Services[1].Allocations["zone_4"] = "Ravi Ji"
	store := model.ScheduleStore{"2025-04-07": week}

	require.NoError(t, db.SaveSchedules(context.Background(), store))

	var raw map[string]any
	require.NoError(t, json.Unmarshal(kv.values[KeyScheduleStore], &raw))
	assert.Contains(t, raw, "2025-04-07")

	loaded, err := db.LoadSchedules(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Ravi Ji", loaded["2025-04-07"][2].Services[1].Allocations["zone_4"])
	assert.Equal(t, "09.04.25", loaded["2025-04-07"][2].Date)
}

func TestLoadZones(t *testing.T) {
	kv := newMockKV()
	db := newTestDB(kv)

	zones, err := db.LoadZones(context.Background())
	require.NoError(t, err)
	assert.Equal(t, seed.DefaultZones(), zones)

	custom := []model.Zone{{ID: "north", Name: "North Gate", Time: "7 - 8"}}
	require.NoError(t, db.SaveZones(context.Background(), custom))
	zones, err = db.LoadZones(context.Background())
	require.NoError(t, err)
	assert.Equal(t, custom, zones)

	kv.values[KeyZones] = []byte(`[{"name":"No ID"}]`)
	zones, err = db.LoadZones(context.Background())
	require.NoError(t, err)
	assert.Equal(t, seed.DefaultZones(), zones)
}

func TestNew_CustomDefaults(t *testing.T) {
	defaults := Defaults{
		Zones: []model.Zone{{ID: "z1", Name: "Gate"}},
		Pools: model.VolunteerPools{Stage: []string{"S Ji"}},
	}
	db := New(newMockKV(), zap.NewNop(), defaults)

	pools, err := db.LoadPools(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"S Ji"}, pools.Stage)
	assert.Equal(t, seed.DefaultPools().Sanchalan, pools.Sanchalan)

	zones, err := db.LoadZones(context.Background())
	require.NoError(t, err)
	assert.Equal(t, defaults.Zones, zones)
}
