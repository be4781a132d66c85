package services

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/seva-rota/pkg/core/model"
	"github.com/jakechorley/seva-rota/pkg/core/seed"
)

// mockSessionStore implements SessionStore in memory
type mockSessionStore struct {
	pools     model.VolunteerPools
	schedules model.ScheduleStore
	zones     []model.Zone

	savedSchedules int
	saveErr        error
}

func newMockSessionStore() *mockSessionStore {
	return &mockSessionStore{
		pools: model.VolunteerPools{
			Stage:          []string{"Asha Ji", "Bhanu Ji", "Chetan Ji", "Deepa Ji"},
			Sanchalan:      []string{"Ekta Ji", "Farhan Ji", "Gita Ji"},
			GyanPracharaks: []string{},
		},
		schedules: seed.InitialStore(),
		zones: []model.Zone{
			{ID: "zone_1", Name: "Restcamp", Time: "8 - 9"},
			{ID: "zone_2", Name: "Bypass", Time: "8 - 9"},
		},
	}
}

func (m *mockSessionStore) LoadPools(ctx context.Context) (model.VolunteerPools, error) {
	return m.pools, nil
}

func (m *mockSessionStore) SavePool(ctx context.Context, name model.PoolName, names []string) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.pools = m.pools.With(name, names)
	return nil
}

func (m *mockSessionStore) LoadSchedules(ctx context.Context) (model.ScheduleStore, error) {
	return m.schedules, nil
}

func (m *mockSessionStore) SaveSchedules(ctx context.Context, store model.ScheduleStore) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.savedSchedules++
	return nil
}

func (m *mockSessionStore) LoadZones(ctx context.Context) ([]model.Zone, error) {
	return m.zones, nil
}

func (m *mockSessionStore) SaveZones(ctx context.Context, zones []model.Zone) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.zones = zones
	return nil
}

// scriptedPrompter answers prompts with a fixed response and records the questions
type scriptedPrompter struct {
	answer   bool
	messages []string
}

func (p *scriptedPrompter) Confirm(message string) bool {
	p.messages = append(p.messages, message)
	return p.answer
}

func openTestSession(t *testing.T, store *mockSessionStore, prompter Prompter, start time.Time) *Session {
	t.Helper()
	session, err := OpenSession(context.Background(), store, zap.NewNop(), prompter, SessionOptions{
		StartWeek: start,
		Rand:      rand.New(rand.NewPCG(7, 7)),
	})
	require.NoError(t, err)
	return session
}

var april7 = time.Date(2025, time.April, 9, 0, 0, 0, 0, time.UTC)

func TestOpenSession_LoadsSavedWeek(t *testing.T) {
	session := openTestSession(t, newMockSessionStore(), nil, seed.SeedWeekStart.AddDate(0, 0, 3))

	assert.Equal(t, "2025-03-31", session.WeekID())
	assert.Equal(t, "31.03.2025 सोमवार से दिनांक 05.04.2025 शनिवार तक", session.Title())
	assert.Equal(t, "Sheetal Dola Ji", session.Week()[0].Services[0].Allocations["zone_1"])
	assert.False(t, session.IsDirty())
	assert.NotEmpty(t, session.ID)
}

func TestOpenSession_GeneratesBlankWeek(t *testing.T) {
	session := openTestSession(t, newMockSessionStore(), nil, april7)

	assert.Equal(t, "2025-04-07", session.WeekID())
	week := session.Week()
	require.Len(t, week, model.DaysPerWeek)
	assert.Equal(t, "07.04.25", week[0].Date)
	assert.Equal(t, "12.04.25", week[5].Date)
	assert.Equal(t, "", week[0].Services[0].Allocations["zone_2"])
}

func TestSession_SetCellMarksDirtyAndSaves(t *testing.T) {
	store := newMockSessionStore()
	session := openTestSession(t, store, nil, april7)

	result, err := session.SetCell(1, 0, "zone_2", "Asha Ji")
	require.NoError(t, err)
	assert.True(t, result.Accepted)
	assert.True(t, session.IsDirty())

	require.NoError(t, session.Save(context.Background()))
	assert.False(t, session.IsDirty())
	assert.Equal(t, 1, store.savedSchedules)
	assert.Equal(t, "Asha Ji", store.schedules["2025-04-07"][1].Services[0].Allocations["zone_2"])

	// The saved copy is independent of later edits
	_, err = session.SetCell(1, 0, "zone_2", "")
	require.NoError(t, err)
	assert.Equal(t, "Asha Ji", store.schedules["2025-04-07"][1].Services[0].Allocations["zone_2"])
}

func TestSession_SetCellConflictDeclined(t *testing.T) {
	prompter := &scriptedPrompter{answer: false}
	session := openTestSession(t, newMockSessionStore(), prompter, april7)

	// Badoni Ji served Restcamp on 01.04.25
	result, err := session.SetCell(2, 0, "zone_1", "Badoni Ji")
	require.NoError(t, err)

	assert.False(t, result.Accepted)
	assert.False(t, session.IsDirty())
	assert.Equal(t, "", session.Week()[2].Services[0].Allocations["zone_1"])
	require.Len(t, prompter.messages, 1)
	assert.Contains(t, prompter.messages[0], "Badoni Ji is already assigned to Restcamp on 01.04.25 this month.")
}

func TestSession_SetCellInvalidTarget(t *testing.T) {
	session := openTestSession(t, newMockSessionStore(), nil, april7)

	_, err := session.SetCell(0, 0, "zone_9", "Asha Ji")
	assert.Error(t, err)
}

func TestSession_SaveFailureKeepsDirty(t *testing.T) {
	store := newMockSessionStore()
	session := openTestSession(t, store, nil, april7)
	_, err := session.SetCell(0, 0, "zone_1", "Asha Ji")
	require.NoError(t, err)

	store.saveErr = errors.New("disk full")
	err = session.Save(context.Background())

	assert.ErrorContains(t, err, "disk full")
	assert.True(t, session.IsDirty())
	assert.NotContains(t, session.Schedules(), "2025-04-07")
}

func TestSession_NavigationGuardsUnsavedChanges(t *testing.T) {
	prompter := &scriptedPrompter{answer: false}
	session := openTestSession(t, newMockSessionStore(), prompter, april7)

	moved, err := session.NextWeek()
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, "2025-04-14", session.WeekID())
	assert.Empty(t, prompter.messages, "clean session navigates without asking")

	_, err = session.SetCell(0, 0, "zone_1", "Asha Ji")
	require.NoError(t, err)

	moved, err = session.PrevWeek()
	require.NoError(t, err)
	assert.False(t, moved)
	assert.Equal(t, "2025-04-14", session.WeekID())
	assert.Equal(t, []string{discardMessage}, prompter.messages)

	prompter.answer = true
	moved, err = session.GoToWeek(time.Date(2025, time.April, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, "2025-03-31", session.WeekID())
	assert.False(t, session.IsDirty())
}

func TestSession_RandomizeStage(t *testing.T) {
	session := openTestSession(t, newMockSessionStore(), nil, april7)
	before := session.Week()

	outcome, err := session.RandomizeStage()
	require.NoError(t, err)

	assert.True(t, session.IsDirty())
	assert.Len(t, outcome.Assignments, model.DaysPerWeek*2)
	for _, day := range session.Week() {
		for _, zoneID := range []string{"zone_1", "zone_2"} {
			assert.Contains(t, []string{"Asha Ji", "Bhanu Ji", "Chetan Ji", "Deepa Ji"}, day.Services[0].Allocations[zoneID])
			assert.Equal(t, "", day.Services[1].Allocations[zoneID], "sanchalan untouched")
		}
	}
	assert.Equal(t, "", before[0].Services[0].Allocations["zone_1"], "previous week value not modified")
}

func TestSession_RandomizeSanchalanIncludesOnlySanchalanPool(t *testing.T) {
	store := newMockSessionStore()
	store.pools.GyanPracharaks = []string{"Guru Ji"}
	session := openTestSession(t, store, nil, april7)

	_, err := session.RandomizeSanchalan()
	require.NoError(t, err)

	for _, day := range session.Week() {
		assert.NotEqual(t, "Guru Ji", day.Services[1].Allocations["zone_1"])
		assert.Contains(t, []string{"Ekta Ji", "Farhan Ji", "Gita Ji"}, day.Services[1].Allocations["zone_1"])
	}
}

func TestSession_Reset(t *testing.T) {
	prompter := &scriptedPrompter{answer: false}
	session := openTestSession(t, newMockSessionStore(), prompter, seed.SeedWeekStart)
	_, err := session.SetCell(0, 0, "zone_1", "")
	require.NoError(t, err)

	reset, err := session.Reset()
	require.NoError(t, err)
	assert.False(t, reset)
	assert.Equal(t, "", session.Week()[0].Services[0].Allocations["zone_1"])

	prompter.answer = true
	reset, err = session.Reset()
	require.NoError(t, err)
	assert.True(t, reset)
	assert.Equal(t, "Sheetal Dola Ji", session.Week()[0].Services[0].Allocations["zone_1"])
	assert.False(t, session.IsDirty())
}

func TestSession_Check(t *testing.T) {
	prompter := &scriptedPrompter{answer: true}
	session := openTestSession(t, newMockSessionStore(), prompter, april7)

	assert.Empty(t, session.Check())

	_, err := session.SetCell(0, 0, "zone_2", "Asha Ji")
	require.NoError(t, err)
	_, err = session.SetCell(3, 1, "zone_2", "Asha Ji")
	require.NoError(t, err)

	issues := session.Check()
	require.Len(t, issues, 2)
	assert.Equal(t, "Asha Ji", issues[0].Volunteer)
}

func TestSession_AddAndRemoveVolunteer(t *testing.T) {
	store := newMockSessionStore()
	session := openTestSession(t, store, nil, april7)
	ctx := context.Background()

	added, err := session.AddVolunteer(ctx, model.PoolStage, "  Aarav Ji ")
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, []string{"Aarav Ji", "Asha Ji", "Bhanu Ji", "Chetan Ji", "Deepa Ji"}, session.Pools().Stage)
	assert.Equal(t, session.Pools().Stage, store.pools.Stage)

	added, err = session.AddVolunteer(ctx, model.PoolStage, "Asha Ji")
	require.NoError(t, err)
	assert.False(t, added)

	_, err = session.AddVolunteer(ctx, model.PoolStage, " ")
	assert.Error(t, err)
	_, err = session.AddVolunteer(ctx, model.PoolName("evening"), "X")
	assert.Error(t, err)

	removed, err := session.RemoveVolunteer(ctx, model.PoolStage, "Bhanu Ji")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.NotContains(t, session.Pools().Stage, "Bhanu Ji")

	removed, err = session.RemoveVolunteer(ctx, model.PoolGyanPracharaks, "Nobody")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestSession_AddVolunteerStoreFailure(t *testing.T) {
	store := newMockSessionStore()
	session := openTestSession(t, store, nil, april7)
	store.saveErr = errors.New("read-only")

	_, err := session.AddVolunteer(context.Background(), model.PoolSanchalan, "New Ji")

	assert.Error(t, err)
	assert.NotContains(t, session.Pools().Sanchalan, "New Ji")
}

func TestSession_UpdateZone(t *testing.T) {
	store := newMockSessionStore()
	session := openTestSession(t, store, nil, april7)
	ctx := context.Background()

	zone, err := session.UpdateZone(ctx, "zone_2", ZoneFieldContact, "9876543210")
	require.NoError(t, err)
	assert.Equal(t, "9876543210", zone.Contact)
	assert.Equal(t, "9876543210", session.Zones()[1].Contact)
	assert.Equal(t, "9876543210", store.zones[1].Contact)

	_, err = session.UpdateZone(ctx, "zone_2", ZoneFieldName, "")
	assert.Error(t, err, "zone name is required")

	_, err = session.UpdateZone(ctx, "zone_7", ZoneFieldName, "Nowhere")
	assert.Error(t, err)
}

func TestParseZoneField(t *testing.T) {
	field, err := ParseZoneField("time")
	require.NoError(t, err)
	assert.Equal(t, ZoneFieldTime, field)

	_, err = ParseZoneField("id")
	assert.Error(t, err)
}
