package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakechorley/seva-rota/pkg/core/allocator"
	"github.com/jakechorley/seva-rota/pkg/core/model"
	"github.com/jakechorley/seva-rota/pkg/core/seed"
)

const (
	discardMessage = "You have unsaved changes. Discard them?"
	resetMessage   = "Reset to original/blank state?"
)

// SessionStore defines the persistence operations the editor session needs
type SessionStore interface {
	LoadPools(ctx context.Context) (model.VolunteerPools, error)
	SavePool(ctx context.Context, name model.PoolName, names []string) error
	LoadSchedules(ctx context.Context) (model.ScheduleStore, error)
	SaveSchedules(ctx context.Context, store model.ScheduleStore) error
	LoadZones(ctx context.Context) ([]model.Zone, error)
	SaveZones(ctx context.Context, zones []model.Zone) error
}

// Prompter asks the user a yes/no question
type Prompter interface {
	Confirm(message string) bool
}

// PromptFunc adapts a function to the Prompter interface
type PromptFunc func(message string) bool

func (f PromptFunc) Confirm(message string) bool {
	return f(message)
}

// SessionOptions configures a new editor session
type SessionOptions struct {
	// StartWeek is any date inside the first week shown. Defaults to the current week
	StartWeek time.Time

	// Rand drives randomization. Defaults to a time-seeded source
	Rand *rand.Rand
}

// Session is the editor state: the saved weeks, the volunteer pools, the zones and the
// in-progress copy of the week being edited. It is not safe for concurrent use.
type Session struct {
	ID string

	store    SessionStore
	logger   *zap.Logger
	prompter Prompter
	rng      *rand.Rand

	schedules model.ScheduleStore
	pools     model.VolunteerPools
	zones     []model.Zone

	weekStart time.Time
	week      model.Week
	dirty     bool
}

// OpenSession loads every record from the store and opens the start week
func OpenSession(ctx context.Context, store SessionStore, logger *zap.Logger, prompter Prompter, opts SessionOptions) (*Session, error) {
	sessionID := uuid.New().String()
	logger = logger.With(zap.String("session_id", sessionID))

	pools, err := store.LoadPools(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load volunteer pools: %w", err)
	}

	schedules, err := store.LoadSchedules(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedules: %w", err)
	}

	zones, err := store.LoadZones(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load zones: %w", err)
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if prompter == nil {
		prompter = PromptFunc(func(string) bool { return false })
	}

	start := opts.StartWeek
	if start.IsZero() {
		start = time.Now()
	}

	s := &Session{
		ID:        sessionID,
		store:     store,
		logger:    logger,
		prompter:  prompter,
		rng:       rng,
		schedules: schedules,
		pools:     pools,
		zones:     zones,
	}
	if err := s.loadWeek(start); err != nil {
		return nil, err
	}

	logger.Debug("Opened session",
		zap.String("week_id", s.WeekID()),
		zap.Int("saved_weeks", len(schedules)),
		zap.Int("zones", len(zones)),
		zap.Int("stage_volunteers", len(pools.Stage)),
		zap.Int("sanchalan_volunteers", len(pools.Sanchalan)),
		zap.Int("gyan_pracharaks", len(pools.GyanPracharaks)))

	return s, nil
}

// loadWeek makes the week containing date the in-progress week.
// A saved copy is used when there is one, otherwise the original state of the week.
func (s *Session) loadWeek(date time.Time) error {
	start := model.WeekStart(date)
	weekID := model.WeekID(start)

	var week model.Week
	if saved, ok := s.schedules[weekID]; ok {
		week = saved.Clone()
		week.EnsureZones(s.zones)
	} else {
		generated, err := seed.WeekFor(start, s.zones)
		if err != nil {
			return fmt.Errorf("failed to generate week %s: %w", weekID, err)
		}
		week = generated
	}

	s.weekStart = start
	s.week = week
	s.dirty = false

	s.logger.Debug("Loaded week", zap.String("week_id", weekID))
	return nil
}

// WeekID returns the ID of the in-progress week
func (s *Session) WeekID() string {
	return model.WeekID(s.weekStart)
}

// WeekStart returns the Monday of the in-progress week
func (s *Session) WeekStart() time.Time {
	return s.weekStart
}

// Title returns the header line for the in-progress week
func (s *Session) Title() string {
	return model.FormatWeekRange(s.weekStart)
}

// Week returns the in-progress week. Callers must treat it as read-only
func (s *Session) Week() model.Week {
	return s.week
}

// Zones returns a copy of the configured zones
func (s *Session) Zones() []model.Zone {
	return slices.Clone(s.zones)
}

// Pools returns the volunteer pools
func (s *Session) Pools() model.VolunteerPools {
	return s.pools
}

// Schedules returns every saved week
func (s *Session) Schedules() model.ScheduleStore {
	return s.schedules
}

// IsDirty reports whether the in-progress week has unsaved changes
func (s *Session) IsDirty() bool {
	return s.dirty
}

// GoToWeek switches to the week containing date.
// When there are unsaved changes the user must confirm discarding them; false is returned if they decline.
func (s *Session) GoToWeek(date time.Time) (bool, error) {
	if s.dirty && !s.prompter.Confirm(discardMessage) {
		s.logger.Debug("Navigation cancelled, unsaved changes kept", zap.String("week_id", s.WeekID()))
		return false, nil
	}

	if s.dirty {
		s.logger.Info("Discarding unsaved changes", zap.String("week_id", s.WeekID()))
	}

	if err := s.loadWeek(date); err != nil {
		return false, err
	}
	return true, nil
}

// NextWeek moves to the following week
func (s *Session) NextWeek() (bool, error) {
	return s.GoToWeek(s.weekStart.AddDate(0, 0, 7))
}

// PrevWeek moves to the preceding week
func (s *Session) PrevWeek() (bool, error) {
	return s.GoToWeek(s.weekStart.AddDate(0, 0, -7))
}

// SetCell edits one cell of the in-progress week.
// A monthly zone repeat is put to the user, and the edit is dropped if they decline.
func (s *Session) SetCell(dayIdx, serviceIdx int, zoneID, value string) (*allocator.EditResult, error) {
	checker := allocator.NewConflictChecker(s.schedules, s.WeekID())
	confirmer := allocator.ConfirmFunc(func(prompt allocator.ConflictPrompt) bool {
		return s.prompter.Confirm(prompt.Message())
	})

	result, err := allocator.ApplyCellEdit(checker, s.week, s.zones, allocator.CellEdit{
		DayIndex:     dayIdx,
		ServiceIndex: serviceIdx,
		ZoneID:       zoneID,
		Value:        value,
	}, confirmer)
	if err != nil {
		return nil, fmt.Errorf("failed to edit cell: %w", err)
	}

	if !result.Accepted {
		s.logger.Info("Edit declined",
			zap.String("volunteer", value),
			zap.String("zone_id", zoneID),
			zap.String("conflict_date", result.Conflict.Date))
		return result, nil
	}

	s.week = result.Week
	s.dirty = true

	s.logger.Debug("Cell updated",
		zap.Int("day_index", dayIdx),
		zap.Int("service_index", serviceIdx),
		zap.String("zone_id", zoneID),
		zap.String("volunteer", value),
		zap.Bool("conflict_accepted", result.Conflict.Found))

	return result, nil
}

// RandomizeStage re-allocates every Stage service of the in-progress week
func (s *Session) RandomizeStage() (*allocator.AllocationOutcome, error) {
	return s.randomize(model.KindStage)
}

// RandomizeSanchalan re-allocates every Sanchalan service of the in-progress week
func (s *Session) RandomizeSanchalan() (*allocator.AllocationOutcome, error) {
	return s.randomize(model.KindSanchalan)
}

// Randomize re-allocates every service of the given kind
func (s *Session) Randomize(kind model.ServiceKind) (*allocator.AllocationOutcome, error) {
	return s.randomize(kind)
}

func (s *Session) randomize(kind model.ServiceKind) (*allocator.AllocationOutcome, error) {
	pool := s.pools.ForKind(kind)

	s.logger.Debug("Randomizing service",
		zap.String("kind", string(kind)),
		zap.String("week_id", s.WeekID()),
		zap.Int("pool_size", len(pool)))

	outcome, err := allocator.Allocate(allocator.AllocationConfig{
		Kind:    kind,
		Week:    s.week,
		WeekID:  s.WeekID(),
		Zones:   s.zones,
		Pool:    pool,
		History: s.schedules,
		Rand:    s.rng,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to randomize %s: %w", kind, err)
	}

	s.week = outcome.Week
	s.dirty = true

	fallbacks := outcome.Fallbacks()
	for _, fallback := range fallbacks {
		s.logger.Debug("Accepted monthly zone repeat",
			zap.String("volunteer", fallback.Volunteer),
			zap.String("zone_id", fallback.Slot.ZoneID),
			zap.Int("day_index", fallback.Slot.DayIndex))
	}
	if len(outcome.Unfilled) > 0 {
		s.logger.Warn("Volunteer pool ran out, cells kept their previous value",
			zap.String("kind", string(kind)),
			zap.Int("unfilled", len(outcome.Unfilled)))
	}

	s.logger.Info("Randomized service",
		zap.String("kind", string(kind)),
		zap.Int("assigned", len(outcome.Assignments)),
		zap.Int("repeats", len(fallbacks)))

	return outcome, nil
}

// Save stores the in-progress week and persists the schedule store
func (s *Session) Save(ctx context.Context) error {
	weekID := s.WeekID()
	previous, hadPrevious := s.schedules[weekID]

	s.schedules[weekID] = s.week.Clone()
	if err := s.store.SaveSchedules(ctx, s.schedules); err != nil {
		if hadPrevious {
			s.schedules[weekID] = previous
		} else {
			delete(s.schedules, weekID)
		}
		return fmt.Errorf("failed to save week %s: %w", weekID, err)
	}

	s.dirty = false
	s.logger.Info("Saved week", zap.String("week_id", weekID))
	return nil
}

// Reset replaces the in-progress week with its original state after confirmation.
// The saved copy is not touched until the next save.
func (s *Session) Reset() (bool, error) {
	if !s.prompter.Confirm(resetMessage) {
		return false, nil
	}

	week, err := seed.WeekFor(s.weekStart, s.zones)
	if err != nil {
		return false, fmt.Errorf("failed to reset week: %w", err)
	}

	s.week = week
	s.dirty = false
	s.logger.Info("Reset week", zap.String("week_id", s.WeekID()))
	return true, nil
}

// Check lists every monthly zone repeat in the in-progress week
func (s *Session) Check() []allocator.SlotValidationError {
	checker := allocator.NewConflictChecker(s.schedules, s.WeekID())
	return allocator.ValidateWeek(checker, s.week, s.zones)
}
