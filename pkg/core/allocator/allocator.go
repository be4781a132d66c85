package allocator

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/jakechorley/seva-rota/pkg/core/model"
)

// Allocator randomizes one service kind across a week
type Allocator struct {
	kind     model.ServiceKind
	zones    []model.Zone
	pool     []string
	criteria []Criterion
	rng      *rand.Rand

	// working is the deep copy being filled; criteria see it as "the schedule so far"
	working model.Week
	outcome *AllocationOutcome
}

// Allocate assigns a volunteer to every zone of every service of the configured kind.
//
// For each day a fresh shuffle of the pool is taken. Zones are filled in order with the
// first candidate that all criteria accept; if none is left, the front of the remaining
// pool is taken instead (a fallback). Candidates are consumed per day; once the day's
// pool runs out the remaining zones keep their prior value and are reported as unfilled.
//
// The input week is not modified. Services of the other kind are untouched.
func Allocate(config AllocationConfig) (*AllocationOutcome, error) {
	if !config.Kind.IsValid() {
		return nil, fmt.Errorf("invalid service kind %q", config.Kind)
	}

	allocator := newAllocator(config)

	for dayIdx, day := range allocator.working {
		if day == nil {
			continue
		}
		for serviceIdx, service := range day.Services {
			if service == nil || service.Kind() != allocator.kind {
				continue
			}
			allocator.allocateService(dayIdx, serviceIdx, day, service)
		}
	}

	return allocator.outcome, nil
}

func newAllocator(config AllocationConfig) *Allocator {
	rng := config.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	criteria := config.Criteria
	if len(criteria) == 0 {
		checker := NewConflictChecker(config.History, config.WeekID)
		criteria = []Criterion{NewMonthlyZoneRepeatCriterion(checker)}
	}

	// Blank names can never fill a slot
	pool := make([]string, 0, len(config.Pool))
	for _, name := range config.Pool {
		if strings.TrimSpace(name) != "" {
			pool = append(pool, name)
		}
	}

	working := config.Week.Clone()

	return &Allocator{
		kind:     config.Kind,
		zones:    config.Zones,
		pool:     pool,
		criteria: criteria,
		rng:      rng,
		working:  working,
		outcome: &AllocationOutcome{
			Week:        working,
			Assignments: []Assignment{},
			Unfilled:    []Slot{},
		},
	}
}

// allocateService fills every zone of one service
func (a *Allocator) allocateService(dayIdx, serviceIdx int, day *model.DaySchedule, service *model.Service) {
	date, hasDate := model.ParseDayDate(day.Date)
	if service.Allocations == nil {
		service.Allocations = make(model.ZoneAllocation, len(a.zones))
	}

	candidates := a.shuffledPool()

	for _, zone := range a.zones {
		slot := Slot{
			DayIndex:     dayIdx,
			ServiceIndex: serviceIdx,
			ZoneID:       zone.ID,
			Date:         date,
			HasDate:      hasDate,
		}

		if len(candidates) == 0 {
			a.outcome.Unfilled = append(a.outcome.Unfilled, slot)
			continue
		}

		idx := a.firstValidCandidate(candidates, slot)
		fallback := idx < 0
		if fallback {
			idx = 0
		}

		volunteer := candidates[idx]
		candidates = slices.Delete(candidates, idx, idx+1)
		service.Allocations[zone.ID] = volunteer

		a.outcome.Assignments = append(a.outcome.Assignments, Assignment{
			Slot:      slot,
			Volunteer: volunteer,
			Fallback:  fallback,
		})
	}
}

// firstValidCandidate returns the index of the first candidate every criterion accepts, or -1
func (a *Allocator) firstValidCandidate(candidates []string, slot Slot) int {
	for i, candidate := range candidates {
		if a.isCandidateValid(candidate, slot) {
			return i
		}
	}
	return -1
}

func (a *Allocator) isCandidateValid(candidate string, slot Slot) bool {
	for _, criterion := range a.criteria {
		if !criterion.IsCandidateValid(a.working, candidate, slot) {
			return false
		}
	}
	return true
}

// shuffledPool returns a uniformly shuffled copy of the pool
func (a *Allocator) shuffledPool() []string {
	shuffled := slices.Clone(a.pool)
	a.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}
