package allocator

import (
	"math/rand/v2"
	"time"

	"github.com/jakechorley/seva-rota/pkg/core/model"
)

// Conflict is the result of a monthly zone repeat check
type Conflict struct {
	// Found is true when the volunteer already serves in the zone during the target month
	Found bool

	// Date is the dd.MM.yy date of the first matching day ("" when not found)
	Date string

	// WeekID is the week the match was found in ("" when not found)
	WeekID string
}

// Slot identifies a single cell being filled: one zone of one service on one day
type Slot struct {
	// DayIndex is the position of the day in the week (0 = Monday)
	DayIndex int

	// ServiceIndex is the position of the service within the day
	ServiceIndex int

	// ZoneID of the cell
	ZoneID string

	// Date is the parsed day date. Zero when HasDate is false
	Date time.Time

	// HasDate is false when the day's date string could not be parsed
	HasDate bool
}

// Assignment records one allocation made by the allocator
type Assignment struct {
	Slot      Slot
	Volunteer string

	// Fallback is true when no conflict-free candidate was left and a conflict was accepted
	Fallback bool
}

// SlotValidationError describes a cell whose volunteer repeats in the same zone within a month
type SlotValidationError struct {
	DayIndex      int
	Date          string
	ServiceType   string
	ZoneID        string
	Volunteer     string
	CriterionName string
	ConflictDate  string
	Description   string
}

// AllocationConfig contains the input for randomizing one service kind across a week
type AllocationConfig struct {
	// Kind selects which service of each day is (re)allocated
	Kind model.ServiceKind

	// Week is the in-progress week. It is never modified; the outcome holds a new week
	Week model.Week

	// WeekID of the in-progress week. The stored copy of this week is ignored by conflict checks
	WeekID string

	// Zones to fill, in allocation order
	Zones []model.Zone

	// Pool is the candidate volunteer list for Kind
	Pool []string

	// History is every saved week
	History model.ScheduleStore

	// Criteria decide whether a candidate is acceptable for a slot.
	// Defaults to the monthly zone repeat criterion when empty
	Criteria []Criterion

	// Rand drives the per-day shuffle. Defaults to a time-seeded source when nil
	Rand *rand.Rand
}

// AllocationOutcome represents the result of randomizing one service kind
type AllocationOutcome struct {
	// Week is the new week with the targeted service kind re-allocated
	Week model.Week

	// Assignments made, in allocation order
	Assignments []Assignment

	// Unfilled slots kept their prior value because the day ran out of candidates
	Unfilled []Slot
}

// Fallbacks returns the assignments that had to accept a monthly zone repeat
func (o *AllocationOutcome) Fallbacks() []Assignment {
	fallbacks := []Assignment{}
	for _, a := range o.Assignments {
		if a.Fallback {
			fallbacks = append(fallbacks, a)
		}
	}
	return fallbacks
}
