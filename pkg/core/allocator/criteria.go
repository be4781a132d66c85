package allocator

import "github.com/jakechorley/seva-rota/pkg/core/model"

// Criterion decides whether a candidate volunteer is acceptable for a slot.
// Criteria act as soft preferences: the allocator prefers candidates every criterion
// accepts, and falls back to rejected candidates rather than leave a slot empty.
type Criterion interface {
	// Name returns a human-readable identifier for this criterion
	Name() string

	// IsCandidateValid reports whether assigning candidate to slot satisfies the criterion.
	// week is the working copy of the week, including allocations made earlier in the same pass
	IsCandidateValid(week model.Week, candidate string, slot Slot) bool
}

// MonthlyZoneRepeatCriterion rejects volunteers who already serve in the slot's zone
// during the slot's calendar month, in the saved history or the working week.
type MonthlyZoneRepeatCriterion struct {
	checker *ConflictChecker
}

// NewMonthlyZoneRepeatCriterion creates the criterion over a conflict checker
func NewMonthlyZoneRepeatCriterion(checker *ConflictChecker) *MonthlyZoneRepeatCriterion {
	return &MonthlyZoneRepeatCriterion{checker: checker}
}

func (c *MonthlyZoneRepeatCriterion) Name() string {
	return "MonthlyZoneRepeat"
}

func (c *MonthlyZoneRepeatCriterion) IsCandidateValid(week model.Week, candidate string, slot Slot) bool {
	// Without a date there is no month to compare against
	if !slot.HasDate {
		return true
	}
	return !c.checker.VolunteerInZoneThisMonth(candidate, slot.ZoneID, slot.Date, week).Found
}
