package allocator

import (
	"slices"
	"time"

	"github.com/jakechorley/seva-rota/pkg/core/model"
)

// ConflictChecker answers whether a volunteer already serves in a zone during a month.
// It scans every saved week except the one being edited, which callers supply
// separately so that unsaved edits are taken into account.
type ConflictChecker struct {
	history       model.ScheduleStore
	currentWeekID string
	weekIDs       []string
}

// NewConflictChecker creates a checker over the saved history.
// currentWeekID is the ID of the week being edited; its stored copy is skipped.
func NewConflictChecker(history model.ScheduleStore, currentWeekID string) *ConflictChecker {
	weekIDs := make([]string, 0, len(history))
	for weekID := range history {
		if weekID == currentWeekID {
			continue
		}
		weekIDs = append(weekIDs, weekID)
	}
	// yyyy-MM-dd sorts chronologically
	slices.Sort(weekIDs)

	return &ConflictChecker{
		history:       history,
		currentWeekID: currentWeekID,
		weekIDs:       weekIDs,
	}
}

// cellRef identifies a (day, service) pair of the in-progress week to leave out of a scan
type cellRef struct {
	day     int
	service int
}

var noSkip = cellRef{day: -1, service: -1}

// VolunteerInZoneThisMonth reports the first day in the target month on which the
// volunteer is assigned to the zone, in any service. Saved weeks are scanned in
// chronological order, then the in-progress week in day order.
func (c *ConflictChecker) VolunteerInZoneThisMonth(volunteer, zoneID string, target time.Time, inProgress model.Week) Conflict {
	return c.find(volunteer, zoneID, target, inProgress, noSkip)
}

func (c *ConflictChecker) find(volunteer, zoneID string, target time.Time, inProgress model.Week, skip cellRef) Conflict {
	if volunteer == "" {
		return Conflict{}
	}

	for _, weekID := range c.weekIDs {
		if date, ok := scanWeek(c.history[weekID], volunteer, zoneID, target, noSkip); ok {
			return Conflict{Found: true, Date: date, WeekID: weekID}
		}
	}

	if date, ok := scanWeek(inProgress, volunteer, zoneID, target, skip); ok {
		return Conflict{Found: true, Date: date, WeekID: c.currentWeekID}
	}

	return Conflict{}
}

// scanWeek returns the date string of the first day of the target month where the zone holds volunteer
func scanWeek(week model.Week, volunteer, zoneID string, target time.Time, skip cellRef) (string, bool) {
	for dayIdx, day := range week {
		if day == nil {
			continue
		}

		// Malformed dates are skipped rather than reported
		dayDate, ok := model.ParseDayDate(day.Date)
		if !ok || !model.SameMonth(dayDate, target) {
			continue
		}

		for serviceIdx, service := range day.Services {
			if service == nil {
				continue
			}
			if dayIdx == skip.day && serviceIdx == skip.service {
				continue
			}
			if service.Allocations[zoneID] == volunteer {
				return day.Date, true
			}
		}
	}
	return "", false
}
