package allocator

import (
	"fmt"
	"maps"
	"strings"

	"github.com/jakechorley/seva-rota/pkg/core/model"
)

// CellEdit is a direct single-cell change requested by the user
type CellEdit struct {
	DayIndex     int
	ServiceIndex int
	ZoneID       string
	Value        string
}

// ConflictPrompt describes a monthly zone repeat the user has to approve
type ConflictPrompt struct {
	Volunteer    string
	ZoneID       string
	ZoneName     string
	ConflictDate string
}

// Message renders the confirmation text shown to the user
func (p ConflictPrompt) Message() string {
	return fmt.Sprintf("%s is already assigned to %s on %s this month.\n\n"+
		"Volunteers should ideally not serve in the same zone more than once a month.\n\n"+
		"Do you want to proceed anyway?",
		p.Volunteer, p.ZoneName, p.ConflictDate)
}

// Confirmer asks the user whether to keep an edit that repeats a volunteer in a zone
type Confirmer interface {
	ConfirmConflict(prompt ConflictPrompt) bool
}

// ConfirmFunc adapts a function to the Confirmer interface
type ConfirmFunc func(prompt ConflictPrompt) bool

func (f ConfirmFunc) ConfirmConflict(prompt ConflictPrompt) bool {
	return f(prompt)
}

// EditResult is the outcome of a cell edit
type EditResult struct {
	// Week is the updated week when accepted, the unchanged input week otherwise
	Week model.Week

	// Accepted is false when the user declined a conflict
	Accepted bool

	// Conflict found for the new value, if any
	Conflict Conflict
}

// ApplyCellEdit validates and applies a single-cell edit.
//
// Clearing a cell (empty or whitespace value) is always accepted. Otherwise the
// conflict checker runs against the saved history and the current week; on a
// conflict the confirmer decides, and a nil confirmer declines.
//
// An accepted edit returns a new week in which the edited day, its services slice,
// the edited service and its allocations are fresh objects. Every other day and
// service keeps its identity, so callers can detect changes by pointer comparison.
func ApplyCellEdit(checker *ConflictChecker, week model.Week, zones []model.Zone, edit CellEdit, confirmer Confirmer) (*EditResult, error) {
	if edit.DayIndex < 0 || edit.DayIndex >= len(week) || week[edit.DayIndex] == nil {
		return nil, fmt.Errorf("day index %d out of range (week has %d days)", edit.DayIndex, len(week))
	}
	day := week[edit.DayIndex]

	if edit.ServiceIndex < 0 || edit.ServiceIndex >= len(day.Services) || day.Services[edit.ServiceIndex] == nil {
		return nil, fmt.Errorf("service index %d out of range (day has %d services)", edit.ServiceIndex, len(day.Services))
	}

	zone, ok := findZone(zones, edit.ZoneID)
	if !ok {
		return nil, fmt.Errorf("unknown zone %q", edit.ZoneID)
	}

	value := edit.Value
	if strings.TrimSpace(value) == "" {
		return &EditResult{
			Week:     withCell(week, edit.DayIndex, edit.ServiceIndex, zone.ID, ""),
			Accepted: true,
		}, nil
	}

	var conflict Conflict
	if cellDate, ok := model.ParseDayDate(day.Date); ok {
		conflict = checker.VolunteerInZoneThisMonth(value, zone.ID, cellDate, week)
	}

	if conflict.Found {
		prompt := ConflictPrompt{
			Volunteer:    value,
			ZoneID:       zone.ID,
			ZoneName:     zone.Name,
			ConflictDate: conflict.Date,
		}
		if confirmer == nil || !confirmer.ConfirmConflict(prompt) {
			return &EditResult{Week: week, Accepted: false, Conflict: conflict}, nil
		}
	}

	return &EditResult{
		Week:     withCell(week, edit.DayIndex, edit.ServiceIndex, zone.ID, value),
		Accepted: true,
		Conflict: conflict,
	}, nil
}

// withCell returns a copy of week with one allocation replaced.
// Only the containers on the path to the cell are copied.
func withCell(week model.Week, dayIdx, serviceIdx int, zoneID, value string) model.Week {
	updated := make(model.Week, len(week))
	copy(updated, week)

	oldDay := week[dayIdx]
	newDay := &model.DaySchedule{
		Date:     oldDay.Date,
		Day:      oldDay.Day,
		Services: make([]*model.Service, len(oldDay.Services)),
	}
	copy(newDay.Services, oldDay.Services)

	oldService := oldDay.Services[serviceIdx]
	allocations := make(model.ZoneAllocation, len(oldService.Allocations)+1)
	maps.Copy(allocations, oldService.Allocations)
	allocations[zoneID] = value

	newDay.Services[serviceIdx] = &model.Service{
		Type:        oldService.Type,
		Allocations: allocations,
	}
	updated[dayIdx] = newDay

	return updated
}

func findZone(zones []model.Zone, zoneID string) (model.Zone, bool) {
	for _, zone := range zones {
		if zone.ID == zoneID {
			return zone, true
		}
	}
	return model.Zone{}, false
}
