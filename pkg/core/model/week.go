package model

import (
	"maps"
	"time"
)

// DaysPerWeek is the number of service days in a week (Monday to Saturday)
const DaysPerWeek = 6

// Week is the ordered Monday..Saturday schedule of one week.
// Days and services are pointers so that copy-on-write edits can be detected by identity.
type Week []*DaySchedule

// Clone returns a deep copy of the week
func (w Week) Clone() Week {
	if w == nil {
		return nil
	}
	clone := make(Week, len(w))
	for i, day := range w {
		clone[i] = day.Clone()
	}
	return clone
}

// Clone returns a deep copy of the day
func (d *DaySchedule) Clone() *DaySchedule {
	if d == nil {
		return nil
	}
	clone := &DaySchedule{
		Date:     d.Date,
		Day:      d.Day,
		Services: make([]*Service, len(d.Services)),
	}
	for i, service := range d.Services {
		clone.Services[i] = service.Clone()
	}
	return clone
}

// Clone returns a deep copy of the service
func (s *Service) Clone() *Service {
	if s == nil {
		return nil
	}
	allocations := make(ZoneAllocation, len(s.Allocations))
	maps.Copy(allocations, s.Allocations)
	return &Service{
		Type:        s.Type,
		Allocations: allocations,
	}
}

// EnsureZones adds an empty allocation for every zone missing from any service.
// Existing allocations are left untouched. The week is modified in place.
func (w Week) EnsureZones(zones []Zone) {
	for _, day := range w {
		if day == nil {
			continue
		}
		for _, service := range day.Services {
			if service == nil {
				continue
			}
			if service.Allocations == nil {
				service.Allocations = make(ZoneAllocation, len(zones))
			}
			for _, zone := range zones {
				if _, ok := service.Allocations[zone.ID]; !ok {
					service.Allocations[zone.ID] = ""
				}
			}
		}
	}
}

// DayDate parses the date of the day at index i
func (w Week) DayDate(i int) (time.Time, bool) {
	if i < 0 || i >= len(w) || w[i] == nil {
		return time.Time{}, false
	}
	return ParseDayDate(w[i].Date)
}

// ServiceIndex returns the index of the first service of the given kind on a day, or -1
func (d *DaySchedule) ServiceIndex(kind ServiceKind) int {
	for i, service := range d.Services {
		if service != nil && service.Kind() == kind {
			return i
		}
	}
	return -1
}
