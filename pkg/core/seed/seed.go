package seed

import (
	"fmt"
	"slices"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/jakechorley/seva-rota/pkg/core/model"
)

const (
	// StageServiceType and SanchalanServiceType are the labels of freshly generated services
	StageServiceType     = "Stage Seva"
	SanchalanServiceType = "Sanchalan"
)

// SeedWeekStart is the Monday of the week shipped with historical allocations
var SeedWeekStart = time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)

// serviceDays is the recurrence of service days within a week: Monday to Saturday
var serviceDays = []rrule.Weekday{rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA}

// DefaultZones returns the zones configured when nothing has been persisted yet
func DefaultZones() []model.Zone {
	return []model.Zone{
		{ID: "zone_1", Name: "Restcamp", Contact: "2624521", Time: "8 - 9"},
		{ID: "zone_2", Name: "Bypass", Contact: "2624521", Time: "8 - 9"},
		{ID: "zone_3", Name: "Kaulagarh / Garhi Cantt", Contact: "9897325018", Time: "8 - 9"},
		{ID: "zone_4", Name: "Gajiyawala", Contact: "9012430502", Time: "8 - 9"},
		{ID: "zone_5", Name: "Raipur", Contact: "9758824305 / 8755657968", Time: "8 - 9"},
		{ID: "zone_6", Name: "Seemadwar", Contact: "9897010772", Time: "8 - 9"},
		{ID: "zone_7", Name: "Sewlakala Majra", Contact: "7500591744", Time: "8 - 9"},
		{ID: "zone_8", Name: "Clementown", Contact: "9897424915", Time: "8 - 9"},
		{ID: "zone_9", Name: "Majri Mafi", Contact: "9897852177", Time: "8 - 9"},
		{ID: "zone_10", Name: "Danda Lakhond", Contact: "9548995082", Time: "8 - 9"},
		{ID: "zone_11", Name: "Sinaula (Evening)", Contact: "9389844724", Time: "6:30 - 7:30"},
	}
}

// DefaultPools returns the hardcoded volunteer pools, each sorted
func DefaultPools() model.VolunteerPools {
	return model.VolunteerPools{
		Stage:          slices.Sorted(slices.Values(defaultStageVolunteers)),
		Sanchalan:      slices.Sorted(slices.Values(defaultSanchalanVolunteers)),
		GyanPracharaks: []string{},
	}
}

// WeekDates returns the service days (Monday to Saturday) of the week containing date
func WeekDates(date time.Time) ([]time.Time, error) {
	start := model.WeekStart(date)

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.DAILY,
		Count:     model.DaysPerWeek,
		Byweekday: serviceDays,
		Dtstart:   start,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build service day rule: %w", err)
	}

	return rule.All(), nil
}

// BlankWeek generates an unassigned week for the week containing date.
// Every service has an empty allocation for each zone.
func BlankWeek(date time.Time, zones []model.Zone) (model.Week, error) {
	dates, err := WeekDates(date)
	if err != nil {
		return nil, err
	}

	week := make(model.Week, 0, len(dates))
	for _, d := range dates {
		week = append(week, &model.DaySchedule{
			Date: model.FormatDayDate(d),
			Day:  d.Weekday().String(),
			Services: []*model.Service{
				{Type: StageServiceType, Allocations: make(model.ZoneAllocation, len(zones))},
				{Type: SanchalanServiceType, Allocations: make(model.ZoneAllocation, len(zones))},
			},
		})
	}
	week.EnsureZones(zones)

	return week, nil
}

// SeedWeek returns a fresh copy of the week starting 31.03.25 with its historical allocations
func SeedWeek() model.Week {
	zones := DefaultZones()
	week := make(model.Week, 0, len(seedWeekAllocations))

	for _, entry := range seedWeekAllocations {
		stage := make(model.ZoneAllocation, len(zones))
		sanchalan := make(model.ZoneAllocation, len(zones))
		for i, zone := range zones {
			stage[zone.ID] = entry.stage[i]
			sanchalan[zone.ID] = entry.sanchalan[i]
		}

		week = append(week, &model.DaySchedule{
			Date: entry.date,
			Day:  entry.day,
			Services: []*model.Service{
				{Type: StageServiceType, Allocations: stage},
				{Type: SanchalanServiceType, Allocations: sanchalan},
			},
		})
	}

	return week
}

// WeekFor returns the original state of the week containing date:
// the seed week for 31.03.25, a blank week otherwise.
func WeekFor(date time.Time, zones []model.Zone) (model.Week, error) {
	if model.WeekStart(date).Equal(SeedWeekStart) {
		week := SeedWeek()
		week.EnsureZones(zones)
		return week, nil
	}
	return BlankWeek(date, zones)
}

// InitialStore returns the schedule store used when nothing has been saved yet
func InitialStore() model.ScheduleStore {
	return model.ScheduleStore{
		SeedWeekStart.Format(model.WeekIDLayout): SeedWeek(),
	}
}
