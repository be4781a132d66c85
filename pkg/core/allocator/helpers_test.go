package allocator

import (
	"github.com/jakechorley/seva-rota/pkg/core/model"
)

var testZones = []model.Zone{
	{ID: "z1", Name: "Restcamp"},
	{ID: "z2", Name: "Bypass"},
	{ID: "z3", Name: "Raipur"},
}

// testWeek builds a week with a Stage and a Sanchalan service per date and empty allocations
func testWeek(dates ...string) model.Week {
	week := model.Week{}
	for _, date := range dates {
		week = append(week, &model.DaySchedule{
			Date: date,
			Day:  "Monday",
			Services: []*model.Service{
				{Type: "Stage Seva", Allocations: model.ZoneAllocation{"z1": "", "z2": "", "z3": ""}},
				{Type: "Sanchalan", Allocations: model.ZoneAllocation{"z1": "", "z2": "", "z3": ""}},
			},
		})
	}
	return week
}

// assign sets one cell of a test week in place
func assign(week model.Week, dayIdx, serviceIdx int, zoneID, volunteer string) model.Week {
	week[dayIdx].Services[serviceIdx].Allocations[zoneID] = volunteer
	return week
}
