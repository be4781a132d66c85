package allocator

import (
	"fmt"

	"github.com/jakechorley/seva-rota/pkg/core/model"
)

// ValidateWeek reports every assigned cell whose volunteer also serves in the same zone
// elsewhere in the same month, either in the saved history or in the week itself.
// An empty slice indicates the week has no monthly zone repeats.
func ValidateWeek(checker *ConflictChecker, week model.Week, zones []model.Zone) []SlotValidationError {
	errors := []SlotValidationError{}
	criterionName := (&MonthlyZoneRepeatCriterion{}).Name()

	for dayIdx, day := range week {
		if day == nil {
			continue
		}
		dayDate, ok := model.ParseDayDate(day.Date)
		if !ok {
			continue
		}

		for serviceIdx, service := range day.Services {
			if service == nil {
				continue
			}
			for _, zone := range zones {
				volunteer := service.Allocations[zone.ID]
				if volunteer == "" {
					continue
				}

				conflict := checker.find(volunteer, zone.ID, dayDate, week, cellRef{day: dayIdx, service: serviceIdx})
				if !conflict.Found {
					continue
				}

				errors = append(errors, SlotValidationError{
					DayIndex:      dayIdx,
					Date:          day.Date,
					ServiceType:   service.Type,
					ZoneID:        zone.ID,
					Volunteer:     volunteer,
					CriterionName: criterionName,
					ConflictDate:  conflict.Date,
					Description: fmt.Sprintf("%s also serves in %s on %s",
						volunteer, zone.Name, conflict.Date),
				})
			}
		}
	}

	return errors
}
