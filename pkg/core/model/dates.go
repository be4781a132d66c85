package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// DayDateLayout is the display format of a day ("31.03.25"). It doubles as the
	// parse format for month comparisons, so changing it breaks history scans.
	DayDateLayout = "02.01.06"

	// WeekIDLayout is the store key format: the week's Monday as yyyy-MM-dd
	WeekIDLayout = "2006-01-02"

	// twoDigitYearBase is added to the yy component of a day date
	twoDigitYearBase = 2000
)

// FormatDayDate renders a date in the dd.MM.yy display format
func FormatDayDate(t time.Time) string {
	return t.Format(DayDateLayout)
}

// ParseDayDate parses a dd.MM.yy day date string.
// Returns false if the string does not split into exactly three numeric parts
// or names a date that does not exist.
// Impossible dates such as 31.13.25 are rejected, never rolled over into the next month.
func ParseDayDate(s string) (time.Time, bool) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return time.Time{}, false
	}

	values := make([]int, 3)
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return time.Time{}, false
		}
		values[i] = v
	}

	day, month, year := values[0], time.Month(values[1]), twoDigitYearBase+values[2]
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || t.Month() != month || t.Year() != year {
		return time.Time{}, false
	}
	return t, true
}

// SameMonth reports whether two dates fall in the same calendar month and year
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// WeekStart returns the Monday (at midnight UTC) of the week containing t
func WeekStart(t time.Time) time.Time {
	normalized := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)

	// Monday is 1, Sunday is 0 and belongs to the week that started six days earlier
	offset := (int(normalized.Weekday()) + 6) % 7
	return normalized.AddDate(0, 0, -offset)
}

// WeekID returns the store key of the week containing t
func WeekID(t time.Time) string {
	return WeekStart(t).Format(WeekIDLayout)
}

// ParseWeekID parses a yyyy-MM-dd date and snaps it to the Monday of its week
func ParseWeekID(s string) (time.Time, error) {
	t, err := time.Parse(WeekIDLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected yyyy-MM-dd): %w", s, err)
	}
	return WeekStart(t), nil
}

// FormatWeekRange renders the printed header title for a week starting on start
func FormatWeekRange(start time.Time) string {
	end := start.AddDate(0, 0, 5) // Monday to Saturday
	return fmt.Sprintf("%s सोमवार से दिनांक %s शनिवार तक",
		start.Format("02.01.2006"),
		end.Format("02.01.2006"))
}
