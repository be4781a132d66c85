package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jakechorley/seva-rota/pkg/core/model"
)

// ParseDate accepts yyyy-MM-dd or dd.MM.yy
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(model.WeekIDLayout, s); err == nil {
		return t, nil
	}
	if t, ok := model.ParseDayDate(s); ok {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q (expected yyyy-MM-dd or dd.MM.yy)", s)
}

// parseDay resolves a day of the week by number (1 = Monday), weekday name or dd.MM.yy date
func parseDay(week model.Week, s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > len(week) {
			return 0, fmt.Errorf("day %d out of range (1-%d)", n, len(week))
		}
		return n - 1, nil
	}

	lower := strings.ToLower(s)
	for i, day := range week {
		if day == nil {
			continue
		}
		name := strings.ToLower(day.Day)
		if day.Date == s || name == lower || (len(lower) >= 3 && strings.HasPrefix(name, lower)) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown day %q (use 1-%d, a weekday name or a dd.MM.yy date)", s, len(week))
}

// parseService resolves a service of a day by kind ("stage", "sanchalan") or 1-based position
func parseService(day *model.DaySchedule, s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > len(day.Services) {
			return 0, fmt.Errorf("service %d out of range (1-%d)", n, len(day.Services))
		}
		return n - 1, nil
	}

	kind, err := model.ParseServiceKind(s)
	if err != nil {
		return 0, err
	}
	idx := day.ServiceIndex(kind)
	if idx < 0 {
		return 0, fmt.Errorf("no %s service on %s", kind, day.Date)
	}
	return idx, nil
}

// parseZone resolves a zone by ID or 1-based position
func parseZone(zones []model.Zone, s string) (string, error) {
	for _, zone := range zones {
		if zone.ID == s {
			return zone.ID, nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= len(zones) {
		return zones[n-1].ID, nil
	}
	return "", fmt.Errorf("unknown zone %q (use a zone id or 1-%d)", s, len(zones))
}

// parsePool accepts the pool names plus a few short forms
func parsePool(s string) (model.PoolName, error) {
	switch strings.ToLower(s) {
	case "stage":
		return model.PoolStage, nil
	case "sanchalan":
		return model.PoolSanchalan, nil
	case "gyan_pracharak", "gyan-pracharak", "gyanpracharak", "gp":
		return model.PoolGyanPracharaks, nil
	}
	return "", fmt.Errorf("unknown volunteer pool %q (expected stage, sanchalan or gyan_pracharak)", s)
}

// joinName joins trailing arguments into a volunteer name
func joinName(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
