package commands

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechorley/seva-rota/pkg/core/seed"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		wantErr  bool
	}{
		{"iso date", "2025-04-09", time.Date(2025, time.April, 9, 0, 0, 0, 0, time.UTC), false},
		{"day date", "09.04.25", time.Date(2025, time.April, 9, 0, 0, 0, 0, time.UTC), false},
		{"impossible day date", "31.04.25", time.Time{}, true},
		{"garbage", "next tuesday", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(result), "got %s", result)
		})
	}
}

func TestParseDay(t *testing.T) {
	week := seed.SeedWeek()

	tests := []struct {
		name     string
		input    string
		expected int
		wantErr  bool
	}{
		{"first day by number", "1", 0, false},
		{"last day by number", "6", 5, false},
		{"number out of range", "7", 0, true},
		{"weekday name", "Wednesday", 2, false},
		{"weekday prefix", "thu", 3, false},
		{"too short prefix", "t", 0, true},
		{"date", "05.04.25", 5, false},
		{"date outside week", "06.04.25", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseDay(week, tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseService(t *testing.T) {
	day := seed.SeedWeek()[0]

	idx, err := parseService(day, "stage")
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	idx, err = parseService(day, "sanchalan")
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	idx, err = parseService(day, "2")
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	_, err = parseService(day, "3")
	assert.Error(t, err)
	_, err = parseService(day, " ")
	assert.Error(t, err)
}

func TestParseZone(t *testing.T) {
	zones := seed.DefaultZones()

	zoneID, err := parseZone(zones, "zone_3")
	require.NoError(t, err)
	assert.Equal(t, "zone_3", zoneID)

	zoneID, err = parseZone(zones, "11")
	require.NoError(t, err)
	assert.Equal(t, "zone_11", zoneID)

	_, err = parseZone(zones, "12")
	assert.Error(t, err)
	_, err = parseZone(zones, "Restcamp")
	assert.Error(t, err)
}

func TestParsePool(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"stage", false},
		{"Sanchalan", false},
		{"gyan_pracharak", false},
		{"gp", false},
		{"evening", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			pool, err := parsePool(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, pool.IsValid())
		})
	}
}

func TestJoinName(t *testing.T) {
	assert.Equal(t, "Sunil Ji, E.C. Road", joinName([]string{"Sunil", "Ji,", "E.C.", "Road"}))
	assert.Equal(t, "", joinName([]string{" "}))
}
