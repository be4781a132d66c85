package services

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jakechorley/seva-rota/pkg/core/model"
)

func exportFixture() (model.Week, []model.Zone) {
	zones := []model.Zone{
		{ID: "zone_1", Name: "Restcamp", Contact: "2624521", Time: "8 - 9"},
		{ID: "zone_2", Name: "Bypass, North", Contact: "2624521", Time: "8 - 9"},
	}
	week := model.Week{
		{
			Date: "07.04.25",
			Day:  "Monday",
			Services: []*model.Service{
				{Type: "Stage Seva", Allocations: model.ZoneAllocation{"zone_1": "Asha Ji", "zone_2": ""}},
				{Type: "Sanchalan", Allocations: model.ZoneAllocation{"zone_1": "Ekta Ji", "zone_2": "Farhan Ji"}},
			},
		},
		{
			Date: "08.04.25",
			Day:  "Tuesday",
			Services: []*model.Service{
				{Type: "Stage Seva", Allocations: model.ZoneAllocation{"zone_1": "", "zone_2": "Bhanu Ji"}},
				{Type: "Sanchalan", Allocations: model.ZoneAllocation{"zone_1": "", "zone_2": ""}},
			},
		},
	}
	return week, zones
}

func TestParseExportFormat(t *testing.T) {
	format, err := ParseExportFormat("ICS")
	require.NoError(t, err)
	assert.Equal(t, FormatICS, format)

	_, err = ParseExportFormat("pdf")
	assert.Error(t, err)
}

func TestExportWeek_Table(t *testing.T) {
	week, zones := exportFixture()
	var buf bytes.Buffer

	require.NoError(t, ExportWeek(&buf, FormatTable, week, zones, ExportOptions{Title: "Week title"}))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Week title\n"))
	assert.Contains(t, out, "[Stage Seva]")
	assert.Contains(t, out, "[Sanchalan]")
	assert.Contains(t, out, "Mon 07.04.25")
	assert.Contains(t, out, "Asha Ji")
	assert.Contains(t, out, "Farhan Ji")
}

func TestExportWeek_CSV(t *testing.T) {
	week, zones := exportFixture()
	var buf bytes.Buffer

	require.NoError(t, ExportWeek(&buf, FormatCSV, week, zones, ExportOptions{}))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1+2*2*2)
	assert.Equal(t, []string{"date", "day", "service", "zone_id", "zone", "volunteer"}, records[0])
	assert.Equal(t, []string{"07.04.25", "Monday", "Stage Seva", "zone_1", "Restcamp", "Asha Ji"}, records[1])
	assert.Equal(t, []string{"07.04.25", "Monday", "Stage Seva", "zone_2", "Bypass, North", ""}, records[2])
}

func TestExportWeek_YAML(t *testing.T) {
	week, zones := exportFixture()
	var buf bytes.Buffer

	require.NoError(t, ExportWeek(&buf, FormatYAML, week, zones, ExportOptions{Title: "T", WeekID: "2025-04-07"}))

	var doc yamlExport
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "2025-04-07", doc.WeekID)
	require.Len(t, doc.Days, 2)
	assert.Equal(t, "Bhanu Ji", doc.Days[1].Services[0].Allocations["zone_2"])
	assert.Equal(t, zones, doc.Zones)
}

func TestExportWeek_ICS(t *testing.T) {
	week, zones := exportFixture()
	now := time.Date(2025, time.April, 1, 10, 0, 0, 0, time.UTC)

	var first, second bytes.Buffer
	require.NoError(t, ExportWeek(&first, FormatICS, week, zones, ExportOptions{Title: "Rota", Now: now}))
	require.NoError(t, ExportWeek(&second, FormatICS, week, zones, ExportOptions{Title: "Rota", Now: now}))

	out := first.String()
	assert.Equal(t, out, second.String(), "export is deterministic")
	assert.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR\r\n"))
	assert.True(t, strings.HasSuffix(out, "END:VCALENDAR\r\n"))
	assert.Equal(t, 4, strings.Count(out, "BEGIN:VEVENT"), "one event per assigned cell")
	assert.Contains(t, out, "DTSTART;VALUE=DATE:20250407")
	assert.Contains(t, out, "DTEND;VALUE=DATE:20250408")
	assert.Contains(t, out, "SUMMARY:Stage Seva: Asha Ji")
	assert.Contains(t, out, `LOCATION:Bypass\, North`)
	assert.Contains(t, out, "DTSTAMP:20250401T100000Z")
}

func TestExportWeek_UnknownFormat(t *testing.T) {
	week, zones := exportFixture()
	assert.Error(t, ExportWeek(&bytes.Buffer{}, ExportFormat("pdf"), week, zones, ExportOptions{}))
}
