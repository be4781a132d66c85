package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/jakechorley/seva-rota/pkg/core/model"
)

// ExportFormat selects the output of ExportWeek
type ExportFormat string

const (
	FormatTable ExportFormat = "table"
	FormatCSV   ExportFormat = "csv"
	FormatYAML  ExportFormat = "yaml"
	FormatICS   ExportFormat = "ics"
)

// ParseExportFormat parses a user supplied format name
func ParseExportFormat(s string) (ExportFormat, error) {
	switch format := ExportFormat(strings.ToLower(s)); format {
	case FormatTable, FormatCSV, FormatYAML, FormatICS:
		return format, nil
	}
	return "", fmt.Errorf("unknown export format %q (expected table, csv, yaml or ics)", s)
}

const icsProductID = "-//seva-rota//Seva Rota//EN"

// icsNamespace scopes the event UIDs of exported cells
var icsNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("seva-rota"))

// ExportOptions carries the week metadata written alongside the cells
type ExportOptions struct {
	Title  string
	WeekID string

	// Now stamps ICS events. Defaults to time.Now
	Now time.Time
}

// ExportWeek writes the week in the requested format
func ExportWeek(w io.Writer, format ExportFormat, week model.Week, zones []model.Zone, opts ExportOptions) error {
	switch format {
	case FormatTable:
		return writeTable(w, week, zones, opts)
	case FormatCSV:
		return writeCSV(w, week, zones)
	case FormatYAML:
		return writeYAML(w, week, zones, opts)
	case FormatICS:
		return writeICS(w, week, zones, opts)
	}
	return fmt.Errorf("unknown export format %q", format)
}

// serviceTypes returns the distinct service labels in order of first appearance
func serviceTypes(week model.Week) []string {
	types := []string{}
	seen := map[string]bool{}
	for _, day := range week {
		if day == nil {
			continue
		}
		for _, service := range day.Services {
			if service == nil || seen[service.Type] {
				continue
			}
			seen[service.Type] = true
			types = append(types, service.Type)
		}
	}
	return types
}

func findService(day *model.DaySchedule, serviceType string) *model.Service {
	for _, service := range day.Services {
		if service != nil && service.Type == serviceType {
			return service
		}
	}
	return nil
}

func shortDay(day *model.DaySchedule) string {
	name := day.Day
	if len(name) > 3 {
		name = name[:3]
	}
	return fmt.Sprintf("%s %s", name, day.Date)
}

func writeTable(w io.Writer, week model.Week, zones []model.Zone, opts ExportOptions) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if opts.Title != "" {
		fmt.Fprintln(tw, opts.Title)
	}

	for _, serviceType := range serviceTypes(week) {
		fmt.Fprintln(tw)
		fmt.Fprintf(tw, "[%s]\n", serviceType)

		header := []string{"ZONE", "TIME", "CONTACT"}
		for _, day := range week {
			if day != nil {
				header = append(header, shortDay(day))
			}
		}
		fmt.Fprintln(tw, strings.Join(header, "\t"))

		for _, zone := range zones {
			row := []string{zone.Name, zone.Time, zone.Contact}
			for _, day := range week {
				if day == nil {
					continue
				}
				cell := "-"
				if service := findService(day, serviceType); service != nil && service.Allocations[zone.ID] != "" {
					cell = service.Allocations[zone.ID]
				}
				row = append(row, cell)
			}
			fmt.Fprintln(tw, strings.Join(row, "\t"))
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}
	return nil
}

func writeCSV(w io.Writer, week model.Week, zones []model.Zone) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"date", "day", "service", "zone_id", "zone", "volunteer"}); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, day := range week {
		if day == nil {
			continue
		}
		for _, service := range day.Services {
			if service == nil {
				continue
			}
			for _, zone := range zones {
				record := []string{day.Date, day.Day, service.Type, zone.ID, zone.Name, service.Allocations[zone.ID]}
				if err := cw.Write(record); err != nil {
					return fmt.Errorf("failed to write csv row: %w", err)
				}
			}
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

type yamlExport struct {
	Title  string         `yaml:"title,omitempty"`
	WeekID string         `yaml:"weekId,omitempty"`
	Zones  []model.Zone   `yaml:"zones"`
	Days   []yamlDayEntry `yaml:"days"`
}

type yamlDayEntry struct {
	Date     string             `yaml:"date"`
	Day      string             `yaml:"day"`
	Services []yamlServiceEntry `yaml:"services"`
}

type yamlServiceEntry struct {
	Type        string            `yaml:"type"`
	Allocations map[string]string `yaml:"allocations"`
}

func writeYAML(w io.Writer, week model.Week, zones []model.Zone, opts ExportOptions) error {
	doc := yamlExport{
		Title:  opts.Title,
		WeekID: opts.WeekID,
		Zones:  zones,
		Days:   make([]yamlDayEntry, 0, len(week)),
	}

	for _, day := range week {
		if day == nil {
			continue
		}
		entry := yamlDayEntry{Date: day.Date, Day: day.Day}
		for _, service := range day.Services {
			if service == nil {
				continue
			}
			entry.Services = append(entry.Services, yamlServiceEntry{
				Type:        service.Type,
				Allocations: service.Allocations,
			})
		}
		doc.Days = append(doc.Days, entry)
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to close yaml encoder: %w", err)
	}
	return nil
}

// writeICS writes one all-day event per assigned cell.
// UIDs are derived from the cell position so that re-exports update the same events.
func writeICS(w io.Writer, week model.Week, zones []model.Zone, opts ExportOptions) error {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	stamp := now.UTC().Format("20060102T150405Z")

	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format, args...)
		b.WriteString("\r\n")
	}

	line("BEGIN:VCALENDAR")
	line("VERSION:2.0")
	line("PRODID:%s", icsProductID)
	line("CALSCALE:GREGORIAN")
	if opts.Title != "" {
		line("X-WR-CALNAME:%s", escapeICS(opts.Title))
	}

	for _, day := range week {
		if day == nil {
			continue
		}
		date, ok := model.ParseDayDate(day.Date)
		if !ok {
			continue
		}

		for _, service := range day.Services {
			if service == nil {
				continue
			}
			for _, zone := range zones {
				volunteer := service.Allocations[zone.ID]
				if volunteer == "" {
					continue
				}

				uid := uuid.NewSHA1(icsNamespace, []byte(strings.Join([]string{day.Date, service.Type, zone.ID}, "|")))

				line("BEGIN:VEVENT")
				line("UID:%s", uid)
				line("DTSTAMP:%s", stamp)
				line("DTSTART;VALUE=DATE:%s", date.Format("20060102"))
				line("DTEND;VALUE=DATE:%s", date.AddDate(0, 0, 1).Format("20060102"))
				line("SUMMARY:%s", escapeICS(fmt.Sprintf("%s: %s", service.Type, volunteer)))
				line("DESCRIPTION:%s", escapeICS(fmt.Sprintf("%s (%s) contact %s", zone.Name, zone.Time, zone.Contact)))
				line("LOCATION:%s", escapeICS(zone.Name))
				line("END:VEVENT")
			}
		}
	}

	line("END:VCALENDAR")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write calendar: %w", err)
	}
	return nil
}

var icsEscaper = strings.NewReplacer(`\`, `\\`, ";", `\;`, ",", `\,`, "\n", `\n`)

func escapeICS(s string) string {
	return icsEscaper.Replace(s)
}
