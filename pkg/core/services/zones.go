package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/jakechorley/seva-rota/pkg/core/model"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ZoneField names an editable zone attribute
type ZoneField string

const (
	ZoneFieldName    ZoneField = "name"
	ZoneFieldContact ZoneField = "contact"
	ZoneFieldTime    ZoneField = "time"
)

// ParseZoneField parses a user supplied field name
func ParseZoneField(s string) (ZoneField, error) {
	switch field := ZoneField(s); field {
	case ZoneFieldName, ZoneFieldContact, ZoneFieldTime:
		return field, nil
	}
	return "", fmt.Errorf("unknown zone field %q (expected name, contact or time)", s)
}

// UpdateZone changes one field of a zone and persists the zone list.
// Zone IDs never change, so existing allocations stay attached to the zone.
func (s *Session) UpdateZone(ctx context.Context, zoneID string, field ZoneField, value string) (model.Zone, error) {
	idx := -1
	for i, zone := range s.zones {
		if zone.ID == zoneID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return model.Zone{}, fmt.Errorf("unknown zone %q", zoneID)
	}

	zone := s.zones[idx]
	switch field {
	case ZoneFieldName:
		zone.Name = value
	case ZoneFieldContact:
		zone.Contact = value
	case ZoneFieldTime:
		zone.Time = value
	default:
		return model.Zone{}, fmt.Errorf("unknown zone field %q", field)
	}

	if err := validate.Struct(zone); err != nil {
		return model.Zone{}, fmt.Errorf("invalid zone: %w", err)
	}

	updated := s.Zones()
	updated[idx] = zone
	if err := s.store.SaveZones(ctx, updated); err != nil {
		return model.Zone{}, fmt.Errorf("failed to save zones: %w", err)
	}

	s.zones = updated
	s.dirty = true

	s.logger.Info("Updated zone",
		zap.String("zone_id", zoneID),
		zap.String("field", string(field)),
		zap.String("value", value))

	return zone, nil
}
