package model

import (
	"fmt"
	"strings"
)

// ServiceKind distinguishes the two daily duty slots
type ServiceKind string

const (
	KindStage     ServiceKind = "stage"
	KindSanchalan ServiceKind = "sanchalan"
)

func (k ServiceKind) IsValid() bool {
	return k == KindStage || k == KindSanchalan
}

// StageKeywords mark a service label as Stage. Matching is a case-insensitive substring test.
var StageKeywords = []string{"stage", "मंच"}

// ClassifyService derives the kind of a service from its type label.
// Anything that does not mention a stage keyword is Sanchalan.
func ClassifyService(label string) ServiceKind {
	lower := strings.ToLower(label)
	for _, keyword := range StageKeywords {
		if strings.Contains(lower, strings.ToLower(keyword)) {
			return KindStage
		}
	}
	return KindSanchalan
}

// ParseServiceKind parses a user supplied kind ("stage", "sanchalan", or any service label)
func ParseServiceKind(s string) (ServiceKind, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", fmt.Errorf("service kind must not be empty")
	}
	return ClassifyService(trimmed), nil
}

// PoolName identifies one of the three volunteer pools
type PoolName string

const (
	PoolStage          PoolName = "stage"
	PoolSanchalan      PoolName = "sanchalan"
	PoolGyanPracharaks PoolName = "gyan_pracharak"
)

func (p PoolName) IsValid() bool {
	return p == PoolStage || p == PoolSanchalan || p == PoolGyanPracharaks
}

// Zone is a duty post that needs one volunteer per service per day
type Zone struct {
	ID      string `json:"id" yaml:"id" validate:"required"`
	Name    string `json:"name" yaml:"name" validate:"required"`
	Contact string `json:"contact" yaml:"contact"`
	Time    string `json:"time" yaml:"time"`
}

// ZoneAllocation maps zone ID to the assigned volunteer name ("" = unassigned)
type ZoneAllocation map[string]string

// Service is one duty slot of a day
type Service struct {
	Type        string         `json:"type"`
	Allocations ZoneAllocation `json:"allocations"`
}

// Kind returns the service kind derived from the type label
func (s *Service) Kind() ServiceKind {
	return ClassifyService(s.Type)
}

// DaySchedule holds the services of one calendar day
type DaySchedule struct {
	Date     string     `json:"date"` // dd.MM.yy
	Day      string     `json:"day"`  // English weekday name
	Services []*Service `json:"services"`
}

// ScheduleStore maps week ID (yyyy-MM-dd of the Monday) to every saved week
type ScheduleStore map[string]Week

// VolunteerPools holds the three disjoint pools of volunteer names
type VolunteerPools struct {
	Stage          []string `json:"stage" yaml:"stage"`
	Sanchalan      []string `json:"sanchalan" yaml:"sanchalan"`
	GyanPracharaks []string `json:"gyanPracharaks" yaml:"gyanPracharaks"`
}

// ForKind returns the candidate pool for a service kind.
// Gyan pracharaks are eligible for Stage duty ahead of the regular stage volunteers.
func (p VolunteerPools) ForKind(kind ServiceKind) []string {
	if kind == KindStage {
		pool := make([]string, 0, len(p.GyanPracharaks)+len(p.Stage))
		pool = append(pool, p.GyanPracharaks...)
		pool = append(pool, p.Stage...)
		return pool
	}
	return append([]string(nil), p.Sanchalan...)
}

// Get returns the named pool
func (p VolunteerPools) Get(name PoolName) []string {
	switch name {
	case PoolStage:
		return p.Stage
	case PoolSanchalan:
		return p.Sanchalan
	case PoolGyanPracharaks:
		return p.GyanPracharaks
	}
	return nil
}

// With returns a copy of the pools with the named pool replaced
func (p VolunteerPools) With(name PoolName, names []string) VolunteerPools {
	switch name {
	case PoolStage:
		p.Stage = names
	case PoolSanchalan:
		p.Sanchalan = names
	case PoolGyanPracharaks:
		p.GyanPracharaks = names
	}
	return p
}
