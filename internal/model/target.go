package model

import (
	"time"

	"github.com/google/uuid"
)

// FrequencyUnit is the unit of a maintenance service interval.
type FrequencyUnit string

const (
	FrequencyDay   FrequencyUnit = "DAY"
	FrequencyWeek  FrequencyUnit = "WEEK"
	FrequencyMonth FrequencyUnit = "MONTH"
	FrequencyYear  FrequencyUnit = "YEAR"
)

// Assignment is an asset handed over to a contact. Owned by the assignments service, read-only here.
type Assignment struct {
	ID         uuid.UUID  `json:"id"`
	AssetID    uuid.UUID  `json:"asset_id"`
	AssetName  string     `json:"asset_name"`
	AssigneeID uuid.UUID  `json:"assignee_id"`
	StartDate  time.Time  `json:"start_date"`
	DueDate    *time.Time `json:"due_date,omitempty"`
}

// Due returns the due date, falling back to the start date.
func (a Assignment) Due() time.Time {
	if a.DueDate != nil {
		return *a.DueDate
	}

	return a.StartDate
}

// Maintenance is a recurring service plan of an asset. Owned by the maintenances service, read-only here.
type Maintenance struct {
	ID              uuid.UUID     `json:"id"`
	AssetID         uuid.UUID     `json:"asset_id"`
	AssetName       string        `json:"asset_name"`
	FrequencyAmount int           `json:"frequency_amount"`
	Unit            FrequencyUnit `json:"unit"`
	LastServiceDate *time.Time    `json:"last_service_date,omitempty"`
	NextServiceDate *time.Time    `json:"next_service_date,omitempty"`
}

// NextDate computes the next service date from the last one.
// Without a last service date the maintenance is due now.
func (m Maintenance) NextDate(now time.Time) time.Time {
	if m.LastServiceDate == nil {
		return now
	}

	last := *m.LastServiceDate
	switch m.Unit {
	case FrequencyDay:
		return last.AddDate(0, 0, m.FrequencyAmount)
	case FrequencyWeek:
		return last.AddDate(0, 0, 7*m.FrequencyAmount)
	case FrequencyMonth:
		return last.AddDate(0, m.FrequencyAmount, 0)
	case FrequencyYear:
		return last.AddDate(m.FrequencyAmount, 0, 0)
	default:
		return last
	}
}

// Due returns the next service date, computing it when it is not stored.
func (m Maintenance) Due(now time.Time) time.Time {
	if m.NextServiceDate != nil {
		return *m.NextServiceDate
	}

	return m.NextDate(now)
}
