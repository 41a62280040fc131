package model

import (
	"time"

	"github.com/google/uuid"
)

// ReminderStatus is the dispatch state of a reminder.
type ReminderStatus string

const (
	ReminderPending ReminderStatus = "PENDING"
	ReminderSent    ReminderStatus = "SENT"
	ReminderOverdue ReminderStatus = "OVERDUE"
)

// SourceType tells whether a reminder was created by hand or by a rule.
type SourceType string

const (
	SourceManual SourceType = "MANUAL"
	SourceRule   SourceType = "RULE"
)

// ReminderType is the kind of entity a reminder is about.
type ReminderType string

const (
	ReminderAssignment  ReminderType = "ASSIGNMENT"
	ReminderMaintenance ReminderType = "MAINTENANCE"
)

// TargetType is the kind of recipient.
type TargetType string

const (
	TargetSystem  TargetType = "SYSTEM"
	TargetContact TargetType = "CONTACT"
	TargetBoth    TargetType = "BOTH"
)

// Priority of a reminder or rule.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// Reminder represents a scheduled notification intent.
type Reminder struct {
	ID             uuid.UUID      `json:"id"`
	Message        string         `json:"message"`
	ScheduledDate  time.Time      `json:"scheduled_date"`
	Status         ReminderStatus `json:"status"`
	SourceType     SourceType     `json:"source_type"`
	Type           ReminderType   `json:"type"`
	TargetType     TargetType     `json:"target_type"`
	TargetID       uuid.UUID      `json:"target_id"` // recipient
	Priority       Priority       `json:"priority"`
	Channel        Channel        `json:"channel"` // requested channel, may be empty
	ReminderRuleID *uuid.UUID     `json:"reminder_rule_id,omitempty"`
	AssignmentID   *uuid.UUID     `json:"assignment_id,omitempty"`
	MaintenanceID  *uuid.UUID     `json:"maintenance_id,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// IsSent is derived from Status and never stored.
func (r Reminder) IsSent() bool {
	return r.Status == ReminderSent
}

// RequestedChannel returns the reminder channel, IN_APP when unset.
func (r Reminder) RequestedChannel() Channel {
	if r.Channel == "" {
		return ChannelInApp
	}

	return r.Channel
}

// ReminderFilter narrows a reminder listing. Zero values mean "any".
type ReminderFilter struct {
	Status   ReminderStatus
	IsSent   *bool
	Page     int
	PageSize int
}

// Offset returns the SQL offset of the filter page (pages start at 1).
func (f ReminderFilter) Offset() int {
	if f.Page < 1 {
		return 0
	}

	return (f.Page - 1) * f.PageSize
}

// ReminderPage is one page of reminders plus the total row count.
type ReminderPage struct {
	Items []Reminder `json:"items"`
	Total int        `json:"total"`
}
