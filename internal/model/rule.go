package model

import (
	"time"

	"github.com/google/uuid"
)

// TargetEntityType is the kind of entity a rule is bound to.
type TargetEntityType string

const (
	TargetEntityAssignment  TargetEntityType = "ASSIGNMENT"
	TargetEntityMaintenance TargetEntityType = "MAINTENANCE"
)

// OffsetUnit is the unit of a rule's lead time.
type OffsetUnit string

const (
	OffsetDay   OffsetUnit = "DAY"
	OffsetWeek  OffsetUnit = "WEEK"
	OffsetMonth OffsetUnit = "MONTH"
)

// ReminderRule derives a reminder's timing from a target entity's due date.
type ReminderRule struct {
	ID               uuid.UUID        `json:"id"`
	TargetEntityType TargetEntityType `json:"target_entity_type"`
	TargetEntityID   uuid.UUID        `json:"target_entity_id"`
	OffsetValue      int              `json:"offset_value"` // always >= 1
	OffsetUnit       OffsetUnit       `json:"offset_unit"`
	TargetType       TargetType       `json:"target_type"`
	Priority         Priority         `json:"priority"`
	Channel          Channel          `json:"channel"`
	MessageTemplate  *string          `json:"message_template,omitempty"`
	Active           bool             `json:"active"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// ScheduledDate subtracts the rule offset from due.
// Months are calendar months, so Jan 31 minus one month normalizes like time.AddDate does.
func (r ReminderRule) ScheduledDate(due time.Time) time.Time {
	switch r.OffsetUnit {
	case OffsetWeek:
		return due.AddDate(0, 0, -7*r.OffsetValue)
	case OffsetMonth:
		return due.AddDate(0, -r.OffsetValue, 0)
	default:
		return due.AddDate(0, 0, -r.OffsetValue)
	}
}

// RulePatch carries the fields of a rule update; nil fields are left untouched.
type RulePatch struct {
	OffsetValue     *int
	OffsetUnit      *OffsetUnit
	TargetType      *TargetType
	Priority        *Priority
	Channel         *Channel
	MessageTemplate *string
	Active          *bool
}

// Apply copies the non-nil fields of p onto r.
func (p RulePatch) Apply(r *ReminderRule) {
	if p.OffsetValue != nil {
		r.OffsetValue = *p.OffsetValue
	}
	if p.OffsetUnit != nil {
		r.OffsetUnit = *p.OffsetUnit
	}
	if p.TargetType != nil {
		r.TargetType = *p.TargetType
	}
	if p.Priority != nil {
		r.Priority = *p.Priority
	}
	if p.Channel != nil {
		r.Channel = *p.Channel
	}
	if p.MessageTemplate != nil {
		r.MessageTemplate = p.MessageTemplate
	}
	if p.Active != nil {
		r.Active = *p.Active
	}
}

// RulePreview is the read-only projection of a rule's timing.
type RulePreview struct {
	DueDate       time.Time `json:"due_date"`
	ScheduledDate time.Time `json:"scheduled_date"`
}
