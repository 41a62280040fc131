package dto

import (
	"github.com/google/uuid"

	"github.com/aliskhannn/reminder-dispatcher/internal/model"
)

type CreateRuleRequest struct {
	TargetEntityType string    `json:"target_entity_type" validate:"required,oneof=ASSIGNMENT MAINTENANCE"`
	TargetEntityID   uuid.UUID `json:"target_entity_id" validate:"required"`
	OffsetValue      int       `json:"offset_value" validate:"required,min=1"`
	OffsetUnit       string    `json:"offset_unit" validate:"required,oneof=DAY WEEK MONTH"`
	TargetType       string    `json:"target_type" validate:"omitempty,oneof=SYSTEM CONTACT BOTH"`
	Priority         string    `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
	Channel          string    `json:"channel" validate:"omitempty,oneof=IN_APP PUSH EMAIL SMS WHATSAPP"`
	MessageTemplate  *string   `json:"message_template"`
	Active           *bool     `json:"active"`
}

// ToModel builds the rule; a missing active flag means active.
func (r CreateRuleRequest) ToModel() model.ReminderRule {
	rule := model.ReminderRule{
		TargetEntityType: model.TargetEntityType(r.TargetEntityType),
		TargetEntityID:   r.TargetEntityID,
		OffsetValue:      r.OffsetValue,
		OffsetUnit:       model.OffsetUnit(r.OffsetUnit),
		TargetType:       model.TargetType(r.TargetType),
		Priority:         model.Priority(r.Priority),
		Channel:          model.Channel(r.Channel),
		MessageTemplate:  r.MessageTemplate,
		Active:           true,
	}

	if r.Active != nil {
		rule.Active = *r.Active
	}

	return rule
}

type UpdateRuleRequest struct {
	OffsetValue     *int    `json:"offset_value" validate:"omitempty,min=1"`
	OffsetUnit      *string `json:"offset_unit" validate:"omitempty,oneof=DAY WEEK MONTH"`
	TargetType      *string `json:"target_type" validate:"omitempty,oneof=SYSTEM CONTACT BOTH"`
	Priority        *string `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
	Channel         *string `json:"channel" validate:"omitempty,oneof=IN_APP PUSH EMAIL SMS WHATSAPP"`
	MessageTemplate *string `json:"message_template"`
	Active          *bool   `json:"active"`
}

func (r UpdateRuleRequest) ToPatch() model.RulePatch {
	patch := model.RulePatch{
		OffsetValue:     r.OffsetValue,
		MessageTemplate: r.MessageTemplate,
		Active:          r.Active,
	}

	if r.OffsetUnit != nil {
		u := model.OffsetUnit(*r.OffsetUnit)
		patch.OffsetUnit = &u
	}
	if r.TargetType != nil {
		t := model.TargetType(*r.TargetType)
		patch.TargetType = &t
	}
	if r.Priority != nil {
		p := model.Priority(*r.Priority)
		patch.Priority = &p
	}
	if r.Channel != nil {
		c := model.Channel(*r.Channel)
		patch.Channel = &c
	}

	return patch
}

// GenerateResponse reports the reminder produced by a rule, nil for inactive rules.
type GenerateResponse struct {
	Reminder *ReminderResponse `json:"reminder"`
}
