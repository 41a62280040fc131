package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/aliskhannn/reminder-dispatcher/internal/model"
)

type CreateReminderRequest struct {
	Message       string     `json:"message" validate:"required"`
	ScheduledDate time.Time  `json:"scheduled_date" validate:"required"`
	Type          string     `json:"type" validate:"required,oneof=ASSIGNMENT MAINTENANCE"`
	TargetType    string     `json:"target_type" validate:"omitempty,oneof=SYSTEM CONTACT BOTH"`
	TargetID      uuid.UUID  `json:"target_id" validate:"required"`
	Priority      string     `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
	Channel       string     `json:"channel" validate:"omitempty,oneof=IN_APP PUSH EMAIL SMS WHATSAPP"`
	AssignmentID  *uuid.UUID `json:"assignment_id"`
	MaintenanceID *uuid.UUID `json:"maintenance_id"`
}

func (r CreateReminderRequest) ToModel() model.Reminder {
	return model.Reminder{
		Message:       r.Message,
		ScheduledDate: r.ScheduledDate,
		Type:          model.ReminderType(r.Type),
		TargetType:    model.TargetType(r.TargetType),
		TargetID:      r.TargetID,
		Priority:      model.Priority(r.Priority),
		Channel:       model.Channel(r.Channel),
		AssignmentID:  r.AssignmentID,
		MaintenanceID: r.MaintenanceID,
	}
}

// ReminderResponse renders a reminder with its derived is_sent flag.
type ReminderResponse struct {
	model.Reminder
	IsSent bool `json:"is_sent"`
}

func NewReminderResponse(r model.Reminder) ReminderResponse {
	return ReminderResponse{Reminder: r, IsSent: r.IsSent()}
}

func NewReminderResponses(reminders []model.Reminder) []ReminderResponse {
	out := make([]ReminderResponse, 0, len(reminders))
	for _, r := range reminders {
		out = append(out, NewReminderResponse(r))
	}

	return out
}

type ListRemindersQuery struct {
	Status   string `form:"status" validate:"omitempty,oneof=PENDING SENT OVERDUE"`
	Sent     *bool  `form:"sent"`
	Page     int    `form:"page" validate:"omitempty,min=1"`
	PageSize int    `form:"page_size" validate:"omitempty,min=1"`
}

// ToFilter converts the query; call it only after validation.
func (q ListRemindersQuery) ToFilter() model.ReminderFilter {
	filter := model.ReminderFilter{
		Status: model.ReminderStatus(q.Status),
		IsSent: q.Sent,
	}

	filter.Page, filter.PageSize = normalizePage(q.Page, q.PageSize)

	return filter
}

type ReminderPageResponse struct {
	Items    []ReminderResponse `json:"items"`
	Total    int                `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
}
