package dto

import (
	"github.com/google/uuid"

	"github.com/aliskhannn/reminder-dispatcher/internal/model"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// normalizePage defaults the page to 1 and clamps the page size to (0, maxPageSize].
func normalizePage(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}

	switch {
	case size < 1:
		size = defaultPageSize
	case size > maxPageSize:
		size = maxPageSize
	}

	return page, size
}

type ListDeliveriesQuery struct {
	Status     string `form:"status" validate:"omitempty,oneof=QUEUED PROCESSING SENT FAILED DEAD_LETTER"`
	Channel    string `form:"channel" validate:"omitempty,oneof=IN_APP PUSH EMAIL SMS WHATSAPP"`
	ReminderID string `form:"reminder_id" validate:"omitempty,uuid"`
	Page       int    `form:"page" validate:"omitempty,min=1"`
	PageSize   int    `form:"page_size" validate:"omitempty,min=1"`
}

// ToFilter converts the query; call it only after validation.
func (q ListDeliveriesQuery) ToFilter() model.DeliveryFilter {
	filter := model.DeliveryFilter{
		Status:   model.DeliveryStatus(q.Status),
		Channel:  model.Channel(q.Channel),
		Page:     q.Page,
		PageSize: q.PageSize,
	}

	filter.Page, filter.PageSize = normalizePage(q.Page, q.PageSize)

	if q.ReminderID != "" {
		if id, err := uuid.Parse(q.ReminderID); err == nil {
			filter.ReminderID = &id
		}
	}

	return filter
}

type DeliveryPageResponse struct {
	Items    []model.Delivery `json:"items"`
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}
