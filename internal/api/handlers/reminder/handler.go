package reminder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/reminder-dispatcher/internal/api/dto"
	"github.com/aliskhannn/reminder-dispatcher/internal/api/respond"
	"github.com/aliskhannn/reminder-dispatcher/internal/model"
	reminderrepo "github.com/aliskhannn/reminder-dispatcher/internal/repository/reminder"
	remindersvc "github.com/aliskhannn/reminder-dispatcher/internal/service/reminder"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/reminder/mock.go -package=mocks
type reminderService interface {
	Create(ctx context.Context, reminder model.Reminder) (model.Reminder, error)
	Get(ctx context.Context, id uuid.UUID) (model.Reminder, error)
	List(ctx context.Context, filter model.ReminderFilter) (model.ReminderPage, error)
	MarkSent(ctx context.Context, id uuid.UUID) (model.Reminder, error)
}

type Handler struct {
	service   reminderService
	validator *validator.Validate
}

func NewHandler(s reminderService, v *validator.Validate) *Handler {
	return &Handler{service: s, validator: v}
}

func fail(c *ginext.Context, err error, msg string) {
	switch {
	case errors.Is(err, reminderrepo.ErrReminderNotFound):
		respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("reminder not found"))
	case errors.Is(err, remindersvc.ErrInvalidReminder):
		respond.Fail(c.Writer, http.StatusBadRequest, err)
	default:
		zlog.Logger.Error().Err(err).Msg(msg)
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
	}
}

func parseID(c *ginext.Context) (uuid.UUID, bool) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil || id == uuid.Nil {
		zlog.Logger.Warn().Str("id", idStr).Msg("invalid id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return uuid.Nil, false
	}

	return id, true
}

func (h *Handler) Create(c *ginext.Context) {
	var req dto.CreateReminderRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	reminder, err := h.service.Create(c.Request.Context(), req.ToModel())
	if err != nil {
		fail(c, err, "failed to create reminder")
		return
	}

	respond.Created(c.Writer, dto.NewReminderResponse(reminder))
}

func (h *Handler) Get(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	reminder, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err, "failed to get reminder")
		return
	}

	respond.OK(c.Writer, dto.NewReminderResponse(reminder))
}

func (h *Handler) List(c *ginext.Context) {
	var query dto.ListRemindersQuery

	if err := c.ShouldBindQuery(&query); err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid query"))
		return
	}

	if err := h.validator.Struct(query); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate query")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	filter := query.ToFilter()

	page, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		fail(c, err, "failed to list reminders")
		return
	}

	respond.OK(c.Writer, dto.ReminderPageResponse{
		Items:    dto.NewReminderResponses(page.Items),
		Total:    page.Total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	})
}

// MarkSent marks the reminder and all of its deliveries as sent.
func (h *Handler) MarkSent(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	reminder, err := h.service.MarkSent(c.Request.Context(), id)
	if err != nil {
		fail(c, err, "failed to mark reminder sent")
		return
	}

	respond.OK(c.Writer, dto.NewReminderResponse(reminder))
}
