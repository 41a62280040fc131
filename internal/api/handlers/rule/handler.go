package rule

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
	rulerepo "github.com/aliskhannn/reminder-dispatcher/internal/repository/rule"
	targetrepo "github.com/aliskhannn/reminder-dispatcher/internal/repository/target"
	rulesvc "github.com/aliskhannn/reminder-dispatcher/internal/service/rule"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/rule/mock.go -package=mocks
type ruleService interface {
	CreateRule(ctx context.Context, rule model.ReminderRule) (model.ReminderRule, error)
	UpdateRule(ctx context.Context, id uuid.UUID, patch model.RulePatch) (model.ReminderRule, error)
	GetRule(ctx context.Context, id uuid.UUID) (model.ReminderRule, error)
	DeleteRule(ctx context.Context, id uuid.UUID) error
	ListRules(ctx context.Context, entityType model.TargetEntityType, entityID *uuid.UUID) ([]model.ReminderRule, error)
	GeneratePreview(ctx context.Context, id uuid.UUID) (model.RulePreview, error)
	GenerateFromRule(ctx context.Context, id uuid.UUID) (*model.Reminder, error)
	RegenerateForTarget(ctx context.Context, entityType model.TargetEntityType, entityID uuid.UUID) ([]model.Reminder, error)
}

type Handler struct {
	service   ruleService
	validator *validator.Validate
}

func NewHandler(s ruleService, v *validator.Validate) *Handler {
	return &Handler{service: s, validator: v}
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

func fail(c *ginext.Context, err error, msg string) {
	switch {
	case errors.Is(err, rulerepo.ErrRuleNotFound):
		respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("rule not found"))
	case errors.Is(err, targetrepo.ErrTargetNotFound):
		respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("target not found"))
	case errors.Is(err, rulesvc.ErrInvalidRule):
		respond.Fail(c.Writer, http.StatusBadRequest, err)
	default:
		zlog.Logger.Error().Err(err).Msg(msg)
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
	}
}

func (h *Handler) decode(c *ginext.Context, req any) bool {
	if err := json.NewDecoder(c.Request.Body).Decode(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return false
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return false
	}

	return true
}

func (h *Handler) Create(c *ginext.Context) {
	var req dto.CreateRuleRequest
	if !h.decode(c, &req) {
		return
	}

	rule, err := h.service.CreateRule(c.Request.Context(), req.ToModel())
	if err != nil {
		fail(c, err, "failed to create rule")
		return
	}

	respond.Created(c.Writer, rule)
}

func (h *Handler) Update(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateRuleRequest
	if !h.decode(c, &req) {
		return
	}

	rule, err := h.service.UpdateRule(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		fail(c, err, "failed to update rule")
		return
	}

	respond.OK(c.Writer, rule)
}

// Delete removes the rule and its pending reminder; sent and overdue reminders are kept.
func (h *Handler) Delete(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteRule(c.Request.Context(), id); err != nil {
		fail(c, err, "failed to delete rule")
		return
	}

	respond.OK(c.Writer, "rule deleted")
}

func (h *Handler) Get(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	rule, err := h.service.GetRule(c.Request.Context(), id)
	if err != nil {
		fail(c, err, "failed to get rule")
		return
	}

	respond.OK(c.Writer, rule)
}

// List filters by the optional target_entity_type and target_entity_id query params.
func (h *Handler) List(c *ginext.Context) {
	entityType := model.TargetEntityType(c.Query("target_entity_type"))

	var entityID *uuid.UUID
	if raw := c.Query("target_entity_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid target_entity_id"))
			return
		}
		entityID = &id
	}

	rules, err := h.service.ListRules(c.Request.Context(), entityType, entityID)
	if err != nil {
		fail(c, err, "failed to list rules")
		return
	}

	respond.OK(c.Writer, rules)
}

func (h *Handler) Preview(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	preview, err := h.service.GeneratePreview(c.Request.Context(), id)
	if err != nil {
		fail(c, err, "failed to preview rule")
		return
	}

	respond.OK(c.Writer, preview)
}

func (h *Handler) Generate(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	reminder, err := h.service.GenerateFromRule(c.Request.Context(), id)
	if err != nil {
		fail(c, err, "failed to generate reminder")
		return
	}

	var resp dto.GenerateResponse
	if reminder != nil {
		r := dto.NewReminderResponse(*reminder)
		resp.Reminder = &r
	}

	respond.OK(c.Writer, resp)
}

// Regenerate is the hook CRUD services call after changing an assignment or maintenance.
func (h *Handler) Regenerate(c *ginext.Context) {
	entityType := model.TargetEntityType(c.Param("type"))
	if entityType != model.TargetEntityAssignment && entityType != model.TargetEntityMaintenance {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid target type"))
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	reminders, err := h.service.RegenerateForTarget(c.Request.Context(), entityType, id)
	if err != nil {
		fail(c, err, "failed to regenerate reminders")
		return
	}

	respond.OK(c.Writer, dto.NewReminderResponses(reminders))
}
