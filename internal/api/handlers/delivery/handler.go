package delivery

import (
	"context"
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
	deliveryrepo "github.com/aliskhannn/reminder-dispatcher/internal/repository/delivery"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/delivery/mock.go -package=mocks
type deliveryReader interface {
	Get(ctx context.Context, id uuid.UUID) (model.Delivery, error)
	List(ctx context.Context, filter model.DeliveryFilter) (model.DeliveryPage, error)
}

type requeuer interface {
	Requeue(ctx context.Context, deliveryID uuid.UUID) (model.Delivery, error)
}

type Handler struct {
	deliveries deliveryReader
	dispatch   requeuer
	validator  *validator.Validate
}

func NewHandler(d deliveryReader, r requeuer, v *validator.Validate) *Handler {
	return &Handler{deliveries: d, dispatch: r, validator: v}
}

func fail(c *ginext.Context, err error, msg string) {
	switch {
	case errors.Is(err, deliveryrepo.ErrDeliveryNotFound):
		respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("delivery not found"))
	case errors.Is(err, model.ErrInvalidTransition), errors.Is(err, deliveryrepo.ErrStaleDelivery):
		respond.Fail(c.Writer, http.StatusConflict, err)
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

func (h *Handler) List(c *ginext.Context) {
	var query dto.ListDeliveriesQuery

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

	page, err := h.deliveries.List(c.Request.Context(), filter)
	if err != nil {
		fail(c, err, "failed to list deliveries")
		return
	}

	respond.OK(c.Writer, dto.DeliveryPageResponse{
		Items:    page.Items,
		Total:    page.Total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	})
}

func (h *Handler) Get(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	d, err := h.deliveries.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err, "failed to get delivery")
		return
	}

	respond.OK(c.Writer, d)
}

// Requeue replays a FAILED or DEAD_LETTER delivery.
func (h *Handler) Requeue(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	d, err := h.dispatch.Requeue(c.Request.Context(), id)
	if err != nil {
		fail(c, err, "failed to requeue delivery")
		return
	}

	respond.OK(c.Writer, d)
}
