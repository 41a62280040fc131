package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"

	"github.com/aliskhannn/reminder-dispatcher/internal/api/handlers/delivery"
	"github.com/aliskhannn/reminder-dispatcher/internal/api/handlers/health"
	"github.com/aliskhannn/reminder-dispatcher/internal/api/handlers/reminder"
	"github.com/aliskhannn/reminder-dispatcher/internal/api/handlers/rule"
	"github.com/aliskhannn/reminder-dispatcher/internal/metrics"
	deliverymocks "github.com/aliskhannn/reminder-dispatcher/internal/mocks/api/handlers/delivery"
	remindermocks "github.com/aliskhannn/reminder-dispatcher/internal/mocks/api/handlers/reminder"
	rulemocks "github.com/aliskhannn/reminder-dispatcher/internal/mocks/api/handlers/rule"
	"github.com/aliskhannn/reminder-dispatcher/internal/model"
)

func TestRouter(t *testing.T) {
	ctrl := gomock.NewController(t)
	v := validator.New()

	rules := rulemocks.NewMockruleService(ctrl)
	reminders := remindermocks.NewMockreminderService(ctrl)
	deliveries := deliverymocks.NewMockdeliveryReader(ctrl)
	requeuer := deliverymocks.NewMockrequeuer(ctrl)

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	e := New(Handlers{
		Rules:      rule.NewHandler(rules, v),
		Reminders:  reminder.NewHandler(reminders, v),
		Deliveries: delivery.NewHandler(deliveries, requeuer, v),
		Health:     health.NewHandler(map[string]health.Check{"postgres": func(context.Context) error { return nil }}),
	}, m, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	id := uuid.New()
	reminders.EXPECT().Get(gomock.Any(), id).Return(model.Reminder{ID: id}, nil)

	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/reminders/"+id.String(), nil))
	assert.Equal(t, http.StatusOK, w.Code)

	reminders.EXPECT().List(gomock.Any(), gomock.Any()).Return(model.ReminderPage{}, nil)

	w = httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/reminders?sent=true", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	rules.EXPECT().DeleteRule(gomock.Any(), id).Return(nil)

	w = httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/reminder-rules/"+id.String(), nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `route="/api/reminders/:id"`)
}
