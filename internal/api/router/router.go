package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wb-go/wbf/ginext"

	"github.com/aliskhannn/reminder-dispatcher/internal/api/handlers/delivery"
	"github.com/aliskhannn/reminder-dispatcher/internal/api/handlers/health"
	"github.com/aliskhannn/reminder-dispatcher/internal/api/handlers/reminder"
	"github.com/aliskhannn/reminder-dispatcher/internal/api/handlers/rule"
	"github.com/aliskhannn/reminder-dispatcher/internal/metrics"
)

type Handlers struct {
	Rules      *rule.Handler
	Reminders  *reminder.Handler
	Deliveries *delivery.Handler
	Health     *health.Handler
}

func New(h Handlers, m *metrics.Metrics, metricsHandler http.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())
	e.Use(m.Middleware())

	e.GET("/health", h.Health.Get)
	e.GET("/metrics", gin.WrapH(metricsHandler))

	api := e.Group("/api")

	rules := api.Group("/reminder-rules")
	rules.POST("", h.Rules.Create)
	rules.GET("", h.Rules.List)
	rules.GET("/:id", h.Rules.Get)
	rules.PUT("/:id", h.Rules.Update)
	rules.DELETE("/:id", h.Rules.Delete)
	rules.GET("/:id/preview", h.Rules.Preview)
	rules.POST("/:id/generate", h.Rules.Generate)

	api.POST("/targets/:type/:id/regenerate", h.Rules.Regenerate)

	reminders := api.Group("/reminders")
	reminders.POST("", h.Reminders.Create)
	reminders.GET("", h.Reminders.List)
	reminders.GET("/:id", h.Reminders.Get)
	reminders.POST("/:id/sent", h.Reminders.MarkSent)

	deliveries := api.Group("/notification-deliveries")
	deliveries.GET("", h.Deliveries.List)
	deliveries.GET("/:id", h.Deliveries.Get)
	deliveries.POST("/:id/requeue", h.Deliveries.Requeue)

	return e
}
