package metrics

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_ObserveSend(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveSend("IN_APP", OutcomeSent, 10*time.Millisecond)
	m.ObserveSend("IN_APP", OutcomeSent, 10*time.Millisecond)
	m.ObserveSend("SMS", OutcomeFailed, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Sends.WithLabelValues("IN_APP", OutcomeSent)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Sends.WithLabelValues("SMS", OutcomeFailed)))
}

func TestMetrics_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New(prometheus.NewRegistry())

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/api/reminders/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/reminders/42", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestCounter.WithLabelValues(http.MethodGet, "/api/reminders/:id", "404")))
}

func TestMetrics_RecordDBPoolStats(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.RecordDBPoolStats(sql.DBStats{OpenConnections: 5, InUse: 2, Idle: 3})

	assert.Equal(t, 5.0, testutil.ToFloat64(m.DBConnPoolStats.WithLabelValues("open")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.DBConnPoolStats.WithLabelValues("idle")))
}
