package health

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/reminder-dispatcher/internal/api/respond"
)

const checkTimeout = 2 * time.Second

// Check probes one dependency.
type Check func(ctx context.Context) error

type Handler struct {
	checks map[string]Check
}

func NewHandler(checks map[string]Check) *Handler {
	return &Handler{checks: checks}
}

// Get reports ok, or 503 naming the first failing dependency.
func (h *Handler) Get(c *ginext.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), checkTimeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := h.checks[name](ctx); err != nil {
			zlog.Logger.Error().Err(err).Str("dependency", name).Msg("health check failed")
			respond.Fail(c.Writer, http.StatusServiceUnavailable, fmt.Errorf("%s unavailable", name))
			return
		}
	}

	respond.OK(c.Writer, "ok")
}
