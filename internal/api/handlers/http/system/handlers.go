package system

import (
	"context"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"wasteCollect/internal/render"
	"wasteCollect/pkg/e"
)

const pingTimeout = 2 * time.Second

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	logger *slog.Logger
	checks map[string]Pinger
}

// NewHandler takes the dependencies checked by SystemReady, keyed by the name
// reported in the response.
func NewHandler(logger *slog.Logger, checks map[string]Pinger) *Handler {
	return &Handler{logger: logger, checks: checks}
}

// SystemHealth reports liveness.
func (h *Handler) SystemHealth(w http.ResponseWriter, r *http.Request) {
	if err := render.Success(w, http.StatusOK, "ok", nil); err != nil {
		h.logger.Error("json encode failed", slog.Any("error", err))
	}
}

// SystemReady pings every dependency and answers 503 if any of them fails.
func (h *Handler) SystemReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	status := make(map[string]string, len(names))
	healthy := true
	for _, name := range names {
		if err := h.checks[name].Ping(ctx); err != nil {
			h.logger.Warn("dependency not ready", slog.String("dependency", name), slog.Any("error", err))
			status[name] = "down"
			healthy = false
			continue
		}
		status[name] = "up"
	}

	if !healthy {
		_ = render.JSON(w, http.StatusServiceUnavailable, readyEnvelope(false, status))
		return
	}
	_ = render.JSON(w, http.StatusOK, readyEnvelope(true, status))
}

func readyEnvelope(ok bool, status map[string]string) any {
	code, msg := e.CodeSuccess, "ready"
	if !ok {
		code, msg = e.CodeInternal, "not ready"
	}
	return struct {
		Success bool              `json:"success"`
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Data    map[string]string `json:"data"`
	}{ok, string(code), msg, status}
}
