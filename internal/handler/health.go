package handler

import (
	"net/http"

	"github.com/BuzzLyutic/todo-api/internal/monitor"
	"github.com/BuzzLyutic/todo-api/pkg/respond"
)

type HealthHandler struct {
	monitor *monitor.Monitor
}

func NewHealthHandler(m *monitor.Monitor) *HealthHandler {
	return &HealthHandler{monitor: m}
}

// Live отвечает 200 независимо от состояния хранилища
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if err := h.monitor.LastError(); err != nil {
		respond.JSON(w, r, http.StatusServiceUnavailable, map[string]string{
			"status": "unavailable",
			"error":  err.Error(),
		})
		return
	}
	respond.JSON(w, r, http.StatusOK, map[string]string{"status": "ready"})
}
