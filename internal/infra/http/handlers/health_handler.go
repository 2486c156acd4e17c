package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/xavierca1/greenapi-console/internal/usecase"
)

// StorePinger is satisfied by *database.CredentialsRepository.
type StorePinger interface {
	Ping(ctx context.Context) error
}

// ConsoleState is satisfied by *usecase.Console.
type ConsoleState interface {
	Status() usecase.ConnectionStatus
	Pending() []string
}

type HealthHandler struct {
	Store     StorePinger
	Console   ConsoleState
	Version   string
	StartTime time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
	InFlight     []string          `json:"inFlight,omitempty"`
}

func NewHealthHandler(store StorePinger, console ConsoleState, version string) *HealthHandler {
	return &HealthHandler{
		Store:     store,
		Console:   console,
		Version:   version,
		StartTime: time.Now(),
	}
}

func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)

	// Config store
	if h.Store != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		err := h.Store.Ping(ctx)
		cancel()
		if err != nil {
			deps["config_store"] = fmt.Sprintf("unhealthy: %v", err)
		} else {
			deps["config_store"] = "healthy"
		}
	} else {
		deps["config_store"] = "not configured"
	}

	// GREEN-API instance
	var inFlight []string
	if h.Console != nil {
		if h.Console.Status().Connected {
			deps["greenapi"] = "configured"
		} else {
			deps["greenapi"] = "not configured"
		}
		inFlight = h.Console.Pending()
	} else {
		deps["greenapi"] = "not configured"
	}

	status := "healthy"
	for _, v := range deps {
		if v != "healthy" && v != "configured" && v != "not configured" {
			status = "degraded"
			break
		}
	}

	code := http.StatusOK
	if status == "degraded" {
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, HealthResponse{
		Status:       status,
		Version:      h.Version,
		Uptime:       time.Since(h.StartTime).Round(time.Second).String(),
		Dependencies: deps,
		InFlight:     inFlight,
	})
}
