package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"html/template"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/xavierca1/greenapi-console/internal/infra/http/web"
	"github.com/xavierca1/greenapi-console/internal/infra/render"
	"github.com/xavierca1/greenapi-console/internal/locale"
	"github.com/xavierca1/greenapi-console/internal/usecase"
)

const maxActionBody = 1 << 20

// ConsoleService is satisfied by *usecase.Console.
type ConsoleService interface {
	Dispatch(ctx context.Context, action string, raw json.RawMessage) usecase.Outcome
	Status() usecase.ConnectionStatus
}

type ConsoleHandler struct {
	Console  ConsoleService
	Renderer *render.Renderer
	Catalog  *locale.Catalog
	Page     *template.Template
}

func NewConsoleHandler(console ConsoleService, renderer *render.Renderer, catalog *locale.Catalog, page *template.Template) *ConsoleHandler {
	return &ConsoleHandler{
		Console:  console,
		Renderer: renderer,
		Catalog:  catalog,
		Page:     page,
	}
}

type ActionResponse struct {
	RequestID string `json:"requestId"`
	usecase.Outcome
	HTML string `json:"html"`
}

// HandlePage (GET /)
func (h *ConsoleHandler) HandlePage(w http.ResponseWriter, r *http.Request) {
	status := h.Console.Status()
	data := web.PageData{
		Lang:              h.Catalog.Code,
		Connected:         status.Connected,
		StatusLabel:       status.Label,
		IDInstance:        status.IDInstance,
		APITokenInstance:  status.APITokenInstance,
		LoadingText:       h.Catalog.Loading,
		LabelConnected:    h.Catalog.StatusConnected,
		LabelDisconnected: h.Catalog.StatusDisconnected,
	}

	var buf bytes.Buffer
	if err := h.Page.Execute(&buf, data); err != nil {
		log.Printf("❌ HTTP: failed to render page: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// HandleStatus (GET /api/connection)
func (h *ConsoleHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Console.Status())
}

// HandleAction (POST /api/actions/{action})
// Failures of the action itself are reported inside the result with 200.
func (h *ConsoleHandler) HandleAction(w http.ResponseWriter, r *http.Request) {
	action := chi.URLParam(r, "action")
	if action == "" {
		writeErrorResponse(w, http.StatusBadRequest, "MISSING_ACTION", "action is required")
		return
	}

	raw, err := io.ReadAll(io.LimitReader(r.Body, maxActionBody))
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}
	if len(bytes.TrimSpace(raw)) > 0 && !json.Valid(raw) {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON body")
		return
	}

	requestID := uuid.New().String()
	log.Printf("▶️ [%s] action %s", requestID, action)

	out := h.Console.Dispatch(r.Context(), action, raw)

	if out.Result.OK {
		log.Printf("✅ [%s] %s ok", requestID, action)
	} else {
		log.Printf("⚠️ [%s] %s failed: %s", requestID, action, out.Result.Message())
	}

	writeJSON(w, http.StatusOK, ActionResponse{
		RequestID: requestID,
		Outcome:   out,
		HTML:      h.Renderer.HTML(out.Result),
	})
}
