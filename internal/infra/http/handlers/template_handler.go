package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/softharbor/zenvia-bridge/internal/infra/http/middleware"
	"github.com/softharbor/zenvia-bridge/internal/usecase"
	"github.com/softharbor/zenvia-bridge/pkg/zenvia"
)

type TemplateHandler struct {
	Gateway usecase.ZenviaGateway
}

func NewTemplateHandler(gateway usecase.ZenviaGateway) *TemplateHandler {
	return &TemplateHandler{Gateway: gateway}
}

// HandleList passes the query filters straight to the client, which drops
// invalid channel/status values instead of rejecting them.
func (h *TemplateHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	filter := zenvia.TemplateFilter{
		Channel:  r.URL.Query().Get("channel"),
		SenderID: r.URL.Query().Get("senderId"),
		Status:   r.URL.Query().Get("status"),
	}

	out, err := h.Gateway.TemplateList(r.Context(), filter)
	if err != nil {
		middleware.RecordProviderError("template_list")
		writeErrorResponse(w, http.StatusBadGateway, "PROVIDER_ERROR", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *TemplateHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_ID", "id is required")
		return
	}

	out, err := h.Gateway.TemplateRetrieve(r.Context(), id)
	if err != nil {
		middleware.RecordProviderError("template_retrieve")
		writeErrorResponse(w, http.StatusBadGateway, "PROVIDER_ERROR", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, out)
}
