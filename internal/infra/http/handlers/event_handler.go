package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/softharbor/zenvia-bridge/internal/entity"
	"github.com/softharbor/zenvia-bridge/internal/infra/http/middleware"
	"github.com/softharbor/zenvia-bridge/internal/usecase"
)

// EventHandler is the URL our webhook subscriptions point at: Zenvia POSTs
// MESSAGE and MESSAGE_STATUS callbacks here.
type EventHandler struct {
	IngestUC *usecase.IngestEventUseCase
	Repo     entity.InboundEventRepository
}

func NewEventHandler(ingestUC *usecase.IngestEventUseCase, repo entity.InboundEventRepository) *EventHandler {
	return &EventHandler{
		IngestUC: ingestUC,
		Repo:     repo,
	}
}

func (h *EventHandler) HandleReceive(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	var input usecase.IngestEventInput
	if err := json.Unmarshal(raw, &input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}
	input.Raw = raw

	middleware.RecordInboundEvent(input.Type)

	event, err := h.IngestUC.Execute(r.Context(), input)
	if err != nil {
		if usecase.IsDomainError(err) {
			// Event types we don't know get a 200 so Zenvia stops retrying.
			log.Printf("⚠️ Ignoring callback: %v", err)
			w.WriteHeader(http.StatusOK)
			return
		}
		log.Printf("❌ Failed to ingest event: %v", err)
		writeErrorResponse(w, http.StatusInternalServerError, "INGEST_ERROR", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"id": event.ID})
}

func (h *EventHandler) HandleListRecent(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	events, err := h.Repo.ListRecent(r.Context(), limit)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", err.Error())
		return
	}
	if events == nil {
		events = []*entity.InboundEvent{}
	}
	writeJSON(w, http.StatusOK, events)
}
