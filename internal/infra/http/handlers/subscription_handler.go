package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/softharbor/zenvia-bridge/internal/entity"
	"github.com/softharbor/zenvia-bridge/internal/infra/http/middleware"
	"github.com/softharbor/zenvia-bridge/internal/usecase"
)

type SubscriptionHandler struct {
	Gateway    usecase.ZenviaGateway
	RegisterUC *usecase.RegisterWebhookUseCase
	RemoveUC   *usecase.RemoveWebhookUseCase
	Repo       entity.SubscriptionRepository
}

func NewSubscriptionHandler(
	gateway usecase.ZenviaGateway,
	registerUC *usecase.RegisterWebhookUseCase,
	removeUC *usecase.RemoveWebhookUseCase,
	repo entity.SubscriptionRepository,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		Gateway:    gateway,
		RegisterUC: registerUC,
		RemoveUC:   removeUC,
		Repo:       repo,
	}
}

// HandleList proxies the provider's live subscription list.
func (h *SubscriptionHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	out, err := h.Gateway.WebhookList(r.Context())
	if err != nil {
		middleware.RecordProviderError("webhook_list")
		writeErrorResponse(w, http.StatusBadGateway, "PROVIDER_ERROR", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// HandleListMirror lists the local copies, no provider round trip.
func (h *SubscriptionHandler) HandleListMirror(w http.ResponseWriter, r *http.Request) {
	subs, err := h.Repo.List(r.Context())
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", err.Error())
		return
	}
	if subs == nil {
		subs = []*entity.Subscription{}
	}
	writeJSON(w, http.StatusOK, subs)
}

func (h *SubscriptionHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_ID", "id must be an integer")
		return
	}

	out, err := h.Gateway.WebhookRetrieve(r.Context(), id)
	if err != nil {
		middleware.RecordProviderError("webhook_retrieve")
		writeErrorResponse(w, http.StatusBadGateway, "PROVIDER_ERROR", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *SubscriptionHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.RegisterWebhookInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}

	output, err := h.RegisterUC.Execute(r.Context(), input)
	if err != nil {
		if usecase.IsDomainError(err) {
			writeErrorResponse(w, http.StatusBadRequest, "INVALID_WEBHOOK", err.Error())
			return
		}
		middleware.RecordProviderError("webhook_create")
		writeErrorResponse(w, http.StatusBadGateway, "PROVIDER_ERROR", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, output)
}

func (h *SubscriptionHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_ID", "id must be an integer")
		return
	}

	out, err := h.RemoveUC.Execute(r.Context(), id)
	if err != nil {
		middleware.RecordProviderError("webhook_delete")
		writeErrorResponse(w, http.StatusBadGateway, "PROVIDER_ERROR", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, out)
}
