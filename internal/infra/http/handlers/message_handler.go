package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/softharbor/zenvia-bridge/internal/infra/http/middleware"
	"github.com/softharbor/zenvia-bridge/internal/usecase"
)

type MessageHandler struct {
	SendUC *usecase.SendMessageUseCase
}

func NewMessageHandler(sendUC *usecase.SendMessageUseCase) *MessageHandler {
	return &MessageHandler{SendUC: sendUC}
}

func (h *MessageHandler) HandleSend(w http.ResponseWriter, r *http.Request) {
	var input usecase.SendMessageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}

	output, err := h.SendUC.Execute(r.Context(), input)
	if err != nil {
		if usecase.IsDomainError(err) {
			middleware.RecordMessageSent(input.Type, "rejected")
			writeErrorResponse(w, http.StatusBadRequest, "INVALID_MESSAGE", err.Error())
			return
		}
		middleware.RecordMessageSent(input.Type, "failed")
		middleware.RecordProviderError("whatsapp_send")
		writeErrorResponse(w, http.StatusBadGateway, "PROVIDER_ERROR", err.Error())
		return
	}

	middleware.RecordMessageSent(input.Type, "sent")
	writeJSON(w, http.StatusOK, output)
}
