package usecase

import (
	"context"

	"github.com/softharbor/zenvia-bridge/pkg/zenvia"
)

type SendMessageUseCase struct {
	Gateway ZenviaGateway
}

func NewSendMessageUseCase(gateway ZenviaGateway) *SendMessageUseCase {
	return &SendMessageUseCase{Gateway: gateway}
}

// Execute dispatches a WhatsApp message, free text or templated. The API
// rejects free text outside the 24h session window; that error comes back
// as a TechnicalError with the provider's payload in the message.
func (uc *SendMessageUseCase) Execute(ctx context.Context, input SendMessageInput) (*SendMessageOutput, error) {
	if errs := ValidateSendMessageInput(input); len(errs) > 0 {
		return nil, &DomainError{Code: "INVALID_MESSAGE", Message: errs[0].Error()}
	}

	var result any
	var err error

	switch input.Type {
	case "text":
		result, err = uc.Gateway.WhatsappSendText(ctx, input.From, input.To, input.Text)
	case "template":
		result, err = uc.Gateway.WhatsappSendTemplated(ctx, input.From, input.To, input.TemplateID, input.Fields)
	}

	if err != nil {
		if zenvia.IsValidationError(err) {
			return nil, &DomainError{Code: "INVALID_MESSAGE", Message: err.Error()}
		}
		return nil, &TechnicalError{Code: "PROVIDER_ERROR", Message: err.Error()}
	}

	return &SendMessageOutput{Raw: result}, nil
}
