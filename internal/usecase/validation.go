package usecase

import (
	"fmt"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateSendMessageInput checks the bridge's own API contract. The
// provider-side enum rules live in pkg/zenvia and are not repeated here.
func ValidateSendMessageInput(input SendMessageInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.From) == "" {
		errors = append(errors, ValidationError{"from", "is required"})
	}

	if strings.TrimSpace(input.To) == "" {
		errors = append(errors, ValidationError{"to", "is required"})
	}

	if input.Type == "" {
		errors = append(errors, ValidationError{"type", "is required"})
	} else if input.Type != "text" && input.Type != "template" {
		errors = append(errors, ValidationError{"type", "must be text or template"})
	}

	if input.Type == "text" && strings.TrimSpace(input.Text) == "" {
		errors = append(errors, ValidationError{"text", "is required for text messages"})
	}

	if input.Type == "template" && strings.TrimSpace(input.TemplateID) == "" {
		errors = append(errors, ValidationError{"template_id", "is required for templated messages"})
	}

	return errors
}
