package zenvia

import "context"

const whatsappMessagesEndpoint = "channels/whatsapp/messages"

// WhatsappSendText sends a free-text message. Free text is only accepted
// by WhatsApp inside the 24h session window after the recipient answers a
// templated message; the API enforces that, not the client.
func (c *Client) WhatsappSendText(ctx context.Context, from, to, text string) (any, error) {
	body := map[string]any{
		"from": from,
		"to":   to,
		"contents": []map[string]any{
			{
				"type": "text",
				"text": text,
			},
		},
	}
	return c.requestPost(ctx, whatsappMessagesEndpoint, nil, body)
}

// WhatsappSendTemplated sends a pre-approved template, with fields
// substituted into its named placeholders. Templates are the only way to
// start a conversation.
func (c *Client) WhatsappSendTemplated(ctx context.Context, from, to, templateID string, fields map[string]string) (any, error) {
	if fields == nil {
		fields = map[string]string{}
	}
	body := map[string]any{
		"from": from,
		"to":   to,
		"contents": []map[string]any{
			{
				"type":       "template",
				"templateId": templateID,
				"fields":     fields,
			},
		},
	}
	return c.requestPost(ctx, whatsappMessagesEndpoint, nil, body)
}
