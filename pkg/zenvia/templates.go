package zenvia

import (
	"context"
	"net/url"
)

const (
	ChannelWhatsapp = "WHATSAPP"
	ChannelSMS      = "SMS"
	ChannelRCS      = "RCS"
	ChannelEmail    = "EMAIL"
)

// TemplateFilter narrows TemplateList. Empty fields are omitted from the
// query string.
type TemplateFilter struct {
	Channel  string
	SenderID string
	Status   string
}

// TemplateList lists templates. Channel and Status values outside their
// fixed enumerations are dropped from the query instead of rejected; the
// API then lists without that filter. SenderID is never filtered.
func (c *Client) TemplateList(ctx context.Context, filter TemplateFilter) (any, error) {
	params := url.Values{}

	if filter.Channel != "" && isTemplateChannel(filter.Channel) {
		params.Set("channel", filter.Channel)
	}

	if filter.Status != "" && isTemplateStatus(filter.Status) {
		params.Set("status", filter.Status)
	}

	if filter.SenderID != "" {
		params.Set("senderId", filter.SenderID)
	}

	return c.requestGet(ctx, "templates", params)
}

// TemplateRetrieve fetches one template by id. Templates are created on the
// Zenvia console, never through this client.
func (c *Client) TemplateRetrieve(ctx context.Context, id string) (any, error) {
	return c.requestGet(ctx, "templates/"+id, nil)
}

func isTemplateChannel(channel string) bool {
	switch channel {
	case ChannelWhatsapp, ChannelSMS, ChannelRCS, ChannelEmail:
		return true
	}
	return false
}

func isTemplateStatus(status string) bool {
	switch status {
	case "WAITING_REVIEW", "REJECTED", "WAITING_APPROVAL", "APPROVED", "PAUSED", "DISABLED":
		return true
	}
	return false
}
