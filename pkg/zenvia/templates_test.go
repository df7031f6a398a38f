package zenvia

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newQueryCapturingClient(t *testing.T, query *url.Values, path *string) *Client {
	t.Helper()
	return newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		*query = r.URL.Query()
		if path != nil {
			*path = r.URL.Path
		}
		w.Write([]byte(`[]`))
	})
}

func TestTemplateListValidFilters(t *testing.T) {
	var query url.Values
	c := newQueryCapturingClient(t, &query, nil)

	_, err := c.TemplateList(context.Background(), TemplateFilter{
		Channel:  ChannelWhatsapp,
		SenderID: "soft-harbor",
		Status:   "APPROVED",
	})

	assert.NoError(t, err)
	assert.Equal(t, "WHATSAPP", query.Get("channel"))
	assert.Equal(t, "APPROVED", query.Get("status"))
	assert.Equal(t, "soft-harbor", query.Get("senderId"))
}

func TestTemplateListDropsInvalidChannelSilently(t *testing.T) {
	var query url.Values
	c := newQueryCapturingClient(t, &query, nil)

	_, err := c.TemplateList(context.Background(), TemplateFilter{Channel: "INVALID"})

	assert.NoError(t, err, "invalid channel is dropped, never an error")
	assert.False(t, query.Has("channel"))
}

func TestTemplateListDropsInvalidStatusSilently(t *testing.T) {
	var query url.Values
	c := newQueryCapturingClient(t, &query, nil)

	_, err := c.TemplateList(context.Background(), TemplateFilter{
		Status:   "HALF_APPROVED",
		SenderID: "soft-harbor",
	})

	assert.NoError(t, err)
	assert.False(t, query.Has("status"))
	assert.Equal(t, "soft-harbor", query.Get("senderId"), "senderId passes through unfiltered")
}

func TestTemplateListEmptyFilterSendsNoParams(t *testing.T) {
	var query url.Values
	c := newQueryCapturingClient(t, &query, nil)

	_, err := c.TemplateList(context.Background(), TemplateFilter{})
	assert.NoError(t, err)
	assert.Empty(t, query)
}

func TestTemplateRetrievePath(t *testing.T) {
	var query url.Values
	var path string
	c := newQueryCapturingClient(t, &query, &path)

	_, err := c.TemplateRetrieve(context.Background(), "c5f3228e-3dd9-49be-9922-9f362ca5e089")
	assert.NoError(t, err)
	assert.Equal(t, "/v2/templates/c5f3228e-3dd9-49be-9922-9f362ca5e089", path)
}
