package zenvia

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// APIHost is the fixed base for every Zenvia v2 endpoint.
const APIHost = "https://api.zenvia.com/v2/"

type Client struct {
	token   string
	baseURL string
	http    *http.Client
}

// NewClient does no I/O and does not check the token; a bad token is
// rejected by the API at call time.
func NewClient(token string) *Client {
	return &Client{
		token:   token,
		baseURL: APIHost,
		http:    http.DefaultClient,
	}
}

// NewClientWithHTTP lets the caller own timeouts and transport. The client
// itself never imposes a deadline and never retries.
func NewClientWithHTTP(token string, httpClient *http.Client) *Client {
	c := NewClient(token)
	if httpClient != nil {
		c.http = httpClient
	}
	return c
}

func (c *Client) setAuthHeader(req *http.Request) {
	req.Header.Set("X-API-Token", c.token)
}

func (c *Client) endpointURL(endpoint string, params url.Values) string {
	u := c.baseURL + endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

// requestGet issues a GET and treats any transport failure or non-2xx
// status as a RequestError. The body comes back as decoded JSON.
func (c *Client) requestGet(ctx context.Context, endpoint string, params url.Values) (any, error) {
	return c.requestNoBody(ctx, http.MethodGet, endpoint, params)
}

// requestDelete has the same error contract as requestGet.
func (c *Client) requestDelete(ctx context.Context, endpoint string, params url.Values) (any, error) {
	return c.requestNoBody(ctx, http.MethodDelete, endpoint, params)
}

func (c *Client) requestNoBody(ctx context.Context, method, endpoint string, params url.Values) (any, error) {
	u := c.endpointURL(endpoint, params)

	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return nil, &RequestError{Message: err.Error(), Err: err}
	}
	c.setAuthHeader(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &RequestError{Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RequestError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("%d error for url %s", resp.StatusCode, u),
		}
	}

	return decodeBody(resp.Body)
}

// requestPost differs from GET/DELETE on purpose: a non-2xx status is not
// raised by the transport check. The body is decoded first and embedded in
// the error, so the caller keeps the API's diagnostic payload.
func (c *Client) requestPost(ctx context.Context, endpoint string, params url.Values, body any) (any, error) {
	u := c.endpointURL(endpoint, params)

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, &RequestError{Message: fmt.Sprintf("encoding request body: %v", err), Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(payload))
	if err != nil {
		return nil, &RequestError{Message: err.Error(), Err: err}
	}
	c.setAuthHeader(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &RequestError{Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{Message: err.Error(), Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RequestError{
			StatusCode: resp.StatusCode,
			Message: fmt.Sprintf(
				"Request response with error status[%d]:\n%s",
				resp.StatusCode, prettyJSON(raw)),
		}
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, &RequestError{Message: fmt.Sprintf("decoding response body: %v", err), Err: err}
	}
	return decoded, nil
}

func decodeBody(r io.Reader) (any, error) {
	var decoded any
	if err := json.NewDecoder(r).Decode(&decoded); err != nil {
		return nil, &RequestError{Message: fmt.Sprintf("decoding response body: %v", err), Err: err}
	}
	return decoded, nil
}

// prettyJSON re-indents the API body with two spaces; non-JSON bodies are
// kept verbatim.
func prettyJSON(raw []byte) string {
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return string(raw)
	}
	pretty, err := json.MarshalIndent(decoded, "", "  ")
	if err != nil {
		return string(raw)
	}
	return string(pretty)
}
