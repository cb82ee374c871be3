package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/Saadaqmacalin/houserent-gateway/internal/config"
)

// Credentials carries the per-client tokens available for one outgoing
// request. Either or both may be empty.
type Credentials struct {
	LandlordToken string
	UserToken     string
}

// Bearer selects the single token to attach. Landlord-first: landlord pages
// live under a dedicated path prefix and are never served concurrently with
// admin/customer pages for the same request, so a present landlord token
// wins. Empty result means the request goes out unauthenticated.
func (c Credentials) Bearer() string {
	if c.LandlordToken != "" {
		return c.LandlordToken
	}
	return c.UserToken
}

// Client is the single shared HTTP client for the rental API.
type Client struct {
	base string
	http *http.Client
}

// NewClient builds a client from configuration.
func NewClient(cfg config.UpstreamConfig) *Client {
	return NewClientWith(cfg.BaseURL, &http.Client{Timeout: cfg.Timeout()})
}

// NewClientWith builds a client over an explicit base URL and http.Client.
// Used by tests against an httptest server.
func NewClientWith(baseURL string, hc *http.Client) *Client {
	return &Client{base: strings.TrimRight(baseURL, "/"), http: hc}
}

// Get issues a GET and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, creds Credentials, out any) error {
	return c.do(ctx, http.MethodGet, path, creds, nil, out)
}

// Post issues a POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, creds Credentials, body, out any) error {
	return c.do(ctx, http.MethodPost, path, creds, body, out)
}

// Put issues a PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path string, creds Credentials, body, out any) error {
	return c.do(ctx, http.MethodPut, path, creds, body, out)
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, path string, creds Credentials, out any) error {
	return c.do(ctx, http.MethodDelete, path, creds, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, creds Credentials, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if token := creds.Bearer(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &HTTPError{Status: resp.StatusCode, Message: messageFrom(payload, resp.StatusCode)}
	}

	if out == nil || len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return &HTTPError{Status: resp.StatusCode, Message: "malformed response body"}
	}
	return nil
}

func messageFrom(payload []byte, status int) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(payload, &body); err == nil && body.Message != "" {
		return body.Message
	}
	return http.StatusText(status)
}
