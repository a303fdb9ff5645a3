package mapsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Client is an unauthenticated handle on the Wanderlist API. It serves
// health checks and creates Sessions for everything else.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates an API client. The 10 second timeout is deliberately
// conservative: every API call, redemption included, is safe to retry.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Session wraps the client with a bearer token from the identity provider.
// Token refresh is the provider's concern; when the token expires, calls
// start failing with UNAUTHORIZED and the caller builds a fresh session.
func (c *Client) Session(accessToken string) *Session {
	return &Session{client: c, accessToken: accessToken}
}

// GetLiveness returns the liveness probe result.
func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/livez", nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

// GetReadiness returns the readiness probe result, including dependency
// checks.
func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/readyz", nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

// Session is an authenticated handle on the API.
type Session struct {
	client      *Client
	accessToken string
}
