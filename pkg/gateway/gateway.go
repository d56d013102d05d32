package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the production endpoint used unless overridden.
const DefaultBaseURL = "https://api.invitekit.com"

// Fixed headers attached to every request.
const (
	apiKeyHeader       = "X-Api-Key"
	clientHeader       = "X-Invitekit-Client"
	clientHeaderValue  = "invitekit-go/1.0"
	defaultHTTPTimeout = 30 * time.Second
)

// maxBodySize caps how much of a response body is read. Invitation lists are
// small; anything beyond this indicates a misbehaving endpoint.
const maxBodySize = 4 << 20

// Client issues synchronous calls against the invitation management API.
// Zero value is not usable; use New.
type Client struct {
	apiKey  string
	baseURL string
	// client is reused across requests for connection pooling
	client *http.Client
	log    *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the production endpoint, e.g. for staging or tests.
// A trailing slash is trimmed so path joining stays predictable.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = trimTrailingSlash(baseURL)
		}
	}
}

// WithHTTPClient replaces the default pooled HTTP client. This allows custom
// transports, proxies, or testing.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.client = client
		}
	}
}

// WithTimeout sets the per-request timeout on the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.client.Timeout = timeout
		}
	}
}

// WithLogger enables debug logging of request method, path, and response
// status. The credential header is never logged.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// New creates a gateway client for the given raw API key. The key is sent
// as-is on every request; validity is the server's concern on this path.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		client: &http.Client{
			Timeout: defaultHTTPTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListByTarget fetches all invitations addressed to the given target.
// An empty response body yields an empty list.
func (c *Client) ListByTarget(ctx context.Context, target Target) ([]Invitation, error) {
	query := url.Values{
		"targetType":  {target.Type},
		"targetValue": {target.Value},
	}
	var out invitationList
	if err := c.do(ctx, http.MethodGet, "/api/v1/invitations", query, nil, &out); err != nil {
		return nil, err
	}
	return out.Invitations, nil
}

// Get fetches a single invitation by id.
func (c *Client) Get(ctx context.Context, id string) (*Invitation, error) {
	var out Invitation
	if err := c.do(ctx, http.MethodGet, "/api/v1/invitations/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Revoke deletes an invitation by id.
func (c *Client) Revoke(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/invitations/"+url.PathEscape(id), nil, nil, nil)
}

// Accept marks a batch of invitations as accepted by the given target in a
// single call. Partial failures are not split out client-side.
func (c *Client) Accept(ctx context.Context, invitationIDs []string, target Target) (*AcceptResult, error) {
	body := acceptRequest{
		InvitationIDs: invitationIDs,
		Target:        target,
	}
	var out AcceptResult
	if err := c.do(ctx, http.MethodPost, "/api/v1/invitations/accept", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListByGroup fetches all invitations attached to a group.
func (c *Client) ListByGroup(ctx context.Context, groupType, groupID string) ([]Invitation, error) {
	var out invitationList
	path := "/api/v1/invitations/by-group/" + url.PathEscape(groupType) + "/" + url.PathEscape(groupID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Invitations, nil
}

// DeleteByGroup deletes every invitation attached to a group.
func (c *Client) DeleteByGroup(ctx context.Context, groupType, groupID string) error {
	path := "/api/v1/invitations/by-group/" + url.PathEscape(groupType) + "/" + url.PathEscape(groupID)
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// Reinvite asks the service to re-deliver an invitation.
func (c *Client) Reinvite(ctx context.Context, id string) (*Invitation, error) {
	var out Invitation
	path := "/api/v1/invitations/" + url.PathEscape(id) + "/reinvite"
	if err := c.do(ctx, http.MethodPost, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do executes one request and decodes a 2xx JSON body into out. An empty 2xx
// body leaves out untouched, which callers rely on for empty-list semantics.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("gateway: failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("gateway: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set(clientHeader, clientHeaderValue)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}

	if c.log != nil {
		c.log.DebugContext(ctx, "invitekit api call",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
		)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Join(ErrRequestFailed, &ResponseError{
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		})
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	return nil
}

func trimTrailingSlash(s string) string {
	for len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}
