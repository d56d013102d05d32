package invitekit

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/invitekit/pkg/apikey"
	"github.com/dmitrymomot/invitekit/pkg/gateway"
	"github.com/dmitrymomot/invitekit/pkg/token"
)

// Re-exported domain types so most applications only import this package.
type (
	Identifier   = token.Identifier
	Group        = token.Group
	Target       = gateway.Target
	Invitation   = gateway.Invitation
	AcceptResult = gateway.AcceptResult
)

// Convenience constructors re-exported from the gateway package.
var (
	EmailTarget = gateway.EmailTarget
	PhoneTarget = gateway.PhoneTarget
)

// Sentinel errors surfaced by client operations; see the pkg packages for
// the full taxonomy.
var (
	ErrInvalidKeyFormat = apikey.ErrInvalidKeyFormat
	ErrTransport        = gateway.ErrTransport
	ErrRequestFailed    = gateway.ErrRequestFailed
)

// Role wraps a role name for GenerateToken; pass nil for no role.
func Role(name string) *string {
	return &name
}

// Client combines the offline token signer and the invitation API client
// behind one construction point. It holds only immutable configuration.
type Client struct {
	apiKey  string
	signer  *token.Signer
	gateway *gateway.Client
}

// Option configures a Client at construction.
type Option func(*settings)

type settings struct {
	gatewayOpts []gateway.Option
	signerOpts  []token.Option
}

// WithBaseURL overrides the production API endpoint.
func WithBaseURL(baseURL string) Option {
	return func(s *settings) {
		s.gatewayOpts = append(s.gatewayOpts, gateway.WithBaseURL(baseURL))
	}
}

// WithHTTPClient replaces the default HTTP client used for API calls.
func WithHTTPClient(client *http.Client) Option {
	return func(s *settings) {
		s.gatewayOpts = append(s.gatewayOpts, gateway.WithHTTPClient(client))
	}
}

// WithHTTPTimeout sets the per-request timeout for API calls.
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(s *settings) {
		s.gatewayOpts = append(s.gatewayOpts, gateway.WithTimeout(timeout))
	}
}

// WithLogger enables debug logging of API calls through the given logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *settings) {
		s.gatewayOpts = append(s.gatewayOpts, gateway.WithLogger(log))
	}
}

// WithClock overrides the signer's time source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(s *settings) {
		s.signerOpts = append(s.signerOpts, token.WithClock(now))
	}
}

// New creates a client for the given raw API key. The key is not validated
// here: signing validates it on every call, and the API sends it as-is.
func New(apiKey string, opts ...Option) *Client {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	return &Client{
		apiKey:  apiKey,
		signer:  token.New(apiKey, s.signerOpts...),
		gateway: gateway.New(apiKey, s.gatewayOpts...),
	}
}

// KeyID parses the client's API key and returns its account identifier as a
// canonical UUID string, without signing anything.
func (c *Client) KeyID() (string, error) {
	key, err := apikey.Parse(c.apiKey)
	if err != nil {
		return "", err
	}
	return key.ID(), nil
}

// GenerateToken signs a widget token asserting the user's identity, group
// memberships, and role. Purely local; returns ErrInvalidKeyFormat if the
// configured API key is malformed.
func (c *Client) GenerateToken(userID string, identifiers []Identifier, groups []Group, role *string) (string, error) {
	return c.signer.Sign(userID, identifiers, groups, role)
}

// ListInvitations fetches all invitations addressed to the given target.
func (c *Client) ListInvitations(ctx context.Context, target Target) ([]Invitation, error) {
	return c.gateway.ListByTarget(ctx, target)
}

// GetInvitation fetches a single invitation by id.
func (c *Client) GetInvitation(ctx context.Context, id string) (*Invitation, error) {
	return c.gateway.Get(ctx, id)
}

// RevokeInvitation deletes an invitation by id.
func (c *Client) RevokeInvitation(ctx context.Context, id string) error {
	return c.gateway.Revoke(ctx, id)
}

// AcceptInvitations marks a batch of invitations as accepted by the target.
func (c *Client) AcceptInvitations(ctx context.Context, invitationIDs []string, target Target) (*AcceptResult, error) {
	return c.gateway.Accept(ctx, invitationIDs, target)
}

// ListInvitationsByGroup fetches all invitations attached to a group.
func (c *Client) ListInvitationsByGroup(ctx context.Context, groupType, groupID string) ([]Invitation, error) {
	return c.gateway.ListByGroup(ctx, groupType, groupID)
}

// DeleteInvitationsByGroup deletes every invitation attached to a group.
func (c *Client) DeleteInvitationsByGroup(ctx context.Context, groupType, groupID string) error {
	return c.gateway.DeleteByGroup(ctx, groupType, groupID)
}

// Reinvite asks the service to re-deliver an invitation.
func (c *Client) Reinvite(ctx context.Context, id string) (*Invitation, error) {
	return c.gateway.Reinvite(ctx, id)
}
