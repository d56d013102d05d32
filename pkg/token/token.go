package token

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrymomot/invitekit/pkg/apikey"
)

// TTL is the fixed lifetime of every signed token.
const TTL = time.Hour

// Fixed header tags shared with the sibling SDKs.
const (
	headerAlgorithm = "HS256"
	headerType      = "JWT"
)

// Identifier is a channel/value pair naming the user being tokenized,
// e.g. {Type: "email", Value: "user@example.com"}. This layer enforces no
// uniqueness across identifiers.
type Identifier struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Group is a caller-declared membership claim embedded in the token payload.
// GroupID is the preferred field for the group's identifier; ID is a
// deprecated alias with identical semantics that remains accepted for
// backward compatibility. Whichever the caller supplies is passed through to
// the payload verbatim; normalization, if any, happens server-side.
type Group struct {
	Type string `json:"type,omitempty"`
	// Deprecated: use GroupID.
	ID      string `json:"id,omitempty"`
	GroupID string `json:"groupId,omitempty"`
	Name    string `json:"name,omitempty"`
}

// Header is the first token segment. Field order is load-bearing: it fixes
// the serialized claim order the signature is computed over.
type Header struct {
	IssuedAt  int64  `json:"iat"`
	Algorithm string `json:"alg"`
	Type      string `json:"typ"`
	KeyID     string `json:"kid"`
}

// Claims is the second token segment. Field order is load-bearing, same as
// Header. Role serializes as null when absent rather than being omitted.
type Claims struct {
	UserID      string       `json:"userId"`
	Groups      []Group      `json:"groups"`
	Role        *string      `json:"role"`
	Expires     int64        `json:"expires"`
	Identifiers []Identifier `json:"identifiers"`
}

// Signer signs widget tokens for a single API key. It holds only the raw
// credential string and a time source; the key is parsed and validated on
// every Sign call, so construction cannot fail.
type Signer struct {
	apiKey string
	now    func() time.Time
}

// Option configures a Signer.
type Option func(*Signer)

// WithClock overrides the time source used for the iat and expires claims.
// Tests use this to freeze time and assert byte-exact output.
func WithClock(now func() time.Time) Option {
	return func(s *Signer) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates a Signer for the given raw API key.
func New(apiKey string, opts ...Option) *Signer {
	s := &Signer{
		apiKey: apiKey,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sign produces a signed compact token asserting the user's identity, group
// memberships, and role. It returns apikey.ErrInvalidKeyFormat before any
// signing work if the configured API key is malformed.
func (s *Signer) Sign(userID string, identifiers []Identifier, groups []Group, role *string) (string, error) {
	key, err := apikey.Parse(s.apiKey)
	if err != nil {
		return "", err
	}

	now := s.now().Unix()
	header := Header{
		IssuedAt:  now,
		Algorithm: headerAlgorithm,
		Type:      headerType,
		KeyID:     key.ID(),
	}
	claims := Claims{
		UserID:      userID,
		Groups:      groups,
		Role:        role,
		Expires:     now + int64(TTL/time.Second),
		Identifiers: identifiers,
	}

	headerJSON, err := marshalSegment(header)
	if err != nil {
		return "", err
	}
	claimsJSON, err := marshalSegment(claims)
	if err != nil {
		return "", err
	}

	signingInput := base64.RawURLEncoding.EncodeToString(headerJSON) +
		"." + base64.RawURLEncoding.EncodeToString(claimsJSON)

	h := hmac.New(sha256.New, key.SigningKey())
	h.Write([]byte(signingInput))
	signature := base64.RawURLEncoding.EncodeToString(h.Sum(nil))

	return signingInput + "." + signature, nil
}

// marshalSegment serializes a token segment without HTML escaping so that
// '<', '>', and '&' are emitted verbatim, matching JSON.stringify in the
// reference Node.js SDK. Divergent escaping changes the signing input and
// breaks signature interop.
func marshalSegment(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("token: failed to marshal segment: %w", err)
	}
	// Encode appends a newline the compact format must not contain.
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
