package apikey

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Prefix is the literal tag every InviteKit API key starts with.
const Prefix = "itk"

// idLength is the decoded length of the account identifier segment.
const idLength = 16

// Key is the parsed, immutable form of an API key.
type Key struct {
	id     uuid.UUID
	secret string
}

// Parse validates raw against the "itk.<id>.<secret>" structure and returns
// the parsed key. It returns ErrInvalidKeyFormat unless the key has exactly
// three dot-separated parts, the fixed prefix, and an identifier segment that
// decodes to exactly 16 bytes.
func Parse(raw string) (*Key, error) {
	parts := strings.Split(raw, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: expected 3 parts, got %d", ErrInvalidKeyFormat, len(parts))
	}
	if parts[0] != Prefix {
		return nil, fmt.Errorf("%w: unknown prefix %q", ErrInvalidKeyFormat, parts[0])
	}

	id, err := decodeID(parts[1])
	if err != nil {
		return nil, err
	}

	return &Key{id: id, secret: parts[2]}, nil
}

// ID returns the account identifier as a canonical lowercase hyphenated UUID.
// This value is embedded in signed tokens as the kid header claim.
func (k *Key) ID() string {
	return k.id.String()
}

// SigningKey derives the raw token signing key: HMAC-SHA256 keyed with the
// secret segment over the UUID string. The derivation depends only on
// (secret, uuid) and is stable across calls; sibling SDKs in other languages
// perform the identical computation.
func (k *Key) SigningKey() []byte {
	h := hmac.New(sha256.New, []byte(k.secret))
	h.Write([]byte(k.id.String()))
	return h.Sum(nil)
}

// decodeID decodes the identifier segment. The encoder side emits URL-safe
// base64 without padding, but keys that have passed through other tooling may
// arrive padded or in the standard alphabet, so both are tolerated: the
// URL-safe characters are translated to the standard alphabet and padding is
// restored before decoding.
func decodeID(s string) (uuid.UUID, error) {
	s = strings.ReplaceAll(s, "-", "+")
	s = strings.ReplaceAll(s, "_", "/")
	switch len(s) % 4 {
	case 2:
		s += "=="
	case 3:
		s += "="
	}

	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: identifier is not valid base64", ErrInvalidKeyFormat)
	}
	if len(b) != idLength {
		return uuid.Nil, fmt.Errorf("%w: identifier decodes to %d bytes, want %d", ErrInvalidKeyFormat, len(b), idLength)
	}

	id, err := uuid.FromBytes(b)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s", ErrInvalidKeyFormat, err)
	}
	return id, nil
}
