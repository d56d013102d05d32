package invitekit_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/invitekit"
)

const testAPIKey = "itk.AAECAwQFBgcICQoLDA0ODw.super-secret-1"

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	client := invitekit.New(testAPIKey,
		invitekit.WithClock(func() time.Time { return time.Unix(1700000000, 0) }),
	)

	tok, err := client.GenerateToken("user-42",
		[]invitekit.Identifier{{Type: "email", Value: "user@example.com"}},
		[]invitekit.Group{{Type: "team", GroupID: "g-1", Name: "Engineering"}},
		invitekit.Role("admin"),
	)
	require.NoError(t, err)

	// Reference output from the sibling Node.js SDK for identical input.
	assert.Equal(t,
		"eyJpYXQiOjE3MDAwMDAwMDAsImFsZyI6IkhTMjU2IiwidHlwIjoiSldUIiwia2lkIjoiMDAwMTAyMDMtMDQwNS0wNjA3LTA4MDktMGEwYjBjMGQwZTBmIn0."+
			"eyJ1c2VySWQiOiJ1c2VyLTQyIiwiZ3JvdXBzIjpbeyJ0eXBlIjoidGVhbSIsImdyb3VwSWQiOiJnLTEiLCJuYW1lIjoiRW5naW5lZXJpbmcifV0sInJvbGUiOiJhZG1pbiIsImV4cGlyZXMiOjE3MDAwMDM2MDAsImlkZW50aWZpZXJzIjpbeyJ0eXBlIjoiZW1haWwiLCJ2YWx1ZSI6InVzZXJAZXhhbXBsZS5jb20ifV19."+
			"mbLxqVZyaZpJBA5IHyep-WyQrWOhcx8ghg68wgeUYNw",
		tok,
	)
}

func TestGenerateToken_InvalidKey(t *testing.T) {
	t.Parallel()

	client := invitekit.New("not-a-key")
	tok, err := client.GenerateToken("user-42", nil, nil, nil)
	require.ErrorIs(t, err, invitekit.ErrInvalidKeyFormat)
	assert.Empty(t, tok)
}

func TestKeyID(t *testing.T) {
	t.Parallel()

	id, err := invitekit.New(testAPIKey).KeyID()
	require.NoError(t, err)
	assert.Equal(t, "00010203-0405-0607-0809-0a0b0c0d0e0f", id)

	_, err = invitekit.New("bad.key").KeyID()
	require.ErrorIs(t, err, invitekit.ErrInvalidKeyFormat)
}

func TestRole(t *testing.T) {
	t.Parallel()

	r := invitekit.Role("admin")
	require.NotNil(t, r)
	assert.Equal(t, "admin", *r)
}

func TestClient_GatewayDelegation(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, testAPIKey, r.Header.Get("X-Api-Key"))

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/v1/invitations":
			w.Write([]byte(`{"invitations":[{"id":"i1"}]}`))
		case r.Method == http.MethodPost && r.URL.Path == "/api/v1/invitations/accept":
			w.Write([]byte(`{"invitations":[{"id":"i1","status":"accepted"}]}`))
		case r.Method == http.MethodDelete && r.URL.Path == "/api/v1/invitations/i1":
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)

	client := invitekit.New(testAPIKey,
		invitekit.WithBaseURL(server.URL),
		invitekit.WithHTTPTimeout(5*time.Second),
	)
	ctx := context.Background()

	invs, err := client.ListInvitations(ctx, invitekit.EmailTarget("user@example.com"))
	require.NoError(t, err)
	require.Len(t, invs, 1)
	assert.Equal(t, "i1", invs[0].ID)

	result, err := client.AcceptInvitations(ctx, []string{"i1"}, invitekit.EmailTarget("user@example.com"))
	require.NoError(t, err)
	require.Len(t, result.Invitations, 1)

	require.NoError(t, client.RevokeInvitation(ctx, "i1"))

	_, err = client.GetInvitation(ctx, "missing")
	require.ErrorIs(t, err, invitekit.ErrRequestFailed)
}
