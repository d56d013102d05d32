// Package invitekit is the official Go SDK for the InviteKit invitation and
// identity service.
//
// It provides two independent capabilities behind a single client:
//
//   - Offline generation of signed widget tokens asserting a user's identity,
//     group memberships, and role (no network involved).
//   - Synchronous calls against the invitation management API.
//
// Basic Usage:
//
//	client := invitekit.New(os.Getenv("INVITEKIT_API_KEY"))
//
//	// Sign a token for the widget.
//	tok, err := client.GenerateToken("user-42",
//	    []invitekit.Identifier{{Type: "email", Value: "user@example.com"}},
//	    []invitekit.Group{{Type: "team", GroupID: "g-1", Name: "Engineering"}},
//	    invitekit.Role("admin"),
//	)
//
//	// Call the management API.
//	invs, err := client.ListInvitations(ctx, invitekit.EmailTarget("user@example.com"))
//
// Configuration From the Environment:
//
// The SDK never reads environment variables on its own. Applications that
// prefer env-based configuration call LoadConfig explicitly:
//
//	cfg, err := invitekit.LoadConfig()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	client := invitekit.NewFromConfig(cfg)
//
// The client is immutable after construction and safe for concurrent use.
// There are no retries, no caching, and no background work; each API method
// is one blocking round trip and token generation performs no I/O at all.
package invitekit
