// Package gateway is a stateless client for the InviteKit invitation
// management API.
//
// Every method maps 1:1 to a single HTTP round trip: no retries, no
// pagination handling, no caching. The raw API key is sent as a credential
// header on each request; the key is never parsed or decoded on this path.
// Invitation records are remote-owned and passed through with minimal
// reshaping (list endpoints unwrap an "invitations" envelope, empty bodies
// map to empty results).
//
// Failures fall into two buckets: transport errors wrap ErrTransport, and
// non-2xx responses wrap ErrRequestFailed together with a *ResponseError
// carrying the status code and raw body:
//
//	invs, err := client.ListByTarget(ctx, gateway.EmailTarget("user@example.com"))
//	if err != nil {
//	    var respErr *gateway.ResponseError
//	    if errors.As(err, &respErr) && respErr.StatusCode == http.StatusNotFound {
//	        // no such target
//	    }
//	}
//
// The client holds only immutable configuration and is safe for concurrent
// use; callers needing parallelism run calls on goroutines of their own.
package gateway
