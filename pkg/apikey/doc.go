// Package apikey parses and validates InviteKit API keys and derives the
// per-account token signing key from them.
//
// An API key is an opaque credential of the form "itk.<id>.<secret>", where
// <id> is a 16-byte account identifier encoded as URL-safe base64 (padding
// optional) and <secret> is an opaque signing secret. The decoded identifier
// is rendered as a canonical lowercase UUID string; that string is both the
// key's logical identity (the token header's kid claim) and the message from
// which the signing key is derived.
//
// The derived signing key is HMAC-SHA256(key=secret, message=uuid) and never
// leaves the process. Parsing is cheap and performed on every signing call so
// that the Client can hold nothing but the raw credential string.
package apikey
