// Package token generates the signed compact tokens consumed by the InviteKit
// client-side widget.
//
// A token is three URL-safe-base64 segments joined by dots: a JSON header, a
// JSON payload, and an HMAC-SHA256 signature over "<header>.<payload>". The
// signature key is derived from the account's API key (see package apikey),
// never the raw secret itself.
//
// Byte-for-byte compatibility with the sibling SDKs in other languages is a
// hard requirement: claim order is fixed by the struct definitions below, and
// JSON is serialized without HTML escaping so the segment bytes match
// JSON.stringify output from the reference Node.js SDK. Changing either
// breaks signature interop.
//
// Generation is offline: no network I/O, no shared state. Tokens embed the
// current time, so output varies across calls; tests inject a frozen clock
// via WithClock.
//
// There is no verification path. The widget's backing service owns
// verification; this SDK only signs.
package token
