package apikey

import "errors"

var (
	// ErrInvalidKeyFormat is returned for any structurally invalid API key:
	// wrong part count, wrong prefix, or an identifier that does not decode
	// to exactly 16 bytes.
	ErrInvalidKeyFormat = errors.New("apikey: invalid API key format")
)
