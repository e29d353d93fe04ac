package engine

import "errors"

var (
	// ErrUnknownBackend is returned for an engine name other than sequential or parallel.
	ErrUnknownBackend = errors.New("unknown engine")
	// ErrUnknownTail is returned when parsing an unknown tail policy.
	ErrUnknownTail = errors.New("unknown tail policy")
	// ErrEmptyData is returned when unpadding an empty buffer.
	ErrEmptyData = errors.New("empty data")
	// ErrInvalidPadding is returned when PKCS#7 padding is malformed.
	ErrInvalidPadding = errors.New("invalid padding")
)
