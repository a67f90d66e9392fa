package fontreg

import "errors"

var (
	// ErrFontNotFound is returned when no catalogued font matches a request.
	ErrFontNotFound = errors.New("fontreg: font not found")

	// ErrFontLoad is returned when font bytes cannot be read, downloaded
	// or parsed.
	ErrFontLoad = errors.New("fontreg: font load failed")

	// ErrMissingAPIKey is returned by LoadRemoteFonts without an API key.
	ErrMissingAPIKey = errors.New("fontreg: remote font directory needs an API key")
)
