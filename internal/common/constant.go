// Package common contains shared constants and sentinel errors used across
// the console components.
package common

const (
	// AuthorizationHeaderName is the HTTP header that carries the session
	// credential on outbound requests.
	AuthorizationHeaderName = "Authorization"

	// BearerScheme prefixes the credential in AuthorizationHeaderName.
	BearerScheme = "Bearer"

	// RequestIDHeaderName carries a per-request correlation id.
	RequestIDHeaderName = "X-Request-ID"
)
