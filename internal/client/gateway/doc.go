// Package gateway is the console's single HTTP client for the admin API.
//
// Every request goes through two steps. On the way out the session credential,
// when there is one, is attached as a bearer token. On the way back the
// {code, message, data} envelope is unwrapped: callers receive data only, and
// every failure (a non-zero code, a bad HTTP status, no response at all) comes
// back as a *Error with a fixed, human-readable message. An authorization
// failure clears the session before the error is returned.
package gateway
