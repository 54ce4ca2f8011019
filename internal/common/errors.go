// Package common defines shared constants and sentinel errors used across
// the client layers of the console. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Session errors.
	ErrorUnauthenticated = errors.New("not logged in")

	// Input validation errors raised before a request is sent.
	ErrorInvalidArgument = errors.New("invalid argument")
)
