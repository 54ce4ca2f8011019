// Package services contains the application services of the console. Each
// service wraps one group of admin API endpoints; the chat service also owns
// the local transcript.
package services

import (
	"context"
	"net/url"
)

// API is the request surface the services call through. *gateway.Gateway
// implements it: out receives the unwrapped envelope data and errors are
// already classified.
type API interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body, out any) error
	// PostRaw posts to an endpoint that answers without an envelope.
	PostRaw(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string, out any) error
}
