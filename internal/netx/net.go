// Package netx classifies transport failures of outbound HTTP calls.
package netx

import (
	"context"
	"errors"
	"net"
	"net/url"
	"syscall"
)

// IsNoResponse reports whether err means the request never produced an HTTP
// response: a timeout, a cancelled context, a refused or reset connection,
// or a DNS failure.
func IsNoResponse(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}

// IsTimeout reports whether err is a timeout of any kind.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
