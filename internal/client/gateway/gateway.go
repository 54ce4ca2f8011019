package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/adminconsole/internal/common"
	"github.com/dmitrijs2005/adminconsole/internal/logging"
	"github.com/dmitrijs2005/adminconsole/internal/netx"
	"github.com/google/uuid"
)

const (
	codeSuccess      = 0
	codeUnauthorized = 401

	maxResponseBytes = 10 << 20
)

// Session is the part of the session the gateway needs: the credential to
// attach and a way to drop it when the server rejects it.
type Session interface {
	Credential() string
	Invalidate(ctx context.Context) error
}

type Config struct {
	BaseAddress string
	Timeout     time.Duration
}

type Gateway struct {
	base    *url.URL
	client  *http.Client
	session Session
	log     logging.Logger
}

type envelope struct {
	Code    *int            `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func New(cfg Config, session Session, log logging.Logger) (*Gateway, error) {
	if strings.TrimSpace(cfg.BaseAddress) == "" {
		return nil, errors.New("gateway: base address is required")
	}
	base, err := url.Parse(cfg.BaseAddress)
	if err != nil {
		return nil, fmt.Errorf("gateway: invalid base address: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" || base.Host == "" {
		return nil, fmt.Errorf("gateway: base address %q must be an absolute http(s) URL", cfg.BaseAddress)
	}
	if cfg.Timeout <= 0 {
		return nil, errors.New("gateway: timeout must be positive")
	}
	if session == nil {
		return nil, errors.New("gateway: session is required")
	}
	if log == nil {
		log = logging.Discard()
	}

	return &Gateway{
		base:    base,
		client:  &http.Client{Timeout: cfg.Timeout},
		session: session,
		log:     log,
	}, nil
}

func (g *Gateway) Get(ctx context.Context, path string, query url.Values, out any) error {
	return g.do(ctx, http.MethodGet, path, query, nil, out)
}

func (g *Gateway) Post(ctx context.Context, path string, body, out any) error {
	return g.do(ctx, http.MethodPost, path, nil, body, out)
}

// PostRaw is Post for endpoints that answer with a bare JSON body instead
// of an envelope. A 2xx body is decoded into out as-is; failures are
// classified the same way as for enveloped calls.
func (g *Gateway) PostRaw(ctx context.Context, path string, body, out any) error {
	return g.send(ctx, http.MethodPost, path, nil, body, out, false)
}

func (g *Gateway) Put(ctx context.Context, path string, body, out any) error {
	return g.do(ctx, http.MethodPut, path, nil, body, out)
}

func (g *Gateway) Delete(ctx context.Context, path string, out any) error {
	return g.do(ctx, http.MethodDelete, path, nil, nil, out)
}

func (g *Gateway) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	return g.send(ctx, method, path, query, body, out, true)
}

func (g *Gateway) send(ctx context.Context, method, path string, query url.Values, body, out any, enveloped bool) error {
	requestID := uuid.NewString()
	log := g.log.With("method", method, "path", path, "request_id", requestID)

	req, err := g.newRequest(ctx, method, path, query, body)
	if err != nil {
		log.Error(ctx, "failed to build request", "error", err)
		return err
	}
	req.Header.Set(common.RequestIDHeaderName, requestID)
	g.attachCredential(req)

	resp, err := g.client.Do(req)
	if err != nil {
		log.Error(ctx, "request failed", "error", err, "timeout", netx.IsTimeout(err), "no_response", netx.IsNoResponse(err))
		return noResponseError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		log.Error(ctx, "failed to read response", "status", resp.StatusCode, "error", err)
		return noResponseError(err)
	}

	if gerr := g.unwrap(ctx, resp.StatusCode, raw, out, enveloped); gerr != nil {
		log.Error(ctx, "request failed",
			"status", gerr.Status, "code", gerr.Code, "kind", gerr.Kind.String(), "error", gerr.Message, "cause", gerr.Err)
		return gerr
	}
	log.Debug(ctx, "request completed", "status", resp.StatusCode)
	return nil
}

func (g *Gateway) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	u := g.base.JoinPath(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func (g *Gateway) attachCredential(req *http.Request) {
	if cred := g.session.Credential(); cred != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerScheme+" "+cred)
	}
}

// unwrap turns a received response into data for out or a classified error.
// A decodable envelope with a non-zero code wins over the HTTP status; a
// response without one is classified by status. When enveloped is false a
// 2xx body is the data itself.
func (g *Gateway) unwrap(ctx context.Context, status int, raw []byte, out any, enveloped bool) *Error {
	env, ok := decodeEnvelope(raw)
	ok2xx := status >= 200 && status < 300

	var gerr *Error
	switch {
	case ok && *env.Code != codeSuccess:
		gerr = businessError(*env.Code, status, env.Message)
	case !ok2xx:
		gerr = statusError(status)
	case !enveloped:
		if err := decodeData(raw, out); err != nil {
			return malformedError(status, err)
		}
		return nil
	case !ok:
		gerr = malformedError(status, errors.New("response is not an envelope"))
	default:
		if err := decodeData(env.Data, out); err != nil {
			return malformedError(status, err)
		}
		return nil
	}

	if gerr.Kind == KindUnauthorized {
		if err := g.session.Invalidate(ctx); err != nil {
			g.log.Warn(ctx, "failed to clear session", "error", err)
		}
	}
	return gerr
}

func decodeEnvelope(raw []byte) (envelope, bool) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil || env.Code == nil {
		return envelope{}, false
	}
	return env, true
}

func decodeData(data json.RawMessage, out any) error {
	if out == nil || len(data) == 0 || string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}
