package services

import (
	"context"
	"encoding/json"
	"net/url"
	"sync"
)

// call records one request made through fakeAPI.
type call struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
}

// fakeAPI implements API for unit tests. Responses are keyed by
// "METHOD path" and copied into out via JSON, the way the gateway does.
type fakeAPI struct {
	mu        sync.Mutex
	calls     []call
	responses map[string]any
	errs      map[string]error
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{responses: map[string]any{}, errs: map[string]error{}}
}

func (f *fakeAPI) on(method, path string, data any) *fakeAPI {
	f.responses[method+" "+path] = data
	return f
}

func (f *fakeAPI) fail(method, path string, err error) *fakeAPI {
	f.errs[method+" "+path] = err
	return f
}

func (f *fakeAPI) last() call {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		return call{}
	}
	return f.calls[len(f.calls)-1]
}

func (f *fakeAPI) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeAPI) do(method, path string, query url.Values, body, out any) error {
	f.mu.Lock()
	f.calls = append(f.calls, call{Method: method, Path: path, Query: query, Body: body})
	f.mu.Unlock()

	key := method + " " + path
	if err := f.errs[key]; err != nil {
		return err
	}
	data, ok := f.responses[key]
	if !ok || out == nil {
		return nil
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func (f *fakeAPI) Get(_ context.Context, path string, query url.Values, out any) error {
	return f.do("GET", path, query, nil, out)
}

func (f *fakeAPI) Post(_ context.Context, path string, body, out any) error {
	return f.do("POST", path, nil, body, out)
}

func (f *fakeAPI) PostRaw(_ context.Context, path string, body, out any) error {
	return f.do("POST", path, nil, body, out)
}

func (f *fakeAPI) Put(_ context.Context, path string, body, out any) error {
	return f.do("PUT", path, nil, body, out)
}

func (f *fakeAPI) Delete(_ context.Context, path string, out any) error {
	return f.do("DELETE", path, nil, nil, out)
}
