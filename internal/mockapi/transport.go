package mockapi

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
)

// ErrOffline is returned by an offline Transport for every request.
var ErrOffline = errors.New("mock backend unreachable")

// Transport is an http.RoundTripper that serves requests with Handler
// in-process, intercepting them before they reach the network.
type Transport struct {
	Handler http.Handler
	offline atomic.Bool
}

// NewTransport returns a Transport that dispatches to h.
func NewTransport(h http.Handler) *Transport { return &Transport{Handler: h} }

// SetOffline makes every subsequent request fail with ErrOffline, simulating
// an unreachable server.
func (t *Transport) SetOffline(offline bool) { t.offline.Store(offline) }

// Client returns an http.Client that uses t.
func (t *Transport) Client() *http.Client { return &http.Client{Transport: t} }

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := req.Context().Err(); err != nil {
		return nil, err
	}
	if t.offline.Load() {
		return nil, ErrOffline
	}

	in := req.Clone(req.Context())
	if in.Body == nil {
		in.Body = http.NoBody
	}
	in.RequestURI = in.URL.RequestURI()
	in.RemoteAddr = "in-process"

	rec := httptest.NewRecorder()
	t.Handler.ServeHTTP(rec, in)

	if err := req.Context().Err(); err != nil {
		return nil, err
	}
	resp := rec.Result()
	resp.Request = req
	return resp, nil
}

var _ http.RoundTripper = (*Transport)(nil)
