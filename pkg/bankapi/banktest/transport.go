// Copyright 2021 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

// Package banktest provides an http.RoundTripper which answers bank API requests
// from fixtures instead of the network.
//
//	client := bankapi.New(logger, "http://bank.example", banktest.NewClient(banktest.ServerError, banktest.WithTB(t)))
//
// Requests for routes it has no fixture for fail the test immediately.
package banktest

import (
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/moov-io/tnbbank/internal/fixtures"
	"github.com/moov-io/tnbbank/pkg/codec"
	"github.com/moov-io/tnbbank/pkg/model"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/gorilla/mux"
)

// ErrUnhandledRoute is returned by RoundTrip when a request has no fixture and the
// configured failer did not stop the caller.
var ErrUnhandledRoute = errors.New("unhandled route")

// Transport is an http.RoundTripper backed by fixtures. It holds no state besides
// what it was constructed with, so it is safe for concurrent use.
type Transport struct {
	mode   Mode
	codec  codec.Codec
	logger log.Logger
	fail   func(format string, args ...interface{})

	router *mux.Router
}

type Option func(*Transport)

func WithLogger(logger log.Logger) Option {
	return func(t *Transport) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithCodec sets the policy used to read request bodies and write fixtures.
func WithCodec(c codec.Codec) Option {
	return func(t *Transport) {
		if c != nil {
			t.codec = c
		}
	}
}

// WithFailer replaces the default failer, which panics.
func WithFailer(fn func(format string, args ...interface{})) Option {
	return func(t *Transport) {
		if fn != nil {
			t.fail = fn
		}
	}
}

// WithTB fails the running test when a request cannot be answered.
func WithTB(tb testing.TB) Option {
	return func(t *Transport) {
		t.fail = func(format string, args ...interface{}) {
			tb.Helper()
			tb.Fatalf(format, args...)
		}
	}
}

// New returns a Transport which always answers in the given mode.
func New(mode Mode, opts ...Option) *Transport {
	t := &Transport{
		mode:   mode,
		codec:  codec.Lenient,
		logger: log.NewNopLogger(),
		fail: func(format string, args ...interface{}) {
			panic(fmt.Sprintf(format, args...))
		},
	}
	for i := range opts {
		opts[i](t)
	}
	t.router = t.buildRouter()
	return t
}

// NewClient returns an *http.Client whose requests are answered by a Transport.
func NewClient(mode Mode, opts ...Option) *http.Client {
	return &http.Client{
		Transport: New(mode, opts...),
	}
}

func (t *Transport) Mode() Mode {
	return t.mode
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Body != nil {
		defer req.Body.Close()
	}

	var match mux.RouteMatch
	if !t.router.Match(req, &match) || match.MatchErr != nil {
		level.Warn(t.logger).Log("banktest", fmt.Sprintf("unhandled %s %s", req.Method, req.URL.Path), "mode", t.mode)
		t.fail("banktest: unhandled %s %s", req.Method, req.URL.EscapedPath())
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, ErrUnhandledRoute)
	}

	w := httptest.NewRecorder()
	match.Handler.ServeHTTP(w, req)

	resp := w.Result()
	resp.Request = req
	level.Debug(t.logger).Log("banktest", fmt.Sprintf("%s %s", req.Method, req.URL.Path), "mode", t.mode, "status", resp.StatusCode)
	return resp, nil
}

// fixture is one canned response.
type fixture struct {
	status int
	body   string
}

// responder picks the fixture for a request. Returning an error means the request
// itself is unusable and fails the caller.
type responder func(r *http.Request) (fixture, error)

func (t *Transport) handler(respond responder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var fx fixture
		if t.mode == ServerError {
			fx = fixture{status: http.StatusInternalServerError, body: fixtures.InternalServerError()}
		} else {
			var err error
			fx, err = respond(r)
			if err != nil {
				t.fail("banktest: %s %s: %v", r.Method, r.URL.EscapedPath(), err)
				fx = fixture{status: http.StatusBadRequest, body: mustProblem(t.codec, err)}
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(fx.status)
		w.Write([]byte(fx.body))
	})
}

func (t *Transport) readAccountTrust(r *http.Request) (fixture, error) {
	if r.Body == nil {
		return fixture{}, errors.New("missing request body")
	}
	bs, err := ioutil.ReadAll(r.Body)
	if err != nil {
		return fixture{}, fmt.Errorf("reading request body: %v", err)
	}
	var req model.UpdateTrustRequest
	if err := t.codec.Unmarshal(bs, &req); err != nil {
		return fixture{}, fmt.Errorf("decoding trust request: %v", err)
	}
	if t.mode == InvalidPayload {
		return fixture{status: http.StatusAccepted, body: fixtures.EmptyAccount()}, nil
	}
	return fixture{status: http.StatusAccepted, body: fixtures.Account(req.Message.Trust)}, nil
}

func (t *Transport) bankTrust(_ *http.Request) (fixture, error) {
	if t.mode == InvalidPayload {
		return fixture{status: http.StatusAccepted, body: fixtures.InvalidBankTrustResponse()}, nil
	}
	return fixture{status: http.StatusAccepted, body: fixtures.BankTrustResponse()}, nil
}

func static(body func() string) responder {
	return func(_ *http.Request) (fixture, error) {
		return fixture{status: http.StatusOK, body: body()}, nil
	}
}

func mustProblem(c codec.Codec, err error) string {
	bs, _ := c.Marshal(model.ErrorResponse{Error: err.Error()})
	return string(bs)
}
