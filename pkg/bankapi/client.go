// Copyright 2021 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package bankapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	"github.com/moov-io/tnbbank"
	"github.com/moov-io/tnbbank/pkg/codec"
	"github.com/moov-io/tnbbank/pkg/model"

	"github.com/antihax/optional"
	"github.com/go-kit/kit/log"
	"github.com/moov-io/base"
)

var (
	defaultHTTPClient = &http.Client{
		Timeout: 10 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 100,
			MaxConnsPerHost:     100,
			IdleConnTimeout:     1 * time.Minute,
		},
	}
)

// Client talks to a single bank node.
type Client struct {
	client   *http.Client
	endpoint string
	logger   log.Logger
	codec    codec.Codec
}

type Option func(*Client)

// WithCodec sets the policy responses are decoded with. The default is codec.Lenient.
func WithCodec(c codec.Codec) Option {
	return func(cl *Client) {
		if c != nil {
			cl.codec = c
		}
	}
}

// New returns a Client for the bank at endpoint (e.g. http://143.110.137.54).
// A nil httpClient uses a shared client with a 10s timeout.
func New(logger log.Logger, endpoint string, httpClient *http.Client, opts ...Option) *Client {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	if httpClient == nil {
		httpClient = defaultHTTPClient
	}
	c := &Client{
		client:   httpClient,
		endpoint: endpoint,
		logger:   logger,
		codec:    codec.Lenient,
	}
	for i := range opts {
		opts[i](c)
	}
	return c
}

// ListOpts are the pagination parameters accepted by every list endpoint.
type ListOpts struct {
	Limit  optional.Int32
	Offset optional.Int32
}

func (o *ListOpts) values() url.Values {
	v := make(url.Values)
	if o == nil {
		return v
	}
	if o.Limit.IsSet() {
		v.Set("limit", strconv.Itoa(int(o.Limit.Value())))
	}
	if o.Offset.IsSet() {
		v.Set("offset", strconv.Itoa(int(o.Offset.Value())))
	}
	return v
}

func (c *Client) addRequestHeaders(r *http.Request) {
	r.Header.Set("Accept", "application/json")
	r.Header.Set("User-Agent", fmt.Sprintf("tnbbank/%s", tnbbank.Version))
	r.Header.Set("X-Request-Id", base.ID())
}

func (c *Client) get(ctx context.Context, relPath string, query url.Values) (*http.Response, error) {
	addr, err := c.buildAddress(relPath)
	if err != nil {
		return nil, err
	}
	if len(query) > 0 {
		addr += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, err
	}
	c.addRequestHeaders(req)
	return c.client.Do(req)
}

func (c *Client) patch(ctx context.Context, relPath string, body interface{}) (*http.Response, error) {
	addr, err := c.buildAddress(relPath)
	if err != nil {
		return nil, err
	}
	bs, err := c.codec.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("json encoding: %v", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, addr, bytes.NewReader(bs))
	if err != nil {
		return nil, err
	}
	c.addRequestHeaders(req)
	req.Header.Set("Content-Type", "application/json")
	return c.client.Do(req)
}

// buildAddress joins the endpoint's path with p to form the request URL.
func (c *Client) buildAddress(p string) (string, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid endpoint=%s: %v", c.endpoint, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("invalid endpoint=%q", c.endpoint)
	}
	u.Path = path.Join(u.Path, p)
	return u.String(), nil
}

// read checks the response status, then decodes and validates the body into out.
func (c *Client) read(op string, resp *http.Response, out model.Validatable) error {
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		bs, _ := ioutil.ReadAll(io.LimitReader(resp.Body, 1<<20))
		err := newStatusError(c.codec, op, resp, bs)
		c.logger.Log("bankapi", err.Error(), "requestID", requestID(resp))
		return err
	}
	if err := c.codec.Decode(resp.Body, out); err != nil {
		return fmt.Errorf("%s: problem reading response: %v", op, err)
	}
	if err := out.Validate(); err != nil {
		return fmt.Errorf("%s: invalid response: %w", op, err)
	}
	return nil
}

// call performs one request and records metrics and errors for op.
func (c *Client) call(op string, fn func() (*http.Response, error), out model.Validatable) error {
	start := time.Now()
	defer func() {
		requestDuration.With("operation", op).Observe(time.Since(start).Seconds())
	}()

	resp, err := fn()
	if err != nil {
		c.trackError(op)
		return fmt.Errorf("%s: problem with HTTP request: %v", op, err)
	}
	if err := c.read(op, resp, out); err != nil {
		c.trackError(op)
		return err
	}
	return nil
}

func requestID(resp *http.Response) string {
	if resp == nil || resp.Request == nil {
		return ""
	}
	return resp.Request.Header.Get("X-Request-Id")
}
