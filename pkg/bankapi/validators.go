// Copyright 2021 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package bankapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/moov-io/tnbbank/pkg/model"
)

// GetValidators lists the validators known to the bank.
func (c *Client) GetValidators(ctx context.Context, opts *ListOpts) (*model.Page[model.Validator], error) {
	var page model.Page[model.Validator]
	err := c.call("GetValidators", func() (*http.Response, error) {
		return c.get(ctx, "/validators", opts.values())
	}, &page)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) GetValidator(ctx context.Context, nodeIdentifier string) (*model.Validator, error) {
	if nodeIdentifier == "" {
		return nil, errors.New("GetValidator: missing nodeIdentifier")
	}
	var v model.Validator
	err := c.call("GetValidator", func() (*http.Response, error) {
		return c.get(ctx, fmt.Sprintf("/validators/%s", nodeIdentifier), nil)
	}, &v)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
