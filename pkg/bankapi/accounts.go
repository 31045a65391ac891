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

// GetAccounts lists the accounts a bank knows about.
func (c *Client) GetAccounts(ctx context.Context, opts *ListOpts) (*model.Page[model.Account], error) {
	var page model.Page[model.Account]
	err := c.call("GetAccounts", func() (*http.Response, error) {
		return c.get(ctx, "/accounts", opts.values())
	}, &page)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// UpdateAccountTrust sets the trust the bank assigns to accountNumber and returns
// the updated account.
func (c *Client) UpdateAccountTrust(ctx context.Context, accountNumber string, req model.UpdateTrustRequest) (*model.Account, error) {
	if accountNumber == "" {
		return nil, errors.New("UpdateAccountTrust: missing accountNumber")
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("UpdateAccountTrust: %v", err)
	}
	var acct model.Account
	err := c.call("UpdateAccountTrust", func() (*http.Response, error) {
		return c.patch(ctx, fmt.Sprintf("/accounts/%s", accountNumber), req)
	}, &acct)
	if err != nil {
		return nil, err
	}
	return &acct, nil
}
