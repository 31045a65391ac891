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

// GetBanks lists the peer banks connected to this bank.
func (c *Client) GetBanks(ctx context.Context, opts *ListOpts) (*model.Page[model.Bank], error) {
	var page model.Page[model.Bank]
	err := c.call("GetBanks", func() (*http.Response, error) {
		return c.get(ctx, "/banks", opts.values())
	}, &page)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// UpdateBankTrust sets the trust this bank assigns to the bank identified by nodeIdentifier.
func (c *Client) UpdateBankTrust(ctx context.Context, nodeIdentifier string, req model.UpdateTrustRequest) (*model.BankTrustResponse, error) {
	if nodeIdentifier == "" {
		return nil, errors.New("UpdateBankTrust: missing nodeIdentifier")
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("UpdateBankTrust: %v", err)
	}
	var resp model.BankTrustResponse
	err := c.call("UpdateBankTrust", func() (*http.Response, error) {
		return c.patch(ctx, fmt.Sprintf("/banks/%s", nodeIdentifier), req)
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetBankDetail returns the bank's own configuration.
func (c *Client) GetBankDetail(ctx context.Context) (*model.BankDetail, error) {
	var detail model.BankDetail
	err := c.call("GetBankDetail", func() (*http.Response, error) {
		return c.get(ctx, "/config", nil)
	}, &detail)
	if err != nil {
		return nil, err
	}
	return &detail, nil
}
