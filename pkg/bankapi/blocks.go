// Copyright 2021 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package bankapi

import (
	"context"
	"net/http"

	"github.com/moov-io/tnbbank/pkg/model"
)

func (c *Client) GetBlocks(ctx context.Context, opts *ListOpts) (*model.Page[model.Block], error) {
	var page model.Page[model.Block]
	err := c.call("GetBlocks", func() (*http.Response, error) {
		return c.get(ctx, "/blocks", opts.values())
	}, &page)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) GetBankTransactions(ctx context.Context, opts *ListOpts) (*model.Page[model.BankTransaction], error) {
	var page model.Page[model.BankTransaction]
	err := c.call("GetBankTransactions", func() (*http.Response, error) {
		return c.get(ctx, "/bank_transactions", opts.values())
	}, &page)
	if err != nil {
		return nil, err
	}
	return &page, nil
}
