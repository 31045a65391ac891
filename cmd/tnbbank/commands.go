// Copyright 2021 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/moov-io/tnbbank/pkg/bankapi"
	"github.com/moov-io/tnbbank/pkg/model"

	"github.com/antihax/optional"
	"github.com/spf13/cobra"
)

type lister func(ctx context.Context, opts *bankapi.ListOpts) error

func (a *app) listCommand(use, short string, list lister) *cobra.Command {
	var limit, offset int32
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := &bankapi.ListOpts{}
			if cmd.Flags().Changed("limit") {
				opts.Limit = optional.NewInt32(limit)
			}
			if cmd.Flags().Changed("offset") {
				opts.Offset = optional.NewInt32(offset)
			}
			return list(cmd.Context(), opts)
		},
	}
	cmd.Flags().Int32Var(&limit, "limit", 0, "Maximum number of results")
	cmd.Flags().Int32Var(&offset, "offset", 0, "Number of results to skip")
	return cmd
}

func (a *app) accounts(ctx context.Context, opts *bankapi.ListOpts) error {
	page, err := a.client.GetAccounts(ctx, opts)
	if err != nil {
		return err
	}
	return a.render(page, func(p printer) table {
		t := table{header: []string{"ACCOUNT NUMBER", "TRUST", "MODIFIED"}}
		for _, acct := range page.Results {
			t.add(acct.AccountNumber, p.trust(acct.Trust), p.date(acct.ModifiedDate))
		}
		return t
	})
}

func (a *app) banks(ctx context.Context, opts *bankapi.ListOpts) error {
	page, err := a.client.GetBanks(ctx, opts)
	if err != nil {
		return err
	}
	return a.render(page, func(p printer) table {
		t := table{header: []string{"NODE IDENTIFIER", "ADDRESS", "FEE", "TRUST"}}
		for _, b := range page.Results {
			t.add(b.NodeIdentifier, address(b.Node), p.coins(b.DefaultTransactionFee), p.trust(b.Trust))
		}
		return t
	})
}

func (a *app) transactions(ctx context.Context, opts *bankapi.ListOpts) error {
	page, err := a.client.GetBankTransactions(ctx, opts)
	if err != nil {
		return err
	}
	return a.render(page, func(p printer) table {
		t := table{header: []string{"ID", "SENDER", "RECIPIENT", "AMOUNT", "FEE", "MEMO"}}
		for _, tx := range page.Results {
			t.add(tx.ID, tx.Block.Sender, tx.Recipient, p.coins(tx.Amount), tx.Fee, tx.Memo)
		}
		return t
	})
}

func (a *app) blocks(ctx context.Context, opts *bankapi.ListOpts) error {
	page, err := a.client.GetBlocks(ctx, opts)
	if err != nil {
		return err
	}
	return a.render(page, func(p printer) table {
		t := table{header: []string{"ID", "SENDER", "BALANCE KEY", "CREATED"}}
		for _, b := range page.Results {
			t.add(b.ID, b.Sender, b.BalanceKey, p.date(b.CreatedDate))
		}
		return t
	})
}

func (a *app) validators(ctx context.Context, opts *bankapi.ListOpts) error {
	page, err := a.client.GetValidators(ctx, opts)
	if err != nil {
		return err
	}
	return a.render(page, func(p printer) table {
		t := table{header: []string{"NODE IDENTIFIER", "ADDRESS", "FEE", "TRUST"}}
		for _, v := range page.Results {
			t.add(v.NodeIdentifier, address(v.Node), p.coins(v.DefaultTransactionFee), p.trust(v.Trust))
		}
		return t
	})
}

func (a *app) validatorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validator <node-identifier>",
		Short: "Show a single validator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.client.GetValidator(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.render(v, func(p printer) table {
				return nodeTable(p, v.Node, [2]string{"TRUST", p.trust(v.Trust)}, [2]string{"ROOT ACCOUNT FILE", v.RootAccountFile})
			})
		},
	}
}

func (a *app) configCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the bank's configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, err := a.client.GetBankDetail(cmd.Context())
			if err != nil {
				return err
			}
			return a.render(detail, func(p printer) table {
				return nodeTable(p, detail.Node,
					[2]string{"NODE TYPE", detail.NodeType},
					[2]string{"PRIMARY VALIDATOR", detail.PrimaryValidator.NodeIdentifier},
				)
			})
		},
	}
}

func (a *app) trustCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trust",
		Short: "Set the trust this bank assigns to a bank or account",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "bank <node-identifier> <trust>",
			Short: "Update the trust of a connected bank",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				req, err := trustRequest(args[1])
				if err != nil {
					return err
				}
				resp, err := a.client.UpdateBankTrust(cmd.Context(), args[0], req)
				if err != nil {
					return err
				}
				return a.render(resp, func(p printer) table {
					return nodeTable(p, resp.Node, [2]string{"TRUST", p.trust(resp.Trust)})
				})
			},
		},
		&cobra.Command{
			Use:   "account <account-number> <trust>",
			Short: "Update the trust of an account",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				req, err := trustRequest(args[1])
				if err != nil {
					return err
				}
				acct, err := a.client.UpdateAccountTrust(cmd.Context(), args[0], req)
				if err != nil {
					return err
				}
				return a.render(acct, func(p printer) table {
					t := table{header: []string{"ACCOUNT NUMBER", "TRUST", "MODIFIED"}}
					t.add(acct.AccountNumber, p.trust(acct.Trust), p.date(acct.ModifiedDate))
					return t
				})
			},
		},
	)
	return cmd
}

func trustRequest(arg string) (model.UpdateTrustRequest, error) {
	trust, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return model.UpdateTrustRequest{}, fmt.Errorf("invalid trust %q: %v", arg, err)
	}
	return model.UpdateTrustRequest{
		Message: model.TrustMessage{Trust: trust},
	}, nil
}
