// Copyright 2021 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package model

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var (
	testKey       = strings.Repeat("a1", 32)
	testSignature = strings.Repeat("b2", 64)
)

func testNode() Node {
	port := 80
	return Node{
		AccountNumber:         testKey,
		IPAddress:             "10.0.0.1",
		NodeIdentifier:        testKey,
		Port:                  &port,
		Protocol:              "http",
		Version:               "v1.0",
		DefaultTransactionFee: 1,
	}
}

func testValidator() Validator {
	return Validator{
		Node:                testNode(),
		RootAccountFile:     "http://10.0.0.1/media/root_account_file.json",
		RootAccountFileHash: testKey,
		SeedBlockIdentifier: "",
		Trust:               100,
	}
}

func TestAccount__Validate(t *testing.T) {
	acct := &Account{
		ID:            "1",
		CreatedDate:   time.Now(),
		AccountNumber: testKey,
		Trust:         75,
	}
	require.NoError(t, acct.Validate())

	acct.Trust = 101
	require.Error(t, acct.Validate())

	err := (&Account{}).Validate()
	require.True(t, errors.Is(err, ErrMissing), "err=%v", err)

	acct = nil
	require.Error(t, acct.Validate())
}

func TestNode__Validate(t *testing.T) {
	n := testNode()
	require.NoError(t, n.Validate())

	n.Protocol = "ftp"
	require.Error(t, n.Validate())

	n = testNode()
	n.Port = nil
	require.NoError(t, n.Validate())

	bad := 70000
	n.Port = &bad
	require.Error(t, n.Validate())

	n = testNode()
	n.NodeIdentifier = "ABC"
	require.Error(t, n.Validate())
}

func TestBankDetail__Validate(t *testing.T) {
	detail := &BankDetail{
		Node:             testNode(),
		PrimaryValidator: testValidator(),
		NodeType:         "BANK",
	}
	require.NoError(t, detail.Validate())

	detail.PrimaryValidator.RootAccountFile = ""
	err := detail.Validate()
	require.True(t, errors.Is(err, ErrMissing), "err=%v", err)
	require.Contains(t, err.Error(), "primary_validator")
}

func TestBankTransaction__Validate(t *testing.T) {
	tx := &BankTransaction{
		ID: "tx",
		Block: Block{
			ID:         "block",
			BalanceKey: testKey,
			Sender:     testKey,
			Signature:  testSignature,
		},
		Amount:    5,
		Recipient: testKey,
	}
	require.NoError(t, tx.Validate())

	tx.Block.Signature = "abc"
	require.Error(t, tx.Validate())

	tx.Block.Signature = testSignature
	tx.Amount = 0
	require.Error(t, tx.Validate())
}

func TestUpdateTrustRequest__Validate(t *testing.T) {
	req := &UpdateTrustRequest{Message: TrustMessage{Trust: 75}}
	require.NoError(t, req.Validate())

	req.NodeIdentifier = testKey
	req.Signature = testSignature
	require.NoError(t, req.Validate())

	req.Message.Trust = -1
	require.Error(t, req.Validate())
}

func TestBankTrustResponse__Validate(t *testing.T) {
	resp := &BankTrustResponse{Bank: Bank{Node: testNode(), Trust: 10}}
	require.NoError(t, resp.Validate())

	resp.NodeIdentifier = ""
	err := resp.Validate()
	require.True(t, errors.Is(err, ErrMissing), "err=%v", err)
}

func TestPage__Validate(t *testing.T) {
	page := &Page[Account]{
		Count: 2,
		Results: []Account{
			{ID: "1", AccountNumber: testKey},
			{ID: "2"},
		},
	}
	err := page.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "results[1]")

	page.Results = page.Results[:1]
	require.NoError(t, page.Validate())

	page.Count = 0
	require.Error(t, page.Validate())

	names := &Page[string]{Count: 1, Results: []string{"x"}}
	require.NoError(t, names.Validate())
}

func TestErrorResponse__Validate(t *testing.T) {
	require.NoError(t, (&ErrorResponse{Error: "boom"}).Validate())
	require.Error(t, (&ErrorResponse{}).Validate())
}
