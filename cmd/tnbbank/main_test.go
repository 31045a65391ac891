// Copyright 2021 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"testing"

	"github.com/moov-io/tnbbank/internal/fixtures"
	"github.com/moov-io/tnbbank/pkg/codec"
	"github.com/moov-io/tnbbank/pkg/model"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	cmd := newRootCommand(&buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestCLI__Lists(t *testing.T) {
	for _, name := range []string{"accounts", "banks", "transactions", "blocks", "validators"} {
		out, err := run(t, "--mock", "success", name, "--limit", "5")
		require.NoError(t, err, name)
		require.Contains(t, out, `"results"`, name)

		out, err = run(t, "--mock", "success", "-o", "table", name)
		require.NoError(t, err, name)
		require.NotEmpty(t, out, name)
	}
}

func TestCLI__Table(t *testing.T) {
	out, err := run(t, "--mock", "success", "-o", "table", "banks")
	require.NoError(t, err)
	require.Contains(t, out, "NODE IDENTIFIER")
	require.Contains(t, out, fixtures.BankNodeIdentifier)
	require.Contains(t, out, "http://143.110.137.54:80")
	require.Contains(t, out, "100.00")

	out, err = run(t, "--mock", "success", "-o", "table", "config")
	require.NoError(t, err)
	require.Contains(t, out, "PRIMARY VALIDATOR")
}

func TestCLI__Validator(t *testing.T) {
	out, err := run(t, "--mock", "success", "validator", fixtures.ValidatorNodeIdentifier)
	require.NoError(t, err)

	var v model.Validator
	require.NoError(t, codec.Strict.Unmarshal([]byte(out), &v))
	require.Equal(t, fixtures.ValidatorNodeIdentifier, v.NodeIdentifier)

	// no fixture for this validator
	_, err = run(t, "--mock", "success", "validator", fixtures.BankNodeIdentifier)
	require.Error(t, err)
}

func TestCLI__Trust(t *testing.T) {
	out, err := run(t, "--mock", "success", "trust", "account", fixtures.AccountNumber, "75")
	require.NoError(t, err)

	var acct model.Account
	require.NoError(t, codec.Strict.Unmarshal([]byte(out), &acct))
	require.Equal(t, float64(75), acct.Trust)

	_, err = run(t, "--mock", "invalid", "trust", "bank", fixtures.BankNodeIdentifier, "10")
	require.Error(t, err)

	_, err = run(t, "--mock", "errors", "trust", "bank", fixtures.BankNodeIdentifier, "10")
	require.Error(t, err)

	_, err = run(t, "--mock", "success", "trust", "account", fixtures.AccountNumber, "lots")
	require.Error(t, err)
}

func TestCLI__Setup(t *testing.T) {
	_, err := run(t, "--mock", "sometimes", "banks")
	require.Error(t, err)

	_, err = run(t, "--mock", "success", "-o", "xml", "banks")
	require.Error(t, err)

	_, err = run(t, "--endpoint", "bank.example", "banks")
	require.Error(t, err)
}
