// Copyright 2021 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package model

import (
	"errors"
	"fmt"
)

// Node holds the fields every bank and validator advertises about itself.
type Node struct {
	AccountNumber         string `json:"account_number"`
	IPAddress             string `json:"ip_address"`
	NodeIdentifier        string `json:"node_identifier"`
	Port                  *int   `json:"port"`
	Protocol              string `json:"protocol"`
	Version               string `json:"version"`
	DefaultTransactionFee int64  `json:"default_transaction_fee"`
}

func (n *Node) Validate() error {
	if n == nil {
		return errors.New("nil Node")
	}
	if err := validateKey("account_number", n.AccountNumber); err != nil {
		return err
	}
	if n.IPAddress == "" {
		return missing("ip_address")
	}
	if err := validateKey("node_identifier", n.NodeIdentifier); err != nil {
		return err
	}
	if n.Port != nil && (*n.Port <= 0 || *n.Port > 65535) {
		return fmt.Errorf("port %d is out of range", *n.Port)
	}
	if err := validateProtocol(n.Protocol); err != nil {
		return err
	}
	if n.Version == "" {
		return missing("version")
	}
	if n.DefaultTransactionFee < 0 {
		return fmt.Errorf("negative default_transaction_fee: %d", n.DefaultTransactionFee)
	}
	return nil
}

// Bank is a peer bank as listed by another bank.
type Bank struct {
	Node
	Trust float64 `json:"trust"`
}

func (b *Bank) Validate() error {
	if b == nil {
		return errors.New("nil Bank")
	}
	if err := b.Node.Validate(); err != nil {
		return err
	}
	return ValidateTrust(b.Trust)
}

// Validator is a validator node known to a bank.
type Validator struct {
	Node
	RootAccountFile       string  `json:"root_account_file"`
	RootAccountFileHash   string  `json:"root_account_file_hash"`
	SeedBlockIdentifier   string  `json:"seed_block_identifier"`
	DailyConfirmationRate *int64  `json:"daily_confirmation_rate"`
	Trust                 float64 `json:"trust"`
}

func (v *Validator) Validate() error {
	if v == nil {
		return errors.New("nil Validator")
	}
	if err := v.Node.Validate(); err != nil {
		return err
	}
	if v.RootAccountFile == "" {
		return missing("root_account_file")
	}
	if err := validateKey("root_account_file_hash", v.RootAccountFileHash); err != nil {
		return err
	}
	if v.DailyConfirmationRate != nil && *v.DailyConfirmationRate < 0 {
		return fmt.Errorf("negative daily_confirmation_rate: %d", *v.DailyConfirmationRate)
	}
	return ValidateTrust(v.Trust)
}

// BankDetail is a bank's own configuration, served from /config.
type BankDetail struct {
	Node
	PrimaryValidator Validator `json:"primary_validator"`
	NodeType         string    `json:"node_type"`
}

func (d *BankDetail) Validate() error {
	if d == nil {
		return errors.New("nil BankDetail")
	}
	if err := d.Node.Validate(); err != nil {
		return err
	}
	if err := d.PrimaryValidator.Validate(); err != nil {
		return fmt.Errorf("primary_validator: %w", err)
	}
	if d.NodeType == "" {
		return missing("node_type")
	}
	return nil
}
