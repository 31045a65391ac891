// Copyright 2021 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package model

import (
	"errors"
	"fmt"
	"time"
)

// Block is a signed batch of transactions sent by one account.
type Block struct {
	ID           string    `json:"id"`
	CreatedDate  time.Time `json:"created_date"`
	ModifiedDate time.Time `json:"modified_date"`
	BalanceKey   string    `json:"balance_key"`
	Sender       string    `json:"sender"`
	Signature    string    `json:"signature"`
}

func (b *Block) Validate() error {
	if b == nil {
		return errors.New("nil Block")
	}
	if b.ID == "" {
		return missing("id")
	}
	if err := validateKey("balance_key", b.BalanceKey); err != nil {
		return err
	}
	if err := validateKey("sender", b.Sender); err != nil {
		return err
	}
	return validateSignature("signature", b.Signature)
}

// BankTransaction is a single transfer inside a Block.
type BankTransaction struct {
	ID        string `json:"id"`
	Block     Block  `json:"block"`
	Amount    int64  `json:"amount"`
	Fee       string `json:"fee"`
	Memo      string `json:"memo"`
	Recipient string `json:"recipient"`
}

func (tx *BankTransaction) Validate() error {
	if tx == nil {
		return errors.New("nil BankTransaction")
	}
	if tx.ID == "" {
		return missing("id")
	}
	if err := tx.Block.Validate(); err != nil {
		return fmt.Errorf("block: %w", err)
	}
	if tx.Amount <= 0 {
		return fmt.Errorf("invalid amount: %d", tx.Amount)
	}
	return validateKey("recipient", tx.Recipient)
}
