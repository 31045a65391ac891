// Copyright 2021 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package model

import (
	"errors"
	"time"
)

// Account is a bank's record of an account and the trust it assigns to it.
type Account struct {
	ID            string    `json:"id"`
	CreatedDate   time.Time `json:"created_date"`
	ModifiedDate  time.Time `json:"modified_date"`
	AccountNumber string    `json:"account_number"`
	Trust         float64   `json:"trust"`
}

func (a *Account) Validate() error {
	if a == nil {
		return errors.New("nil Account")
	}
	if a.ID == "" {
		return missing("id")
	}
	if err := validateKey("account_number", a.AccountNumber); err != nil {
		return err
	}
	return ValidateTrust(a.Trust)
}
