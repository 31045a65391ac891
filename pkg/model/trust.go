// Copyright 2021 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package model

import (
	"errors"
)

// TrustMessage is the signed portion of an UpdateTrustRequest.
type TrustMessage struct {
	Trust float64 `json:"trust"`
}

// UpdateTrustRequest is the PATCH body used to change the trust a bank assigns
// to another bank or to an account.
type UpdateTrustRequest struct {
	Message        TrustMessage `json:"message"`
	NodeIdentifier string       `json:"node_identifier,omitempty"`
	Signature      string       `json:"signature,omitempty"`
}

func (r *UpdateTrustRequest) Validate() error {
	if r == nil {
		return errors.New("nil UpdateTrustRequest")
	}
	if err := ValidateTrust(r.Message.Trust); err != nil {
		return err
	}
	if r.NodeIdentifier != "" {
		if err := validateKey("node_identifier", r.NodeIdentifier); err != nil {
			return err
		}
	}
	if r.Signature != "" {
		return validateSignature("signature", r.Signature)
	}
	return nil
}

// BankTrustResponse is returned after a bank's trust has been updated.
type BankTrustResponse struct {
	Bank
}

func (r *BankTrustResponse) Validate() error {
	if r == nil {
		return errors.New("nil BankTrustResponse")
	}
	return r.Bank.Validate()
}
