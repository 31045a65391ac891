// Copyright 2021 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

// Package fixtures builds the JSON documents a bank node returns for each of its
// endpoints. They back the mock transport in pkg/bankapi/banktest.
package fixtures

import (
	"fmt"
	"net/http"
	"time"

	"github.com/moov-io/tnbbank/pkg/codec"
	"github.com/moov-io/tnbbank/pkg/model"
)

const (
	BankNodeIdentifier      = "59479a31c3b91d96bb7a0b3e07f18d4bf301f1bb0bde05f8d36d9611dcbe7cbf"
	BankAccountNumber       = "5e12967707909e62b2bb2036c209085a784fabbc3deccefee70052b6181c8ed8"
	ValidatorNodeIdentifier = "2262026a562b0274163158e92e8fbc4d28e519bc5ba8c1cf403703292be84a51"
	ValidatorAccountNumber  = "4d2ec91f37bc553bc538e91195669b666e26b2ea3e4e31507e38102a758d4f86"
	AccountNumber           = "0cdd4ba04456ca169baca3d66eace869520c62fe84421329086e03d91a68acdb"
	RecipientAccountNumber  = "484b3176c63d5f37d808404af1a12c4b9649cd6f6769f35bdf5a816133623fbc"
	BalanceKey              = "ce51f0d9facaa7d3e69657429dd3f961ce70077a8efb53dcda508c7c0a19d2e3"
	BlockSignature          = "ee5a2f2a2f5261c1b633e08dd61182fd0db5604c853ebd8498f6f28ce8e2ccbbc38093918610ea88a7ad47c7f3192ed955d9d1529e7e390013e43f25a5915c0f"
)

const (
	AccountsEndpoint         = "/accounts"
	BanksEndpoint            = "/banks"
	BankTransactionsEndpoint = "/bank_transactions"
	BlocksEndpoint           = "/blocks"
	ValidatorsEndpoint       = "/validators"
	SingleValidatorEndpoint  = ValidatorsEndpoint + "/" + ValidatorNodeIdentifier
	ConfigEndpoint           = "/config"
	BankTrustEndpoint        = BanksEndpoint + "/" + BankNodeIdentifier

	// AccountTrustPrefix matches PATCH /accounts/<account number>.
	AccountTrustPrefix = AccountsEndpoint + "/"
)

var (
	created  = time.Date(2020, time.October, 8, 2, 18, 7, 324999000, time.UTC)
	modified = time.Date(2020, time.October, 8, 2, 18, 7, 908368000, time.UTC)

	bankPort = 80
)

func mustJSON(v interface{}) string {
	bs, err := codec.Lenient.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("fixtures: marshal %T: %v", v, err))
	}
	return string(bs)
}

func page[T any](results ...T) model.Page[T] {
	return model.Page[T]{
		Count:   len(results),
		Results: results,
	}
}

func bankNode() model.Node {
	return model.Node{
		AccountNumber:         BankAccountNumber,
		IPAddress:             "143.110.137.54",
		NodeIdentifier:        BankNodeIdentifier,
		Port:                  &bankPort,
		Protocol:              "http",
		Version:               "v1.0",
		DefaultTransactionFee: 1,
	}
}

func validator() model.Validator {
	rate := int64(50000)
	return model.Validator{
		Node: model.Node{
			AccountNumber:         ValidatorAccountNumber,
			IPAddress:             "54.219.183.128",
			NodeIdentifier:        ValidatorNodeIdentifier,
			Port:                  nil,
			Protocol:              "http",
			Version:               "v1.0",
			DefaultTransactionFee: 1,
		},
		RootAccountFile:       "http://54.219.183.128/media/root_account_file.json",
		RootAccountFileHash:   "4694e1ee1dcfd8ee5f989e59ae40a9f751812bf5ca52aca2766b322c4060672b",
		SeedBlockIdentifier:   "",
		DailyConfirmationRate: &rate,
		Trust:                 100,
	}
}

func account(trust float64) model.Account {
	return model.Account{
		ID:            "9eca00a5-d925-454c-a8d6-ecbb26ec2f76",
		CreatedDate:   created,
		ModifiedDate:  modified,
		AccountNumber: AccountNumber,
		Trust:         trust,
	}
}

func block() model.Block {
	return model.Block{
		ID:           "c6fb4ab9-b6ce-4cd3-8a0a-1a4f0f3c6a43",
		CreatedDate:  created,
		ModifiedDate: modified,
		BalanceKey:   BalanceKey,
		Sender:       AccountNumber,
		Signature:    BlockSignature,
	}
}

func Accounts() string {
	return mustJSON(page(account(0), model.Account{
		ID:            "d1f4c4a2-5d1e-4f15-9a3a-1d1c06f7e0e1",
		CreatedDate:   created,
		ModifiedDate:  modified,
		AccountNumber: RecipientAccountNumber,
		Trust:         42.5,
	}))
}

// Account returns a single account carrying the provided trust.
func Account(trust float64) string {
	return mustJSON(account(trust))
}

// EmptyAccount is an account document with none of its required fields.
func EmptyAccount() string {
	return mustJSON(struct{}{})
}

func Banks() string {
	return mustJSON(page(model.Bank{Node: bankNode(), Trust: 100}))
}

func BankTransactions() string {
	return mustJSON(page(
		model.BankTransaction{
			ID:        "e7c5c2e9-c1d2-4b9e-8b4c-cf8f5a5a4c6a",
			Block:     block(),
			Amount:    12,
			Fee:       "",
			Memo:      "coffee",
			Recipient: RecipientAccountNumber,
		},
		model.BankTransaction{
			ID:        "2f1d0c6c-2f51-4d0b-9a0f-0f5d3b1b6d55",
			Block:     block(),
			Amount:    1,
			Fee:       "BANK",
			Recipient: BankAccountNumber,
		},
	))
}

func Blocks() string {
	return mustJSON(page(block()))
}

func Validators() string {
	return mustJSON(page(validator()))
}

func Validator() string {
	return mustJSON(validator())
}

func BankDetail() string {
	return mustJSON(model.BankDetail{
		Node:             bankNode(),
		PrimaryValidator: validator(),
		NodeType:         "BANK",
	})
}

func BankTrustResponse() string {
	return mustJSON(model.BankTrustResponse{
		Bank: model.Bank{Node: bankNode(), Trust: 10},
	})
}

// InvalidBankTrustResponse is a trust response missing node_identifier,
// protocol and trust.
func InvalidBankTrustResponse() string {
	n := bankNode()
	return mustJSON(map[string]interface{}{
		"account_number":          n.AccountNumber,
		"ip_address":              n.IPAddress,
		"port":                    n.Port,
		"version":                 n.Version,
		"default_transaction_fee": n.DefaultTransactionFee,
	})
}

func InternalServerError() string {
	return mustJSON(model.ErrorResponse{
		Error: http.StatusText(http.StatusInternalServerError),
	})
}
