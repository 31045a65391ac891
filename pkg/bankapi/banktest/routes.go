// Copyright 2021 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package banktest

import (
	"net/http"

	"github.com/moov-io/tnbbank/internal/fixtures"

	"github.com/gorilla/mux"
)

type route struct {
	method  string
	path    string
	prefix  bool
	respond responder
}

func (t *Transport) routes() []route {
	return []route{
		{method: http.MethodGet, path: fixtures.AccountsEndpoint, respond: static(fixtures.Accounts)},
		{method: http.MethodGet, path: fixtures.BanksEndpoint, respond: static(fixtures.Banks)},
		{method: http.MethodGet, path: fixtures.BankTransactionsEndpoint, respond: static(fixtures.BankTransactions)},
		{method: http.MethodGet, path: fixtures.BlocksEndpoint, respond: static(fixtures.Blocks)},
		{method: http.MethodGet, path: fixtures.ValidatorsEndpoint, respond: static(fixtures.Validators)},
		{method: http.MethodGet, path: fixtures.SingleValidatorEndpoint, respond: static(fixtures.Validator)},
		{method: http.MethodGet, path: fixtures.ConfigEndpoint, respond: static(fixtures.BankDetail)},

		{method: http.MethodPatch, path: fixtures.BankTrustEndpoint, respond: t.bankTrust},
		{method: http.MethodPatch, path: fixtures.AccountTrustPrefix, prefix: true, respond: t.readAccountTrust},
	}
}

func (t *Transport) buildRouter() *mux.Router {
	r := mux.NewRouter()
	for _, rt := range t.routes() {
		m := r.Methods(rt.method)
		if rt.prefix {
			m = m.PathPrefix(rt.path)
		} else {
			m = m.Path(rt.path)
		}
		m.Handler(t.handler(rt.respond))
	}
	return r
}
