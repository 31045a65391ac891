// Copyright 2021 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package banktest

import (
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"testing"

	"github.com/moov-io/tnbbank/internal/fixtures"
	"github.com/moov-io/tnbbank/pkg/codec"
	"github.com/moov-io/tnbbank/pkg/model"

	"github.com/stretchr/testify/require"
)

const testHost = "http://bank.example"

func do(t *testing.T, tr http.RoundTripper, method, path, body string) (*http.Response, []byte) {
	t.Helper()

	var req *http.Request
	var err error
	if body != "" {
		req, err = http.NewRequest(method, testHost+path, strings.NewReader(body))
	} else {
		req, err = http.NewRequest(method, testHost+path, nil)
	}
	require.NoError(t, err)

	resp, err := tr.RoundTrip(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	bs, err := ioutil.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	return resp, bs
}

func TestTransport__Reads(t *testing.T) {
	cases := map[string]model.Validatable{
		fixtures.AccountsEndpoint:         &model.Page[model.Account]{},
		fixtures.BanksEndpoint:            &model.Page[model.Bank]{},
		fixtures.BankTransactionsEndpoint: &model.Page[model.BankTransaction]{},
		fixtures.BlocksEndpoint:           &model.Page[model.Block]{},
		fixtures.ValidatorsEndpoint:       &model.Page[model.Validator]{},
		fixtures.SingleValidatorEndpoint:  &model.Validator{},
		fixtures.ConfigEndpoint:           &model.BankDetail{},
	}
	for _, mode := range []Mode{Success, InvalidPayload} {
		tr := New(mode, WithTB(t))
		for path, shape := range cases {
			t.Run(fmt.Sprintf("%s%s", mode, path), func(t *testing.T) {
				resp, body := do(t, tr, "GET", path+"?limit=10", "")
				require.Equal(t, http.StatusOK, resp.StatusCode)
				require.NoError(t, codec.Strict.Unmarshal(body, shape))
				require.NoError(t, shape.Validate())
			})
		}
	}
}

func TestTransport__ServerError(t *testing.T) {
	tr := New(ServerError, WithTB(t))
	require.Equal(t, ServerError, tr.Mode())

	resp, body := do(t, tr, "GET", fixtures.BanksEndpoint, "")
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var problem model.ErrorResponse
	require.NoError(t, codec.Strict.Unmarshal(body, &problem))
	require.NoError(t, problem.Validate())

	resp, _ = do(t, tr, "PATCH", fixtures.BankTrustEndpoint, `{"message":{"trust":10}}`)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	resp, _ = do(t, tr, "PATCH", fixtures.AccountTrustPrefix+fixtures.AccountNumber, `{"message":{"trust":10}}`)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestTransport__BankTrust(t *testing.T) {
	resp, body := do(t, New(Success, WithTB(t)), "PATCH", fixtures.BankTrustEndpoint, `{"message":{"trust":10}}`)
	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	var trust model.BankTrustResponse
	require.NoError(t, codec.Strict.Unmarshal(body, &trust))
	require.NoError(t, trust.Validate())

	resp, body = do(t, New(InvalidPayload, WithTB(t)), "PATCH", fixtures.BankTrustEndpoint, `{"message":{"trust":10}}`)
	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	trust = model.BankTrustResponse{}
	require.NoError(t, codec.Strict.Unmarshal(body, &trust))
	err := trust.Validate()
	require.True(t, errors.Is(err, model.ErrMissing), "err=%v", err)
}

func TestTransport__AccountTrustEcho(t *testing.T) {
	tr := New(Success, WithTB(t))
	resp, body := do(t, tr, "PATCH", "/accounts/"+fixtures.AccountNumber, `{"message": {"trust": 75}}`)
	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	var acct model.Account
	require.NoError(t, codec.Strict.Unmarshal(body, &acct))
	require.NoError(t, acct.Validate())
	require.Equal(t, float64(75), acct.Trust)

	// any trust value comes back unchanged
	_, body = do(t, tr, "PATCH", "/accounts/"+fixtures.RecipientAccountNumber, `{"message": {"trust": 12.34}, "extra": 1}`)
	acct = model.Account{}
	require.NoError(t, codec.Lenient.Unmarshal(body, &acct))
	require.Equal(t, 12.34, acct.Trust)
}

func TestTransport__AccountTrustInvalid(t *testing.T) {
	resp, body := do(t, New(InvalidPayload, WithTB(t)), "PATCH", "/accounts/"+fixtures.AccountNumber, `{"message": {"trust": 75}}`)
	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	var acct model.Account
	require.NoError(t, codec.Strict.Unmarshal(body, &acct))
	require.Error(t, acct.Validate())
}

func TestTransport__Unhandled(t *testing.T) {
	tr := New(Success)

	req, _ := http.NewRequest("GET", testHost+"/nope", nil)
	require.PanicsWithValue(t, "banktest: unhandled GET /nope", func() {
		tr.RoundTrip(req)
	})

	// known path, wrong method
	req, _ = http.NewRequest("DELETE", testHost+fixtures.BanksEndpoint, nil)
	require.Panics(t, func() {
		tr.RoundTrip(req)
	})
}

func TestTransport__Failer(t *testing.T) {
	var failures []string
	tr := New(Success, WithFailer(func(format string, args ...interface{}) {
		failures = append(failures, fmt.Sprintf(format, args...))
	}))

	req, _ := http.NewRequest("PATCH", testHost+fixtures.AccountsEndpoint, strings.NewReader("{}"))
	resp, err := tr.RoundTrip(req)
	require.Nil(t, resp)
	require.True(t, errors.Is(err, ErrUnhandledRoute), "err=%v", err)
	require.Equal(t, []string{"banktest: unhandled PATCH /accounts"}, failures)

	// malformed trust update body
	failures = nil
	req, _ = http.NewRequest("PATCH", testHost+"/accounts/"+fixtures.AccountNumber, strings.NewReader("{"))
	resp, err = tr.RoundTrip(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Len(t, failures, 1)
	require.Contains(t, failures[0], "decoding trust request")
}

func TestNewClient(t *testing.T) {
	client := NewClient(ServerError, WithTB(t))

	resp, err := client.Get(testHost + fixtures.ConfigEndpoint)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestMode(t *testing.T) {
	for _, m := range []Mode{Success, ServerError, InvalidPayload} {
		parsed, err := ParseMode(m.String())
		require.NoError(t, err)
		require.Equal(t, m, parsed)
	}

	m, err := ParseMode("")
	require.NoError(t, err)
	require.Equal(t, Success, m)

	_, err = ParseMode("sometimes")
	require.Error(t, err)

	require.Equal(t, "Mode(9)", Mode(9).String())
}
