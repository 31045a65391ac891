// Copyright 2021 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package bankapi

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/moov-io/tnbbank/pkg/codec"
	"github.com/moov-io/tnbbank/pkg/model"
)

// StatusError is returned when a bank answers with a non-2xx status.
type StatusError struct {
	Op         string
	StatusCode int
	Body       string

	// Problem is the "error" field of the body, when the bank sent one.
	Problem string
}

func (e *StatusError) Error() string {
	if e.Problem != "" {
		return fmt.Sprintf("%s: status=%d: %s", e.Op, e.StatusCode, e.Problem)
	}
	if e.Body != "" {
		return fmt.Sprintf("%s: status=%d: %s", e.Op, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s: status=%d", e.Op, e.StatusCode)
}

func newStatusError(c codec.Codec, op string, resp *http.Response, body []byte) *StatusError {
	err := &StatusError{
		Op:         op,
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(body)),
	}
	var problem model.ErrorResponse
	if c.Unmarshal(body, &problem) == nil {
		err.Problem = problem.Error
	}
	return err
}

// IsStatus reports whether err came from a response with the given status code.
func IsStatus(err error, status int) bool {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode == status
	}
	return false
}
