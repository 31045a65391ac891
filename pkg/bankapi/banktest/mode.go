// Copyright 2021 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package banktest

import (
	"fmt"
	"strings"
)

// Mode selects the family of responses a Transport returns for every request.
type Mode int

const (
	// Success returns well-formed fixtures with 200 (reads) or 202 (updates).
	Success Mode = iota

	// ServerError returns 500 with an error body on every route.
	ServerError

	// InvalidPayload returns 202 with structurally incomplete bodies on update
	// routes. Read routes respond as in Success.
	InvalidPayload
)

func (m Mode) String() string {
	switch m {
	case Success:
		return "success"
	case ServerError:
		return "errors"
	case InvalidPayload:
		return "invalid"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode reads the names returned by Mode.String.
func ParseMode(v string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "success":
		return Success, nil
	case "error", "errors":
		return ServerError, nil
	case "invalid":
		return InvalidPayload, nil
	}
	return Success, fmt.Errorf("unknown mock mode %q", v)
}
