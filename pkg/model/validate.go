// Copyright 2021 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package model

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrMissing is wrapped by validation errors for absent required fields.
	ErrMissing = errors.New("missing")

	keyRegex       = regexp.MustCompile(`^[a-f0-9]{64}$`)
	signatureRegex = regexp.MustCompile(`^[a-f0-9]{128}$`)
)

func missing(field string) error {
	return fmt.Errorf("%s: %w", field, ErrMissing)
}

// validateKey checks account numbers, node identifiers and balance keys.
func validateKey(field, v string) error {
	if v == "" {
		return missing(field)
	}
	if !keyRegex.MatchString(v) {
		return fmt.Errorf("%s: invalid key %q", field, v)
	}
	return nil
}

func validateSignature(field, v string) error {
	if v == "" {
		return missing(field)
	}
	if !signatureRegex.MatchString(v) {
		return fmt.Errorf("%s: invalid signature", field)
	}
	return nil
}

// ValidateTrust checks trust is a percentage.
func ValidateTrust(trust float64) error {
	if trust < 0 || trust > 100 {
		return fmt.Errorf("trust %.2f is outside of 0-100", trust)
	}
	return nil
}

func validateProtocol(v string) error {
	switch strings.ToLower(v) {
	case "":
		return missing("protocol")
	case "http", "https":
		return nil
	}
	return fmt.Errorf("unknown protocol %q", v)
}
