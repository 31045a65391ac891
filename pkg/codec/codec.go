// Copyright 2021 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

// Package codec holds the JSON serialization policies shared by the bank client,
// its fixtures and the mock transport.
package codec

import (
	"io"

	jsoniter "github.com/json-iterator/go"
)

// Codec encodes and decodes JSON documents under a fixed policy.
type Codec interface {
	Marshal(v interface{}) ([]byte, error)
	MarshalIndent(v interface{}, prefix, indent string) ([]byte, error)
	Unmarshal(data []byte, v interface{}) error
	Decode(r io.Reader, v interface{}) error
}

var (
	// Lenient ignores unknown keys and matches keys case-insensitively.
	Lenient Codec = New(jsoniter.Config{
		EscapeHTML:             true,
		SortMapKeys:            true,
		ValidateJsonRawMessage: true,
	})

	// Strict rejects unknown keys and requires exact key casing.
	Strict Codec = New(jsoniter.Config{
		EscapeHTML:             true,
		SortMapKeys:            true,
		ValidateJsonRawMessage: true,
		DisallowUnknownFields:  true,
		CaseSensitive:          true,
	})
)

type policy struct {
	api jsoniter.API
}

// New freezes cfg into a Codec.
func New(cfg jsoniter.Config) Codec {
	return &policy{api: cfg.Froze()}
}

func (p *policy) Marshal(v interface{}) ([]byte, error) {
	return p.api.Marshal(v)
}

func (p *policy) MarshalIndent(v interface{}, prefix, indent string) ([]byte, error) {
	return p.api.MarshalIndent(v, prefix, indent)
}

func (p *policy) Unmarshal(data []byte, v interface{}) error {
	return p.api.Unmarshal(data, v)
}

func (p *policy) Decode(r io.Reader, v interface{}) error {
	return p.api.NewDecoder(r).Decode(v)
}
