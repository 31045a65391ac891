// Copyright 2021 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package model

import (
	"errors"
	"fmt"
)

// Validatable is implemented by every response shape.
type Validatable interface {
	Validate() error
}

// Page is one page of a paginated list endpoint.
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// Validate checks the page and each result. T's pointer must implement Validate.
func (p *Page[T]) Validate() error {
	if p == nil {
		return errors.New("nil Page")
	}
	if p.Count < len(p.Results) {
		return fmt.Errorf("count=%d is less than %d results", p.Count, len(p.Results))
	}
	for i := range p.Results {
		v, ok := any(&p.Results[i]).(Validatable)
		if !ok {
			continue
		}
		if err := v.Validate(); err != nil {
			return fmt.Errorf("results[%d]: %w", i, err)
		}
	}
	return nil
}

// ErrorResponse is the body a bank returns alongside a non-2xx status.
type ErrorResponse struct {
	Error string `json:"error"`
}

func (e *ErrorResponse) Validate() error {
	if e == nil {
		return errors.New("nil ErrorResponse")
	}
	if e.Error == "" {
		return missing("error")
	}
	return nil
}
