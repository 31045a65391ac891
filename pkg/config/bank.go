// Copyright 2021 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/moov-io/tnbbank/pkg/bankapi/banktest"
)

const defaultTimeout = 10 * time.Second

type Bank struct {
	Endpoint string        `yaml:"endpoint"`
	Timeout  time.Duration `yaml:"timeout"`
}

func (cfg Bank) Validate() error {
	if cfg.Endpoint == "" {
		return errors.New("missing endpoint")
	}
	u, err := url.Parse(cfg.Endpoint)
	if err != nil {
		return fmt.Errorf("endpoint: %v", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("endpoint %q needs an http or https scheme", cfg.Endpoint)
	}
	if cfg.Timeout < 0 {
		return fmt.Errorf("negative timeout: %v", cfg.Timeout)
	}
	return nil
}

// Mock answers every request from fixtures instead of the bank when Mode is set.
type Mock struct {
	Mode string `yaml:"mode"`
}

func (cfg Mock) Enabled() bool {
	return cfg.Mode != ""
}

func (cfg Mock) Validate() error {
	_, err := banktest.ParseMode(cfg.Mode)
	return err
}
