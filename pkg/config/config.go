// Copyright 2021 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/moov-io/tnbbank/internal/util"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/spf13/viper"
)

type Config struct {
	Logger  log.Logger `yaml:"-" json:"-"`
	Logging Logging

	Bank Bank
	Mock Mock
}

type Logging struct {
	Format string
	Level  string
}

func (cfg Logging) Validate() error {
	switch strings.ToLower(cfg.Format) {
	case "", "json", "plain", "logfmt":
	default:
		return fmt.Errorf("unknown format %q", cfg.Format)
	}
	switch strings.ToLower(cfg.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown level %q", cfg.Level)
	}
	return nil
}

func Empty() *Config {
	return &Config{
		Logger: log.NewNopLogger(),
		Bank: Bank{
			Endpoint: "http://localhost:8000",
			Timeout:  defaultTimeout,
		},
	}
}

// FromFile reads the YAML config at path, or returns the defaults when path is empty.
// BANK_ENDPOINT overrides bank.endpoint.
func FromFile(path string) (*Config, error) {
	if path != "" {
		bs, err := ioutil.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %v", path, err)
		}
		return Read(bs)
	}
	return finish(Empty())
}

func Read(data []byte) (*Config, error) {
	vip := viper.New()
	vip.SetConfigType("yaml")
	if err := vip.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("problem reading config: %v", err)
	}

	cfg := Empty()
	if err := vip.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("problem unmarshaling config: %v", err)
	}
	return finish(cfg)
}

func finish(cfg *Config) (*Config, error) {
	cfg.Bank.Endpoint = util.Or(os.Getenv("BANK_ENDPOINT"), cfg.Bank.Endpoint)
	cfg = setupLogger(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setupLogger(cfg *Config) *Config {
	if strings.EqualFold(cfg.Logging.Format, "json") {
		cfg.Logger = log.NewJSONLogger(os.Stderr)
	} else {
		cfg.Logger = log.NewLogfmtLogger(os.Stderr)
	}

	cfg.Logger = log.With(cfg.Logger, "ts", log.DefaultTimestampUTC)
	cfg.Logger = log.With(cfg.Logger, "caller", log.DefaultCaller)

	switch strings.ToLower(cfg.Logging.Level) {
	case "debug":
		cfg.Logger = level.NewFilter(cfg.Logger, level.AllowDebug())
	case "warn":
		cfg.Logger = level.NewFilter(cfg.Logger, level.AllowWarn())
	case "error":
		cfg.Logger = level.NewFilter(cfg.Logger, level.AllowError())
	default:
		cfg.Logger = level.NewFilter(cfg.Logger, level.AllowInfo())
	}

	return cfg
}

// Validate checks a Config fields and performs various confirmations
// their values conform to expectations.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.New("missing Config")
	}
	if err := cfg.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %v", err)
	}
	if err := cfg.Bank.Validate(); err != nil {
		return fmt.Errorf("bank: %v", err)
	}
	if err := cfg.Mock.Validate(); err != nil {
		return fmt.Errorf("mock: %v", err)
	}
	return nil
}
