// Copyright 2021 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/moov-io/tnbbank"
	"github.com/moov-io/tnbbank/internal/util"
	"github.com/moov-io/tnbbank/pkg/bankapi"
	"github.com/moov-io/tnbbank/pkg/bankapi/banktest"
	"github.com/moov-io/tnbbank/pkg/config"

	"github.com/go-kit/kit/log/level"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

type app struct {
	configFile string
	endpoint   string
	mockMode   string
	output     string

	cfg    *config.Config
	client *bankapi.Client
	out    io.Writer
}

func newRootCommand(out io.Writer) *cobra.Command {
	a := &app{out: out}

	root := &cobra.Command{
		Use:           "tnbbank",
		Short:         "Query and manage a thenewboston bank node",
		Version:       tnbbank.Version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "Filepath for config file to load (or CONFIG_FILE)")
	flags.StringVar(&a.endpoint, "endpoint", "", "Bank address, overrides bank.endpoint")
	flags.StringVar(&a.mockMode, "mock", "", "Answer from fixtures instead of the bank (Options: success, errors, invalid)")
	flags.StringVarP(&a.output, "output", "o", "json", "Output format (Options: json, table)")

	root.AddCommand(
		a.listCommand("accounts", "List accounts", a.accounts),
		a.listCommand("banks", "List connected banks", a.banks),
		a.listCommand("transactions", "List bank transactions", a.transactions),
		a.listCommand("blocks", "List blocks", a.blocks),
		a.listCommand("validators", "List validators", a.validators),
		a.validatorCommand(),
		a.configCommand(),
		a.trustCommand(),
	)
	return root
}

func (a *app) setup() error {
	cfg, err := config.FromFile(util.Or(a.configFile, os.Getenv("CONFIG_FILE")))
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}
	if a.endpoint != "" {
		cfg.Bank.Endpoint = a.endpoint
	}
	if a.mockMode != "" {
		cfg.Mock.Mode = a.mockMode
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	switch a.output {
	case "json", "table":
	default:
		return fmt.Errorf("unknown output format %q", a.output)
	}
	a.cfg = cfg
	a.client = bankapi.New(cfg.Logger, cfg.Bank.Endpoint, a.httpClient())
	return nil
}

func (a *app) httpClient() *http.Client {
	if !a.cfg.Mock.Enabled() {
		return &http.Client{Timeout: a.cfg.Bank.Timeout}
	}
	mode, _ := banktest.ParseMode(a.cfg.Mock.Mode)
	level.Debug(a.cfg.Logger).Log("main", fmt.Sprintf("answering requests from %s fixtures", mode))

	logger := a.cfg.Logger
	return banktest.NewClient(mode,
		banktest.WithLogger(logger),
		banktest.WithFailer(func(format string, args ...interface{}) {
			level.Error(logger).Log("mock", fmt.Sprintf(format, args...))
		}),
	)
}
