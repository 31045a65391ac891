// Copyright 2021 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/moov-io/tnbbank/pkg/codec"
	"github.com/moov-io/tnbbank/pkg/model"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type table struct {
	header []string
	rows   [][]string
}

func (t *table) add(cells ...string) {
	t.rows = append(t.rows, cells)
}

// printer formats numbers with locale-aware grouping.
type printer struct {
	*message.Printer
}

func (p printer) coins(n int64) string {
	return p.Sprintf("%d", n)
}

func (p printer) trust(v float64) string {
	return p.Sprintf("%.2f", v)
}

func (p printer) date(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format(time.RFC3339)
}

func address(n model.Node) string {
	if n.Port != nil {
		return fmt.Sprintf("%s://%s:%d", n.Protocol, n.IPAddress, *n.Port)
	}
	return fmt.Sprintf("%s://%s", n.Protocol, n.IPAddress)
}

func nodeTable(p printer, n model.Node, extra ...[2]string) table {
	t := table{header: []string{"FIELD", "VALUE"}}
	t.add("NODE IDENTIFIER", n.NodeIdentifier)
	t.add("ACCOUNT NUMBER", n.AccountNumber)
	t.add("ADDRESS", address(n))
	t.add("VERSION", n.Version)
	t.add("FEE", p.coins(n.DefaultTransactionFee))
	for i := range extra {
		t.add(extra[i][0], extra[i][1])
	}
	return t
}

// render writes v as indented JSON, or as the table built by tbl.
func (a *app) render(v interface{}, tbl func(p printer) table) error {
	if a.output != "table" {
		bs, err := codec.Lenient.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(a.out, string(bs))
		return err
	}

	t := tbl(printer{message.NewPrinter(language.English)})
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(t.header, "\t"))
	for i := range t.rows {
		fmt.Fprintln(w, strings.Join(t.rows[i], "\t"))
	}
	return w.Flush()
}
