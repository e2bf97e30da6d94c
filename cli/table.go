// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

// Row is one argument of a table, with the values for each order.
type Row struct {
	X      Float   `json:"x" yaml:"x"`
	Values []Float `json:"values" yaml:"values"`
}

// Table is a grid of Bessel function values.
type Table struct {
	Kind   string `json:"kind" yaml:"kind"`
	Orders []int  `json:"orders" yaml:"orders"`
	Rows   []Row  `json:"rows" yaml:"rows"`
}

// NewTable evaluates the Bessel function of the given kind
// for each of the orders at each of the arguments.
func NewTable(kind string, orders []int, xs []float32) *Table {
	f := Eval(kind)
	t := &Table{Kind: kind, Orders: orders, Rows: make([]Row, len(xs))}
	for i, x := range xs {
		r := Row{X: Float(x), Values: make([]Float, len(orders))}
		for j, n := range orders {
			r.Values[j] = Float(f(n, x))
		}
		t.Rows[i] = r
	}
	return t
}

// WriteText writes the table as tab separated columns, one row per argument.
func (t *Table) WriteText(w io.Writer) error {
	name := strings.ToUpper(t.Kind)
	var b strings.Builder
	b.WriteString("x")
	for _, n := range t.Orders {
		fmt.Fprintf(&b, "\t%s(%d)", name, n)
	}
	b.WriteString("\n")
	for _, r := range t.Rows {
		b.WriteString(r.X.String())
		for _, v := range r.Values {
			b.WriteString("\t" + v.String())
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func newTableCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Tabulate a Bessel function over a grid of orders and arguments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			orders, xs, err := a.grid()
			if err != nil {
				return commandError(err)
			}
			t := NewTable(a.cfg.Kind, orders, xs)
			slog.Debug("tabulated", "kind", t.Kind, "orders", len(orders), "arguments", len(xs))
			return a.output(cmd).Write(t, t.WriteText)
		},
	}
	a.addGridFlags(cmd.Flags())
	return cmd
}

// grid returns the orders and arguments of the config.
func (a *app) grid() ([]int, []float32, error) {
	orders, err := ParseOrders(a.cfg.Orders)
	if err != nil {
		return nil, nil, err
	}
	xs, err := Grid(a.cfg.From, a.cfg.To, a.cfg.Step)
	if err != nil {
		return nil, nil, err
	}
	return orders, xs, nil
}
