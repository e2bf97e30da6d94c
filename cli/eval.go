// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"cogentcore.org/bessel/math32"
	"github.com/spf13/cobra"
)

// Value is a single evaluated Bessel function value.
type Value struct {
	Kind  string `json:"kind" yaml:"kind"`
	Order int    `json:"order" yaml:"order"`
	X     Float  `json:"x" yaml:"x"`
	Value Float  `json:"value" yaml:"value"`
}

// Eval returns the Bessel function of the given kind (j or y).
func Eval(kind string) func(n int, x float32) float32 {
	if kind == "y" {
		return math32.Yn
	}
	return math32.Jn
}

func newEvalCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "eval ORDER X...",
		Short: "Evaluate a Bessel function at the given arguments",
		Long: "Eval evaluates the Bessel function of the selected kind and order at each argument.\n" +
			"Use -- before a negative order or argument.",
		Example: "  bessel eval 5 3\n  bessel eval --kind y -- -2 0.5 1 +Inf",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return commandError(fmt.Errorf("invalid order %q: %w", args[0], err))
			}
			f := Eval(a.cfg.Kind)
			vals := make([]Value, 0, len(args)-1)
			for _, s := range args[1:] {
				x, err := ParseArg(s)
				if err != nil {
					return commandError(err)
				}
				vals = append(vals, Value{Kind: a.cfg.Kind, Order: n, X: Float(x), Value: Float(f(n, x))})
			}
			slog.Debug("evaluated", "kind", a.cfg.Kind, "order", n, "count", len(vals))
			return a.output(cmd).Write(vals, func(w io.Writer) error {
				name := strings.ToUpper(a.cfg.Kind)
				for _, v := range vals {
					if _, err := fmt.Fprintf(w, "%s(%d, %s) = %s\n", name, v.Order, v.X, v.Value); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}
