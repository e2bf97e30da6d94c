// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"log/slog"
	"math"

	"cogentcore.org/bessel/base/randx"
	"cogentcore.org/bessel/math32/minmax"
	"github.com/spf13/cobra"
)

// OrderError is the error of one order measured by [Check].
type OrderError struct {
	Order int `json:"order" yaml:"order"`

	// Points is the number of arguments at which the relative error was measured.
	Points int `json:"points" yaml:"points"`

	// Skipped is the number of arguments whose reference value is
	// below the floor or outside the float32 range.
	Skipped int `json:"skipped" yaml:"skipped"`

	// Mismatched is the number of skipped arguments at which the value
	// is not the same special value (NaN, ±Inf) as the reference.
	Mismatched int `json:"mismatched" yaml:"mismatched"`

	MaxAbs float64 `json:"max_abs" yaml:"max_abs"`
	MaxRel float64 `json:"max_rel" yaml:"max_rel"`

	// WorstX is the argument with the largest relative error.
	WorstX Float `json:"worst_x" yaml:"worst_x"`

	// Values is the range of the finite float32 values of this order.
	Values Range `json:"values" yaml:"values"`
}

// Range is a min / max range of float32 values.
type Range struct {
	Min Float `json:"min" yaml:"min"`
	Max Float `json:"max" yaml:"max"`
}

// newRange returns the [Range] of mr, which is zero when mr is empty.
func newRange(mr minmax.F32) Range {
	if !mr.IsValid() {
		return Range{}
	}
	return Range{Min: Float(mr.Min), Max: Float(mr.Max)}
}

// CheckResult is the result of [Check].
type CheckResult struct {
	Kind      string       `json:"kind" yaml:"kind"`
	Tolerance float64      `json:"tolerance" yaml:"tolerance"`
	Orders    []OrderError `json:"orders" yaml:"orders"`

	// Values is the range of the finite float32 values of all orders.
	Values Range `json:"values" yaml:"values"`

	Pass bool `json:"pass" yaml:"pass"`
}

// reference returns the float64 standard library function of the given kind.
func reference(kind string) func(n int, x float64) float64 {
	if kind == "y" {
		return math.Yn
	}
	return math.Jn
}

// Check compares the float32 Bessel function of the given kind against
// the float64 one of the standard library for each order and argument.
// Relative errors are measured where the reference magnitude is at least
// floor and representable in float32; the check passes when none
// exceeds tolerance and all special values agree.
func Check(kind string, orders []int, xs []float32, tolerance, floor float64) *CheckResult {
	f := Eval(kind)
	ref := reference(kind)
	res := &CheckResult{Kind: kind, Tolerance: tolerance, Pass: true}
	var all minmax.F32
	all.SetInfinity()
	for _, n := range orders {
		oe := OrderError{Order: n}
		var abs, rel minmax.F64
		abs.SetInfinity()
		rel.SetInfinity()
		var vals minmax.F32
		vals.SetInfinity()
		for _, x := range xs {
			want := ref(n, float64(x))
			v := f(n, x)
			if !math.IsInf(float64(v), 0) {
				vals.FitValInRange(v)
			}
			got := float64(v)
			if math.IsNaN(want) || math.Abs(want) < floor || math.Abs(want) > math.MaxFloat32 {
				oe.Skipped++
				if !sameSpecial(want, got) {
					oe.Mismatched++
				}
				continue
			}
			oe.Points++
			d := math.Abs(got - want)
			r := d / math.Abs(want)
			if r > rel.Max || math.IsNaN(r) {
				oe.WorstX = Float(x)
			}
			abs.FitValInRange(d)
			rel.FitValInRange(r)
			if math.IsNaN(r) {
				rel.Max = r
			}
		}
		if oe.Points > 0 {
			oe.MaxAbs = abs.Max
			oe.MaxRel = rel.Max
		}
		oe.Values = newRange(vals)
		all.FitInRange(vals)
		if oe.MaxRel > tolerance || oe.Mismatched > 0 || math.IsNaN(oe.MaxRel) {
			res.Pass = false
		}
		res.Orders = append(res.Orders, oe)
	}
	res.Values = newRange(all)
	return res
}

// sameSpecial reports whether got is an acceptable value for a
// reference that is NaN, infinite, tiny or beyond the float32 range.
func sameSpecial(want, got float64) bool {
	switch {
	case math.IsNaN(want):
		return math.IsNaN(got)
	case math.IsInf(want, 0) || math.Abs(want) > math.MaxFloat32:
		return math.IsInf(got, 0) && math.Signbit(got) == math.Signbit(want)
	}
	// below floor: any finite value
	return !math.IsNaN(got) && !math.IsInf(got, 0)
}

// WriteText writes one line per order.
func (r *CheckResult) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "order\tpoints\tskipped\tmax abs\tmax rel\tworst x\tmin\tmax"); err != nil {
		return err
	}
	for _, o := range r.Orders {
		_, err := fmt.Fprintf(w, "%d\t%d\t%d\t%.3g\t%.3g\t%s\t%s\t%s\n", o.Order, o.Points, o.Skipped, o.MaxAbs, o.MaxRel, o.WorstX, o.Values.Min, o.Values.Max)
		if err != nil {
			return err
		}
	}
	status := "PASS"
	if !r.Pass {
		status = "FAIL"
	}
	_, err := fmt.Fprintf(w, "%s: %s with tolerance %g\n", status, r.Kind, r.Tolerance)
	return err
}

func newCheckCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check the float32 functions against the float64 standard library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			orders, xs, err := a.grid()
			if err != nil {
				return commandError(err)
			}
			if a.cfg.Tolerance < 0 || a.cfg.Floor < 0 {
				return commandError(fmt.Errorf("tolerance and floor must not be negative"))
			}
			xs, err = a.sample(xs)
			if err != nil {
				return commandError(err)
			}
			res := Check(a.cfg.Kind, orders, xs, a.cfg.Tolerance, a.cfg.Floor)
			if err := a.output(cmd).Write(res, res.WriteText); err != nil {
				return err
			}
			if !res.Pass {
				slog.Error("check failed", "kind", res.Kind, "tolerance", res.Tolerance)
				return &ExitError{Code: ExitFailure, Err: fmt.Errorf("%s exceeds tolerance %g", res.Kind, res.Tolerance)}
			}
			return nil
		},
	}
	a.addGridFlags(cmd.Flags())
	cmd.Flags().Float64Var(&a.cfg.Tolerance, "tolerance", a.cfg.Tolerance, "largest accepted relative error")
	cmd.Flags().IntVar(&a.cfg.Samples, "samples", a.cfg.Samples, "number of random arguments in [from, to] to add")
	cmd.Flags().Int64Var(&a.cfg.Seed, "seed", a.cfg.Seed, "seed of the random arguments")
	cmd.Flags().Float64Var(&a.cfg.Floor, "floor", a.cfg.Floor, "smallest reference magnitude for relative error")
	return cmd
}

// sample adds the configured number of random arguments to xs.
func (a *app) sample(xs []float32) ([]float32, error) {
	n := a.cfg.Samples
	switch {
	case n == 0:
		return xs, nil
	case n < 0:
		return nil, fmt.Errorf("samples must not be negative: %d", n)
	case n > maxGrid-len(xs):
		return nil, fmt.Errorf("too many arguments: %d samples and %d grid points (max %d)", n, len(xs), maxGrid)
	}
	lo, hi := min(a.cfg.From, a.cfg.To), max(a.cfg.From, a.cfg.To)
	slog.Debug("sampling arguments", "samples", n, "seed", a.cfg.Seed, "from", lo, "to", hi)
	return append(xs, randx.Samples(n, lo, hi, randx.NewSysRand(a.cfg.Seed))...), nil
}
