// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli implements the bessel command, which evaluates,
// tabulates and checks the float32 Bessel functions of the math32 package.
package cli

import (
	"fmt"
	"log/slog"
	"slices"

	"cogentcore.org/bessel/base/errors"
	"cogentcore.org/bessel/base/logx"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// app holds the state shared by the bessel commands.
type app struct {
	cfg        *Config
	configFile string
}

// NewRootCommand creates the root command for the bessel CLI.
func NewRootCommand() *cobra.Command {
	a := &app{cfg: NewConfig()}

	cmd := &cobra.Command{
		Use:           "bessel",
		Short:         "Integer-order Bessel functions in single precision",
		Long:          "Bessel evaluates, tabulates and checks the float32 Bessel functions Jn and Yn.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return commandError(a.configure(cmd))
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "TOML config file")
	pf.StringVar(&a.cfg.Format, "format", a.cfg.Format, "output format (text|json|yaml)")
	pf.BoolVarP(&a.cfg.Verbose, "verbose", "v", a.cfg.Verbose, "debug logging")
	pf.BoolVarP(&a.cfg.Quiet, "quiet", "q", a.cfg.Quiet, "only log errors")
	pf.StringVarP(&a.cfg.Kind, "kind", "k", a.cfg.Kind, "kind of Bessel function (j|y)")

	cmd.AddCommand(newEvalCommand(a))
	cmd.AddCommand(newTableCommand(a))
	cmd.AddCommand(newCheckCommand(a))
	return cmd
}

// addGridFlags adds the flags that select orders and arguments.
func (a *app) addGridFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&a.cfg.Orders, "orders", "n", a.cfg.Orders, "orders: n, lo:hi or a comma separated list")
	fs.Float32Var(&a.cfg.From, "from", a.cfg.From, "first argument")
	fs.Float32Var(&a.cfg.To, "to", a.cfg.To, "last argument")
	fs.Float32Var(&a.cfg.Step, "step", a.cfg.Step, "argument spacing")
}

// configure loads the config file, if any, while keeping explicitly
// set flags, then validates the config and sets up logging.
func (a *app) configure(cmd *cobra.Command) error {
	if a.configFile != "" {
		changed := map[string]string{}
		cmd.Flags().Visit(func(f *pflag.Flag) {
			changed[f.Name] = f.Value.String()
		})
		if err := Open(a.cfg, a.configFile); err != nil {
			return err
		}
		for name, v := range changed {
			if err := cmd.Flags().Set(name, v); err != nil {
				return err
			}
		}
	}

	logx.UserLevel = logx.LevelFromFlags(a.cfg.Verbose, a.cfg.Quiet)
	logx.SetDefaultLogger(cmd.ErrOrStderr())
	slog.Debug("configured", "file", a.configFile, "kind", a.cfg.Kind, "format", a.cfg.Format)

	var errs []error
	if !slices.Contains(Formats, a.cfg.Format) {
		errs = append(errs, fmt.Errorf("invalid format %q: must be one of %v", a.cfg.Format, Formats))
	}
	if a.cfg.Kind != "j" && a.cfg.Kind != "y" {
		errs = append(errs, fmt.Errorf("invalid kind %q: must be j or y", a.cfg.Kind))
	}
	return errors.Join(errs...)
}

// output returns the output for the given command.
func (a *app) output(cmd *cobra.Command) *Output {
	return &Output{Format: a.cfg.Format, Writer: cmd.OutOrStdout()}
}
