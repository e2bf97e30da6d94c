// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

// Config is the configuration information for the bessel command.
// Values come from the `default:` tags, then any config file
// given with --config, then any explicitly set flags.
type Config struct {

	// Includes are other config files to load before this one,
	// relative to the directory of the including file.
	Includes []string `toml:"includes"`

	// Kind is the kind of Bessel function: j (first kind) or y (second kind).
	Kind string `toml:"kind" default:"j"`

	// Orders are the orders to evaluate, as a single order,
	// an inclusive range lo:hi, or a comma separated list.
	Orders string `toml:"orders" default:"0:5"`

	// From is the first argument of the grid.
	From float32 `toml:"from" default:"0"`

	// To is the last argument of the grid (inclusive).
	To float32 `toml:"to" default:"10"`

	// Step is the spacing of the grid.
	Step float32 `toml:"step" default:"0.5"`

	// Tolerance is the largest relative error check accepts.
	Tolerance float64 `toml:"tolerance" default:"1e-3"`

	// Floor is the magnitude of the reference value below which
	// check does not measure relative error.
	Floor float64 `toml:"floor" default:"1e-30"`

	// Samples is the number of random arguments in [From, To]
	// that check adds to the grid.
	Samples int `toml:"samples"`

	// Seed seeds the random arguments of check.
	Seed int64 `toml:"seed" default:"1"`

	// Format is the output format: text, json or yaml.
	Format string `toml:"format" default:"text"`

	// Verbose enables debug logging.
	Verbose bool `toml:"verbose"`

	// Quiet only logs errors.
	Quiet bool `toml:"quiet"`
}

// IncludesPtr returns a pointer to the Includes field.
func (c *Config) IncludesPtr() *[]string { return &c.Includes }
