// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/bessel/base/tolassert"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// run executes the bessel command with the given arguments,
// returning its standard output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func golden(t *testing.T) *goldie.Goldie {
	return goldie.New(t, goldie.WithFixtureDir("testdata/golden"), goldie.WithNameSuffix(".golden"))
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "bessel", cmd.Use)

	for _, name := range []string{"eval", "table", "check"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}

	f := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, f)
	assert.Equal(t, "text", f.DefValue)
	assert.Equal(t, "v", cmd.PersistentFlags().Lookup("verbose").Shorthand)
	assert.Equal(t, "j", cmd.PersistentFlags().Lookup("kind").DefValue)
}

func TestEvalSpecialValues(t *testing.T) {
	g := golden(t)

	out, err := run(t, "eval", "--kind", "y", "--", "2", "0", "-1", "+Inf", "NaN")
	require.NoError(t, err)
	g.Assert(t, "eval_y_special", []byte(out))

	out, err = run(t, "eval", "--", "-3", "0", "+Inf", "NaN")
	require.NoError(t, err)
	g.Assert(t, "eval_j_special", []byte(out))
}

func TestEvalJSON(t *testing.T) {
	out, err := run(t, "eval", "--format", "json", "--kind", "y", "--", "-1", "0", "NaN")
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"kind": "y", "order": -1, "x": 0, "value": "+Inf"},
		{"kind": "y", "order": -1, "x": "NaN", "value": "NaN"}
	]`, out)

	out, err = run(t, "eval", "--format", "json", "5", "3")
	require.NoError(t, err)
	var vals []struct {
		Value float32 `json:"value"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &vals))
	require.Len(t, vals, 1)
	tolassert.Equal(t, 0.04302843, vals[0].Value)
}

func TestEvalErrors(t *testing.T) {
	_, err := run(t, "eval", "x", "1")
	assert.Equal(t, ExitCommandError, ExitCode(err))

	_, err = run(t, "eval", "2", "abc")
	assert.Equal(t, ExitCommandError, ExitCode(err))

	_, err = run(t, "eval", "2")
	assert.Equal(t, ExitCommandError, ExitCode(err))

	_, err = run(t, "eval", "--kind", "k", "2", "1")
	assert.Equal(t, ExitCommandError, ExitCode(err))

	_, err = run(t, "eval", "--format", "xml", "2", "1")
	assert.Equal(t, ExitCommandError, ExitCode(err))

	// all invalid settings are reported together
	_, err = run(t, "eval", "--format", "xml", "--kind", "k", "2", "1")
	assert.Equal(t, ExitCommandError, ExitCode(err))
	assert.ErrorContains(t, err, `invalid format "xml"`)
	assert.ErrorContains(t, err, `invalid kind "k"`)
}

func TestTable(t *testing.T) {
	g := golden(t)

	out, err := run(t, "table", "--orders", "2:4", "--from", "0", "--to", "0")
	require.NoError(t, err)
	g.Assert(t, "table_j_zero", []byte(out))

	out, err = run(t, "table", "--kind", "y", "--orders", "2,3", "--from", "0", "--to", "0")
	require.NoError(t, err)
	g.Assert(t, "table_y_zero", []byte(out))
}

func TestTableYAML(t *testing.T) {
	out, err := run(t, "table", "--format", "yaml", "--orders", "0:2", "--from", "1", "--to", "3", "--step", "1")
	require.NoError(t, err)
	var tab struct {
		Kind   string `yaml:"kind"`
		Orders []int  `yaml:"orders"`
		Rows   []struct {
			X      float32   `yaml:"x"`
			Values []float32 `yaml:"values"`
		} `yaml:"rows"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &tab))
	assert.Equal(t, "j", tab.Kind)
	assert.Equal(t, []int{0, 1, 2}, tab.Orders)
	require.Len(t, tab.Rows, 3)
	assert.Equal(t, float32(2), tab.Rows[1].X)
	tolassert.EqualTol(t, 0.3528340, tab.Rows[1].Values[2], 1e-6)
}

func TestCheck(t *testing.T) {
	out, err := run(t, "check", "--orders", "2:6", "--from", "0.5", "--to", "8")
	require.NoError(t, err)
	assert.Contains(t, out, "PASS: j")

	out, err = run(t, "check", "--kind", "y", "--format", "json", "--orders", "-3:3", "--from", "0", "--to", "4")
	require.NoError(t, err)
	var res CheckResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.True(t, res.Pass)
	assert.Len(t, res.Orders, 7)
	for _, o := range res.Orders {
		assert.Equal(t, 8, o.Points)
		assert.Equal(t, 1, o.Skipped)
		assert.Zero(t, o.Mismatched)
	}

	out, err = run(t, "check", "--orders", "2:6", "--from", "0.5", "--to", "8", "--tolerance", "1e-12")
	assert.Equal(t, ExitFailure, ExitCode(err))
	assert.Contains(t, out, "FAIL: j")
}

func TestCheckSamples(t *testing.T) {
	// J2..J4 have no zeros in [0.5, 5], so relative errors stay small
	args := []string{"check", "--format", "json", "--orders", "2:4", "--from", "0.5", "--to", "5", "--samples", "50", "--seed", "7"}
	out, err := run(t, args...)
	require.NoError(t, err)
	var res CheckResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.True(t, res.Pass)
	require.Len(t, res.Orders, 3)
	for _, o := range res.Orders {
		assert.Equal(t, 60, o.Points)
	}

	again, err := run(t, args...)
	require.NoError(t, err)
	assert.Equal(t, out, again)

	_, err = run(t, "check", "--samples", "-1")
	assert.Equal(t, ExitCommandError, ExitCode(err))

	for _, n := range []string{"9223372036854775807", "65536"} {
		_, err = run(t, "check", "--samples", n, "--orders", "2", "--from", "0.5", "--to", "5")
		assert.Equal(t, ExitCommandError, ExitCode(err), n)
		assert.ErrorContains(t, err, "too many arguments", n)
	}
}

func TestCheckSpecialValues(t *testing.T) {
	res := Check("y", []int{40}, []float32{0.01, 0}, 1e-3, 1e-30)
	assert.True(t, res.Pass)
	assert.Equal(t, 2, res.Orders[0].Skipped)

	res = Check("j", []int{300}, []float32{1e-4}, 1e-3, 1e-30)
	assert.True(t, res.Pass)
	assert.Equal(t, 1, res.Orders[0].Skipped)
}

func TestCheckValueRanges(t *testing.T) {
	j := Eval("j")
	res := Check("j", []int{0, 2}, []float32{0, 1, 2}, 1e-3, 1e-30)
	require.Len(t, res.Orders, 2)
	assert.Equal(t, Range{Min: Float(j(0, 2)), Max: 1}, res.Orders[0].Values)
	assert.Equal(t, Range{Min: 0, Max: Float(j(2, 2))}, res.Orders[1].Values)
	assert.Equal(t, Range{Min: 0, Max: 1}, res.Values)

	// infinite and NaN values are left out of the range
	y := Eval("y")
	res = Check("y", []int{2}, []float32{0, 1, -1}, 1e-3, 1e-30)
	assert.Equal(t, Range{Min: Float(y(2, 1)), Max: Float(y(2, 1))}, res.Orders[0].Values)

	res = Check("y", []int{2}, []float32{0}, 1e-3, 1e-30)
	assert.Equal(t, Range{}, res.Orders[0].Values)
	assert.Equal(t, Range{}, res.Values)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.toml")
	require.NoError(t, os.WriteFile(base, []byte("kind = \"y\"\norders = \"2\"\nformat = \"json\"\n"), 0o644))
	main := filepath.Join(dir, "main.toml")
	require.NoError(t, os.WriteFile(main, []byte("includes = [\"base.toml\"]\nformat = \"text\"\nfrom = 5.0\nto = 5.0\n"), 0o644))

	out, err := run(t, "table", "--config", main)
	require.NoError(t, err)
	assert.Contains(t, out, "Y(2)")
	assert.Contains(t, out, "0.36766")

	// explicit flags win over the config file
	out, err = run(t, "table", "--config", main, "--kind", "j", "--orders", "5", "--from", "3", "--to", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "J(5)")
	assert.Contains(t, out, "0.04302")

	cfg := NewConfig()
	require.NoError(t, Open(cfg, main))
	assert.Equal(t, "y", cfg.Kind)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, float32(5), cfg.From)
	assert.Equal(t, float32(0.5), cfg.Step)
	assert.Equal(t, []string{base}, cfg.Includes)

	_, err = run(t, "table", "--config", filepath.Join(dir, "missing.toml"))
	assert.Equal(t, ExitCommandError, ExitCode(err))
}

func TestConfigIncludeCycle(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.toml")
	b := filepath.Join(dir, "b.toml")
	require.NoError(t, os.WriteFile(a, []byte("includes = [\"b.toml\"]\n"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("includes = [\"a.toml\"]\n"), 0o644))
	err := Open(NewConfig(), a)
	assert.ErrorContains(t, err, "include cycle")
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()
	assert.Equal(t, "j", cfg.Kind)
	assert.Equal(t, "0:5", cfg.Orders)
	assert.Equal(t, float32(10), cfg.To)
	assert.Equal(t, float32(0.5), cfg.Step)
	assert.Equal(t, 1e-3, cfg.Tolerance)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, int64(1), cfg.Seed)
	assert.Zero(t, cfg.Samples)
}
