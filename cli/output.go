// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"cogentcore.org/bessel/base/errors"
	"gopkg.in/yaml.v3"
)

// Exit codes for the bessel command.
const (
	ExitSuccess      = 0 // successful execution
	ExitFailure      = 1 // check found errors above tolerance
	ExitCommandError = 2 // invalid flags, arguments or config
)

// Formats are the supported output formats.
var Formats = []string{"text", "json", "yaml"}

// ExitError is an error with a specific exit code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// commandError wraps err as an [ExitCommandError].
func commandError(err error) error {
	if err == nil {
		return nil
	}
	return &ExitError{Code: ExitCommandError, Err: err}
}

// ExitCode returns the exit code for the given error returned
// by a command: 0 for nil, the code of an [ExitError], and
// [ExitCommandError] otherwise, as for cobra usage errors.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return ExitCommandError
}

// Float is a float32 that encodes non-finite values
// in JSON as the strings "NaN", "+Inf" and "-Inf".
type Float float32

// String returns the shortest representation that round trips.
func (f Float) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return json.Marshal(f.String())
	}
	return []byte(f.String()), nil
}

// Output writes command results in the configured format.
type Output struct {
	Format string
	Writer io.Writer
}

// Write writes the given data; text is used for the text format,
// and writes to a tab aligned writer.
func (o *Output) Write(data any, text func(w io.Writer) error) error {
	switch o.Format {
	case "json":
		enc := json.NewEncoder(o.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case "yaml":
		enc := yaml.NewEncoder(o.Writer)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return err
		}
		return enc.Close()
	case "text":
		tw := tabwriter.NewWriter(o.Writer, 0, 0, 2, ' ', 0)
		if err := text(tw); err != nil {
			return err
		}
		return tw.Flush()
	}
	return fmt.Errorf("invalid format %q: must be one of %v", o.Format, Formats)
}
