// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/pelletier/go-toml/v2"
)

// includer is implemented by config types that can include other files.
type includer interface {
	IncludesPtr() *[]string
}

// Open reads the config from the given TOML file, first opening any
// Includes specified in it in the natural include order so that
// includers overwrite included settings.
func Open(cfg includer, file string) error {
	files, err := includeStack(file, nil)
	if err != nil {
		return err
	}
	for _, f := range files {
		slog.Debug("opening config file", "file", f)
		if err := openFile(cfg, f); err != nil {
			return err
		}
	}
	*cfg.IncludesPtr() = slices.Clone(files[:len(files)-1])
	return nil
}

// includeStack returns the files to open for the given file, with
// included files (recursively) before the files that include them.
// It returns an error for missing files and include cycles.
func includeStack(file string, visiting []string) ([]string, error) {
	file = filepath.Clean(file)
	if slices.Contains(visiting, file) {
		return nil, fmt.Errorf("cli.Open: include cycle at %q", file)
	}
	var inc struct {
		Includes []string `toml:"includes"`
	}
	if err := openFile(&inc, file); err != nil {
		return nil, err
	}
	visiting = append(visiting, file)
	var files []string
	dir := filepath.Dir(file)
	for _, in := range inc.Includes {
		if !filepath.IsAbs(in) {
			in = filepath.Join(dir, in)
		}
		sub, err := includeStack(in, visiting)
		if err != nil {
			return nil, err
		}
		for _, s := range sub {
			if !slices.Contains(files, s) {
				files = append(files, s)
			}
		}
	}
	return append(files, file), nil
}

// openFile decodes the given TOML file into v.
func openFile(v any, file string) error {
	b, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("cli.Open: %w", err)
	}
	if err := toml.Unmarshal(b, v); err != nil {
		return fmt.Errorf("cli.Open: %s: %w", file, err)
	}
	return nil
}
