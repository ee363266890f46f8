// Copyright (c) 2021-2026 Rustam Gilyazov and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package apiconfig implements the "config" command and the API limits
// override file handling.
package apiconfig

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/rusq/lsmcp/cmd/lsmcp/internal/golang/base"
	"github.com/rusq/lsmcp/internal/network"
)

var CmdConfig = &base.Command{
	UsageLine: "lsmcp config",
	Short:     "API configuration",
	Long: `
# Config Command

Config command allows to perform different operations on the API limits
configuration file.
`,
	Commands: []*base.Command{
		CmdConfigNew,
		CmdConfigCheck,
	},
}

var ErrConfigInvalid = errors.New("config validation failed")

// Load reads, parses and validates the limits override file.  The returned
// limits contain only the values present in the file; use
// network.Limits.Apply to merge them over the defaults.
func Load(filename string) (network.Limits, error) {
	f, err := os.Open(filename)
	if err != nil {
		return network.Limits{}, err
	}
	defer f.Close()
	return read(f)
}

func read(r io.Reader) (network.Limits, error) {
	var limits network.Limits
	md, err := toml.NewDecoder(r).Decode(&limits)
	if err != nil {
		return network.Limits{}, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return network.Limits{}, fmt.Errorf("%w: unknown keys: %s", ErrConfigInvalid, strings.Join(keys, ", "))
	}

	// validate the values as they would be after merging over the defaults,
	// so that a partial override file is not rejected for missing keys.
	merged := network.DefLimits
	if err := merged.Apply(limits); err != nil {
		if err := printErrors(os.Stderr, err); err != nil {
			return network.Limits{}, err
		}
		return network.Limits{}, ErrConfigInvalid
	}
	return limits, nil
}

// Save writes the limits to the file in TOML format.
func Save(filename string, limits network.Limits) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return write(f, limits)
}

func write(w io.Writer, limits network.Limits) error {
	const header = "# lsmcp API limits configuration\n# see 'lsmcp help config' for details\n\n"
	if _, err := io.WriteString(w, header); err != nil {
		return err
	}
	return toml.NewEncoder(w).Encode(limits)
}

func printErrors(w io.Writer, err error) error {
	if err == nil {
		return nil
	}

	var wErr error
	printErr := func(format string, a ...any) {
		if wErr != nil {
			return
		}
		_, wErr = fmt.Fprintf(w, format, a...)
	}

	printErr("Detected problems:\n")
	var vErr validator.ValidationErrors
	if !errors.As(err, &vErr) {
		return err
	}
	for i, entry := range vErr {
		printErr("\t%2d: %s\n", i+1, entry.Translate(network.Translations))
	}
	return wErr
}
