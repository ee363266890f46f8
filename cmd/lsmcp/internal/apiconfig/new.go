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

package apiconfig

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/trace"

	"github.com/rusq/lsmcp/cmd/lsmcp/internal/cfg"
	"github.com/rusq/lsmcp/cmd/lsmcp/internal/golang/base"
	"github.com/rusq/lsmcp/internal/network"
)

var CmdConfigNew = &base.Command{
	UsageLine: "lsmcp config new",
	Short:     "creates a new API config with the default values",
	Long: `
# Config New Command

Creates a new API configuration file containing default values. You will need
to specify the filename, for example:

    lsmcp config new myconfig.toml

If the extension is omitted, ".toml" is automatically appended to the filename.
`,
	FlagMask:   cfg.OmitAll,
	PrintFlags: true,
}

var fNewOverride = CmdConfigNew.Flag.Bool("y", false, "confirm the overwrite of the existing config")

func init() {
	CmdConfigNew.Run = runConfigNew
}

func runConfigNew(ctx context.Context, cmd *base.Command, args []string) error {
	_, task := trace.NewTask(ctx, "runConfigNew")
	defer task.End()

	if len(args) == 0 {
		base.SetExitStatus(base.SInvalidParameters)
		return errors.New("config file name must be specified")
	}

	filename := maybeFixExt(args[0])

	if !shouldOverwrite(filename, *fNewOverride) {
		if !base.YesNo(fmt.Sprintf("file %q exists, overwrite", filename)) {
			base.SetExitStatus(base.SUserError)
			return base.ErrOpCancelled
		}
	}

	if err := Save(filename, network.DefLimits); err != nil {
		base.SetExitStatus(base.SApplicationError)
		return fmt.Errorf("error writing the API limits config %q: %w", filename, err)
	}

	fmt.Printf("Your new API limits config is ready: %q\n", filename)
	return nil
}

// shouldOverwrite returns true if the file can be overwritten.  If override
// is true and the file exists and not a directory, it will return true.
func shouldOverwrite(filename string, override bool) bool {
	fi, err := os.Stat(filename)
	if fi != nil && fi.IsDir() {
		return false
	}
	return err != nil || override
}

// maybeFixExt appends the ".toml" extension if the filename has a different
// one.
func maybeFixExt(filename string) string {
	if ext := filepath.Ext(filename); ext != ".toml" {
		return filename + ".toml"
	}
	return filename
}
