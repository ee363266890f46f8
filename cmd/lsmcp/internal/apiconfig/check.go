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

	"github.com/rusq/lsmcp/cmd/lsmcp/internal/golang/base"
)

var CmdConfigCheck = &base.Command{
	UsageLine: "lsmcp config check",
	Short:     "validate the existing config for errors",
	Long: `
# Config Check Command

Allows to check the config for errors and invalid values.

Example:

    lsmcp config check myconfig.toml

It will check for unknown keys, and also ensure that values are within the
allowed boundaries.
`,
}

func init() {
	CmdConfigCheck.Run = runConfigCheck
}

func runConfigCheck(ctx context.Context, cmd *base.Command, args []string) error {
	if len(args) == 0 || args[0] == "" {
		base.SetExitStatus(base.SInvalidParameters)
		return errors.New("config filename must be specified")
	}
	filename := args[0]
	if _, err := Load(filename); err != nil {
		base.SetExitStatus(base.SUserError)
		return fmt.Errorf("config file %q not OK: %s", filename, err)
	}
	fmt.Printf("Config file %q: OK\n", filename)
	return nil
}
