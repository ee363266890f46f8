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

// Package check implements the connectivity check command.
package check

import (
	"context"
	"fmt"
	"runtime/trace"

	"github.com/rusq/lsmcp/cmd/lsmcp/internal/cfg"
	"github.com/rusq/lsmcp/cmd/lsmcp/internal/golang/base"
)

var CmdCheck = &base.Command{
	UsageLine: "lsmcp check",
	Short:     "verify the connection to the LimeSurvey instance",
	Long: `
# Check Command

Check connects to the LimeSurvey instance using the configured credentials,
prints the server information and exits.  Use it to verify that
LIMESURVEY_URL, LIMESURVEY_USERNAME and LIMESURVEY_PASSWORD are correct
before wiring lsmcp into an MCP client.
`,
	PrintFlags:  true,
	RequireAuth: true,
	Run:         runCheck,
}

func runCheck(ctx context.Context, cmd *base.Command, args []string) error {
	ctx, task := trace.NewTask(ctx, "runCheck")
	defer task.End()

	client, err := cfg.Client(ctx)
	if err != nil {
		base.SetExitStatus(base.SAuthError)
		return fmt.Errorf("check: %w", err)
	}
	defer client.Close(context.WithoutCancel(ctx))

	version, err := client.GetServerVersion(ctx)
	if err != nil {
		base.SetExitStatus(base.SApplicationError)
		return fmt.Errorf("check: get server version: %w", err)
	}
	sitename, err := client.GetSiteName(ctx)
	if err != nil {
		base.SetExitStatus(base.SApplicationError)
		return fmt.Errorf("check: get site name: %w", err)
	}
	surveys, err := client.ListSurveys(ctx)
	if err != nil {
		base.SetExitStatus(base.SApplicationError)
		return fmt.Errorf("check: list surveys: %w", err)
	}

	fmt.Printf("Connection OK\n")
	fmt.Printf("    Endpoint:  %s\n", client.Endpoint())
	fmt.Printf("    Site name: %s\n", sitename)
	fmt.Printf("    Version:   %s\n", version)
	fmt.Printf("    Surveys:   %d\n", len(surveys))
	return nil
}
