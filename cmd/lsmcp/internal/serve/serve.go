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

// Package serve contains the CLI command for starting the LimeSurvey MCP
// server.
package serve

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/rusq/lsmcp/cmd/lsmcp/internal/cfg"
	"github.com/rusq/lsmcp/cmd/lsmcp/internal/golang/base"
	internalmcp "github.com/rusq/lsmcp/internal/mcp"
)

//go:embed assets/serve.md
var mdServe string

// CmdServe is the "lsmcp serve" command.
var CmdServe = &base.Command{
	UsageLine:   "lsmcp serve [flags]",
	Short:       "start the MCP server",
	Long:        mdServe,
	PrintFlags:  true,
	RequireAuth: true,
	Run:         runServe,
}

var (
	listenAddr string
	transport  string
)

func init() {
	CmdServe.Flag.StringVar(&transport, "transport", string(internalmcp.TransportStdio), "MCP transport: \"stdio\" or \"http\"")
	CmdServe.Flag.StringVar(&listenAddr, "listen", "127.0.0.1:8483", "address to listen on when -transport=http")
}

func runServe(ctx context.Context, cmd *base.Command, args []string) error {
	lg := cfg.Log

	client, err := cfg.Client(ctx)
	if err != nil {
		base.SetExitStatus(base.SAuthError)
		return fmt.Errorf("serve: connect: %w", err)
	}
	defer func() {
		if err := client.Close(context.WithoutCancel(ctx)); err != nil {
			lg.WarnContext(ctx, "serve: failed to release the session key", "error", err)
		}
	}()
	lg.InfoContext(ctx, "serve: connected", "endpoint", client.Endpoint())

	srv := internalmcp.New(client, lg)

	switch internalmcp.Transport(strings.ToLower(transport)) {
	case internalmcp.TransportStdio, "":
		return srv.ServeStdio(ctx)
	case internalmcp.TransportHTTP:
		lg.InfoContext(ctx, "serve: http transport", "addr", listenAddr)
		return srv.ServeHTTP(ctx, listenAddr)
	default:
		base.SetExitStatus(base.SInvalidParameters)
		return fmt.Errorf("serve: unknown transport %q (use \"stdio\" or \"http\")", transport)
	}
}
