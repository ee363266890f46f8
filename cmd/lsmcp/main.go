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

// Command lsmcp is a Model Context Protocol server for the LimeSurvey
// RemoteControl 2 API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/joho/godotenv"

	"github.com/rusq/lsmcp/cmd/lsmcp/internal/apiconfig"
	"github.com/rusq/lsmcp/cmd/lsmcp/internal/cfg"
	"github.com/rusq/lsmcp/cmd/lsmcp/internal/check"
	"github.com/rusq/lsmcp/cmd/lsmcp/internal/export"
	"github.com/rusq/lsmcp/cmd/lsmcp/internal/golang/base"
	"github.com/rusq/lsmcp/cmd/lsmcp/internal/golang/help"
	"github.com/rusq/lsmcp/cmd/lsmcp/internal/serve"
)

// secrets defines the names of the supported secret files that we load our
// secrets from.  Inexperienced windows users might have bad experience trying
// to create .env file with the notepad as it will battle for having the
// "txt" extension.  Let it have it.
var secrets = []string{".env", ".env.txt", "secrets.txt"}

func init() {
	base.Lsmcp.Commands = []*base.Command{
		serve.CmdServe,
		check.CmdCheck,
		export.CmdExport,
		apiconfig.CmdConfig,
		CmdVersion,
	}
}

func main() {
	loadSecrets(secrets)
	cfg.Version = version

	base.Usage = func() { help.PrintUsage(os.Stderr, base.Lsmcp) }
	flag.Usage = base.Usage
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		base.Usage()
		base.SetExitStatus(base.SHelpRequested)
		base.Exit()
	}

	base.CmdName = args[0]
	if args[0] == "help" {
		help.Help(os.Stdout, args[1:])
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

BigCmdLoop:
	for bigCmd := base.Lsmcp; ; {
		for _, cmd := range bigCmd.Commands {
			if cmd.Name() != args[0] {
				continue
			}
			if len(cmd.Commands) > 0 {
				// command has subcommands, descend into it.
				bigCmd = cmd
				args = args[1:]
				if len(args) == 0 {
					help.PrintUsage(os.Stderr, bigCmd)
					base.SetExitStatus(base.SHelpRequested)
					base.Exit()
				}
				if args[0] == "help" {
					help.Help(os.Stdout, append(strings.Split(base.CmdName, " "), args[1:]...))
					return
				}
				base.CmdName += " " + args[0]
				continue BigCmdLoop
			}
			if !cmd.Runnable() {
				continue
			}
			invoke(ctx, cmd, args)
			base.Exit()
			return
		}
		helpArg := ""
		if i := strings.LastIndex(base.CmdName, " "); i >= 0 {
			helpArg = " " + base.CmdName[:i]
		}
		fmt.Fprintf(os.Stderr, "lsmcp %s: unknown command\nRun 'lsmcp help%s' for usage.\n", base.CmdName, helpArg)
		base.SetExitStatus(base.SInvalidParameters)
		base.Exit()
	}
}

func invoke(ctx context.Context, cmd *base.Command, args []string) {
	if cmd.CustomFlags {
		args = args[1:]
	} else {
		cfg.SetBaseFlags(&cmd.Flag, cmd.FlagMask)
		cmd.Flag.Usage = func() { cmd.Usage() }
		if err := cmd.Flag.Parse(args[1:]); err != nil {
			base.SetExitStatus(base.SInvalidParameters)
			return
		}
		args = cmd.Flag.Args()
	}

	lg, err := initLog(cfg.LogFile, cfg.JSONLog, cfg.Verbose)
	if err != nil {
		base.SetExitStatus(base.SInitializationError)
		fmt.Fprintln(os.Stderr, err)
		return
	}
	cfg.Log = lg

	base.AtExit(initTrace(cfg.TraceFile))
	initDebug()

	if cfg.ConfigFile != "" {
		limits, err := apiconfig.Load(cfg.ConfigFile)
		if err != nil {
			base.SetExitStatus(base.SInvalidParameters)
			lg.Error("unable to load the API limits config", "filename", cfg.ConfigFile, "error", err)
			return
		}
		if err := cfg.Limits.Apply(limits); err != nil {
			base.SetExitStatus(base.SInvalidParameters)
			lg.Error("invalid API limits", "filename", cfg.ConfigFile, "error", err)
			return
		}
	}

	if cmd.RequireAuth {
		if err := cfg.CheckAuth(); err != nil {
			base.SetExitStatus(base.SAuthError)
			lg.Error(err.Error())
			return
		}
	}

	if err := cmd.Run(ctx, cmd, args); err != nil {
		if base.ExitStatus() == base.SNoError {
			base.SetExitStatus(base.SApplicationError)
		}
		lg.Error(err.Error())
	}
}

// loadSecrets load secrets from the files in secrets slice.
func loadSecrets(files []string) {
	for _, f := range files {
		_ = godotenv.Load(f)
	}
}
