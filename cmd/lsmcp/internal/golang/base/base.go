// Package base defines shared basic pieces of the lsmcp command.
//
// The command subsystem is based on golang's `go` command implementation, which
// is BSD-licensed:
//
//	Copyright 2017 The Go Authors. All rights reserved.
//	Use of this source code is governed by a BSD-style
//	license that can be found in the LICENSE file.
package base

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/rusq/lsmcp/cmd/lsmcp/internal/cfg"
)

var CmdName string

// A Command is an implementation of an lsmcp command.
type Command struct {
	// Run runs the command.
	// The args are the arguments after the command name.
	Run func(ctx context.Context, cmd *Command, args []string) error

	// UsageLine is the one-line usage message.
	UsageLine string

	// Short is the short description shown in the 'lsmcp help' output.
	Short string

	// Long is the long message shown in the 'lsmcp help <this-command>' output.
	Long string

	// Flag is a set of flags specific to this command.
	Flag flag.FlagSet

	// CustomFlags indicates that the command will do its own
	// flag parsing.
	CustomFlags bool

	// FlagMask defines the base flags to exclude for this command.
	FlagMask cfg.FlagMask

	// PrintFlags indicates that generic help handler should print the
	// flags in the flagset.  Set it to false, if a Long lists all the flags.
	// It only matters for the commands that have no subcommands.
	PrintFlags bool

	// RequireAuth is set if the command requires the LimeSurvey credentials
	// to be present in the environment or flags.
	RequireAuth bool

	// Commands lists the available commands and help topics.
	// The order here is the order in which they are printed by 'lsmcp help'.
	// Note that subcommands are in general best avoided.
	Commands []*Command
}

var Lsmcp = &Command{
	UsageLine: "lsmcp",
	Long:      `Lsmcp is a Model Context Protocol server for LimeSurvey RemoteControl 2 API.`,
	// Commands initialised in main.
}

var (
	exitStatus StatusCode = SNoError
	exitMu     sync.Mutex
)

func SetExitStatus(n StatusCode) {
	exitMu.Lock()
	if exitStatus < n {
		exitStatus = n
	}
	exitMu.Unlock()
}

func ExitStatus() StatusCode {
	exitMu.Lock()
	defer exitMu.Unlock()
	return exitStatus
}

var atExitFuncs []func()

func AtExit(f func()) {
	atExitFuncs = append(atExitFuncs, f)
}

func Exit() {
	for _, f := range atExitFuncs {
		f()
	}
	os.Exit(int(exitStatus))
}

// Runnable reports whether the command can be run; otherwise
// it is a documentation pseudo-command.
func (c *Command) Runnable() bool {
	return c.Run != nil
}

// LongName returns the command's long name: all the words in the usage line
// between "lsmcp" and a flag or argument.
func (c *Command) LongName() string {
	name := c.UsageLine
	if i := strings.Index(name, " ["); i >= 0 {
		name = name[:i]
	}
	if name == "lsmcp" {
		return ""
	}
	return strings.TrimPrefix(name, "lsmcp ")
}

// Name returns the command's short name: the last word in the usage line
// before a flag or argument.
func (c *Command) Name() string {
	name := c.LongName()
	if i := strings.LastIndex(name, " "); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// Usage is the usage-reporting function, filled in by package main
// but here for reference by other packages.
var Usage func()

func (c *Command) Usage() {
	fmt.Fprintf(os.Stderr, "usage: %s\n", c.UsageLine)
	fmt.Fprintf(os.Stderr, "Run 'lsmcp help %s' for details.\n", c.LongName())
	SetExitStatus(SHelpRequested)
	Exit()
}
