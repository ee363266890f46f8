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

// Package cfg contains common configuration variables.
package cfg

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/rusq/osenv/v2"

	"github.com/rusq/lsmcp/internal/limesurvey"
	"github.com/rusq/lsmcp/internal/network"
)

const (
	envURL      = "LIMESURVEY_URL"
	envUsername = "LIMESURVEY_USERNAME"
	envPassword = "LIMESURVEY_PASSWORD"
)

var (
	TraceFile string
	LogFile   string
	JSONLog   bool
	Verbose   bool

	ConfigFile string

	// Endpoint is the full RemoteControl URL of the LimeSurvey instance,
	// i.e. https://example.com/index.php/admin/remotecontrol.
	Endpoint string
	Username string
	Password string

	Limits = network.DefLimits

	// Log is the default logger for all commands.
	Log *slog.Logger = slog.Default()

	Version = "dev" // set by main
)

type FlagMask int

const (
	DefaultFlags  FlagMask = 0
	OmitAuthFlags FlagMask = 1 << iota
	OmitConfigFlag
	OmitLimitFlags

	OmitAll = OmitAuthFlags |
		OmitConfigFlag |
		OmitLimitFlags
)

// SetBaseFlags sets base flags
func SetBaseFlags(fs *flag.FlagSet, mask FlagMask) {
	fs.StringVar(&TraceFile, "trace", os.Getenv("TRACE_FILE"), "trace `filename`")
	fs.StringVar(&LogFile, "log", os.Getenv("LOG_FILE"), "log `file`, if not specified, messages are printed to STDERR")
	fs.BoolVar(&JSONLog, "log-json", osenv.Value("JSON_LOG", false), "log in JSON format")
	fs.BoolVar(&Verbose, "v", osenv.Value("DEBUG", false), "verbose messages")

	if mask&OmitAuthFlags == 0 {
		fs.StringVar(&Endpoint, "url", osenv.Value(envURL, ""), "LimeSurvey RemoteControl `endpoint`, the full URL ending in\n/admin/remotecontrol (environment: "+envURL+")")
		fs.StringVar(&Username, "username", osenv.Value(envUsername, ""), "LimeSurvey `username` (environment: "+envUsername+")")
		fs.StringVar(&Password, "password", osenv.Secret(envPassword, ""), "LimeSurvey `password` (environment: "+envPassword+")")
	}
	if mask&OmitConfigFlag == 0 {
		fs.StringVar(&ConfigFile, "api-config", "", "configuration `file` with API limits overrides.\nYou can generate one with default values with 'lsmcp config new'")
	}
	if mask&OmitLimitFlags == 0 {
		fs.IntVar(&Limits.Boost, "limiter-boost", Limits.Boost, "rate limiter boost in `requests` per minute, added to the base\nrequests per minute value")
		fs.UintVar(&Limits.Burst, "limiter-burst", Limits.Burst, "allow up to `N` burst requests per second")
	}
}

var logLevel = new(slog.LevelVar)

// SetDebugLevel switches the logging level to debug.
func SetDebugLevel() {
	logLevel.Set(slog.LevelDebug)
}

// LogLevel returns the current log level setting, suitable for the slog
// handler options.
func LogLevel() slog.Leveler {
	return logLevel
}

// ErrNoAuth is returned by CheckAuth when the credentials are incomplete.
var ErrNoAuth = errors.New("missing LimeSurvey credentials: LIMESURVEY_URL, LIMESURVEY_USERNAME and LIMESURVEY_PASSWORD must be set (see 'lsmcp help serve')")

// CheckAuth verifies that all three connection parameters are present.  It
// does not attempt to connect.
func CheckAuth() error {
	if Endpoint == "" || Username == "" || Password == "" {
		return ErrNoAuth
	}
	return nil
}

// Client creates an authenticated LimeSurvey client from the global
// configuration.  The caller is responsible for calling Close on the
// returned client.
func Client(ctx context.Context, opt ...limesurvey.Option) (*limesurvey.Client, error) {
	if err := CheckAuth(); err != nil {
		return nil, err
	}
	opts := append([]limesurvey.Option{
		limesurvey.WithLimits(Limits),
		limesurvey.WithLogger(Log),
		limesurvey.WithUserAgent("lsmcp/" + Version),
	}, opt...)
	return limesurvey.New(ctx, Endpoint, Username, Password, opts...)
}
