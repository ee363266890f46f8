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

// Package network provides the rate limiting and retry logic for calls to
// the LimeSurvey RemoteControl endpoint.
package network

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"runtime/trace"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// defNumAttempts is the default number of retry attempts.
const defNumAttempts = 3

var (
	// maxAllowedWaitTime is the maximum time to wait for a transient error.
	// The wait time for a transient error depends on the current retry
	// attempt number and is calculated as: (attempt+2)^3 seconds, capped at
	// maxAllowedWaitTime.
	maxAllowedWaitTime = 5 * time.Minute
	// waitFn returns the amount of time to wait before retrying depending on
	// the current attempt.  This variable exists to reduce the test time.
	waitFn    = cubicWait
	netWaitFn = expWait

	mu sync.RWMutex
)

// ErrRetryFailed is returned if number of retry attempts exceeded the retry
// attempts limit and the callback wasn't able to complete without errors.
var ErrRetryFailed = errors.New("callback was unable to complete without errors within the allowed number of retries")

// StatusCodeError is returned when the endpoint responds with a non-200
// status code.
type StatusCodeError struct {
	Code   int
	Status string
}

func (e StatusCodeError) Error() string {
	return fmt.Sprintf("server responded with %d: %s", e.Code, e.Status)
}

func (e StatusCodeError) HTTPStatusCode() int {
	return e.Code
}

// WithRetry runs the callback function fn.  If the function returns a
// recoverable StatusCodeError or a transient network error, it will delay,
// and then call it again up to maxAttempts times.  It returns an error if it
// runs out of attempts.
func WithRetry(ctx context.Context, lim *rate.Limiter, maxAttempts int, fn func() error) error {
	var ok bool
	if maxAttempts == 0 {
		maxAttempts = defNumAttempts
	}
	for attempt := range maxAttempts {
		var err error
		trace.WithRegion(ctx, "WithRetry.wait", func() {
			err = lim.Wait(ctx)
		})
		if err != nil {
			return err
		}

		cbErr := fn()
		if cbErr == nil {
			ok = true
			break
		}

		tracelogf(ctx, "error", "WithRetry: %[1]s (%[1]T) after %[2]d attempts", cbErr, attempt+1)
		var (
			sce StatusCodeError
			ne  *net.OpError
		)
		switch {
		case errors.As(cbErr, &sce):
			if IsRecoverable(sce.Code) {
				// possibly transient error
				delay := waitFn(attempt)
				tracelogf(ctx, "info", "got server error %d, sleeping %s", sce.Code, delay)
				time.Sleep(delay)
				continue
			}
		case errors.As(cbErr, &ne):
			if ne.Op == "read" || ne.Op == "write" {
				// possibly transient error
				delay := netWaitFn(attempt)
				tracelogf(ctx, "info", "got network error %s, sleeping %s", ne.Op, delay)
				time.Sleep(delay)
				continue
			}
		}

		return fmt.Errorf("callback error: %w", cbErr)
	}
	if !ok {
		return ErrRetryFailed
	}
	return nil
}

// IsRecoverable returns true if the status code is a recoverable error.
func IsRecoverable(statusCode int) bool {
	return (statusCode >= http.StatusInternalServerError && statusCode <= 599 && statusCode != 501) || statusCode == 408
}

// cubicWait is the wait time function.  Time is calculated as (x+2)^3
// seconds, where x is the current attempt number. The maximum wait time is
// capped at 5 minutes.
func cubicWait(attempt int) time.Duration {
	x := attempt + 2 // this is to ensure that we sleep at least 8 seconds.
	return min(time.Duration(x*x*x)*time.Second, maxAllowedWaitTime)
}

func expWait(attempt int) time.Duration {
	return min(time.Duration(2<<uint(attempt))*time.Second, maxAllowedWaitTime)
}

func tracelogf(ctx context.Context, category string, format string, a ...any) {
	mu.RLock()
	defer mu.RUnlock()

	trace.Logf(ctx, category, format, a...)
}

// SetMaxAllowedWaitTime sets the maximum time to wait for a transient error.
func SetMaxAllowedWaitTime(d time.Duration) {
	mu.Lock()
	defer mu.Unlock()

	maxAllowedWaitTime = d
}
