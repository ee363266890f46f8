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

package network

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func fastWaits(t *testing.T) {
	t.Helper()
	oldWait, oldNetWait := waitFn, netWaitFn
	waitFn = func(int) time.Duration { return time.Millisecond }
	netWaitFn = func(int) time.Duration { return time.Millisecond }
	t.Cleanup(func() {
		waitFn, netWaitFn = oldWait, oldNetWait
	})
}

func TestWithRetry_ok(t *testing.T) {
	var calls int
	err := WithRetry(t.Context(), rate.NewLimiter(rate.Inf, 1), 3, func() error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestWithRetry_recoverableStatusCode(t *testing.T) {
	fastWaits(t)
	var calls int
	err := WithRetry(t.Context(), rate.NewLimiter(rate.Inf, 1), 3, func() error {
		calls++
		if calls < 3 {
			return StatusCodeError{Code: 503, Status: "503 Service Unavailable"}
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestWithRetry_unrecoverableStatusCode(t *testing.T) {
	fastWaits(t)
	var calls int
	err := WithRetry(t.Context(), rate.NewLimiter(rate.Inf, 1), 3, func() error {
		calls++
		return StatusCodeError{Code: 404, Status: "404 Not Found"}
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestWithRetry_netOpError(t *testing.T) {
	fastWaits(t)
	var calls int
	err := WithRetry(t.Context(), rate.NewLimiter(rate.Inf, 1), 2, func() error {
		calls++
		return &net.OpError{Op: "read", Err: errors.New("connection reset")}
	})
	require.ErrorIs(t, err, ErrRetryFailed)
	assert.Equal(t, 2, calls)
}

func TestWithRetry_callbackError(t *testing.T) {
	errFatal := errors.New("fatal")
	err := WithRetry(t.Context(), rate.NewLimiter(rate.Inf, 1), 3, func() error {
		return errFatal
	})
	require.ErrorIs(t, err, errFatal)
}

func TestWithRetry_contextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	err := WithRetry(ctx, rate.NewLimiter(rate.Every(time.Hour), 1), 3, func() error {
		t.Fatal("callback must not be called")
		return nil
	})
	require.Error(t, err)
}

func TestIsRecoverable(t *testing.T) {
	tests := []struct {
		code int
		want bool
	}{
		{200, false},
		{408, true},
		{404, false},
		{500, true},
		{501, false},
		{502, true},
		{503, true},
		{599, true},
		{600, false},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, IsRecoverable(tt.code), "code=%d", tt.code)
	}
}

func TestCubicWait(t *testing.T) {
	assert.Equal(t, 8*time.Second, cubicWait(0))
	assert.Equal(t, 27*time.Second, cubicWait(1))
	assert.Equal(t, 64*time.Second, cubicWait(2))
	assert.Equal(t, maxAllowedWaitTime, cubicWait(100))
}

func TestStatusCodeError(t *testing.T) {
	err := StatusCodeError{Code: 500, Status: "500 Internal Server Error"}
	assert.Equal(t, "server responded with 500: 500 Internal Server Error", err.Error())
	assert.Equal(t, 500, err.HTTPStatusCode())
}
