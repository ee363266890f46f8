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
	"time"

	"golang.org/x/time/rate"
)

// NewLimiter returns a throttler with reqPerMin requests per minute.
// Optionally the caller may specify the boost.
func NewLimiter(reqPerMin int, burst uint, boost int) *rate.Limiter {
	return rate.NewLimiter(rate.Every(every(reqPerMin, boost)), int(burst))
}

func every(reqPerMin int, boost int) time.Duration {
	return time.Minute / time.Duration(reqPerMin+boost)
}

// Limiter constructs a rate limiter from the limits.
func (l *Limits) Limiter() *rate.Limiter {
	return NewLimiter(l.RequestsPerMinute, l.Burst, l.Boost)
}
