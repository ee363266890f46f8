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
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimits_Validate(t *testing.T) {
	tests := []struct {
		name    string
		limits  Limits
		wantErr bool
	}{
		{"defaults are valid", DefLimits, false},
		{"zero requests per minute", Limits{RequestsPerMinute: 0, Burst: 1}, true},
		{"too many requests per minute", Limits{RequestsPerMinute: 100000, Burst: 1}, true},
		{"zero burst", Limits{RequestsPerMinute: 60, Burst: 0}, true},
		{"negative boost", Limits{RequestsPerMinute: 60, Burst: 1, Boost: -1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.limits.Validate()
			if tt.wantErr {
				var vErr validator.ValidationErrors
				require.ErrorAs(t, err, &vErr)
				// every entry must be translatable.
				for _, entry := range vErr {
					assert.NotEmpty(t, entry.Translate(Translations))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLimits_Apply(t *testing.T) {
	l := DefLimits
	err := l.Apply(Limits{RequestsPerMinute: 120, Boost: 30})
	require.NoError(t, err)
	assert.Equal(t, 120, l.RequestsPerMinute)
	assert.Equal(t, 30, l.Boost)
	assert.Equal(t, DefLimits.Burst, l.Burst) // zero values don't override

	err = l.Apply(Limits{RequestsPerMinute: -5})
	assert.Error(t, err)
}

func TestLimits_Limiter(t *testing.T) {
	l := Limits{RequestsPerMinute: 60, Burst: 2, Boost: 0}
	lim := l.Limiter()
	require.NotNil(t, lim)
	assert.Equal(t, 2, lim.Burst())
	assert.InDelta(t, 1.0, float64(lim.Limit()), 0.001) // 60/min == 1/sec
}

func TestEvery(t *testing.T) {
	assert.Equal(t, time.Second, every(60, 0))
	assert.Equal(t, 500*time.Millisecond, every(60, 60))
}
