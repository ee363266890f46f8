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

// In this file: API limits and their validation.

import (
	"errors"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

// Limits defines the rate limits for requests to the RemoteControl endpoint.
// LimeSurvey does not document any server-side rate limits, but instances are
// routinely deployed on shared PHP hosting, so the defaults are conservative.
type Limits struct {
	// RequestsPerMinute is the base number of requests per minute.
	RequestsPerMinute int `toml:"requests_per_minute" validate:"required,gte=1,lte=6000"`
	// Burst is the allowed burst in requests per second.
	Burst uint `toml:"burst" validate:"required,gte=1,lte=100"`
	// Boost is added to RequestsPerMinute; it exists so that the base value
	// can be kept in a config file and tweaked from the command line.
	Boost int `toml:"boost" validate:"gte=0"`
	// RetryAttempts is the number of attempts for transient errors.
	RetryAttempts int `toml:"retry_attempts" validate:"gte=0,lte=500"`
}

// DefLimits are the default limits, safe for a shared-hosting LimeSurvey
// instance.
var DefLimits = Limits{
	RequestsPerMinute: 60,
	Burst:             2,
	Boost:             0,
	RetryAttempts:     3,
}

var ErrNilLimits = errors.New("nil limits")

var (
	validate     *validator.Validate
	Translations ut.Translator
)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	var ok bool
	Translations, ok = uni.GetTranslator("en")
	if !ok {
		panic("internal error: failed to init translator")
	}
	if err := entranslations.RegisterDefaultTranslations(validate, Translations); err != nil {
		panic("internal error: failed to register translations: " + err.Error())
	}
}

// Validate validates the limits.  The error returned is a
// validator.ValidationErrors, which can be translated with Translations.
func (l *Limits) Validate() error {
	return validate.Struct(l)
}

// Apply applies the non-zero values from other to the limits, and validates
// the result.
func (l *Limits) Apply(other Limits) error {
	apply(&l.RequestsPerMinute, other.RequestsPerMinute)
	apply(&l.Burst, other.Burst)
	apply(&l.Boost, other.Boost)
	apply(&l.RetryAttempts, other.RetryAttempts)
	return l.Validate()
}

func apply[T comparable](this *T, other T) {
	var zero T
	if other != zero {
		*this = other
	}
}
