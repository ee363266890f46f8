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

package limesurvey

// In this file: error types returned by the client.

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoSession is returned when a call is attempted on a closed client.
var ErrNoSession = errors.New("no session: client is closed")

// ErrNoResponseID is returned by UpdateResponse when the response data does
// not identify the response to update.
var ErrNoResponseID = errors.New(`response data has no "id" member`)

// APIError is an application-level error reported by the RemoteControl API.
// The API signals errors in-band: the call succeeds at the JSON-RPC level,
// but the result is an object with a single "status" member carrying the
// message, e.g. {"status": "No permission"}.
type APIError struct {
	Method string // the RemoteControl method that returned the error
	Status string // the status message, verbatim
}

func (e *APIError) Error() string {
	return fmt.Sprintf("limesurvey: %s: %s", e.Method, e.Status)
}

// invalid session statuses as emitted by remotecontrol_handle.
const (
	statusInvalidSession = "Invalid session key"
	statusInvalidAuth    = "Invalid user name or password"
	statusOK             = "OK"
)

// IsInvalidSession reports whether err is an APIError caused by an expired
// or invalid session key.
func IsInvalidSession(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.Status == statusInvalidSession
}

// IsNotFound reports whether err is one of the "No <entities> found"
// pseudo-errors the API returns instead of an empty list (e.g. "No surveys
// found", "No Tokens found").
func IsNotFound(err error) bool {
	var ae *APIError
	if !errors.As(err, &ae) {
		return false
	}
	s := strings.ToLower(ae.Status)
	return strings.HasPrefix(s, "no ") && strings.Contains(s, "found")
}

// AuthError wraps the error returned when the server rejects the configured
// credentials.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string { return "authentication error: " + e.Err.Error() }
func (e *AuthError) Unwrap() error { return e.Err }
func (e *AuthError) Is(target error) bool {
	_, ok := target.(*AuthError)
	return ok
}

// RPCError is a transport-level JSON-RPC error (the "error" member of the
// response envelope).  LimeSurvey rarely uses it, preferring in-band status
// objects, but malformed requests do produce one.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	if e.Code == 0 {
		return "rpc error: " + e.Message
	}
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}
