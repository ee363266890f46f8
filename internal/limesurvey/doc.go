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

// Package limesurvey implements a client for the LimeSurvey RemoteControl 2
// API.
//
// The RemoteControl API is JSON-RPC over HTTP POST: every call is a single
// request to the configured endpoint (usually
// https://example.com/index.php/admin/remotecontrol) with a method name and
// positional parameters.  Almost every method requires a session key as its
// first parameter; the client obtains one with get_session_key on Dial and
// releases it with release_session_key on Close.  If the server invalidates
// the session mid-flight (keys expire server-side), the client
// re-authenticates once and retries the call.
//
// Calls are rate limited and transparently retried on transient HTTP and
// network errors, see the network package for details.
//
// LimeSurvey serialises most numeric identifiers as strings (a PHP-ism that
// depends on the database driver); the IntString type accepts both forms.
// Error conditions are reported in-band as a result object with a sole
// "status" member; the client converts those to *APIError.
package limesurvey
