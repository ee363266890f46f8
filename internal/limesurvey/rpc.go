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

// In this file: the JSON-RPC transport.

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/trace"

	"github.com/rusq/lsmcp/internal/network"
)

// rpcRequest is the JSON-RPC request envelope, as expected by the
// RemoteControl handler (JSON-RPC 1.0 with positional parameters).
type rpcRequest struct {
	Method string `json:"method"`
	Params []any  `json:"params"`
	ID     int64  `json:"id"`
}

// rpcResponse is the response envelope.
type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  json.RawMessage `json:"error"`
	ID     int64           `json:"id"`
}

// nextID returns the next request ID.
func (c *Client) nextID() int64 {
	c.idmu.Lock()
	defer c.idmu.Unlock()
	c.reqID++
	return c.reqID
}

// Call invokes the named RemoteControl method with the session key prepended
// to params, and returns the raw result.  It is the generic escape hatch for
// methods that have no typed wrapper; prefer the typed methods.
func (c *Client) Call(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.call(ctx, method, params, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// call invokes a session-scoped method: the session key is prepended to
// params.  If the server reports an invalid session (keys expire
// server-side), it re-authenticates once and repeats the call.
func (c *Client) call(ctx context.Context, method string, params []any, v any) error {
	key, err := c.session()
	if err != nil {
		return err
	}

	err = c.rawCall(ctx, method, append([]any{key}, params...), v)
	if !IsInvalidSession(err) {
		return err
	}

	c.lg.DebugContext(ctx, "limesurvey: session expired, re-authenticating", "method", method)
	if err := c.authenticate(ctx); err != nil {
		return err
	}
	key, err = c.session()
	if err != nil {
		return err
	}
	return c.rawCall(ctx, method, append([]any{key}, params...), v)
}

// rawCall performs one JSON-RPC call, retrying transient failures.  The
// result is unmarshalled into v, unless v is nil.
func (c *Client) rawCall(ctx context.Context, method string, params []any, v any) error {
	ctx, task := trace.NewTask(ctx, "rawCall")
	defer task.End()
	trace.Logf(ctx, "limesurvey", "method: %s", method)

	body, err := json.Marshal(rpcRequest{
		Method: method,
		Params: params,
		ID:     c.nextID(),
	})
	if err != nil {
		return fmt.Errorf("request marshal: %w", err)
	}

	var resp rpcResponse
	err = network.WithRetry(ctx, c.limiter, c.limits.RetryAttempts, func() error {
		return c.do(ctx, body, &resp)
	})
	if err != nil {
		return fmt.Errorf("limesurvey: %s: %w", method, err)
	}

	if err := rpcError(resp.Error); err != nil {
		return fmt.Errorf("limesurvey: %s: %w", method, err)
	}
	if err := statusError(method, resp.Result); err != nil {
		return err
	}
	if v == nil || len(resp.Result) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Result, v); err != nil {
		return fmt.Errorf("limesurvey: %s: result unmarshal: %w", method, err)
	}
	return nil
}

// do performs a single HTTP round trip.
func (c *Client) do(ctx context.Context, body []byte, resp *rpcResponse) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	r, err := c.cl.Do(req)
	if err != nil {
		return err
	}
	defer r.Body.Close()

	if r.StatusCode != http.StatusOK {
		return network.StatusCodeError{Code: r.StatusCode, Status: r.Status}
	}
	if err := json.NewDecoder(r.Body).Decode(resp); err != nil {
		return fmt.Errorf("response decode: %w", err)
	}
	return nil
}

// rpcError interprets the "error" member of the envelope.  LimeSurvey emits
// either null, a bare string, or a {code, message} object.
func rpcError(raw json.RawMessage) error {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	var msg string
	if err := json.Unmarshal(raw, &msg); err == nil {
		return &RPCError{Message: msg}
	}
	var rpcErr RPCError
	if err := json.Unmarshal(raw, &rpcErr); err == nil {
		return &rpcErr
	}
	return &RPCError{Message: string(raw)}
}

// statusError detects the in-band error convention: a result object with a
// sole "status" member whose value is not "OK" is an error.
func statusError(method string, raw json.RawMessage) error {
	var status struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(raw, &status); err != nil {
		return nil // not an object, not a status error
	}
	if status.Status == "" || status.Status == statusOK {
		return nil
	}
	// status may legitimately coexist with data members (e.g. copy_survey
	// returns {"status": "OK", "newsid": N}); only a sole status member is
	// an error, which is the case when the object has exactly one key.
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil || len(m) != 1 {
		return nil
	}
	return &APIError{Method: method, Status: status.Status}
}
