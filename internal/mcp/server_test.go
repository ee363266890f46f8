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

package mcp

import (
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/rusq/lsmcp/internal/mcp/mock_mcp"
)

const testEndpoint = "https://survey.example.com/index.php/admin/remotecontrol"

// newTestServer creates a *Server backed by a MockCaller with the minimum
// Endpoint expectation set.
func newTestServer(t *testing.T) (*Server, *mock_mcp.MockCaller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := mock_mcp.NewMockCaller(ctrl)
	m.EXPECT().Endpoint().Return(testEndpoint).AnyTimes()
	srv := New(m, nil)
	require.NotNil(t, srv)
	return srv, m
}

// toolReq builds a CallToolRequest with the given argument map.
func toolReq(args map[string]any) mcplib.CallToolRequest {
	req := mcplib.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

// isErrorResult returns true when the result carries IsError=true.
func isErrorResult(r *mcplib.CallToolResult) bool {
	return r != nil && r.IsError
}

// firstText returns the text of the first TextContent in the result.
func firstText(t *testing.T, r *mcplib.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, r.Content, "result has no content")
	tc, ok := r.Content[0].(mcplib.TextContent)
	require.True(t, ok, "first content block is not text")
	return tc.Text
}

func TestNew(t *testing.T) {
	srv, _ := newTestServer(t)
	assert.NotNil(t, srv.mcp)
	assert.NotNil(t, srv.client)
	assert.NotNil(t, srv.logger)
}

func TestInstructions(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mock_mcp.NewMockCaller(ctrl)
	m.EXPECT().Endpoint().Return(testEndpoint)

	got := instructions(m)
	assert.Contains(t, got, testEndpoint)
	assert.Contains(t, got, "LimeSurvey")
}

func TestArgHelpers(t *testing.T) {
	req := toolReq(map[string]any{
		"s":       "hello",
		"n":       float64(42),
		"b":       true,
		"m":       map[string]any{"k": "v"},
		"mm":      []any{map[string]any{"k": "v"}},
		"nn":      []any{float64(1), float64(2)},
		"bad_mm":  []any{"not a map"},
		"bad_nn":  []any{"not a number"},
		"wrongty": 42,
	})

	t.Run("stringArg", func(t *testing.T) {
		s, ok := stringArg(req, "s")
		assert.True(t, ok)
		assert.Equal(t, "hello", s)
		_, ok = stringArg(req, "absent")
		assert.False(t, ok)
	})
	t.Run("intArg", func(t *testing.T) {
		assert.Equal(t, 42, intArg(req, "n", 0))
		assert.Equal(t, 7, intArg(req, "absent", 7))
		assert.Equal(t, 7, intArg(req, "s", 7)) // wrong type
	})
	t.Run("boolArg", func(t *testing.T) {
		assert.True(t, boolArg(req, "b", false))
		assert.True(t, boolArg(req, "absent", true))
	})
	t.Run("mapArg", func(t *testing.T) {
		m, ok := mapArg(req, "m")
		assert.True(t, ok)
		assert.Equal(t, map[string]any{"k": "v"}, m)
		_, ok = mapArg(req, "s")
		assert.False(t, ok)
	})
	t.Run("mapListArg", func(t *testing.T) {
		mm, ok := mapListArg(req, "mm")
		assert.True(t, ok)
		require.Len(t, mm, 1)
		_, ok = mapListArg(req, "bad_mm")
		assert.False(t, ok)
	})
	t.Run("intListArg", func(t *testing.T) {
		nn, ok := intListArg(req, "nn")
		assert.True(t, ok)
		assert.Equal(t, []int{1, 2}, nn)
		// absent is not an error, the list arguments are optional.
		nn, ok = intListArg(req, "absent")
		assert.True(t, ok)
		assert.Nil(t, nn)
		_, ok = intListArg(req, "bad_nn")
		assert.False(t, ok)
	})
}
