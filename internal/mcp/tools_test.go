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
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func TestHandleAddSurvey(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		srv, m := newTestServer(t)
		m.EXPECT().
			AddSurvey(gomock.Any(), 0, "Feedback", "en", "").
			Return(12345, nil)

		res, err := srv.handleAddSurvey(t.Context(), toolReq(map[string]any{
			"title":    "Feedback",
			"language": "en",
		}))
		require.NoError(t, err)
		assert.False(t, isErrorResult(res))
		assert.Contains(t, firstText(t, res), "12345")
	})
	t.Run("missing title", func(t *testing.T) {
		srv, _ := newTestServer(t)
		res, err := srv.handleAddSurvey(t.Context(), toolReq(map[string]any{"language": "en"}))
		require.NoError(t, err)
		assert.True(t, isErrorResult(res))
	})
	t.Run("client error", func(t *testing.T) {
		srv, m := newTestServer(t)
		m.EXPECT().
			AddSurvey(gomock.Any(), 0, "Feedback", "en", "").
			Return(0, errors.New("no permission"))

		res, err := srv.handleAddSurvey(t.Context(), toolReq(map[string]any{
			"title":    "Feedback",
			"language": "en",
		}))
		require.NoError(t, err)
		assert.True(t, isErrorResult(res))
		assert.Contains(t, firstText(t, res), "no permission")
	})
}

func TestHandleDeleteSurvey(t *testing.T) {
	srv, m := newTestServer(t)
	m.EXPECT().DeleteSurvey(gomock.Any(), 12345).Return(nil)

	res, err := srv.handleDeleteSurvey(t.Context(), toolReq(map[string]any{"survey_id": float64(12345)}))
	require.NoError(t, err)
	assert.False(t, isErrorResult(res))

	// missing survey_id
	res, err = srv.handleDeleteSurvey(t.Context(), toolReq(nil))
	require.NoError(t, err)
	assert.True(t, isErrorResult(res))
}

func TestHandleImportSurvey(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		srv, m := newTestServer(t)
		content := []byte("<lss/>")
		m.EXPECT().
			ImportSurvey(gomock.Any(), content, "", "", 0).
			Return(54321, nil)

		res, err := srv.handleImportSurvey(t.Context(), toolReq(map[string]any{
			"content": base64.StdEncoding.EncodeToString(content),
		}))
		require.NoError(t, err)
		assert.False(t, isErrorResult(res))
		assert.Contains(t, firstText(t, res), "54321")
	})
	t.Run("invalid base64", func(t *testing.T) {
		srv, _ := newTestServer(t)
		res, err := srv.handleImportSurvey(t.Context(), toolReq(map[string]any{
			"content": "*** not base64 ***",
		}))
		require.NoError(t, err)
		assert.True(t, isErrorResult(res))
		assert.Contains(t, firstText(t, res), "base64")
	})
}

func TestHandleAddParticipants(t *testing.T) {
	srv, m := newTestServer(t)
	participants := []map[string]any{{"firstname": "Ada", "email": "ada@example.com"}}
	m.EXPECT().
		AddParticipants(gomock.Any(), 12345, participants, true).
		Return([]map[string]any{{"tid": "1", "token": "abc"}}, nil)

	res, err := srv.handleAddParticipants(t.Context(), toolReq(map[string]any{
		"survey_id":    float64(12345),
		"participants": []any{map[string]any{"firstname": "Ada", "email": "ada@example.com"}},
	}))
	require.NoError(t, err)
	assert.False(t, isErrorResult(res))
	assert.Contains(t, firstText(t, res), "abc")
}

func TestHandleDeleteParticipants_missingTokenIDs(t *testing.T) {
	srv, _ := newTestServer(t)
	res, err := srv.handleDeleteParticipants(t.Context(), toolReq(map[string]any{
		"survey_id": float64(12345),
	}))
	require.NoError(t, err)
	assert.True(t, isErrorResult(res))
}

func TestHandleInviteParticipants_allPending(t *testing.T) {
	srv, m := newTestServer(t)
	m.EXPECT().
		InviteParticipants(gomock.Any(), 12345, nil).
		Return(map[string]any{"status": "0 left to send"}, nil)

	res, err := srv.handleInviteParticipants(t.Context(), toolReq(map[string]any{
		"survey_id": float64(12345),
	}))
	require.NoError(t, err)
	assert.False(t, isErrorResult(res))
}

func TestHandleExportResponses(t *testing.T) {
	t.Run("text format verbatim", func(t *testing.T) {
		srv, m := newTestServer(t)
		csv := "id,q1\n1,A\n"
		m.EXPECT().
			ExportResponses(gomock.Any(), 12345, "csv", "", "", "", "").
			Return([]byte(csv), nil)

		res, err := srv.handleExportResponses(t.Context(), toolReq(map[string]any{
			"survey_id": float64(12345),
		}))
		require.NoError(t, err)
		assert.False(t, isErrorResult(res))
		assert.Equal(t, csv, firstText(t, res))
	})
	t.Run("binary format as base64", func(t *testing.T) {
		srv, m := newTestServer(t)
		pdf := []byte{0x25, 0x50, 0x44, 0x46}
		m.EXPECT().
			ExportResponses(gomock.Any(), 12345, "pdf", "", "", "", "").
			Return(pdf, nil)

		res, err := srv.handleExportResponses(t.Context(), toolReq(map[string]any{
			"survey_id": float64(12345),
			"format":    "pdf",
		}))
		require.NoError(t, err)
		assert.False(t, isErrorResult(res))
		assert.Equal(t, base64.StdEncoding.EncodeToString(pdf), firstText(t, res))
	})
}

func TestHandleAddResponses(t *testing.T) {
	srv, m := newTestServer(t)
	responses := []map[string]any{{"q1": "A"}, {"q1": "B"}}
	m.EXPECT().
		AddResponses(gomock.Any(), 12345, responses).
		Return([]int{1, 2}, nil)

	res, err := srv.handleAddResponses(t.Context(), toolReq(map[string]any{
		"survey_id": float64(12345),
		"responses": []any{map[string]any{"q1": "A"}, map[string]any{"q1": "B"}},
	}))
	require.NoError(t, err)
	assert.False(t, isErrorResult(res))

	var ids []int
	require.NoError(t, json.Unmarshal([]byte(firstText(t, res)), &ids))
	assert.Equal(t, []int{1, 2}, ids)
}

func TestHandleSaveResponses(t *testing.T) {
	srv, m := newTestServer(t)
	payload := map[string]any{"q1": "A"}
	m.EXPECT().
		Call(gomock.Any(), "save_responses", 12345, payload).
		Return(json.RawMessage(`{"saved": true}`), nil)

	res, err := srv.handleSaveResponses(t.Context(), toolReq(map[string]any{
		"survey_id": float64(12345),
		"responses": payload,
	}))
	require.NoError(t, err)
	assert.False(t, isErrorResult(res))
	assert.JSONEq(t, `{"saved": true}`, firstText(t, res))
}

func TestHandleExportTimeline(t *testing.T) {
	srv, m := newTestServer(t)
	m.EXPECT().
		ExportTimeline(gomock.Any(), 12345, "", "2026-01-01 00:00", "2026-02-01 00:00").
		Return(map[string]any{"2026-01-15": float64(3)}, nil)

	res, err := srv.handleExportTimeline(t.Context(), toolReq(map[string]any{
		"survey_id": float64(12345),
		"start":     "2026-01-01 00:00",
		"end":       "2026-02-01 00:00",
	}))
	require.NoError(t, err)
	assert.False(t, isErrorResult(res))
	assert.Contains(t, firstText(t, res), "2026-01-15")
}

func TestHandleAddQuota(t *testing.T) {
	srv, m := newTestServer(t)
	m.EXPECT().
		AddQuota(gomock.Any(), 12345, "Max males", 100, true, "", "", "", "").
		Return(7, nil)

	res, err := srv.handleAddQuota(t.Context(), toolReq(map[string]any{
		"survey_id": float64(12345),
		"name":      "Max males",
		"limit":     float64(100),
	}))
	require.NoError(t, err)
	assert.False(t, isErrorResult(res))
	assert.Contains(t, firstText(t, res), "Quota 7")
}

func TestHandleUploadFile(t *testing.T) {
	srv, m := newTestServer(t)
	content := []byte("file content")
	m.EXPECT().
		UploadFile(gomock.Any(), 12345, "12345X1X2", "receipt.pdf", content).
		Return(map[string]any{"success": true}, nil)

	res, err := srv.handleUploadFile(t.Context(), toolReq(map[string]any{
		"survey_id":  float64(12345),
		"field_name": "12345X1X2",
		"file_name":  "receipt.pdf",
		"content":    base64.StdEncoding.EncodeToString(content),
	}))
	require.NoError(t, err)
	assert.False(t, isErrorResult(res))
	assert.Contains(t, firstText(t, res), "success")
}

func TestToolsHaveUniqueNames(t *testing.T) {
	srv, _ := newTestServer(t)
	seen := make(map[string]bool)
	for _, tool := range srv.tools() {
		assert.False(t, seen[tool.Tool.Name], "duplicate tool name %q", tool.Tool.Name)
		seen[tool.Tool.Name] = true
		assert.NotEmpty(t, tool.Tool.Description, "tool %q has no description", tool.Tool.Name)
		assert.NotNil(t, tool.Handler, "tool %q has no handler", tool.Tool.Name)
	}
	assert.Len(t, seen, 36)
}
