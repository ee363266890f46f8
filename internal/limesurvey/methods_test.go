package limesurvey

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ListSurveys(t *testing.T) {
	t.Run("decodes stringly typed fields", func(t *testing.T) {
		cl := newTestClient(t, func(t *testing.T, method string, params []json.RawMessage) any {
			require.Equal(t, "list_surveys", method)
			return []map[string]any{
				{"sid": "12345", "gsid": "1", "surveyls_title": "Customer feedback", "startdate": nil, "expires": nil, "active": "Y"},
				{"sid": 67890, "gsid": "1", "surveyls_title": "Draft", "startdate": nil, "expires": nil, "active": "N"},
			}
		})
		ss, err := cl.ListSurveys(t.Context())
		require.NoError(t, err)
		require.Len(t, ss, 2)
		assert.Equal(t, 12345, ss[0].ID.Int())
		assert.True(t, ss[0].Active.Bool())
		assert.Equal(t, 67890, ss[1].ID.Int())
		assert.False(t, ss[1].Active.Bool())
	})
	t.Run("no surveys is not an error", func(t *testing.T) {
		cl := newTestClient(t, func(t *testing.T, method string, params []json.RawMessage) any {
			return map[string]string{"status": "No surveys found"}
		})
		ss, err := cl.ListSurveys(t.Context())
		require.NoError(t, err)
		assert.Empty(t, ss)
	})
}

func TestClient_AddSurvey(t *testing.T) {
	cl := newTestClient(t, func(t *testing.T, method string, params []json.RawMessage) any {
		require.Equal(t, "add_survey", method)
		require.Len(t, params, 5)
		var format string
		require.NoError(t, json.Unmarshal(params[4], &format))
		assert.Equal(t, "G", format) // default presentation format
		return "55555"
	})
	sid, err := cl.AddSurvey(t.Context(), 0, "New survey", "en", "")
	require.NoError(t, err)
	assert.Equal(t, 55555, sid)
}

func TestClient_CopySurvey(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		cl := newTestClient(t, func(t *testing.T, method string, params []json.RawMessage) any {
			return map[string]any{"status": "OK", "newsid": 77777}
		})
		sid, err := cl.CopySurvey(t.Context(), 12345, "copy")
		require.NoError(t, err)
		assert.Equal(t, 77777, sid)
	})
	t.Run("failure status", func(t *testing.T) {
		cl := newTestClient(t, func(t *testing.T, method string, params []json.RawMessage) any {
			return map[string]any{"status": "Copy failed", "newsid": nil}
		})
		_, err := cl.CopySurvey(t.Context(), 12345, "copy")
		var ae *APIError
		require.ErrorAs(t, err, &ae)
		assert.Equal(t, "Copy failed", ae.Status)
	})
}

func TestClient_ImportSurvey(t *testing.T) {
	content := []byte("<lss>structure</lss>")
	cl := newTestClient(t, func(t *testing.T, method string, params []json.RawMessage) any {
		require.Equal(t, "import_survey", method)
		require.Len(t, params, 5)
		var encoded, format string
		require.NoError(t, json.Unmarshal(params[1], &encoded))
		require.NoError(t, json.Unmarshal(params[2], &format))
		assert.Equal(t, base64.StdEncoding.EncodeToString(content), encoded)
		assert.Equal(t, "lss", format)
		return "13579"
	})
	sid, err := cl.ImportSurvey(t.Context(), content, "", "", 0)
	require.NoError(t, err)
	assert.Equal(t, 13579, sid)
}

func TestClient_ExportResponses(t *testing.T) {
	csv := "id,submitdate,q1\n1,2026-01-15,A\n"
	cl := newTestClient(t, func(t *testing.T, method string, params []json.RawMessage) any {
		require.Equal(t, "export_responses", method)
		var format string
		require.NoError(t, json.Unmarshal(params[2], &format))
		assert.Equal(t, "csv", format)
		return base64.StdEncoding.EncodeToString([]byte(csv))
	})
	data, err := cl.ExportResponses(t.Context(), 12345, "", "", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, csv, string(data))
}

func TestClient_AddResponses(t *testing.T) {
	var rid int
	cl := newTestClient(t, func(t *testing.T, method string, params []json.RawMessage) any {
		require.Equal(t, "add_response", method)
		rid++
		if rid == 3 {
			return map[string]string{"status": "No permission"}
		}
		return rid
	})
	ids, err := cl.AddResponses(t.Context(), 12345, []map[string]any{
		{"q1": "A"}, {"q1": "B"}, {"q1": "C"},
	})
	require.Error(t, err)
	assert.Equal(t, []int{1, 2}, ids) // the first two made it in
}

func TestClient_UpdateResponse(t *testing.T) {
	cl := newTestClient(t, nil)
	err := cl.UpdateResponse(t.Context(), 12345, map[string]any{"q1": "A"})
	assert.ErrorIs(t, err, ErrNoResponseID)
}

func TestClient_GetResponseIDs(t *testing.T) {
	cl := newTestClient(t, func(t *testing.T, method string, params []json.RawMessage) any {
		require.Equal(t, "get_response_ids", method)
		return []any{"1", "2", 3}
	})
	ids, err := cl.GetResponseIDs(t.Context(), 12345, "tok123")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, ids)
}

func TestClient_GetParticipantProperties(t *testing.T) {
	cl := newTestClient(t, func(t *testing.T, method string, params []json.RawMessage) any {
		require.Equal(t, "get_participant_properties", method)
		require.Len(t, params, 3)
		var query map[string]string
		require.NoError(t, json.Unmarshal(params[2], &query))
		assert.Equal(t, map[string]string{"token": "tok123"}, query)
		return map[string]any{"firstname": "Ada", "completed": "N"}
	})
	props, err := cl.GetParticipantProperties(t.Context(), 12345, "tok123")
	require.NoError(t, err)
	assert.Equal(t, "Ada", props["firstname"])
}

func TestClient_GetAvailableLanguages(t *testing.T) {
	cl := newTestClient(t, func(t *testing.T, method string, params []json.RawMessage) any {
		require.Equal(t, "get_site_settings", method)
		var name string
		require.NoError(t, json.Unmarshal(params[1], &name))
		assert.Equal(t, "availablelanguages", name)
		return "en de fr"
	})
	langs, err := cl.GetAvailableLanguages(t.Context())
	require.NoError(t, err)
	assert.Equal(t, []string{"en", "de", "fr"}, langs)
}

func TestClient_DownloadFiles(t *testing.T) {
	cl := newTestClient(t, func(t *testing.T, method string, params []json.RawMessage) any {
		require.Equal(t, "get_uploaded_files", method)
		return map[string]any{
			"fu_abc123": map[string]any{
				"meta":    map[string]any{"name": "receipt.pdf"},
				"content": base64.StdEncoding.EncodeToString([]byte("pdf bytes")),
			},
		}
	})
	files, err := cl.DownloadFiles(t.Context(), 12345, "")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "fu_abc123", files[0].ID)
	assert.Equal(t, "receipt.pdf", files[0].Name)
	assert.Equal(t, []byte("pdf bytes"), files[0].Data)
}

func TestClient_UploadFile(t *testing.T) {
	content := []byte("file content")
	cl := newTestClient(t, func(t *testing.T, method string, params []json.RawMessage) any {
		require.Equal(t, "upload_file", method)
		require.Len(t, params, 5)
		var encoded string
		require.NoError(t, json.Unmarshal(params[4], &encoded))
		assert.Equal(t, base64.StdEncoding.EncodeToString(content), encoded)
		return map[string]any{"success": true, "size": float64(len(content))}
	})
	meta, err := cl.UploadFile(t.Context(), 12345, "12345X1X2", "receipt.pdf", content)
	require.NoError(t, err)
	assert.Equal(t, true, meta["success"])
}
