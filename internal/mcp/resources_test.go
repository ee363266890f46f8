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
	"errors"
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/rusq/lsmcp/internal/limesurvey"
)

// readReq builds a ReadResourceRequest for the given URI.
func readReq(uri string) mcplib.ReadResourceRequest {
	req := mcplib.ReadResourceRequest{}
	req.Params.URI = uri
	return req
}

// resourceText returns the text of the sole content block.
func resourceText(t *testing.T, cc []mcplib.ResourceContents) string {
	t.Helper()
	require.Len(t, cc, 1)
	tc, ok := cc[0].(mcplib.TextResourceContents)
	require.True(t, ok, "content block is not text")
	return tc.Text
}

func TestURIParts(t *testing.T) {
	tests := []struct {
		uri     string
		scheme  string
		want    []string
		wantErr bool
	}{
		{"survey://12345", "survey", []string{"12345"}, false},
		{"survey://", "survey", nil, false},
		{"participant://tok/survey/1", "participant", []string{"tok", "survey", "1"}, false},
		{"language://12345/de", "language", []string{"12345", "de"}, false},
		{"survey://12345", "group", nil, true}, // scheme mismatch
	}
	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			got, err := uriParts(tt.uri, tt.scheme)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestURIID(t *testing.T) {
	tests := []struct {
		uri     string
		wantID  int
		wantErr bool
	}{
		{"survey://12345", 12345, false},
		{"survey://", 0, true},
		{"survey://abc", 0, true},
		{"survey://-1", 0, true},
		{"survey://1/2", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			id, err := uriID(tt.uri, "survey")
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestReadSurvey(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		srv, m := newTestServer(t)
		m.EXPECT().
			GetSurveyProperties(gomock.Any(), 12345).
			Return(map[string]any{"sid": "12345", "active": "Y"}, nil)

		cc, err := srv.readSurvey(t.Context(), readReq("survey://12345"))
		require.NoError(t, err)
		assert.Contains(t, resourceText(t, cc), `"active"`)
	})
	t.Run("bad uri", func(t *testing.T) {
		srv, _ := newTestServer(t)
		_, err := srv.readSurvey(t.Context(), readReq("survey://abc"))
		assert.Error(t, err)
	})
	t.Run("client error propagates", func(t *testing.T) {
		srv, m := newTestServer(t)
		m.EXPECT().
			GetSurveyProperties(gomock.Any(), 12345).
			Return(nil, errors.New("no permission"))

		_, err := srv.readSurvey(t.Context(), readReq("survey://12345"))
		assert.Error(t, err)
	})
}

func TestReadSurveys(t *testing.T) {
	srv, m := newTestServer(t)
	m.EXPECT().
		ListSurveys(gomock.Any()).
		Return([]limesurvey.Survey{{ID: 12345, Title: "Feedback"}}, nil)

	cc, err := srv.readSurveys(t.Context(), readReq("survey://"))
	require.NoError(t, err)
	assert.Contains(t, resourceText(t, cc), "Feedback")
}

func TestReadParticipant(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		srv, m := newTestServer(t)
		m.EXPECT().
			GetParticipantProperties(gomock.Any(), 12345, "tok123").
			Return(map[string]any{"firstname": "Ada"}, nil)

		cc, err := srv.readParticipant(t.Context(), readReq("participant://tok123/survey/12345"))
		require.NoError(t, err)
		assert.Contains(t, resourceText(t, cc), "Ada")
	})
	t.Run("malformed uri", func(t *testing.T) {
		srv, _ := newTestServer(t)
		_, err := srv.readParticipant(t.Context(), readReq("participant://tok123"))
		assert.Error(t, err)
	})
}

func TestReadLanguage(t *testing.T) {
	srv, m := newTestServer(t)
	m.EXPECT().
		GetLanguageProperties(gomock.Any(), 12345, "de").
		Return(map[string]any{"surveyls_title": "Kundenumfrage"}, nil)

	cc, err := srv.readLanguage(t.Context(), readReq("language://12345/de"))
	require.NoError(t, err)
	assert.Contains(t, resourceText(t, cc), "Kundenumfrage")
}

func TestReadResponses(t *testing.T) {
	srv, m := newTestServer(t)
	m.EXPECT().
		ExportResponses(gomock.Any(), 12345, "json", "", "", "", "").
		Return([]byte(`{"responses": []}`), nil)

	cc, err := srv.readResponses(t.Context(), readReq("responses://12345"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"responses": []}`, resourceText(t, cc))
}

func TestReadFiles_omitsContent(t *testing.T) {
	srv, m := newTestServer(t)
	m.EXPECT().
		GetUploadedFiles(gomock.Any(), 12345, "").
		Return(map[string]limesurvey.UploadedFile{
			"fu_x": {Meta: map[string]any{"name": "a.pdf"}, Content: "aHVnZSBibG9i"},
		}, nil)

	cc, err := srv.readFiles(t.Context(), readReq("files://12345"))
	require.NoError(t, err)
	text := resourceText(t, cc)
	assert.Contains(t, text, "a.pdf")
	assert.NotContains(t, text, "aHVnZSBibG9i")
}

func TestReadServerVersion(t *testing.T) {
	srv, m := newTestServer(t)
	m.EXPECT().GetServerVersion(gomock.Any()).Return("6.6.1", nil)

	cc, err := srv.readServerVersion(t.Context(), readReq("server://version"))
	require.NoError(t, err)
	assert.Equal(t, "6.6.1", resourceText(t, cc))
}
