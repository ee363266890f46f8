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

// In this file: the tool registry and shared tool argument helpers.

import (
	"encoding/base64"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"
)

// tools returns all MCP tools that this server exposes.
func (s *Server) tools() []mcpsrv.ServerTool {
	return []mcpsrv.ServerTool{
		// surveys
		s.toolAddSurvey(),
		s.toolCopySurvey(),
		s.toolDeleteSurvey(),
		s.toolActivateSurvey(),
		s.toolImportSurvey(),
		s.toolSetSurveyProperties(),
		// groups
		s.toolAddGroup(),
		s.toolDeleteGroup(),
		s.toolSetGroupProperties(),
		s.toolImportGroup(),
		// questions
		s.toolDeleteQuestion(),
		s.toolSetQuestionProperties(),
		s.toolImportQuestion(),
		// languages
		s.toolAddLanguage(),
		s.toolDeleteLanguage(),
		s.toolSetLanguageProperties(),
		// participants
		s.toolAddParticipants(),
		s.toolDeleteParticipants(),
		s.toolInviteParticipants(),
		s.toolRemindParticipants(),
		s.toolSetParticipantProperties(),
		s.toolImportCPDBParticipants(),
		s.toolActivateTokens(),
		// quotas
		s.toolAddQuota(),
		s.toolDeleteQuota(),
		s.toolSetQuotaProperties(),
		// responses
		s.toolAddResponse(),
		s.toolAddResponses(),
		s.toolUpdateResponse(),
		s.toolDeleteResponse(),
		s.toolSaveResponses(),
		s.toolExportResponses(),
		s.toolExportStatistics(),
		s.toolExportTimeline(),
		// files
		s.toolUploadFile(),
		s.toolDownloadFiles(),
	}
}

// requireIntArg extracts a mandatory positive integer argument.
func requireIntArg(req mcplib.CallToolRequest, name string) (int, error) {
	n := intArg(req, name, 0)
	if n <= 0 {
		return 0, fmt.Errorf("%s is required and must be a positive integer", name)
	}
	return n, nil
}

// requireStringArg extracts a mandatory non-empty string argument.
func requireStringArg(req mcplib.CallToolRequest, name string) (string, error) {
	s, ok := stringArg(req, name)
	if !ok || s == "" {
		return "", fmt.Errorf("%s is required", name)
	}
	return s, nil
}

// base64Arg extracts a mandatory base64-encoded file content argument and
// decodes it.
func base64Arg(req mcplib.CallToolRequest, name string) ([]byte, error) {
	enc, err := requireStringArg(req, name)
	if err != nil {
		return nil, err
	}
	data, err := base64.StdEncoding.DecodeString(enc)
	if err != nil {
		return nil, fmt.Errorf("%s is not valid base64: %w", name, err)
	}
	return data, nil
}

// textFormats are the export formats that are safe to return verbatim in a
// text content block.
var textFormats = map[string]bool{
	"csv":  true,
	"json": true,
	"html": true,
}

// exportResult wraps exported document content: text formats are returned
// verbatim, binary formats as base64.
func exportResult(format string, data []byte) *mcplib.CallToolResult {
	if textFormats[format] {
		return resultText(string(data))
	}
	return resultText(base64.StdEncoding.EncodeToString(data))
}
