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

// In this file: the Caller interface that decouples the MCP layer from the
// concrete RemoteControl client.

import (
	"context"
	"encoding/json"

	"github.com/rusq/lsmcp/internal/limesurvey"
)

//go:generate mockgen -destination mock_mcp/mock_caller.go . Caller

// Caller is the surface of the LimeSurvey client that the MCP server uses.
// *limesurvey.Client satisfies it.
type Caller interface {
	// Endpoint returns the RemoteControl endpoint URL with credentials
	// redacted; it is used in the server instructions only.
	Endpoint() string

	// Call invokes an arbitrary RemoteControl method; it backs the
	// pass-through tools that have no typed wrapper.
	Call(ctx context.Context, method string, params ...any) (json.RawMessage, error)

	// Surveys.
	ListSurveys(ctx context.Context) ([]limesurvey.Survey, error)
	ListSurveyGroups(ctx context.Context) ([]map[string]any, error)
	GetSurveyProperties(ctx context.Context, surveyID int) (map[string]any, error)
	SetSurveyProperties(ctx context.Context, surveyID int, props map[string]any) (map[string]any, error)
	AddSurvey(ctx context.Context, wishSID int, title, language, format string) (int, error)
	DeleteSurvey(ctx context.Context, surveyID int) error
	CopySurvey(ctx context.Context, surveyID int, newName string) (int, error)
	ActivateSurvey(ctx context.Context, surveyID int) (map[string]any, error)
	ImportSurvey(ctx context.Context, data []byte, format, name string, wishSID int) (int, error)
	GetSummary(ctx context.Context, surveyID int) (map[string]any, error)
	GetFieldmap(ctx context.Context, surveyID int) (map[string]any, error)

	// Question groups.
	ListGroups(ctx context.Context, surveyID int) ([]limesurvey.QuestionGroup, error)
	GetGroupProperties(ctx context.Context, groupID int) (map[string]any, error)
	SetGroupProperties(ctx context.Context, groupID int, props map[string]any) (map[string]any, error)
	AddGroup(ctx context.Context, surveyID int, title, description string) (int, error)
	DeleteGroup(ctx context.Context, surveyID, groupID int) error
	ImportGroup(ctx context.Context, surveyID int, data []byte, format, newName string) (int, error)

	// Questions.
	ListQuestions(ctx context.Context, surveyID, groupID int) ([]limesurvey.Question, error)
	GetQuestionProperties(ctx context.Context, questionID int) (map[string]any, error)
	SetQuestionProperties(ctx context.Context, questionID int, props map[string]any) (map[string]any, error)
	DeleteQuestion(ctx context.Context, questionID int) error
	ImportQuestion(ctx context.Context, surveyID, groupID int, data []byte, format string) (int, error)

	// Participants.
	ListParticipants(ctx context.Context, surveyID, start, limit int) ([]limesurvey.Participant, error)
	GetParticipantProperties(ctx context.Context, surveyID int, token string) (map[string]any, error)
	SetParticipantProperties(ctx context.Context, surveyID int, token string, props map[string]any) (map[string]any, error)
	AddParticipants(ctx context.Context, surveyID int, participants []map[string]any, createTokens bool) ([]map[string]any, error)
	DeleteParticipants(ctx context.Context, surveyID int, tokenIDs []int) (map[string]any, error)
	InviteParticipants(ctx context.Context, surveyID int, tokenIDs []int) (map[string]any, error)
	RemindParticipants(ctx context.Context, surveyID int, tokenIDs []int) (map[string]any, error)
	ImportCPDBParticipants(ctx context.Context, participants []map[string]any, update bool) (map[string]any, error)
	ActivateTokens(ctx context.Context, surveyID int) error

	// Quotas.
	ListQuotas(ctx context.Context, surveyID int) ([]limesurvey.Quota, error)
	GetQuotaProperties(ctx context.Context, quotaID int) (map[string]any, error)
	SetQuotaProperties(ctx context.Context, quotaID int, props map[string]any) (map[string]any, error)
	AddQuota(ctx context.Context, surveyID int, name string, limit int, active bool, action, message, url, urlDescription string) (int, error)
	DeleteQuota(ctx context.Context, quotaID int) error

	// Responses and exports.
	AddResponse(ctx context.Context, surveyID int, responseData map[string]any) (int, error)
	AddResponses(ctx context.Context, surveyID int, responses []map[string]any) ([]int, error)
	UpdateResponse(ctx context.Context, surveyID int, responseData map[string]any) error
	DeleteResponse(ctx context.Context, surveyID, responseID int) error
	GetResponseIDs(ctx context.Context, surveyID int, token string) ([]int, error)
	ExportResponses(ctx context.Context, surveyID int, format, language, completionStatus, headingType, responseType string) ([]byte, error)
	ExportStatistics(ctx context.Context, surveyID int, docType string, graph bool) ([]byte, error)
	ExportTimeline(ctx context.Context, surveyID int, period, start, end string) (map[string]any, error)

	// Languages.
	GetLanguageProperties(ctx context.Context, surveyID int, lang string) (map[string]any, error)
	SetLanguageProperties(ctx context.Context, surveyID int, props map[string]any, lang string) (map[string]any, error)
	AddLanguage(ctx context.Context, surveyID int, lang string) error
	DeleteLanguage(ctx context.Context, surveyID int, lang string) error

	// Site.
	GetServerVersion(ctx context.Context) (string, error)
	GetDBVersion(ctx context.Context) (string, error)
	GetSiteName(ctx context.Context) (string, error)
	GetDefaultLanguage(ctx context.Context) (string, error)
	GetAvailableLanguages(ctx context.Context) ([]string, error)
	ListUsers(ctx context.Context) ([]limesurvey.User, error)

	// Files.
	GetUploadedFiles(ctx context.Context, surveyID int, token string) (map[string]limesurvey.UploadedFile, error)
	UploadFile(ctx context.Context, surveyID int, fieldName, fileName string, content []byte) (map[string]any, error)
	DownloadFiles(ctx context.Context, surveyID int, token string) ([]limesurvey.DownloadedFile, error)
}

var _ Caller = (*limesurvey.Client)(nil)
