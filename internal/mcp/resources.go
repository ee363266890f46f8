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

// In this file: MCP resource registration, URI parsing and read handlers.
//
// Read-only survey data is published under entity-specific URI schemes:
//
//	survey://                          all surveys
//	survey://{sid}                     survey properties
//	survey-group://                    all survey groups
//	summary://{sid}                    survey summary
//	fieldmap://{sid}                   survey fieldmap
//	groups://{sid}                     question groups of a survey
//	group://{gid}                      question group properties
//	questions://{sid}                  questions of a survey
//	question://{qid}                   question properties
//	participants://{sid}               participants of a survey
//	participant://{token}/survey/{sid} participant properties
//	quotas://{sid}                     quotas of a survey
//	quota://{quota_id}                 quota properties
//	responses://{sid}                  responses of a survey (JSON export)
//	files://{sid}                      respondent upload metadata
//	language://                        available site languages
//	language://default                 site default language
//	language://{sid}/{lang}            language properties of a survey
//	server://version                   LimeSurvey version
//	server://db_version                database schema version
//	server://site_name                 site name
//	server://users                     administration users

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
)

const jsonMIME = "application/json"

// registerResources registers all resources and resource templates on the
// underlying MCP server.
func (s *Server) registerResources() {
	type static struct {
		uri, name, descr string
		handler          func(ctx context.Context, req mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error)
	}
	statics := []static{
		{"survey://", "Surveys", "All surveys visible to the configured user.", s.readSurveys},
		{"survey-group://", "Survey groups", "All survey groups.", s.readSurveyGroups},
		{"language://", "Available languages", "Language codes available on the site.", s.readAvailableLanguages},
		{"language://default", "Default language", "The site default language code.", s.readDefaultLanguage},
		{"server://version", "Server version", "The LimeSurvey version number.", s.readServerVersion},
		{"server://db_version", "Database version", "The database schema version.", s.readDBVersion},
		{"server://site_name", "Site name", "The configured site name.", s.readSiteName},
		{"server://users", "Users", "The LimeSurvey administration users.", s.readUsers},
	}
	for _, r := range statics {
		s.mcp.AddResource(
			mcplib.NewResource(r.uri, r.name,
				mcplib.WithResourceDescription(r.descr),
				mcplib.WithMIMEType(jsonMIME),
			),
			r.handler,
		)
	}

	type template struct {
		uri, name, descr string
		handler          func(ctx context.Context, req mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error)
	}
	templates := []template{
		{"survey://{sid}", "Survey properties", "All properties of a survey.", s.readSurvey},
		{"summary://{sid}", "Survey summary", "Access and completion summary of a survey.", s.readSummary},
		{"fieldmap://{sid}", "Survey fieldmap", "Mapping of response table columns to questions.", s.readFieldmap},
		{"groups://{sid}", "Question groups", "Question groups of a survey.", s.readGroups},
		{"group://{gid}", "Group properties", "All properties of a question group.", s.readGroup},
		{"questions://{sid}", "Questions", "Questions of a survey.", s.readQuestions},
		{"question://{qid}", "Question properties", "All properties of a question.", s.readQuestion},
		{"participants://{sid}", "Participants", "Participants of a survey (first page).", s.readParticipants},
		{"participant://{token}/survey/{sid}", "Participant properties", "Properties of a participant identified by access token.", s.readParticipant},
		{"quotas://{sid}", "Quotas", "Quotas of a survey.", s.readQuotas},
		{"quota://{quota_id}", "Quota properties", "All properties of a quota.", s.readQuota},
		{"responses://{sid}", "Responses", "Responses of a survey, exported as JSON.", s.readResponses},
		{"files://{sid}", "Uploaded files", "Metadata of the files uploaded by respondents.", s.readFiles},
		{"language://{sid}/{lang}", "Language properties", "Language-specific properties of a survey.", s.readLanguage},
	}
	for _, r := range templates {
		s.mcp.AddResourceTemplate(
			mcplib.NewResourceTemplate(r.uri, r.name,
				mcplib.WithTemplateDescription(r.descr),
				mcplib.WithTemplateMIMEType(jsonMIME),
			),
			r.handler,
		)
	}
}

// uriParts strips the scheme from uri and splits the remainder on "/".
// Empty segments are dropped, so "survey://123" and "language://123/de"
// yield ["123"] and ["123", "de"] respectively.
func uriParts(uri, scheme string) ([]string, error) {
	rest, ok := strings.CutPrefix(uri, scheme+"://")
	if !ok {
		return nil, fmt.Errorf("unexpected uri %q: want scheme %s://", uri, scheme)
	}
	var parts []string
	for _, p := range strings.Split(rest, "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts, nil
}

// uriID parses a single-segment URI of the form scheme://{id}.
func uriID(uri, scheme string) (int, error) {
	parts, err := uriParts(uri, scheme)
	if err != nil {
		return 0, err
	}
	if len(parts) != 1 {
		return 0, fmt.Errorf("unexpected uri %q: want %s://{id}", uri, scheme)
	}
	id, err := strconv.Atoi(parts[0])
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("unexpected uri %q: %q is not a positive integer", uri, parts[0])
	}
	return id, nil
}

// jsonContents serialises v and wraps it in a single JSON text content block.
func jsonContents(uri string, v any) ([]mcplib.ResourceContents, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serialise %s: %w", uri, err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{URI: uri, MIMEType: jsonMIME, Text: string(b)},
	}, nil
}

// textContents wraps plain text in a single text content block.
func textContents(uri, text string) []mcplib.ResourceContents {
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{URI: uri, MIMEType: "text/plain", Text: text},
	}
}

// ── surveys ──

func (s *Server) readSurveys(ctx context.Context, req mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
	ss, err := s.client.ListSurveys(ctx)
	if err != nil {
		return nil, err
	}
	return jsonContents(req.Params.URI, ss)
}

func (s *Server) readSurveyGroups(ctx context.Context, req mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
	groups, err := s.client.ListSurveyGroups(ctx)
	if err != nil {
		return nil, err
	}
	return jsonContents(req.Params.URI, groups)
}

func (s *Server) readSurvey(ctx context.Context, req mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
	sid, err := uriID(req.Params.URI, "survey")
	if err != nil {
		return nil, err
	}
	props, err := s.client.GetSurveyProperties(ctx, sid)
	if err != nil {
		return nil, err
	}
	return jsonContents(req.Params.URI, props)
}

func (s *Server) readSummary(ctx context.Context, req mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
	sid, err := uriID(req.Params.URI, "summary")
	if err != nil {
		return nil, err
	}
	summary, err := s.client.GetSummary(ctx, sid)
	if err != nil {
		return nil, err
	}
	return jsonContents(req.Params.URI, summary)
}

func (s *Server) readFieldmap(ctx context.Context, req mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
	sid, err := uriID(req.Params.URI, "fieldmap")
	if err != nil {
		return nil, err
	}
	fm, err := s.client.GetFieldmap(ctx, sid)
	if err != nil {
		return nil, err
	}
	return jsonContents(req.Params.URI, fm)
}

// ── groups and questions ──

func (s *Server) readGroups(ctx context.Context, req mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
	sid, err := uriID(req.Params.URI, "groups")
	if err != nil {
		return nil, err
	}
	groups, err := s.client.ListGroups(ctx, sid)
	if err != nil {
		return nil, err
	}
	return jsonContents(req.Params.URI, groups)
}

func (s *Server) readGroup(ctx context.Context, req mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
	gid, err := uriID(req.Params.URI, "group")
	if err != nil {
		return nil, err
	}
	props, err := s.client.GetGroupProperties(ctx, gid)
	if err != nil {
		return nil, err
	}
	return jsonContents(req.Params.URI, props)
}

func (s *Server) readQuestions(ctx context.Context, req mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
	sid, err := uriID(req.Params.URI, "questions")
	if err != nil {
		return nil, err
	}
	qq, err := s.client.ListQuestions(ctx, sid, 0)
	if err != nil {
		return nil, err
	}
	return jsonContents(req.Params.URI, qq)
}

func (s *Server) readQuestion(ctx context.Context, req mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
	qid, err := uriID(req.Params.URI, "question")
	if err != nil {
		return nil, err
	}
	props, err := s.client.GetQuestionProperties(ctx, qid)
	if err != nil {
		return nil, err
	}
	return jsonContents(req.Params.URI, props)
}

// ── participants ──

func (s *Server) readParticipants(ctx context.Context, req mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
	sid, err := uriID(req.Params.URI, "participants")
	if err != nil {
		return nil, err
	}
	pp, err := s.client.ListParticipants(ctx, sid, 0, 0)
	if err != nil {
		return nil, err
	}
	return jsonContents(req.Params.URI, pp)
}

func (s *Server) readParticipant(ctx context.Context, req mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
	parts, err := uriParts(req.Params.URI, "participant")
	if err != nil {
		return nil, err
	}
	if len(parts) != 3 || parts[1] != "survey" {
		return nil, fmt.Errorf("unexpected uri %q: want participant://{token}/survey/{sid}", req.Params.URI)
	}
	token := parts[0]
	sid, err := strconv.Atoi(parts[2])
	if err != nil || sid <= 0 {
		return nil, fmt.Errorf("unexpected uri %q: %q is not a positive integer", req.Params.URI, parts[2])
	}
	props, err := s.client.GetParticipantProperties(ctx, sid, token)
	if err != nil {
		return nil, err
	}
	return jsonContents(req.Params.URI, props)
}

// ── quotas ──

func (s *Server) readQuotas(ctx context.Context, req mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
	sid, err := uriID(req.Params.URI, "quotas")
	if err != nil {
		return nil, err
	}
	qq, err := s.client.ListQuotas(ctx, sid)
	if err != nil {
		return nil, err
	}
	return jsonContents(req.Params.URI, qq)
}

func (s *Server) readQuota(ctx context.Context, req mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
	qid, err := uriID(req.Params.URI, "quota")
	if err != nil {
		return nil, err
	}
	props, err := s.client.GetQuotaProperties(ctx, qid)
	if err != nil {
		return nil, err
	}
	return jsonContents(req.Params.URI, props)
}

// ── responses and files ──

func (s *Server) readResponses(ctx context.Context, req mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
	sid, err := uriID(req.Params.URI, "responses")
	if err != nil {
		return nil, err
	}
	data, err := s.client.ExportResponses(ctx, sid, "json", "", "", "", "")
	if err != nil {
		return nil, err
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{URI: req.Params.URI, MIMEType: jsonMIME, Text: string(data)},
	}, nil
}

// fileMeta is the content-free part of a respondent upload.
type fileMeta struct {
	ID   string         `json:"id"`
	Meta map[string]any `json:"meta"`
}

func (s *Server) readFiles(ctx context.Context, req mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
	sid, err := uriID(req.Params.URI, "files")
	if err != nil {
		return nil, err
	}
	files, err := s.client.GetUploadedFiles(ctx, sid, "")
	if err != nil {
		return nil, err
	}
	// content is deliberately omitted: uploads can be large, and agents
	// should fetch them with the download_files tool.
	mm := make([]fileMeta, 0, len(files))
	for id, f := range files {
		mm = append(mm, fileMeta{ID: id, Meta: f.Meta})
	}
	return jsonContents(req.Params.URI, mm)
}

// ── languages ──

func (s *Server) readAvailableLanguages(ctx context.Context, req mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
	langs, err := s.client.GetAvailableLanguages(ctx)
	if err != nil {
		return nil, err
	}
	return jsonContents(req.Params.URI, langs)
}

func (s *Server) readDefaultLanguage(ctx context.Context, req mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
	lang, err := s.client.GetDefaultLanguage(ctx)
	if err != nil {
		return nil, err
	}
	return textContents(req.Params.URI, lang), nil
}

func (s *Server) readLanguage(ctx context.Context, req mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
	parts, err := uriParts(req.Params.URI, "language")
	if err != nil {
		return nil, err
	}
	if len(parts) != 2 {
		return nil, fmt.Errorf("unexpected uri %q: want language://{sid}/{lang}", req.Params.URI)
	}
	sid, err := strconv.Atoi(parts[0])
	if err != nil || sid <= 0 {
		return nil, fmt.Errorf("unexpected uri %q: %q is not a positive integer", req.Params.URI, parts[0])
	}
	props, err := s.client.GetLanguageProperties(ctx, sid, parts[1])
	if err != nil {
		return nil, err
	}
	return jsonContents(req.Params.URI, props)
}

// ── server ──

func (s *Server) readServerVersion(ctx context.Context, req mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
	v, err := s.client.GetServerVersion(ctx)
	if err != nil {
		return nil, err
	}
	return textContents(req.Params.URI, v), nil
}

func (s *Server) readDBVersion(ctx context.Context, req mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
	v, err := s.client.GetDBVersion(ctx)
	if err != nil {
		return nil, err
	}
	return textContents(req.Params.URI, v), nil
}

func (s *Server) readSiteName(ctx context.Context, req mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
	name, err := s.client.GetSiteName(ctx)
	if err != nil {
		return nil, err
	}
	return textContents(req.Params.URI, name), nil
}

func (s *Server) readUsers(ctx context.Context, req mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
	uu, err := s.client.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	return jsonContents(req.Params.URI, uu)
}
