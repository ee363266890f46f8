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

// In this file: question group, question and language tool definitions and
// handlers.

import (
	"context"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"
)

// ─── add_group ────────────────────────────────────────────────────────────────

func (s *Server) toolAddGroup() mcpsrv.ServerTool {
	tool := mcplib.NewTool("add_group",
		mcplib.WithDescription("Add an empty question group to a survey and return its ID."),
		mcplib.WithNumber("survey_id",
			mcplib.Description("The survey ID."),
			mcplib.Required(),
		),
		mcplib.WithString("title",
			mcplib.Description("The group title."),
			mcplib.Required(),
		),
		mcplib.WithString("description",
			mcplib.Description("Optional group description."),
		),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleAddGroup}
}

func (s *Server) handleAddGroup(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	sid, err := requireIntArg(req, "survey_id")
	if err != nil {
		return resultErr(fmt.Errorf("add_group: %w", err)), nil
	}
	title, err := requireStringArg(req, "title")
	if err != nil {
		return resultErr(fmt.Errorf("add_group: %w", err)), nil
	}
	description, _ := stringArg(req, "description")

	gid, err := s.client.AddGroup(ctx, sid, title, description)
	if err != nil {
		return resultErr(fmt.Errorf("add_group: %w", err)), nil
	}
	return resultText(fmt.Sprintf("Group %d added to survey %d.", gid, sid)), nil
}

// ─── delete_group ─────────────────────────────────────────────────────────────

func (s *Server) toolDeleteGroup() mcpsrv.ServerTool {
	tool := mcplib.NewTool("delete_group",
		mcplib.WithDescription("Delete a question group (and its questions) from a survey."),
		mcplib.WithNumber("survey_id",
			mcplib.Description("The survey ID."),
			mcplib.Required(),
		),
		mcplib.WithNumber("group_id",
			mcplib.Description("The ID of the group to delete."),
			mcplib.Required(),
		),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleDeleteGroup}
}

func (s *Server) handleDeleteGroup(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	sid, err := requireIntArg(req, "survey_id")
	if err != nil {
		return resultErr(fmt.Errorf("delete_group: %w", err)), nil
	}
	gid, err := requireIntArg(req, "group_id")
	if err != nil {
		return resultErr(fmt.Errorf("delete_group: %w", err)), nil
	}
	if err := s.client.DeleteGroup(ctx, sid, gid); err != nil {
		return resultErr(fmt.Errorf("delete_group: %w", err)), nil
	}
	return resultText(fmt.Sprintf("Group %d deleted from survey %d.", gid, sid)), nil
}

// ─── set_group_properties ─────────────────────────────────────────────────────

func (s *Server) toolSetGroupProperties() mcpsrv.ServerTool {
	tool := mcplib.NewTool("set_group_properties",
		mcplib.WithDescription("Set properties of a question group."),
		mcplib.WithNumber("group_id",
			mcplib.Description("The group ID."),
			mcplib.Required(),
		),
		mcplib.WithObject("properties",
			mcplib.Description("Property name to value map (e.g. {\"group_name\": \"Demographics\"})."),
			mcplib.Required(),
		),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleSetGroupProperties}
}

func (s *Server) handleSetGroupProperties(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	gid, err := requireIntArg(req, "group_id")
	if err != nil {
		return resultErr(fmt.Errorf("set_group_properties: %w", err)), nil
	}
	props, ok := mapArg(req, "properties")
	if !ok || len(props) == 0 {
		return resultErr(fmt.Errorf("set_group_properties: properties is required")), nil
	}
	applied, err := s.client.SetGroupProperties(ctx, gid, props)
	if err != nil {
		return resultErr(fmt.Errorf("set_group_properties: %w", err)), nil
	}
	result, err := resultJSON(applied)
	if err != nil {
		return resultErr(fmt.Errorf("set_group_properties: serialise: %w", err)), nil
	}
	return result, nil
}

// ─── import_group ─────────────────────────────────────────────────────────────

func (s *Server) toolImportGroup() mcpsrv.ServerTool {
	tool := mcplib.NewTool("import_group",
		mcplib.WithDescription("Import a question group from a file into a survey and return the new group ID. Accepted formats: lsg (default), csv."),
		mcplib.WithNumber("survey_id",
			mcplib.Description("The survey ID."),
			mcplib.Required(),
		),
		mcplib.WithString("content",
			mcplib.Description("The file content, base64-encoded."),
			mcplib.Required(),
		),
		mcplib.WithString("format",
			mcplib.Description("The file format (extension without the dot), default \"lsg\"."),
		),
		mcplib.WithString("name",
			mcplib.Description("Override the group name."),
		),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleImportGroup}
}

func (s *Server) handleImportGroup(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	sid, err := requireIntArg(req, "survey_id")
	if err != nil {
		return resultErr(fmt.Errorf("import_group: %w", err)), nil
	}
	data, err := base64Arg(req, "content")
	if err != nil {
		return resultErr(fmt.Errorf("import_group: %w", err)), nil
	}
	format, _ := stringArg(req, "format")
	name, _ := stringArg(req, "name")

	gid, err := s.client.ImportGroup(ctx, sid, data, format, name)
	if err != nil {
		return resultErr(fmt.Errorf("import_group: %w", err)), nil
	}
	return resultText(fmt.Sprintf("Group imported as %d into survey %d.", gid, sid)), nil
}

// ─── delete_question ──────────────────────────────────────────────────────────

func (s *Server) toolDeleteQuestion() mcpsrv.ServerTool {
	tool := mcplib.NewTool("delete_question",
		mcplib.WithDescription("Delete a question from a survey."),
		mcplib.WithNumber("question_id",
			mcplib.Description("The ID of the question to delete."),
			mcplib.Required(),
		),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleDeleteQuestion}
}

func (s *Server) handleDeleteQuestion(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	qid, err := requireIntArg(req, "question_id")
	if err != nil {
		return resultErr(fmt.Errorf("delete_question: %w", err)), nil
	}
	if err := s.client.DeleteQuestion(ctx, qid); err != nil {
		return resultErr(fmt.Errorf("delete_question: %w", err)), nil
	}
	return resultText(fmt.Sprintf("Question %d deleted.", qid)), nil
}

// ─── set_question_properties ──────────────────────────────────────────────────

func (s *Server) toolSetQuestionProperties() mcpsrv.ServerTool {
	tool := mcplib.NewTool("set_question_properties",
		mcplib.WithDescription("Set properties of a question."),
		mcplib.WithNumber("question_id",
			mcplib.Description("The question ID."),
			mcplib.Required(),
		),
		mcplib.WithObject("properties",
			mcplib.Description("Property name to value map (e.g. {\"mandatory\": \"Y\"})."),
			mcplib.Required(),
		),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleSetQuestionProperties}
}

func (s *Server) handleSetQuestionProperties(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	qid, err := requireIntArg(req, "question_id")
	if err != nil {
		return resultErr(fmt.Errorf("set_question_properties: %w", err)), nil
	}
	props, ok := mapArg(req, "properties")
	if !ok || len(props) == 0 {
		return resultErr(fmt.Errorf("set_question_properties: properties is required")), nil
	}
	applied, err := s.client.SetQuestionProperties(ctx, qid, props)
	if err != nil {
		return resultErr(fmt.Errorf("set_question_properties: %w", err)), nil
	}
	result, err := resultJSON(applied)
	if err != nil {
		return resultErr(fmt.Errorf("set_question_properties: serialise: %w", err)), nil
	}
	return result, nil
}

// ─── import_question ──────────────────────────────────────────────────────────

func (s *Server) toolImportQuestion() mcpsrv.ServerTool {
	tool := mcplib.NewTool("import_question",
		mcplib.WithDescription("Import a question from a file into a question group and return the new question ID. Accepted format: lsq (default)."),
		mcplib.WithNumber("survey_id",
			mcplib.Description("The survey ID."),
			mcplib.Required(),
		),
		mcplib.WithNumber("group_id",
			mcplib.Description("The ID of the group to import the question into."),
			mcplib.Required(),
		),
		mcplib.WithString("content",
			mcplib.Description("The file content, base64-encoded."),
			mcplib.Required(),
		),
		mcplib.WithString("format",
			mcplib.Description("The file format (extension without the dot), default \"lsq\"."),
		),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleImportQuestion}
}

func (s *Server) handleImportQuestion(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	sid, err := requireIntArg(req, "survey_id")
	if err != nil {
		return resultErr(fmt.Errorf("import_question: %w", err)), nil
	}
	gid, err := requireIntArg(req, "group_id")
	if err != nil {
		return resultErr(fmt.Errorf("import_question: %w", err)), nil
	}
	data, err := base64Arg(req, "content")
	if err != nil {
		return resultErr(fmt.Errorf("import_question: %w", err)), nil
	}
	format, _ := stringArg(req, "format")

	qid, err := s.client.ImportQuestion(ctx, sid, gid, data, format)
	if err != nil {
		return resultErr(fmt.Errorf("import_question: %w", err)), nil
	}
	return resultText(fmt.Sprintf("Question imported as %d into group %d of survey %d.", qid, gid, sid)), nil
}

// ─── add_language ─────────────────────────────────────────────────────────────

func (s *Server) toolAddLanguage() mcpsrv.ServerTool {
	tool := mcplib.NewTool("add_language",
		mcplib.WithDescription("Add an additional language to a survey."),
		mcplib.WithNumber("survey_id",
			mcplib.Description("The survey ID."),
			mcplib.Required(),
		),
		mcplib.WithString("language",
			mcplib.Description("The language code to add (e.g. \"de\")."),
			mcplib.Required(),
		),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleAddLanguage}
}

func (s *Server) handleAddLanguage(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	sid, err := requireIntArg(req, "survey_id")
	if err != nil {
		return resultErr(fmt.Errorf("add_language: %w", err)), nil
	}
	lang, err := requireStringArg(req, "language")
	if err != nil {
		return resultErr(fmt.Errorf("add_language: %w", err)), nil
	}
	if err := s.client.AddLanguage(ctx, sid, lang); err != nil {
		return resultErr(fmt.Errorf("add_language: %w", err)), nil
	}
	return resultText(fmt.Sprintf("Language %q added to survey %d.", lang, sid)), nil
}

// ─── delete_language ──────────────────────────────────────────────────────────

func (s *Server) toolDeleteLanguage() mcpsrv.ServerTool {
	tool := mcplib.NewTool("delete_language",
		mcplib.WithDescription("Remove a language from a survey."),
		mcplib.WithNumber("survey_id",
			mcplib.Description("The survey ID."),
			mcplib.Required(),
		),
		mcplib.WithString("language",
			mcplib.Description("The language code to remove (e.g. \"de\")."),
			mcplib.Required(),
		),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleDeleteLanguage}
}

func (s *Server) handleDeleteLanguage(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	sid, err := requireIntArg(req, "survey_id")
	if err != nil {
		return resultErr(fmt.Errorf("delete_language: %w", err)), nil
	}
	lang, err := requireStringArg(req, "language")
	if err != nil {
		return resultErr(fmt.Errorf("delete_language: %w", err)), nil
	}
	if err := s.client.DeleteLanguage(ctx, sid, lang); err != nil {
		return resultErr(fmt.Errorf("delete_language: %w", err)), nil
	}
	return resultText(fmt.Sprintf("Language %q removed from survey %d.", lang, sid)), nil
}

// ─── set_language_properties ──────────────────────────────────────────────────

func (s *Server) toolSetLanguageProperties() mcpsrv.ServerTool {
	tool := mcplib.NewTool("set_language_properties",
		mcplib.WithDescription("Set language-specific survey properties (title, description, welcome and end texts, email templates)."),
		mcplib.WithNumber("survey_id",
			mcplib.Description("The survey ID."),
			mcplib.Required(),
		),
		mcplib.WithObject("properties",
			mcplib.Description("Property name to value map (e.g. {\"surveyls_title\": \"Kundenumfrage\"})."),
			mcplib.Required(),
		),
		mcplib.WithString("language",
			mcplib.Description("The language to set properties for; defaults to the survey base language."),
		),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleSetLanguageProperties}
}

func (s *Server) handleSetLanguageProperties(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	sid, err := requireIntArg(req, "survey_id")
	if err != nil {
		return resultErr(fmt.Errorf("set_language_properties: %w", err)), nil
	}
	props, ok := mapArg(req, "properties")
	if !ok || len(props) == 0 {
		return resultErr(fmt.Errorf("set_language_properties: properties is required")), nil
	}
	lang, _ := stringArg(req, "language")

	applied, err := s.client.SetLanguageProperties(ctx, sid, props, lang)
	if err != nil {
		return resultErr(fmt.Errorf("set_language_properties: %w", err)), nil
	}
	result, err := resultJSON(applied)
	if err != nil {
		return resultErr(fmt.Errorf("set_language_properties: serialise: %w", err)), nil
	}
	return result, nil
}
