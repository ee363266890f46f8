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

// In this file: survey lifecycle tool definitions and handlers.

import (
	"context"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"
)

// ─── add_survey ───────────────────────────────────────────────────────────────

func (s *Server) toolAddSurvey() mcpsrv.ServerTool {
	tool := mcplib.NewTool("add_survey",
		mcplib.WithDescription("Create a new empty survey and return its ID."),
		mcplib.WithString("title",
			mcplib.Description("The survey title."),
			mcplib.Required(),
		),
		mcplib.WithString("language",
			mcplib.Description("The survey base language code (e.g. \"en\")."),
			mcplib.Required(),
		),
		mcplib.WithNumber("survey_id",
			mcplib.Description("Desired survey ID; the server picks another one if it is taken."),
		),
		mcplib.WithString("format",
			mcplib.Description("Presentation format: \"G\" (group by group, default), \"S\" (question by question) or \"A\" (all in one)."),
		),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleAddSurvey}
}

func (s *Server) handleAddSurvey(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	title, err := requireStringArg(req, "title")
	if err != nil {
		return resultErr(fmt.Errorf("add_survey: %w", err)), nil
	}
	language, err := requireStringArg(req, "language")
	if err != nil {
		return resultErr(fmt.Errorf("add_survey: %w", err)), nil
	}
	wishSID := intArg(req, "survey_id", 0)
	format, _ := stringArg(req, "format")

	sid, err := s.client.AddSurvey(ctx, wishSID, title, language, format)
	if err != nil {
		return resultErr(fmt.Errorf("add_survey: %w", err)), nil
	}
	s.logger.InfoContext(ctx, "mcp: survey created", "survey_id", sid)
	return resultText(fmt.Sprintf("Survey %d created.", sid)), nil
}

// ─── copy_survey ──────────────────────────────────────────────────────────────

func (s *Server) toolCopySurvey() mcpsrv.ServerTool {
	tool := mcplib.NewTool("copy_survey",
		mcplib.WithDescription("Copy an existing survey under a new name and return the new survey ID."),
		mcplib.WithNumber("survey_id",
			mcplib.Description("The ID of the survey to copy."),
			mcplib.Required(),
		),
		mcplib.WithString("name",
			mcplib.Description("The name of the survey copy."),
			mcplib.Required(),
		),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleCopySurvey}
}

func (s *Server) handleCopySurvey(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	sid, err := requireIntArg(req, "survey_id")
	if err != nil {
		return resultErr(fmt.Errorf("copy_survey: %w", err)), nil
	}
	name, err := requireStringArg(req, "name")
	if err != nil {
		return resultErr(fmt.Errorf("copy_survey: %w", err)), nil
	}

	newSID, err := s.client.CopySurvey(ctx, sid, name)
	if err != nil {
		return resultErr(fmt.Errorf("copy_survey: %w", err)), nil
	}
	return resultText(fmt.Sprintf("Survey %d copied to new survey %d.", sid, newSID)), nil
}

// ─── delete_survey ────────────────────────────────────────────────────────────

func (s *Server) toolDeleteSurvey() mcpsrv.ServerTool {
	tool := mcplib.NewTool("delete_survey",
		mcplib.WithDescription("Permanently delete a survey, including its responses and participants. This cannot be undone."),
		mcplib.WithNumber("survey_id",
			mcplib.Description("The ID of the survey to delete."),
			mcplib.Required(),
		),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleDeleteSurvey}
}

func (s *Server) handleDeleteSurvey(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	sid, err := requireIntArg(req, "survey_id")
	if err != nil {
		return resultErr(fmt.Errorf("delete_survey: %w", err)), nil
	}
	if err := s.client.DeleteSurvey(ctx, sid); err != nil {
		return resultErr(fmt.Errorf("delete_survey: %w", err)), nil
	}
	s.logger.InfoContext(ctx, "mcp: survey deleted", "survey_id", sid)
	return resultText(fmt.Sprintf("Survey %d deleted.", sid)), nil
}

// ─── activate_survey ──────────────────────────────────────────────────────────

func (s *Server) toolActivateSurvey() mcpsrv.ServerTool {
	tool := mcplib.NewTool("activate_survey",
		mcplib.WithDescription("Activate a survey so it can accept responses. Activation creates the response table; survey structure cannot be changed afterwards."),
		mcplib.WithNumber("survey_id",
			mcplib.Description("The ID of the survey to activate."),
			mcplib.Required(),
		),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleActivateSurvey}
}

func (s *Server) handleActivateSurvey(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	sid, err := requireIntArg(req, "survey_id")
	if err != nil {
		return resultErr(fmt.Errorf("activate_survey: %w", err)), nil
	}
	feedback, err := s.client.ActivateSurvey(ctx, sid)
	if err != nil {
		return resultErr(fmt.Errorf("activate_survey: %w", err)), nil
	}
	result, err := resultJSON(feedback)
	if err != nil {
		return resultErr(fmt.Errorf("activate_survey: serialise: %w", err)), nil
	}
	return result, nil
}

// ─── import_survey ────────────────────────────────────────────────────────────

func (s *Server) toolImportSurvey() mcpsrv.ServerTool {
	tool := mcplib.NewTool("import_survey",
		mcplib.WithDescription("Import a survey structure from a file and return the new survey ID. Accepted formats: lss (default), csv, txt, lsa."),
		mcplib.WithString("content",
			mcplib.Description("The file content, base64-encoded."),
			mcplib.Required(),
		),
		mcplib.WithString("format",
			mcplib.Description("The file format (extension without the dot), default \"lss\"."),
		),
		mcplib.WithString("name",
			mcplib.Description("Override the survey name."),
		),
		mcplib.WithNumber("survey_id",
			mcplib.Description("Desired survey ID for the imported survey."),
		),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleImportSurvey}
}

func (s *Server) handleImportSurvey(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	data, err := base64Arg(req, "content")
	if err != nil {
		return resultErr(fmt.Errorf("import_survey: %w", err)), nil
	}
	format, _ := stringArg(req, "format")
	name, _ := stringArg(req, "name")
	wishSID := intArg(req, "survey_id", 0)

	sid, err := s.client.ImportSurvey(ctx, data, format, name, wishSID)
	if err != nil {
		return resultErr(fmt.Errorf("import_survey: %w", err)), nil
	}
	s.logger.InfoContext(ctx, "mcp: survey imported", "survey_id", sid)
	return resultText(fmt.Sprintf("Survey imported as %d.", sid)), nil
}

// ─── set_survey_properties ────────────────────────────────────────────────────

func (s *Server) toolSetSurveyProperties() mcpsrv.ServerTool {
	tool := mcplib.NewTool("set_survey_properties",
		mcplib.WithDescription("Set properties of a survey. Returns a map of each submitted property to whether it was applied."),
		mcplib.WithNumber("survey_id",
			mcplib.Description("The survey ID."),
			mcplib.Required(),
		),
		mcplib.WithObject("properties",
			mcplib.Description("Property name to value map (e.g. {\"anonymized\": \"Y\"})."),
			mcplib.Required(),
		),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleSetSurveyProperties}
}

func (s *Server) handleSetSurveyProperties(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	sid, err := requireIntArg(req, "survey_id")
	if err != nil {
		return resultErr(fmt.Errorf("set_survey_properties: %w", err)), nil
	}
	props, ok := mapArg(req, "properties")
	if !ok || len(props) == 0 {
		return resultErr(fmt.Errorf("set_survey_properties: properties is required")), nil
	}
	applied, err := s.client.SetSurveyProperties(ctx, sid, props)
	if err != nil {
		return resultErr(fmt.Errorf("set_survey_properties: %w", err)), nil
	}
	result, err := resultJSON(applied)
	if err != nil {
		return resultErr(fmt.Errorf("set_survey_properties: serialise: %w", err)), nil
	}
	return result, nil
}
