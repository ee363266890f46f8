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

// In this file: response and export tool definitions and handlers.

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"
)

// ─── add_response ─────────────────────────────────────────────────────────────

func (s *Server) toolAddResponse() mcpsrv.ServerTool {
	tool := mcplib.NewTool("add_response",
		mcplib.WithDescription("Add a single response to an active survey and return the new response ID. Keys of the response object are fieldmap column names (see the fieldmap:// resource)."),
		mcplib.WithNumber("survey_id",
			mcplib.Description("The survey ID."),
			mcplib.Required(),
		),
		mcplib.WithObject("response",
			mcplib.Description("Field name to answer value map, e.g. {\"12345X1X2\": \"A\"}."),
			mcplib.Required(),
		),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleAddResponse}
}

func (s *Server) handleAddResponse(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	sid, err := requireIntArg(req, "survey_id")
	if err != nil {
		return resultErr(fmt.Errorf("add_response: %w", err)), nil
	}
	response, ok := mapArg(req, "response")
	if !ok || len(response) == 0 {
		return resultErr(fmt.Errorf("add_response: response is required")), nil
	}
	rid, err := s.client.AddResponse(ctx, sid, response)
	if err != nil {
		return resultErr(fmt.Errorf("add_response: %w", err)), nil
	}
	return resultText(fmt.Sprintf("Response %d added to survey %d.", rid, sid)), nil
}

// ─── add_responses ────────────────────────────────────────────────────────────

func (s *Server) toolAddResponses() mcpsrv.ServerTool {
	tool := mcplib.NewTool("add_responses",
		mcplib.WithDescription("Add multiple responses to an active survey and return the new response IDs. Responses are submitted in order; on failure, the IDs inserted so far are reported."),
		mcplib.WithNumber("survey_id",
			mcplib.Description("The survey ID."),
			mcplib.Required(),
		),
		mcplib.WithArray("responses",
			mcplib.Description("Array of response objects; keys are fieldmap column names."),
			mcplib.Required(),
		),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleAddResponses}
}

func (s *Server) handleAddResponses(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	sid, err := requireIntArg(req, "survey_id")
	if err != nil {
		return resultErr(fmt.Errorf("add_responses: %w", err)), nil
	}
	responses, ok := mapListArg(req, "responses")
	if !ok || len(responses) == 0 {
		return resultErr(fmt.Errorf("add_responses: responses is required and must be an array of objects")), nil
	}
	ids, err := s.client.AddResponses(ctx, sid, responses)
	if err != nil {
		return resultErr(fmt.Errorf("add_responses: %w (inserted so far: %v)", err, ids)), nil
	}
	result, err := resultJSON(ids)
	if err != nil {
		return resultErr(fmt.Errorf("add_responses: serialise: %w", err)), nil
	}
	return result, nil
}

// ─── update_response ──────────────────────────────────────────────────────────

func (s *Server) toolUpdateResponse() mcpsrv.ServerTool {
	tool := mcplib.NewTool("update_response",
		mcplib.WithDescription("Update an existing survey response. The response object must contain the \"id\" member identifying the response."),
		mcplib.WithNumber("survey_id",
			mcplib.Description("The survey ID."),
			mcplib.Required(),
		),
		mcplib.WithObject("response",
			mcplib.Description("Field name to answer value map, including \"id\"."),
			mcplib.Required(),
		),
		mcplib.WithIdempotentHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleUpdateResponse}
}

func (s *Server) handleUpdateResponse(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	sid, err := requireIntArg(req, "survey_id")
	if err != nil {
		return resultErr(fmt.Errorf("update_response: %w", err)), nil
	}
	response, ok := mapArg(req, "response")
	if !ok || len(response) == 0 {
		return resultErr(fmt.Errorf("update_response: response is required")), nil
	}
	if err := s.client.UpdateResponse(ctx, sid, response); err != nil {
		return resultErr(fmt.Errorf("update_response: %w", err)), nil
	}
	return resultText(fmt.Sprintf("Response %v of survey %d updated.", response["id"], sid)), nil
}

// ─── delete_response ──────────────────────────────────────────────────────────

func (s *Server) toolDeleteResponse() mcpsrv.ServerTool {
	tool := mcplib.NewTool("delete_response",
		mcplib.WithDescription("Delete a response from a survey."),
		mcplib.WithNumber("survey_id",
			mcplib.Description("The survey ID."),
			mcplib.Required(),
		),
		mcplib.WithNumber("response_id",
			mcplib.Description("The ID of the response to delete."),
			mcplib.Required(),
		),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleDeleteResponse}
}

func (s *Server) handleDeleteResponse(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	sid, err := requireIntArg(req, "survey_id")
	if err != nil {
		return resultErr(fmt.Errorf("delete_response: %w", err)), nil
	}
	rid, err := requireIntArg(req, "response_id")
	if err != nil {
		return resultErr(fmt.Errorf("delete_response: %w", err)), nil
	}
	if err := s.client.DeleteResponse(ctx, sid, rid); err != nil {
		return resultErr(fmt.Errorf("delete_response: %w", err)), nil
	}
	return resultText(fmt.Sprintf("Response %d deleted from survey %d.", rid, sid)), nil
}

// ─── save_responses ───────────────────────────────────────────────────────────

func (s *Server) toolSaveResponses() mcpsrv.ServerTool {
	tool := mcplib.NewTool("save_responses",
		mcplib.WithDescription("Forward a save_responses call verbatim to the RemoteControl API. Some LimeSurvey installations expose this method through plugins; plain installations reject it."),
		mcplib.WithNumber("survey_id",
			mcplib.Description("The survey ID."),
			mcplib.Required(),
		),
		mcplib.WithObject("responses",
			mcplib.Description("The payload to pass to the save_responses method."),
			mcplib.Required(),
		),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleSaveResponses}
}

func (s *Server) handleSaveResponses(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	sid, err := requireIntArg(req, "survey_id")
	if err != nil {
		return resultErr(fmt.Errorf("save_responses: %w", err)), nil
	}
	responses, ok := mapArg(req, "responses")
	if !ok || len(responses) == 0 {
		return resultErr(fmt.Errorf("save_responses: responses is required")), nil
	}
	raw, err := s.client.Call(ctx, "save_responses", sid, responses)
	if err != nil {
		return resultErr(fmt.Errorf("save_responses: %w", err)), nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return resultText(string(raw)), nil
	}
	result, err := resultJSON(v)
	if err != nil {
		return resultErr(fmt.Errorf("save_responses: serialise: %w", err)), nil
	}
	return result, nil
}

// ─── export_responses ─────────────────────────────────────────────────────────

func (s *Server) toolExportResponses() mcpsrv.ServerTool {
	tool := mcplib.NewTool("export_responses",
		mcplib.WithDescription(`Export survey responses.

Text formats (csv, json, html) are returned verbatim; binary formats (xls,
doc, pdf) are returned as a base64 string.`),
		mcplib.WithNumber("survey_id",
			mcplib.Description("The survey ID."),
			mcplib.Required(),
		),
		mcplib.WithString("format",
			mcplib.Description("Export format: csv (default), json, xls, doc, pdf or html."),
		),
		mcplib.WithString("language",
			mcplib.Description("Export language; defaults to the survey base language."),
		),
		mcplib.WithString("completion_status",
			mcplib.Description("Filter: \"complete\", \"incomplete\" or \"all\" (default)."),
		),
		mcplib.WithString("heading_type",
			mcplib.Description("Column headings: \"code\" (default), \"full\" or \"abbreviated\"."),
		),
		mcplib.WithString("response_type",
			mcplib.Description("Answer rendering: \"short\" (default) or \"long\"."),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleExportResponses}
}

func (s *Server) handleExportResponses(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	sid, err := requireIntArg(req, "survey_id")
	if err != nil {
		return resultErr(fmt.Errorf("export_responses: %w", err)), nil
	}
	format, _ := stringArg(req, "format")
	if format == "" {
		format = "csv"
	}
	language, _ := stringArg(req, "language")
	completionStatus, _ := stringArg(req, "completion_status")
	headingType, _ := stringArg(req, "heading_type")
	responseType, _ := stringArg(req, "response_type")

	data, err := s.client.ExportResponses(ctx, sid, format, language, completionStatus, headingType, responseType)
	if err != nil {
		return resultErr(fmt.Errorf("export_responses: %w", err)), nil
	}
	return exportResult(format, data), nil
}

// ─── export_statistics ────────────────────────────────────────────────────────

func (s *Server) toolExportStatistics() mcpsrv.ServerTool {
	tool := mcplib.NewTool("export_statistics",
		mcplib.WithDescription("Export survey statistics as a document. pdf and xls are returned as a base64 string, html verbatim."),
		mcplib.WithNumber("survey_id",
			mcplib.Description("The survey ID."),
			mcplib.Required(),
		),
		mcplib.WithString("doc_type",
			mcplib.Description("Document type: pdf (default), xls or html."),
		),
		mcplib.WithBoolean("graph",
			mcplib.Description("Include charts in the output (default false)."),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleExportStatistics}
}

func (s *Server) handleExportStatistics(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	sid, err := requireIntArg(req, "survey_id")
	if err != nil {
		return resultErr(fmt.Errorf("export_statistics: %w", err)), nil
	}
	docType, _ := stringArg(req, "doc_type")
	if docType == "" {
		docType = "pdf"
	}
	graph := boolArg(req, "graph", false)

	data, err := s.client.ExportStatistics(ctx, sid, docType, graph)
	if err != nil {
		return resultErr(fmt.Errorf("export_statistics: %w", err)), nil
	}
	return exportResult(docType, data), nil
}

// ─── export_timeline ──────────────────────────────────────────────────────────

func (s *Server) toolExportTimeline() mcpsrv.ServerTool {
	tool := mcplib.NewTool("export_timeline",
		mcplib.WithDescription("Export submission counts over time for a survey."),
		mcplib.WithNumber("survey_id",
			mcplib.Description("The survey ID."),
			mcplib.Required(),
		),
		mcplib.WithString("period",
			mcplib.Description("Aggregation period: \"day\" (default) or \"hour\"."),
		),
		mcplib.WithString("start",
			mcplib.Description("Range start, \"YYYY-MM-DD HH:MM\" format."),
			mcplib.Required(),
		),
		mcplib.WithString("end",
			mcplib.Description("Range end, \"YYYY-MM-DD HH:MM\" format."),
			mcplib.Required(),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleExportTimeline}
}

func (s *Server) handleExportTimeline(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	sid, err := requireIntArg(req, "survey_id")
	if err != nil {
		return resultErr(fmt.Errorf("export_timeline: %w", err)), nil
	}
	period, _ := stringArg(req, "period")
	start, err := requireStringArg(req, "start")
	if err != nil {
		return resultErr(fmt.Errorf("export_timeline: %w", err)), nil
	}
	end, err := requireStringArg(req, "end")
	if err != nil {
		return resultErr(fmt.Errorf("export_timeline: %w", err)), nil
	}

	timeline, err := s.client.ExportTimeline(ctx, sid, period, start, end)
	if err != nil {
		return resultErr(fmt.Errorf("export_timeline: %w", err)), nil
	}
	result, err := resultJSON(timeline)
	if err != nil {
		return resultErr(fmt.Errorf("export_timeline: serialise: %w", err)), nil
	}
	return result, nil
}
