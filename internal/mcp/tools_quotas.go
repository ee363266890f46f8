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

// In this file: quota tool definitions and handlers.

import (
	"context"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"
)

// ─── add_quota ────────────────────────────────────────────────────────────────

func (s *Server) toolAddQuota() mcpsrv.ServerTool {
	tool := mcplib.NewTool("add_quota",
		mcplib.WithDescription("Add a quota to a survey and return the new quota ID."),
		mcplib.WithNumber("survey_id",
			mcplib.Description("The survey ID."),
			mcplib.Required(),
		),
		mcplib.WithString("name",
			mcplib.Description("The quota name."),
			mcplib.Required(),
		),
		mcplib.WithNumber("limit",
			mcplib.Description("The maximum number of completed responses the quota allows."),
			mcplib.Required(),
		),
		mcplib.WithBoolean("active",
			mcplib.Description("Whether the quota is active (default true)."),
		),
		mcplib.WithString("action",
			mcplib.Description("What happens when the quota is hit: \"terminate\" (default) or \"confirm_terminate\"."),
		),
		mcplib.WithString("message",
			mcplib.Description("Message shown to the respondent when the quota is hit."),
		),
		mcplib.WithString("url",
			mcplib.Description("URL the respondent is redirected to when the quota is hit."),
		),
		mcplib.WithString("url_description",
			mcplib.Description("Description of the redirect URL."),
		),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleAddQuota}
}

func (s *Server) handleAddQuota(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	sid, err := requireIntArg(req, "survey_id")
	if err != nil {
		return resultErr(fmt.Errorf("add_quota: %w", err)), nil
	}
	name, err := requireStringArg(req, "name")
	if err != nil {
		return resultErr(fmt.Errorf("add_quota: %w", err)), nil
	}
	limit, err := requireIntArg(req, "limit")
	if err != nil {
		return resultErr(fmt.Errorf("add_quota: %w", err)), nil
	}
	active := boolArg(req, "active", true)
	action, _ := stringArg(req, "action")
	message, _ := stringArg(req, "message")
	url, _ := stringArg(req, "url")
	urlDescription, _ := stringArg(req, "url_description")

	qid, err := s.client.AddQuota(ctx, sid, name, limit, active, action, message, url, urlDescription)
	if err != nil {
		return resultErr(fmt.Errorf("add_quota: %w", err)), nil
	}
	return resultText(fmt.Sprintf("Quota %d added to survey %d.", qid, sid)), nil
}

// ─── delete_quota ─────────────────────────────────────────────────────────────

func (s *Server) toolDeleteQuota() mcpsrv.ServerTool {
	tool := mcplib.NewTool("delete_quota",
		mcplib.WithDescription("Delete a quota from a survey."),
		mcplib.WithNumber("quota_id",
			mcplib.Description("The ID of the quota to delete."),
			mcplib.Required(),
		),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleDeleteQuota}
}

func (s *Server) handleDeleteQuota(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	qid, err := requireIntArg(req, "quota_id")
	if err != nil {
		return resultErr(fmt.Errorf("delete_quota: %w", err)), nil
	}
	if err := s.client.DeleteQuota(ctx, qid); err != nil {
		return resultErr(fmt.Errorf("delete_quota: %w", err)), nil
	}
	return resultText(fmt.Sprintf("Quota %d deleted.", qid)), nil
}

// ─── set_quota_properties ─────────────────────────────────────────────────────

func (s *Server) toolSetQuotaProperties() mcpsrv.ServerTool {
	tool := mcplib.NewTool("set_quota_properties",
		mcplib.WithDescription("Set properties of a quota."),
		mcplib.WithNumber("quota_id",
			mcplib.Description("The quota ID."),
			mcplib.Required(),
		),
		mcplib.WithObject("properties",
			mcplib.Description("Property name to value map (e.g. {\"qlimit\": 200})."),
			mcplib.Required(),
		),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleSetQuotaProperties}
}

func (s *Server) handleSetQuotaProperties(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	qid, err := requireIntArg(req, "quota_id")
	if err != nil {
		return resultErr(fmt.Errorf("set_quota_properties: %w", err)), nil
	}
	props, ok := mapArg(req, "properties")
	if !ok || len(props) == 0 {
		return resultErr(fmt.Errorf("set_quota_properties: properties is required")), nil
	}
	applied, err := s.client.SetQuotaProperties(ctx, qid, props)
	if err != nil {
		return resultErr(fmt.Errorf("set_quota_properties: %w", err)), nil
	}
	result, err := resultJSON(applied)
	if err != nil {
		return resultErr(fmt.Errorf("set_quota_properties: serialise: %w", err)), nil
	}
	return result, nil
}
