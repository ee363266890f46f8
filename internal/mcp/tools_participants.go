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

// In this file: participant (token) tool definitions and handlers.

import (
	"context"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"
)

// ─── add_participants ─────────────────────────────────────────────────────────

func (s *Server) toolAddParticipants() mcpsrv.ServerTool {
	tool := mcplib.NewTool("add_participants",
		mcplib.WithDescription("Add participants to the survey token table. Returns the participants with their server-assigned token IDs and tokens."),
		mcplib.WithNumber("survey_id",
			mcplib.Description("The survey ID."),
			mcplib.Required(),
		),
		mcplib.WithArray("participants",
			mcplib.Description("Array of participant objects, e.g. [{\"firstname\": \"Ada\", \"lastname\": \"Lovelace\", \"email\": \"ada@example.com\"}]."),
			mcplib.Required(),
		),
		mcplib.WithBoolean("create_tokens",
			mcplib.Description("Generate an access token for each new participant (default true)."),
		),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleAddParticipants}
}

func (s *Server) handleAddParticipants(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	sid, err := requireIntArg(req, "survey_id")
	if err != nil {
		return resultErr(fmt.Errorf("add_participants: %w", err)), nil
	}
	participants, ok := mapListArg(req, "participants")
	if !ok || len(participants) == 0 {
		return resultErr(fmt.Errorf("add_participants: participants is required and must be an array of objects")), nil
	}
	createTokens := boolArg(req, "create_tokens", true)

	added, err := s.client.AddParticipants(ctx, sid, participants, createTokens)
	if err != nil {
		return resultErr(fmt.Errorf("add_participants: %w", err)), nil
	}
	result, err := resultJSON(added)
	if err != nil {
		return resultErr(fmt.Errorf("add_participants: serialise: %w", err)), nil
	}
	return result, nil
}

// ─── delete_participants ──────────────────────────────────────────────────────

func (s *Server) toolDeleteParticipants() mcpsrv.ServerTool {
	tool := mcplib.NewTool("delete_participants",
		mcplib.WithDescription("Delete participants from the survey token table by their token IDs."),
		mcplib.WithNumber("survey_id",
			mcplib.Description("The survey ID."),
			mcplib.Required(),
		),
		mcplib.WithArray("token_ids",
			mcplib.Description("Array of token IDs (integers) to delete."),
			mcplib.Required(),
		),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleDeleteParticipants}
}

func (s *Server) handleDeleteParticipants(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	sid, err := requireIntArg(req, "survey_id")
	if err != nil {
		return resultErr(fmt.Errorf("delete_participants: %w", err)), nil
	}
	tokenIDs, ok := intListArg(req, "token_ids")
	if !ok || len(tokenIDs) == 0 {
		return resultErr(fmt.Errorf("delete_participants: token_ids is required and must be an array of integers")), nil
	}
	outcome, err := s.client.DeleteParticipants(ctx, sid, tokenIDs)
	if err != nil {
		return resultErr(fmt.Errorf("delete_participants: %w", err)), nil
	}
	result, err := resultJSON(outcome)
	if err != nil {
		return resultErr(fmt.Errorf("delete_participants: serialise: %w", err)), nil
	}
	return result, nil
}

// ─── invite_participants ──────────────────────────────────────────────────────

func (s *Server) toolInviteParticipants() mcpsrv.ServerTool {
	tool := mcplib.NewTool("invite_participants",
		mcplib.WithDescription("Send invitation emails to survey participants. Without token_ids, all pending participants are invited."),
		mcplib.WithNumber("survey_id",
			mcplib.Description("The survey ID."),
			mcplib.Required(),
		),
		mcplib.WithArray("token_ids",
			mcplib.Description("Optional array of token IDs (integers) to invite."),
		),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleInviteParticipants}
}

func (s *Server) handleInviteParticipants(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	sid, err := requireIntArg(req, "survey_id")
	if err != nil {
		return resultErr(fmt.Errorf("invite_participants: %w", err)), nil
	}
	tokenIDs, ok := intListArg(req, "token_ids")
	if !ok {
		return resultErr(fmt.Errorf("invite_participants: token_ids must be an array of integers")), nil
	}
	outcome, err := s.client.InviteParticipants(ctx, sid, tokenIDs)
	if err != nil {
		return resultErr(fmt.Errorf("invite_participants: %w", err)), nil
	}
	result, err := resultJSON(outcome)
	if err != nil {
		return resultErr(fmt.Errorf("invite_participants: serialise: %w", err)), nil
	}
	return result, nil
}

// ─── remind_participants ──────────────────────────────────────────────────────

func (s *Server) toolRemindParticipants() mcpsrv.ServerTool {
	tool := mcplib.NewTool("remind_participants",
		mcplib.WithDescription("Send reminder emails to participants who were invited but have not completed the survey. Without token_ids, all such participants are reminded."),
		mcplib.WithNumber("survey_id",
			mcplib.Description("The survey ID."),
			mcplib.Required(),
		),
		mcplib.WithArray("token_ids",
			mcplib.Description("Optional array of token IDs (integers) to remind."),
		),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleRemindParticipants}
}

func (s *Server) handleRemindParticipants(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	sid, err := requireIntArg(req, "survey_id")
	if err != nil {
		return resultErr(fmt.Errorf("remind_participants: %w", err)), nil
	}
	tokenIDs, ok := intListArg(req, "token_ids")
	if !ok {
		return resultErr(fmt.Errorf("remind_participants: token_ids must be an array of integers")), nil
	}
	outcome, err := s.client.RemindParticipants(ctx, sid, tokenIDs)
	if err != nil {
		return resultErr(fmt.Errorf("remind_participants: %w", err)), nil
	}
	result, err := resultJSON(outcome)
	if err != nil {
		return resultErr(fmt.Errorf("remind_participants: serialise: %w", err)), nil
	}
	return result, nil
}

// ─── set_participant_properties ───────────────────────────────────────────────

func (s *Server) toolSetParticipantProperties() mcpsrv.ServerTool {
	tool := mcplib.NewTool("set_participant_properties",
		mcplib.WithDescription("Set properties of a survey participant identified by their access token."),
		mcplib.WithNumber("survey_id",
			mcplib.Description("The survey ID."),
			mcplib.Required(),
		),
		mcplib.WithString("token",
			mcplib.Description("The participant access token."),
			mcplib.Required(),
		),
		mcplib.WithObject("properties",
			mcplib.Description("Property name to value map (e.g. {\"email\": \"new@example.com\"})."),
			mcplib.Required(),
		),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleSetParticipantProperties}
}

func (s *Server) handleSetParticipantProperties(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	sid, err := requireIntArg(req, "survey_id")
	if err != nil {
		return resultErr(fmt.Errorf("set_participant_properties: %w", err)), nil
	}
	token, err := requireStringArg(req, "token")
	if err != nil {
		return resultErr(fmt.Errorf("set_participant_properties: %w", err)), nil
	}
	props, ok := mapArg(req, "properties")
	if !ok || len(props) == 0 {
		return resultErr(fmt.Errorf("set_participant_properties: properties is required")), nil
	}
	applied, err := s.client.SetParticipantProperties(ctx, sid, token, props)
	if err != nil {
		return resultErr(fmt.Errorf("set_participant_properties: %w", err)), nil
	}
	result, err := resultJSON(applied)
	if err != nil {
		return resultErr(fmt.Errorf("set_participant_properties: serialise: %w", err)), nil
	}
	return result, nil
}

// ─── import_cpdb_participants ─────────────────────────────────────────────────

func (s *Server) toolImportCPDBParticipants() mcpsrv.ServerTool {
	tool := mcplib.NewTool("import_cpdb_participants",
		mcplib.WithDescription("Import participants into the LimeSurvey central participant database (CPDB)."),
		mcplib.WithArray("participants",
			mcplib.Description("Array of participant objects, e.g. [{\"firstname\": \"Ada\", \"lastname\": \"Lovelace\", \"email\": \"ada@example.com\"}]."),
			mcplib.Required(),
		),
		mcplib.WithBoolean("update",
			mcplib.Description("Overwrite existing CPDB entries (default false)."),
		),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleImportCPDBParticipants}
}

func (s *Server) handleImportCPDBParticipants(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	participants, ok := mapListArg(req, "participants")
	if !ok || len(participants) == 0 {
		return resultErr(fmt.Errorf("import_cpdb_participants: participants is required and must be an array of objects")), nil
	}
	update := boolArg(req, "update", false)

	outcome, err := s.client.ImportCPDBParticipants(ctx, participants, update)
	if err != nil {
		return resultErr(fmt.Errorf("import_cpdb_participants: %w", err)), nil
	}
	result, err := resultJSON(outcome)
	if err != nil {
		return resultErr(fmt.Errorf("import_cpdb_participants: serialise: %w", err)), nil
	}
	return result, nil
}

// ─── activate_tokens ──────────────────────────────────────────────────────────

func (s *Server) toolActivateTokens() mcpsrv.ServerTool {
	tool := mcplib.NewTool("activate_tokens",
		mcplib.WithDescription("Initialise the participant (token) table of a survey. Must be called before participants can be added."),
		mcplib.WithNumber("survey_id",
			mcplib.Description("The survey ID."),
			mcplib.Required(),
		),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleActivateTokens}
}

func (s *Server) handleActivateTokens(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	sid, err := requireIntArg(req, "survey_id")
	if err != nil {
		return resultErr(fmt.Errorf("activate_tokens: %w", err)), nil
	}
	if err := s.client.ActivateTokens(ctx, sid); err != nil {
		return resultErr(fmt.Errorf("activate_tokens: %w", err)), nil
	}
	return resultText(fmt.Sprintf("Participant table initialised for survey %d.", sid)), nil
}
