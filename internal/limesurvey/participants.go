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

package limesurvey

// In this file: participant (token) RemoteControl methods.

import "context"

// defParticipantPageSize is the page size used when the caller does not
// specify a limit.  It matches the server-side default.
const defParticipantPageSize = 10

// ListParticipants returns a page of the survey participants.  start and
// limit paginate the result; limit 0 selects the server default.
func (c *Client) ListParticipants(ctx context.Context, surveyID, start, limit int) ([]Participant, error) {
	if limit <= 0 {
		limit = defParticipantPageSize
	}
	var pp []Participant
	if err := c.call(ctx, "list_participants", []any{surveyID, start, limit}, &pp); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return pp, nil
}

// GetParticipantProperties returns all properties of the participant
// identified by its token.
func (c *Client) GetParticipantProperties(ctx context.Context, surveyID int, token string) (map[string]any, error) {
	query := map[string]string{"token": token}
	var props map[string]any
	if err := c.call(ctx, "get_participant_properties", []any{surveyID, query}, &props); err != nil {
		return nil, err
	}
	return props, nil
}

// SetParticipantProperties sets properties of the participant identified by
// its token.
func (c *Client) SetParticipantProperties(ctx context.Context, surveyID int, token string, props map[string]any) (map[string]any, error) {
	query := map[string]string{"token": token}
	var result map[string]any
	if err := c.call(ctx, "set_participant_properties", []any{surveyID, query, props}, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// AddParticipants adds participants to the survey token table.  Each
// participant is a property map (firstname, lastname, email, attributes).
// When createTokens is true the server generates a token for each new
// participant.  The result echoes the participants with the server-assigned
// tid and token.
func (c *Client) AddParticipants(ctx context.Context, surveyID int, participants []map[string]any, createTokens bool) ([]map[string]any, error) {
	var result []map[string]any
	if err := c.call(ctx, "add_participants", []any{surveyID, participants, createTokens}, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteParticipants deletes the participants with the given token IDs from
// the survey.  The result maps each token ID to the deletion outcome.
func (c *Client) DeleteParticipants(ctx context.Context, surveyID int, tokenIDs []int) (map[string]any, error) {
	var result map[string]any
	if err := c.call(ctx, "delete_participants", []any{surveyID, tokenIDs}, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// InviteParticipants sends invitation emails to the participants with the
// given token IDs; nil invites all pending participants.
func (c *Client) InviteParticipants(ctx context.Context, surveyID int, tokenIDs []int) (map[string]any, error) {
	var ids any
	if len(tokenIDs) > 0 {
		ids = tokenIDs
	}
	var result map[string]any
	if err := c.call(ctx, "invite_participants", []any{surveyID, ids}, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// RemindParticipants sends reminder emails to the participants that were
// invited but have not completed the survey.  tokenIDs of nil reminds all.
func (c *Client) RemindParticipants(ctx context.Context, surveyID int, tokenIDs []int) (map[string]any, error) {
	var ids any
	if len(tokenIDs) > 0 {
		ids = tokenIDs
	}
	var result map[string]any
	if err := c.call(ctx, "remind_participants", []any{surveyID, nil, nil, ids}, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// ImportCPDBParticipants copies participants from the central participant
// database into LimeSurvey.  Each participant is a property map; update
// controls whether existing entries are overwritten.  The RemoteControl
// method for this is cpd_importParticipants.
func (c *Client) ImportCPDBParticipants(ctx context.Context, participants []map[string]any, update bool) (map[string]any, error) {
	var result map[string]any
	if err := c.call(ctx, "cpd_importParticipants", []any{participants, update}, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// ActivateTokens initialises the survey participant table.
func (c *Client) ActivateTokens(ctx context.Context, surveyID int) error {
	var result map[string]any // {"status": "OK"}
	return c.call(ctx, "activate_tokens", []any{surveyID}, &result)
}
