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

// In this file: question group RemoteControl methods.

import (
	"context"
	"encoding/base64"
)

// ListGroups returns the question groups of the survey.
func (c *Client) ListGroups(ctx context.Context, surveyID int) ([]QuestionGroup, error) {
	var groups []QuestionGroup
	if err := c.call(ctx, "list_groups", []any{surveyID}, &groups); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return groups, nil
}

// GetGroupProperties returns all properties of the question group.
func (c *Client) GetGroupProperties(ctx context.Context, groupID int) (map[string]any, error) {
	var props map[string]any
	if err := c.call(ctx, "get_group_properties", []any{groupID}, &props); err != nil {
		return nil, err
	}
	return props, nil
}

// SetGroupProperties sets question group properties.
func (c *Client) SetGroupProperties(ctx context.Context, groupID int, props map[string]any) (map[string]any, error) {
	var result map[string]any
	if err := c.call(ctx, "set_group_properties", []any{groupID, props}, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// AddGroup adds an empty question group to the survey and returns its ID.
func (c *Client) AddGroup(ctx context.Context, surveyID int, title, description string) (int, error) {
	var gid IntString
	if err := c.call(ctx, "add_group", []any{surveyID, title, description}, &gid); err != nil {
		return 0, err
	}
	return gid.Int(), nil
}

// DeleteGroup deletes the question group from the survey.
func (c *Client) DeleteGroup(ctx context.Context, surveyID, groupID int) error {
	var deleted IntString // the server echoes the deleted group ID
	return c.call(ctx, "delete_group", []any{surveyID, groupID}, &deleted)
}

// ImportGroup imports a question group into the survey and returns the new
// group ID.  data is the raw .lsg or .csv file content; format is the file
// extension without the dot.
func (c *Client) ImportGroup(ctx context.Context, surveyID int, data []byte, format, newName string) (int, error) {
	if format == "" {
		format = "lsg"
	}
	params := []any{surveyID, base64.StdEncoding.EncodeToString(data), format, emptyAsNil(newName)}
	var gid IntString
	if err := c.call(ctx, "import_group", params, &gid); err != nil {
		return 0, err
	}
	return gid.Int(), nil
}
