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

// In this file: survey-level RemoteControl methods.

import (
	"context"
	"encoding/base64"
)

// ListSurveys returns the surveys visible to the authenticated user.  An
// empty list is returned when there are none (the API reports that case as
// the "No surveys found" pseudo-error).
func (c *Client) ListSurveys(ctx context.Context) ([]Survey, error) {
	var ss []Survey
	if err := c.call(ctx, "list_surveys", nil, &ss); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return ss, nil
}

// ListSurveyGroups returns all survey groups.
func (c *Client) ListSurveyGroups(ctx context.Context) ([]map[string]any, error) {
	var groups []map[string]any
	if err := c.call(ctx, "list_survey_groups", nil, &groups); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return groups, nil
}

// GetSurveyProperties returns all properties of the survey.  Properties are
// returned untyped: the set of keys depends on the LimeSurvey version.
func (c *Client) GetSurveyProperties(ctx context.Context, surveyID int) (map[string]any, error) {
	var props map[string]any
	if err := c.call(ctx, "get_survey_properties", []any{surveyID}, &props); err != nil {
		return nil, err
	}
	return props, nil
}

// SetSurveyProperties sets survey properties.  The result maps each
// submitted property name to whether it was applied.
func (c *Client) SetSurveyProperties(ctx context.Context, surveyID int, props map[string]any) (map[string]any, error) {
	var result map[string]any
	if err := c.call(ctx, "set_survey_properties", []any{surveyID, props}, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// AddSurvey creates a new empty survey and returns its ID.  wishSID is the
// desired survey ID; the server picks another one if it is taken.  format is
// the presentation format: "G" (group by group), "S" (question by question)
// or "A" (all in one).
func (c *Client) AddSurvey(ctx context.Context, wishSID int, title, language, format string) (int, error) {
	if format == "" {
		format = "G"
	}
	var sid IntString
	if err := c.call(ctx, "add_survey", []any{wishSID, title, language, format}, &sid); err != nil {
		return 0, err
	}
	return sid.Int(), nil
}

// DeleteSurvey deletes the survey.
func (c *Client) DeleteSurvey(ctx context.Context, surveyID int) error {
	var result map[string]any // {"status": "OK"} on success, caught by statusError otherwise
	return c.call(ctx, "delete_survey", []any{surveyID}, &result)
}

// CopySurvey copies the survey under a new name and returns the new survey
// ID.
func (c *Client) CopySurvey(ctx context.Context, surveyID int, newName string) (int, error) {
	var result struct {
		Status string    `json:"status"`
		NewSID IntString `json:"newsid"`
	}
	if err := c.call(ctx, "copy_survey", []any{surveyID, newName}, &result); err != nil {
		return 0, err
	}
	if result.Status != statusOK {
		return 0, &APIError{Method: "copy_survey", Status: result.Status}
	}
	return result.NewSID.Int(), nil
}

// ActivateSurvey activates the survey.  The result carries the plugin
// feedback messages, if any.
func (c *Client) ActivateSurvey(ctx context.Context, surveyID int) (map[string]any, error) {
	var result map[string]any
	if err := c.call(ctx, "activate_survey", []any{surveyID}, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// ImportSurvey imports a survey structure and returns the new survey ID.
// data is the raw file content (.lss, .csv, .txt or .lsa); format is the
// file extension without the dot.  name, when not empty, overrides the
// survey name; wishSID, when non-zero, is the desired survey ID.
func (c *Client) ImportSurvey(ctx context.Context, data []byte, format, name string, wishSID int) (int, error) {
	if format == "" {
		format = "lss"
	}
	params := []any{base64.StdEncoding.EncodeToString(data), format, emptyAsNil(name), zeroAsNil(wishSID)}
	var sid IntString
	if err := c.call(ctx, "import_survey", params, &sid); err != nil {
		return 0, err
	}
	return sid.Int(), nil
}

// GetSummary returns the survey access and completion summary.
func (c *Client) GetSummary(ctx context.Context, surveyID int) (map[string]any, error) {
	var summary map[string]any
	if err := c.call(ctx, "get_summary", []any{surveyID, "all"}, &summary); err != nil {
		return nil, err
	}
	return summary, nil
}

// GetFieldmap returns the survey fieldmap: the mapping of response table
// columns to questions.
func (c *Client) GetFieldmap(ctx context.Context, surveyID int) (map[string]any, error) {
	var fm map[string]any
	if err := c.call(ctx, "get_fieldmap", []any{surveyID}, &fm); err != nil {
		return nil, err
	}
	return fm, nil
}

// emptyAsNil returns nil for an empty string, so that the server falls back
// to the method's default value.
func emptyAsNil(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// zeroAsNil returns nil for a zero int.
func zeroAsNil(n int) any {
	if n == 0 {
		return nil
	}
	return n
}
