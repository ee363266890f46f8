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

// In this file: response and export RemoteControl methods.

import (
	"context"
	"encoding/base64"
	"fmt"
)

// Export formats accepted by ExportResponses.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatXLS  = "xls"
	FormatDOC  = "doc"
	FormatPDF  = "pdf"
	FormatHTML = "html"
)

// AddResponse adds a response to the active survey and returns the new
// response ID.  responseData maps fieldmap column names (e.g. "12345X1X2")
// to answer values.
func (c *Client) AddResponse(ctx context.Context, surveyID int, responseData map[string]any) (int, error) {
	var rid IntString
	if err := c.call(ctx, "add_response", []any{surveyID, responseData}, &rid); err != nil {
		return 0, err
	}
	return rid.Int(), nil
}

// AddResponses adds multiple responses and returns the new response IDs.
// The RemoteControl API has no batch insert, so responses are submitted one
// by one; on failure the IDs inserted so far are returned along with the
// error.
func (c *Client) AddResponses(ctx context.Context, surveyID int, responses []map[string]any) ([]int, error) {
	ids := make([]int, 0, len(responses))
	for i, rd := range responses {
		id, err := c.AddResponse(ctx, surveyID, rd)
		if err != nil {
			return ids, fmt.Errorf("response %d of %d: %w", i+1, len(responses), err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// UpdateResponse updates an existing response.  responseData must contain
// the "id" member identifying the response to update.
func (c *Client) UpdateResponse(ctx context.Context, surveyID int, responseData map[string]any) error {
	if _, ok := responseData["id"]; !ok {
		return fmt.Errorf("limesurvey: update_response: %w", ErrNoResponseID)
	}
	var result any // true on success, an error string otherwise
	return c.call(ctx, "update_response", []any{surveyID, responseData}, &result)
}

// DeleteResponse deletes a response from the survey.
func (c *Client) DeleteResponse(ctx context.Context, surveyID, responseID int) error {
	var result map[string]any // {"status": "deleted"} counts as an error string otherwise
	return c.call(ctx, "delete_response", []any{surveyID, responseID}, &result)
}

// GetResponseIDs returns the IDs of the responses submitted with the given
// participant token.
func (c *Client) GetResponseIDs(ctx context.Context, surveyID int, token string) ([]int, error) {
	var raw []IntString
	if err := c.call(ctx, "get_response_ids", []any{surveyID, token}, &raw); err != nil {
		return nil, err
	}
	ids := make([]int, len(raw))
	for i, id := range raw {
		ids[i] = id.Int()
	}
	return ids, nil
}

// ExportResponses exports the survey responses in the given format and
// returns the decoded file content.  format defaults to csv; language,
// completionStatus ("complete", "incomplete", "all"), headingType ("code",
// "full", "abbreviated") and responseType ("short", "long") fall back to the
// server defaults when empty.
func (c *Client) ExportResponses(ctx context.Context, surveyID int, format, language, completionStatus, headingType, responseType string) ([]byte, error) {
	if format == "" {
		format = FormatCSV
	}
	params := []any{
		surveyID, format, emptyAsNil(language),
		emptyAsNil(completionStatus), emptyAsNil(headingType), emptyAsNil(responseType),
	}
	var encoded string
	if err := c.call(ctx, "export_responses", params, &encoded); err != nil {
		return nil, err
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("limesurvey: export_responses: decode: %w", err)
	}
	return data, nil
}

// ExportStatistics exports the survey statistics and returns the decoded
// document.  docType is "pdf" (default), "xls" or "html"; graph enables
// charts in the output.
func (c *Client) ExportStatistics(ctx context.Context, surveyID int, docType string, graph bool) ([]byte, error) {
	if docType == "" {
		docType = FormatPDF
	}
	graphArg := "0"
	if graph {
		graphArg = "1"
	}
	params := []any{surveyID, docType, nil, graphArg}
	var encoded string
	if err := c.call(ctx, "export_statistics", params, &encoded); err != nil {
		return nil, err
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("limesurvey: export_statistics: decode: %w", err)
	}
	return data, nil
}

// ExportTimeline returns submission counts over time.  period is "day" or
// "hour"; start and end bound the range in "YYYY-MM-DD HH:MM" format.
func (c *Client) ExportTimeline(ctx context.Context, surveyID int, period, start, end string) (map[string]any, error) {
	if period == "" {
		period = "day"
	}
	var timeline map[string]any
	if err := c.call(ctx, "export_timeline", []any{surveyID, period, start, end}, &timeline); err != nil {
		return nil, err
	}
	return timeline, nil
}
