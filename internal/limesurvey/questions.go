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

// In this file: question RemoteControl methods.

import (
	"context"
	"encoding/base64"
)

// ListQuestions returns the questions of the survey.  groupID limits the
// result to one question group; pass 0 for all groups.
func (c *Client) ListQuestions(ctx context.Context, surveyID, groupID int) ([]Question, error) {
	var qq []Question
	if err := c.call(ctx, "list_questions", []any{surveyID, zeroAsNil(groupID)}, &qq); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return qq, nil
}

// GetQuestionProperties returns all properties of the question.
func (c *Client) GetQuestionProperties(ctx context.Context, questionID int) (map[string]any, error) {
	var props map[string]any
	if err := c.call(ctx, "get_question_properties", []any{questionID}, &props); err != nil {
		return nil, err
	}
	return props, nil
}

// SetQuestionProperties sets question properties.
func (c *Client) SetQuestionProperties(ctx context.Context, questionID int, props map[string]any) (map[string]any, error) {
	var result map[string]any
	if err := c.call(ctx, "set_question_properties", []any{questionID, props}, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteQuestion deletes the question.
func (c *Client) DeleteQuestion(ctx context.Context, questionID int) error {
	var deleted IntString // the server echoes the deleted question ID
	return c.call(ctx, "delete_question", []any{questionID}, &deleted)
}

// ImportQuestion imports a question into the given group of the survey and
// returns the new question ID.  data is the raw .lsq file content; format is
// the file extension without the dot.
func (c *Client) ImportQuestion(ctx context.Context, surveyID, groupID int, data []byte, format string) (int, error) {
	if format == "" {
		format = "lsq"
	}
	params := []any{surveyID, groupID, base64.StdEncoding.EncodeToString(data), format}
	var qid IntString
	if err := c.call(ctx, "import_question", params, &qid); err != nil {
		return 0, err
	}
	return qid.Int(), nil
}
