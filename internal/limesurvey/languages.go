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

// In this file: survey language RemoteControl methods.

import "context"

// GetLanguageProperties returns the language-specific properties of the
// survey (title, description, welcome and end texts, email templates).  lang
// of "" selects the survey base language.
func (c *Client) GetLanguageProperties(ctx context.Context, surveyID int, lang string) (map[string]any, error) {
	var props map[string]any
	if err := c.call(ctx, "get_language_properties", []any{surveyID, nil, emptyAsNil(lang)}, &props); err != nil {
		return nil, err
	}
	return props, nil
}

// SetLanguageProperties sets language-specific survey properties.
func (c *Client) SetLanguageProperties(ctx context.Context, surveyID int, props map[string]any, lang string) (map[string]any, error) {
	var result map[string]any
	if err := c.call(ctx, "set_language_properties", []any{surveyID, props, emptyAsNil(lang)}, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// AddLanguage adds an additional language to the survey.
func (c *Client) AddLanguage(ctx context.Context, surveyID int, lang string) error {
	var result map[string]any // {"status": "OK"}
	return c.call(ctx, "add_language", []any{surveyID, lang}, &result)
}

// DeleteLanguage removes a language from the survey.
func (c *Client) DeleteLanguage(ctx context.Context, surveyID int, lang string) error {
	var result map[string]any // {"status": "OK"}
	return c.call(ctx, "delete_language", []any{surveyID, lang}, &result)
}
