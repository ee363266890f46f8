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

// In this file: quota RemoteControl methods.

import "context"

// ListQuotas returns the quotas defined on the survey.
func (c *Client) ListQuotas(ctx context.Context, surveyID int) ([]Quota, error) {
	var qq []Quota
	if err := c.call(ctx, "list_quotas", []any{surveyID}, &qq); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return qq, nil
}

// GetQuotaProperties returns all properties of the quota.
func (c *Client) GetQuotaProperties(ctx context.Context, quotaID int) (map[string]any, error) {
	var props map[string]any
	if err := c.call(ctx, "get_quota_properties", []any{quotaID}, &props); err != nil {
		return nil, err
	}
	return props, nil
}

// SetQuotaProperties sets quota properties.
func (c *Client) SetQuotaProperties(ctx context.Context, quotaID int, props map[string]any) (map[string]any, error) {
	var result map[string]any
	if err := c.call(ctx, "set_quota_properties", []any{quotaID, props}, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// AddQuota adds a quota to the survey and returns the new quota ID.  action
// is what happens when the quota is hit: "terminate" (default) or
// "confirm_terminate".
func (c *Client) AddQuota(ctx context.Context, surveyID int, name string, limit int, active bool, action, message, url, urlDescription string) (int, error) {
	if action == "" {
		action = "terminate"
	}
	params := []any{
		surveyID, name, limit, active, action,
		emptyAsNil(message), emptyAsNil(url), emptyAsNil(urlDescription),
	}
	var qid IntString
	if err := c.call(ctx, "add_quota", params, &qid); err != nil {
		return 0, err
	}
	return qid.Int(), nil
}

// DeleteQuota deletes the quota.
func (c *Client) DeleteQuota(ctx context.Context, quotaID int) error {
	var result map[string]any // {"status": "OK"}
	return c.call(ctx, "delete_quota", []any{quotaID}, &result)
}
