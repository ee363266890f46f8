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

// In this file: site-wide RemoteControl methods.

import (
	"context"
	"strings"
)

// GetSiteSettings returns a global setting by name.  Only a handful of
// settings are exposed by the RemoteControl handler; see the convenience
// wrappers below.
func (c *Client) GetSiteSettings(ctx context.Context, name string) (string, error) {
	var value string
	if err := c.call(ctx, "get_site_settings", []any{name}, &value); err != nil {
		return "", err
	}
	return value, nil
}

// GetServerVersion returns the LimeSurvey version number.
func (c *Client) GetServerVersion(ctx context.Context) (string, error) {
	return c.GetSiteSettings(ctx, "versionnumber")
}

// GetDBVersion returns the database schema version.
func (c *Client) GetDBVersion(ctx context.Context) (string, error) {
	return c.GetSiteSettings(ctx, "dbversionnumber")
}

// GetSiteName returns the configured site name.
func (c *Client) GetSiteName(ctx context.Context) (string, error) {
	return c.GetSiteSettings(ctx, "sitename")
}

// GetDefaultLanguage returns the site default language code.
func (c *Client) GetDefaultLanguage(ctx context.Context) (string, error) {
	return c.GetSiteSettings(ctx, "defaultlang")
}

// GetAvailableLanguages returns the language codes available on the site.
// The setting is a space-separated list; an empty setting means all languages
// are allowed, in which case nil is returned.
func (c *Client) GetAvailableLanguages(ctx context.Context) ([]string, error) {
	s, err := c.GetSiteSettings(ctx, "availablelanguages")
	if err != nil {
		return nil, err
	}
	return strings.Fields(s), nil
}

// ListUsers returns the LimeSurvey administration users.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var uu []User
	if err := c.call(ctx, "list_users", nil, &uu); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return uu, nil
}
