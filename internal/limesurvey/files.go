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

// In this file: file upload/download RemoteControl methods.

import (
	"context"
	"encoding/base64"
	"fmt"
)

// GetUploadedFiles returns the files uploaded by survey respondents, keyed by
// file ID.  token of "" returns the files of all respondents.
func (c *Client) GetUploadedFiles(ctx context.Context, surveyID int, token string) (map[string]UploadedFile, error) {
	var files map[string]UploadedFile
	if err := c.call(ctx, "get_uploaded_files", []any{surveyID, emptyAsNil(token)}, &files); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return files, nil
}

// DownloadFiles fetches and decodes the respondent uploads of the survey.
func (c *Client) DownloadFiles(ctx context.Context, surveyID int, token string) ([]DownloadedFile, error) {
	files, err := c.GetUploadedFiles(ctx, surveyID, token)
	if err != nil {
		return nil, err
	}
	var dd []DownloadedFile
	for id, f := range files {
		data, err := base64.StdEncoding.DecodeString(f.Content)
		if err != nil {
			return nil, fmt.Errorf("limesurvey: get_uploaded_files: file %s: decode: %w", id, err)
		}
		name, _ := f.Meta["name"].(string)
		if name == "" {
			name = id
		}
		dd = append(dd, DownloadedFile{ID: id, Name: name, Data: data})
	}
	return dd, nil
}

// UploadFile uploads a file into the survey upload directory and returns the
// file metadata reported by the server.  fieldName is the fieldmap name of
// the upload question the file belongs to.
func (c *Client) UploadFile(ctx context.Context, surveyID int, fieldName, fileName string, content []byte) (map[string]any, error) {
	params := []any{surveyID, fieldName, fileName, base64.StdEncoding.EncodeToString(content)}
	var meta map[string]any
	if err := c.call(ctx, "upload_file", params, &meta); err != nil {
		return nil, err
	}
	return meta, nil
}
