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

// In this file: file upload/download tool definitions and handlers.

import (
	"context"
	"encoding/base64"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"
)

// ─── upload_file ──────────────────────────────────────────────────────────────

func (s *Server) toolUploadFile() mcpsrv.ServerTool {
	tool := mcplib.NewTool("upload_file",
		mcplib.WithDescription("Upload a file into the survey upload directory. field_name is the fieldmap name of the file upload question the file belongs to."),
		mcplib.WithNumber("survey_id",
			mcplib.Description("The survey ID."),
			mcplib.Required(),
		),
		mcplib.WithString("field_name",
			mcplib.Description("The fieldmap name of the upload question (e.g. \"12345X1X2\")."),
			mcplib.Required(),
		),
		mcplib.WithString("file_name",
			mcplib.Description("The original file name."),
			mcplib.Required(),
		),
		mcplib.WithString("content",
			mcplib.Description("The file content, base64-encoded."),
			mcplib.Required(),
		),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleUploadFile}
}

func (s *Server) handleUploadFile(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	sid, err := requireIntArg(req, "survey_id")
	if err != nil {
		return resultErr(fmt.Errorf("upload_file: %w", err)), nil
	}
	fieldName, err := requireStringArg(req, "field_name")
	if err != nil {
		return resultErr(fmt.Errorf("upload_file: %w", err)), nil
	}
	fileName, err := requireStringArg(req, "file_name")
	if err != nil {
		return resultErr(fmt.Errorf("upload_file: %w", err)), nil
	}
	content, err := base64Arg(req, "content")
	if err != nil {
		return resultErr(fmt.Errorf("upload_file: %w", err)), nil
	}

	meta, err := s.client.UploadFile(ctx, sid, fieldName, fileName, content)
	if err != nil {
		return resultErr(fmt.Errorf("upload_file: %w", err)), nil
	}
	result, err := resultJSON(meta)
	if err != nil {
		return resultErr(fmt.Errorf("upload_file: serialise: %w", err)), nil
	}
	return result, nil
}

// ─── download_files ───────────────────────────────────────────────────────────

// downloadedFile is a JSON-serialisable respondent upload.
type downloadedFile struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Size    int    `json:"size"`
	Content string `json:"content"` // base64
}

func (s *Server) toolDownloadFiles() mcpsrv.ServerTool {
	tool := mcplib.NewTool("download_files",
		mcplib.WithDescription("Download the files uploaded by survey respondents. File content is returned base64-encoded. Without a token, the uploads of all respondents are returned."),
		mcplib.WithNumber("survey_id",
			mcplib.Description("The survey ID."),
			mcplib.Required(),
		),
		mcplib.WithString("token",
			mcplib.Description("Optional participant access token to limit the result to one respondent."),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleDownloadFiles}
}

func (s *Server) handleDownloadFiles(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	sid, err := requireIntArg(req, "survey_id")
	if err != nil {
		return resultErr(fmt.Errorf("download_files: %w", err)), nil
	}
	token, _ := stringArg(req, "token")

	files, err := s.client.DownloadFiles(ctx, sid, token)
	if err != nil {
		return resultErr(fmt.Errorf("download_files: %w", err)), nil
	}

	out := make([]downloadedFile, 0, len(files))
	for _, f := range files {
		out = append(out, downloadedFile{
			ID:      f.ID,
			Name:    f.Name,
			Size:    len(f.Data),
			Content: base64.StdEncoding.EncodeToString(f.Data),
		})
	}
	result, err := resultJSON(out)
	if err != nil {
		return resultErr(fmt.Errorf("download_files: serialise: %w", err)), nil
	}
	return result, nil
}
