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

// Package mcp implements a Model Context Protocol server that exposes a
// LimeSurvey instance to AI agents.
//
// Read-only data (surveys, groups, questions, participants, quotas,
// responses, languages, site information) is published as MCP resources
// under entity-specific URI schemes, for example survey://12345 or
// questions://12345.  Mutations (create, import, activate, delete, export)
// are published as MCP tools.
//
// The server supports two transports: stdio, for local agent integrations,
// and Streamable HTTP, for remote agents.
package mcp
