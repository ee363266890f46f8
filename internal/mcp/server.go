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

// In this file: MCP server construction and transport management.

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"
)

const (
	serverName    = "limesurvey-mcp"
	serverVersion = "1.0.0"
)

// Transport selects how the MCP server communicates with its client.
type Transport string

const (
	// TransportStdio uses stdin/stdout for communication (default, suitable
	// for local agent integrations such as Claude Desktop).
	TransportStdio Transport = "stdio"
	// TransportHTTP uses Streamable HTTP transport (suitable for remote
	// agents or when multiple concurrent clients are needed).
	TransportHTTP Transport = "http"
)

// Server wraps an MCP server and the underlying LimeSurvey client.
type Server struct {
	mcp    *mcpsrv.MCPServer
	client Caller
	logger *slog.Logger
}

// New creates a new MCP server backed by the given LimeSurvey client.  The
// server is populated with all available tools and resources but does not
// start listening until one of the Serve* methods is called.
func New(client Caller, lg *slog.Logger) *Server {
	if lg == nil {
		lg = slog.Default()
	}
	s := &Server{
		client: client,
		logger: lg,
	}

	mcpServer := mcpsrv.NewMCPServer(
		serverName,
		serverVersion,
		mcpsrv.WithInstructions(instructions(client)),
		mcpsrv.WithResourceCapabilities(false, true),
	)

	// Register all tools.
	for _, t := range s.tools() {
		mcpServer.AddTool(t.Tool, t.Handler)
	}

	s.mcp = mcpServer
	s.registerResources()
	return s
}

// instructions returns the server instructions that describe the LimeSurvey
// instance to the connecting agent.
func instructions(client Caller) string {
	return fmt.Sprintf(`You are connected to a LimeSurvey MCP server.

The server proxies the LimeSurvey RemoteControl API at %s.

Resources expose read-only survey data: surveys, question groups, questions,
participants, quotas, responses, languages and site information.  Tools
perform mutations: creating, importing, activating and deleting surveys and
their parts, managing participants and quotas, and exporting responses and
statistics.

Conventions:
- Survey, group, question, quota and response IDs are integers.
- Participants are identified by their access token (a string).
- Import tools and upload_file accept file content as a base64 string.
- Export tools return text formats (csv, json, html) verbatim and binary
  formats (pdf, xls, doc) as a base64 string.
`, client.Endpoint())
}

// ServeStdio runs the MCP server over stdin/stdout until ctx is cancelled.
// This is the standard transport used by local agent integrations.
func (s *Server) ServeStdio(ctx context.Context) error {
	srv := mcpsrv.NewStdioServer(s.mcp)
	s.logger.InfoContext(ctx, "mcp server listening on stdio")
	if err := srv.Listen(ctx, os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
			return nil
		}
		return fmt.Errorf("mcp stdio server error: %w", err)
	}
	return nil
}

// ServeHTTP runs the MCP server as a Streamable HTTP server on addr until
// ctx is cancelled.  addr should be a host:port string such as
// "127.0.0.1:8483".  The MCP endpoint is mounted on /mcp; /healthcheck
// responds with 200 OK for load balancer probes.
func (s *Server) ServeHTTP(ctx context.Context, addr string) error {
	streamSrv := mcpsrv.NewStreamableHTTPServer(s.mcp)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Get("/healthcheck", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "OK")
	})
	r.Handle("/mcp", streamSrv)

	httpSrv := &http.Server{Addr: addr, Handler: r}

	s.logger.InfoContext(ctx, "mcp server listening on http", "addr", addr)

	errCh := make(chan error, 1)
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("mcp http server error: %w", err)
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		s.logger.InfoContext(ctx, "mcp server shutting down")
		if err := httpSrv.Shutdown(context.Background()); err != nil {
			return fmt.Errorf("mcp http server shutdown error: %w", err)
		}
		return nil
	case err := <-errCh:
		return err
	}
}

// resultText is a helper that wraps text in a successful CallToolResult.
func resultText(text string) *mcplib.CallToolResult {
	return mcplib.NewToolResultText(text)
}

// resultErr is a helper that wraps an error in a CallToolResult with IsError=true.
func resultErr(err error) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(err.Error())},
		IsError: true,
	}
}

// resultJSON is a helper that serialises v to JSON and returns a CallToolResult.
func resultJSON(v any) (*mcplib.CallToolResult, error) {
	return mcplib.NewToolResultJSON(v)
}

// stringArg extracts a named string argument from a tool call request.
// Returns ("", false) if the argument is absent or not a string.
func stringArg(req mcplib.CallToolRequest, name string) (string, bool) {
	args := req.GetArguments()
	if args == nil {
		return "", false
	}
	v, ok := args[name]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// intArg extracts a named int argument from a tool call request.  The MCP
// protocol serialises numbers as float64, so we convert accordingly.
func intArg(req mcplib.CallToolRequest, name string, defaultVal int) int {
	args := req.GetArguments()
	if args == nil {
		return defaultVal
	}
	v, ok := args[name]
	if !ok {
		return defaultVal
	}
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	}
	return defaultVal
}

// boolArg extracts a named bool argument from a tool call request.
func boolArg(req mcplib.CallToolRequest, name string, defaultVal bool) bool {
	args := req.GetArguments()
	if args == nil {
		return defaultVal
	}
	v, ok := args[name]
	if !ok {
		return defaultVal
	}
	b, ok := v.(bool)
	if !ok {
		return defaultVal
	}
	return b
}

// mapArg extracts a named object argument from a tool call request.
func mapArg(req mcplib.CallToolRequest, name string) (map[string]any, bool) {
	args := req.GetArguments()
	if args == nil {
		return nil, false
	}
	v, ok := args[name]
	if !ok {
		return nil, false
	}
	m, ok := v.(map[string]any)
	return m, ok
}

// mapListArg extracts a named array-of-objects argument from a tool call
// request.
func mapListArg(req mcplib.CallToolRequest, name string) ([]map[string]any, bool) {
	args := req.GetArguments()
	if args == nil {
		return nil, false
	}
	v, ok := args[name]
	if !ok {
		return nil, false
	}
	list, ok := v.([]any)
	if !ok {
		return nil, false
	}
	mm := make([]map[string]any, 0, len(list))
	for _, el := range list {
		m, ok := el.(map[string]any)
		if !ok {
			return nil, false
		}
		mm = append(mm, m)
	}
	return mm, true
}

// intListArg extracts a named array-of-integers argument from a tool call
// request.  A missing argument yields (nil, true): the list arguments of the
// tools that use it are optional.
func intListArg(req mcplib.CallToolRequest, name string) ([]int, bool) {
	args := req.GetArguments()
	if args == nil {
		return nil, true
	}
	v, ok := args[name]
	if !ok {
		return nil, true
	}
	list, ok := v.([]any)
	if !ok {
		return nil, false
	}
	nn := make([]int, 0, len(list))
	for _, el := range list {
		n, ok := el.(float64)
		if !ok {
			return nil, false
		}
		nn = append(nn, int(n))
	}
	return nn, true
}
