// Package mcp exposes the application state as MCP tools so an agent can
// read the dashboard and toggle habits.
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/comitanigiacomo/lifeboard/internal/core/services"
	"github.com/comitanigiacomo/lifeboard/internal/core/state"
	"github.com/comitanigiacomo/lifeboard/internal/logging"
)

const instructions = "Lifeboard personal dashboard. Read today's habits, streaks, energy and goals, " +
	"toggle a habit for a date, and fetch the monthly report. Dates use YYYY-MM-DD and default to today."

// New creates an MCP server with every tool registered.
func New(dash *state.Dashboard, reports *services.DashboardService, version string) *server.MCPServer {
	s := server.NewMCPServer("lifeboard", version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)

	h := &handlers{dash: dash, reports: reports, log: logging.Component("mcp")}

	s.AddTools(
		server.ServerTool{Tool: toolGetDashboard, Handler: h.getDashboard},
		server.ServerTool{Tool: toolRefreshDashboard, Handler: h.refreshDashboard},
		server.ServerTool{Tool: toolToggleHabit, Handler: h.toggleHabit},
		server.ServerTool{Tool: toolGetHabitStreak, Handler: h.getHabitStreak},
		server.ServerTool{Tool: toolGetMonthlyReport, Handler: h.getMonthlyReport},
	)

	return s
}

// NewHTTPHandler serves s over the streamable HTTP transport.
func NewHTTPHandler(s *server.MCPServer) *server.StreamableHTTPServer {
	return server.NewStreamableHTTPServer(s, server.WithEndpointPath("/mcp"))
}

type handlers struct {
	dash    *state.Dashboard
	reports *services.DashboardService
	log     zerolog.Logger
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(v)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
