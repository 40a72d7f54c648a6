// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/archsurvey/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the archsurvey MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Architecture Survey Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: list_questions ---
	s.AddTool(mcp.NewTool("list_questions",
		mcp.WithDescription("List the survey questions grouped by category, with their ids and weights."),
	), h.handleListQuestions)

	// --- 2. Tool: recommend_architecture ---
	s.AddTool(mcp.NewTool("recommend_architecture",
		mcp.WithDescription("Score survey answers and recommend an architecture style (microservices, events, monolithic or hybrid)."),
		mcp.WithObject("answers", mcp.Description("Map of question id to answer, e.g. {\"1\": 1, \"14\": \"yes\", \"6\": 0.5}."), mcp.Required()),
		mcp.WithString("mode", mcp.Description("Answer mode. Defaults to 'binary'."), mcp.Enum("binary", "graded")),
		mcp.WithString("averaging", mcp.Description("Category averaging. Defaults to 'count'."), mcp.Enum("count", "weight")),
		mcp.WithBoolean("save", mcp.Description("Store the run in the survey history.")),
	), h.handleRecommendArchitecture)

	// --- 3. Tool: get_architecture_context ---
	s.AddTool(mcp.NewTool("get_architecture_context",
		mcp.WithDescription("Describe an architecture style: summary, strengths, trade-offs and typical technologies."),
		mcp.WithString("style", mcp.Description("Architecture style."), mcp.Required(), mcp.Enum("microservices", "events", "monolithic", "hybrid")),
	), h.handleGetArchitectureContext)

	// --- 4. Tool: get_recent_surveys ---
	s.AddTool(mcp.NewTool("get_recent_surveys",
		mcp.WithDescription("List the most recent stored survey runs, newest first."),
		mcp.WithNumber("limit", mcp.Description("Limit the number of runs returned.")),
	), h.handleGetRecentSurveys)

	return s
}

// StartMCPServer starts the archsurvey MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
