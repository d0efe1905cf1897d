package main

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/fluentdocs/mcp-server/internal/dispatch"
)

// textResult wraps a Markdown string as the single-content MCP tool
// result every handler below returns.
func textResult(s string) (*mcp.CallToolResult, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(s)},
	}, nil
}

// handleQueryComponent implements the query_component tool.
func handleQueryComponent(d *dispatch.Dispatcher) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name := request.GetString("componentName", "")
		return textResult(d.Dispatch("query_component", map[string]any{"componentName": name}))
	}
}

// handleSearchDocs implements the search_docs tool.
func handleSearchDocs(d *dispatch.Dispatcher) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := map[string]any{
			"query":  request.GetString("query", ""),
			"module": request.GetString("module", ""),
			"limit":  request.GetInt("limit", 0),
		}
		return textResult(d.Dispatch("search_docs", args))
	}
}

// handleListByCategory implements the list_by_category tool.
func handleListByCategory(d *dispatch.Dispatcher) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := map[string]any{"category": request.GetString("category", "")}
		return textResult(d.Dispatch("list_by_category", args))
	}
}

// handleListAllDocs implements the list_all_docs tool.
func handleListAllDocs(d *dispatch.Dispatcher) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return textResult(d.Dispatch("list_all_docs", nil))
	}
}

// handleGetComponentExamples implements the get_component_examples tool.
func handleGetComponentExamples(d *dispatch.Dispatcher) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := map[string]any{"componentName": request.GetString("componentName", "")}
		return textResult(d.Dispatch("get_component_examples", args))
	}
}

// handleGetPropsReference implements the get_props_reference tool.
func handleGetPropsReference(d *dispatch.Dispatcher) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := map[string]any{"componentName": request.GetString("componentName", "")}
		return textResult(d.Dispatch("get_props_reference", args))
	}
}

// handleGetFoundation implements the get_foundation tool.
func handleGetFoundation(d *dispatch.Dispatcher) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := map[string]any{"topic": request.GetString("topic", "")}
		return textResult(d.Dispatch("get_foundation", args))
	}
}

// handleGetPattern implements the get_pattern tool.
func handleGetPattern(d *dispatch.Dispatcher) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := map[string]any{
			"patternCategory": request.GetString("patternCategory", ""),
			"patternName":     request.GetString("patternName", ""),
		}
		return textResult(d.Dispatch("get_pattern", args))
	}
}

// handleGetEnterprise implements the get_enterprise tool.
func handleGetEnterprise(d *dispatch.Dispatcher) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := map[string]any{"topic": request.GetString("topic", "")}
		return textResult(d.Dispatch("get_enterprise", args))
	}
}

// handleSuggestComponents implements the suggest_components tool.
func handleSuggestComponents(d *dispatch.Dispatcher) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := map[string]any{"uiDescription": request.GetString("uiDescription", "")}
		return textResult(d.Dispatch("suggest_components", args))
	}
}

// handleGetImplementationGuide implements the get_implementation_guide tool.
func handleGetImplementationGuide(d *dispatch.Dispatcher) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := map[string]any{"goal": request.GetString("goal", "")}
		return textResult(d.Dispatch("get_implementation_guide", args))
	}
}

// handleReindex implements the reindex tool.
func handleReindex(d *dispatch.Dispatcher) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return textResult(d.Dispatch("reindex", nil))
	}
}
