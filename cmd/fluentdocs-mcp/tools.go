package main

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// createQueryComponentTool returns the query_component tool definition.
func createQueryComponentTool() mcp.Tool {
	return mcp.NewTool("query_component",
		mcp.WithDescription("Look up a Fluent UI component's full documentation by name"),
		mcp.WithString("componentName",
			mcp.Required(),
			mcp.Description("Component name, e.g. \"Button\" or \"DataGrid\""),
		),
	)
}

// createSearchDocsTool returns the search_docs tool definition.
func createSearchDocsTool() mcp.Tool {
	return mcp.NewTool("search_docs",
		mcp.WithDescription("Full-text search over the documentation corpus, ranked by TF-IDF"),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search query, whitespace-tokenized"),
		),
		mcp.WithString("module",
			mcp.Description("Restrict results to one module: foundation, components, patterns, enterprise, quick-reference"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum results to return (default 10, max 25)"),
		),
	)
}

// createListByCategoryTool returns the list_by_category tool definition.
func createListByCategoryTool() mcp.Tool {
	return mcp.NewTool("list_by_category",
		mcp.WithDescription("List components in a category, or list all categories if none given"),
		mcp.WithString("category",
			mcp.Description("Component category, e.g. \"buttons\" or \"forms\""),
		),
	)
}

// createListAllDocsTool returns the list_all_docs tool definition.
func createListAllDocsTool() mcp.Tool {
	return mcp.NewTool("list_all_docs",
		mcp.WithDescription("Enumerate every indexed document, grouped by module and component category"),
	)
}

// createGetComponentExamplesTool returns the get_component_examples tool definition.
func createGetComponentExamplesTool() mcp.Tool {
	return mcp.NewTool("get_component_examples",
		mcp.WithDescription("Extract labeled code examples from a component's documentation"),
		mcp.WithString("componentName",
			mcp.Required(),
			mcp.Description("Component name"),
		),
	)
}

// createGetPropsReferenceTool returns the get_props_reference tool definition.
func createGetPropsReferenceTool() mcp.Tool {
	return mcp.NewTool("get_props_reference",
		mcp.WithDescription("Extract the props/API reference table for a component"),
		mcp.WithString("componentName",
			mcp.Required(),
			mcp.Description("Component name"),
		),
	)
}

// createGetFoundationTool returns the get_foundation tool definition.
func createGetFoundationTool() mcp.Tool {
	return mcp.NewTool("get_foundation",
		mcp.WithDescription("Fetch a foundation topic: getting-started, fluent-provider, theming, styling-griffel, component-architecture, accessibility"),
		mcp.WithString("topic",
			mcp.Description("Foundation topic name or alias; omit for an overview"),
		),
	)
}

// createGetPatternTool returns the get_pattern tool definition.
func createGetPatternTool() mcp.Tool {
	return mcp.NewTool("get_pattern",
		mcp.WithDescription("Fetch a UI composition pattern by category and name"),
		mcp.WithString("patternCategory",
			mcp.Description("One of: composition, data, forms, layout, modals, navigation, state"),
		),
		mcp.WithString("patternName",
			mcp.Description("Pattern name within the category"),
		),
	)
}

// createGetEnterpriseTool returns the get_enterprise tool definition.
func createGetEnterpriseTool() mcp.Tool {
	return mcp.NewTool("get_enterprise",
		mcp.WithDescription("Fetch enterprise-scale guidance: app-shell, dashboard, admin, data, accessibility"),
		mcp.WithString("topic",
			mcp.Required(),
			mcp.Description("Enterprise topic name or alias"),
		),
	)
}

// createSuggestComponentsTool returns the suggest_components tool definition.
func createSuggestComponentsTool() mcp.Tool {
	return mcp.NewTool("suggest_components",
		mcp.WithDescription("Recommend Fluent UI components for a described UI, ranked by relevance"),
		mcp.WithString("uiDescription",
			mcp.Required(),
			mcp.Description("Plain-language description of the UI to build"),
		),
	)
}

// createGetImplementationGuideTool returns the get_implementation_guide tool definition.
func createGetImplementationGuideTool() mcp.Tool {
	return mcp.NewTool("get_implementation_guide",
		mcp.WithDescription("Produce a structured implementation plan for a goal: components, patterns, steps, accessibility checklist"),
		mcp.WithString("goal",
			mcp.Required(),
			mcp.Description("What the developer is trying to build, e.g. \"a sortable data table with row selection\""),
		),
	)
}

// createReindexTool returns the reindex tool definition.
func createReindexTool() mcp.Tool {
	return mcp.NewTool("reindex",
		mcp.WithDescription("Rebuild the document store and search index from the docs directory"),
	)
}
