package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/fluentdocs/mcp-server/internal/common"
	"github.com/fluentdocs/mcp-server/internal/dispatch"
	"github.com/fluentdocs/mcp-server/internal/index"
	"github.com/fluentdocs/mcp-server/internal/scheduler"
	"github.com/fluentdocs/mcp-server/internal/tools"
)

func main() {
	defer common.RecoverWithCrashFile()

	configPath := os.Getenv("FLUENTDOCS_CONFIG")
	if configPath == "" {
		configPath = "fluentdocs.toml"
	}

	config, err := common.LoadFromFile(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	common.InstallCrashHandler("./logs")
	logger := common.SetupLogger(config)

	idx, stats, failed, err := index.NewIndexSet(config.Docs.Dir, config.Docs.Extensions)
	if err != nil {
		logger.Fatal().Err(err).Str("docs_dir", config.Docs.Dir).Msg("Failed to build initial index")
	}
	logger.Info().
		Int("indexed_files", stats.IndexedFiles).
		Int("failed_files", stats.FailedFiles).
		Int64("duration_ms", stats.DurationMs).
		Msg("Initial index build complete")
	for _, f := range failed {
		logger.Warn().Str("file", f.Path).Err(f.Err).Msg("Skipped file during indexing")
	}

	ctx := tools.NewServerContext(idx, config.Search.DefaultLimit, config.Search.MaxLimit)
	dispatcher := dispatch.New(ctx, logger)

	if config.Reindex.Schedule != "" {
		sched := scheduler.New(logger)
		if err := sched.Start(config.Reindex.Schedule, func() error {
			_, _, _, err := idx.Reindex()
			return err
		}); err != nil {
			logger.Warn().Err(err).Msg("Failed to start scheduled reindex")
		} else {
			defer sched.Stop()
		}
	}

	mcpServer := server.NewMCPServer(
		"fluentdocs-mcp",
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(createQueryComponentTool(), handleQueryComponent(dispatcher))
	mcpServer.AddTool(createSearchDocsTool(), handleSearchDocs(dispatcher))
	mcpServer.AddTool(createListByCategoryTool(), handleListByCategory(dispatcher))
	mcpServer.AddTool(createListAllDocsTool(), handleListAllDocs(dispatcher))
	mcpServer.AddTool(createGetComponentExamplesTool(), handleGetComponentExamples(dispatcher))
	mcpServer.AddTool(createGetPropsReferenceTool(), handleGetPropsReference(dispatcher))
	mcpServer.AddTool(createGetFoundationTool(), handleGetFoundation(dispatcher))
	mcpServer.AddTool(createGetPatternTool(), handleGetPattern(dispatcher))
	mcpServer.AddTool(createGetEnterpriseTool(), handleGetEnterprise(dispatcher))
	mcpServer.AddTool(createSuggestComponentsTool(), handleSuggestComponents(dispatcher))
	mcpServer.AddTool(createGetImplementationGuideTool(), handleGetImplementationGuide(dispatcher))
	mcpServer.AddTool(createReindexTool(), handleReindex(dispatcher))

	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Fatal().Err(err).Msg("MCP server failed")
	}
}
