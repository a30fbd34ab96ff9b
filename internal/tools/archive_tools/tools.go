package archive_tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"patchmuch/internal/archive"
	"patchmuch/internal/instrumentation"
	"patchmuch/internal/server"
	"patchmuch/internal/tools/batch"
	"patchmuch/internal/tools/common"
)

// RegisterArchiveTools registers the mail archive tools with the MCP server
func RegisterArchiveTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	findSeriesTool := mcp.NewTool("notmuch_find_series",
		mcp.WithDescription("Find patch series in the mail archive. Returns one line per series: thread ID and subject, tab-separated."),
		mcp.WithString("filter",
			mcp.Required(),
			mcp.Description("Notmuch search filter (e.g., 'from:jane@example.com', 'tag:patches and date:2024-05-01..')"),
		),
	)

	s.AddTool(findSeriesTool, common.InstrumentedToolHandlerWithOperation(
		"notmuch_find_series", instrumentation.OperationSearch, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleFindSeries(ctx, request, sc)
		}))

	showThreadTool := mcp.NewTool("notmuch_show_thread",
		mcp.WithDescription("Render one or more mail threads as text, one block per message with headers, tags and body."),
		mcp.WithString("threadIds",
			mcp.Required(),
			mcp.Description("Thread ID (string) or array of thread IDs to render"),
		),
		mcp.WithBoolean("patchesOnly",
			mcp.Description("Only include the cover letter and the patches of the series, dropping review discussion (default: false)"),
		),
	)

	s.AddTool(showThreadTool, common.InstrumentedToolHandlerWithOperation(
		"notmuch_show_thread", instrumentation.OperationShow, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleShowThread(ctx, request, sc)
		}))

	return nil
}

func handleFindSeries(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	filter, _ := args["filter"].(string)

	// ErrEmptyFilter is checked before the store is opened so that a bad
	// request never spawns a notmuch process.
	if strings.TrimSpace(filter) == "" {
		return mcp.NewToolResultError(archive.ErrEmptyFilter.Error()), nil
	}

	store, err := sc.OpenStore()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to open mail index: %v", err)), nil
	}
	defer store.Close()

	series, err := archive.FindSeries(ctx, store, filter)
	if err != nil {
		if errors.Is(err, archive.ErrEmptyFilter) || errors.Is(err, archive.ErrSearchFailed) {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("%v: %v", archive.ErrInternal, err)), nil
	}

	lines := make([]string, 0, len(series))
	for _, s := range series {
		lines = append(lines, fmt.Sprintf("%s\t%s", s.ThreadID, s.Subject))
	}

	return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
}

func handleShowThread(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	threadIDs, err := batch.ParseStringOrArray(args["threadIds"], "threadIds")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	mode := archive.ModeAll
	if patchesOnly, ok := args["patchesOnly"].(bool); ok && patchesOnly {
		mode = archive.ModePatchesAndCover
	}

	store, err := sc.OpenStore()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to open mail index: %v", err)), nil
	}
	defer store.Close()

	walker := archive.NewWalker(store, nil)

	// A thread that cannot be retrieved renders as an empty block rather
	// than failing the whole batch.
	if len(threadIDs) == 1 {
		entries := walker.RetrieveThread(ctx, threadIDs[0], mode)
		return mcp.NewToolResultText(archive.Render(entries)), nil
	}

	results := batch.ProcessBatch(threadIDs, func(threadID string) (string, error) {
		entries := walker.RetrieveThread(ctx, threadID, mode)
		return archive.Render(entries), nil
	})

	return mcp.NewToolResultText(batch.FormatResults(results)), nil
}
