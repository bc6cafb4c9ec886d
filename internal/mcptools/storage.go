package mcptools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	unraid "github.com/jamesprial/unraid-api"
	"github.com/jamesprial/unraid-api/internal/tools"
)

// StorageTools returns registrations for the array and share tools.
func StorageTools(client *unraid.Client) []tools.Registration {
	return []tools.Registration{
		toolArrayStatus(client),
		toolShareList(client),
		toolParityHistory(client),
	}
}

func toolArrayStatus(client *unraid.Client) tools.Registration {
	tool := mcp.NewTool("array_status",
		mcp.WithDescription("Get array state, capacity, parity check status, and per-disk health. Does not wake sleeping disks."),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		array, err := client.GetArrayStatus(ctx)
		if err != nil {
			return tools.ClientErrorResult(err), nil
		}
		return tools.JSONResult(array), nil
	}

	return tools.Registration{Tool: tool, Handler: handler}
}

func toolShareList(client *unraid.Client) tools.Registration {
	tool := mcp.NewTool("share_list",
		mcp.WithDescription("List user shares with usage figures in kilobytes."),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		shares, err := client.GetShares(ctx)
		if err != nil {
			return tools.ClientErrorResult(err), nil
		}
		return tools.JSONResult(shares), nil
	}

	return tools.Registration{Tool: tool, Handler: handler}
}

func toolParityHistory(client *unraid.Client) tools.Registration {
	tool := mcp.NewTool("parity_history",
		mcp.WithDescription("Get past parity check runs with duration, speed, and error counts."),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		runs, err := client.GetParityHistory(ctx)
		if err != nil {
			return tools.ClientErrorResult(err), nil
		}
		return tools.JSONResult(runs), nil
	}

	return tools.Registration{Tool: tool, Handler: handler}
}
