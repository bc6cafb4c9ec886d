// Package mcptools exposes the Unraid GraphQL API as MCP tools. Every tool is
// wired to a shared client, so one session and one resolved endpoint serve
// all of them.
package mcptools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	unraid "github.com/jamesprial/unraid-api"
	"github.com/jamesprial/unraid-api/internal/tools"
)

// SystemTools returns registrations for the read-only system tools.
func SystemTools(client *unraid.Client) []tools.Registration {
	return []tools.Registration{
		toolSystemInfo(client),
		toolSystemMetrics(client),
		toolSystemVersion(client),
		toolUPSStatus(client),
	}
}

func toolSystemInfo(client *unraid.Client) tools.Registration {
	tool := mcp.NewTool("system_info",
		mcp.WithDescription("Get Unraid system information: OS, CPU, memory layout, and versions."),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		info, err := client.GetSystemInfo(ctx)
		if err != nil {
			return tools.ClientErrorResult(err), nil
		}
		return tools.JSONResult(info), nil
	}

	return tools.Registration{Tool: tool, Handler: handler}
}

func toolSystemMetrics(client *unraid.Client) tools.Registration {
	tool := mcp.NewTool("system_metrics",
		mcp.WithDescription("Get current CPU and memory utilization."),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		metrics, err := client.GetMetrics(ctx)
		if err != nil {
			return tools.ClientErrorResult(err), nil
		}
		return tools.JSONResult(metrics), nil
	}

	return tools.Registration{Tool: tool, Handler: handler}
}

func toolSystemVersion(client *unraid.Client) tools.Registration {
	tool := mcp.NewTool("system_version",
		mcp.WithDescription("Get the Unraid OS and API version strings."),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		versions, err := client.GetVersion(ctx)
		if err != nil {
			return tools.ClientErrorResult(err), nil
		}
		return tools.JSONResult(versions), nil
	}

	return tools.Registration{Tool: tool, Handler: handler}
}

func toolUPSStatus(client *unraid.Client) tools.Registration {
	tool := mcp.NewTool("ups_status",
		mcp.WithDescription("Get status of attached UPS devices: battery charge, runtime, and load."),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		devices, err := client.GetUPSDevices(ctx)
		if err != nil {
			return tools.ClientErrorResult(err), nil
		}
		return tools.JSONResult(devices), nil
	}

	return tools.Registration{Tool: tool, Handler: handler}
}
