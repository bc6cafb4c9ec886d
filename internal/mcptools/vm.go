package mcptools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	unraid "github.com/jamesprial/unraid-api"
	"github.com/jamesprial/unraid-api/internal/tools"
)

// VMTools returns registrations for the virtual machine tools.
func VMTools(client *unraid.Client) []tools.Registration {
	return []tools.Registration{
		toolVMList(client),
		toolVMStart(client),
		toolVMStop(client),
	}
}

func toolVMList(client *unraid.Client) tools.Registration {
	tool := mcp.NewTool("vm_list",
		mcp.WithDescription("List virtual machines with their current state."),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		vms, err := client.GetVMs(ctx)
		if err != nil {
			return tools.ClientErrorResult(err), nil
		}
		return tools.JSONResult(vms), nil
	}

	return tools.Registration{Tool: tool, Handler: handler}
}

func toolVMStart(client *unraid.Client) tools.Registration {
	tool := mcp.NewTool("vm_start",
		mcp.WithDescription("Start a virtual machine by ID."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("VM ID (PrefixedID from vm_list)"),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")
		if id == "" {
			return tools.ErrorResult("id is required"), nil
		}
		result, err := client.StartVM(ctx, id)
		if err != nil {
			return tools.ClientErrorResult(err), nil
		}
		return tools.JSONResult(result), nil
	}

	return tools.Registration{Tool: tool, Handler: handler}
}

func toolVMStop(client *unraid.Client) tools.Registration {
	tool := mcp.NewTool("vm_stop",
		mcp.WithDescription("Gracefully shut down a virtual machine by ID. Set force for a hard power-off."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("VM ID (PrefixedID from vm_list)"),
		),
		mcp.WithBoolean("force",
			mcp.Description("Force power-off without guest cooperation (default: false)"),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")
		if id == "" {
			return tools.ErrorResult("id is required"), nil
		}
		var (
			result map[string]any
			err    error
		)
		if req.GetBool("force", false) {
			result, err = client.ForceStopVM(ctx, id)
		} else {
			result, err = client.StopVM(ctx, id)
		}
		if err != nil {
			return tools.ClientErrorResult(err), nil
		}
		return tools.JSONResult(result), nil
	}

	return tools.Registration{Tool: tool, Handler: handler}
}
