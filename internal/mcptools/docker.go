package mcptools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	unraid "github.com/jamesprial/unraid-api"
	"github.com/jamesprial/unraid-api/internal/tools"
)

// DockerTools returns registrations for the Docker container tools.
func DockerTools(client *unraid.Client) []tools.Registration {
	return []tools.Registration{
		toolContainerList(client),
		toolContainerStart(client),
		toolContainerStop(client),
		toolContainerRestartable(client),
		toolDockerNetworkList(client),
	}
}

func toolContainerList(client *unraid.Client) tools.Registration {
	tool := mcp.NewTool("container_list",
		mcp.WithDescription("List Docker containers with state, image, and port mappings."),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		containers, err := client.GetContainers(ctx)
		if err != nil {
			return tools.ClientErrorResult(err), nil
		}
		return tools.JSONResult(containers), nil
	}

	return tools.Registration{Tool: tool, Handler: handler}
}

func toolContainerStart(client *unraid.Client) tools.Registration {
	tool := mcp.NewTool("container_start",
		mcp.WithDescription("Start a Docker container by ID."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Container ID (PrefixedID from container_list)"),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")
		if id == "" {
			return tools.ErrorResult("id is required"), nil
		}
		result, err := client.StartContainer(ctx, id)
		if err != nil {
			return tools.ClientErrorResult(err), nil
		}
		return tools.JSONResult(result), nil
	}

	return tools.Registration{Tool: tool, Handler: handler}
}

func toolContainerStop(client *unraid.Client) tools.Registration {
	tool := mcp.NewTool("container_stop",
		mcp.WithDescription("Stop a Docker container by ID."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Container ID (PrefixedID from container_list)"),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")
		if id == "" {
			return tools.ErrorResult("id is required"), nil
		}
		result, err := client.StopContainer(ctx, id)
		if err != nil {
			return tools.ClientErrorResult(err), nil
		}
		return tools.JSONResult(result), nil
	}

	return tools.Registration{Tool: tool, Handler: handler}
}

func toolContainerRestartable(client *unraid.Client) tools.Registration {
	tool := mcp.NewTool("container_restart",
		mcp.WithDescription("Restart a Docker container by stopping and starting it."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Container ID (PrefixedID from container_list)"),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")
		if id == "" {
			return tools.ErrorResult("id is required"), nil
		}
		if _, err := client.StopContainer(ctx, id); err != nil {
			return tools.ClientErrorResult(fmt.Errorf("stop phase: %w", err)), nil
		}
		result, err := client.StartContainer(ctx, id)
		if err != nil {
			return tools.ClientErrorResult(fmt.Errorf("start phase: %w", err)), nil
		}
		return tools.JSONResult(result), nil
	}

	return tools.Registration{Tool: tool, Handler: handler}
}

func toolDockerNetworkList(client *unraid.Client) tools.Registration {
	tool := mcp.NewTool("docker_network_list",
		mcp.WithDescription("List Docker networks configured on the server."),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		networks, err := client.GetDockerNetworks(ctx)
		if err != nil {
			return tools.ClientErrorResult(err), nil
		}
		return tools.JSONResult(networks), nil
	}

	return tools.Registration{Tool: tool, Handler: handler}
}
