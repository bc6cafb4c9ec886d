package mcptools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	unraid "github.com/jamesprial/unraid-api"
	"github.com/jamesprial/unraid-api/internal/tools"
)

// NotificationTools returns registrations for the notification tools.
func NotificationTools(client *unraid.Client) []tools.Registration {
	return []tools.Registration{
		toolNotificationOverview(client),
		toolNotificationList(client),
		toolNotificationArchive(client),
	}
}

func toolNotificationOverview(client *unraid.Client) tools.Registration {
	tool := mcp.NewTool("notification_overview",
		mcp.WithDescription("Get notification counts by importance for unread and archived notifications."),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		overview, err := client.GetNotificationOverview(ctx)
		if err != nil {
			return tools.ClientErrorResult(err), nil
		}
		return tools.JSONResult(overview), nil
	}

	return tools.Registration{Tool: tool, Handler: handler}
}

func toolNotificationList(client *unraid.Client) tools.Registration {
	tool := mcp.NewTool("notification_list",
		mcp.WithDescription("List notifications."),
		mcp.WithString("type",
			mcp.Description("Notification type: UNREAD or ARCHIVE (default: UNREAD)"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum notifications to return (default: 50)"),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		notificationType := req.GetString("type", unraid.NotificationTypeUnread)
		limit := req.GetInt("limit", 50)

		_, list, err := client.GetNotifications(ctx, notificationType, limit, 0)
		if err != nil {
			return tools.ClientErrorResult(err), nil
		}
		return tools.JSONResult(list), nil
	}

	return tools.Registration{Tool: tool, Handler: handler}
}

func toolNotificationArchive(client *unraid.Client) tools.Registration {
	tool := mcp.NewTool("notification_archive",
		mcp.WithDescription("Archive a notification by ID."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Notification ID (PrefixedID from notification_list)"),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")
		if id == "" {
			return tools.ErrorResult("id is required"), nil
		}
		result, err := client.ArchiveNotification(ctx, id)
		if err != nil {
			return tools.ClientErrorResult(err), nil
		}
		return tools.JSONResult(result), nil
	}

	return tools.Registration{Tool: tool, Handler: handler}
}
