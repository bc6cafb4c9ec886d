package unraid

import (
	"context"
	"encoding/json"
	"fmt"
)

// GetNotificationOverview returns notification counts by importance for both
// unread and archived notifications.
func (c *Client) GetNotificationOverview(ctx context.Context) (NotificationOverview, error) {
	const q = `
		query {
			notifications {
				overview {
					unread { info warning alert total }
					archive { info warning alert total }
				}
			}
		}`
	raw, err := c.Execute(ctx, q, nil)
	if err != nil {
		return NotificationOverview{}, err
	}
	var resp struct {
		Notifications struct {
			Overview NotificationOverview `json:"overview"`
		} `json:"notifications"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return NotificationOverview{}, fmt.Errorf("unraid: decode notification overview: %w", err)
	}
	return resp.Notifications.Overview, nil
}

// GetNotifications returns a page of notifications plus the overview counts.
// notificationType is NotificationTypeUnread or NotificationTypeArchive.
func (c *Client) GetNotifications(ctx context.Context, notificationType string, limit, offset int) (NotificationOverview, []Notification, error) {
	const q = `
		query GetNotifications(
			$type: NotificationType!
			$limit: Int!
			$offset: Int!
		) {
			notifications {
				overview {
					unread { info warning alert total }
					archive { info warning alert total }
				}
				list(filter: { type: $type, limit: $limit, offset: $offset }) {
					id
					title
					subject
					description
					importance
					timestamp
				}
			}
		}`
	raw, err := c.Execute(ctx, q, map[string]any{
		"type":   notificationType,
		"limit":  limit,
		"offset": offset,
	})
	if err != nil {
		return NotificationOverview{}, nil, err
	}
	var resp struct {
		Notifications struct {
			Overview NotificationOverview `json:"overview"`
			List     []Notification       `json:"list"`
		} `json:"notifications"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return NotificationOverview{}, nil, fmt.Errorf("unraid: decode notifications: %w", err)
	}
	return resp.Notifications.Overview, resp.Notifications.List, nil
}

// ArchiveNotification archives a notification.
func (c *Client) ArchiveNotification(ctx context.Context, notificationID string) (map[string]any, error) {
	const m = `
		mutation ArchiveNotification($id: PrefixedID!) {
			notifications {
				archive(id: $id) {
					id
					title
				}
			}
		}`
	return c.Mutate(ctx, m, map[string]any{"id": notificationID})
}

// UnarchiveNotification marks an archived notification as unread again.
func (c *Client) UnarchiveNotification(ctx context.Context, notificationID string) (map[string]any, error) {
	const m = `
		mutation UnarchiveNotification($id: PrefixedID!) {
			notifications {
				unread(id: $id) {
					id
					title
				}
			}
		}`
	return c.Mutate(ctx, m, map[string]any{"id": notificationID})
}

// DeleteNotification deletes a notification.
func (c *Client) DeleteNotification(ctx context.Context, notificationID string) (map[string]any, error) {
	const m = `
		mutation DeleteNotification($id: PrefixedID!) {
			notifications {
				delete(id: $id)
			}
		}`
	return c.Mutate(ctx, m, map[string]any{"id": notificationID})
}

// ArchiveAllNotifications archives every unread notification.
func (c *Client) ArchiveAllNotifications(ctx context.Context) (map[string]any, error) {
	const m = `
		mutation ArchiveAllNotifications {
			notifications {
				archiveAll
			}
		}`
	return c.Mutate(ctx, m, nil)
}

// DeleteAllNotifications deletes every archived notification.
func (c *Client) DeleteAllNotifications(ctx context.Context) (map[string]any, error) {
	const m = `
		mutation DeleteAllNotifications {
			notifications {
				deleteAll
			}
		}`
	return c.Mutate(ctx, m, nil)
}
