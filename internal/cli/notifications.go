package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	unraid "github.com/jamesprial/unraid-api"
)

var (
	notificationsJSON     bool
	notificationsArchived bool
	notificationsLimit    int
)

var notificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "List server notifications",
	Long: `List notifications.

Examples:
  unraidctl notifications               List unread notifications
  unraidctl notifications --archived    List archived notifications
  unraidctl notifications archive <id>  Archive a notification`,
	RunE: runNotifications,
}

var notificationsArchiveCmd = &cobra.Command{
	Use:   "archive <id>",
	Short: "Archive a notification",
	Args:  cobra.ExactArgs(1),
	RunE:  runNotificationsArchive,
}

func init() {
	notificationsCmd.Flags().BoolVar(&notificationsJSON, "json", false, "Output as JSON")
	notificationsCmd.Flags().BoolVar(&notificationsArchived, "archived", false, "List archived instead of unread")
	notificationsCmd.Flags().IntVar(&notificationsLimit, "limit", 50, "Maximum notifications to list")
	notificationsCmd.AddCommand(notificationsArchiveCmd)
	rootCmd.AddCommand(notificationsCmd)
}

func runNotifications(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout())
	defer cancel()

	notificationType := unraid.NotificationTypeUnread
	if notificationsArchived {
		notificationType = unraid.NotificationTypeArchive
	}

	overview, list, err := client.GetNotifications(ctx, notificationType, notificationsLimit, 0)
	if err != nil {
		return err
	}

	if notificationsJSON {
		output, _ := json.MarshalIndent(map[string]any{
			"overview": overview,
			"list":     list,
		}, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	fmt.Printf("Unread: %d (%d alerts, %d warnings)  Archived: %d\n\n",
		overview.Unread.Total, overview.Unread.Alert, overview.Unread.Warning,
		overview.Archive.Total)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "IMPORTANCE\tTITLE\tSUBJECT\tID")
	for _, n := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", n.Importance, n.Title, n.Subject, n.ID)
	}
	return w.Flush()
}

func runNotificationsArchive(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout())
	defer cancel()

	if _, err := client.ArchiveNotification(ctx, args[0]); err != nil {
		return err
	}
	fmt.Printf("archived %s\n", args[0])
	return nil
}
