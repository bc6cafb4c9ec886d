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

var arrayJSON bool

var arrayCmd = &cobra.Command{
	Use:   "array",
	Short: "Show array state and disks",
	Long: `Display array state, capacity, parity status, and per-disk health.

Reads go through the array endpoint, which does not wake sleeping disks;
standby disks show "-" for temperature.`,
	RunE: runArray,
}

func init() {
	arrayCmd.Flags().BoolVar(&arrayJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(arrayCmd)
}

func runArray(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout())
	defer cancel()

	array, err := client.GetArrayStatus(ctx)
	if err != nil {
		return err
	}

	if arrayJSON {
		output, _ := json.MarshalIndent(array, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	fmt.Printf("State:     %s\n", array.State)
	fmt.Printf("Capacity:  %s / %s (%.1f%% used)\n",
		formatKilobytes(array.Capacity.Kilobytes.Used),
		formatKilobytes(array.Capacity.Kilobytes.Total),
		array.Capacity.UsagePercent())
	if array.ParityCheckStatus.Running || array.ParityCheckStatus.Paused {
		fmt.Printf("Parity:    %s (%d%%, %d errors)\n",
			array.ParityCheckStatus.Status,
			array.ParityCheckStatus.Progress,
			array.ParityCheckStatus.Errors)
	}
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DISK\tTYPE\tSTATUS\tTEMP\tSIZE")
	for _, d := range array.Parities {
		printDiskRow(w, d)
	}
	for _, d := range array.Disks {
		printDiskRow(w, d)
	}
	for _, d := range array.Caches {
		printDiskRow(w, d)
	}
	return w.Flush()
}

func printDiskRow(w *tabwriter.Writer, d unraid.ArrayDisk) {
	temp := "-"
	if d.Temp != nil {
		temp = fmt.Sprintf("%d°C", *d.Temp)
	}
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", d.Name, d.Type, d.Status, temp, formatKilobytes(d.Size))
}
