package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var metricsJSON bool

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Show CPU and memory utilization",
	RunE:  runMetrics,
}

func init() {
	metricsCmd.Flags().BoolVar(&metricsJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(metricsCmd)
}

func runMetrics(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout())
	defer cancel()

	metrics, err := client.GetMetrics(ctx)
	if err != nil {
		return err
	}

	if metricsJSON {
		output, _ := json.MarshalIndent(metrics, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	fmt.Printf("CPU:     %5.1f%%\n", metrics.CPU.PercentTotal)
	fmt.Printf("Memory:  %5.1f%%  (%s / %s)\n",
		metrics.Memory.PercentTotal,
		formatBytes(metrics.Memory.Used),
		formatBytes(metrics.Memory.Total))
	if metrics.Memory.SwapTotal > 0 {
		fmt.Printf("Swap:    %5.1f%%  (%s / %s)\n",
			metrics.Memory.PercentSwapTotal,
			formatBytes(metrics.Memory.SwapUsed),
			formatBytes(metrics.Memory.SwapTotal))
	}
	return nil
}

// formatBytes renders a byte count using binary units.
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

// formatKilobytes renders a kilobyte count using binary units.
func formatKilobytes(kb int64) string {
	return formatBytes(kb * 1024)
}
