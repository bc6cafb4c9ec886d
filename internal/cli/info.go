package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var infoJSON bool

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show server identity and versions",
	Long: `Display hardware identity, OS, CPU, versions, and license state.

Examples:
  unraidctl info          Show server info
  unraidctl info --json   Output as JSON`,
	RunE: runInfo,
}

func init() {
	infoCmd.Flags().BoolVar(&infoJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout())
	defer cancel()

	info, err := client.GetServerInfo(ctx)
	if err != nil {
		return err
	}

	if infoJSON {
		output, _ := json.MarshalIndent(info, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	fmt.Printf("Hostname:     %s\n", info.OS.Hostname)
	fmt.Printf("Model:        %s %s\n", info.System.Manufacturer, info.System.Model)
	fmt.Printf("CPU:          %s (%d cores / %d threads)\n", info.CPU.Brand, info.CPU.Cores, info.CPU.Threads)
	fmt.Printf("OS:           %s %s (%s)\n", info.OS.Distro, info.OS.Release, info.OS.Kernel)
	fmt.Printf("Unraid:       %s\n", info.Versions.Unraid)
	fmt.Printf("API:          %s\n", info.Versions.API)
	fmt.Printf("License:      %s (%s)\n", info.Registration.Type, info.Registration.State)
	if info.Server.LanIP != "" {
		fmt.Printf("LAN IP:       %s\n", info.Server.LanIP)
	}
	return nil
}
