package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	vmsJSON      bool
	vmsStopForce bool
)

var vmsCmd = &cobra.Command{
	Use:   "vms",
	Short: "Manage virtual machines",
	Long: `List and control virtual machines.

Examples:
  unraidctl vms                     List VMs
  unraidctl vms start <id>          Start a VM
  unraidctl vms stop <id>           Graceful shutdown
  unraidctl vms stop <id> --force   Hard power-off`,
	RunE: runVMsList,
}

var vmsStartCmd = &cobra.Command{
	Use:   "start <id>",
	Short: "Start a VM",
	Args:  cobra.ExactArgs(1),
	RunE:  runVMsStart,
}

var vmsStopCmd = &cobra.Command{
	Use:   "stop <id>",
	Short: "Stop a VM",
	Args:  cobra.ExactArgs(1),
	RunE:  runVMsStop,
}

func init() {
	vmsCmd.Flags().BoolVar(&vmsJSON, "json", false, "Output as JSON")
	vmsStopCmd.Flags().BoolVar(&vmsStopForce, "force", false, "Force power-off without guest cooperation")
	vmsCmd.AddCommand(vmsStartCmd)
	vmsCmd.AddCommand(vmsStopCmd)
	rootCmd.AddCommand(vmsCmd)
}

func runVMsList(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout())
	defer cancel()

	vms, err := client.GetVMs(ctx)
	if err != nil {
		return err
	}

	if vmsJSON {
		output, _ := json.MarshalIndent(vms, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSTATE\tID")
	for _, vm := range vms {
		fmt.Fprintf(w, "%s\t%s\t%s\n", vm.Name, vm.State, vm.ID)
	}
	return w.Flush()
}

func runVMsStart(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout())
	defer cancel()

	if _, err := client.StartVM(ctx, args[0]); err != nil {
		return err
	}
	fmt.Printf("started %s\n", args[0])
	return nil
}

func runVMsStop(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout())
	defer cancel()

	if vmsStopForce {
		_, err = client.ForceStopVM(ctx, args[0])
	} else {
		_, err = client.StopVM(ctx, args[0])
	}
	if err != nil {
		return err
	}
	fmt.Printf("stopped %s\n", args[0])
	return nil
}
