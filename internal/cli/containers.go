package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var containersJSON bool

var containersCmd = &cobra.Command{
	Use:   "containers",
	Short: "Manage Docker containers",
	Long: `List and control Docker containers.

Examples:
  unraidctl containers                 List containers
  unraidctl containers start <id>      Start a container
  unraidctl containers stop <id>       Stop a container`,
	RunE: runContainersList,
}

var containersStartCmd = &cobra.Command{
	Use:   "start <id>",
	Short: "Start a container",
	Args:  cobra.ExactArgs(1),
	RunE:  runContainersStart,
}

var containersStopCmd = &cobra.Command{
	Use:   "stop <id>",
	Short: "Stop a container",
	Args:  cobra.ExactArgs(1),
	RunE:  runContainersStop,
}

func init() {
	containersCmd.Flags().BoolVar(&containersJSON, "json", false, "Output as JSON")
	containersCmd.AddCommand(containersStartCmd)
	containersCmd.AddCommand(containersStopCmd)
	rootCmd.AddCommand(containersCmd)
}

func runContainersList(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout())
	defer cancel()

	containers, err := client.GetContainers(ctx)
	if err != nil {
		return err
	}

	if containersJSON {
		output, _ := json.MarshalIndent(containers, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSTATE\tIMAGE\tID")
	for _, c := range containers {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.Name(), c.State, c.Image, c.ID)
	}
	return w.Flush()
}

func runContainersStart(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout())
	defer cancel()

	if _, err := client.StartContainer(ctx, args[0]); err != nil {
		return err
	}
	fmt.Printf("started %s\n", args[0])
	return nil
}

func runContainersStop(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout())
	defer cancel()

	if _, err := client.StopContainer(ctx, args[0]); err != nil {
		return err
	}
	fmt.Printf("stopped %s\n", args[0])
	return nil
}
