package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var sharesJSON bool

var sharesCmd = &cobra.Command{
	Use:   "shares",
	Short: "List user shares",
	RunE:  runShares,
}

func init() {
	sharesCmd.Flags().BoolVar(&sharesJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(sharesCmd)
}

func runShares(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout())
	defer cancel()

	shares, err := client.GetShares(ctx)
	if err != nil {
		return err
	}

	if sharesJSON {
		output, _ := json.MarshalIndent(shares, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tUSED\tFREE\tCOMMENT")
	for _, s := range shares {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			s.Name, formatKilobytes(s.Used), formatKilobytes(s.Free), s.Comment)
	}
	return w.Flush()
}
