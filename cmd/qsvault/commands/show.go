package commands

import (
	"github.com/spf13/cobra"

	"qsvault/internal/report"
)

// show <file>: print an exported report, opening it if sealed.
func showCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Print an exported report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := appCtx.Reports.LoadReport(args[0])
			if err != nil {
				return err
			}
			return report.Printer{W: cmd.OutOrStdout(), Limit: limit}.Print(rep)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "sample rows to print (0 prints all)")
	return cmd
}
