package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"qsvault/internal/report"
	"qsvault/internal/services/transaction"
)

// run: activate the gate, compute one report, print and optionally export it.
func runCmd() *cobra.Command {
	var (
		sender   string
		receiver string
		amount   string
		limit    int
		quiet    bool
		out      string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one transaction and print its report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			amt, err := transaction.ParseAmount(amount)
			if err != nil {
				return err
			}

			appCtx.Gate.Activate()
			defer appCtx.Gate.Deactivate()

			rep, err := appCtx.Runner.Run(sender, receiver, amt)
			if err != nil {
				return err
			}

			if !quiet {
				if err := (report.Printer{W: cmd.OutOrStdout(), Limit: limit}).Print(rep); err != nil {
					return err
				}
			}
			if out != "" {
				if err := appCtx.Reports.SaveReport(out, rep); err != nil {
					return fmt.Errorf("export report: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "exported %s\n", out)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&sender, "sender", "", "sending party")
	cmd.Flags().StringVar(&receiver, "receiver", "", "receiving party")
	cmd.Flags().StringVar(&amount, "amount", "", "positive integer amount")
	cmd.Flags().IntVar(&limit, "limit", 10, "sample rows to print (0 prints all)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not print the report")
	cmd.Flags().StringVarP(&out, "out", "o", "", "export the report as JSON to this path")
	cmd.Flags().DurationVar(&clockStep, "clock-step", 0, "advance a synthetic clock by this much per read instead of using the wall clock")
	_ = cmd.MarkFlagRequired("sender")
	_ = cmd.MarkFlagRequired("receiver")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}
