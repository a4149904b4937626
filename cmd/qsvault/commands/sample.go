package commands

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// sample <index>: compute one index with a given elapsed time in seconds.
func sampleCmd() *cobra.Command {
	var elapsed string
	cmd := &cobra.Command{
		Use:   "sample <index>",
		Short: "Compute a single index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("index %q is not an integer", args[0])
			}
			dt, err := decimal.NewFromString(elapsed)
			if err != nil {
				return fmt.Errorf("elapsed %q is not a decimal", elapsed)
			}

			res := appCtx.Runner.Sample(idx, dt)
			if !res.OK() {
				return res.Failure
			}
			s := res.Sample
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "index:     %d\n", s.Index)
			fmt.Fprintf(w, "state:     %d\n", s.StateCode)
			fmt.Fprintf(w, "power:     %s\n", s.Power)
			fmt.Fprintf(w, "frequency: %s\n", s.Frequency)
			fmt.Fprintf(w, "fraction:  %s\n", s.Fraction)
			return nil
		},
	}
	cmd.Flags().StringVar(&elapsed, "elapsed", "1", "elapsed seconds passed to the frequency model")
	return cmd
}
