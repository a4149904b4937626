package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"qsvault/internal/profile"
)

func profilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List built-in profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tPOWER\tFREQUENCY\tFRACTION\tMODULUS\tRANGE")
			for _, p := range profile.Presets() {
				marker := ""
				if p.Name == appCtx.Profile.Name {
					marker = " *"
				}
				freq := p.Frequency.Base.String()
				if p.Frequency.Reciprocal {
					freq = "1/" + freq
				}
				frac := fmt.Sprintf("%s*%s", p.Fraction.CoefficientA, p.Fraction.CoefficientB)
				if p.Fraction.UseInput {
					frac = fmt.Sprintf("%s*x", p.Fraction.CoefficientA)
				}
				fmt.Fprintf(tw, "%s%s\t%s*x\t%s\t%s/%s\t%d\t[%d,%d)\n",
					p.Name, marker,
					p.Power.Factor(),
					freq,
					frac, p.Fraction.Normalizer,
					p.Reducer.Modulus,
					p.Range.Start, p.Range.End,
				)
			}
			return tw.Flush()
		},
	}
}
