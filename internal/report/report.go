package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"qsvault/internal/crypto"
	"qsvault/internal/domain"
)

// Fingerprint returns the short fingerprint of the report's JSON encoding.
func Fingerprint(r domain.TransactionReport) (domain.Fingerprint, error) {
	raw, err := json.Marshal(r)
	if err != nil {
		return "", err
	}
	return domain.Fingerprint(crypto.Fingerprint(raw)), nil
}

// Printer writes a human-readable report summary.
// Limit caps the number of sample rows; zero or less prints all of them.
type Printer struct {
	W     io.Writer
	Limit int
}

// Print writes r to p.W.
func (p Printer) Print(r domain.TransactionReport) error {
	fp, err := Fingerprint(r)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(p.W, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Report:\t%s\n", r.ID)
	fmt.Fprintf(tw, "Fingerprint:\t%s\n", fp)
	fmt.Fprintf(tw, "Profile:\t%s\n", r.Profile)
	fmt.Fprintf(tw, "Sender:\t%s\n", r.Sender)
	fmt.Fprintf(tw, "Receiver:\t%s\n", r.Receiver)
	fmt.Fprintf(tw, "Amount:\t%d\n", r.Amount)
	fmt.Fprintf(tw, "Timestamp:\t%s\n", r.Timestamp.UTC().Format(time.RFC3339Nano))
	fmt.Fprintf(tw, "Samples:\t%d\n", len(r.Samples))
	fmt.Fprintf(tw, "Failures:\t%d\n", len(r.Failures))
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(r.Samples) > 0 {
		shown := r.Samples
		if p.Limit > 0 && len(shown) > p.Limit {
			shown = shown[:p.Limit]
		}
		fmt.Fprintln(p.W)
		tw = tabwriter.NewWriter(p.W, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "INDEX\tSTATE\tPOWER\tFREQUENCY\tFRACTION")
		for _, s := range shown {
			fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\n",
				s.Index, s.StateCode, s.Power.String(), s.Frequency.String(), s.Fraction.String())
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		if rest := len(r.Samples) - len(shown); rest > 0 {
			fmt.Fprintf(p.W, "... %d more\n", rest)
		}
	}

	if len(r.Failures) > 0 {
		fmt.Fprintln(p.W)
		for _, f := range r.Failures {
			fmt.Fprintf(p.W, "failed index=%d: %s\n", f.Index, f.Reason)
		}
	}
	return nil
}
