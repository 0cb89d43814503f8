package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"proposer/internal/domain"
	factssvc "proposer/internal/services/facts"
)

// factsCmd saves the SME snapshot.
func factsCmd() *cobra.Command {
	var equity, turnover, headcount int
	var extra string

	cmd := &cobra.Command{
		Use:   "facts",
		Short: "Save the SME snapshot (merged into prior facts)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := domain.Facts{}
			if cmd.Flags().Changed("equity") {
				payload["local_equity_pct"] = equity
			}
			if cmd.Flags().Changed("turnover") {
				payload["turnover"] = turnover
			}
			if cmd.Flags().Changed("headcount") {
				payload["headcount"] = headcount
			}
			return doSaveFacts(cmd.Context(), payload, extra)
		},
	}
	cmd.Flags().IntVar(&equity, "equity", 0, "local equity percentage")
	cmd.Flags().IntVar(&turnover, "turnover", 0, "annual turnover in SGD")
	cmd.Flags().IntVar(&headcount, "headcount", 0, "employee headcount")
	cmd.Flags().StringVar(&extra, "extra", "", "extra facts as JSON or key:value lines")
	return cmd
}

func doSaveFacts(ctx context.Context, payload domain.Facts, extra string) error {
	parsed, outcome := factssvc.ParseExtra(extra)
	switch outcome {
	case factssvc.ExtraUnparsed:
		return fmt.Errorf("extra facts are neither JSON nor key:value lines")
	case factssvc.ExtraJSON, factssvc.ExtraKeyValue:
		payload["extra"] = parsed
	}

	if len(payload) == 0 {
		fmt.Println("Nothing to save.")
		return nil
	}
	if err := appCtx.Facts.Save(ctx, appCtx.Workspace, payload); err != nil {
		return err
	}
	fmt.Printf("Saved %d fact(s).\n", len(payload))
	return nil
}
