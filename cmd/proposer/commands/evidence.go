package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"proposer/internal/domain"
)

// evidenceCmd refreshes the server-side detection list.
func evidenceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "evidence",
		Short: "Refresh and show detected evidence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return doEvidence(cmd.Context())
		},
	}
}

func doEvidence(ctx context.Context) error {
	ws := appCtx.Workspace
	if ws.Session.ID == "" {
		return domain.ErrNoSession
	}
	if err := appCtx.Evidence.Refresh(ctx, ws, appCtx.Preview); err != nil {
		return err
	}
	if len(ws.EvidenceDetected) == 0 {
		fmt.Println("No evidence detected yet.")
	}
	for _, item := range ws.EvidenceDetected {
		fmt.Printf("%s  %s\n", doneStyle.Render(item.Label), dimStyle.Render(fmt.Sprintf("%d chars", item.Chars)))
		if item.Preview != "" {
			fmt.Printf("  %s\n", item.Preview)
		}
	}
	fmt.Println()
	fmt.Print(renderChecklist(ws))
	return nil
}
