package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"proposer/internal/domain"
)

// checklistCmd re-fetches and prints the session checklist.
func checklistCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checklist",
		Short: "Fetch the session checklist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return doChecklist(cmd.Context())
		},
	}
}

func doChecklist(ctx context.Context) error {
	ws := appCtx.Workspace
	if ws.Session.ID == "" {
		return domain.ErrNoSession
	}
	if err := appCtx.Sessions.LoadChecklist(ctx, ws); err != nil {
		return err
	}
	fmt.Print(renderChecklist(ws))
	return nil
}
