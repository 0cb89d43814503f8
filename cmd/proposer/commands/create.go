package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"proposer/internal/domain"
)

// createCmd starts a new proposal run and loads its checklist.
func createCmd() *cobra.Command {
	var workflowType string
	var grant string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a proposal run and load the grant-aware checklist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return doCreate(cmd.Context(), workflowType, grant)
		},
	}
	cmd.Flags().StringVar(&workflowType, "workflow", string(domain.WorkflowGrant), "workflow type (grant|other)")
	cmd.Flags().StringVar(&grant, "grant", string(domain.GrantEDG), "grant type (EDG|PSG)")
	return cmd
}

func doCreate(ctx context.Context, workflowType, grant string) error {
	wt := domain.WorkflowType(workflowType)
	if wt != domain.WorkflowGrant && wt != domain.WorkflowOther {
		return fmt.Errorf("unknown workflow type %q", workflowType)
	}
	g := domain.Grant(grant)
	if g != domain.GrantEDG && g != domain.GrantPSG {
		return fmt.Errorf("unknown grant %q", grant)
	}

	ws := appCtx.Workspace
	if err := appCtx.Sessions.Create(ctx, ws, wt, g); err != nil {
		return err
	}
	fmt.Printf("Session created: %s\n\n", ws.Session.ID)
	fmt.Print(renderChecklist(ws))
	fmt.Print(renderSteps(ws))
	return nil
}
