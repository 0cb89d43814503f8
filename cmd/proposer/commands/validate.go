package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// validateCmd runs the non-blocking eligibility checks.
func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Run eligibility checks (non-blocking)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return doValidate(cmd.Context())
		},
	}
}

func doValidate(ctx context.Context) error {
	checks, err := appCtx.Facts.Validate(ctx, appCtx.Workspace)
	if err != nil {
		return err
	}
	fmt.Print(renderChecks(checks))
	fmt.Print(renderSteps(appCtx.Workspace))
	return nil
}
