package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// envCmd fetches and prints the service environment pills.
func envCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Show service environment and feature flags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return doEnv(cmd.Context())
		},
	}
}

func doEnv(ctx context.Context) error {
	if err := appCtx.Sessions.LoadEnv(ctx, appCtx.Workspace); err != nil {
		return err
	}
	fmt.Print(renderEnv(appCtx.Workspace.Env))
	return nil
}
