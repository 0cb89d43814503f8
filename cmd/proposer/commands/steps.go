package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"proposer/internal/workflow"
)

// stepsCmd prints the workflow rail.
func stepsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "steps",
		Short: "Show workflow step status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print(renderSteps(appCtx.Workspace))
			return nil
		},
	}
}

// gotoCmd navigates to a workflow step.
func gotoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "goto <step>",
		Short: "Navigate to a workflow step",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			step, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("step must be a number: %w", err)
			}
			doGoto(step)
			return nil
		},
	}
}

func doGoto(step int) {
	workflow.Navigate(&appCtx.Workspace.Workflow, step)
	fmt.Print(renderSteps(appCtx.Workspace))
}
