package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// copyCmd copies one drafted section to the clipboard.
func copyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "copy <section>",
		Short: "Copy a drafted section to the clipboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return doCopy(args[0])
		},
	}
}

// copyAllCmd copies all drafted sections to the clipboard.
func copyAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "copy-all",
		Short: "Copy every drafted section to the clipboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return doCopyAll()
		},
	}
}

func doCopy(sectionID string) error {
	if err := appCtx.Drafts.CopySection(appCtx.Workspace, sectionID); err != nil {
		return err
	}
	fmt.Printf("Copied %q to clipboard.\n", sectionID)
	return nil
}

func doCopyAll() error {
	if err := appCtx.Drafts.CopyAll(appCtx.Workspace); err != nil {
		return err
	}
	fmt.Println("All drafted sections copied to clipboard.")
	return nil
}
