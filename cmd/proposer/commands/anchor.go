package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"proposer/internal/domain"
)

// anchorCmd saves the solution anchor and shared draft settings.
func anchorCmd() *cobra.Command {
	var style string
	var length, cap int

	cmd := &cobra.Command{
		Use:   "anchor <text>",
		Short: "Save the solution anchor used as the prompt for every section",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws := appCtx.Workspace
			settings := ws.SharedDraft
			if cmd.Flags().Changed("style") {
				settings.Style = style
			}
			if cmd.Flags().Changed("length") {
				settings.LengthLimit = length
			}
			if cmd.Flags().Changed("cap") {
				settings.EvidenceCharCap = cap
			}
			return doSaveAnchor(strings.Join(args, " "), settings)
		},
	}
	cmd.Flags().StringVar(&style, "style", "", "shared draft style")
	cmd.Flags().IntVar(&length, "length", 0, "shared length limit in words")
	cmd.Flags().IntVar(&cap, "cap", 0, "evidence character cap (0 = server default)")
	return cmd
}

func doSaveAnchor(anchor string, settings domain.DraftSettings) error {
	if strings.TrimSpace(anchor) == "" {
		return domain.ErrNoAnchor
	}
	if err := appCtx.Drafts.SaveAnchor(appCtx.Workspace, anchor, settings); err != nil {
		return err
	}
	fmt.Println("Anchor saved.")
	return nil
}
