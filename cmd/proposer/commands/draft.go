package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// draftCmd drafts one checklist section.
func draftCmd() *cobra.Command {
	var variant string
	var labels []string

	cmd := &cobra.Command{
		Use:   "draft <section>",
		Short: "Draft a single section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return doDraft(cmd.Context(), args[0], variant, labels)
		},
	}
	cmd.Flags().StringVar(&variant, "variant", "", "section variant")
	cmd.Flags().StringSliceVar(&labels, "evidence", nil, "evidence labels (empty = server defaults)")
	return cmd
}

// draftAllCmd drafts every checklist section sequentially.
func draftAllCmd() *cobra.Command {
	var labels []string

	cmd := &cobra.Command{
		Use:   "draft-all",
		Short: "Draft all sections sequentially, tolerating per-section failures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return doDraftAll(cmd.Context(), labels)
		},
	}
	cmd.Flags().StringSliceVar(&labels, "evidence", nil, "evidence labels (empty = server defaults)")
	return cmd
}

func doDraft(ctx context.Context, sectionID, variant string, labels []string) error {
	ws := appCtx.Workspace
	if len(labels) > 0 {
		ws.EvidenceSelected = labels
	}
	// Fill the variant from the checklist when the operator did not
	// pass one explicitly.
	if variant == "" {
		for _, task := range ws.Checklist.Drafts {
			if task.ID == sectionID {
				variant = task.SectionVariant
				break
			}
		}
	}

	result, err := appCtx.Drafts.Section(ctx, ws, sectionID, variant)
	if err != nil {
		return err
	}
	fmt.Printf("%s\n\n", titleStyle.Render(sectionID))
	fmt.Println(result.Output)
	fmt.Printf("\nFramework: %s  Score: %.1f", result.Framework, result.Evaluation.Score)
	if len(result.EvidenceUsed) > 0 {
		fmt.Printf("  Evidence: %v", result.EvidenceUsed)
	}
	fmt.Println()
	return nil
}

func doDraftAll(ctx context.Context, labels []string) error {
	ws := appCtx.Workspace
	if len(labels) > 0 {
		ws.EvidenceSelected = labels
	}

	res, err := appCtx.Drafts.All(ctx, ws)
	if err != nil {
		return err
	}
	for _, id := range res.Drafted {
		fmt.Printf("%s %s\n", doneStyle.Render("✓"), id)
	}
	for id, ferr := range res.Failed {
		fmt.Printf("%s %s: %v\n", errStyle.Render("✗"), id, ferr)
	}
	fmt.Println()
	fmt.Print(renderSteps(ws))
	return nil
}
