package commands

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// uploadCmd transfers one evidence file for a checklist label.
func uploadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upload <label> <file>",
		Short: "Upload an evidence document for a checklist label",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return doUpload(cmd.Context(), args[0], args[1])
		},
	}
}

func doUpload(ctx context.Context, label, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if err := appCtx.Evidence.Upload(ctx, appCtx.Workspace, label, filepath.Base(path), contentType, f); err != nil {
		return err
	}
	fmt.Printf("Uploaded %q. Parsing takes a few seconds; run evidence to refresh detection.\n", label)
	return nil
}
