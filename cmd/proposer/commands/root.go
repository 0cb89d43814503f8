package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"proposer/internal/app"
)

var (
	home       string
	apiBase    string
	brokerBase string
	debug      bool

	appCtx *app.App
)

func Execute() error {
	root := &cobra.Command{
		Use:   "proposer",
		Short: "Guided proposal-run workflow CLI",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".proposer")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			cfg, err := app.LoadConfig(home)
			if err != nil {
				return err
			}
			if apiBase != "" {
				cfg.APIBase = apiBase
			}
			if brokerBase != "" {
				cfg.BrokerBase = brokerBase
			}
			if debug {
				cfg.Debug = true
			}

			appCtx, err = app.NewApp(cfg, systemClipboard{})
			if err != nil {
				return err
			}

			// A resumed session re-fetches its checklist the way the
			// original run did after a reload; failures are tolerated
			// so offline commands like steps keep working.
			if appCtx.Workspace.Session.ID != "" {
				if err := appCtx.Sessions.LoadChecklist(cmd.Context(), appCtx.Workspace); err != nil {
					appCtx.Log.Warn("checklist unavailable on resume", "err", err)
				}
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if appCtx != nil {
				return appCtx.CloseLog()
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.proposer)")
	root.PersistentFlags().StringVar(&apiBase, "api", "", "proposal API base URL (overrides config)")
	root.PersistentFlags().StringVar(&brokerBase, "broker", "", "upload broker base URL (overrides config)")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "debug logging")

	root.AddCommand(
		createCmd(),
		checklistCmd(),
		uploadCmd(),
		evidenceCmd(),
		factsCmd(),
		validateCmd(),
		anchorCmd(),
		draftCmd(),
		draftAllCmd(),
		copyCmd(),
		copyAllCmd(),
		stepsCmd(),
		gotoCmd(),
		envCmd(),
		runCmd(),
	)
	return root.Execute()
}
