package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"proposer/internal/domain"
)

// runCmd opens the interactive shell. Unlike the one-shot subcommands it
// keeps the workspace in memory across actions, so a drafted section can
// be copied without a round trip through persistence.
func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Interactive workflow shell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd.Context())
		},
	}
}

type shellAction struct {
	usage string
	help  string
	fn    func(ctx context.Context, args []string) error
}

func shellActions() map[string]shellAction {
	return map[string]shellAction{
		"create": {
			usage: "create [grant|other] [EDG|PSG]",
			help:  "start a new proposal run",
			fn: func(ctx context.Context, args []string) error {
				workflowType := string(domain.WorkflowGrant)
				grant := string(domain.GrantEDG)
				if len(args) > 0 {
					workflowType = args[0]
				}
				if len(args) > 1 {
					grant = args[1]
				}
				return doCreate(ctx, workflowType, grant)
			},
		},
		"checklist": {
			usage: "checklist",
			help:  "refresh and show the task checklist",
			fn: func(ctx context.Context, args []string) error {
				return doChecklist(ctx)
			},
		},
		"upload": {
			usage: "upload <label> <path>",
			help:  "upload an evidence file",
			fn: func(ctx context.Context, args []string) error {
				if len(args) != 2 {
					return fmt.Errorf("usage: upload <label> <path>")
				}
				return doUpload(ctx, args[0], args[1])
			},
		},
		"evidence": {
			usage: "evidence",
			help:  "refresh detected evidence and show status",
			fn: func(ctx context.Context, args []string) error {
				return doEvidence(ctx)
			},
		},
		"facts": {
			usage: "facts <json-or-key:value ...>",
			help:  "save extra SME facts",
			fn: func(ctx context.Context, args []string) error {
				return doSaveFacts(ctx, domain.Facts{}, strings.Join(args, " "))
			},
		},
		"validate": {
			usage: "validate",
			help:  "run eligibility validation",
			fn: func(ctx context.Context, args []string) error {
				return doValidate(ctx)
			},
		},
		"anchor": {
			usage: "anchor <text ...>",
			help:  "save the solution anchor",
			fn: func(ctx context.Context, args []string) error {
				return doSaveAnchor(strings.Join(args, " "), appCtx.Workspace.SharedDraft)
			},
		},
		"draft": {
			usage: "draft <section> [variant]",
			help:  "draft a single section",
			fn: func(ctx context.Context, args []string) error {
				if len(args) == 0 {
					return fmt.Errorf("usage: draft <section> [variant]")
				}
				variant := ""
				if len(args) > 1 {
					variant = args[1]
				}
				return doDraft(ctx, args[0], variant, nil)
			},
		},
		"draftall": {
			usage: "draftall",
			help:  "draft every section sequentially",
			fn: func(ctx context.Context, args []string) error {
				return doDraftAll(ctx, nil)
			},
		},
		"copy": {
			usage: "copy <section>",
			help:  "copy one drafted section to the clipboard",
			fn: func(ctx context.Context, args []string) error {
				if len(args) != 1 {
					return fmt.Errorf("usage: copy <section>")
				}
				return doCopy(args[0])
			},
		},
		"copyall": {
			usage: "copyall",
			help:  "copy all drafted sections to the clipboard",
			fn: func(ctx context.Context, args []string) error {
				return doCopyAll()
			},
		},
		"steps": {
			usage: "steps",
			help:  "show workflow step status",
			fn: func(ctx context.Context, args []string) error {
				fmt.Print(renderSteps(appCtx.Workspace))
				return nil
			},
		},
		"goto": {
			usage: "goto <step>",
			help:  "navigate to a workflow step",
			fn: func(ctx context.Context, args []string) error {
				if len(args) != 1 {
					return fmt.Errorf("usage: goto <step>")
				}
				step, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("step must be a number: %w", err)
				}
				doGoto(step)
				return nil
			},
		},
		"env": {
			usage: "env",
			help:  "show service environment",
			fn: func(ctx context.Context, args []string) error {
				return doEnv(ctx)
			},
		},
	}
}

func runShell(ctx context.Context) error {
	actions := shellActions()
	fmt.Println("Type 'help' for commands, 'quit' to exit.")
	fmt.Print(renderSteps(appCtx.Workspace))

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("proposer> ")
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		name, args := fields[0], fields[1:]

		switch name {
		case "quit", "exit":
			return nil
		case "help":
			printShellHelp(actions)
			continue
		}

		action, ok := actions[name]
		if !ok {
			fmt.Printf("unknown command %q; try 'help'\n", name)
			continue
		}
		if err := action.fn(ctx, args); err != nil {
			fmt.Println(errStyle.Render("error: " + err.Error()))
		}
	}
}

func printShellHelp(actions map[string]shellAction) {
	order := []string{
		"create", "checklist", "upload", "evidence", "facts", "validate",
		"anchor", "draft", "draftall", "copy", "copyall", "steps", "goto", "env",
	}
	for _, name := range order {
		a := actions[name]
		fmt.Printf("  %-34s %s\n", a.usage, a.help)
	}
	fmt.Printf("  %-34s %s\n", "help", "show this help")
	fmt.Printf("  %-34s %s\n", "quit", "exit the shell")
}
