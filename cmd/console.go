package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"agenthub/internal/config"
	"agenthub/internal/console"
	"agenthub/pkg/cardano"

	"github.com/spf13/cobra"
)

// consoleCommand starts the interactive Cardano tooling shell, or runs a single
// command line with --exec.
func consoleCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "console",
		Short: "Interactive CIP drafting and Preprod wallet tooling",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cardano.RequirePreprod(cfg.Cardano.Network); err != nil {
				fmt.Fprintln(os.Stderr, console.ErrNotPreprod.Error()) //nolint: forbidigo

				return console.ErrNotPreprod
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			store, closeStore := getStore(ctx, cfg)
			defer closeStore()
			migrate(ctx, store)

			markdown, _ := cmd.Flags().GetBool("markdown")
			c, err := console.New(console.Deps{
				Explorer:  getExplorer(ctx, cfg),
				Generator: getGenerator(ctx, cfg),
				Payment:   getPayment(cfg),
				Memory:    store,
			}, cmd.OutOrStdout(), console.Options{
				Network:  cfg.Cardano.Network,
				Markdown: markdown,
			})
			if err != nil {
				return err
			}

			if line, _ := cmd.Flags().GetString("exec"); line != "" {
				if err := c.Exec(ctx, line); err != nil {
					return errors.New("command failed")
				}

				return nil
			}

			return c.Run(ctx, cmd.InOrStdin())
		},
	}

	cmd.Flags().String("exec", "", `Run one command line and exit, e.g. --exec 'get_balance address="addr_test..."'`)
	cmd.Flags().Bool("markdown", false, "Render generated CIP drafts for the terminal")

	return cmd
}
