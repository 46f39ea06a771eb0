package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"task-tracker.com/task-tracker/internal/cli"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Manage tasks through an interactive text menu",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		a, err := bootstrap(ctx, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer a.Close()

		return cli.NewMenu(a.service, cmd.InOrStdin(), cmd.OutOrStdout()).Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(menuCmd)
}
