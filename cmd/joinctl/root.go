package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/joinrss-backend/internal/app"
	"github.com/heartmarshall/joinrss-backend/internal/config"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "joinctl",
		Short: "Operate the JOIN RSS member registry",
		Long: `joinctl runs maintenance tasks against the member registry database.

Examples:
  joinctl migrate up
  joinctl user create --username admin --password 'change me please'
  joinctl user set-bhag --username karyakarta --bhag PUNE-01
  joinctl member export --format xlsx --out members.xlsx --field city --q Pune
  joinctl session cleanup`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newMigrateCmd(),
		newUserCmd(),
		newMemberCmd(),
		newSessionCmd(),
		newVersionCmd(),
	)
	return root
}

func requireSubcommand(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%s requires a subcommand", cmd.CommandPath())
	}
	return fmt.Errorf("unknown subcommand %q for %s", args[0], cmd.CommandPath())
}

// withContainer loads configuration, opens the database and runs fn.
// Service logs go to stderr so command output stays clean.
func withContainer(ctx context.Context, stderr io.Writer, fn func(c *app.Container) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	c, err := app.Open(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	return fn(c)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), app.BuildVersion())
		},
	}
}
