package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/example/dormant/internal/cli"
	"github.com/example/dormant/internal/version"
	"github.com/example/dormant/internal/wire"
)

func main() {
	var opts wire.Options

	rootCmd := &cobra.Command{
		Use:     "dormant",
		Short:   "Find and prune contacts you no longer talk to",
		Version: version.String(),
		Long: `dormant joins a snapshot of your contacts against the call log and
message history, lists contacts with no interaction inside the lookback
window, and deletes the ones you select.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			wire.Configure(opts)
		},
	}
	rootCmd.PersistentFlags().StringVar(&opts.Dir, "dir", ".", "Directory containing .dormant/config.jsonc and .env files")
	rootCmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.ImportCmd())
	rootCmd.AddCommand(cli.ScanCmd())
	rootCmd.AddCommand(cli.PruneCmd())
	rootCmd.AddCommand(cli.HistoryCmd())

	// Developer tools
	rootCmd.AddCommand(cli.DevCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	wire.Close()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
