package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/example/dormant/internal/wire"
)

// HistoryCmd returns the history command
func HistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history [BATCH-ID]",
		Short: "Show past deletion batches",
		Long: `Without arguments, list recent deletion batches with their success and
failure counts. With a batch ID, show every contact in that batch.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.Init(); err != nil {
				return err
			}

			adapter := wire.HistoryAdapter(os.Stdout)
			if len(args) == 1 {
				return adapter.Show(cmd.Context(), args[0])
			}
			return adapter.List(cmd.Context(), limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum batches to list (0 for all)")
	return cmd
}
