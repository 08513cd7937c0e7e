package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/example/dormant/internal/wire"
)

// ImportCmd returns the import command
func ImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Replace the snapshot with a device export",
		Long: `Load a JSON (comments allowed) export of contacts, call log and messages
into the snapshot database. The previous snapshot is replaced in one
transaction; deletion history is kept.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.Init(); err != nil {
				return err
			}
			return wire.ImportAdapter(os.Stdout).Import(cmd.Context(), args[0])
		},
	}
}
