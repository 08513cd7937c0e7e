package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/example/dormant/internal/wire"
)

// ScanCmd returns the scan command
func ScanCmd() *cobra.Command {
	var all, asJSON bool

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "List contacts with no recent calls or messages",
		Long: `Join the contact list against the call log and message history and
list every contact whose last interaction is older than the configured
window. Contacts that were never called or messaged are always stale.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.Init(); err != nil {
				return err
			}
			return wire.ContactAdapter(os.Stdout).Scan(cmd.Context(), all, asJSON)
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include active contacts")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")
	return cmd
}
