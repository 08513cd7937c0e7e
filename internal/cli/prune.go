package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/dormant/internal/wire"
)

// PruneCmd returns the prune command
func PruneCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "prune LOOKUP-KEY...",
		Short: "Delete contacts by lookup key",
		Long: `Select the given contacts and delete them after confirmation.

Lookup keys are shown by 'dormant scan'. Contacts matching a protect
pattern in the config cannot be selected. Each attempt is written to the
deletion history; see 'dormant history'.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.Init(); err != nil {
				return err
			}
			ctx := cmd.Context()

			session := wire.Session()
			if _, err := session.Refresh(ctx); err != nil {
				return fmt.Errorf("failed to scan contacts: %w", err)
			}

			deletions := wire.DeletionAdapter(os.Stdout)
			if err := deletions.Select(ctx, args); err != nil {
				return err
			}

			pending := deletions.RequestDelete(ctx)
			if pending == 0 {
				return nil
			}

			if !yes && !confirm(os.Stdin, os.Stdout, pending) {
				deletions.Cancel(ctx)
				return nil
			}

			if _, err := deletions.Confirm(ctx); err != nil {
				return err
			}

			wire.ContactAdapter(os.Stdout).PrintContacts(session.Contacts(), false)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation prompt")
	return cmd
}

// confirm asks "Delete N contacts? [y/N]" and reports a yes answer.
func confirm(in io.Reader, out io.Writer, n int) bool {
	fmt.Fprintf(out, "%s [y/N] ", color.New(color.FgRed, color.Bold).Sprintf("Delete %d contacts?", n))

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(out)
		return false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
