package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/dormant/internal/db"
	"github.com/example/dormant/internal/wire"
)

// DevCmd returns the dev command group for development utilities.
func DevCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dev",
		Short: "Development utilities",
		Long: `Development utilities for working with a local snapshot database.

Point DORMANT_DB_PATH at a scratch file before using these; they replace
the snapshot contents.`,
	}

	cmd.AddCommand(devSeedCmd())
	return cmd
}

func devSeedCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace the snapshot with demo fixtures",
		Long: `Replace contacts, call log and messages with a small fixture set.

Fixture timestamps are relative to now, so the same contacts are stale on
every run. Deletion history is left untouched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.Init(); err != nil {
				return err
			}

			dbPath, err := wire.Config().ResolveDatabasePath()
			if err != nil {
				return err
			}

			// Confirmation unless --force
			if !force {
				fmt.Printf("This will replace the snapshot in: %s\n", dbPath)
				fmt.Print("Continue? [y/N] ")
				var response string
				fmt.Scanln(&response)
				if response != "y" && response != "Y" {
					fmt.Println("Aborted.")
					return nil
				}
			}

			if err := db.SeedFixtures(wire.Database(), time.Now()); err != nil {
				return fmt.Errorf("failed to seed fixtures: %w", err)
			}
			fmt.Println("✓ Seeded fixture data")
			fmt.Println()
			fmt.Println("Seeded entities:")
			fmt.Println("  - 6 contacts (one without numbers, one protected-looking \"Mom\")")
			fmt.Println("  - 7 calls, including rows with missing number or date")
			fmt.Println("  - 3 messages")

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")
	return cmd
}
