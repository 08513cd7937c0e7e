package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/dormant/internal/config"
	"github.com/example/dormant/internal/wire"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize dormant config and snapshot database",
		Long: `Write .dormant/config.jsonc with default settings (if missing) and
create the snapshot database with the required schema.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := wire.Dir()
			cfgPath := config.Path(dir)

			_, err := os.Stat(cfgPath)
			switch {
			case err == nil:
				fmt.Printf("Config already exists at %s\n", cfgPath)
			case errors.Is(err, os.ErrNotExist):
				if err := config.SaveConfig(dir, config.Default()); err != nil {
					return err
				}
				fmt.Printf("✓ Wrote default config to %s\n", cfgPath)
			default:
				return fmt.Errorf("failed to check config: %w", err)
			}

			if err := wire.Init(); err != nil {
				return err
			}

			dbPath, err := wire.Config().ResolveDatabasePath()
			if err != nil {
				return err
			}
			fmt.Printf("✓ Snapshot database ready at %s\n", dbPath)
			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  dormant import export.json")
			fmt.Println("  dormant scan")

			return nil
		},
	}
}
