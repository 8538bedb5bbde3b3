package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"sdet/internal/cli"
	"sdet/internal/config"
	"sdet/internal/db"
)

// MigrateCommand handles the migrate command
type MigrateCommand struct {
	version string
	flags   *cli.Flags
}

// NewMigrateCommand creates a new MigrateCommand
func NewMigrateCommand(version string, flags *cli.Flags) *MigrateCommand {
	return &MigrateCommand{
		version: version,
		flags:   flags,
	}
}

// Execute runs the command
func (mc *MigrateCommand) Execute(cmd *cobra.Command, args []string) error {
	cfg, err := config.Resolve(mc.flags.ToConfigFlags(), mc.version)
	if err != nil {
		return err
	}

	store := db.NewSummaryStore(cfg)
	if err := store.EnsureSchema(); err != nil {
		return err
	}

	color.Green("✓ Summary database and table are ready")
	return nil
}
