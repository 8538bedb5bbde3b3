package commands

import (
	"github.com/spf13/cobra"

	"sdet/internal/cli"
	"sdet/internal/config"
	"sdet/internal/storage"
	"sdet/internal/ui"
)

// FailuresCommand handles the failures command
type FailuresCommand struct {
	version string
	flags   *cli.Flags
}

// NewFailuresCommand creates a new FailuresCommand
func NewFailuresCommand(version string, flags *cli.Flags) *FailuresCommand {
	return &FailuresCommand{
		version: version,
		flags:   flags,
	}
}

// Execute runs the command
func (fc *FailuresCommand) Execute(cmd *cobra.Command, args []string) error {
	cfg, err := config.Resolve(fc.flags.ToConfigFlags(), fc.version)
	if err != nil {
		return err
	}

	st := storage.NewJSONStorage(cfg)
	rep, err := st.LoadReport()
	if err != nil {
		return err
	}

	return ui.NewFailureViewer(cfg, st).View(rep)
}
