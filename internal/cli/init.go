package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/grades/pkg/types"
)

func newInitCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration and storage",
		Long:  "Create the configuration and data directories, then initialize the snapshot database.",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Config dir and config.yaml are created while loading configuration.
			if e.cfg.Backend != types.BackendMemory {
				b, err := e.openBackend()
				if err != nil {
					return err
				}
				if err := b.Close(); err != nil {
					return fmt.Errorf("finalize storage: %w", err)
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Grades initialized successfully")
			return nil
		},
	}
}
