package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the release of the grades CLI.
const Version = "0.1.0"

const modulePath = "github.com/mesh-intelligence/grades"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the grades version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "grades v%s\nmodule: %s\n", Version, modulePath)
			return nil
		},
	}
}
