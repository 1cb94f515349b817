package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/grades/pkg/types"
)

func newSnapshotsCmd(e *env) *cobra.Command {
	var keep int
	cmd := &cobra.Command{
		Use:   "snapshots",
		Short: "List saved roster snapshots, newest first",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			if e.cfg.Backend == types.BackendMemory {
				return usageError(fmt.Errorf("the memory backend keeps no snapshots"))
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			b, err := e.openBackend()
			if err != nil {
				return err
			}
			defer b.Close()

			if cmd.Flags().Changed("prune") {
				n, err := b.Prune(ctx, keep)
				if err != nil {
					return err
				}
				success.Fprintf(cmd.OutOrStdout(), "Pruned %d snapshots\n", n)
				return nil
			}

			snaps, err := b.Snapshots(ctx)
			if err != nil {
				return err
			}
			if e.flags.jsonMode {
				return writeJSON(cmd.OutOrStdout(), snaps)
			}
			for _, s := range snaps {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %d students\n",
					s.ID, s.CreatedAt.Local().Format(time.DateTime), s.Students)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&keep, "prune", 0, "delete all but the newest N snapshots")
	return cmd
}
