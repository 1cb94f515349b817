package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/grades/internal/grades"
	"github.com/mesh-intelligence/grades/internal/sqlite"
	"github.com/mesh-intelligence/grades/pkg/types"
)

func newExportCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write the roster to a JSONL file",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			var n int
			err := e.withStore(cmd, false, func(s *grades.Store) error {
				records := s.Records()
				n = len(records)
				return sqlite.WriteJSONL(path, records)
			})
			if err != nil {
				return err
			}
			success.Fprintf(cmd.OutOrStdout(), "Exported %d students to %s\n", n, path)
			return nil
		},
	}
}

func newImportCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the roster with the contents of a JSONL file",
		Long: "Replace the roster with the students in a JSONL file. Every record is\n" +
			"checked as if added by add-student and add-grade; nothing is saved if any fails.",
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := sqlite.ReadJSONL(args[0])
			if err != nil {
				return err
			}
			store, err := grades.FromRecords(records, e.storeOptions(cmd)...)
			if err != nil {
				return fmt.Errorf("import %s: %w", args[0], err)
			}
			defer store.Destroy()

			if e.cfg.Backend != types.BackendMemory {
				ctx := cmd.Context()
				if ctx == nil {
					ctx = context.Background()
				}
				b, err := e.openBackend()
				if err != nil {
					return err
				}
				defer b.Close()
				if _, err := b.Save(ctx, store); err != nil {
					return fmt.Errorf("save roster: %w", err)
				}
			}
			success.Fprintf(cmd.OutOrStdout(), "Imported %d students from %s\n", store.Len(), args[0])
			return nil
		},
	}
}
