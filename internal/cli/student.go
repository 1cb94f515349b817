package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/grades/internal/grades"
)

func newAddStudentCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "add-student <name> <id>",
		Short: "Register a student",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			id, err := parseInt("id", args[1])
			if err != nil {
				return err
			}
			err = e.withStore(cmd, true, func(s *grades.Store) error {
				return s.AddStudent(name, id)
			})
			if err != nil {
				return err
			}
			success.Fprintf(cmd.OutOrStdout(), "Added student %s %d\n", name, id)
			return nil
		},
	}
}
