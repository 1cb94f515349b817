package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/grades/internal/grades"
)

func newGradeCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "grade <id> <course>",
		Short: "Print the grade a student earned in one course",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseInt("id", args[0])
			if err != nil {
				return err
			}
			course := args[1]
			return e.withStore(cmd, false, func(s *grades.Store) error {
				g, err := s.Grade(id, course)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %d\n", course, g)
				return err
			})
		},
	}
}
