package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/grades/internal/grades"
)

func newAddGradeCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "add-grade <id> <course> <grade>",
		Short: "Record a course grade for a student",
		Long:  "Record a course grade between 0 and 100. A student may hold each course once.",
		Args:  exactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseInt("id", args[0])
			if err != nil {
				return err
			}
			course := args[1]
			grade, err := parseInt("grade", args[2])
			if err != nil {
				return err
			}
			err = e.withStore(cmd, true, func(s *grades.Store) error {
				return s.AddGrade(course, id, grade)
			})
			if err != nil {
				return err
			}
			success.Fprintf(cmd.OutOrStdout(), "Recorded %s %d for student %d\n", course, grade, id)
			return nil
		},
	}
}
