package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/grades/internal/grades"
	"github.com/mesh-intelligence/grades/pkg/types"
)

// averageResult is the JSON shape of the average command.
type averageResult struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Average float64 `json:"average"`
}

// studentReport is the JSON shape of the print and print-all commands.
type studentReport struct {
	types.Student
	Average float64 `json:"average"`
}

func reportOf(rec types.Student) studentReport {
	return studentReport{Student: rec, Average: rec.Average()}
}

func newAverageCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "average <id>",
		Short: "Print a student's average grade",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseInt("id", args[0])
			if err != nil {
				return err
			}
			return e.withStore(cmd, false, func(s *grades.Store) error {
				avg, name, err := s.Average(id)
				if err != nil {
					return err
				}
				if e.flags.jsonMode {
					return writeJSON(cmd.OutOrStdout(), averageResult{ID: id, Name: name, Average: avg})
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %d: %.2f\n", name, id, avg)
				return err
			})
		},
	}
}

func newPrintCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "print <id>",
		Short: "Print one student's courses and grades",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseInt("id", args[0])
			if err != nil {
				return err
			}
			return e.withStore(cmd, false, func(s *grades.Store) error {
				if !e.flags.jsonMode {
					return s.PrintStudent(id)
				}
				for _, rec := range s.Records() {
					if rec.ID == id {
						return writeJSON(cmd.OutOrStdout(), reportOf(rec))
					}
				}
				return fmt.Errorf("print: student %d: %w", id, types.ErrStudentNotFound)
			})
		},
	}
}

func newPrintAllCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "print-all",
		Short: "Print every student in registration order",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.withStore(cmd, false, func(s *grades.Store) error {
				if e.flags.jsonMode {
					records := s.Records()
					reports := make([]studentReport, 0, len(records))
					for _, rec := range records {
						reports = append(reports, reportOf(rec))
					}
					return writeJSON(cmd.OutOrStdout(), reports)
				}
				return s.PrintAll()
			})
		},
	}
}
