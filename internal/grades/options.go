package grades

import (
	"io"
	"log/slog"
	"os"
)

// Option configures a Store.
type Option func(*settings)

type settings struct {
	maxStudents int
	maxCourses  int
	out         io.Writer
	logger      *slog.Logger
}

func defaultSettings() settings {
	return settings{
		out:    os.Stdout,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithMaxStudents bounds the roster size. AddStudent fails with
// types.ErrExhausted once the bound is reached. Zero means unbounded.
func WithMaxStudents(n int) Option {
	return func(s *settings) { s.maxStudents = n }
}

// WithMaxCourses bounds the number of courses per student. Zero means
// unbounded.
func WithMaxCourses(n int) Option {
	return func(s *settings) { s.maxCourses = n }
}

// WithOutput sets the writer that receives report lines.
func WithOutput(w io.Writer) Option {
	return func(s *settings) {
		if w != nil {
			s.out = w
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}
