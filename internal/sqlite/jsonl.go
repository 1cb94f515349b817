package sqlite

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/grades/pkg/types"
)

// jsonlStudent and jsonlCourse decode one line with pointer fields so a
// missing key is told apart from a zero value.
type jsonlStudent struct {
	ID      *int          `json:"id"`
	Name    *string       `json:"name"`
	Courses []jsonlCourse `json:"courses"`
}

type jsonlCourse struct {
	Name  *string `json:"name"`
	Grade *int    `json:"grade"`
}

// ReadJSONL reads one student record per line from path. Empty lines are
// skipped. A line that does not decode, or that lacks an id, a name, or a
// course name or grade, fails the whole read with an error wrapping
// types.ErrInvalidArgument and naming the line.
func ReadJSONL(path string) ([]types.Student, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var records []types.Student
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		st, err := decodeStudent(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}
		records = append(records, st)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	return records, nil
}

func decodeStudent(line []byte) (types.Student, error) {
	var raw jsonlStudent
	if err := json.Unmarshal(line, &raw); err != nil {
		return types.Student{}, fmt.Errorf("malformed record: %w: %w", types.ErrInvalidArgument, err)
	}
	if raw.ID == nil {
		return types.Student{}, fmt.Errorf("record has no id: %w", types.ErrInvalidArgument)
	}
	if raw.Name == nil || *raw.Name == "" {
		return types.Student{}, fmt.Errorf("student %d has no name: %w", *raw.ID, types.ErrInvalidArgument)
	}
	st := types.Student{
		ID:      *raw.ID,
		Name:    *raw.Name,
		Courses: make([]types.Course, 0, len(raw.Courses)),
	}
	for i, c := range raw.Courses {
		if c.Name == nil || *c.Name == "" || c.Grade == nil {
			return types.Student{}, fmt.Errorf("student %d course %d is incomplete: %w", st.ID, i, types.ErrInvalidArgument)
		}
		st.Courses = append(st.Courses, types.Course{Name: *c.Name, Grade: *c.Grade})
	}
	return st, nil
}

// WriteJSONL atomically writes one student record per line to path using
// the temp-file, fsync, rename pattern.
func WriteJSONL(path string, records []types.Student) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".jsonl-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	fail := func(format string, err error) error {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf(format, err)
	}

	w := bufio.NewWriter(tmp)
	enc := json.NewEncoder(w)
	for _, rec := range records {
		if err := enc.Encode(rec); err != nil {
			return fail("writing record: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fail("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fail("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
