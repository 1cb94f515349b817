// Package sqlite persists grade stores as snapshots in a SQLite database
// and exchanges them as JSONL files. The store itself stays in memory; this
// package only copies records in and out of it.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/grades/internal/grades"
	"github.com/mesh-intelligence/grades/pkg/types"
)

// DatabaseFile is the database file name inside the data directory.
const DatabaseFile = "grades.db"

// Backend lifecycle errors.
var (
	ErrClosed      = errors.New("backend is closed")
	ErrAlreadyOpen = errors.New("backend is already open")
)

// Snapshot describes one saved roster.
type Snapshot struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Students  int       `json:"students"`
}

// Backend stores roster snapshots in SQLite.
type Backend struct {
	mu     sync.Mutex
	db     *sql.DB
	dir    string
	logger *slog.Logger
}

// NewBackend creates a closed backend. Call Open before use. A nil logger
// discards all output.
func NewBackend(logger *slog.Logger) *Backend {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Backend{logger: logger}
}

// Open creates dataDir if needed, opens the database in it, and applies
// the schema. Returns ErrAlreadyOpen if called twice without Close.
func (b *Backend) Open(dataDir string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.db != nil {
		return ErrAlreadyOpen
	}
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, DatabaseFile)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", dbPath, err)
	}
	// One connection keeps PRAGMA settings and transactions on the same handle.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return fmt.Errorf("enable foreign keys: %w", err)
	}
	for _, stmt := range append(append([]string{}, schemaDDL...), indexDDL...) {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return fmt.Errorf("apply schema: %w", err)
		}
	}

	b.db = db
	b.dir = dataDir
	b.logger.Debug("backend opened", "path", dbPath)
	return nil
}

// Close releases the database. Idempotent.
func (b *Backend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.db == nil {
		return nil
	}
	err := b.db.Close()
	b.db = nil
	b.logger.Debug("backend closed", "dir", b.dir)
	return err
}

// Save writes every record of store as a new snapshot in one transaction
// and returns the snapshot ID.
func (b *Backend) Save(ctx context.Context, store *grades.Store) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.db == nil {
		return "", ErrClosed
	}
	records := store.Records()
	if records == nil {
		return "", types.ErrStoreAbsent
	}

	id := generateUUID()
	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO snapshots (snapshot_id, created_at) VALUES (?, ?)`, id, now); err != nil {
		return "", fmt.Errorf("insert snapshot: %w", err)
	}
	for i, st := range records {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO students (snapshot_id, position, student_id, name) VALUES (?, ?, ?, ?)`,
			id, i, st.ID, st.Name); err != nil {
			return "", fmt.Errorf("insert student %d: %w", st.ID, err)
		}
		for j, c := range st.Courses {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO courses (snapshot_id, student_id, position, name, grade) VALUES (?, ?, ?, ?, ?)`,
				id, st.ID, j, c.Name, c.Grade); err != nil {
				return "", fmt.Errorf("insert course %q of student %d: %w", c.Name, st.ID, err)
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}

	b.logger.Info("snapshot saved", "snapshot_id", id, "students", len(records))
	return id, nil
}

// Load rebuilds a store from the latest snapshot. With no snapshot it
// returns an empty store. opts configure the returned store.
func (b *Backend) Load(ctx context.Context, opts ...grades.Option) (*grades.Store, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.db == nil {
		return nil, ErrClosed
	}

	var id string
	err := b.db.QueryRowContext(ctx,
		`SELECT snapshot_id FROM snapshots ORDER BY seq DESC LIMIT 1`).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		b.logger.Debug("no snapshot, starting empty")
		return grades.New(opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("latest snapshot: %w", err)
	}

	records, err := b.readSnapshot(ctx, id)
	if err != nil {
		return nil, err
	}
	store, err := grades.FromRecords(records, opts...)
	if err != nil {
		return nil, fmt.Errorf("restore snapshot %s: %w", id, err)
	}
	b.logger.Debug("snapshot loaded", "snapshot_id", id, "students", len(records))
	return store, nil
}

// Snapshots lists saved snapshots, newest first.
func (b *Backend) Snapshots(ctx context.Context) ([]Snapshot, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.db == nil {
		return nil, ErrClosed
	}

	rows, err := b.db.QueryContext(ctx, `
SELECT s.snapshot_id, s.created_at, COUNT(st.student_id)
FROM snapshots s LEFT JOIN students st ON st.snapshot_id = s.snapshot_id
GROUP BY s.seq
ORDER BY s.seq DESC`)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()

	var out []Snapshot
	for rows.Next() {
		var (
			snap    Snapshot
			created string
		)
		if err := rows.Scan(&snap.ID, &created, &snap.Students); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		snap.CreatedAt, err = time.Parse(time.RFC3339Nano, created)
		if err != nil {
			return nil, fmt.Errorf("parse created_at of %s: %w", snap.ID, err)
		}
		out = append(out, snap)
	}
	return out, rows.Err()
}

// Prune deletes every snapshot except the newest keep and returns how
// many were removed.
func (b *Backend) Prune(ctx context.Context, keep int) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.db == nil {
		return 0, ErrClosed
	}
	if keep < 1 {
		return 0, fmt.Errorf("keep must be at least 1: %w", types.ErrInvalidArgument)
	}

	res, err := b.db.ExecContext(ctx, `
DELETE FROM snapshots WHERE seq NOT IN (
    SELECT seq FROM snapshots ORDER BY seq DESC LIMIT ?
)`, keep)
	if err != nil {
		return 0, fmt.Errorf("prune snapshots: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	b.logger.Info("snapshots pruned", "removed", n, "kept", keep)
	return int(n), nil
}

// readSnapshot returns the records of snapshot id in insertion order.
// The caller must hold b.mu.
func (b *Backend) readSnapshot(ctx context.Context, id string) ([]types.Student, error) {
	rows, err := b.db.QueryContext(ctx,
		`SELECT student_id, name FROM students WHERE snapshot_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("query students: %w", err)
	}
	var records []types.Student
	index := make(map[int]int)
	for rows.Next() {
		st := types.Student{Courses: []types.Course{}}
		if err := rows.Scan(&st.ID, &st.Name); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan student: %w", err)
		}
		index[st.ID] = len(records)
		records = append(records, st)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	rows, err = b.db.QueryContext(ctx,
		`SELECT student_id, name, grade FROM courses WHERE snapshot_id = ? ORDER BY student_id, position`, id)
	if err != nil {
		return nil, fmt.Errorf("query courses: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			sid int
			c   types.Course
		)
		if err := rows.Scan(&sid, &c.Name, &c.Grade); err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		i, ok := index[sid]
		if !ok {
			return nil, fmt.Errorf("course %q of student %d: %w", c.Name, sid, types.ErrStudentNotFound)
		}
		records[i].Courses = append(records[i].Courses, c)
	}
	return records, rows.Err()
}

// generateUUID generates a new UUID v7 for snapshot IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
