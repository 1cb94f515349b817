package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/grades/internal/grades"
	"github.com/mesh-intelligence/grades/internal/sqlite"
	"github.com/mesh-intelligence/grades/pkg/types"
)

// storeOptions returns the store options derived from configuration.
func (e *env) storeOptions(cmd *cobra.Command) []grades.Option {
	return []grades.Option{
		grades.WithMaxStudents(e.cfg.MaxStudents),
		grades.WithMaxCourses(e.cfg.MaxCourses),
		grades.WithOutput(cmd.OutOrStdout()),
		grades.WithLogger(e.logger),
	}
}

// openBackend resolves the data directory and opens the snapshot backend.
// The caller must Close it.
func (e *env) openBackend() (*sqlite.Backend, error) {
	dataDir, err := e.resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}
	b := sqlite.NewBackend(e.logger)
	if err := b.Open(dataDir); err != nil {
		return nil, fmt.Errorf("open backend: %w", err)
	}
	return b, nil
}

// withStore loads the roster, runs fn on it, and saves a new snapshot when
// save is true and fn succeeded. With the memory backend nothing is loaded
// or saved.
func (e *env) withStore(cmd *cobra.Command, save bool, fn func(*grades.Store) error) error {
	opts := e.storeOptions(cmd)

	if e.cfg.Backend == types.BackendMemory {
		store, err := grades.New(opts...)
		if err != nil {
			return err
		}
		defer store.Destroy()
		return fn(store)
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

	store, err := b.Load(ctx, opts...)
	if err != nil {
		return fmt.Errorf("load roster: %w", err)
	}
	defer store.Destroy()

	if err := fn(store); err != nil {
		return err
	}
	if !save {
		return nil
	}
	if _, err := b.Save(ctx, store); err != nil {
		return fmt.Errorf("save roster: %w", err)
	}
	return nil
}
