package sqlite

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/grades/internal/grades"
	"github.com/mesh-intelligence/grades/pkg/types"
)

func openBackend(t *testing.T) (*Backend, string) {
	t.Helper()
	dir := t.TempDir()
	b := NewBackend(nil)
	require.NoError(t, b.Open(dir))
	t.Cleanup(func() { b.Close() })
	return b, dir
}

func sampleStore(t *testing.T) *grades.Store {
	t.Helper()
	s, err := grades.New()
	require.NoError(t, err)
	t.Cleanup(s.Destroy)
	require.NoError(t, s.AddStudent("Zed", 9))
	require.NoError(t, s.AddStudent("Alice", 1))
	require.NoError(t, s.AddGrade("Physics", 1, 70))
	require.NoError(t, s.AddGrade("Math", 1, 90))
	require.NoError(t, s.AddGrade("Art", 9, 55))
	return s
}

func TestOpenCreatesDatabase(t *testing.T) {
	_, dir := openBackend(t)

	_, err := os.Stat(filepath.Join(dir, DatabaseFile))
	assert.NoError(t, err)
}

func TestOpenTwice(t *testing.T) {
	b, dir := openBackend(t)

	assert.ErrorIs(t, b.Open(dir), ErrAlreadyOpen)
}

func TestCloseIdempotent(t *testing.T) {
	b, _ := openBackend(t)

	assert.NoError(t, b.Close())
	assert.NoError(t, b.Close())
}

func TestClosedBackend(t *testing.T) {
	b := NewBackend(nil)
	ctx := context.Background()

	_, err := b.Save(ctx, sampleStore(t))
	assert.ErrorIs(t, err, ErrClosed)
	_, err = b.Load(ctx)
	assert.ErrorIs(t, err, ErrClosed)
	_, err = b.Snapshots(ctx)
	assert.ErrorIs(t, err, ErrClosed)
	_, err = b.Prune(ctx, 1)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestLoadEmptyDatabase(t *testing.T) {
	b, _ := openBackend(t)

	s, err := b.Load(context.Background())
	require.NoError(t, err)
	defer s.Destroy()
	assert.Equal(t, 0, s.Len())
}

func TestSaveLoadRoundTripKeepsOrder(t *testing.T) {
	b, _ := openBackend(t)
	ctx := context.Background()
	src := sampleStore(t)

	id, err := b.Save(ctx, src)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	var buf bytes.Buffer
	got, err := b.Load(ctx, grades.WithOutput(&buf))
	require.NoError(t, err)
	defer got.Destroy()

	assert.Equal(t, src.Records(), got.Records())
	require.NoError(t, got.PrintAll())
	assert.Equal(t, "Zed 9: Art 55\nAlice 1: Physics 70, Math 90\n", buf.String())
}

func TestLoadReturnsLatestSnapshot(t *testing.T) {
	b, _ := openBackend(t)
	ctx := context.Background()
	s := sampleStore(t)

	_, err := b.Save(ctx, s)
	require.NoError(t, err)
	require.NoError(t, s.AddStudent("Bob", 2))
	_, err = b.Save(ctx, s)
	require.NoError(t, err)

	got, err := b.Load(ctx)
	require.NoError(t, err)
	defer got.Destroy()
	assert.Equal(t, 3, got.Len())

	snaps, err := b.Snapshots(ctx)
	require.NoError(t, err)
	require.Len(t, snaps, 2)
	assert.Equal(t, 3, snaps[0].Students)
	assert.Equal(t, 2, snaps[1].Students)
}

func TestLoadAppliesLimits(t *testing.T) {
	b, _ := openBackend(t)
	ctx := context.Background()

	_, err := b.Save(ctx, sampleStore(t))
	require.NoError(t, err)

	_, err = b.Load(ctx, grades.WithMaxStudents(1))
	assert.ErrorIs(t, err, types.ErrExhausted)
}

func TestSaveAbsentStore(t *testing.T) {
	b, _ := openBackend(t)

	_, err := b.Save(context.Background(), nil)
	assert.ErrorIs(t, err, types.ErrStoreAbsent)
}

func TestReopenKeepsSnapshots(t *testing.T) {
	b, dir := openBackend(t)
	ctx := context.Background()
	src := sampleStore(t)
	_, err := b.Save(ctx, src)
	require.NoError(t, err)
	require.NoError(t, b.Close())

	b2 := NewBackend(nil)
	require.NoError(t, b2.Open(dir))
	defer b2.Close()

	got, err := b2.Load(ctx)
	require.NoError(t, err)
	defer got.Destroy()
	assert.Equal(t, src.Records(), got.Records())
}

func TestPrune(t *testing.T) {
	b, _ := openBackend(t)
	ctx := context.Background()
	s := sampleStore(t)
	for i := 0; i < 4; i++ {
		_, err := b.Save(ctx, s)
		require.NoError(t, err)
	}

	_, err := b.Prune(ctx, 0)
	assert.ErrorIs(t, err, types.ErrInvalidArgument)

	n, err := b.Prune(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	snaps, err := b.Snapshots(ctx)
	require.NoError(t, err)
	assert.Len(t, snaps, 1)

	got, err := b.Load(ctx)
	require.NoError(t, err)
	defer got.Destroy()
	assert.Equal(t, s.Records(), got.Records())
}
