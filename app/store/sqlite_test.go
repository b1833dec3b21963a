package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/primes/app/prime"
)

func TestNewSQLite(t *testing.T) {
	t.Run("successful creation", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "test.db")
		s, err := NewSQLite(dbPath)
		require.NoError(t, err)
		assert.NotNil(t, s)
		require.NoError(t, s.Close())
	})

	t.Run("missing location created", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "sub", "dir", "test.db")
		s, err := NewSQLite(dbPath)
		require.NoError(t, err)
		defer s.Close()
		require.NoError(t, s.Initialize(context.Background()))
		_, err = os.Stat(dbPath)
		assert.NoError(t, err)
	})

	t.Run("location can't be made", func(t *testing.T) {
		tmpDir := t.TempDir()
		blocker := filepath.Join(tmpDir, "file")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))
		s, err := NewSQLite(filepath.Join(blocker, "sub", "test.db"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to make db location")
		assert.Nil(t, s)
	})
}

func TestSQLite_Initialize(t *testing.T) {
	s := prepSQLite(t)
	ctx := context.Background()

	var count int
	err := s.db.Get(&count, "SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='primes'")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, s.Initialize(ctx), "second initialize is a no-op")
}

func TestSQLite_InsertAndQuery(t *testing.T) {
	s := prepSQLite(t)
	ctx := context.Background()

	_, err := s.MaxNumber(ctx)
	assert.ErrorIs(t, err, ErrEmpty)

	ts := time.Date(2024, 5, 6, 7, 8, 9, 0, time.Local)
	recs := []prime.Record{
		{Number: 2, DiscoveredAt: ts, Elapsed: 10 * time.Microsecond},
		{Number: 3, DiscoveredAt: ts, Elapsed: 20 * time.Microsecond},
		{Number: 5, DiscoveredAt: ts.Add(time.Second), Elapsed: 1500 * time.Millisecond},
	}
	require.NoError(t, s.InsertBatch(ctx, recs))

	n, err := s.MaxNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), n)

	cnt, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, cnt)

	var row primeRow
	err = s.db.Get(&row, "SELECT number, created_at, elapsed FROM primes WHERE number = 5")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-06 07:08:10", row.CreatedAt)
	assert.InDelta(t, 1.5, row.Elapsed, 0.000001)

	recent, err := s.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, uint64(5), recent[0].Number)
	assert.Equal(t, uint64(3), recent[1].Number)
	assert.True(t, ts.Add(time.Second).Equal(recent[0].DiscoveredAt), "got %v", recent[0].DiscoveredAt)
	assert.Equal(t, 1500*time.Millisecond, recent[0].Elapsed)
}

func TestSQLite_InsertBatchRollback(t *testing.T) {
	s := prepSQLite(t)
	ctx := context.Background()

	_, err := s.db.Exec(`CREATE TRIGGER reject_13 BEFORE INSERT ON primes WHEN NEW.number = 13
		BEGIN SELECT RAISE(ABORT, 'rejected'); END`)
	require.NoError(t, err)

	err = s.InsertBatch(ctx, []prime.Record{prime.NewRecord(7, 0), prime.NewRecord(11, 0), prime.NewRecord(13, 0)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert prime 13")

	cnt, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, cnt, "nothing written on failed batch")
	_, err = s.MaxNumber(ctx)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestSQLite_InsertBatchOutOfRange(t *testing.T) {
	s := prepSQLite(t)
	err := s.InsertBatch(context.Background(), []prime.Record{prime.NewRecord(3, 0), prime.NewRecord(1<<63, 0)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds storage range")

	cnt, err := s.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, cnt)
}

func TestSQLite_QueryFailure(t *testing.T) {
	s := prepSQLite(t)
	_, err := s.db.Exec("DROP TABLE primes")
	require.NoError(t, err)

	_, err = s.MaxNumber(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmpty)
}

func prepSQLite(t *testing.T) *SQLite {
	t.Helper()
	s, err := NewSQLite(filepath.Join(t.TempDir(), "primes.db"))
	require.NoError(t, err)
	require.NoError(t, s.Initialize(context.Background()))
	t.Cleanup(func() { s.Close() })
	return s
}
