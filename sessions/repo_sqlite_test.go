package sessions_test

import (
	"database/sql"
	"path/filepath"
	"strings"
	"testing"
	"time"

	errs "github.com/bit-orbit/oauth/internal/errors"
	"github.com/bit-orbit/oauth/sessions"
	"github.com/stretchr/testify/require"
)

func TestSQLiteRepo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.db")

	repo, err := sessions.OpenSQLiteRepo(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	t.Run("get missing session", func(t *testing.T) {
		_, err := repo.Get("nope")
		require.ErrorIs(t, err, errs.ErrSessionNotFound)
	})

	t.Run("round trip", func(t *testing.T) {
		session := testSession()
		require.NoError(t, repo.Upsert("sid-1", session))

		got, err := repo.Get("sid-1")
		require.NoError(t, err)
		require.Equal(t, session.Principal, got.Principal)
		require.Equal(t, session.CSRFToken, got.CSRFToken)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		require.NoError(t, repo.Delete("sid-1"))
		require.NoError(t, repo.Delete("sid-1"))
		_, err := repo.Get("sid-1")
		require.ErrorIs(t, err, errs.ErrSessionNotFound)
	})

	t.Run("delete expired", func(t *testing.T) {
		old := testSession()
		old.CreatedAt = time.Now().Add(-48 * time.Hour)
		fresh := testSession()
		fresh.CreatedAt = time.Now()

		require.NoError(t, repo.Upsert("old", old))
		require.NoError(t, repo.Upsert("fresh", fresh))

		require.NoError(t, repo.DeleteExpired(time.Now().Add(-24*time.Hour)))

		_, err := repo.Get("old")
		require.ErrorIs(t, err, errs.ErrSessionNotFound)
		_, err = repo.Get("fresh")
		require.NoError(t, err)
	})
}

func TestSQLiteRepoPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.db")

	repo, err := sessions.OpenSQLiteRepo(path)
	require.NoError(t, err)

	session := testSession()
	require.NoError(t, repo.Upsert("sid-1", session))
	require.NoError(t, repo.Close())

	reopened, err := sessions.OpenSQLiteRepo(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	got, err := reopened.Get("sid-1")
	require.NoError(t, err)
	require.Equal(t, session.Principal, got.Principal)
}

func TestSQLiteRepoEnablesWAL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.db")

	repo, err := sessions.OpenSQLiteRepo(path)
	require.NoError(t, err)
	require.NoError(t, repo.Upsert("sid-1", testSession()))
	require.NoError(t, repo.Close())

	// journal_mode=WAL persists in the database file, so a plain connection
	// reflects whether the pragma was applied at open time.
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var mode string
	require.NoError(t, db.QueryRow("PRAGMA journal_mode").Scan(&mode))
	require.Equal(t, "wal", strings.ToLower(mode))
}

func TestOpenSQLiteRepoRequiresPath(t *testing.T) {
	_, err := sessions.OpenSQLiteRepo("  ")
	require.Error(t, err)
}
