package sessions_test

import (
	"testing"
	"time"

	errs "github.com/bit-orbit/oauth/internal/errors"
	"github.com/bit-orbit/oauth/principal"
	"github.com/bit-orbit/oauth/sessions"
	"github.com/stretchr/testify/require"
)

func testSession() sessions.Session {
	return sessions.Session{
		Principal: principal.Principal{
			ID:          "42",
			Username:    "ada",
			AccessToken: "tok",
		},
		CSRFToken: "csrf-token",
		CreatedAt: time.Now().UTC(),
	}
}

func TestInMemoryRepo(t *testing.T) {
	repo := sessions.NewInMemoryRepo()

	t.Run("get missing session", func(t *testing.T) {
		_, err := repo.Get("nope")
		require.ErrorIs(t, err, errs.ErrSessionNotFound)
	})

	t.Run("upsert and get", func(t *testing.T) {
		session := testSession()
		require.NoError(t, repo.Upsert("sid-1", session))

		got, err := repo.Get("sid-1")
		require.NoError(t, err)
		require.Equal(t, session.Principal, got.Principal)
		require.Equal(t, session.CSRFToken, got.CSRFToken)
	})

	t.Run("upsert overwrites", func(t *testing.T) {
		session := testSession()
		session.Principal.Username = "grace"
		require.NoError(t, repo.Upsert("sid-1", session))

		got, err := repo.Get("sid-1")
		require.NoError(t, err)
		require.Equal(t, "grace", got.Principal.Username)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete("sid-1"))
		_, err := repo.Get("sid-1")
		require.ErrorIs(t, err, errs.ErrSessionNotFound)
	})

	t.Run("delete absent session", func(t *testing.T) {
		require.NoError(t, repo.Delete("never-existed"))
	})

	t.Run("empty session id", func(t *testing.T) {
		require.Error(t, repo.Upsert("", testSession()))
		_, err := repo.Get("")
		require.Error(t, err)
		require.Error(t, repo.Delete(""))
	})
}
