package lru_test

import (
	"context"
	"testing"

	"github.com/fwojciec/wordfreq"
	"github.com/fwojciec/wordfreq/lru"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService(t *testing.T) {
	t.Parallel()

	t.Run("creates sessions with defaults and unique IDs", func(t *testing.T) {
		t.Parallel()

		svc, err := lru.NewSessionService(10)
		require.NoError(t, err)

		a, err := svc.CreateSession(context.Background())
		require.NoError(t, err)
		b, err := svc.CreateSession(context.Background())
		require.NoError(t, err)

		assert.NotEmpty(t, a.ID)
		assert.NotEqual(t, a.ID, b.ID)
		assert.Equal(t, 1, a.MinFreq)
		assert.Equal(t, wordfreq.ChartWordCloud, a.Kind)
		assert.Equal(t, 2, svc.Len())
	})

	t.Run("finds and updates a session", func(t *testing.T) {
		t.Parallel()

		svc, err := lru.NewSessionService(10)
		require.NoError(t, err)
		sess, err := svc.CreateSession(context.Background())
		require.NoError(t, err)

		sess.URL = "https://example.com"
		sess.MinFreq = 3
		require.NoError(t, svc.UpdateSession(context.Background(), sess))

		got, err := svc.FindSessionByID(context.Background(), sess.ID)
		require.NoError(t, err)
		assert.Equal(t, "https://example.com", got.URL)
		assert.Equal(t, 3, got.MinFreq)
	})

	t.Run("sessions do not share state", func(t *testing.T) {
		t.Parallel()

		svc, err := lru.NewSessionService(10)
		require.NoError(t, err)
		a, err := svc.CreateSession(context.Background())
		require.NoError(t, err)
		b, err := svc.CreateSession(context.Background())
		require.NoError(t, err)

		a.MinFreq = 5
		require.NoError(t, svc.UpdateSession(context.Background(), a))

		got, err := svc.FindSessionByID(context.Background(), b.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, got.MinFreq)
	})

	t.Run("returned sessions are copies", func(t *testing.T) {
		t.Parallel()

		svc, err := lru.NewSessionService(10)
		require.NoError(t, err)
		sess, err := svc.CreateSession(context.Background())
		require.NoError(t, err)

		got, err := svc.FindSessionByID(context.Background(), sess.ID)
		require.NoError(t, err)
		got.MinFreq = 9

		again, err := svc.FindSessionByID(context.Background(), sess.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, again.MinFreq)
	})

	t.Run("missing session is ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		svc, err := lru.NewSessionService(10)
		require.NoError(t, err)

		_, err = svc.FindSessionByID(context.Background(), "missing")
		assert.Equal(t, wordfreq.ENOTFOUND, wordfreq.ErrorCode(err))

		err = svc.UpdateSession(context.Background(), &wordfreq.Session{ID: "missing"})
		assert.Equal(t, wordfreq.ENOTFOUND, wordfreq.ErrorCode(err))
	})

	t.Run("update without ID is EINVALID", func(t *testing.T) {
		t.Parallel()

		svc, err := lru.NewSessionService(10)
		require.NoError(t, err)

		err = svc.UpdateSession(context.Background(), &wordfreq.Session{})
		assert.Equal(t, wordfreq.EINVALID, wordfreq.ErrorCode(err))
	})

	t.Run("evicts least recently used session", func(t *testing.T) {
		t.Parallel()

		svc, err := lru.NewSessionService(2)
		require.NoError(t, err)
		first, err := svc.CreateSession(context.Background())
		require.NoError(t, err)
		_, err = svc.CreateSession(context.Background())
		require.NoError(t, err)
		_, err = svc.CreateSession(context.Background())
		require.NoError(t, err)

		_, err = svc.FindSessionByID(context.Background(), first.ID)
		assert.Equal(t, wordfreq.ENOTFOUND, wordfreq.ErrorCode(err))
		assert.Equal(t, 2, svc.Len())
	})

	t.Run("non-positive size uses default", func(t *testing.T) {
		t.Parallel()

		svc, err := lru.NewSessionService(0)
		require.NoError(t, err)
		assert.Equal(t, 0, svc.Len())
	})
}
