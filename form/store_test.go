package form_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/smartscrape/form"
	"github.com/fwojciec/smartscrape/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_GetOrCreate(t *testing.T) {
	t.Parallel()

	t.Run("creates a session for an unknown ID", func(t *testing.T) {
		t.Parallel()

		store := form.NewStore(form.NewController(&mock.ExtractionService{}, nil), 0)

		sess, created := store.GetOrCreate("does-not-exist")

		assert.True(t, created)
		assert.NotEqual(t, "does-not-exist", sess.ID())
		assert.NotEmpty(t, sess.ID())
		assert.Equal(t, 1, store.Len())
	})

	t.Run("returns the existing session", func(t *testing.T) {
		t.Parallel()

		store := form.NewStore(form.NewController(&mock.ExtractionService{}, nil), 0)
		first := store.Create()

		again, created := store.GetOrCreate(first.ID())

		assert.False(t, created)
		assert.Same(t, first, again)
	})

	t.Run("creates distinct IDs", func(t *testing.T) {
		t.Parallel()

		store := form.NewStore(form.NewController(&mock.ExtractionService{}, nil), 0)

		a := store.Create()
		b := store.Create()

		assert.NotEqual(t, a.ID(), b.ID())
		assert.Equal(t, 2, store.Len())
	})
}

func TestStore_Sweep(t *testing.T) {
	t.Parallel()

	t.Run("removes idle sessions past the TTL", func(t *testing.T) {
		t.Parallel()

		store := form.NewStore(form.NewController(&mock.ExtractionService{}, nil), time.Minute)
		sess := store.Create()

		assert.Equal(t, 0, store.Sweep(time.Now()))
		assert.Equal(t, 1, store.Sweep(time.Now().Add(2*time.Minute)))

		_, ok := store.Get(sess.ID())
		assert.False(t, ok)
	})

	t.Run("keeps busy sessions", func(t *testing.T) {
		t.Parallel()

		store := form.NewStore(form.NewController(&mock.ExtractionService{}, nil), time.Minute)
		sess := store.Create()
		sess.Start()
		defer sess.Stop()

		assert.Equal(t, 0, store.Sweep(time.Now().Add(time.Hour)))
		_, ok := store.Get(sess.ID())
		assert.True(t, ok)
	})
}

func TestStore_Run_StopsOnCancel(t *testing.T) {
	t.Parallel()

	store := form.NewStore(form.NewController(&mock.ExtractionService{}, nil), time.Minute)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		store.Run(ctx, time.Millisecond)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		require.Fail(t, "Run did not return after cancel")
	}
}
