//go:build unit

package sessionstore_test

import (
	"testing"
	"time"

	"cast-booking/internal/domain/reservation"
	"cast-booking/internal/infra/sessionstore"
	"cast-booking/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(ttl time.Duration) (*sessionstore.Store, *clock.MockClock) {
	clk := clock.NewMockClock(time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC))
	return sessionstore.NewStore(ttl, clk), clk
}

func newTestMachine() *reservation.Machine {
	return reservation.NewMachine("cast-001", "さくら", 200, 100)
}

func TestStoreCreateAndGet(t *testing.T) {
	store, _ := newTestStore(time.Hour)

	session := store.Create("user-1", newTestMachine())
	require.NotEqual(t, uuid.Nil, session.ID)
	assert.Equal(t, "user-1", session.UserID)

	got, ok := store.Get(session.ID)
	require.True(t, ok)
	assert.Same(t, session, got)

	_, ok = store.Get(uuid.New())
	assert.False(t, ok)
}

func TestStoreTTL(t *testing.T) {
	t.Run("TTL超過でセッション消滅", func(t *testing.T) {
		store, clk := newTestStore(time.Hour)
		session := store.Create("user-1", newTestMachine())

		clk.Add(time.Hour + time.Minute)

		_, ok := store.Get(session.ID)
		assert.False(t, ok)
		assert.Equal(t, 0, store.Len())
	})

	t.Run("操作でTTLは更新される", func(t *testing.T) {
		store, clk := newTestStore(time.Hour)
		session := store.Create("user-1", newTestMachine())

		clk.Add(50 * time.Minute)
		require.NoError(t, session.Update(clk.Now(), func(*reservation.Machine) error { return nil }))

		clk.Add(50 * time.Minute)
		_, ok := store.Get(session.ID)
		assert.True(t, ok, "a touched session lives a full TTL past the touch")
	})

	t.Run("期限切れはCreate時に掃除される", func(t *testing.T) {
		store, clk := newTestStore(time.Hour)
		store.Create("user-1", newTestMachine())
		store.Create("user-2", newTestMachine())

		clk.Add(2 * time.Hour)
		store.Create("user-3", newTestMachine())

		assert.Equal(t, 1, store.Len())
	})
}

func TestSessionSubmitFlag(t *testing.T) {
	store, _ := newTestStore(time.Hour)
	session := store.Create("user-1", newTestMachine())

	require.True(t, session.TryBeginSubmit())
	assert.False(t, session.TryBeginSubmit(), "a second submit must not start while one is in flight")

	session.EndSubmit()
	assert.True(t, session.TryBeginSubmit())
}

func TestSessionUpdatePropagatesError(t *testing.T) {
	store, clk := newTestStore(time.Hour)
	session := store.Create("user-1", newTestMachine())

	err := session.Update(clk.Now(), func(m *reservation.Machine) error {
		return m.Retreat() // invalid at DATE
	})
	assert.ErrorIs(t, err, reservation.ErrInvalidTransition)
}
