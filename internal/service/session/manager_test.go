package session

import (
	"testing"
	"time"

	"github.com/gravity-games/dropfour/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGet(t *testing.T) {
	mgr := NewManager()

	sess := mgr.CreateVersusBot("ada", domain.TierEasy)
	require.NotEmpty(t, sess.ID)

	got, ok := mgr.Get(sess.ID)
	require.True(t, ok)
	assert.Same(t, sess, got)
	assert.Equal(t, 1, mgr.Count())

	_, ok = mgr.Get("nope")
	assert.False(t, ok)
}

func TestRemove(t *testing.T) {
	mgr := NewManager()
	sess := mgr.CreateVersusHuman("ada", "grace")

	mgr.Remove(sess.ID)
	_, ok := mgr.Get(sess.ID)
	assert.False(t, ok)
	assert.Equal(t, 0, mgr.Count())
}

func TestPlayStampsActivity(t *testing.T) {
	mgr := NewManager()
	sess := mgr.CreateVersusBot("ada", domain.TierStupid)

	before := sess.LastActiveAt()
	time.Sleep(time.Millisecond)
	require.NoError(t, sess.Play(3))

	assert.True(t, sess.LastActiveAt().After(before))
}

func TestSnapshotCarriesSessionID(t *testing.T) {
	mgr := NewManager()
	sess := mgr.CreateVersusBot("ada", domain.TierNormal)

	state := sess.Snapshot()
	assert.Equal(t, sess.ID, state.ID)
	assert.Equal(t, string("active"), state.Status)
}

func TestCleanupExpiredKeepsLiveSessions(t *testing.T) {
	mgr := NewManager()
	live := mgr.CreateVersusBot("ada", domain.TierNormal)

	finished := mgr.CreateVersusHuman("ada", "grace")
	winByStacking(t, finished)

	time.Sleep(2 * time.Millisecond)
	removed := mgr.CleanupExpired(time.Millisecond)

	assert.Equal(t, 1, removed)
	_, ok := mgr.Get(finished.ID)
	assert.False(t, ok)
	_, ok = mgr.Get(live.ID)
	assert.True(t, ok)
}

func TestCleanupExpiredHonorsTTL(t *testing.T) {
	mgr := NewManager()
	finished := mgr.CreateVersusHuman("ada", "grace")
	winByStacking(t, finished)

	// finished but not yet idle long enough
	assert.Equal(t, 0, mgr.CleanupExpired(time.Hour))
	_, ok := mgr.Get(finished.ID)
	assert.True(t, ok)
}

func winByStacking(t *testing.T, sess *Session) {
	t.Helper()
	for _, col := range []int{1, 2, 1, 2, 1, 2, 1} {
		require.NoError(t, sess.Play(col))
	}
	require.True(t, sess.Match.IsOver())
}
