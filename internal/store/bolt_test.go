package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lojasmm/wabridge/internal/flow"
)

func newTestStore(t *testing.T) *BoltStore {
	t.Helper()
	s, err := NewBoltStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestCreateAndGetBot(t *testing.T) {
	s := newTestStore(t)
	bot := flow.NewBot("ws1", "Support", time.Now().UTC())

	require.NoError(t, s.CreateBot(bot))

	got, err := s.GetBot(bot.ID)
	require.NoError(t, err)
	assert.Equal(t, bot.Name, got.Name)
	assert.Equal(t, bot.Events, got.Events)
	assert.True(t, bot.CreatedAt.Equal(got.CreatedAt))

	assert.ErrorIs(t, s.CreateBot(bot), ErrExists)

	_, err = s.GetBot("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListBots(t *testing.T) {
	s := newTestStore(t)
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	oldest := flow.NewBot("ws1", "oldest", base)
	newest := flow.NewBot("ws1", "newest", base.Add(2*time.Hour))
	middle := flow.NewBot("ws1", "middle", base.Add(time.Hour))
	archived := flow.NewBot("ws1", "archived", base.Add(3*time.Hour))
	archived.IsArchived = true
	other := flow.NewBot("ws2", "other", base)

	for _, b := range []flow.Bot{oldest, newest, middle, archived, other} {
		require.NoError(t, s.CreateBot(b))
	}

	bots, err := s.ListBots("ws1", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"newest", "middle", "oldest"}, botNames(bots))

	bots, err = s.ListBots("ws1", []string{oldest.ID, archived.ID, other.ID})
	require.NoError(t, err)
	assert.Equal(t, []string{"oldest"}, botNames(bots))

	bots, err = s.ListBots("nobody", nil)
	require.NoError(t, err)
	assert.NotNil(t, bots)
	assert.Empty(t, bots)
}

func TestReplies(t *testing.T) {
	s := newTestStore(t)

	_, err := s.LastReply("5511")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.SaveReply(Reply{Phone: "5511", MessageID: "m1", Text: "first", Value: "first"}))
	require.NoError(t, s.SaveReply(Reply{Phone: "5511", MessageID: "m2", Text: "42", Value: float64(42)}))

	got, err := s.LastReply("5511")
	require.NoError(t, err)
	assert.Equal(t, "m2", got.MessageID)
	assert.Equal(t, float64(42), got.Value)
}

func botNames(bots []flow.Bot) []string {
	names := make([]string, len(bots))
	for i, b := range bots {
		names[i] = b.Name
	}
	return names
}
