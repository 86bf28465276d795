package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventboard/internal/domain"
)

func TestEventCreateAndList(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	users := NewUserRepository(db)
	require.NoError(t, users.Init(ctx))
	events := NewEventRepository(db)
	require.NoError(t, events.Init(ctx))

	creator := &domain.User{Username: "alice", PasswordHash: "h"}
	_, err = users.Create(ctx, creator)
	require.NoError(t, err)

	first := &domain.Event{Name: "Go Meetup", Description: "monthly", ContactEmail: "go@example.com", CreatedBy: creator.ID}
	_, err = events.Create(ctx, first)
	require.NoError(t, err)
	second := &domain.Event{Name: "Hack Night", CreatedBy: creator.ID}
	_, err = events.Create(ctx, second)
	require.NoError(t, err)

	listed, err := events.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	// newest first
	assert.Equal(t, "Hack Night", listed[0].Name)
	assert.Equal(t, "Go Meetup", listed[1].Name)
	assert.Equal(t, creator.ID, listed[1].CreatedBy)
}
