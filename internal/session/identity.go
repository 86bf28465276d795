// Package session binds authenticated users to server-side sessions and
// resolves them back. The session is always an explicit value handed in by
// the caller; nothing here reaches into request-global state.
package session

import (
	"context"
	"errors"

	"github.com/gin-contrib/sessions"

	"eventboard/internal/domain"
	"eventboard/internal/repository"
)

// userKey is the single session key this application uses. Its value is
// the authenticated user's identifier.
const userKey = "user"

// Identity translates between a session and a resolved user record.
type Identity struct {
	users repository.UserRepository
}

func NewIdentity(users repository.UserRepository) *Identity {
	return &Identity{users: users}
}

// Current returns the user bound to the session, or nil when the session
// carries no identity or the identity no longer resolves to a record.
// A dangling identifier is "not authenticated", not an error; a non-nil
// error means the store itself failed.
func (i *Identity) Current(ctx context.Context, sess sessions.Session) (*domain.User, error) {
	id, ok := sess.Get(userKey).(int64)
	if !ok {
		return nil, nil
	}

	user, err := i.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// Bind stores the user's identifier in the session, establishing the
// authenticated state. Callers must have verified credentials first.
func (i *Identity) Bind(sess sessions.Session, user *domain.User) error {
	sess.Set(userKey, user.ID)
	return sess.Save()
}

// Clear destroys the whole session, not just the identity key, so any
// other session-scoped state is discarded too. Clearing an already empty
// session is a no-op.
func (i *Identity) Clear(sess sessions.Session) error {
	sess.Clear()
	sess.Options(sessions.Options{Path: "/", MaxAge: -1})
	return sess.Save()
}
