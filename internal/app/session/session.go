// Package session carries the authenticated caller through a request context.
package session

import (
	"context"
	"errors"
)

type ctxKey struct{}

// ErrNoSession is returned when a protected operation runs without a session.
var ErrNoSession = errors.New("no session in context")

// Session identifies the authenticated caller.
type Session struct {
	UserID int64
}

// WithSession stores s in ctx.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session stored in ctx, if any.
func FromContext(ctx context.Context) (Session, bool) {
	if ctx == nil {
		return Session{}, false
	}

	s, ok := ctx.Value(ctxKey{}).(Session)

	return s, ok
}

// Require returns the session stored in ctx or ErrNoSession.
func Require(ctx context.Context) (Session, error) {
	s, ok := FromContext(ctx)
	if !ok {
		return Session{}, ErrNoSession
	}

	return s, nil
}
