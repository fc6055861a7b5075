package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithSession(t *testing.T) {
	ctx := WithSession(context.Background(), Session{UserID: 42})

	s, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, int64(42), s.UserID)
}

func TestFromContext_Missing(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	_, ok = FromContext(nil) //nolint:staticcheck // nil guard
	assert.False(t, ok)
}

func TestRequire(t *testing.T) {
	_, err := Require(context.Background())
	require.ErrorIs(t, err, ErrNoSession)

	s, err := Require(WithSession(context.Background(), Session{UserID: 7}))
	require.NoError(t, err)
	assert.Equal(t, int64(7), s.UserID)
}
