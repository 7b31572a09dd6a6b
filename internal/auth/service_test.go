package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/priya1793/shopverse/internal/session"
)

func newTestService(store session.Store) *Service {
	return NewService(DemoAccounts(), store, NopDelayer{}, zap.NewNop())
}

func TestLogin_DemoAccountKeepsIdentity(t *testing.T) {
	sut := newTestService(session.NewMemoryStore())

	user, err := sut.Login(context.Background(), "demo@shopverse.com", "password123")

	require.NoError(t, err)
	assert.Equal(t, "1", user.ID)
	assert.Equal(t, "Demo User", user.Name)
	assert.True(t, len(user.Token) > len("jwt_"))
}

func TestLogin_UnknownEmailGetsFreshIdentity(t *testing.T) {
	sut := newTestService(session.NewMemoryStore())

	user, err := sut.Login(context.Background(), "ada@example.com", "whatever")

	require.NoError(t, err)
	assert.Equal(t, "ada", user.Name)
	assert.NotEqual(t, "1", user.ID)
}

func TestSignup_PersistsSession(t *testing.T) {
	store := session.NewMemoryStore()
	sut := newTestService(store)
	ctx := context.Background()

	user, err := sut.Signup(ctx, "Ada Lovelace", "ada@example.com", "secret")
	require.NoError(t, err)

	token, err := store.Get(ctx, session.KeyToken)
	require.NoError(t, err)
	assert.Equal(t, user.Token, token)

	restored, err := sut.Restore(ctx)
	require.NoError(t, err)
	require.NotNil(t, restored)
	assert.Equal(t, "Ada Lovelace", restored.Name)
	assert.Equal(t, user.Token, restored.Token)
}

func TestLogout_ClearsSession(t *testing.T) {
	sut := newTestService(session.NewMemoryStore())
	ctx := context.Background()

	_, err := sut.Login(ctx, "demo@shopverse.com", "password123")
	require.NoError(t, err)

	require.NoError(t, sut.Logout(ctx))

	restored, err := sut.Restore(ctx)
	require.NoError(t, err)
	assert.Nil(t, restored)
}

func TestRestore_NoSessionIsLoggedOut(t *testing.T) {
	sut := newTestService(session.NewMemoryStore())

	user, err := sut.Restore(context.Background())

	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestRestore_MalformedUserIsDiscarded(t *testing.T) {
	store := session.NewMemoryStore()
	sut := newTestService(store)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, session.KeyToken, "jwt_abc"))
	require.NoError(t, store.Set(ctx, session.KeyUser, "{not json"))

	user, err := sut.Restore(ctx)

	require.NoError(t, err)
	assert.Nil(t, user)

	// The broken entries are gone afterwards.
	_, err = store.Get(ctx, session.KeyToken)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestVerify(t *testing.T) {
	sut := newTestService(session.NewMemoryStore())
	ctx := context.Background()

	user, err := sut.Login(ctx, "demo@shopverse.com", "password123")
	require.NoError(t, err)

	verified, err := sut.Verify(ctx, user.Token)
	require.NoError(t, err)
	require.NotNil(t, verified)
	assert.Equal(t, user.ID, verified.ID)

	verified, err = sut.Verify(ctx, "jwt_forged")
	require.NoError(t, err)
	assert.Nil(t, verified)
}

func TestFixedDelayer_HonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := FixedDelayer{D: time.Minute}.Delay(ctx)

	require.ErrorIs(t, err, context.Canceled)
}

func TestFixedDelayer_ElapsesNormally(t *testing.T) {
	err := FixedDelayer{D: time.Millisecond}.Delay(context.Background())
	require.NoError(t, err)
}
