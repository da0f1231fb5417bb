package tokenstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gorilla/securecookie"
	"github.com/stretchr/testify/assert"
)

func TestFileStoreRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "token")
	store := NewFileStore(path, securecookie.GenerateRandomKey(32), nil)

	// Empty before anything is stored.
	token, err := store.Token(ctx)
	assert.NoError(t, err)
	assert.Empty(t, token)

	assert.NoError(t, store.SetToken(ctx, "bearer-xyz"))

	token, err = store.Token(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "bearer-xyz", token)

	// The credential is not stored in the clear.
	raw, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.NotContains(t, string(raw), "bearer-xyz")

	assert.NoError(t, store.Clear(ctx))

	token, err = store.Token(ctx)
	assert.NoError(t, err)
	assert.Empty(t, token)

	// Clearing twice is fine.
	assert.NoError(t, store.Clear(ctx))
}

func TestFileStoreRejectsTamperedPayload(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "token")
	store := NewFileStore(path, securecookie.GenerateRandomKey(32), nil)

	assert.NoError(t, store.SetToken(ctx, "bearer-xyz"))
	assert.NoError(t, os.WriteFile(path, []byte("tampered"), 0o600))

	_, err := store.Token(ctx)
	assert.Error(t, err)
}

func TestFileStoreKeyMismatch(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "token")

	writer := NewFileStore(path, securecookie.GenerateRandomKey(32), nil)
	assert.NoError(t, writer.SetToken(ctx, "bearer-xyz"))

	reader := NewFileStore(path, securecookie.GenerateRandomKey(32), nil)
	_, err := reader.Token(ctx)
	assert.Error(t, err)
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemoryStore()

	token, err := store.Token(ctx)
	assert.NoError(t, err)
	assert.Empty(t, token)

	assert.NoError(t, store.SetToken(ctx, "bearer-xyz"))
	token, err = store.Token(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "bearer-xyz", token)

	assert.NoError(t, store.Clear(ctx))
	token, err = store.Token(ctx)
	assert.NoError(t, err)
	assert.Empty(t, token)
}
