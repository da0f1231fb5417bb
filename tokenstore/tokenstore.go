// tokenstore package persists the console's bearer token in local client-side storage.
package tokenstore

import (
	"context"
	"os"
	"sync"

	"github.com/go-playground/errors/v5"
	"github.com/gorilla/securecookie"
)

// tsKey is a type for keys within the sealed token payload
type tsKey string

func (k tsKey) String() string {
	return string(k)
}

// tokenKey is the storage key the token lives under.
const tokenKey tsKey = "token"

// Store defines an interface for reading and writing the persisted bearer token.
// A missing token is not an error; it reads back as the empty string.
type Store interface {
	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// FileStore persists the token in a single file, sealed with a securecookie
// codec so the credential is not stored in the clear.
type FileStore struct {
	path         string
	secureCookie *securecookie.SecureCookie
}

var _ Store = &FileStore{}

// NewFileStore creates a FileStore at path. hashKey and blockKey follow
// securecookie's key semantics; blockKey may be nil to disable encryption.
func NewFileStore(path string, hashKey, blockKey []byte) *FileStore {
	return &FileStore{
		path:         path,
		secureCookie: securecookie.New(hashKey, blockKey),
	}
}

// Token reads the persisted token, empty when none has been stored.
func (s *FileStore) Token(_ context.Context) (string, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}

		return "", errors.Wrap(err, "os.ReadFile()")
	}

	val := make(map[tsKey]string)
	if err := s.secureCookie.Decode(tokenKey.String(), string(raw), &val); err != nil {
		return "", errors.Wrap(err, "securecookie.Decode()")
	}

	return val[tokenKey], nil
}

// SetToken seals and persists the token.
func (s *FileStore) SetToken(_ context.Context, token string) error {
	val := map[tsKey]string{
		tokenKey: token,
	}

	encoded, err := s.secureCookie.Encode(tokenKey.String(), val)
	if err != nil {
		return errors.Wrap(err, "securecookie.Encode()")
	}

	if err := os.WriteFile(s.path, []byte(encoded), 0o600); err != nil {
		return errors.Wrap(err, "os.WriteFile()")
	}

	return nil
}

// Clear removes the persisted token.
func (s *FileStore) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "os.Remove()")
	}

	return nil
}

// MemoryStore is an in-memory Store for tests.
type MemoryStore struct {
	mu    sync.Mutex
	token string
}

var _ Store = &MemoryStore{}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Token returns the stored token.
func (s *MemoryStore) Token(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.token, nil
}

// SetToken stores the token.
func (s *MemoryStore) SetToken(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token

	return nil
}

// Clear removes the stored token.
func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""

	return nil
}
