package store

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-identity/internal/config"
	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDSN(t *testing.T) {
	tests := []struct {
		dsn     string
		dialect Dialect
		out     string
	}{
		{"postgres://u:p@localhost:5432/db?sslmode=disable", DialectPostgres, "postgres://u:p@localhost:5432/db?sslmode=disable"},
		{"postgresql://localhost/db", DialectPostgres, "postgresql://localhost/db"},
		{"sqlite://identity.db", DialectSQLite, "identity.db"},
		{"sqlite://:memory:", DialectSQLite, ":memory:"},
		{"file:identity.db?cache=shared", DialectSQLite, "file:identity.db?cache=shared"},
		{"mysql://localhost/db", "", "mysql://localhost/db"},
		{"", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			dialect, out := parseDSN(tt.dsn)
			assert.Equal(t, tt.dialect, dialect)
			assert.Equal(t, tt.out, out)
		})
	}
}

func TestNewConnect_UnsupportedDSN(t *testing.T) {
	_, err := NewConnect(context.Background(), config.DB{DSN: "mysql://localhost/db"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDSN)
}

func TestIsPlainFilePath(t *testing.T) {
	assert.True(t, isPlainFilePath("identity.db"))
	assert.False(t, isPlainFilePath(":memory:"))
	assert.False(t, isPlainFilePath("file:identity.db"))
	assert.False(t, isPlainFilePath(""))
}

// TestStorages_SQLiteInMemory runs the real schema and repository against an
// in-memory SQLite database.
func TestStorages_SQLiteInMemory(t *testing.T) {
	ctx := context.Background()

	s, err := NewStorages(ctx, config.DB{DSN: "sqlite://:memory:"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.db.PingContext(ctx))

	repo := s.UserRepository

	alice, err := repo.CreateUser(ctx, "alice", "alice@example.com", "hash-a")
	require.NoError(t, err)
	assert.Positive(t, alice.ID)
	assert.True(t, alice.Status)
	assert.False(t, alice.CreatedAt.IsZero())

	_, err = repo.CreateUser(ctx, "alice", "other@example.com", "hash")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	_, err = repo.CreateUser(ctx, "other", "alice@example.com", "hash")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	bob, err := repo.CreateUser(ctx, "bob", "bob@example.com", "hash-b")
	require.NoError(t, err)

	found, err := repo.FindUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "hash-a", found.PasswordHash)

	matches, err := repo.FindUsersByUsernameOrEmail(ctx, "alice", "bob@example.com")
	require.NoError(t, err)
	assert.Len(t, matches, 2)

	all, err := repo.ListUsers(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	one, err := repo.ListUsers(ctx, 1)
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, alice.ID, one[0].ID)

	deleted, err := repo.DeleteUser(ctx, bob.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.DeleteUser(ctx, bob.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = repo.FindUserByID(ctx, bob.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
