package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/internal/mock"
	"github.com/MKhiriev/go-identity/internal/store"
	"github.com/MKhiriev/go-identity/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestAuthSvc wires authService to gomock collaborators.
func newTestAuthSvc(t *testing.T) (
	*authService,
	*mock.MockUserRepository,
	*mock.MockPasswordHasher,
	*mock.MockTokenService,
) {
	t.Helper()
	ctrl := gomock.NewController(t)

	repo := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)
	tokens := mock.NewMockTokenService(ctrl)

	svc := NewAuthService(repo, hasher, tokens, logger.Nop()).(*authService)
	return svc, repo, hasher, tokens
}

var aliceCreds = models.Credentials{Username: "alice", Email: "alice@example.com", Password: "correct horse"}

func storedAlice() models.User {
	return models.User{ID: 1, Username: "alice", Email: "alice@example.com", PasswordHash: "$argon2id$stored", Status: true}
}

// ── RegisterUser ─────────────────────────────────────────────────────────────

func TestAuthService_RegisterUser_Success(t *testing.T) {
	svc, repo, hasher, _ := newTestAuthSvc(t)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().FindUsersByUsernameOrEmail(ctx, "alice", "alice@example.com").Return([]models.User{}, nil),
		hasher.EXPECT().Hash("correct horse").Return("$argon2id$new", nil),
		repo.EXPECT().CreateUser(ctx, "alice", "alice@example.com", "$argon2id$new").
			Return(models.User{ID: 1, Username: "alice", Email: "alice@example.com", PasswordHash: "$argon2id$new", Status: true}, nil),
	)

	user, err := svc.RegisterUser(ctx, aliceCreds)
	require.NoError(t, err)

	assert.Equal(t, int64(1), user.ID)
	assert.True(t, user.Status)
	assert.Empty(t, user.PasswordHash, "registered record must not carry the hash")
}

func TestAuthService_RegisterUser_Conflict(t *testing.T) {
	tests := []struct {
		name     string
		existing models.User
	}{
		{"same username", models.User{ID: 9, Username: "alice", Email: "x@example.com"}},
		{"same email", models.User{ID: 9, Username: "bob", Email: "alice@example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _, _ := newTestAuthSvc(t)
			ctx := context.Background()

			// neither Hash nor CreateUser may be called
			repo.EXPECT().FindUsersByUsernameOrEmail(ctx, "alice", "alice@example.com").
				Return([]models.User{tt.existing}, nil)

			_, err := svc.RegisterUser(ctx, aliceCreds)
			require.ErrorIs(t, err, ErrConflict)
			assert.NotContains(t, err.Error(), "email:")
		})
	}
}

func TestAuthService_RegisterUser_RacedInsert(t *testing.T) {
	svc, repo, hasher, _ := newTestAuthSvc(t)
	ctx := context.Background()

	repo.EXPECT().FindUsersByUsernameOrEmail(ctx, gomock.Any(), gomock.Any()).Return(nil, nil)
	hasher.EXPECT().Hash(gomock.Any()).Return("$argon2id$new", nil)
	repo.EXPECT().CreateUser(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUserAlreadyExists)

	_, err := svc.RegisterUser(ctx, aliceCreds)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestAuthService_RegisterUser_StoreErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("lookup fails", func(t *testing.T) {
		svc, repo, _, _ := newTestAuthSvc(t)
		repo.EXPECT().FindUsersByUsernameOrEmail(ctx, gomock.Any(), gomock.Any()).
			Return(nil, store.ErrExecutingQuery)

		_, err := svc.RegisterUser(ctx, aliceCreds)
		assert.ErrorIs(t, err, ErrStoreUnavailable)
		assert.ErrorIs(t, err, store.ErrExecutingQuery)
	})

	t.Run("insert fails", func(t *testing.T) {
		svc, repo, hasher, _ := newTestAuthSvc(t)
		repo.EXPECT().FindUsersByUsernameOrEmail(ctx, gomock.Any(), gomock.Any()).Return(nil, nil)
		hasher.EXPECT().Hash(gomock.Any()).Return("h", nil)
		repo.EXPECT().CreateUser(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(models.User{}, store.ErrExecutingQuery)

		_, err := svc.RegisterUser(ctx, aliceCreds)
		assert.ErrorIs(t, err, ErrStoreUnavailable)
	})

	t.Run("hashing fails", func(t *testing.T) {
		svc, repo, hasher, _ := newTestAuthSvc(t)
		repo.EXPECT().FindUsersByUsernameOrEmail(ctx, gomock.Any(), gomock.Any()).Return(nil, nil)
		hasher.EXPECT().Hash(gomock.Any()).Return("", errors.New("entropy exhausted"))

		_, err := svc.RegisterUser(ctx, aliceCreds)
		assert.ErrorIs(t, err, ErrHashingPassword)
	})
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	svc, repo, hasher, tokens := newTestAuthSvc(t)
	ctx := context.Background()
	user := storedAlice()
	issued := models.IssuedToken{Token: "a.b.c", Expire: 1700000000}

	gomock.InOrder(
		repo.EXPECT().FindUserByUsername(ctx, "alice").Return(user, nil),
		hasher.EXPECT().Verify("correct horse", user.PasswordHash).Return(true),
		hasher.EXPECT().Fingerprint(user.PasswordHash).Return("fp"),
		tokens.EXPECT().IssueToken(ctx, user, "fp").Return(issued, nil),
	)

	got, err := svc.Login(ctx, aliceCreds)
	require.NoError(t, err)
	assert.Equal(t, issued, got)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc, repo, hasher, _ := newTestAuthSvc(t)
	ctx := context.Background()

	repo.EXPECT().FindUserByUsername(ctx, "alice").Return(models.User{}, store.ErrUserNotFound).Times(2)
	// the decoy is hashed once and then verified on every unknown-user login
	hasher.EXPECT().Hash(decoyPassword).Return("$argon2id$decoy", nil).Times(1)
	hasher.EXPECT().Verify("correct horse", "$argon2id$decoy").Return(false).Times(2)

	for range 2 {
		_, err := svc.Login(ctx, aliceCreds)
		assert.ErrorIs(t, err, ErrNotFound)
	}
}

func TestAuthService_Login_UnknownUserDecoyHashFails(t *testing.T) {
	svc, repo, hasher, _ := newTestAuthSvc(t)
	ctx := context.Background()

	repo.EXPECT().FindUserByUsername(ctx, "alice").Return(models.User{}, store.ErrUserNotFound)
	hasher.EXPECT().Hash(decoyPassword).Return("", errors.New("entropy exhausted"))
	hasher.EXPECT().Verify("correct horse", "").Return(false)

	_, err := svc.Login(ctx, aliceCreds)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, repo, hasher, _ := newTestAuthSvc(t)
	ctx := context.Background()
	user := storedAlice()

	repo.EXPECT().FindUserByUsername(ctx, "alice").Return(user, nil)
	hasher.EXPECT().Verify("correct horse", user.PasswordHash).Return(false)

	_, err := svc.Login(ctx, aliceCreds)
	assert.ErrorIs(t, err, ErrWrongCredentials)
}

func TestAuthService_Login_DisabledAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("correct password reports blocked", func(t *testing.T) {
		svc, repo, hasher, _ := newTestAuthSvc(t)
		user := storedAlice()
		user.Status = false

		repo.EXPECT().FindUserByUsername(ctx, "alice").Return(user, nil)
		hasher.EXPECT().Verify("correct horse", user.PasswordHash).Return(true)

		_, err := svc.Login(ctx, aliceCreds)
		assert.ErrorIs(t, err, ErrAccountBlocked)
	})

	t.Run("wrong password is checked first", func(t *testing.T) {
		svc, repo, hasher, _ := newTestAuthSvc(t)
		user := storedAlice()
		user.Status = false

		repo.EXPECT().FindUserByUsername(ctx, "alice").Return(user, nil)
		hasher.EXPECT().Verify("correct horse", user.PasswordHash).Return(false)

		_, err := svc.Login(ctx, aliceCreds)
		assert.ErrorIs(t, err, ErrWrongCredentials)
	})
}

func TestAuthService_Login_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("store failure", func(t *testing.T) {
		svc, repo, _, _ := newTestAuthSvc(t)
		repo.EXPECT().FindUserByUsername(ctx, "alice").Return(models.User{}, store.ErrExecutingQuery)

		_, err := svc.Login(ctx, aliceCreds)
		assert.ErrorIs(t, err, ErrStoreUnavailable)
	})

	t.Run("token issue failure", func(t *testing.T) {
		svc, repo, hasher, tokens := newTestAuthSvc(t)
		user := storedAlice()

		repo.EXPECT().FindUserByUsername(ctx, "alice").Return(user, nil)
		hasher.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(true)
		hasher.EXPECT().Fingerprint(gomock.Any()).Return("fp")
		tokens.EXPECT().IssueToken(ctx, user, "fp").Return(models.IssuedToken{}, ErrTokenCreationFailed)

		_, err := svc.Login(ctx, aliceCreds)
		assert.ErrorIs(t, err, ErrTokenCreationFailed)
	})
}

// ── Authenticate ─────────────────────────────────────────────────────────────

func TestAuthService_Authenticate_Success(t *testing.T) {
	svc, repo, hasher, tokens := newTestAuthSvc(t)
	ctx := context.Background()
	user := storedAlice()

	tokens.EXPECT().ParseToken(ctx, "a.b.c").Return(models.Claims{UserID: 1, PasswordHashSnapshot: "fp"}, nil)
	repo.EXPECT().FindUserByID(ctx, int64(1)).Return(user, nil)
	hasher.EXPECT().Fingerprint(user.PasswordHash).Return("fp")

	got, err := svc.Authenticate(ctx, "a.b.c")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Empty(t, got.PasswordHash)
}

func TestAuthService_Authenticate_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("empty token", func(t *testing.T) {
		svc, _, _, _ := newTestAuthSvc(t)
		_, err := svc.Authenticate(ctx, "")
		assert.ErrorIs(t, err, ErrMissingToken)
	})

	for _, parseErr := range []error{ErrTokenIsExpired, ErrTokenIsInvalid} {
		t.Run(parseErr.Error(), func(t *testing.T) {
			svc, _, _, tokens := newTestAuthSvc(t)
			tokens.EXPECT().ParseToken(ctx, "tok").Return(models.Claims{}, parseErr)

			_, err := svc.Authenticate(ctx, "tok")
			assert.ErrorIs(t, err, parseErr)
		})
	}

	t.Run("user deleted", func(t *testing.T) {
		svc, repo, _, tokens := newTestAuthSvc(t)
		tokens.EXPECT().ParseToken(ctx, "tok").Return(models.Claims{UserID: 1}, nil)
		repo.EXPECT().FindUserByID(ctx, int64(1)).Return(models.User{}, store.ErrUserNotFound)

		_, err := svc.Authenticate(ctx, "tok")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("store failure", func(t *testing.T) {
		svc, repo, _, tokens := newTestAuthSvc(t)
		tokens.EXPECT().ParseToken(ctx, "tok").Return(models.Claims{UserID: 1}, nil)
		repo.EXPECT().FindUserByID(ctx, int64(1)).Return(models.User{}, store.ErrExecutingQuery)

		_, err := svc.Authenticate(ctx, "tok")
		assert.ErrorIs(t, err, ErrStoreUnavailable)
	})

	t.Run("account disabled after issuance", func(t *testing.T) {
		svc, repo, _, tokens := newTestAuthSvc(t)
		user := storedAlice()
		user.Status = false

		tokens.EXPECT().ParseToken(ctx, "tok").Return(models.Claims{UserID: 1, PasswordHashSnapshot: "fp"}, nil)
		repo.EXPECT().FindUserByID(ctx, int64(1)).Return(user, nil)

		_, err := svc.Authenticate(ctx, "tok")
		assert.ErrorIs(t, err, ErrAccountBlocked)
	})

	t.Run("password changed after issuance", func(t *testing.T) {
		svc, repo, hasher, tokens := newTestAuthSvc(t)
		user := storedAlice()

		tokens.EXPECT().ParseToken(ctx, "tok").Return(models.Claims{UserID: 1, PasswordHashSnapshot: "old-fp"}, nil)
		repo.EXPECT().FindUserByID(ctx, int64(1)).Return(user, nil)
		hasher.EXPECT().Fingerprint(user.PasswordHash).Return("new-fp")

		_, err := svc.Authenticate(ctx, "tok")
		assert.ErrorIs(t, err, ErrTokenIsInvalid)
	})
}
