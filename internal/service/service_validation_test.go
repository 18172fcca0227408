package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-identity/internal/mock"
	"github.com/MKhiriev/go-identity/internal/validators"
	"github.com/MKhiriev/go-identity/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthValidationService(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	inner := mock.NewMockAuthService(ctrl)
	svc := NewAuthValidationService().Wrap(inner)

	t.Run("invalid registration never reaches inner", func(t *testing.T) {
		_, err := svc.RegisterUser(ctx, models.Credentials{Username: "alice", Email: "nope", Password: "correct horse"})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
		assert.ErrorIs(t, err, validators.ErrInvalidCredentials)
	})

	t.Run("valid registration delegates", func(t *testing.T) {
		inner.EXPECT().RegisterUser(ctx, aliceCreds).Return(models.User{ID: 1}, nil)

		user, err := svc.RegisterUser(ctx, aliceCreds)
		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
	})

	t.Run("login without password", func(t *testing.T) {
		_, err := svc.Login(ctx, models.Credentials{Username: "alice"})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("login without email delegates", func(t *testing.T) {
		creds := models.Credentials{Username: "alice", Password: "x"}
		inner.EXPECT().Login(ctx, creds).Return(models.IssuedToken{Token: "t"}, nil)

		token, err := svc.Login(ctx, creds)
		require.NoError(t, err)
		assert.Equal(t, "t", token.Token)
	})

	t.Run("authenticate passes through", func(t *testing.T) {
		inner.EXPECT().Authenticate(ctx, "tok").Return(models.User{ID: 1}, nil)

		_, err := svc.Authenticate(ctx, "tok")
		require.NoError(t, err)
	})
}

func TestUserValidationService(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	inner := mock.NewMockUserService(ctrl)
	svc := NewUserValidationService().Wrap(inner)

	_, err := svc.GetUser(ctx, 0)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.DeleteUser(ctx, -1)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	inner.EXPECT().GetUser(ctx, int64(2)).Return(models.User{ID: 2}, nil)
	inner.EXPECT().DeleteUser(ctx, int64(2)).Return(true, nil)
	inner.EXPECT().ListUsers(ctx, uint64(5)).Return(nil, nil)

	_, err = svc.GetUser(ctx, 2)
	require.NoError(t, err)
	_, err = svc.DeleteUser(ctx, 2)
	require.NoError(t, err)
	_, err = svc.ListUsers(ctx, 5)
	require.NoError(t, err)
}
