package admin

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/internal/mock"
	"github.com/MKhiriev/go-identity/internal/service"
	"github.com/MKhiriev/go-identity/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAdmin(t *testing.T, input string) (*Admin, *mock.MockAuthService, *mock.MockUserService, *bytes.Buffer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	authService := mock.NewMockAuthService(ctrl)
	userService := mock.NewMockUserService(ctrl)
	out := &bytes.Buffer{}

	a := New(&service.Services{AuthService: authService, UserService: userService},
		newLinePrompter(strings.NewReader(input), out), out, logger.Nop())
	return a, authService, userService, out
}

func TestCreate(t *testing.T) {
	a, authService, _, out := newTestAdmin(t, " alice \nalice@example.com\ns3cret-pass\ns3cret-pass\n")
	authService.EXPECT().RegisterUser(gomock.Any(), models.Credentials{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	}).Return(models.User{ID: 5, Username: "alice"}, nil)

	require.NoError(t, a.Run(context.Background(), []string{"create"}))

	assert.Contains(t, out.String(), "user alice created with id 5")
}

func TestCreate_PasswordMismatch(t *testing.T) {
	a, _, _, _ := newTestAdmin(t, "alice\nalice@example.com\none-password\nother-password\n")

	err := a.Run(context.Background(), []string{"create"})

	assert.ErrorIs(t, err, ErrPasswordMismatch)
}

func TestCreate_Conflict(t *testing.T) {
	a, authService, _, _ := newTestAdmin(t, "alice\nalice@example.com\ns3cret-pass\ns3cret-pass")
	authService.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrConflict)

	err := a.Run(context.Background(), []string{"create"})

	assert.ErrorIs(t, err, service.ErrConflict)
}

func TestCreate_InputEndsEarly(t *testing.T) {
	a, _, _, _ := newTestAdmin(t, "alice\n")

	err := a.Run(context.Background(), []string{"create"})

	assert.ErrorIs(t, err, ErrReadingInput)
}

func TestList(t *testing.T) {
	a, _, userService, out := newTestAdmin(t, "")
	userService.EXPECT().ListUsers(gomock.Any(), uint64(0)).Return([]models.User{
		{ID: 1, Username: "alice", Email: "alice@example.com", Status: true},
		{ID: 2, Username: "bob", Email: "bob@example.com"},
	}, nil)

	require.NoError(t, a.Run(context.Background(), []string{"list"}))

	assert.Contains(t, out.String(), "alice@example.com")
	assert.Contains(t, out.String(), "disabled")
}

func TestList_BadLimit(t *testing.T) {
	a, _, _, _ := newTestAdmin(t, "")

	err := a.Run(context.Background(), []string{"list", "-1"})

	assert.ErrorIs(t, err, ErrInvalidLimit)
}

func TestRun_UnknownCommand(t *testing.T) {
	a, _, _, out := newTestAdmin(t, "")

	require.NoError(t, a.Run(context.Background(), nil))
	assert.Contains(t, out.String(), "usage:")
	assert.ErrorIs(t, a.Run(context.Background(), []string{"drop"}), ErrUnknownCommand)
}
