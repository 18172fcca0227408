package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-identity/internal/config"
	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/internal/mock"
	"github.com/MKhiriev/go-identity/internal/service"
	"github.com/MKhiriev/go-identity/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testHandler struct {
	authService    *mock.MockAuthService
	userService    *mock.MockUserService
	appInfoService *mock.MockAppInfoService

	router *chi.Mux
}

func newTestHandler(t *testing.T) *testHandler {
	t.Helper()
	return newTestHandlerWithLogger(t, logger.Nop())
}

func newTestHandlerWithLogger(t *testing.T, log *logger.Logger) *testHandler {
	t.Helper()

	ctrl := gomock.NewController(t)
	th := &testHandler{
		authService:    mock.NewMockAuthService(ctrl),
		userService:    mock.NewMockUserService(ctrl),
		appInfoService: mock.NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		AuthService:    th.authService,
		UserService:    th.userService,
		AppInfoService: th.appInfoService,
	}
	th.router = NewHandler(services, config.Server{RequestTimeout: 5 * time.Second}, log).Init()

	return th
}

// expectAuthenticated makes the auth middleware resolve "good-token" to user.
func (th *testHandler) expectAuthenticated(user models.User) {
	th.authService.EXPECT().Authenticate(gomock.Any(), "good-token").Return(user, nil)
}

func doRequest(t *testing.T, router http.Handler, method, target string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	return decodeBody[models.ErrorResponse](t, rec)
}
