package http

import (
	"context"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/MKhiriev/go-identity/internal/config"
	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/internal/service"
	"github.com/MKhiriev/go-identity/internal/store"
	"github.com/MKhiriev/go-identity/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIntegrationRouter(t *testing.T) *chi.Mux {
	t.Helper()

	log := logger.Nop()
	storages, err := store.NewStorages(context.Background(), config.DB{DSN: "sqlite://:memory:"}, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	services, err := service.NewServices(storages, config.App{
		PasswordHashKey: "integration-hash-key",
		TokenSignKey:    "integration-sign-key",
		TokenIssuer:     "go-identity",
		TokenDuration:   time.Hour,
		Version:         "test",
		Argon:           config.Argon{Time: 1, Memory: 8 * 1024, Threads: 1},
	}, log)
	require.NoError(t, err)

	return NewHandler(services, config.Server{RequestTimeout: 10 * time.Second}, log).Init()
}

func TestRegisterLoginAuthenticateFlow(t *testing.T) {
	router := newIntegrationRouter(t)

	registration := models.Credentials{Username: "alice", Email: "a@x.com", Password: "pw123"}

	rec := doRequest(t, router, http.MethodPost, "/api/user/register", registration, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	registered := decodeBody[models.User](t, rec)
	assert.Positive(t, registered.ID)
	assert.True(t, registered.Status)
	assert.NotContains(t, rec.Body.String(), "argon2id")

	// same username, different email
	rec = doRequest(t, router, http.MethodPost, "/api/user/register",
		models.Credentials{Username: "alice", Email: "other@x.com", Password: "pw123"}, "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/api/user/login",
		models.Credentials{Username: "alice", Password: "wrong"}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	wrongPassword := decodeErrorBody(t, rec).Error

	rec = doRequest(t, router, http.MethodPost, "/api/user/login",
		models.Credentials{Username: "mallory", Password: "pw123"}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, wrongPassword, decodeErrorBody(t, rec).Error)

	rec = doRequest(t, router, http.MethodPost, "/api/user/login",
		models.Credentials{Username: "alice", Password: "pw123"}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	token := decodeBody[models.IssuedToken](t, rec)
	assert.NotEmpty(t, token.Token)
	assert.Greater(t, token.Expire, time.Now().Unix())

	rec = doRequest(t, router, http.MethodGet, "/api/user/me", nil, token.Token)
	require.Equal(t, http.StatusOK, rec.Code)
	me := decodeBody[models.User](t, rec)
	assert.Equal(t, registered.ID, me.ID)
	assert.Equal(t, "alice", me.Username)

	rec = doRequest(t, router, http.MethodGet, "/api/user/me", nil, token.Token+"x")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		for _, path := range []string{"/api/user/register", "/api/user/login"} {
			rec = doRequest(t, router, method, path, nil, token.Token)
			assert.Equal(t, http.StatusNotFound, rec.Code, "%s %s", method, path)
		}
	}

	rec = doRequest(t, router, http.MethodGet, "/api/user/list", nil, token.Token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]models.User](t, rec), 1)

	rec = doRequest(t, router, http.MethodDelete, "/api/user/"+itoa(registered.ID), nil, token.Token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeBody[models.DeleteResult](t, rec).Status)

	// the token outlives its account but no longer authenticates
	rec = doRequest(t, router, http.MethodGet, "/api/user/me", nil, token.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
