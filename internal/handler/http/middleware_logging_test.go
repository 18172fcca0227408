package http

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/internal/service"
	"github.com/MKhiriev/go-identity/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestWithLogging(t *testing.T) {
	var buf bytes.Buffer
	th := newTestHandlerWithLogger(t, &logger.Logger{Logger: zerolog.New(&buf)})
	th.authService.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.IssuedToken{}, service.ErrWrongCredentials)

	doRequest(t, th.router, http.MethodPost, "/api/user/login?from=test",
		models.Credentials{Username: "alice", Password: "super-secret-pass"}, "")

	logs := buf.String()
	assert.Contains(t, logs, `"method":"POST"`)
	assert.Contains(t, logs, `"uri":"/api/user/login?from=test"`)
	assert.Contains(t, logs, `"status":401`)
	assert.Contains(t, logs, `"duration":`)
	assert.Contains(t, logs, `"size":`)
	assert.NotContains(t, logs, "super-secret-pass")
}

func TestResponseWriter(t *testing.T) {
	t.Run("implicit 200 and size", func(t *testing.T) {
		rec := &recorder{header: http.Header{}}
		w := &responseWriter{ResponseWriter: rec}

		_, _ = w.Write([]byte("hello"))
		_, _ = w.Write([]byte(" world"))

		assert.Equal(t, http.StatusOK, w.status)
		assert.Equal(t, 11, w.size)
		assert.Equal(t, 1, rec.headerWrites)
	})

	t.Run("header forwarded once", func(t *testing.T) {
		rec := &recorder{header: http.Header{}}
		w := &responseWriter{ResponseWriter: rec}

		w.WriteHeader(http.StatusCreated)
		w.WriteHeader(http.StatusInternalServerError)

		assert.Equal(t, http.StatusCreated, w.status)
		assert.Equal(t, http.StatusCreated, rec.status)
		assert.Equal(t, 1, rec.headerWrites)
		assert.Same(t, http.ResponseWriter(rec), w.Unwrap())
	})
}

type recorder struct {
	header       http.Header
	status       int
	headerWrites int
	body         bytes.Buffer
}

func (r *recorder) Header() http.Header { return r.header }

func (r *recorder) WriteHeader(status int) {
	r.status = status
	r.headerWrites++
}

func (r *recorder) Write(b []byte) (int, error) { return r.body.Write(b) }
