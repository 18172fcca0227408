package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-identity/internal/app"
	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/internal/service"
	"github.com/MKhiriev/go-identity/internal/utils"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:                 http.StatusBadRequest,
	ErrInvalidUserID:               http.StatusBadRequest,
	ErrInvalidLimit:                http.StatusBadRequest,
	service.ErrInvalidDataProvided: http.StatusBadRequest,

	service.ErrConflict: http.StatusConflict,
	service.ErrNotFound: http.StatusNotFound,

	service.ErrWrongCredentials: http.StatusUnauthorized,
	service.ErrAccountBlocked:   http.StatusUnauthorized,
	service.ErrTokenIsInvalid:   http.StatusUnauthorized,
	service.ErrTokenIsExpired:   http.StatusUnauthorized,
	service.ErrMissingToken:     http.StatusUnauthorized,
	service.ErrUserNotFound:     http.StatusUnauthorized,

	service.ErrStoreUnavailable:    http.StatusInternalServerError,
	service.ErrHashingPassword:     http.StatusInternalServerError,
	service.ErrTokenCreationFailed: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the client-visible text for err. Server-side
// failures get an opaque message so driver errors and query text never
// leave the process.
func messageFromError(err error, status int) string {
	switch {
	case status >= http.StatusInternalServerError:
		return app.MsgInternalServerError
	case errors.Is(err, service.ErrInvalidDataProvided):
		// the validator error names the offending fields, never their values
		return err.Error()
	case errors.Is(err, ErrInvalidJSON):
		return ErrInvalidJSON.Error()
	}

	for target := range errorStatusMap {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return app.MsgInternalServerError
}

// writeError logs err and writes the mapped status and ErrorResponse body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	writeErrorMessage(w, r, err, status, messageFromError(err, status))
}

func writeErrorMessage(w http.ResponseWriter, r *http.Request, err error, status int, message string) {
	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, werr := utils.WriteError(w, message, status); werr != nil {
		log.Err(werr).Msg("error writing error response")
	}
}
