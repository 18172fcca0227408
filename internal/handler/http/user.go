package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-identity/internal/app"
	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/internal/service"
	"github.com/MKhiriev/go-identity/internal/utils"
	"github.com/MKhiriev/go-identity/models"
	"github.com/go-chi/chi/v5"
)

const maxCredentialsBodySize = 1 << 20

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	credentials, err := decodeCredentials(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.RegisterUser(r.Context(), credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", user.ID).Msg("user registered")
	h.writeJSON(w, r, user, http.StatusOK)
}

// login answers 401 with the same body for an unknown username and a wrong
// password so the response does not reveal which one failed.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	credentials, err := decodeCredentials(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.Login(r.Context(), credentials)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) || errors.Is(err, service.ErrWrongCredentials) {
			writeErrorMessage(w, r, err, http.StatusUnauthorized, app.MsgInvalidCredentials)
			return
		}
		writeError(w, r, err)
		return
	}

	w.Header().Set("Authorization", utils.BearerHeader(token.Token))
	h.writeJSON(w, r, token, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.UserFromContext(r.Context())
	if !ok {
		writeErrorMessage(w, r, service.ErrMissingToken, http.StatusUnauthorized, app.MsgUnauthorized)
		return
	}

	h.writeJSON(w, r, user, http.StatusOK)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	var limit uint64
	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		parsed, err := strconv.ParseUint(rawLimit, 10, 64)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidLimit, err))
			return
		}
		limit = parsed
	}

	users, err := h.services.UserService.ListUsers(r.Context(), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, users, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := userIDFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, user, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := userIDFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	deleted, err := h.services.UserService.DeleteUser(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if deleted {
		logger.FromRequest(r).Info().Int64("user_id", id).Msg("user deleted")
	}
	h.writeJSON(w, r, models.DeleteResult{Status: deleted}, http.StatusOK)
}

func (h *Handler) apiInfo(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, h.services.AppInfoService.GetAppInfo(r.Context()), http.StatusOK)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

func decodeCredentials(w http.ResponseWriter, r *http.Request) (models.Credentials, error) {
	var credentials models.Credentials

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxCredentialsBodySize))
	if err := decoder.Decode(&credentials); err != nil {
		return models.Credentials{}, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	return credentials, nil
}

func userIDFromPath(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidUserID
	}
	return id, nil
}
