package http

import (
	"net/http"

	"github.com/MKhiriev/go-identity/internal/app"
	"github.com/MKhiriev/go-identity/internal/service"
	"github.com/MKhiriev/go-identity/internal/utils"
)

// auth rejects requests without a valid bearer token with 401 and stores the
// resolved account in the request context for downstream handlers.
//
// The header must have the exact form "Bearer <token>". Token verification,
// the account lookup and the status and password-snapshot checks are done by
// [service.AuthService.Authenticate].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			writeErrorMessage(w, r, err, http.StatusUnauthorized, service.ErrMissingToken.Error())
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.Authenticate(ctx, token)
		if err != nil {
			status := statusFromError(err)
			message := messageFromError(err, status)
			if status == http.StatusNotFound || status == http.StatusBadRequest {
				status, message = http.StatusUnauthorized, app.MsgUnauthorized
			}
			writeErrorMessage(w, r, err, status, message)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
	})
}
