package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/oriole/internal/auth"
	"github.com/MKhiriev/oriole/internal/logger"
	"github.com/MKhiriev/oriole/internal/utils"
)

const bearerPrefix = "Bearer "

// authGate enforces bearer-token authentication on secured routes.
//
// Paths the route table cannot resolve are let through: dispatch reports
// them as endpoint_not_found. For a secured route the request is rejected
// with 401 when:
//   - the "Authorization" header is absent (missing_bearer_token);
//   - the header does not start with "Bearer " (bearer_token_required);
//   - the token is forged or garbled (invalid_token, logged at warn level);
//   - the token is past its expiry (expired_token, logged at info level).
//
// On success the decoded claims and the "sub" claim are stored in the
// request's utils.RequestContext before delegating to the next handler.
func (h *Handler) authGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		secured, err := h.routes.RequiresAuth(requestPath(r))
		if err != nil || !secured {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		tokenString, err := getTokenFromAuthHeader(r.Header)
		if err != nil {
			log.Debug().Err(err).Msg("bearer token rejected")
			h.rejectAuth(w, r, err)
			return
		}

		claims, err := h.tokens.Decode(tokenString)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				log.Info().Err(err).Str("token", tokenString).Msg("intercepted an expired token")
			case errors.Is(err, auth.ErrMisconfiguration):
				log.Error().Err(err).Msg("authenticator is misconfigured")
			default:
				log.Warn().Err(err).Str("token", tokenString).Msg("someone tried to use a fake token")
				err = errors.Join(auth.ErrInvalidToken, err)
			}
			h.rejectAuth(w, r, err)
			return
		}

		ctx := r.Context()
		rc, _ := utils.RequestFromContext(ctx)
		rc.Claims = claims
		rc.UserID = claims.Subject()
		ctx = utils.WithRequestContext(ctx, rc)

		userLogger := log.With().Str("user_id", rc.UserID).Logger()
		ctx = userLogger.WithContext(ctx)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) rejectAuth(w http.ResponseWriter, r *http.Request, err error) {
	resp := responseFromError(err)
	h.metrics.authFailed(resp.code)
	h.writeError(w, r, resp.status, resp.code, nil)
}

// getTokenFromAuthHeader extracts the bearer token from the
// "Authorization" header.
//
// It returns the following sentinel errors:
//   - [ErrMissingBearerToken] if the header is absent;
//   - [ErrBearerTokenRequired] if the header is present but does not start
//     with "Bearer ".
//
// "Bearer " followed by nothing yields an empty token, which the
// authenticator rejects as invalid.
func getTokenFromAuthHeader(header http.Header) (string, error) {
	values := header.Values("Authorization")
	if len(values) == 0 {
		return "", ErrMissingBearerToken
	}

	authHeader := values[0]
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return "", ErrBearerTokenRequired
	}

	return authHeader[len(bearerPrefix):], nil
}
