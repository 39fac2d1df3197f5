package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/memento-project/memento/internal/logger"
	"github.com/memento-project/memento/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication on
// the owner and admin surfaces.
//
// It inspects the incoming "Authorization" header, extracts the bearer
// token, validates it against the configured sign key and issuer, and on
// success stores the authenticated account's ID under
// [utils.AccountIDCtxKey] and the admin marker under [utils.AdminCtxKey]
// before delegating to the next handler.
//
// Requests are rejected with HTTP 401 Unauthorized when the header is
// absent, malformed, expired, or fails signature or issuer validation.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(ErrInvalidAuthorizationHeader).Send()
			http.Error(w, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		token, err := utils.ValidateAndParseJWTToken(tokenString, h.app.TokenSignKey, h.app.TokenIssuer)
		if err != nil {
			switch {
			case errors.Is(err, jwt.ErrTokenExpired):
				log.Err(err).Msg("token expired")
				http.Error(w, "token expired", http.StatusUnauthorized)
				return
			default:
				log.Err(err).Msg("error occurred during parsing token")
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}
		}

		// Store the authenticated account's identity in the context so
		// downstream handlers can retrieve it without re-parsing the token.
		ctx := context.WithValue(r.Context(), utils.AccountIDCtxKey, token.AccountID)
		ctx = context.WithValue(ctx, utils.AdminCtxKey, token.TokenClaims.Admin)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// adminOnly gates the admin surface behind the token's admin claim.
// Authenticated non-admin callers receive HTTP 403 Forbidden.
func (h *Handler) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !utils.IsAdminFromContext(r.Context()) {
			log := logger.FromRequest(r)
			log.Warn().Msg("non-admin token on admin route")
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
