package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/timetracker-pro/timetracker-backend-go/internal/domain/auth"
	"github.com/timetracker-pro/timetracker-backend-go/internal/domain/user"
	"github.com/timetracker-pro/timetracker-backend-go/internal/handler/http/response"
	"github.com/timetracker-pro/timetracker-backend-go/internal/policy"
)

type callerContextKey struct{}

// AuthRequired rejects requests whose bearer token failed verification or is
// not an access token. jwtauth.Verifier must run before this middleware.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				if errors.Is(err, jwtauth.ErrExpired) {
					response.HandleError(w, auth.ErrTokenExpired)
					return
				}
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != "access" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// CallerContext resolves the token's user_id claim against the user store on
// every request, so role or company changes take effect immediately rather
// than at next login. A token whose user no longer exists is invalid.
func CallerContext(users user.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			userID, ok := claims["user_id"].(string)
			if !ok || userID == "" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			u, err := users.GetByID(r.Context(), userID)
			if err != nil {
				if errors.Is(err, user.ErrUserNotFound) {
					response.HandleError(w, auth.ErrInvalidToken)
					return
				}
				response.HandleError(w, err)
				return
			}

			caller := policy.Caller{
				UserID:    u.ID,
				Role:      u.Role,
				CompanyID: u.CompanyID,
			}
			ctx := context.WithValue(r.Context(), callerContextKey{}, caller)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}

// CallerFromContext returns the authenticated caller stored by CallerContext.
func CallerFromContext(ctx context.Context) (policy.Caller, bool) {
	caller, ok := ctx.Value(callerContextKey{}).(policy.Caller)
	return caller, ok
}
