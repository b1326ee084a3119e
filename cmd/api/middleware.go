package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/Beka01247/bistro-api/internal/auth"
	"github.com/go-chi/chi"
	"github.com/gorilla/websocket"
)

type claimsKey string

const claimsCtx claimsKey = "claims"

func (app *application) RateLimiterMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if app.config.rateLimiter.Enabled {
			if allow, retryAfter := app.rateLimiter.Allow(clientIP(r)); !allow {
				app.rateLimitExceededResponse(w, r, fmt.Sprintf("%.0f", retryAfter.Seconds()))
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

func (app *application) AuthTokenMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := tokenFromRequest(r)
		if err != nil {
			app.unauthorizedErrorResponse(w, r, err)
			return
		}

		claims, err := app.authenticator.ValidateToken(token)
		if err != nil {
			app.unauthorizedErrorResponse(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), claimsCtx, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminMiddleware must run after AuthTokenMiddleware.
func (app *application) AdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := getClaimsFromCtx(r)
		if claims == nil {
			app.unauthorizedErrorResponse(w, r, auth.ErrMissingToken)
			return
		}

		isAdmin, err := app.userService.IsAdmin(r.Context(), claims.Email)
		if err != nil {
			app.internalServerError(w, r, err)
			return
		}
		if !isAdmin {
			app.forbiddenResponse(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// SelfMiddleware lets the token holder read only their own {email} resource.
func (app *application) SelfMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := getClaimsFromCtx(r)
		if claims == nil {
			app.unauthorizedErrorResponse(w, r, auth.ErrMissingToken)
			return
		}

		if !strings.EqualFold(claims.Email, chi.URLParam(r, "email")) {
			app.forbiddenResponse(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func getClaimsFromCtx(r *http.Request) *auth.Claims {
	claims, _ := r.Context().Value(claimsCtx).(*auth.Claims)
	return claims
}

// tokenFromRequest reads a bearer token. Browsers cannot set headers on a
// websocket handshake, so upgrades may pass it as ?token= instead.
func tokenFromRequest(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		if websocket.IsWebSocketUpgrade(r) {
			if token := r.URL.Query().Get("token"); token != "" {
				return token, nil
			}
		}
		return "", auth.ErrMissingToken
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", errors.New("authorization header is malformed")
	}

	return strings.TrimSpace(parts[1]), nil
}

// clientIP is the rate limiting identity: the peer address without its port,
// after middleware.RealIP has applied any forwarding headers.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
